// Package client is the remote access layer for a Stride server: one
// network round-trip per call, normalized into either the decoded JSON
// payload or a typed error. It performs no caching; see client/mirror
// for the write-through local mirror built on top.
package client

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/cookiejar"
	"net/url"
	"time"
)

const sessionCookieName = "auth_token"

type Client struct {
	baseURL *url.URL
	http    *http.Client
}

func New(baseURL string) (*Client, error) {
	u, err := url.Parse(baseURL)
	if err != nil {
		return nil, fmt.Errorf("invalid base URL: %w", err)
	}

	jar, err := cookiejar.New(nil)
	if err != nil {
		return nil, fmt.Errorf("failed to create cookie jar: %w", err)
	}

	return &Client{
		baseURL: u,
		http:    &http.Client{Jar: jar},
	}, nil
}

// AuthToken returns the current session cookie value, empty when no
// session is held. Callers may persist it and restore with SetAuthToken.
func (c *Client) AuthToken() string {
	for _, cookie := range c.http.Jar.Cookies(c.baseURL) {
		if cookie.Name == sessionCookieName {
			return cookie.Value
		}
	}
	return ""
}

// SetAuthToken installs a previously issued session token.
func (c *Client) SetAuthToken(token string) {
	c.http.Jar.SetCookies(c.baseURL, []*http.Cookie{{
		Name:  sessionCookieName,
		Value: token,
		Path:  "/",
	}})
}

type userResponse struct {
	ID        string    `json:"id"`
	Email     string    `json:"email"`
	CreatedAt time.Time `json:"createdAt"`
}

func (c *Client) Signup(ctx context.Context, email, password string) (*Session, error) {
	var user userResponse
	err := c.roundTrip(ctx, http.MethodPost, "/api/auth/signup", nil,
		map[string]string{"email": email, "password": password}, &user)
	if err != nil {
		return nil, err
	}
	return &Session{UserID: user.ID, Email: user.Email}, nil
}

func (c *Client) Login(ctx context.Context, email, password string) (*Session, error) {
	var user userResponse
	err := c.roundTrip(ctx, http.MethodPost, "/api/auth/login", nil,
		map[string]string{"email": email, "password": password}, &user)
	if err != nil {
		return nil, err
	}
	return &Session{UserID: user.ID, Email: user.Email}, nil
}

func (c *Client) Logout(ctx context.Context) error {
	return c.roundTrip(ctx, http.MethodPost, "/api/auth/logout", nil, nil, nil)
}

// Me resolves the session behind the held auth token.
func (c *Client) Me(ctx context.Context) (*Session, error) {
	var user userResponse
	err := c.roundTrip(ctx, http.MethodGet, "/api/auth/me", nil, nil, &user)
	if err != nil {
		return nil, err
	}
	return &Session{UserID: user.ID, Email: user.Email}, nil
}

// do guards a resource call behind the session precondition: without a
// resolvable user the call fails immediately, no network attempted.
func (c *Client) do(ctx context.Context, s *Session, method, path string, query url.Values, payload, out any) error {
	if s == nil || s.UserID == "" {
		return ErrNoSession
	}
	return c.roundTrip(ctx, method, path, query, payload, out)
}

func (c *Client) roundTrip(ctx context.Context, method, path string, query url.Values, payload, out any) error {
	op := method + " " + path

	u := *c.baseURL
	u.Path = path
	if query != nil {
		u.RawQuery = query.Encode()
	}

	var body *bytes.Reader
	if payload != nil {
		raw, err := json.Marshal(payload)
		if err != nil {
			return &RequestError{Op: op, Message: "failed to encode payload", Err: err}
		}
		body = bytes.NewReader(raw)
	} else {
		body = bytes.NewReader(nil)
	}

	req, err := http.NewRequestWithContext(ctx, method, u.String(), body)
	if err != nil {
		return &RequestError{Op: op, Message: "failed to build request", Err: err}
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Accept", "application/json")

	resp, err := c.http.Do(req)
	if err != nil {
		return &RequestError{Op: op, Message: "request failed", Err: err}
	}
	defer resp.Body.Close()

	if resp.StatusCode >= 300 {
		return c.errorFromResponse(op, resp)
	}

	if out != nil {
		err = json.NewDecoder(resp.Body).Decode(out)
		if err != nil {
			return &RequestError{Op: op, Status: resp.StatusCode, Message: "failed to decode response", Err: err}
		}
	}

	return nil
}

// errorFromResponse parses the body for a structured error message and
// maps the status onto the error taxonomy.
func (c *Client) errorFromResponse(op string, resp *http.Response) error {
	var parsed struct {
		Error  string            `json:"error"`
		Fields map[string]string `json:"fields"`
	}
	_ = json.NewDecoder(resp.Body).Decode(&parsed)

	switch {
	case resp.StatusCode == http.StatusNotFound:
		return fmt.Errorf("%s: %w", op, ErrNotFound)
	case resp.StatusCode == http.StatusBadRequest && len(parsed.Fields) > 0:
		return &ValidationError{Fields: parsed.Fields}
	}

	message := parsed.Error
	if message == "" {
		message = "request failed"
	}
	return &RequestError{Op: op, Status: resp.StatusCode, Message: message}
}
