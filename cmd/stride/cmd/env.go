package cmd

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"github.com/strideapp/stride/client"
	"github.com/strideapp/stride/client/mirror"
)

const defaultServerURL = "http://localhost:8090"

// profile is what stride persists between invocations: which server to
// talk to, the session cookie, and who is logged in.
type profile struct {
	Server string `json:"server"`
	Token  string `json:"token,omitempty"`
	UserID string `json:"userId,omitempty"`
	Email  string `json:"email,omitempty"`
}

// env wires a remote client and its local mirror from the on-disk profile.
type env struct {
	Client  *client.Client
	Mirror  *mirror.Mirror
	Session *client.Session

	profile     profile
	profilePath string
}

func configDir() (string, error) {
	base, err := os.UserConfigDir()
	if err != nil {
		return "", fmt.Errorf("resolve config dir: %w", err)
	}
	dir := filepath.Join(base, "stride")
	if err := os.MkdirAll(dir, 0o700); err != nil {
		return "", fmt.Errorf("create config dir: %w", err)
	}
	return dir, nil
}

func loadEnv() (*env, error) {
	dir, err := configDir()
	if err != nil {
		return nil, err
	}

	e := &env{
		profile:     profile{Server: defaultServerURL},
		profilePath: filepath.Join(dir, "profile.json"),
	}
	if data, err := os.ReadFile(e.profilePath); err == nil {
		_ = json.Unmarshal(data, &e.profile)
	}
	if e.profile.Server == "" {
		e.profile.Server = defaultServerURL
	}
	if s := os.Getenv("STRIDE_SERVER"); s != "" {
		e.profile.Server = s
	}

	c, err := client.New(e.profile.Server)
	if err != nil {
		return nil, fmt.Errorf("connect to %s: %w", e.profile.Server, err)
	}
	if e.profile.Token != "" {
		c.SetAuthToken(e.profile.Token)
	}

	store, err := mirror.Open(filepath.Join(dir, "mirror.json"))
	if err != nil {
		return nil, fmt.Errorf("open mirror: %w", err)
	}

	e.Client = c
	e.Mirror = mirror.New(c, store)
	if e.profile.UserID != "" {
		e.Session = &client.Session{UserID: e.profile.UserID, Email: e.profile.Email}
	}
	return e, nil
}

func (e *env) saveProfile() error {
	e.profile.Token = e.Client.AuthToken()
	if e.Session != nil {
		e.profile.UserID = e.Session.UserID
		e.profile.Email = e.Session.Email
	} else {
		e.profile.UserID = ""
		e.profile.Email = ""
	}
	data, err := json.MarshalIndent(e.profile, "", "  ")
	if err != nil {
		return err
	}
	return os.WriteFile(e.profilePath, data, 0o600)
}

// requireSession returns the stored session or a friendly error telling
// the user to log in first.
func (e *env) requireSession() (*client.Session, error) {
	if e.Session == nil {
		return nil, fmt.Errorf("not logged in, run: stride login")
	}
	return e.Session, nil
}
