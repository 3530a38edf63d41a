package cmd

import (
	"fmt"
	"strings"
)

// shortID trims a uuid down to the first segment for display.
func shortID(id string) string {
	if i := strings.IndexByte(id, '-'); i > 0 {
		return id[:i]
	}
	return id
}

// matchID resolves a user-typed id, which may be a shortID prefix,
// against the items we know about.
func matchID[T any](arg string, items []T, id func(T) string) (string, error) {
	var matches []string
	for _, item := range items {
		full := id(item)
		if full == arg {
			return full, nil
		}
		if strings.HasPrefix(full, arg) {
			matches = append(matches, full)
		}
	}
	switch len(matches) {
	case 1:
		return matches[0], nil
	case 0:
		return "", fmt.Errorf("no match for id %q", arg)
	default:
		return "", fmt.Errorf("id %q is ambiguous, matches %d items", arg, len(matches))
	}
}
