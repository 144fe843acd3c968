package auth

import (
	"errors"
	"os"
)

// SaveToken writes token to the auth token file.
func SaveToken(path, token string) error {
	return os.WriteFile(path, []byte(token), 0o600)
}

// LoadToken reads token from the auth token file.
func LoadToken(path string) (string, error) {
	b, err := os.ReadFile(path)
	if err != nil {
		return "", err
	}
	if len(b) == 0 {
		return "", errors.New("empty token file")
	}
	// Trim any trailing newlines/spaces
	for len(b) > 0 {
		c := b[len(b)-1]
		if c == '\n' || c == '\r' || c == ' ' || c == '\t' {
			b = b[:len(b)-1]
			continue
		}
		break
	}
	return string(b), nil
}
