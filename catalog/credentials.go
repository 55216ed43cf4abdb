package catalog

import (
	"fmt"
	"os"
	"strings"
)

// CredentialFiles names the local files holding the pre-obtained session
// artifacts. Acquiring or renewing them happens outside this package.
type CredentialFiles struct {
	SessionID         string `yaml:"sessionIdFile"`
	SynchronizerToken string `yaml:"synchronizerTokenFile"`
	Cookie            string `yaml:"cookieFile"`
}

// Credentials are opaque; their shape and expiry are never checked.
type Credentials struct {
	SessionID         string
	SynchronizerToken string
	Cookie            string
}

// LoadCredentials reads and trims the three credential files.
func LoadCredentials(files CredentialFiles) (Credentials, error) {
	var result Credentials
	var err error
	if result.SessionID, err = readCredential("session id", files.SessionID); err != nil {
		return result, err
	}
	if result.SynchronizerToken, err = readCredential("synchronizer token", files.SynchronizerToken); err != nil {
		return result, err
	}
	if result.Cookie, err = readCredential("cookie", files.Cookie); err != nil {
		return result, err
	}
	return result, nil
}

func readCredential(name string, path string) (string, error) {
	if path == "" {
		return "", fmt.Errorf("no file configured for %s %w", name, ErrMissingCredential)
	}
	b, err := os.ReadFile(path)
	if err != nil {
		return "", fmt.Errorf("failed to read %s %w: %w", name, ErrMissingCredential, err)
	}
	s := strings.TrimSpace(string(b))
	if s == "" {
		return "", fmt.Errorf("%s file %s is empty %w", name, path, ErrMissingCredential)
	}
	return s, nil
}
