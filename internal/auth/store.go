// Package auth is the central auth service of the CLI. The bearer
// token lives in a credentials file under the user's home; every API
// call reads it through the Store rather than ad hoc, and expiry is
// checked up front so an expired session fails with a clear message
// instead of a 401.
package auth

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/adrg/xdg"
)

const (
	configDirName   = ".lawyerdirect"
	credentialsFile = "credentials.json"
)

// ErrSessionExpired is returned when the stored token's exp claim is
// in the past.
var ErrSessionExpired = errors.New("session expired, run 'lawadmin login' again")

// Credentials is the persisted login state.
type Credentials struct {
	Token string `json:"token"`
	Email string `json:"email"`
}

// Store reads and writes the credentials file. It implements
// api.TokenSource.
type Store struct {
	path string
}

// NewStore returns a Store over the default credentials path.
// LAWADMIN_CONFIG_DIR overrides the directory, which tests rely on.
func NewStore() *Store {
	dir := os.Getenv("LAWADMIN_CONFIG_DIR")
	if dir == "" {
		dir = filepath.Join(xdg.Home, configDirName)
	}
	return &Store{path: filepath.Join(dir, credentialsFile)}
}

// NewStoreAt returns a Store over an explicit credentials file path.
func NewStoreAt(path string) *Store {
	return &Store{path: path}
}

// Save writes the credentials with owner-only permissions.
func (s *Store) Save(creds Credentials) error {
	if err := os.MkdirAll(filepath.Dir(s.path), 0o755); err != nil {
		return fmt.Errorf("failed to create config directory: %v", err)
	}
	data, err := json.MarshalIndent(creds, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to serialize credentials: %v", err)
	}
	if err := os.WriteFile(s.path, data, 0o600); err != nil {
		return fmt.Errorf("failed to save credentials: %v", err)
	}
	return nil
}

// Load reads the stored credentials. A missing file yields empty
// credentials, not an error.
func (s *Store) Load() (Credentials, error) {
	data, err := os.ReadFile(s.path)
	if os.IsNotExist(err) {
		return Credentials{}, nil
	}
	if err != nil {
		return Credentials{}, fmt.Errorf("failed to read credentials file: %v", err)
	}
	var creds Credentials
	if err := json.Unmarshal(data, &creds); err != nil {
		return Credentials{}, fmt.Errorf("failed to parse credentials file: %v", err)
	}
	return creds, nil
}

// Clear removes the credentials file.
func (s *Store) Clear() error {
	err := os.Remove(s.path)
	if os.IsNotExist(err) {
		return nil
	}
	return err
}

// Token returns the stored bearer token, or "" when not logged in.
// A token whose exp claim has passed returns ErrSessionExpired.
func (s *Store) Token() (string, error) {
	creds, err := s.Load()
	if err != nil {
		return "", err
	}
	if creds.Token == "" {
		return "", nil
	}
	if Expired(creds.Token) {
		return "", ErrSessionExpired
	}
	return creds.Token, nil
}
