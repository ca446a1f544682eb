// Package session holds the admin's authentication state: the bearer
// token (OS keychain) and the user-info blob returned by login (JSON
// under the user config directory). Both are written on login and
// cleared wholesale on logout.
//
// API calls receive the token through an explicit Session rather than
// reading global storage ad hoc at each call site.
package session

import (
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
)

const ServiceName = "sirictl"

const (
	appDir   = "sirictl"
	userFile = "user.json"
)

// ErrNotLoggedIn indicates no token is stored. Callers treat this as
// "proceed unauthenticated" for read endpoints.
var ErrNotLoggedIn = errors.New("not logged in")

// userPathOverride, when non-empty, replaces the default user blob path.
// Intended for testing. Use SetUserPath / ResetUserPath to manage.
var userPathOverride string

// SetUserPath overrides the user blob path. Intended for testing.
func SetUserPath(p string) { userPathOverride = p }

// ResetUserPath clears the path override. Intended for testing.
func ResetUserPath() { userPathOverride = "" }

// TokenStore abstracts bearer token persistence.
type TokenStore interface {
	SetToken(token string) error
	GetToken() (string, error)
	DeleteToken() error
}

// UserInfo is the profile blob returned by the login endpoint.
type UserInfo struct {
	Name   string `json:"name"`
	Mobile string `json:"mobile"`
	Role   string `json:"role"`
}

// Session bundles the token store and user blob lifecycle.
type Session struct {
	Tokens TokenStore
}

// Default returns the standard session backed by the OS keychain.
func Default() *Session {
	return &Session{Tokens: NewKeyringStore(ServiceName)}
}

// Token returns the stored bearer token, or ErrNotLoggedIn.
func (s *Session) Token() (string, error) {
	return s.Tokens.GetToken()
}

// Login persists the token and user blob.
func (s *Session) Login(token string, user UserInfo) error {
	if err := s.Tokens.SetToken(token); err != nil {
		return fmt.Errorf("session: failed to store token: %w", err)
	}
	if err := SaveUser(user); err != nil {
		return err
	}
	return nil
}

// Logout clears the token and user blob. A missing token is not an error.
func (s *Session) Logout() error {
	if err := s.Tokens.DeleteToken(); err != nil && !errors.Is(err, ErrNotLoggedIn) {
		return err
	}
	return ClearUser()
}

// UserPath returns the absolute path to the persisted user blob.
func UserPath() (string, error) {
	if userPathOverride != "" {
		return userPathOverride, nil
	}
	base, err := os.UserConfigDir()
	if err != nil {
		return "", fmt.Errorf("session: unable to determine config directory: %w", err)
	}
	return filepath.Join(base, appDir, userFile), nil
}

// LoadUser reads the persisted user blob. Returns ErrNotLoggedIn when
// no blob exists.
func LoadUser() (*UserInfo, error) {
	path, err := UserPath()
	if err != nil {
		return nil, err
	}

	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, ErrNotLoggedIn
		}
		return nil, fmt.Errorf("session: failed to read %s: %w", path, err)
	}

	var user UserInfo
	if err := json.Unmarshal(data, &user); err != nil {
		return nil, fmt.Errorf("session: failed to parse %s: %w", path, err)
	}
	return &user, nil
}

// SaveUser writes the user blob, creating the parent directory if needed.
func SaveUser(user UserInfo) error {
	path, err := UserPath()
	if err != nil {
		return err
	}

	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("session: failed to create directory %s: %w", dir, err)
	}

	data, err := json.MarshalIndent(user, "", "  ")
	if err != nil {
		return fmt.Errorf("session: failed to marshal user info: %w", err)
	}
	data = append(data, '\n')

	if err := os.WriteFile(path, data, 0o600); err != nil {
		return fmt.Errorf("session: failed to write %s: %w", path, err)
	}
	return nil
}

// ClearUser removes the persisted user blob. A missing blob is not an error.
func ClearUser() error {
	path, err := UserPath()
	if err != nil {
		return err
	}
	if err := os.Remove(path); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return fmt.Errorf("session: failed to remove %s: %w", path, err)
	}
	return nil
}
