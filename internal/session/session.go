// Package session holds the bearer token obtained from the expense store
// and persists it between CLI invocations.
package session

import (
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/golang-jwt/jwt/v5"

	apperrors "paisa/internal/errors"
)

// Session is the local authentication state. The token itself is issued and
// verified by the expense store; locally it is only stored and inspected.
type Session struct {
	token string
	path  string
}

// Load creates a Session backed by the given file, reading any previously
// persisted token. A missing or unreadable file yields an empty session.
func Load(path string) *Session {
	s := &Session{path: path}
	data, err := os.ReadFile(path)
	if err == nil {
		s.token = strings.TrimSpace(string(data))
	}
	return s
}

// SetToken stores a new bearer token and persists it with owner-only access.
func (s *Session) SetToken(token string) error {
	s.token = token
	if s.path == "" {
		return nil
	}
	if err := os.MkdirAll(filepath.Dir(s.path), 0700); err != nil {
		return apperrors.Wrap(apperrors.ErrInternalServer, err)
	}
	if err := os.WriteFile(s.path, []byte(token), 0600); err != nil {
		return apperrors.Wrap(apperrors.ErrInternalServer, err)
	}
	return nil
}

// Token returns the current bearer token, or "" when logged out.
func (s *Session) Token() string { return s.token }

// Clear drops the token and removes the persisted copy. This is the single
// side effect the store client triggers on a 401 response.
func (s *Session) Clear() {
	s.token = ""
	if s.path != "" {
		_ = os.Remove(s.path)
	}
}

// ExpiresAt returns the token's expiry claim, if one can be read. The claim
// is parsed without signature verification; verification is the store's job.
func (s *Session) ExpiresAt() (time.Time, bool) {
	if s.token == "" {
		return time.Time{}, false
	}
	parser := jwt.NewParser()
	tok, _, err := parser.ParseUnverified(s.token, jwt.MapClaims{})
	if err != nil {
		return time.Time{}, false
	}
	exp, err := tok.Claims.GetExpirationTime()
	if err != nil || exp == nil {
		return time.Time{}, false
	}
	return exp.Time, true
}

// Valid reports whether a token is present and not known to be expired.
// A token without a readable expiry claim is treated as valid and left for
// the store to reject.
func (s *Session) Valid() bool {
	if s.token == "" {
		return false
	}
	exp, ok := s.ExpiresAt()
	if !ok {
		return true
	}
	return time.Now().Before(exp)
}
