// Package auth resolves reviewer sessions from bearer tokens.
package auth

import (
	"context"
	"crypto/subtle"
	"fmt"
	"strings"

	"museum-review/internal/domain"
)

// Role identifies which pipeline stages a reviewer may act on.
type Role string

const (
	RoleAdmin              Role = "admin"
	RoleReviewerIT         Role = "reviewer_it"
	RoleReviewerTechnical  Role = "reviewer_technical"
	RoleReviewerLiterature Role = "reviewer_literature"
)

// ValidRoles contains all valid reviewer roles.
var ValidRoles = []Role{RoleAdmin, RoleReviewerIT, RoleReviewerTechnical, RoleReviewerLiterature}

// IsValidRole checks if a role is valid.
func IsValidRole(role Role) bool {
	for _, r := range ValidRoles {
		if r == role {
			return true
		}
	}
	return false
}

// Session is an authenticated reviewer. It is passed explicitly to every
// operation that needs authorization.
type Session struct {
	Email string `json:"email"`
	Role  Role   `json:"role"`
}

// Authenticator turns a bearer token into a session.
type Authenticator interface {
	Authenticate(ctx context.Context, token string) (*Session, error)
}

type tokenEntry struct {
	token   string
	session Session
}

// TokenAuthenticator checks tokens against a static list loaded from config.
type TokenAuthenticator struct {
	entries []tokenEntry
}

// ParseTokens parses "token:role:email" entries separated by commas.
func ParseTokens(list string) (*TokenAuthenticator, error) {
	a := &TokenAuthenticator{}
	for _, raw := range strings.Split(list, ",") {
		raw = strings.TrimSpace(raw)
		if raw == "" {
			continue
		}
		parts := strings.SplitN(raw, ":", 3)
		if len(parts) != 3 {
			return nil, fmt.Errorf("reviewer token entry %q: want token:role:email", raw)
		}
		token, role, email := strings.TrimSpace(parts[0]), Role(strings.TrimSpace(parts[1])), strings.TrimSpace(parts[2])
		if token == "" || email == "" {
			return nil, fmt.Errorf("reviewer token entry %q: token and email are required", raw)
		}
		if !IsValidRole(role) {
			return nil, fmt.Errorf("reviewer token entry %q: unknown role %q", raw, role)
		}
		a.entries = append(a.entries, tokenEntry{token: token, session: Session{Email: email, Role: role}})
	}
	return a, nil
}

// Authenticate returns the session bound to token.
func (a *TokenAuthenticator) Authenticate(_ context.Context, token string) (*Session, error) {
	token = strings.TrimSpace(token)
	if token == "" {
		return nil, domain.ErrUnauthorized
	}
	for _, e := range a.entries {
		if subtle.ConstantTimeCompare([]byte(e.token), []byte(token)) == 1 {
			s := e.session
			return &s, nil
		}
	}
	return nil, domain.ErrUnauthorized
}

// Len returns the number of configured tokens.
func (a *TokenAuthenticator) Len() int {
	return len(a.entries)
}
