package workflow

import (
	"museum-review/internal/auth"
	"museum-review/internal/domain"
)

// Authorize decides whether session may act on stage. It has no side effects.
func Authorize(session *auth.Session, stage Stage) error {
	if session == nil || session.Email == "" {
		return domain.ErrUnauthorized
	}
	if session.Role != stage.RequiredRole {
		return domain.ErrForbidden
	}
	return nil
}

// AuthorizeAny succeeds when the session holds any configured reviewer role.
// Used for reads and edits that are not bound to one stage.
func AuthorizeAny(session *auth.Session) error {
	if session == nil || session.Email == "" {
		return domain.ErrUnauthorized
	}
	if !auth.IsValidRole(session.Role) {
		return domain.ErrForbidden
	}
	return nil
}
