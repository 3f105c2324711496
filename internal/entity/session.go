package entity

import "traders-bloc/internal/apperr"

type Role string

const (
	RoleUser       Role = "USER"
	RoleAdmin      Role = "ADMIN"
	RoleSuperAdmin Role = "SUPER_ADMIN"
)

// Session is the authenticated caller attached to a request after token
// validation.
type Session struct {
	IdentityID string
	Email      string
	Role       Role
}

// Admit is the authoritative authorization gate for a single operation.
// A nil session is rejected outright. When required is empty any
// authenticated session passes. Otherwise the session role must match,
// with SUPER_ADMIN satisfying every role requirement.
func Admit(s *Session, required Role) (*Session, error) {
	if s == nil || s.IdentityID == "" {
		return nil, apperr.Unauthenticated("You must be logged in to access this resource")
	}
	if required == "" {
		return s, nil
	}
	if s.Role == required || s.Role == RoleSuperAdmin {
		return s, nil
	}
	return nil, apperr.Forbidden("You do not have permission to access this resource")
}
