package http

import (
	"traders-bloc/internal/apperr"
	"traders-bloc/internal/entity"

	"github.com/gin-gonic/gin"
)

// respondError maps application errors onto HTTP statuses and the
// {"error": message} body every endpoint uses.
func respondError(c *gin.Context, err error) {
	c.JSON(apperr.HTTPStatus(err), gin.H{"error": apperr.MessageOf(err)})
}

// sessionFromContext rebuilds the caller's session from the values the auth
// middleware stored. It returns nil when the request is unauthenticated so
// the gate can reject it.
func sessionFromContext(c *gin.Context) *entity.Session {
	userID := c.GetString("user_id")
	if userID == "" {
		return nil
	}
	return &entity.Session{
		IdentityID: userID,
		Email:      c.GetString("user_email"),
		Role:       entity.Role(c.GetString("user_role")),
	}
}

// admit runs the authorization gate for a handler and writes the rejection
// response itself. Callers bail out when the returned session is nil.
func admit(c *gin.Context, required entity.Role) *entity.Session {
	session, err := entity.Admit(sessionFromContext(c), required)
	if err != nil {
		respondError(c, err)
		return nil
	}
	return session
}

// admitAny admits any authenticated caller regardless of role.
func admitAny(c *gin.Context) (*entity.Session, error) {
	return entity.Admit(sessionFromContext(c), "")
}
