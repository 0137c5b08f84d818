package httpapi

import (
	"github.com/gin-gonic/gin"

	"github.com/dmagallanes2/coldcallingassistant/internal/session"
)

// HeaderSessionID carries the operator's session id. A missing or unknown id
// gets a fresh session; the effective id is always echoed back so the client
// can stick to it.
const HeaderSessionID = "X-Session-Id"

const ctxSessionKey = "session"

// SessionMiddleware resolves the request's session and attaches it to the
// gin context. Every /v1 route runs behind it.
func SessionMiddleware(m *session.Manager) gin.HandlerFunc {
	return func(c *gin.Context) {
		s := m.Resolve(c.GetHeader(HeaderSessionID))
		c.Writer.Header().Set(HeaderSessionID, s.ID)
		c.Set(ctxSessionKey, s)
		c.Next()
	}
}

func currentSession(c *gin.Context) *session.Session {
	if v, ok := c.Get(ctxSessionKey); ok {
		if s, ok := v.(*session.Session); ok {
			return s
		}
	}
	return nil
}
