package v1

import (
	"strings"

	"github.com/centsible/backend/internal/models"
	"github.com/gin-gonic/gin"
)

// contextSession is the gin context key the session is stored under.
const contextSession = "centsible-session"

// Authenticate resolves the bearer token into a session and aborts
// the request with 401 when no valid session exists.
//
// Handlers behind this middleware read the owner identity with
// currentSession, they never trust anything else in the request.
func Authenticate() gin.HandlerFunc {
	return func(c *gin.Context) {
		token, ok := strings.CutPrefix(c.GetHeader("Authorization"), "Bearer ")
		if !ok {
			token = ""
		}

		session, err := models.SessionByToken(token)
		if err != nil {
			c.AbortWithStatusJSON(status(err), httpError{
				Error: err.Error(),
			})
			return
		}

		c.Set(contextSession, session)
		c.Next()
	}
}

// currentSession returns the session established by Authenticate.
func currentSession(c *gin.Context) models.Session {
	return c.MustGet(contextSession).(models.Session)
}
