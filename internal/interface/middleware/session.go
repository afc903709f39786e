package middleware

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/vivahsetu/vivahsetu/internal/application"
	"github.com/vivahsetu/vivahsetu/pkg/response"
)

// Session resolves the persisted session slot through the account directory
// and aborts with 401 when nobody is signed in. It sets userID, userName and
// userEmail in the Gin context on success.
func Session(accounts *application.AccountService) gin.HandlerFunc {
	return func(c *gin.Context) {
		u, err := accounts.CurrentUser(c.Request.Context())
		if err != nil {
			response.Error[any](c, http.StatusInternalServerError, "session lookup failed", nil)
			return
		}
		if u == nil {
			response.Error[any](c, http.StatusUnauthorized, "you must be logged in", nil)
			return
		}

		c.Set("userID", u.ID)
		c.Set("userName", u.Name)
		c.Set("userEmail", u.Email)
		c.Next()
	}
}
