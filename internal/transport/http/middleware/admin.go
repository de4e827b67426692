package middleware

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/AhmedGamal2004/My-Personal-final/internal/app"
	"github.com/AhmedGamal2004/My-Personal-final/internal/transport/http/response"
)

// AdminHeader carries the shared admin secret on mutating routes.
const AdminHeader = "X-Admin-Password"

func AdminOnly(gate *app.AdminGate) gin.HandlerFunc {
	return func(c *gin.Context) {
		if err := gate.Authorize(c.GetHeader(AdminHeader)); err != nil {
			response.Abort(c, http.StatusForbidden, response.MsgUnauthorized)
			return
		}
		c.Next()
	}
}

// RequireDatabase rejects store-backed routes while no database is configured.
func RequireDatabase(configured bool) gin.HandlerFunc {
	return func(c *gin.Context) {
		if !configured {
			response.Abort(c, http.StatusInternalServerError, response.MsgDatabaseNotConfigured)
			return
		}
		c.Next()
	}
}
