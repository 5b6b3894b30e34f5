package middleware

import (
	"context"

	"github.com/gin-gonic/gin"

	appErrors "github.com/vidro-absolut/study-api/pkg/errors"
	"github.com/vidro-absolut/study-api/pkg/response"
)

// AccessChecker reports whether a user paid for the planner.
type AccessChecker interface {
	HasAccess(ctx context.Context, userID string) (bool, error)
}

// RequireAccess blocks students without a confirmed purchase. It must run after JWT.
func RequireAccess(checker AccessChecker) gin.HandlerFunc {
	return func(c *gin.Context) {
		claims := Claims(c)
		if claims == nil {
			response.Error(c, appErrors.ErrUnauthorized)
			c.Abort()
			return
		}
		ok, err := checker.HasAccess(c.Request.Context(), claims.UserID())
		if err != nil {
			response.Error(c, err)
			c.Abort()
			return
		}
		if !ok {
			response.Error(c, appErrors.ErrPaymentPending)
			c.Abort()
			return
		}
		c.Next()
	}
}
