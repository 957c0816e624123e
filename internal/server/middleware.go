package server

import (
	"context"
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/gin-gonic/gin"

	"auction-platform/internal/auctionerrors"
	"auction-platform/internal/credentials"
	"auction-platform/services/helpers"
	"auction-platform/utils"
)

// AdmissionChecker verifies that an auction currently accepts bids.
type AdmissionChecker interface {
	CheckAdmission(ctx context.Context, auctionID string) error
}

// OutstandingChecker blocks users who owe commission.
type OutstandingChecker interface {
	CheckOutstanding(ctx context.Context, userID string) error
}

// RequestLoggerMiddleware logs incoming requests with timing
func RequestLoggerMiddleware(c *gin.Context) {
	start := time.Now()

	c.Next() // process request

	utils.Info("HTTP Request", map[string]any{
		"method":  c.Request.Method,
		"path":    c.Request.URL.Path,
		"status":  c.Writer.Status(),
		"latency": time.Since(start).String(),
	})
}

// AuthMiddleware validates the bearer token and stores the actor's identity
// in the request context. The token comes from the Authorization header or,
// failing that, the "token" cookie.
func AuthMiddleware(creds *credentials.Service) gin.HandlerFunc {
	return func(c *gin.Context) {
		token := bearerToken(c)
		if token == "" {
			utils.JSONError(c, http.StatusUnauthorized, auctionerrors.ErrAuth, "authentication required")
			c.Abort()
			return
		}

		claims, err := creds.ValidateToken(token)
		if err != nil {
			utils.JSONError(c, http.StatusUnauthorized, err, "invalid or expired token")
			c.Abort()
			return
		}

		c.Set(helpers.ContextActorID, claims.UserID)
		c.Set(helpers.ContextActorRole, claims.Role)
		c.Next()
	}
}

// RequireRole rejects authenticated actors whose role is not listed.
func RequireRole(roles ...string) gin.HandlerFunc {
	return func(c *gin.Context) {
		actorRole := helpers.ActorRole(c)
		for _, role := range roles {
			if actorRole == role {
				c.Next()
				return
			}
		}
		err := fmt.Errorf("role %s is not allowed here: %w", actorRole, auctionerrors.ErrForbidden)
		utils.JSONError(c, http.StatusForbidden, err, "operation not permitted")
		c.Abort()
	}
}

// AdmissionWindow rejects bid requests outside the auction's open window
// before the bid reaches the service.
func AdmissionWindow(admission AdmissionChecker) gin.HandlerFunc {
	return func(c *gin.Context) {
		auctionID := c.Param("auction_id")
		if err := admission.CheckAdmission(c.Request.Context(), auctionID); err != nil {
			status, message := helpers.MapErrorToHTTP(err)
			utils.JSONError(c, status, err, message)
			c.Abort()
			return
		}
		c.Next()
	}
}

// CommissionGate blocks auction creation while the actor owes commission.
func CommissionGate(outstanding OutstandingChecker) gin.HandlerFunc {
	return func(c *gin.Context) {
		if err := outstanding.CheckOutstanding(c.Request.Context(), helpers.ActorID(c)); err != nil {
			status, message := helpers.MapErrorToHTTP(err)
			utils.JSONError(c, status, err, message)
			c.Abort()
			return
		}
		c.Next()
	}
}

// bearerToken extracts the session token from the request.
func bearerToken(c *gin.Context) string {
	header := c.GetHeader("Authorization")
	if strings.HasPrefix(header, "Bearer ") {
		return strings.TrimPrefix(header, "Bearer ")
	}
	if cookie, err := c.Cookie("token"); err == nil {
		return cookie
	}
	return ""
}
