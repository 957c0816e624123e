package helpers

import (
	"github.com/gin-gonic/gin"
)

// Gin context keys set by the authentication middleware.
const (
	ContextActorID   = "actor_id"
	ContextActorRole = "actor_role"
)

// ActorID returns the authenticated user's ID from the request context.
func ActorID(c *gin.Context) string {
	v, _ := c.Get(ContextActorID)
	id, _ := v.(string)
	return id
}

// ActorRole returns the authenticated user's role from the request context.
func ActorRole(c *gin.Context) string {
	v, _ := c.Get(ContextActorRole)
	role, _ := v.(string)
	return role
}
