package middleware

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// Identity is handled upstream (gateway or BFF); the engine trusts the
// actor headers it is handed.
const (
	HeaderActorID        = "X-Actor-ID"
	HeaderTenantID       = "X-Tenant-ID"
	HeaderOrganizationID = "X-Organization-ID"

	ctxActorKey = "actor"
)

type Actor struct {
	UserID         uuid.UUID
	TenantID       uuid.UUID
	OrganizationID *uuid.UUID
}

// RequireActor rejects requests without a well-formed actor identity.
func RequireActor() gin.HandlerFunc {
	return func(c *gin.Context) {
		userID, err := uuid.Parse(c.GetHeader(HeaderActorID))
		if err != nil {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "Actor identity required"})
			c.Abort()
			return
		}
		tenantID, err := uuid.Parse(c.GetHeader(HeaderTenantID))
		if err != nil {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "Tenant identity required"})
			c.Abort()
			return
		}

		actor := Actor{UserID: userID, TenantID: tenantID}
		if raw := c.GetHeader(HeaderOrganizationID); raw != "" {
			orgID, err := uuid.Parse(raw)
			if err != nil {
				c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid organization ID"})
				c.Abort()
				return
			}
			actor.OrganizationID = &orgID
		}

		c.Set(ctxActorKey, actor)
		c.Next()
	}
}

func GetActor(c *gin.Context) (Actor, bool) {
	v, exists := c.Get(ctxActorKey)
	if !exists {
		return Actor{}, false
	}
	actor, ok := v.(Actor)
	return actor, ok
}
