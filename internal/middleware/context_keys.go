package middleware

import "github.com/gin-gonic/gin"

// contextKey is a private key type to prevent collisions in context values.
type contextKey string

const (
	loggerKey   = contextKey("logger")
	tenantIDKey = contextKey("tenantID")
	actorIDKey  = contextKey("actorID")
)

// GetTenantIDFromContext retrieves the authenticated tenant ID from the Gin
// context. The tenant is always an explicit value set by the auth middleware;
// there is no ambient fallback.
func GetTenantIDFromContext(c *gin.Context) (string, bool) {
	tenantVal, exists := c.Get(string(tenantIDKey))
	if !exists {
		if v := c.Request.Context().Value(tenantIDKey); v != nil {
			tenant, ok := v.(string)
			return tenant, ok
		}
		return "", false
	}
	tenantID, ok := tenantVal.(string)
	return tenantID, ok
}

// GetActorIDFromContext retrieves the acting user ID from the Gin context.
func GetActorIDFromContext(c *gin.Context) (string, bool) {
	actorVal, exists := c.Get(string(actorIDKey))
	if !exists {
		if v := c.Request.Context().Value(actorIDKey); v != nil {
			actor, ok := v.(string)
			return actor, ok
		}
		return "", false
	}
	actorID, ok := actorVal.(string)
	return actorID, ok
}
