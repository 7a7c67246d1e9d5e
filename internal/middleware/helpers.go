// internal/middleware/helpers.go
package middleware

import "github.com/gin-gonic/gin"

// GetProfileID gets the authenticated profile id from context.
func GetProfileID(c *gin.Context) (string, bool) {
	v, exists := c.Get(profileIDKey)
	if !exists {
		return "", false
	}
	id, ok := v.(string)
	return id, ok && id != ""
}

// MustGetProfileID gets the profile id from context or panics. Only for
// handlers mounted behind Auth().
func MustGetProfileID(c *gin.Context) string {
	id, ok := GetProfileID(c)
	if !ok {
		panic("profile_id not found in context")
	}
	return id
}

// IsAuthenticated checks if the request carries a verified profile identity.
func IsAuthenticated(c *gin.Context) bool {
	_, ok := GetProfileID(c)
	return ok
}
