package middleware

import (
	"strings"

	"github.com/gin-gonic/gin"

	"magala-server/internal/config"
	"magala-server/internal/models"
	"magala-server/internal/repository"
	"magala-server/internal/utils"
)

// AuthMiddleware creates a middleware for JWT authentication.
func AuthMiddleware(cfg *config.Config) gin.HandlerFunc {
	return func(c *gin.Context) {
		authHeader := c.GetHeader("Authorization")
		if authHeader == "" {
			utils.Unauthorized(c, "Authorization header required")
			c.Abort()
			return
		}

		parts := strings.Split(authHeader, " ")
		if len(parts) != 2 || strings.ToLower(parts[0]) != "bearer" {
			utils.Unauthorized(c, "Invalid authorization header format")
			c.Abort()
			return
		}

		tokenString := parts[1]
		claims, err := utils.ValidateToken(tokenString, cfg.JWTSecret)
		if err != nil {
			utils.Unauthorized(c, "Invalid token: "+err.Error())
			c.Abort()
			return
		}

		// Set account identity in context for downstream handlers
		c.Set("accountID", claims.AccountID)

		c.Next()
	}
}

// ProfileMiddleware loads the caller's profile into the context. It must be
// used after AuthMiddleware. The profile is loaded from the database on
// every request rather than trusted from a token claim, so role and
// approval changes are visible on the caller's next request.
func ProfileMiddleware(profiles repository.ProfileRepository) gin.HandlerFunc {
	return func(c *gin.Context) {
		accountID, exists := GetAccountIDFromContext(c)
		if !exists {
			utils.Unauthorized(c, "User not authenticated")
			c.Abort()
			return
		}

		profile, err := profiles.FindByID(c.Request.Context(), accountID)
		if err != nil {
			utils.InternalServerError(c, "Failed to load profile: "+err.Error())
			c.Abort()
			return
		}
		if profile == nil {
			utils.Forbidden(c, "A profile is required for this resource")
			c.Abort()
			return
		}

		c.Set("profile", profile)
		c.Next()
	}
}

// AdminMiddleware is the routing gate for the admin console: it keeps admin
// endpoints unreachable for callers whose profile is missing or not an
// admin. It must be used after ProfileMiddleware. The admin service
// re-checks the actor on every operation; this middleware only decides
// reachability.
func AdminMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		profile, exists := GetProfileFromContext(c)
		if !exists {
			utils.InternalServerError(c, "Profile not found in context. ProfileMiddleware might be missing.")
			c.Abort()
			return
		}

		if !profile.IsAdmin() {
			utils.Forbidden(c, "You do not have permission to access this resource.")
			c.Abort()
			return
		}

		c.Next()
	}
}

// Helper function to get account ID from context
func GetAccountIDFromContext(c *gin.Context) (string, bool) {
	accountID, exists := c.Get("accountID")
	if !exists {
		return "", false
	}
	idStr, ok := accountID.(string)
	return idStr, ok
}

// Helper function to get the loaded profile from context
func GetProfileFromContext(c *gin.Context) (*models.Profile, bool) {
	value, exists := c.Get("profile")
	if !exists {
		return nil, false
	}
	profile, ok := value.(*models.Profile)
	return profile, ok
}
