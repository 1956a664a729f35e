package middleware

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/mgarrido/horarios-api/internal/models"
	"github.com/mgarrido/horarios-api/internal/utils"
)

// Context key under which the resolved user is stored.
const UserKey = "currentUser"

// Auth validates the bearer token, resolves its subject to a stored user and
// rejects inactive accounts. Handlers downstream read the user via
// CurrentUser.
func Auth(db *mongo.Database) gin.HandlerFunc {
	return func(c *gin.Context) {
		authHeader := c.GetHeader("Authorization")
		if authHeader == "" {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Authorization header required"})
			return
		}

		tokenString := strings.TrimPrefix(authHeader, "Bearer ")
		username, err := utils.ValidateJWT(tokenString)
		if err != nil {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Could not validate credentials"})
			return
		}

		var user models.User
		err = db.Collection("users").FindOne(c.Request.Context(), bson.M{"username": username}).Decode(&user)
		if err != nil {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Could not validate credentials"})
			return
		}
		if !user.IsActive {
			c.AbortWithStatusJSON(http.StatusBadRequest, gin.H{"error": "Inactive user"})
			return
		}

		c.Set(UserKey, user)
		c.Next()
	}
}

// Allowed reports whether a role is in the required set. Every role-gated
// endpoint goes through this one predicate.
func Allowed(role string, required ...string) bool {
	for _, r := range required {
		if role == r {
			return true
		}
	}
	return false
}

// RequireRoles aborts with 403 unless the authenticated user's role is one of
// the given roles. Must run after Auth.
func RequireRoles(roles ...string) gin.HandlerFunc {
	return func(c *gin.Context) {
		user := CurrentUser(c)
		if !Allowed(user.Role, roles...) {
			c.AbortWithStatusJSON(http.StatusForbidden, gin.H{"error": "Not enough permissions"})
			return
		}
		c.Next()
	}
}

// CurrentUser returns the user resolved by Auth. Only valid on routes behind
// the Auth middleware.
func CurrentUser(c *gin.Context) models.User {
	user, _ := c.Get(UserKey)
	u, _ := user.(models.User)
	return u
}
