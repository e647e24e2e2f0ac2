package middleware

import (
	"errors"
	"net/http"
	"os"
	"strings"

	"admission-portal-api/config"
	"admission-portal-api/models"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"
	"gorm.io/gorm"
)

type Claims struct {
	UserID int         `json:"user_id"`
	Email  string      `json:"email"`
	Role   models.Role `json:"role"`
	jwt.RegisteredClaims
}

// AuthMiddleware validates the bearer token and stores the subject identity
// in the request context. It does not touch the database; RequireAdmin does
// the role lookup.
func AuthMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		authHeader := c.GetHeader("Authorization")
		if authHeader == "" {
			c.JSON(http.StatusUnauthorized, gin.H{"success": false, "message": "Not authorized, token missing"})
			c.Abort()
			return
		}

		tokenString := strings.TrimPrefix(authHeader, "Bearer ")
		if tokenString == authHeader {
			c.JSON(http.StatusUnauthorized, gin.H{"success": false, "message": "Invalid authorization header format"})
			c.Abort()
			return
		}

		token, err := jwt.ParseWithClaims(tokenString, &Claims{}, func(token *jwt.Token) (interface{}, error) {
			return []byte(os.Getenv("JWT_SECRET")), nil
		})

		if err != nil || !token.Valid {
			c.JSON(http.StatusUnauthorized, gin.H{"success": false, "message": "Not authorized, token invalid"})
			c.Abort()
			return
		}

		claims, ok := token.Claims.(*Claims)
		if !ok {
			c.JSON(http.StatusUnauthorized, gin.H{"success": false, "message": "Invalid token claims"})
			c.Abort()
			return
		}

		c.Set("userID", claims.UserID)
		c.Set("email", claims.Email)
		c.Set("role", claims.Role)

		c.Next()
	}
}

// RequireAdmin gates admin-only routes. It re-reads the user so a deleted
// account or a demoted role takes effect immediately, not at token expiry.
// Must be registered after AuthMiddleware.
func RequireAdmin() gin.HandlerFunc {
	return func(c *gin.Context) {
		userID, exists := c.Get("userID")
		if !exists {
			c.JSON(http.StatusUnauthorized, gin.H{"success": false, "message": "Not authorized"})
			c.Abort()
			return
		}

		var user models.User
		err := config.DB.Where("user_id = ?", userID).First(&user).Error
		if err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				c.JSON(http.StatusNotFound, gin.H{"success": false, "message": "User not found"})
			} else {
				c.JSON(http.StatusInternalServerError, gin.H{"success": false, "message": "Authorization error"})
			}
			c.Abort()
			return
		}

		switch user.Role {
		case models.RoleAdmin:
			c.Next()
		case models.RoleApplicant:
			c.JSON(http.StatusForbidden, gin.H{"success": false, "message": "Access denied: admin only"})
			c.Abort()
		default:
			// Unknown role value in storage is treated as no access.
			c.JSON(http.StatusForbidden, gin.H{"success": false, "message": "Access denied: admin only"})
			c.Abort()
		}
	}
}
