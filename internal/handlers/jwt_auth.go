package handlers

import (
	"fmt"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/skillhorizon/marketplace-service/internal/auth"
	"github.com/skillhorizon/marketplace-service/internal/models"
	"github.com/skillhorizon/marketplace-service/internal/repositories"
)

// JWTAuthMiddleware provides authentication using first-party HS256 tokens.
type JWTAuthMiddleware struct {
	tokens   *auth.TokenManager
	userRepo repositories.UserRepository
}

// NewJWTAuthMiddleware creates a new JWT authentication middleware
func NewJWTAuthMiddleware(tokens *auth.TokenManager, userRepo repositories.UserRepository) *JWTAuthMiddleware {
	return &JWTAuthMiddleware{
		tokens:   tokens,
		userRepo: userRepo,
	}
}

// AuthMiddleware returns a Gin middleware function for token verification
func (jam *JWTAuthMiddleware) AuthMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		// Extract token from Authorization header
		authHeader := c.GetHeader("Authorization")
		if authHeader == "" {
			c.JSON(http.StatusUnauthorized, gin.H{
				"error":   "unauthorized",
				"message": "authorization header missing",
			})
			c.Abort()
			return
		}

		// Extract token from "Bearer <token>" format
		tokenParts := strings.Split(authHeader, " ")
		if len(tokenParts) != 2 || strings.ToLower(tokenParts[0]) != "bearer" {
			c.JSON(http.StatusUnauthorized, gin.H{
				"error":   "unauthorized",
				"message": "invalid authorization header format",
			})
			c.Abort()
			return
		}

		claims, err := jam.tokens.Verify(tokenParts[1])
		if err != nil {
			c.JSON(http.StatusUnauthorized, gin.H{
				"error":   "unauthorized",
				"message": fmt.Sprintf("invalid token: %v", err),
			})
			c.Abort()
			return
		}

		// Set user information in context
		c.Set("user_email", claims.Email)
		c.Set("claims", claims)

		// Continue with the request
		c.Next()
	}
}

// RequireRoleMiddleware checks the user's current role against the given one.
// The role is read from the database on every call rather than from the token,
// so a role change (teacher approval, admin promotion, rejection) takes effect
// on the next request without reissuing the token.
func (jam *JWTAuthMiddleware) RequireRoleMiddleware(requiredRole models.UserRole) gin.HandlerFunc {
	return func(c *gin.Context) {
		email := c.GetString("user_email")
		if email == "" {
			c.JSON(http.StatusForbidden, gin.H{
				"error":   "forbidden",
				"message": "user email not found in context",
			})
			c.Abort()
			return
		}

		user, err := jam.userRepo.GetByEmail(c.Request.Context(), nil, email)
		if err != nil {
			// Only a missing user is an authorization failure; a store
			// error says nothing about the caller's role.
			if repositories.IsNotFoundError(err) {
				c.JSON(http.StatusForbidden, gin.H{
					"error":   "forbidden",
					"message": fmt.Sprintf("insufficient permissions, required role: %s", requiredRole),
				})
			} else {
				c.JSON(http.StatusInternalServerError, gin.H{
					"error":   "internal",
					"message": "failed to resolve user role",
				})
			}
			c.Abort()
			return
		}

		if user.Role != requiredRole {
			c.JSON(http.StatusForbidden, gin.H{
				"error":   "forbidden",
				"message": fmt.Sprintf("insufficient permissions, required role: %s", requiredRole),
			})
			c.Abort()
			return
		}

		c.Set("user_role", user.Role)
		c.Next()
	}
}

// GetUserEmailFromContext extracts the verified email from Gin context
func GetUserEmailFromContext(c *gin.Context) (string, error) {
	email, exists := c.Get("user_email")
	if !exists {
		return "", fmt.Errorf("user email not found in context")
	}

	addr, ok := email.(string)
	if !ok || addr == "" {
		return "", fmt.Errorf("invalid user email in context")
	}

	return addr, nil
}

// GetClaimsFromContext extracts the verified token claims from Gin context
func GetClaimsFromContext(c *gin.Context) (*auth.Claims, error) {
	v, exists := c.Get("claims")
	if !exists {
		return nil, fmt.Errorf("claims not found in context")
	}

	claims, ok := v.(*auth.Claims)
	if !ok {
		return nil, fmt.Errorf("invalid claims type in context")
	}

	return claims, nil
}
