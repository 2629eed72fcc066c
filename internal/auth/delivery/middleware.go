package delivery

import (
	"errors"
	"fmt"
	"net/http"
	"strings"

	authdomain "calendar-backend/internal/auth/domain"
	"calendar-backend/internal/auth/usecase"

	"github.com/gin-gonic/gin"
)

// ContextUserKey is where AuthMiddleware stores the resolved user.
const ContextUserKey = "user"

// AuthMiddleware validates the bearer token and resolves its subject to a
// live user. The user is stored in the gin context for downstream handlers.
func AuthMiddleware(authUsecase usecase.AuthUsecase) gin.HandlerFunc {
	return func(c *gin.Context) {
		authHeader := c.GetHeader("Authorization")
		if authHeader == "" {
			unauthorized(c, "Not authenticated")
			return
		}

		parts := strings.Split(authHeader, " ")
		if len(parts) != 2 || parts[0] != "Bearer" {
			unauthorized(c, "Not authenticated")
			return
		}

		subject, err := authUsecase.ValidateToken(parts[1])
		if err != nil {
			unauthorized(c, "Could not validate credentials")
			return
		}

		user, err := authUsecase.ResolveUser(subject)
		if err != nil {
			if errors.Is(err, authdomain.ErrUserNotFound) {
				// The subject is echoed back; the token already proved
				// knowledge of it.
				unauthorized(c, fmt.Sprintf("User not found %s", subject))
				return
			}
			c.JSON(http.StatusInternalServerError, gin.H{"detail": err.Error()})
			c.Abort()
			return
		}

		c.Set(ContextUserKey, user)
		c.Set("userID", user.ID)
		c.Next()
	}
}

// CurrentUser returns the user stored by AuthMiddleware.
func CurrentUser(c *gin.Context) *authdomain.User {
	user, ok := c.Get(ContextUserKey)
	if !ok {
		return nil
	}
	return user.(*authdomain.User)
}

func unauthorized(c *gin.Context, detail string) {
	c.Header("WWW-Authenticate", "Bearer")
	c.JSON(http.StatusUnauthorized, gin.H{"detail": detail})
	c.Abort()
}
