package middleware

import (
	"context"
	"errors"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"
	"github.com/sihs-edu/campus-backend/internal/model"
	"github.com/sihs-edu/campus-backend/internal/response"
	"github.com/sihs-edu/campus-backend/internal/service"
)

const (
	// ContextKeyAdmin is the Gin context key for the resolved admin account.
	ContextKeyAdmin = "current_admin"
)

// AccountResolver loads the account behind a validated token. Implemented by
// repository.AdminRepository.
type AccountResolver interface {
	GetByID(ctx context.Context, id int) (*model.Admin, error)
}

// RequireAdmin validates an admin JWT and resolves the backing account from
// the database. Role and permissions are read from the stored record, not the
// token, so deactivating an account or editing its grants takes effect on the
// very next request. A missing account and a deactivated one are rejected
// identically.
func RequireAdmin(authService *service.AuthService, accounts AccountResolver) gin.HandlerFunc {
	return func(c *gin.Context) {
		tokenStr := extractToken(c)
		if tokenStr == "" {
			response.AbortFail(c, http.StatusUnauthorized, response.ErrTokenRequired)
			return
		}

		claims, err := authService.ValidateToken(tokenStr)
		if err != nil {
			if errors.Is(err, jwt.ErrTokenExpired) {
				response.AbortFail(c, http.StatusUnauthorized, response.ErrTokenExpired)
				return
			}
			response.AbortFail(c, http.StatusUnauthorized, response.ErrTokenInvalid)
			return
		}

		if claims.TokenType != service.TokenTypeAdmin {
			response.AbortFail(c, http.StatusUnauthorized, response.ErrTokenInvalid)
			return
		}

		admin, err := accounts.GetByID(c.Request.Context(), claims.AdminID)
		if err != nil || !admin.IsActive {
			response.AbortFail(c, http.StatusUnauthorized, response.ErrTokenInvalid)
			return
		}

		c.Set(ContextKeyAdmin, admin)
		c.Next()
	}
}

// GetCurrentAdmin retrieves the resolved admin account from the Gin context.
func GetCurrentAdmin(c *gin.Context) *model.Admin {
	val, exists := c.Get(ContextKeyAdmin)
	if !exists {
		return nil
	}
	admin, ok := val.(*model.Admin)
	if !ok {
		return nil
	}
	return admin
}

func extractToken(c *gin.Context) string {
	authHeader := c.GetHeader("Authorization")
	if authHeader != "" {
		parts := strings.SplitN(authHeader, " ", 2)
		if len(parts) == 2 && strings.EqualFold(parts[0], "bearer") {
			return parts[1]
		}
	}

	// Fallback for WebSocket upgrades, which cannot send headers from the
	// browser API.
	return c.Query("token")
}
