package middleware

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/sihs-edu/campus-backend/internal/model"
	"github.com/sihs-edu/campus-backend/internal/response"
)

// RequireRole restricts a route to admins holding the given role.
func RequireRole(role model.Role) gin.HandlerFunc {
	return func(c *gin.Context) {
		admin := GetCurrentAdmin(c)
		if admin == nil {
			response.AbortFail(c, http.StatusUnauthorized, response.ErrTokenRequired)
			return
		}

		if admin.Role != role {
			response.AbortFail(c, http.StatusForbidden, response.ErrForbidden)
			return
		}
		c.Next()
	}
}

// RequirePermission checks that the resolved admin carries the required
// permission tag. Super admins pass regardless of their stored tags.
func RequirePermission(p model.Permission) gin.HandlerFunc {
	return func(c *gin.Context) {
		admin := GetCurrentAdmin(c)
		if admin == nil {
			response.AbortFail(c, http.StatusUnauthorized, response.ErrTokenRequired)
			return
		}

		if admin.Role == model.RoleSuperAdmin || admin.HasPermission(p) {
			c.Next()
			return
		}

		response.AbortFail(c, http.StatusForbidden, response.ErrPermissionDenied)
	}
}

// RequireAnyPermission checks that the resolved admin carries at least one of
// the given permission tags.
func RequireAnyPermission(tags ...model.Permission) gin.HandlerFunc {
	return func(c *gin.Context) {
		admin := GetCurrentAdmin(c)
		if admin == nil {
			response.AbortFail(c, http.StatusUnauthorized, response.ErrTokenRequired)
			return
		}

		if admin.Role == model.RoleSuperAdmin {
			c.Next()
			return
		}
		for _, tag := range tags {
			if admin.HasPermission(tag) {
				c.Next()
				return
			}
		}

		response.AbortFail(c, http.StatusForbidden, response.ErrPermissionDenied)
	}
}
