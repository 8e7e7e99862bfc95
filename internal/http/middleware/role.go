package middleware

import (
	"net/http"
	"strings"

	"ibrac/internal/access"
	"ibrac/internal/domain"

	"github.com/gin-gonic/gin"
)

// RequireRoles only lets through requests whose role is in allowedRoles.
// Auth must run first so userRole is set.
//
//	r.GET("/admin", RequireRoles("admin"), handler)
func RequireRoles(allowedRoles ...string) gin.HandlerFunc {
	allowed := make(map[string]struct{}, len(allowedRoles))
	for _, r := range allowedRoles {
		allowed[strings.ToLower(strings.TrimSpace(r))] = struct{}{}
	}

	return func(c *gin.Context) {
		role := strings.ToLower(strings.TrimSpace(UserRole(c)))
		if role == "" {
			abort(c, http.StatusUnauthorized, "unauthorized", "papel ausente na sessão")
			return
		}
		if _, ok := allowed[role]; !ok {
			abort(c, http.StatusForbidden, "forbidden", "papel sem permissão")
			return
		}
		c.Next()
	}
}

// RequirePermission checks the caller's role against the access table for the
// matched route.
func RequirePermission() gin.HandlerFunc {
	return func(c *gin.Context) {
		path := c.Request.URL.Path
		if access.IsPublic(path) {
			c.Next()
			return
		}
		role := UserRole(c)
		if role == "" {
			abort(c, http.StatusUnauthorized, "unauthorized", "papel ausente na sessão")
			return
		}
		if !access.CanAccess(domain.Role(role), c.Request.Method, path) {
			abort(c, http.StatusForbidden, "forbidden", "papel "+role+" sem acesso a "+path)
			return
		}
		c.Next()
	}
}
