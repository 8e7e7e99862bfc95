package handlers

import (
	"net/http"
	"time"

	"ibrac/internal/http/middleware"
	"ibrac/internal/repositories"
	"ibrac/internal/services"

	"github.com/gin-gonic/gin"
)

var (
	jwtSecret = []byte("change-me")
	jwtTTL    = 24 * time.Hour
)

// ConfigureAuth sets the signing key and session length used by the auth routes.
func ConfigureAuth(secret string, ttl time.Duration) {
	jwtSecret = []byte(secret)
	if ttl > 0 {
		jwtTTL = ttl
	}
}

func authService(c *gin.Context) services.AuthService {
	return services.AuthService{
		Users:     repositories.UserRepository{},
		Secret:    jwtSecret,
		TTL:       jwtTTL,
		RequestID: middleware.GetRequestID(c),
	}
}

type loginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// POST /api/auth/login
func Login(c *gin.Context) {
	var req loginRequest
	if !BindJSONOrError(c, &req) {
		return
	}
	token, user, err := authService(c).Login(c.Request.Context(), req.Email, req.Password)
	if err != nil {
		RespondDomainError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{
		"token":     token,
		"expiresIn": int64(jwtTTL.Seconds()),
		"user":      user,
	})
}

// GET /api/auth/me
func Me(c *gin.Context) {
	u, err := repositories.UserRepository{}.GetByID(c.Request.Context(), currentUserID(c))
	if err != nil {
		RespondDomainError(c, err)
		return
	}
	c.JSON(http.StatusOK, u)
}
