package handlers

import (
	"net/http"

	"ibrac/internal/domain/models"
	"ibrac/internal/repositories"
	"ibrac/internal/services"

	"github.com/gin-gonic/gin"
)

// GET /api/users
func ListUsers(c *gin.Context) {
	respondList[models.User](c, repositories.UserRepository{}.Source(), usersList)
}

// POST /api/users
func CreateUser(c *gin.Context) {
	var in services.UserInput
	if !BindJSONOrError(c, &in) {
		return
	}
	u, err := authService(c).CreateUser(c.Request.Context(), in)
	if err != nil {
		RespondDomainError(c, err)
		return
	}
	c.JSON(http.StatusCreated, u)
}
