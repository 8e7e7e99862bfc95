package handlers

import (
	"net/http"

	"ibrac/internal/domain/models"
	"ibrac/internal/http/middleware"
	"ibrac/internal/repositories"
	"ibrac/internal/services"

	"github.com/gin-gonic/gin"
)

func ListExits(c *gin.Context) {
	respondList[models.Exit](c, repositories.ExitRepository{}.Source(), exitsList)
}

// CreateExit refuses sales above the current stock with 409.
func CreateExit(c *gin.Context) {
	var in models.ExitInput
	if !BindJSONOrError(c, &in) {
		return
	}
	svc := services.ExitService{RequestID: middleware.GetRequestID(c)}
	e, err := svc.Register(c.Request.Context(), in, currentUserID(c))
	if err != nil {
		RespondDomainError(c, err)
		return
	}
	c.JSON(http.StatusCreated, e)
}

func GetExit(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}
	e, err := repositories.ExitRepository{}.GetByID(c.Request.Context(), id)
	if err != nil {
		RespondDomainError(c, err)
		return
	}
	c.JSON(http.StatusOK, e)
}

func DeleteExit(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}
	if err := (repositories.ExitRepository{}).Delete(c.Request.Context(), id); err != nil {
		RespondDomainError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

func ExportExits(c *gin.Context) {
	respondExport[models.Exit](c, repositories.ExitRepository{}.Source().FetchAll, exitsList, "Saídas de material", services.ExitColumns)
}
