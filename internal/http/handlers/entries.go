package handlers

import (
	"net/http"

	"ibrac/internal/domain/models"
	"ibrac/internal/http/middleware"
	"ibrac/internal/repositories"
	"ibrac/internal/services"

	"github.com/gin-gonic/gin"
)

// GET /api/entradas
func ListEntries(c *gin.Context) {
	respondList[models.Entry](c, repositories.EntryRepository{}.Source(), entriesList)
}

// POST /api/entradas
func CreateEntry(c *gin.Context) {
	var in models.EntryInput
	if !BindJSONOrError(c, &in) {
		return
	}
	svc := services.EntryService{RequestID: middleware.GetRequestID(c)}
	e, err := svc.Register(c.Request.Context(), in, currentUserID(c))
	if err != nil {
		RespondDomainError(c, err)
		return
	}
	c.JSON(http.StatusCreated, e)
}

// GET /api/entradas/:id
func GetEntry(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}
	e, err := repositories.EntryRepository{}.GetByID(c.Request.Context(), id)
	if err != nil {
		RespondDomainError(c, err)
		return
	}
	c.JSON(http.StatusOK, e)
}

// DELETE /api/entradas/:id
func DeleteEntry(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}
	if err := (repositories.EntryRepository{}).Delete(c.Request.Context(), id); err != nil {
		RespondDomainError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

// GET /api/entradas/export
func ExportEntries(c *gin.Context) {
	respondExport[models.Entry](c, repositories.EntryRepository{}.Source().FetchAll, entriesList, "Entradas de material", services.EntryColumns)
}
