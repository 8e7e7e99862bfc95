package handlers

import (
	"net/http"

	"ibrac/internal/domain/models"
	"ibrac/internal/http/middleware"
	"ibrac/internal/repositories"
	"ibrac/internal/services"

	"github.com/gin-gonic/gin"
)

func processingService(c *gin.Context) services.ProcessingService {
	return services.ProcessingService{RequestID: middleware.GetRequestID(c)}
}

// GET /api/beneficiamentos
func ListProcessing(c *gin.Context) {
	respondList[models.ProcessingBatch](c, repositories.ProcessingRepository{}.Source(), processingList)
}

// POST /api/beneficiamentos
func CreateProcessing(c *gin.Context) {
	var in models.ProcessingInput
	if !BindJSONOrError(c, &in) {
		return
	}
	b, err := processingService(c).Dispatch(c.Request.Context(), in, currentUserID(c))
	if err != nil {
		RespondDomainError(c, err)
		return
	}
	c.JSON(http.StatusCreated, b)
}

// GET /api/beneficiamentos/:id
func GetProcessing(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}
	b, err := repositories.ProcessingRepository{}.GetByID(c.Request.Context(), id)
	if err != nil {
		RespondDomainError(c, err)
		return
	}
	c.JSON(http.StatusOK, b)
}

// PUT /api/beneficiamentos/:id/retorno
func ReturnProcessing(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}
	var in models.ReturnInput
	if !BindJSONOrError(c, &in) {
		return
	}
	res, err := processingService(c).RegisterReturn(c.Request.Context(), id, in)
	if err != nil {
		RespondDomainError(c, err)
		return
	}
	c.JSON(http.StatusOK, res)
}

// GET /api/beneficiamentos/:id/resultado
func ProcessingResult(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}
	res, err := processingService(c).Result(c.Request.Context(), id)
	if err != nil {
		RespondDomainError(c, err)
		return
	}
	c.JSON(http.StatusOK, res)
}

// DELETE /api/beneficiamentos/:id
func DeleteProcessing(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}
	if err := (repositories.ProcessingRepository{}).Delete(c.Request.Context(), id); err != nil {
		RespondDomainError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

// GET /api/beneficiamentos/export
func ExportProcessing(c *gin.Context) {
	respondExport[models.ProcessingBatch](c, repositories.ProcessingRepository{}.Source().FetchAll, processingList, "Beneficiamentos", services.ProcessingColumns)
}
