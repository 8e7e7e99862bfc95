package handlers

import (
	"net/http"

	"ibrac/internal/domain/models"
	"ibrac/internal/http/middleware"
	"ibrac/internal/repositories"
	"ibrac/internal/services"

	"github.com/gin-gonic/gin"
)

// GET /api/estoque
func ListStock(c *gin.Context) {
	respondList[models.StockLevel](c, repositories.StockRepository{}.Source(), stockList)
}

// GET /api/estoque/resumo
func StockOverview(c *gin.Context) {
	svc := services.StockService{RequestID: middleware.GetRequestID(c)}
	out, err := svc.Overview(c.Request.Context())
	if err != nil {
		RespondDomainError(c, err)
		return
	}
	c.JSON(http.StatusOK, out)
}

// GET /api/estoque/export
func ExportStock(c *gin.Context) {
	respondExport[models.StockLevel](c, repositories.StockRepository{}.Source().FetchAll, stockList, "Estoque por material", services.StockColumns)
}
