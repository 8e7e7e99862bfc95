package handlers

import (
	"net/http"
	"strings"

	"ibrac/internal/domain"
	"ibrac/internal/http/middleware"
	"ibrac/internal/services"
	"ibrac/internal/utils"

	"github.com/gin-gonic/gin"
)

// periodFromQuery reads start_date/end_date (YYYY-MM-DD). Either may be absent.
func periodFromQuery(c *gin.Context) (domain.Period, error) {
	var p domain.Period
	if s := strings.TrimSpace(c.Query("start_date")); s != "" {
		t, err := utils.ParseDate(s)
		if err != nil {
			return p, domain.ValidationError{Field: "start_date", Msg: "data inválida (AAAA-MM-DD)", Err: err}
		}
		p.Start = t
	}
	if s := strings.TrimSpace(c.Query("end_date")); s != "" {
		t, err := utils.ParseDate(s)
		if err != nil {
			return p, domain.ValidationError{Field: "end_date", Msg: "data inválida (AAAA-MM-DD)", Err: err}
		}
		p.End = utils.EndOfDay(t)
	}
	return p, nil
}

// GET /api/financeiro/resumo
func FinanceSummary(c *gin.Context) {
	p, err := periodFromQuery(c)
	if err != nil {
		RespondDomainError(c, err)
		return
	}
	svc := services.FinanceService{RequestID: middleware.GetRequestID(c)}
	out, err := svc.Summary(c.Request.Context(), p)
	if err != nil {
		RespondDomainError(c, err)
		return
	}
	c.JSON(http.StatusOK, out)
}
