package handlers

import (
	"bytes"
	"context"
	"fmt"
	"net/http"
	"strconv"
	"strings"
	"time"

	"ibrac/internal/domain"
	"ibrac/internal/http/middleware"
	"ibrac/internal/pagination"
	"ibrac/internal/services"
	"ibrac/internal/utils"

	"github.com/gin-gonic/gin"
)

// exportLimit caps the rows a single export may pull.
const exportLimit = 10000

// listSpec whitelists what a list endpoint accepts from the query string.
type listSpec struct {
	Resource string
	Columns  string
	// Filters maps query parameter to column for equality filters.
	Filters map[string]string
	// Sort maps orderBy values to columns.
	Sort    map[string]string
	Default pagination.Order
}

type pageInfo struct {
	pagination.State
	HasPrev bool `json:"hasPrev"`
	HasNext bool `json:"hasNext"`
}

type listResponse[T any] struct {
	Data       []T      `json:"data"`
	Pagination pageInfo `json:"pagination"`
	Summary    string   `json:"summary"`
}

func (s listSpec) descriptor(c *gin.Context) (pagination.Descriptor, error) {
	d := pagination.NewDescriptor(s.Resource)
	if s.Columns != "" {
		d = d.WithColumns(s.Columns)
	}
	for param, col := range s.Filters {
		v := utils.NormalizeSpace(c.Query(param))
		if v == "" {
			continue
		}
		if col == "material" {
			m, ok := domain.ParseMaterial(v)
			if !ok {
				return d, domain.ValidationError{Field: param, Msg: "material desconhecido"}
			}
			v = string(m)
		}
		d = d.WithFilter(col, v)
	}

	order := s.Default
	if key := strings.TrimSpace(c.Query("orderBy")); key != "" {
		col, ok := s.Sort[key]
		if !ok {
			return d, domain.ValidationError{Field: "orderBy", Msg: "campo de ordenação não permitido"}
		}
		order.Field = col
	}
	switch strings.ToLower(strings.TrimSpace(c.Query("order"))) {
	case "":
	case "asc":
		order.Ascending = true
	case "desc":
		order.Ascending = false
	default:
		return d, domain.ValidationError{Field: "order", Msg: "use asc ou desc"}
	}
	return d.WithOrder(order.Field, order.Ascending), nil
}

// pageParams reads page and pageSize. Garbage falls back to page 1 and the
// default size; sizes outside the selector snap to the default.
func pageParams(c *gin.Context) (page, size int) {
	page, err := strconv.Atoi(c.Query("page"))
	if err != nil || page < 1 {
		page = 1
	}
	size, _ = strconv.Atoi(c.Query("pageSize"))
	return page, pagination.NormalizePageSize(size)
}

func respondList[T any](c *gin.Context, src pagination.Source[T], view listSpec) {
	d, err := view.descriptor(c)
	if err != nil {
		RespondDomainError(c, err)
		return
	}
	page, size := pageParams(c)
	p := pagination.New[T](src, d, size)
	if err := p.Load(c.Request.Context(), page); err != nil {
		RespondDomainError(c, err)
		return
	}
	snap := p.Snapshot()
	c.JSON(http.StatusOK, listResponse[T]{
		Data: snap.Rows,
		Pagination: pageInfo{
			State:   snap.State,
			HasPrev: snap.State.HasPrev(),
			HasNext: snap.State.HasNext(),
		},
		Summary: snap.State.Summary(),
	})
}

type fetchAllFunc[T any] func(ctx context.Context, d pagination.Descriptor, limit int) ([]T, error)

// respondExport streams the filtered view as CSV (default) or PDF.
func respondExport[T any](c *gin.Context, fetch fetchAllFunc[T], view listSpec, title string, cols []services.Column[T]) {
	format := strings.ToLower(strings.TrimSpace(c.DefaultQuery("format", "csv")))
	if format != "csv" && format != "pdf" {
		RespondDomainError(c, domain.ValidationError{Field: "format", Msg: "use csv ou pdf"})
		return
	}
	d, err := view.descriptor(c)
	if err != nil {
		RespondDomainError(c, err)
		return
	}
	rows, err := fetch(c.Request.Context(), d, exportLimit)
	if err != nil {
		RespondDomainError(c, err)
		return
	}

	now := time.Now()
	tbl := services.BuildTable(title, cols, rows)
	filename := services.ExportFilename(view.Resource, format, now)

	var (
		body        []byte
		contentType string
	)
	switch format {
	case "pdf":
		body, err = services.RenderPDF(tbl, now)
		contentType = "application/pdf"
	default:
		var buf bytes.Buffer
		err = services.WriteCSV(&buf, tbl)
		body = buf.Bytes()
		contentType = "text/csv; charset=utf-8"
	}
	if err != nil {
		RespondDomainError(c, domain.InternalError{Msg: "falha ao gerar arquivo", Err: err})
		return
	}

	utils.LogEvent(middleware.GetRequestID(c), view.Resource, "export", fmt.Sprintf("format=%s rows=%d", format, len(rows)))
	c.Header("Content-Disposition", `attachment; filename="`+filename+`"`)
	c.Data(http.StatusOK, contentType, body)
}
