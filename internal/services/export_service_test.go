package services

import (
	"bytes"
	"strings"
	"testing"
	"time"

	"ibrac/internal/domain/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func sampleEntries() []models.Entry {
	day := time.Date(2025, 4, 2, 0, 0, 0, 0, time.Local)
	return []models.Entry{
		{ID: 1, Date: day, Supplier: "Metais; Sul", Material: "cobre_mel", WeightKg: dec("1250.5"), PriceKg: dec("41.3"), Total: dec("51645.65")},
		{ID: 2, Date: day, Supplier: "Sucata Norte", Material: "latao", WeightKg: dec("80"), PriceKg: dec("28"), Total: dec("2240")},
	}
}

func TestWriteCSV(t *testing.T) {
	tbl := BuildTable("Entradas", EntryColumns, sampleEntries())
	var buf bytes.Buffer
	require.NoError(t, WriteCSV(&buf, tbl))

	out := buf.Bytes()
	require.True(t, bytes.HasPrefix(out, utf8BOM))
	lines := strings.Split(strings.TrimSpace(string(out[len(utf8BOM):])), "\n")
	require.Len(t, lines, 3)
	assert.Equal(t, "ID;Data;Fornecedor;Material;Peso;Preço/kg;Total;Observações", lines[0])
	assert.Contains(t, lines[1], `"Metais; Sul"`)
	assert.Contains(t, lines[1], "02/04/2025")
}

func TestRenderPDF(t *testing.T) {
	at := time.Date(2025, 4, 3, 9, 30, 0, 0, time.Local)
	pdf, err := RenderPDF(BuildTable("Entradas", EntryColumns, sampleEntries()), at)
	require.NoError(t, err)
	assert.True(t, bytes.HasPrefix(pdf, []byte("%PDF")))

	empty, err := RenderPDF(BuildTable("Estoque", StockColumns, nil), at)
	require.NoError(t, err)
	assert.NotEmpty(t, empty)

	assert.Equal(t, "entradas_20250403-0930.pdf", ExportFilename("entradas", "pdf", at))
}
