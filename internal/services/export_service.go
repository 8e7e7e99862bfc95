package services

import (
	"bytes"
	"encoding/csv"
	"fmt"
	"io"
	"time"

	"ibrac/internal/utils"

	"github.com/phpdave11/gofpdf"
)

// Column renders one field of T for exports.
type Column[T any] struct {
	Header string
	Width  float64
	Value  func(T) string
}

// Table is a rendered grid ready for CSV or PDF.
type Table struct {
	Title   string
	Headers []string
	Widths  []float64
	Rows    [][]string
}

// BuildTable renders rows through cols.
func BuildTable[T any](title string, cols []Column[T], rows []T) Table {
	t := Table{Title: title, Headers: make([]string, len(cols)), Widths: make([]float64, len(cols))}
	for i, c := range cols {
		t.Headers[i] = c.Header
		t.Widths[i] = c.Width
	}
	t.Rows = make([][]string, 0, len(rows))
	for _, r := range rows {
		line := make([]string, len(cols))
		for i, c := range cols {
			line[i] = c.Value(r)
		}
		t.Rows = append(t.Rows, line)
	}
	return t
}

// utf8BOM lets spreadsheet apps detect the encoding of accented headers.
var utf8BOM = []byte{0xEF, 0xBB, 0xBF}

// WriteCSV writes t as a semicolon-separated spreadsheet, the format pt-BR Excel opens directly.
func WriteCSV(w io.Writer, t Table) error {
	if _, err := w.Write(utf8BOM); err != nil {
		return err
	}
	cw := csv.NewWriter(w)
	cw.Comma = ';'
	if err := cw.Write(t.Headers); err != nil {
		return err
	}
	if err := cw.WriteAll(t.Rows); err != nil {
		return err
	}
	return cw.Error()
}

// RenderPDF lays t out as a landscape A4 print sheet.
func RenderPDF(t Table, generatedAt time.Time) ([]byte, error) {
	pdf := gofpdf.New("L", "mm", "A4", "")
	tr := pdf.UnicodeTranslatorFromDescriptor("")
	pdf.SetTitle(t.Title, true)
	pdf.SetFooterFunc(func() {
		pdf.SetY(-12)
		pdf.SetFont("Helvetica", "I", 8)
		pdf.CellFormat(0, 8, tr(fmt.Sprintf("IBRAC - %s - página %d", generatedAt.Format("02/01/2006 15:04"), pdf.PageNo())), "", 0, "C", false, 0, "")
	})
	pdf.AddPage()

	pdf.SetFont("Helvetica", "B", 14)
	pdf.Cell(0, 10, tr(t.Title))
	pdf.Ln(12)

	header := func() {
		pdf.SetFont("Helvetica", "B", 9)
		pdf.SetFillColor(230, 230, 230)
		for i, h := range t.Headers {
			pdf.CellFormat(t.Widths[i], 7, tr(h), "1", 0, "C", true, 0, "")
		}
		pdf.Ln(-1)
		pdf.SetFont("Helvetica", "", 8)
	}
	header()

	_, pageH := pdf.GetPageSize()
	_, _, _, bottom := pdf.GetMargins()
	for _, row := range t.Rows {
		if pdf.GetY()+6 > pageH-bottom-12 {
			pdf.AddPage()
			header()
		}
		for i, v := range row {
			pdf.CellFormat(t.Widths[i], 6, tr(v), "1", 0, "L", false, 0, "")
		}
		pdf.Ln(-1)
	}
	if len(t.Rows) == 0 {
		pdf.Ln(4)
		pdf.Cell(0, 6, "Nenhum registro encontrado")
	}

	var buf bytes.Buffer
	if err := pdf.Output(&buf); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

// ExportFilename builds "<resource>_<yyyymmdd-hhmm>.<ext>".
func ExportFilename(resource, ext string, at time.Time) string {
	return fmt.Sprintf("%s_%s.%s", utils.SafeFilenamePart(resource), at.Format("20060102-1504"), ext)
}
