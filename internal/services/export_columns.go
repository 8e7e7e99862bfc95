package services

import (
	"strconv"

	"ibrac/internal/domain/models"
	"ibrac/internal/utils"
)

func id64(id int64) string { return strconv.FormatInt(id, 10) }

var EntryColumns = []Column[models.Entry]{
	{"ID", 15, func(e models.Entry) string { return id64(e.ID) }},
	{"Data", 25, func(e models.Entry) string { return utils.FormatDateBR(e.Date) }},
	{"Fornecedor", 60, func(e models.Entry) string { return e.Supplier }},
	{"Material", 35, func(e models.Entry) string { return e.Material }},
	{"Peso", 35, func(e models.Entry) string { return utils.FormatKg(e.WeightKg) }},
	{"Preço/kg", 30, func(e models.Entry) string { return utils.FormatBRL(e.PriceKg) }},
	{"Total", 40, func(e models.Entry) string { return utils.FormatBRL(e.Total) }},
	{"Observações", 37, func(e models.Entry) string { return e.Notes }},
}

var ExitColumns = []Column[models.Exit]{
	{"ID", 15, func(e models.Exit) string { return id64(e.ID) }},
	{"Data", 25, func(e models.Exit) string { return utils.FormatDateBR(e.Date) }},
	{"Cliente", 55, func(e models.Exit) string { return e.Customer }},
	{"Material", 35, func(e models.Exit) string { return e.Material }},
	{"Peso", 35, func(e models.Exit) string { return utils.FormatKg(e.WeightKg) }},
	{"Preço/kg", 30, func(e models.Exit) string { return utils.FormatBRL(e.PriceKg) }},
	{"Total", 40, func(e models.Exit) string { return utils.FormatBRL(e.Total) }},
	{"NF", 42, func(e models.Exit) string { return e.InvoiceNumber }},
}

var ProcessingColumns = []Column[models.ProcessingBatch]{
	{"ID", 12, func(b models.ProcessingBatch) string { return id64(b.ID) }},
	{"Envio", 22, func(b models.ProcessingBatch) string { return utils.FormatDateBR(b.SentAt) }},
	{"Retorno", 22, func(b models.ProcessingBatch) string {
		if b.ReturnedAt == nil {
			return "-"
		}
		return utils.FormatDateBR(*b.ReturnedAt)
	}},
	{"Beneficiador", 50, func(b models.ProcessingBatch) string { return b.Processor }},
	{"Material", 30, func(b models.ProcessingBatch) string { return b.Material }},
	{"Enviado", 32, func(b models.ProcessingBatch) string { return utils.FormatKg(b.SentKg) }},
	{"Retornado", 32, func(b models.ProcessingBatch) string { return utils.FormatKg(b.ReturnedKg) }},
	{"Perda cobrada", 25, func(b models.ProcessingBatch) string { return b.ChargedLossPct.StringFixed(2) + "%" }},
	{"Status", 25, func(b models.ProcessingBatch) string { return b.Status }},
}

var StockColumns = []Column[models.StockLevel]{
	{"Material", 50, func(s models.StockLevel) string { return s.Material }},
	{"Entradas", 45, func(s models.StockLevel) string { return utils.FormatKg(s.InKg) }},
	{"Saídas", 45, func(s models.StockLevel) string { return utils.FormatKg(s.OutKg) }},
	{"Enviado", 45, func(s models.StockLevel) string { return utils.FormatKg(s.SentKg) }},
	{"Retornado", 45, func(s models.StockLevel) string { return utils.FormatKg(s.ReturnedKg) }},
	{"Saldo", 47, func(s models.StockLevel) string { return utils.FormatKg(s.BalanceKg) }},
}
