package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// Exit is one outtake sold to a customer (table saidas).
type Exit struct {
	ID            int64           `db:"id" json:"id"`
	Date          time.Time       `db:"data" json:"data"`
	Customer      string          `db:"cliente" json:"cliente"`
	Material      string          `db:"material" json:"material"`
	WeightKg      decimal.Decimal `db:"peso_kg" json:"pesoKg"`
	PriceKg       decimal.Decimal `db:"preco_kg" json:"precoKg"`
	Total         decimal.Decimal `db:"valor_total" json:"valorTotal"`
	InvoiceNumber string          `db:"nota_fiscal" json:"notaFiscal"`
	Notes         string          `db:"observacoes" json:"observacoes"`
	CreatedBy     int64           `db:"created_by" json:"createdBy"`
	CreatedAt     time.Time       `db:"created_at" json:"createdAt"`
}

// ExitInput is the outtake form payload.
type ExitInput struct {
	Date          string          `json:"data" validate:"required,datetime=2006-01-02"`
	Customer      string          `json:"cliente" validate:"required,max=120"`
	Material      string          `json:"material" validate:"required"`
	WeightKg      decimal.Decimal `json:"pesoKg"`
	PriceKg       decimal.Decimal `json:"precoKg"`
	InvoiceNumber string          `json:"notaFiscal" validate:"max=40"`
	Notes         string          `json:"observacoes" validate:"max=500"`
}
