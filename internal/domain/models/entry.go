package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// Entry is one intake of scrap bought from a supplier (table entradas).
type Entry struct {
	ID        int64           `db:"id" json:"id"`
	Date      time.Time       `db:"data" json:"data"`
	Supplier  string          `db:"fornecedor" json:"fornecedor"`
	Material  string          `db:"material" json:"material"`
	WeightKg  decimal.Decimal `db:"peso_kg" json:"pesoKg"`
	PriceKg   decimal.Decimal `db:"preco_kg" json:"precoKg"`
	Total     decimal.Decimal `db:"valor_total" json:"valorTotal"`
	Notes     string          `db:"observacoes" json:"observacoes"`
	CreatedBy int64           `db:"created_by" json:"createdBy"`
	CreatedAt time.Time       `db:"created_at" json:"createdAt"`
}

// EntryInput is the intake form payload.
type EntryInput struct {
	Date     string          `json:"data" validate:"required,datetime=2006-01-02"`
	Supplier string          `json:"fornecedor" validate:"required,max=120"`
	Material string          `json:"material" validate:"required"`
	WeightKg decimal.Decimal `json:"pesoKg"`
	PriceKg  decimal.Decimal `json:"precoKg"`
	Notes    string          `json:"observacoes" validate:"max=500"`
}
