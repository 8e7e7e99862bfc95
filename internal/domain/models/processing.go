package models

import (
	"time"

	"github.com/shopspring/decimal"
)

const (
	BatchSent     = "enviado"
	BatchReturned = "retornado"
)

// ProcessingBatch is material sent to a third-party processor (table beneficiamentos).
type ProcessingBatch struct {
	ID              int64           `db:"id" json:"id"`
	SentAt          time.Time       `db:"data_envio" json:"dataEnvio"`
	ReturnedAt      *time.Time      `db:"data_retorno" json:"dataRetorno,omitempty"`
	Processor       string          `db:"beneficiador" json:"beneficiador"`
	Material        string          `db:"material" json:"material"`
	SentKg          decimal.Decimal `db:"peso_enviado" json:"pesoEnviadoKg"`
	ReturnedKg      decimal.Decimal `db:"peso_retornado" json:"pesoRetornadoKg"`
	ChargedLossPct  decimal.Decimal `db:"perda_cobrada_pct" json:"perdaCobradaPct"`
	PriceKg         decimal.Decimal `db:"custo_kg" json:"custoKg"`
	Freight         decimal.Decimal `db:"frete" json:"frete"`
	MaterialPriceKg decimal.Decimal `db:"preco_material_kg" json:"precoMaterialKg"`
	Status          string          `db:"status" json:"status"`
	Notes           string          `db:"observacoes" json:"observacoes"`
	CreatedBy       int64           `db:"created_by" json:"createdBy"`
	CreatedAt       time.Time       `db:"created_at" json:"createdAt"`
}

// Returned reports whether the processor already delivered the batch back.
func (b ProcessingBatch) Returned() bool {
	return b.Status == BatchReturned
}

// ProcessingInput is the dispatch form payload.
type ProcessingInput struct {
	SentAt          string          `json:"dataEnvio" validate:"required,datetime=2006-01-02"`
	Processor       string          `json:"beneficiador" validate:"required,max=120"`
	Material        string          `json:"material" validate:"required"`
	SentKg          decimal.Decimal `json:"pesoEnviadoKg"`
	ChargedLossPct  decimal.Decimal `json:"perdaCobradaPct"`
	PriceKg         decimal.Decimal `json:"custoKg"`
	Freight         decimal.Decimal `json:"frete"`
	MaterialPriceKg decimal.Decimal `json:"precoMaterialKg"`
	Notes           string          `json:"observacoes" validate:"max=500"`
}

// ReturnInput records the weight that came back from the processor.
type ReturnInput struct {
	ReturnedAt string          `json:"dataRetorno" validate:"required,datetime=2006-01-02"`
	ReturnedKg decimal.Decimal `json:"pesoRetornadoKg"`
}
