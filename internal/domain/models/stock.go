package models

import "github.com/shopspring/decimal"

// StockLevel is one row of the estoque view.
type StockLevel struct {
	Material   string          `db:"material" json:"material"`
	InKg       decimal.Decimal `db:"entradas_kg" json:"entradasKg"`
	OutKg      decimal.Decimal `db:"saidas_kg" json:"saidasKg"`
	SentKg     decimal.Decimal `db:"enviado_kg" json:"enviadoKg"`
	ReturnedKg decimal.Decimal `db:"retornado_kg" json:"retornadoKg"`
	BalanceKg  decimal.Decimal `db:"saldo_kg" json:"saldoKg"`
}
