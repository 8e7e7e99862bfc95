package services

import (
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/jmoiron/sqlx"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/require"
)

func newMock(t *testing.T) (*sqlx.DB, sqlmock.Sqlmock) {
	t.Helper()
	conn, mock, err := sqlmock.New()
	require.NoError(t, err)
	t.Cleanup(func() { conn.Close() })
	return sqlx.NewDb(conn, "sqlmock"), mock
}

func dec(s string) decimal.Decimal { return decimal.RequireFromString(s) }

var batchCols = []string{
	"id", "data_envio", "data_retorno", "beneficiador", "material", "peso_enviado", "peso_retornado",
	"perda_cobrada_pct", "custo_kg", "frete", "preco_material_kg", "status", "observacoes", "created_by", "created_at",
}
