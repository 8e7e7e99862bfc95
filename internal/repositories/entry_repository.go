package repositories

import (
	"context"

	intconfig "ibrac/internal/config"
	"ibrac/internal/domain"
	"ibrac/internal/domain/models"

	"github.com/jmoiron/sqlx"
	"github.com/shopspring/decimal"
)

const TableEntries = "entradas"

// EntryRepository persists intakes.
type EntryRepository struct {
	DB *sqlx.DB
}

func (r EntryRepository) db() *sqlx.DB {
	if r.DB != nil {
		return r.DB
	}
	return intconfig.DB
}

func (r EntryRepository) Source() TableSource[models.Entry] {
	return TableSource[models.Entry]{DB: r.db()}
}

// Create inserts e and returns its new id.
func (r EntryRepository) Create(ctx context.Context, e models.Entry) (int64, error) {
	db := r.db()
	if db == nil {
		return 0, errNoDB
	}
	res, err := db.ExecContext(ctx, `
		INSERT INTO entradas (data, fornecedor, material, peso_kg, preco_kg, valor_total, observacoes, created_by)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?)
	`, e.Date, e.Supplier, e.Material, e.WeightKg, e.PriceKg, e.Total, e.Notes, e.CreatedBy)
	if err != nil {
		return 0, mapError(TableEntries, err)
	}
	return res.LastInsertId()
}

func (r EntryRepository) GetByID(ctx context.Context, id int64) (models.Entry, error) {
	return getByID[models.Entry](ctx, r.db(), TableEntries, id)
}

func (r EntryRepository) Delete(ctx context.Context, id int64) error {
	return deleteByID(ctx, r.db(), TableEntries, id)
}

// SumTotal is the purchase value registered in p.
func (r EntryRepository) SumTotal(ctx context.Context, p domain.Period) (decimal.Decimal, error) {
	return sumInPeriod(ctx, r.db(), TableEntries, "valor_total", "data", p)
}
