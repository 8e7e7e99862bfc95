package repositories

import (
	"context"

	intconfig "ibrac/internal/config"
	"ibrac/internal/domain"
	"ibrac/internal/domain/models"

	"github.com/jmoiron/sqlx"
	"github.com/shopspring/decimal"
)

const TableExits = "saidas"

// ExitRepository persists outtakes.
type ExitRepository struct {
	DB *sqlx.DB
}

func (r ExitRepository) db() *sqlx.DB {
	if r.DB != nil {
		return r.DB
	}
	return intconfig.DB
}

func (r ExitRepository) Source() TableSource[models.Exit] {
	return TableSource[models.Exit]{DB: r.db()}
}

func (r ExitRepository) Create(ctx context.Context, e models.Exit) (int64, error) {
	db := r.db()
	if db == nil {
		return 0, errNoDB
	}
	res, err := db.ExecContext(ctx, `
		INSERT INTO saidas (data, cliente, material, peso_kg, preco_kg, valor_total, nota_fiscal, observacoes, created_by)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?)
	`, e.Date, e.Customer, e.Material, e.WeightKg, e.PriceKg, e.Total, e.InvoiceNumber, e.Notes, e.CreatedBy)
	if err != nil {
		return 0, mapError(TableExits, err)
	}
	return res.LastInsertId()
}

func (r ExitRepository) GetByID(ctx context.Context, id int64) (models.Exit, error) {
	return getByID[models.Exit](ctx, r.db(), TableExits, id)
}

func (r ExitRepository) Delete(ctx context.Context, id int64) error {
	return deleteByID(ctx, r.db(), TableExits, id)
}

// SumTotal is the sales value registered in p.
func (r ExitRepository) SumTotal(ctx context.Context, p domain.Period) (decimal.Decimal, error) {
	return sumInPeriod(ctx, r.db(), TableExits, "valor_total", "data", p)
}
