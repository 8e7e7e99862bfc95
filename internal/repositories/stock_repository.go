package repositories

import (
	"context"

	intconfig "ibrac/internal/config"
	"ibrac/internal/domain"
	"ibrac/internal/domain/models"

	"github.com/jmoiron/sqlx"
	"github.com/shopspring/decimal"
)

const ViewStock = "estoque"

// StockRepository reads the estoque view.
type StockRepository struct {
	DB *sqlx.DB
}

func (r StockRepository) db() *sqlx.DB {
	if r.DB != nil {
		return r.DB
	}
	return intconfig.DB
}

func (r StockRepository) Source() TableSource[models.StockLevel] {
	return TableSource[models.StockLevel]{DB: r.db()}
}

// Balance returns the kg of material currently in the yard.
func (r StockRepository) Balance(ctx context.Context, material string) (decimal.Decimal, error) {
	db := r.db()
	if db == nil {
		return decimal.Zero, errNoDB
	}
	var bal decimal.Decimal
	if err := db.GetContext(ctx, &bal, "SELECT saldo_kg FROM `estoque` WHERE material = ?", material); err != nil {
		if domain.IsNotFound(mapError(ViewStock, err)) {
			return decimal.Zero, nil
		}
		return decimal.Zero, mapError(ViewStock, err)
	}
	return bal, nil
}

// All returns every material row, ordered by material.
func (r StockRepository) All(ctx context.Context) ([]models.StockLevel, error) {
	db := r.db()
	if db == nil {
		return nil, errNoDB
	}
	out := []models.StockLevel{}
	if err := db.SelectContext(ctx, &out, "SELECT * FROM `estoque` ORDER BY material ASC"); err != nil {
		return nil, mapError(ViewStock, err)
	}
	return out, nil
}
