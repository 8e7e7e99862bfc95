package repositories

import (
	"context"
	"time"

	intconfig "ibrac/internal/config"
	"ibrac/internal/domain"
	"ibrac/internal/domain/models"

	"github.com/jmoiron/sqlx"
	"github.com/shopspring/decimal"
)

const TableProcessing = "beneficiamentos"

// ProcessingRepository persists beneficiamento batches.
type ProcessingRepository struct {
	DB *sqlx.DB
}

func (r ProcessingRepository) db() *sqlx.DB {
	if r.DB != nil {
		return r.DB
	}
	return intconfig.DB
}

func (r ProcessingRepository) Source() TableSource[models.ProcessingBatch] {
	return TableSource[models.ProcessingBatch]{DB: r.db()}
}

func (r ProcessingRepository) Create(ctx context.Context, b models.ProcessingBatch) (int64, error) {
	db := r.db()
	if db == nil {
		return 0, errNoDB
	}
	res, err := db.ExecContext(ctx, `
		INSERT INTO beneficiamentos
		  (data_envio, beneficiador, material, peso_enviado, perda_cobrada_pct, custo_kg, frete, preco_material_kg, status, observacoes, created_by)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)
	`, b.SentAt, b.Processor, b.Material, b.SentKg, b.ChargedLossPct, b.PriceKg, b.Freight, b.MaterialPriceKg, models.BatchSent, b.Notes, b.CreatedBy)
	if err != nil {
		return 0, mapError(TableProcessing, err)
	}
	return res.LastInsertId()
}

func (r ProcessingRepository) GetByID(ctx context.Context, id int64) (models.ProcessingBatch, error) {
	return getByID[models.ProcessingBatch](ctx, r.db(), TableProcessing, id)
}

// MarkReturned records the returned weight of a batch still at the processor.
func (r ProcessingRepository) MarkReturned(ctx context.Context, id int64, at time.Time, returnedKg decimal.Decimal) error {
	db := r.db()
	if db == nil {
		return errNoDB
	}
	res, err := db.ExecContext(ctx, `
		UPDATE beneficiamentos
		SET data_retorno = ?, peso_retornado = ?, status = ?
		WHERE id = ? AND status = ?
	`, at, returnedKg, models.BatchReturned, id, models.BatchSent)
	if err != nil {
		return mapError(TableProcessing, err)
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return domain.ConflictError{Resource: TableProcessing, Msg: "lote inexistente ou já retornado"}
	}
	return nil
}

func (r ProcessingRepository) Delete(ctx context.Context, id int64) error {
	return deleteByID(ctx, r.db(), TableProcessing, id)
}

// SumCost is processing price times sent weight plus freight for batches sent in p.
func (r ProcessingRepository) SumCost(ctx context.Context, p domain.Period) (decimal.Decimal, error) {
	return sumInPeriod(ctx, r.db(), TableProcessing, "peso_enviado * custo_kg + frete", "data_envio", p)
}

// ListReturned returns every batch that came back within p.
func (r ProcessingRepository) ListReturned(ctx context.Context, p domain.Period) ([]models.ProcessingBatch, error) {
	db := r.db()
	if db == nil {
		return nil, errNoDB
	}
	where, args := periodWhere("data_retorno", p)
	if where == "" {
		where = " WHERE status = ?"
	} else {
		where += " AND status = ?"
	}
	args = append(args, models.BatchReturned)
	out := []models.ProcessingBatch{}
	if err := db.SelectContext(ctx, &out, "SELECT * FROM `beneficiamentos`"+where+" ORDER BY data_retorno ASC, id ASC", args...); err != nil {
		return nil, mapError(TableProcessing, err)
	}
	return out, nil
}
