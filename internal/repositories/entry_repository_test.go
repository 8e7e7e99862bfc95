package repositories

import (
	"context"
	"database/sql"
	"regexp"
	"testing"
	"time"

	"ibrac/internal/domain"
	"ibrac/internal/domain/models"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEntryRepositoryCreate(t *testing.T) {
	db, mock := newMock(t)
	repo := EntryRepository{DB: db}
	day := time.Date(2025, 4, 2, 0, 0, 0, 0, time.Local)

	mock.ExpectExec("INSERT INTO entradas").
		WithArgs(day, "Metais SA", "latao", "120.5", "30", "3615", "", int64(7)).
		WillReturnResult(sqlmock.NewResult(42, 1))

	id, err := repo.Create(context.Background(), models.Entry{
		Date:      day,
		Supplier:  "Metais SA",
		Material:  "latao",
		WeightKg:  decimal.RequireFromString("120.5"),
		PriceKg:   decimal.NewFromInt(30),
		Total:     decimal.NewFromInt(3615),
		CreatedBy: 7,
	})
	require.NoError(t, err)
	assert.Equal(t, int64(42), id)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestEntryRepositoryNotFound(t *testing.T) {
	db, mock := newMock(t)
	repo := EntryRepository{DB: db}

	mock.ExpectQuery(regexp.QuoteMeta("SELECT * FROM `entradas` WHERE id = ?")).
		WithArgs(int64(9)).
		WillReturnError(sql.ErrNoRows)
	_, err := repo.GetByID(context.Background(), 9)
	assert.True(t, domain.IsNotFound(err))

	mock.ExpectExec(regexp.QuoteMeta("DELETE FROM `entradas` WHERE id = ?")).
		WithArgs(int64(9)).
		WillReturnResult(sqlmock.NewResult(0, 0))
	err = repo.Delete(context.Background(), 9)
	assert.True(t, domain.IsNotFound(err))
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestEntryRepositorySumTotal(t *testing.T) {
	db, mock := newMock(t)
	repo := EntryRepository{DB: db}
	start := time.Date(2025, 1, 1, 0, 0, 0, 0, time.Local)
	end := time.Date(2025, 1, 31, 0, 0, 0, 0, time.Local)

	mock.ExpectQuery(regexp.QuoteMeta("SELECT COALESCE(SUM(valor_total), 0) FROM `entradas` WHERE `data` >= ? AND `data` <= ?")).
		WithArgs(start, end).
		WillReturnRows(sqlmock.NewRows([]string{"total"}).AddRow("15320.75"))

	total, err := repo.SumTotal(context.Background(), domain.Period{Start: start, End: end})
	require.NoError(t, err)
	assert.Equal(t, "15320.75", total.String())
	assert.NoError(t, mock.ExpectationsWereMet())
}
