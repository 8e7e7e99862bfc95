package services

import (
	"context"
	"regexp"
	"testing"
	"time"

	"ibrac/internal/domain"
	"ibrac/internal/repositories"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFinanceSummary(t *testing.T) {
	db, mock := newMock(t)
	svc := FinanceService{
		EntryRepo:      repositories.EntryRepository{DB: db},
		ExitRepo:       repositories.ExitRepository{DB: db},
		ProcessingRepo: repositories.ProcessingRepository{DB: db},
	}
	sent := time.Date(2025, 5, 1, 0, 0, 0, 0, time.Local)
	back := time.Date(2025, 5, 10, 0, 0, 0, 0, time.Local)

	sum := func(v string) *sqlmock.Rows { return sqlmock.NewRows([]string{"total"}).AddRow(v) }
	mock.ExpectQuery(regexp.QuoteMeta("FROM `entradas`")).WillReturnRows(sum("10000"))
	mock.ExpectQuery(regexp.QuoteMeta("FROM `saidas`")).WillReturnRows(sum("15000"))
	mock.ExpectQuery(regexp.QuoteMeta("FROM `beneficiamentos`")).WillReturnRows(sum("1800"))
	mock.ExpectQuery(regexp.QuoteMeta("SELECT * FROM `beneficiamentos` WHERE status = ?")).
		WillReturnRows(sqlmock.NewRows(batchCols).
			AddRow(int64(1), sent, back, "Fundição X", "cobre_misto", "1000", "970", "5", "1.5", "300", "40", "retornado", "", int64(1), sent))

	got, err := svc.Summary(context.Background(), domain.Period{})
	require.NoError(t, err)
	assert.Equal(t, "10000", got.Purchases.String())
	assert.Equal(t, "15000", got.Sales.String())
	assert.Equal(t, "800", got.ProcessingResult.String())
	assert.Equal(t, "3200", got.GrossMargin.String())
	assert.Equal(t, "4000", got.NetResult.String())
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestFinanceSummaryRejectsInvertedPeriod(t *testing.T) {
	p := domain.Period{
		Start: time.Date(2025, 6, 1, 0, 0, 0, 0, time.Local),
		End:   time.Date(2025, 5, 1, 0, 0, 0, 0, time.Local),
	}
	_, err := FinanceService{}.Summary(context.Background(), p)
	assert.True(t, domain.IsValidation(err))
}
