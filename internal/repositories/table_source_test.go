package repositories

import (
	"context"
	"errors"
	"regexp"
	"testing"
	"time"

	"ibrac/internal/domain"
	"ibrac/internal/domain/models"
	"ibrac/internal/pagination"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/go-sql-driver/mysql"
	"github.com/jmoiron/sqlx"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newMock(t *testing.T) (*sqlx.DB, sqlmock.Sqlmock) {
	t.Helper()
	conn, mock, err := sqlmock.New()
	require.NoError(t, err)
	t.Cleanup(func() { conn.Close() })
	return sqlx.NewDb(conn, "sqlmock"), mock
}

var entryCols = []string{"id", "data", "fornecedor", "material", "peso_kg", "preco_kg", "valor_total", "observacoes", "created_by", "created_at"}

func TestQueryBuilders(t *testing.T) {
	d := pagination.NewDescriptor("entradas").
		WithColumns("id, peso_kg").
		WithFilter("material", "latao").
		WithFilter("fornecedor", "Metais SA").
		WithOrder("data", false)

	q, args := countQuery(d)
	assert.Equal(t, "SELECT COUNT(*) FROM `entradas` WHERE `fornecedor` = ? AND `material` = ?", q)
	assert.Equal(t, []any{"Metais SA", "latao"}, args)

	q, args = pageQuery(d, pagination.WindowFor(5, 50))
	assert.Equal(t, "SELECT `id`, `peso_kg` FROM `entradas` WHERE `fornecedor` = ? AND `material` = ? ORDER BY `data` DESC LIMIT ? OFFSET ?", q)
	assert.Equal(t, []any{"Metais SA", "latao", 50, 200}, args)

	q, _ = pageQuery(pagination.NewDescriptor("estoque").WithOrder("material", true), pagination.WindowFor(1, 25))
	assert.Equal(t, "SELECT * FROM `estoque` ORDER BY `material` ASC LIMIT ? OFFSET ?", q)
}

func TestTableSourceCountAndFetch(t *testing.T) {
	db, mock := newMock(t)
	src := TableSource[models.Entry]{DB: db}
	d := pagination.NewDescriptor("entradas").WithFilter("material", "cobre_mel").WithOrder("id", true)

	mock.ExpectQuery(regexp.QuoteMeta("SELECT COUNT(*) FROM `entradas` WHERE `material` = ?")).
		WithArgs("cobre_mel").
		WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(237))

	day := time.Date(2025, 4, 2, 0, 0, 0, 0, time.Local)
	rows := sqlmock.NewRows(entryCols)
	for i := 0; i < 37; i++ {
		rows.AddRow(int64(201+i), day, "Metais SA", "cobre_mel", "100.500", "42.5", "4271.25", "", int64(1), day)
	}
	mock.ExpectQuery(regexp.QuoteMeta("SELECT * FROM `entradas` WHERE `material` = ? ORDER BY `id` ASC LIMIT ? OFFSET ?")).
		WithArgs("cobre_mel", 50, 200).
		WillReturnRows(rows)

	p := pagination.New[models.Entry](src, d, 50)
	require.NoError(t, p.Load(context.Background(), 5))

	snap := p.Snapshot()
	assert.Equal(t, 5, snap.State.TotalPages)
	assert.Equal(t, 5, snap.State.Page)
	require.Len(t, snap.Rows, 37)
	assert.Equal(t, int64(201), snap.Rows[0].ID)
	assert.Equal(t, "4271.25", snap.Rows[0].Total.String())
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestTableSourceRejectsUnsafeDescriptor(t *testing.T) {
	db, mock := newMock(t)
	src := TableSource[models.Entry]{DB: db}

	_, err := src.Count(context.Background(), pagination.NewDescriptor("entradas").WithOrder("id; DROP", true))
	assert.ErrorIs(t, err, pagination.ErrInvalidDescriptor)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestTableSourceTransportError(t *testing.T) {
	db, mock := newMock(t)
	src := TableSource[models.Entry]{DB: db}
	boom := errors.New("i/o timeout")

	mock.ExpectQuery("SELECT COUNT").WillReturnError(boom)

	_, err := pagination.FetchCount[models.Entry](context.Background(), src, pagination.NewDescriptor("entradas"))
	require.True(t, pagination.IsFetchError(err))
	assert.ErrorIs(t, err, boom)
}

func TestMapError(t *testing.T) {
	assert.Nil(t, mapError("x", nil))
	assert.True(t, domain.IsConflict(mapError("users", &mysql.MySQLError{Number: 1062, Message: "Duplicate entry"})))
	assert.True(t, domain.IsConflict(mapError("materiais", &mysql.MySQLError{Number: 1451})))
	assert.True(t, domain.IsValidation(mapError("entradas", &mysql.MySQLError{Number: 1452})))
}
