package repositories

import (
	"context"
	"strings"

	intconfig "ibrac/internal/config"
	"ibrac/internal/domain/models"

	"github.com/jmoiron/sqlx"
)

const TableUsers = "users"

type UserRepository struct {
	DB *sqlx.DB
}

func (r UserRepository) db() *sqlx.DB {
	if r.DB != nil {
		return r.DB
	}
	return intconfig.DB
}

func (r UserRepository) Source() TableSource[models.User] {
	return TableSource[models.User]{DB: r.db()}
}

func (r UserRepository) GetByEmail(ctx context.Context, email string) (models.User, error) {
	db := r.db()
	if db == nil {
		return models.User{}, errNoDB
	}
	var u models.User
	err := db.GetContext(ctx, &u, `
		SELECT id, nome, email, password_hash, role, ativo, created_at
		FROM users
		WHERE email = ?
	`, strings.ToLower(strings.TrimSpace(email)))
	if err != nil {
		return models.User{}, mapError(TableUsers, err)
	}
	return u, nil
}

func (r UserRepository) GetByID(ctx context.Context, id int64) (models.User, error) {
	return getByID[models.User](ctx, r.db(), TableUsers, id)
}

func (r UserRepository) Create(ctx context.Context, u models.User) (int64, error) {
	db := r.db()
	if db == nil {
		return 0, errNoDB
	}
	res, err := db.ExecContext(ctx, `
		INSERT INTO users (nome, email, password_hash, role, ativo)
		VALUES (?, ?, ?, ?, ?)
	`, u.Name, strings.ToLower(strings.TrimSpace(u.Email)), u.PasswordHash, u.Role, u.Active)
	if err != nil {
		return 0, mapError(TableUsers, err)
	}
	return res.LastInsertId()
}
