package models

import "time"

// User is a dashboard account.
type User struct {
	ID           int64     `db:"id" json:"id"`
	Name         string    `db:"nome" json:"nome"`
	Email        string    `db:"email" json:"email"`
	PasswordHash string    `db:"password_hash" json:"-"`
	Role         string    `db:"role" json:"role"`
	Active       bool      `db:"ativo" json:"ativo"`
	CreatedAt    time.Time `db:"created_at" json:"createdAt"`
}
