package helper

import (
	"errors"

	"github.com/jackc/pgx/v5/pgconn"
	"gorm.io/gorm"
)

// IsDuplicateKey true jika error berasal dari unique violation (Postgres 23505).
// Dipakai untuk membedakan "already registered" dari error lain supaya
// client dapat pesan yang jelas, bukan 500 generik.
func IsDuplicateKey(err error) bool {
	if err == nil {
		return false
	}
	if errors.Is(err, gorm.ErrDuplicatedKey) {
		return true
	}
	var pgErr *pgconn.PgError
	return errors.As(err, &pgErr) && pgErr.Code == "23505"
}

// DuplicateConstraint nama constraint yang dilanggar pada unique violation,
// string kosong jika tidak tersedia (mis. error non-Postgres).
func DuplicateConstraint(err error) string {
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) && pgErr.Code == "23505" {
		return pgErr.ConstraintName
	}
	return ""
}

// IsNotFound true jika record tidak ditemukan.
func IsNotFound(err error) bool {
	return errors.Is(err, gorm.ErrRecordNotFound)
}
