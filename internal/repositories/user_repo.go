package repositories

import (
	"database/sql"

	intconfig "sayarti/internal/config"
	"sayarti/internal/domain"
)

type User struct {
	ID           int64  `json:"id"`
	Name         string `json:"name"`
	Email        string `json:"email"`
	PasswordHash string `json:"-"`
	Role         string `json:"role"`
	IsApproved   bool   `json:"is_approved"`
	IsActive     bool   `json:"is_active"`
}

type UserRepository struct {
	DB *sql.DB
}

func (r UserRepository) db() *sql.DB {
	if r.DB != nil {
		return r.DB
	}
	return intconfig.DB
}

func (r UserRepository) GetByEmail(email string) (User, error) {
	var rec User
	db := r.db()
	if db == nil {
		return rec, domain.InternalError{Msg: "database not connected"}
	}

	err := db.QueryRow(`
		SELECT id, name, email, password_hash, role, is_approved, is_active
		FROM users
		WHERE email = ?`, email).Scan(
		&rec.ID,
		&rec.Name,
		&rec.Email,
		&rec.PasswordHash,
		&rec.Role,
		&rec.IsApproved,
		&rec.IsActive,
	)
	if err == sql.ErrNoRows {
		return rec, domain.NotFoundError{Resource: "user"}
	}
	return rec, err
}
