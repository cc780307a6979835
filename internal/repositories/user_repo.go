package repositories

import (
	"database/sql"

	"tripplanner/internal/domain"
	"tripplanner/internal/domain/models"
)

type UserRepository struct {
	DB *sql.DB
}

// GetByEmail returns the user together with the stored password hash.
func (r UserRepository) GetByEmail(email string) (models.User, string, error) {
	var u models.User
	var hash string
	err := r.DB.QueryRow(`
		SELECT id, name, email, password_hash, role
		FROM users
		WHERE email = ?
	`, email).Scan(&u.ID, &u.Name, &u.Email, &hash, &u.Role)
	if err == sql.ErrNoRows {
		return u, "", domain.NotFoundError{Resource: "user"}
	}
	return u, hash, err
}

func (r UserRepository) EmailTaken(email string) (bool, error) {
	var n int
	if err := r.DB.QueryRow(`SELECT COUNT(*) FROM users WHERE email = ?`, email).Scan(&n); err != nil {
		return false, err
	}
	return n > 0, nil
}

func (r UserRepository) Insert(u models.User, passwordHash string) error {
	_, err := r.DB.Exec(`
		INSERT INTO users (id, name, email, password_hash, role, created_at)
		VALUES (?, ?, ?, ?, ?, NOW())
	`, u.ID, u.Name, u.Email, passwordHash, u.Role)
	return err
}
