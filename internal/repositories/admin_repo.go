package repositories

import (
	"database/sql"

	"vtc-booking/internal/domain/models"
)

// AdminRepo owns the admin_users table.
type AdminRepo struct {
	DB *sql.DB
}

// Count returns how many principals exist. The bootstrap guard relies on it.
func (r AdminRepo) Count() (int, error) {
	var n int
	err := r.DB.QueryRow(`SELECT COUNT(*) FROM admin_users`).Scan(&n)
	return n, err
}

// Create inserts a principal and returns its id.
func (r AdminRepo) Create(username, passwordHash, email string) (int64, error) {
	res, err := r.DB.Exec(`
		INSERT INTO admin_users (username, password, email) VALUES (?, ?, ?)
	`, username, passwordHash, nullIfEmpty(email))
	if err != nil {
		return 0, err
	}
	return res.LastInsertId()
}

// GetByUsername returns the principal with its password hash, or
// sql.ErrNoRows when the username is unknown.
func (r AdminRepo) GetByUsername(username string) (models.AdminUser, error) {
	var u models.AdminUser
	err := r.DB.QueryRow(`
		SELECT id, username, password, COALESCE(email, ''), created_at
		FROM admin_users WHERE username = ? LIMIT 1
	`, username).Scan(&u.ID, &u.Username, &u.PasswordHash, &u.Email, &u.CreatedAt)
	if err != nil {
		return models.AdminUser{}, err
	}
	return u, nil
}
