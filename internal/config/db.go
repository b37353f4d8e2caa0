package config

import (
	"context"
	"database/sql"
	"time"

	_ "github.com/go-sql-driver/mysql"
)

// OpenDB opens the MySQL pool described by cfg and verifies connectivity.
// The handle is returned to the caller, which owns its lifetime; nothing
// in this package keeps a reference.
func OpenDB(cfg Config) (*sql.DB, error) {
	db, err := sql.Open("mysql", cfg.DBDSN)
	if err != nil {
		return nil, err
	}

	db.SetMaxOpenConns(25)
	db.SetMaxIdleConns(25)
	db.SetConnMaxLifetime(10 * time.Minute)
	db.SetConnMaxIdleTime(5 * time.Minute)

	ctx, cancel := context.WithTimeout(context.Background(), 3*time.Second)
	defer cancel()

	if err := db.PingContext(ctx); err != nil {
		_ = db.Close()
		return nil, err
	}
	return db, nil
}

// InitSchema creates the two tables the service owns when they do not
// exist yet. Dates and times are stored as text in the same shape the API
// exchanges them (YYYY-MM-DD and HH:MM).
func InitSchema(db *sql.DB) error {
	stmts := []string{
		`CREATE TABLE IF NOT EXISTS bookings (
			id BIGINT AUTO_INCREMENT PRIMARY KEY,
			pickup VARCHAR(200) NOT NULL,
			destination VARCHAR(200) NOT NULL,
			date VARCHAR(10) NOT NULL,
			time VARCHAR(5) NOT NULL,
			passengers INT NOT NULL DEFAULT 1,
			service_type VARCHAR(20) NOT NULL DEFAULT 'standard',
			name VARCHAR(100) NOT NULL,
			phone VARCHAR(30) NOT NULL,
			email VARCHAR(254),
			notes TEXT,
			status VARCHAR(20) NOT NULL DEFAULT 'pending',
			created_at DATETIME NOT NULL DEFAULT CURRENT_TIMESTAMP,
			updated_at DATETIME NOT NULL DEFAULT CURRENT_TIMESTAMP
		)`,
		`CREATE TABLE IF NOT EXISTS admin_users (
			id BIGINT AUTO_INCREMENT PRIMARY KEY,
			username VARCHAR(100) NOT NULL UNIQUE,
			password VARCHAR(100) NOT NULL,
			email VARCHAR(254),
			created_at DATETIME NOT NULL DEFAULT CURRENT_TIMESTAMP
		)`,
	}
	for _, s := range stmts {
		if _, err := db.Exec(s); err != nil {
			return err
		}
	}
	return nil
}
