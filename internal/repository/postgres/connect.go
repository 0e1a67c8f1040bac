package postgres

import (
	"database/sql"
	"fmt"
	"time"

	_ "github.com/lib/pq"
	"go.uber.org/zap"
)

const (
	connectAttempts = 5
	connectDelay    = 2 * time.Second
)

// Open connects to PostgreSQL and waits until the server answers
func Open(dsn string, logger *zap.Logger) (*sql.DB, error) {
	db, err := sql.Open("postgres", dsn)
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}

	if err := WaitReady(db, connectAttempts, connectDelay, logger); err != nil {
		db.Close()
		return nil, err
	}

	// One interactive session, one connection
	db.SetMaxOpenConns(1)
	db.SetConnMaxLifetime(5 * time.Minute)

	return db, nil
}

// WaitReady pings db until it answers or attempts run out
func WaitReady(db *sql.DB, attempts int, delay time.Duration, logger *zap.Logger) error {
	var err error
	for attempt := 1; attempt <= attempts; attempt++ {
		if err = db.Ping(); err == nil {
			return nil
		}

		logger.Warn("Database not ready", zap.Int("attempt", attempt), zap.Error(err))
		if attempt < attempts {
			time.Sleep(delay)
		}
	}
	return fmt.Errorf("database not ready after %d attempts: %w", attempts, err)
}
