// pkg/snapshot/accounts.go
package snapshot

import (
	"context"
	"fmt"
	"time"

	"go.uber.org/zap"

	"github.com/sunbrite/shopmigrate/pkg/connector"
	"github.com/sunbrite/shopmigrate/pkg/model"
)

// Backup reads the full users table and writes it to a new snapshot file.
// Run before the destination schema is recreated.
func (s *Store) Backup(ctx context.Context, postgres connector.DatabaseConnector) (string, error) {
	rows, err := postgres.QueryWithTimeout(ctx,
		`SELECT id, username, password_hash, is_admin, created_at FROM users ORDER BY id`,
		time.Minute)
	if err != nil {
		return "", fmt.Errorf("failed to read users table: %w", err)
	}
	defer rows.Close()

	accounts := make([]model.Account, 0)
	for rows.Next() {
		var account model.Account
		if err := rows.Scan(
			&account.ID,
			&account.Username,
			&account.PasswordHash,
			&account.IsAdmin,
			&account.CreatedAt,
		); err != nil {
			return "", fmt.Errorf("failed to scan account row: %w", err)
		}
		accounts = append(accounts, account)
	}
	if err := rows.Err(); err != nil {
		return "", fmt.Errorf("error iterating users table: %w", err)
	}

	return s.Write(accounts)
}

// Restore re-inserts accounts from the most recent snapshot into the freshly
// created (empty) users table, preserving original identifiers.
func (s *Store) Restore(ctx context.Context, postgres connector.DatabaseConnector) (int, error) {
	path, err := s.Latest()
	if err != nil {
		return 0, err
	}

	accounts, err := s.Read(path)
	if err != nil {
		return 0, err
	}

	for _, account := range accounts {
		_, err := postgres.ExecWithTimeout(ctx,
			`INSERT INTO users (id, username, password_hash, is_admin, created_at)
			 VALUES ($1, $2, $3, $4, $5)`,
			time.Minute,
			account.ID,
			account.Username,
			account.PasswordHash,
			account.IsAdmin,
			account.CreatedAt,
		)
		if err != nil {
			return 0, fmt.Errorf("failed to restore account %d (%s): %w", account.ID, account.Username, err)
		}
	}

	s.logger.Info("Restored accounts from snapshot",
		zap.String("path", path),
		zap.Int("accounts", len(accounts)))

	return len(accounts), nil
}
