package repository

import (
	"context"
	"fmt"

	"github.com/mbeckers/routinely/internal/db"
	"github.com/mbeckers/routinely/internal/domain"
)

// SQLiteHistoryRepo implements HistoryRepo. Entries are stored in slice
// order and listed by rowid, so the append order the progress calculator
// trims on survives the round trip.
type SQLiteHistoryRepo struct {
	db db.DBTX
}

// NewSQLiteHistoryRepo creates a new SQLiteHistoryRepo.
func NewSQLiteHistoryRepo(dbtx db.DBTX) *SQLiteHistoryRepo {
	return &SQLiteHistoryRepo{db: dbtx}
}

func (r *SQLiteHistoryRepo) List(ctx context.Context, userID string) ([]domain.PerformanceEntry, error) {
	rows, err := r.db.QueryContext(ctx,
		`SELECT date_key, progress FROM performance_history WHERE user_id = ? ORDER BY rowid`, userID)
	if err != nil {
		return nil, fmt.Errorf("listing performance history: %w", err)
	}
	defer rows.Close()

	var entries []domain.PerformanceEntry
	for rows.Next() {
		var entry domain.PerformanceEntry
		if err := rows.Scan(&entry.DateKey, &entry.Progress); err != nil {
			return nil, fmt.Errorf("scanning history entry: %w", err)
		}
		entries = append(entries, entry)
	}
	return entries, rows.Err()
}

func (r *SQLiteHistoryRepo) Replace(ctx context.Context, userID string, entries []domain.PerformanceEntry) error {
	if _, err := r.db.ExecContext(ctx,
		`DELETE FROM performance_history WHERE user_id = ?`, userID); err != nil {
		return fmt.Errorf("clearing performance history: %w", err)
	}
	for _, entry := range entries {
		if _, err := r.db.ExecContext(ctx,
			`INSERT INTO performance_history (user_id, date_key, progress) VALUES (?, ?, ?)`,
			userID, entry.DateKey, entry.Progress,
		); err != nil {
			return fmt.Errorf("inserting history entry %s: %w", entry.DateKey, err)
		}
	}
	return nil
}
