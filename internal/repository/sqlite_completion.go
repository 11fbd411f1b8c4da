package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/mbeckers/routinely/internal/db"
	"github.com/mbeckers/routinely/internal/domain"
)

// SQLiteCompletionRepo implements CompletionRepo. The at-most-one-record
// invariant lives in the primary key (user_id, date_key, instance_id);
// Record is INSERT OR IGNORE so concurrent attempts cannot double-record.
type SQLiteCompletionRepo struct {
	db db.DBTX
}

// NewSQLiteCompletionRepo creates a new SQLiteCompletionRepo.
func NewSQLiteCompletionRepo(dbtx db.DBTX) *SQLiteCompletionRepo {
	return &SQLiteCompletionRepo{db: dbtx}
}

func (r *SQLiteCompletionRepo) Record(ctx context.Context, rec *domain.CompletionRecord) (bool, error) {
	res, err := r.db.ExecContext(ctx,
		`INSERT OR IGNORE INTO completions (user_id, date_key, instance_id, routine_id, status, recorded_at)
		 VALUES (?, ?, ?, ?, ?, ?)`,
		rec.UserID,
		rec.DateKey,
		rec.InstanceID,
		rec.RoutineID,
		string(rec.Status),
		rec.RecordedAt.Format(time.RFC3339),
	)
	if err != nil {
		return false, fmt.Errorf("recording outcome: %w", err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return false, fmt.Errorf("recording outcome: %w", err)
	}
	return n > 0, nil
}

func (r *SQLiteCompletionRepo) StatusOf(ctx context.Context, userID, dateKey, instanceID string) (domain.CompletionStatus, bool, error) {
	var statusStr string
	err := r.db.QueryRowContext(ctx,
		`SELECT status FROM completions WHERE user_id = ? AND date_key = ? AND instance_id = ?`,
		userID, dateKey, instanceID,
	).Scan(&statusStr)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return "", false, nil
		}
		return "", false, fmt.Errorf("looking up outcome: %w", err)
	}
	return domain.CompletionStatus(statusStr), true, nil
}

func (r *SQLiteCompletionRepo) ListByDay(ctx context.Context, userID, dateKey string) ([]*domain.CompletionRecord, error) {
	rows, err := r.db.QueryContext(ctx,
		`SELECT user_id, date_key, instance_id, routine_id, status, recorded_at
		 FROM completions WHERE user_id = ? AND date_key = ? ORDER BY recorded_at, instance_id`,
		userID, dateKey)
	if err != nil {
		return nil, fmt.Errorf("listing day's outcomes: %w", err)
	}
	defer rows.Close()

	var records []*domain.CompletionRecord
	for rows.Next() {
		var rec domain.CompletionRecord
		var statusStr, recordedAtStr string
		if err := rows.Scan(&rec.UserID, &rec.DateKey, &rec.InstanceID, &rec.RoutineID, &statusStr, &recordedAtStr); err != nil {
			return nil, fmt.Errorf("scanning outcome: %w", err)
		}
		rec.Status = domain.CompletionStatus(statusStr)
		rec.RecordedAt = parseTimestamp(recordedAtStr)
		records = append(records, &rec)
	}
	return records, rows.Err()
}

func (r *SQLiteCompletionRepo) StatusMap(ctx context.Context, userID, dateKey string) (map[string]domain.CompletionStatus, error) {
	records, err := r.ListByDay(ctx, userID, dateKey)
	if err != nil {
		return nil, err
	}
	statuses := make(map[string]domain.CompletionStatus, len(records))
	for _, rec := range records {
		statuses[rec.InstanceID] = rec.Status
	}
	return statuses, nil
}
