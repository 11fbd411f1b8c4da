package repository

import (
	"context"
	"fmt"

	"github.com/mbeckers/routinely/internal/db"
)

// SQLiteNotificationRepo implements NotificationRepo. MarkNotified is
// INSERT OR IGNORE, so the periodic check may re-fire freely.
type SQLiteNotificationRepo struct {
	db db.DBTX
}

// NewSQLiteNotificationRepo creates a new SQLiteNotificationRepo.
func NewSQLiteNotificationRepo(dbtx db.DBTX) *SQLiteNotificationRepo {
	return &SQLiteNotificationRepo{db: dbtx}
}

func (r *SQLiteNotificationRepo) ListNotified(ctx context.Context, userID, dateKey string) (map[string]bool, error) {
	rows, err := r.db.QueryContext(ctx,
		`SELECT instance_id FROM notified WHERE user_id = ? AND date_key = ?`, userID, dateKey)
	if err != nil {
		return nil, fmt.Errorf("listing notified instances: %w", err)
	}
	defer rows.Close()

	notified := make(map[string]bool)
	for rows.Next() {
		var instanceID string
		if err := rows.Scan(&instanceID); err != nil {
			return nil, fmt.Errorf("scanning notified instance: %w", err)
		}
		notified[instanceID] = true
	}
	return notified, rows.Err()
}

func (r *SQLiteNotificationRepo) MarkNotified(ctx context.Context, userID, dateKey, instanceID string) error {
	if _, err := r.db.ExecContext(ctx,
		`INSERT OR IGNORE INTO notified (user_id, date_key, instance_id) VALUES (?, ?, ?)`,
		userID, dateKey, instanceID,
	); err != nil {
		return fmt.Errorf("marking notified: %w", err)
	}
	return nil
}
