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

// SQLiteProfileRepo implements ProfileRepo. The store holds one local user;
// Get returns domain.ErrNotFound on a fresh database, which the service
// layer treats as the valid "fresh user" state.
type SQLiteProfileRepo struct {
	db db.DBTX
}

// NewSQLiteProfileRepo creates a new SQLiteProfileRepo.
func NewSQLiteProfileRepo(dbtx db.DBTX) *SQLiteProfileRepo {
	return &SQLiteProfileRepo{db: dbtx}
}

func (r *SQLiteProfileRepo) Get(ctx context.Context) (*domain.Profile, error) {
	var p domain.Profile
	var joinedAtStr string
	err := r.db.QueryRowContext(ctx,
		`SELECT id, name, provider, joined_at, level, points FROM users ORDER BY joined_at LIMIT 1`,
	).Scan(&p.UserID, &p.Name, &p.Provider, &joinedAtStr, &p.Level, &p.Points)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrNotFound
		}
		return nil, fmt.Errorf("loading profile: %w", err)
	}
	p.JoinedAt = parseTimestamp(joinedAtStr)
	return &p, nil
}

func (r *SQLiteProfileRepo) Upsert(ctx context.Context, p *domain.Profile) error {
	_, err := r.db.ExecContext(ctx,
		`INSERT INTO users (id, name, provider, joined_at, level, points)
		 VALUES (?, ?, ?, ?, ?, ?)
		 ON CONFLICT(id) DO UPDATE SET name = excluded.name, level = excluded.level, points = excluded.points`,
		p.UserID, p.Name, p.Provider, p.JoinedAt.Format(time.RFC3339), p.Level, p.Points,
	)
	if err != nil {
		return fmt.Errorf("saving profile: %w", err)
	}
	return nil
}
