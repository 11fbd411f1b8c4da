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

// routineColumns is the canonical SELECT column list for routines.
const routineColumns = `id, user_id, name, points, frequency, frequency_count,
		time, duration_min, created_at`

// SQLiteRoutineRepo implements RoutineRepo over a DBTX, so the same code
// serves both plain reads and tx-scoped writes.
type SQLiteRoutineRepo struct {
	db db.DBTX
}

// NewSQLiteRoutineRepo creates a new SQLiteRoutineRepo.
func NewSQLiteRoutineRepo(dbtx db.DBTX) *SQLiteRoutineRepo {
	return &SQLiteRoutineRepo{db: dbtx}
}

func (r *SQLiteRoutineRepo) Create(ctx context.Context, routine *domain.Routine) error {
	res, err := r.db.ExecContext(ctx,
		`INSERT INTO routines (user_id, name, points, frequency, frequency_count, time, duration_min, created_at)
		 VALUES (?, ?, ?, ?, ?, ?, ?, ?)`,
		routine.UserID,
		routine.Name,
		routine.Points,
		string(routine.Frequency),
		routine.FrequencyCount,
		nullableString(routine.Time),
		nullableInt(routine.DurationMin),
		routine.CreatedAt.Format(time.RFC3339),
	)
	if err != nil {
		return fmt.Errorf("inserting routine: %w", err)
	}
	id, err := res.LastInsertId()
	if err != nil {
		return fmt.Errorf("reading routine id: %w", err)
	}
	routine.ID = id

	return r.insertSchedule(ctx, routine)
}

func (r *SQLiteRoutineRepo) insertSchedule(ctx context.Context, routine *domain.Routine) error {
	for i, slot := range routine.DailySlots {
		if _, err := r.db.ExecContext(ctx,
			`INSERT INTO routine_daily_slots (routine_id, slot_index, time, duration_min) VALUES (?, ?, ?, ?)`,
			routine.ID, i, slot.Time, slot.DurationMin,
		); err != nil {
			return fmt.Errorf("inserting daily slot %d: %w", i, err)
		}
	}
	for _, slot := range routine.WeekdaySlots {
		if _, err := r.db.ExecContext(ctx,
			`INSERT INTO routine_weekday_slots (routine_id, weekday, time, duration_min) VALUES (?, ?, ?, ?)`,
			routine.ID, slot.Weekday, slot.Time, slot.DurationMin,
		); err != nil {
			return fmt.Errorf("inserting weekday slot %d: %w", slot.Weekday, err)
		}
	}
	for _, day := range routine.MonthDays {
		if _, err := r.db.ExecContext(ctx,
			`INSERT INTO routine_month_days (routine_id, day) VALUES (?, ?)`,
			routine.ID, day,
		); err != nil {
			return fmt.Errorf("inserting month day %d: %w", day, err)
		}
	}
	return nil
}

func (r *SQLiteRoutineRepo) GetByID(ctx context.Context, userID string, id int64) (*domain.Routine, error) {
	row := r.db.QueryRowContext(ctx,
		`SELECT `+routineColumns+` FROM routines WHERE user_id = ? AND id = ?`, userID, id)
	routine, err := scanRoutine(row)
	if err != nil {
		return nil, err
	}
	if err := r.loadSchedule(ctx, routine); err != nil {
		return nil, err
	}
	return routine, nil
}

func (r *SQLiteRoutineRepo) List(ctx context.Context, userID string) ([]*domain.Routine, error) {
	rows, err := r.db.QueryContext(ctx,
		`SELECT `+routineColumns+` FROM routines WHERE user_id = ? ORDER BY created_at, id`, userID)
	if err != nil {
		return nil, fmt.Errorf("listing routines: %w", err)
	}
	defer rows.Close()

	var routines []*domain.Routine
	for rows.Next() {
		routine, err := scanRoutineRows(rows)
		if err != nil {
			return nil, err
		}
		routines = append(routines, routine)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating routines: %w", err)
	}

	for _, routine := range routines {
		if err := r.loadSchedule(ctx, routine); err != nil {
			return nil, err
		}
	}
	return routines, nil
}

func (r *SQLiteRoutineRepo) Update(ctx context.Context, routine *domain.Routine) error {
	res, err := r.db.ExecContext(ctx,
		`UPDATE routines SET name = ?, points = ?, frequency = ?, frequency_count = ?, time = ?, duration_min = ?
		 WHERE user_id = ? AND id = ?`,
		routine.Name,
		routine.Points,
		string(routine.Frequency),
		routine.FrequencyCount,
		nullableString(routine.Time),
		nullableInt(routine.DurationMin),
		routine.UserID,
		routine.ID,
	)
	if err != nil {
		return fmt.Errorf("updating routine: %w", err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("updating routine: %w", err)
	}
	if n == 0 {
		return domain.ErrNotFound
	}

	// Schedule shapes are replaced wholesale so a frequency switch leaves
	// no stale slots behind.
	for _, table := range []string{"routine_daily_slots", "routine_weekday_slots", "routine_month_days"} {
		if _, err := r.db.ExecContext(ctx, `DELETE FROM `+table+` WHERE routine_id = ?`, routine.ID); err != nil {
			return fmt.Errorf("clearing %s: %w", table, err)
		}
	}
	return r.insertSchedule(ctx, routine)
}

func (r *SQLiteRoutineRepo) Delete(ctx context.Context, userID string, id int64) error {
	res, err := r.db.ExecContext(ctx, `DELETE FROM routines WHERE user_id = ? AND id = ?`, userID, id)
	if err != nil {
		return fmt.Errorf("deleting routine: %w", err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("deleting routine: %w", err)
	}
	if n == 0 {
		return domain.ErrNotFound
	}
	return nil
}

func (r *SQLiteRoutineRepo) loadSchedule(ctx context.Context, routine *domain.Routine) error {
	switch routine.Frequency {
	case domain.FrequencyDaily:
		rows, err := r.db.QueryContext(ctx,
			`SELECT time, duration_min FROM routine_daily_slots WHERE routine_id = ? ORDER BY slot_index`, routine.ID)
		if err != nil {
			return fmt.Errorf("loading daily slots: %w", err)
		}
		defer rows.Close()
		for rows.Next() {
			var slot domain.ScheduleSlot
			if err := rows.Scan(&slot.Time, &slot.DurationMin); err != nil {
				return fmt.Errorf("scanning daily slot: %w", err)
			}
			routine.DailySlots = append(routine.DailySlots, slot)
		}
		return rows.Err()
	case domain.FrequencyWeekly:
		rows, err := r.db.QueryContext(ctx,
			`SELECT weekday, time, duration_min FROM routine_weekday_slots WHERE routine_id = ? ORDER BY weekday, time`, routine.ID)
		if err != nil {
			return fmt.Errorf("loading weekday slots: %w", err)
		}
		defer rows.Close()
		for rows.Next() {
			var slot domain.WeekdaySlot
			if err := rows.Scan(&slot.Weekday, &slot.Time, &slot.DurationMin); err != nil {
				return fmt.Errorf("scanning weekday slot: %w", err)
			}
			routine.WeekdaySlots = append(routine.WeekdaySlots, slot)
		}
		return rows.Err()
	case domain.FrequencyMonthly:
		rows, err := r.db.QueryContext(ctx,
			`SELECT day FROM routine_month_days WHERE routine_id = ? ORDER BY day`, routine.ID)
		if err != nil {
			return fmt.Errorf("loading month days: %w", err)
		}
		defer rows.Close()
		for rows.Next() {
			var day int
			if err := rows.Scan(&day); err != nil {
				return fmt.Errorf("scanning month day: %w", err)
			}
			routine.MonthDays = append(routine.MonthDays, day)
		}
		return rows.Err()
	}
	return nil
}

func scanRoutine(row *sql.Row) (*domain.Routine, error) {
	var routine domain.Routine
	var frequencyStr, createdAtStr string
	var timeStr sql.NullString
	var durationMin sql.NullInt64

	err := row.Scan(
		&routine.ID, &routine.UserID, &routine.Name, &routine.Points,
		&frequencyStr, &routine.FrequencyCount,
		&timeStr, &durationMin, &createdAtStr,
	)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrNotFound
		}
		return nil, fmt.Errorf("scanning routine: %w", err)
	}

	routine.Frequency = domain.Frequency(frequencyStr)
	routine.Time = stringOrEmpty(timeStr)
	routine.DurationMin = intOrZero(durationMin)
	routine.CreatedAt = parseTimestamp(createdAtStr)
	return &routine, nil
}

func scanRoutineRows(rows *sql.Rows) (*domain.Routine, error) {
	var routine domain.Routine
	var frequencyStr, createdAtStr string
	var timeStr sql.NullString
	var durationMin sql.NullInt64

	err := rows.Scan(
		&routine.ID, &routine.UserID, &routine.Name, &routine.Points,
		&frequencyStr, &routine.FrequencyCount,
		&timeStr, &durationMin, &createdAtStr,
	)
	if err != nil {
		return nil, fmt.Errorf("scanning routine: %w", err)
	}

	routine.Frequency = domain.Frequency(frequencyStr)
	routine.Time = stringOrEmpty(timeStr)
	routine.DurationMin = intOrZero(durationMin)
	routine.CreatedAt = parseTimestamp(createdAtStr)
	return &routine, nil
}
