package repository

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"go.uber.org/zap"

	"tripplanner/internal/model"
)

type ActivityRepository struct {
	db     *pgxpool.Pool
	logger *zap.Logger
}

func NewActivityRepository(db *pgxpool.Pool, logger *zap.Logger) *ActivityRepository {
	return &ActivityRepository{db: db, logger: logger}
}

const activityColumns = `id, trip_id, name, description, activity_type, date, time, cost, location`

func scanActivity(row pgx.Row, a *model.Activity) error {
	var date time.Time
	err := row.Scan(
		&a.ID,
		&a.TripID,
		&a.Name,
		&a.Description,
		&a.ActivityType,
		&date,
		&a.Time,
		&a.Cost,
		&a.Location,
	)
	if err != nil {
		return err
	}
	a.Date = model.DateOf(date)
	return nil
}

func (r *ActivityRepository) List(ctx context.Context) ([]model.Activity, error) {
	return r.list(ctx, `SELECT `+activityColumns+` FROM activities ORDER BY id`)
}

func (r *ActivityRepository) ListByTrip(ctx context.Context, tripID int64) ([]model.Activity, error) {
	return r.list(ctx, `SELECT `+activityColumns+` FROM activities WHERE trip_id = $1 ORDER BY id`, tripID)
}

func (r *ActivityRepository) list(ctx context.Context, query string, args ...any) ([]model.Activity, error) {
	defer observe("select", "activities", time.Now())

	rows, err := r.db.Query(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	activities := []model.Activity{}
	for rows.Next() {
		var a model.Activity
		if err := scanActivity(rows, &a); err != nil {
			return nil, err
		}
		activities = append(activities, a)
	}
	return activities, rows.Err()
}

func (r *ActivityRepository) CountByTrip(ctx context.Context, tripID int64) (int, error) {
	defer observe("select", "activities", time.Now())

	var count int
	err := r.db.QueryRow(ctx, `SELECT COUNT(*) FROM activities WHERE trip_id = $1`, tripID).Scan(&count)
	return count, err
}

func (r *ActivityRepository) Get(ctx context.Context, id int64) (*model.Activity, error) {
	defer observe("select", "activities", time.Now())

	query := `SELECT ` + activityColumns + ` FROM activities WHERE id = $1`
	var a model.Activity
	err := scanActivity(r.db.QueryRow(ctx, query, id), &a)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, fmt.Errorf("activity %d: %w", id, ErrNotFound)
	}
	if err != nil {
		return nil, err
	}
	return &a, nil
}

func (r *ActivityRepository) Create(ctx context.Context, a *model.Activity) error {
	defer observe("insert", "activities", time.Now())

	query := `
        INSERT INTO activities (trip_id, name, description, activity_type, date, time, cost, location)
        VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
        RETURNING id
    `
	err := r.db.QueryRow(ctx, query,
		a.TripID,
		a.Name,
		a.Description,
		a.ActivityType,
		a.Date.Time,
		a.Time,
		a.Cost,
		a.Location,
	).Scan(&a.ID)
	if err != nil {
		r.logger.Error("Failed to insert activity", zap.Error(err), zap.Int64("trip_id", a.TripID))
		return err
	}
	return nil
}

func (r *ActivityRepository) Update(ctx context.Context, a *model.Activity) error {
	defer observe("update", "activities", time.Now())

	query := `
        UPDATE activities
        SET trip_id = $1, name = $2, description = $3, activity_type = $4,
            date = $5, time = $6, cost = $7, location = $8
        WHERE id = $9
    `
	tag, err := r.db.Exec(ctx, query,
		a.TripID,
		a.Name,
		a.Description,
		a.ActivityType,
		a.Date.Time,
		a.Time,
		a.Cost,
		a.Location,
		a.ID,
	)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("activity %d: %w", a.ID, ErrNotFound)
	}
	return nil
}

func (r *ActivityRepository) Delete(ctx context.Context, id int64) error {
	defer observe("delete", "activities", time.Now())

	tag, err := r.db.Exec(ctx, `DELETE FROM activities WHERE id = $1`, id)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("activity %d: %w", id, ErrNotFound)
	}
	return nil
}
