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

type TripRepository struct {
	db     *pgxpool.Pool
	logger *zap.Logger
}

func NewTripRepository(db *pgxpool.Pool, logger *zap.Logger) *TripRepository {
	return &TripRepository{db: db, logger: logger}
}

const tripColumns = `id, user_id, destination_id, title, start_date, end_date, budget, status, created_at, updated_at`

func scanTrip(row pgx.Row, t *model.Trip) error {
	var startDate, endDate time.Time
	err := row.Scan(
		&t.ID,
		&t.UserID,
		&t.DestinationID,
		&t.Title,
		&startDate,
		&endDate,
		&t.Budget,
		&t.Status,
		&t.CreatedAt,
		&t.UpdatedAt,
	)
	if err != nil {
		return err
	}
	t.StartDate = model.DateOf(startDate)
	t.EndDate = model.DateOf(endDate)
	return nil
}

func (r *TripRepository) List(ctx context.Context) ([]model.Trip, error) {
	return r.list(ctx, `SELECT `+tripColumns+` FROM trips ORDER BY id`)
}

func (r *TripRepository) ListByUser(ctx context.Context, userID int64) ([]model.Trip, error) {
	return r.list(ctx, `SELECT `+tripColumns+` FROM trips WHERE user_id = $1 ORDER BY id`, userID)
}

func (r *TripRepository) list(ctx context.Context, query string, args ...any) ([]model.Trip, error) {
	defer observe("select", "trips", time.Now())

	rows, err := r.db.Query(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	trips := []model.Trip{}
	for rows.Next() {
		var t model.Trip
		if err := scanTrip(rows, &t); err != nil {
			return nil, err
		}
		trips = append(trips, t)
	}
	return trips, rows.Err()
}

func (r *TripRepository) Get(ctx context.Context, id int64) (*model.Trip, error) {
	defer observe("select", "trips", time.Now())

	query := `SELECT ` + tripColumns + ` FROM trips WHERE id = $1`
	var t model.Trip
	err := scanTrip(r.db.QueryRow(ctx, query, id), &t)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, fmt.Errorf("trip %d: %w", id, ErrNotFound)
	}
	if err != nil {
		return nil, err
	}
	return &t, nil
}

func (r *TripRepository) Create(ctx context.Context, t *model.Trip) error {
	defer observe("insert", "trips", time.Now())

	query := `
        INSERT INTO trips (user_id, destination_id, title, start_date, end_date, budget, status)
        VALUES ($1, $2, $3, $4, $5, $6, $7)
        RETURNING id, created_at, updated_at
    `
	err := r.db.QueryRow(ctx, query,
		t.UserID,
		t.DestinationID,
		t.Title,
		t.StartDate.Time,
		t.EndDate.Time,
		t.Budget,
		t.Status,
	).Scan(&t.ID, &t.CreatedAt, &t.UpdatedAt)
	if err != nil {
		r.logger.Error("Failed to insert trip", zap.Error(err), zap.Int64("user_id", t.UserID))
		return err
	}
	return nil
}

// Update rewrites the client-writable columns and bumps updated_at.
func (r *TripRepository) Update(ctx context.Context, t *model.Trip) error {
	defer observe("update", "trips", time.Now())

	query := `
        UPDATE trips
        SET destination_id = $1, title = $2, start_date = $3, end_date = $4,
            budget = $5, status = $6, updated_at = now()
        WHERE id = $7
        RETURNING updated_at
    `
	err := r.db.QueryRow(ctx, query,
		t.DestinationID,
		t.Title,
		t.StartDate.Time,
		t.EndDate.Time,
		t.Budget,
		t.Status,
		t.ID,
	).Scan(&t.UpdatedAt)
	if errors.Is(err, pgx.ErrNoRows) {
		return fmt.Errorf("trip %d: %w", t.ID, ErrNotFound)
	}
	return err
}

// Delete removes the trip's expenses and activities before the trip row
// itself, inside a single transaction.
func (r *TripRepository) Delete(ctx context.Context, id int64) error {
	defer observe("delete", "trips", time.Now())

	tx, err := r.db.Begin(ctx)
	if err != nil {
		return err
	}
	defer tx.Rollback(ctx)

	if _, err := tx.Exec(ctx, `DELETE FROM expenses WHERE trip_id = $1`, id); err != nil {
		return err
	}
	if _, err := tx.Exec(ctx, `DELETE FROM activities WHERE trip_id = $1`, id); err != nil {
		return err
	}

	tag, err := tx.Exec(ctx, `DELETE FROM trips WHERE id = $1`, id)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("trip %d: %w", id, ErrNotFound)
	}

	return tx.Commit(ctx)
}
