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

type DestinationRepository struct {
	db     *pgxpool.Pool
	logger *zap.Logger
}

func NewDestinationRepository(db *pgxpool.Pool, logger *zap.Logger) *DestinationRepository {
	return &DestinationRepository{db: db, logger: logger}
}

const destinationColumns = `id, name, country, description, image_url, created_at`

func scanDestination(row pgx.Row, d *model.Destination) error {
	return row.Scan(&d.ID, &d.Name, &d.Country, &d.Description, &d.ImageURL, &d.CreatedAt)
}

func (r *DestinationRepository) List(ctx context.Context) ([]model.Destination, error) {
	defer observe("select", "destinations", time.Now())

	query := `SELECT ` + destinationColumns + ` FROM destinations ORDER BY id`
	rows, err := r.db.Query(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	return collectDestinations(rows)
}

// Search matches the name case-insensitively as a substring. The empty-query
// short-circuit lives in the handler, not here.
func (r *DestinationRepository) Search(ctx context.Context, q string) ([]model.Destination, error) {
	defer observe("select", "destinations", time.Now())

	query := `SELECT ` + destinationColumns + ` FROM destinations WHERE name ILIKE '%' || $1 || '%' ORDER BY id`
	rows, err := r.db.Query(ctx, query, q)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	return collectDestinations(rows)
}

func collectDestinations(rows pgx.Rows) ([]model.Destination, error) {
	destinations := []model.Destination{}
	for rows.Next() {
		var d model.Destination
		if err := scanDestination(rows, &d); err != nil {
			return nil, err
		}
		destinations = append(destinations, d)
	}
	return destinations, rows.Err()
}

func (r *DestinationRepository) Get(ctx context.Context, id int64) (*model.Destination, error) {
	defer observe("select", "destinations", time.Now())

	query := `SELECT ` + destinationColumns + ` FROM destinations WHERE id = $1`
	var d model.Destination
	err := scanDestination(r.db.QueryRow(ctx, query, id), &d)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, fmt.Errorf("destination %d: %w", id, ErrNotFound)
	}
	if err != nil {
		return nil, err
	}
	return &d, nil
}

func (r *DestinationRepository) Create(ctx context.Context, d *model.Destination) error {
	defer observe("insert", "destinations", time.Now())

	query := `
        INSERT INTO destinations (name, country, description, image_url)
        VALUES ($1, $2, $3, $4)
        RETURNING id, created_at
    `
	err := r.db.QueryRow(ctx, query, d.Name, d.Country, d.Description, d.ImageURL).
		Scan(&d.ID, &d.CreatedAt)
	if err != nil {
		r.logger.Error("Failed to insert destination", zap.Error(err), zap.String("name", d.Name))
		return err
	}
	return nil
}

func (r *DestinationRepository) Update(ctx context.Context, d *model.Destination) error {
	defer observe("update", "destinations", time.Now())

	query := `
        UPDATE destinations
        SET name = $1, country = $2, description = $3, image_url = $4
        WHERE id = $5
    `
	tag, err := r.db.Exec(ctx, query, d.Name, d.Country, d.Description, d.ImageURL, d.ID)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("destination %d: %w", d.ID, ErrNotFound)
	}
	return nil
}

// Delete removes the destination and everything hanging off it: grandchild
// expenses and activities first, then the trips, then the destination row,
// all in one transaction.
func (r *DestinationRepository) Delete(ctx context.Context, id int64) error {
	defer observe("delete", "destinations", time.Now())

	tx, err := r.db.Begin(ctx)
	if err != nil {
		return err
	}
	defer tx.Rollback(ctx)

	statements := []string{
		`DELETE FROM expenses WHERE trip_id IN (SELECT id FROM trips WHERE destination_id = $1)`,
		`DELETE FROM activities WHERE trip_id IN (SELECT id FROM trips WHERE destination_id = $1)`,
		`DELETE FROM trips WHERE destination_id = $1`,
	}
	for _, stmt := range statements {
		if _, err := tx.Exec(ctx, stmt, id); err != nil {
			return err
		}
	}

	tag, err := tx.Exec(ctx, `DELETE FROM destinations WHERE id = $1`, id)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("destination %d: %w", id, ErrNotFound)
	}

	return tx.Commit(ctx)
}
