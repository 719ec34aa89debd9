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

// UserRepository fronts the identity collaborator's account records: lookup
// by id or username, creation, and the trips-owned counts the profile
// aggregation needs.
type UserRepository struct {
	db     *pgxpool.Pool
	logger *zap.Logger
}

func NewUserRepository(db *pgxpool.Pool, logger *zap.Logger) *UserRepository {
	return &UserRepository{db: db, logger: logger}
}

const userColumns = `id, username, email, first_name, last_name, created_at`

func scanUser(row pgx.Row, u *model.User) error {
	return row.Scan(&u.ID, &u.Username, &u.Email, &u.FirstName, &u.LastName, &u.CreatedAt)
}

func (r *UserRepository) Get(ctx context.Context, id int64) (*model.User, error) {
	defer observe("select", "users", time.Now())

	query := `SELECT ` + userColumns + ` FROM users WHERE id = $1`
	var u model.User
	err := scanUser(r.db.QueryRow(ctx, query, id), &u)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, fmt.Errorf("user %d: %w", id, ErrNotFound)
	}
	if err != nil {
		return nil, err
	}
	return &u, nil
}

func (r *UserRepository) GetByUsername(ctx context.Context, username string) (*model.User, error) {
	defer observe("select", "users", time.Now())

	query := `SELECT ` + userColumns + ` FROM users WHERE username = $1`
	var u model.User
	err := scanUser(r.db.QueryRow(ctx, query, username), &u)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, fmt.Errorf("user %q: %w", username, ErrNotFound)
	}
	if err != nil {
		return nil, err
	}
	return &u, nil
}

func (r *UserRepository) Create(ctx context.Context, u *model.User) error {
	defer observe("insert", "users", time.Now())

	query := `
        INSERT INTO users (username, email, first_name, last_name)
        VALUES ($1, $2, $3, $4)
        RETURNING id, created_at
    `
	err := r.db.QueryRow(ctx, query, u.Username, u.Email, u.FirstName, u.LastName).
		Scan(&u.ID, &u.CreatedAt)
	if err != nil {
		r.logger.Error("Failed to insert user", zap.Error(err), zap.String("username", u.Username))
		return err
	}
	return nil
}

// TripCounts returns the user's total trip count and how many are completed.
func (r *UserRepository) TripCounts(ctx context.Context, userID int64) (total int, completed int, err error) {
	defer observe("select", "trips", time.Now())

	query := `
        SELECT COUNT(*), COUNT(*) FILTER (WHERE status = 'completed')
        FROM trips
        WHERE user_id = $1
    `
	err = r.db.QueryRow(ctx, query, userID).Scan(&total, &completed)
	return total, completed, err
}
