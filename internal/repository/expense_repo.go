package repository

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/shopspring/decimal"
	"go.uber.org/zap"

	"tripplanner/internal/model"
)

type ExpenseRepository struct {
	db     *pgxpool.Pool
	logger *zap.Logger
}

func NewExpenseRepository(db *pgxpool.Pool, logger *zap.Logger) *ExpenseRepository {
	return &ExpenseRepository{db: db, logger: logger}
}

const expenseColumns = `id, trip_id, category, description, amount, date, created_at`

func scanExpense(row pgx.Row, e *model.Expense) error {
	var date time.Time
	err := row.Scan(
		&e.ID,
		&e.TripID,
		&e.Category,
		&e.Description,
		&e.Amount,
		&date,
		&e.CreatedAt,
	)
	if err != nil {
		return err
	}
	e.Date = model.DateOf(date)
	return nil
}

func (r *ExpenseRepository) List(ctx context.Context) ([]model.Expense, error) {
	return r.list(ctx, `SELECT `+expenseColumns+` FROM expenses ORDER BY id`)
}

func (r *ExpenseRepository) ListByTrip(ctx context.Context, tripID int64) ([]model.Expense, error) {
	return r.list(ctx, `SELECT `+expenseColumns+` FROM expenses WHERE trip_id = $1 ORDER BY id`, tripID)
}

func (r *ExpenseRepository) list(ctx context.Context, query string, args ...any) ([]model.Expense, error) {
	defer observe("select", "expenses", time.Now())

	rows, err := r.db.Query(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	expenses := []model.Expense{}
	for rows.Next() {
		var e model.Expense
		if err := scanExpense(rows, &e); err != nil {
			return nil, err
		}
		expenses = append(expenses, e)
	}
	return expenses, rows.Err()
}

// SumByTrip returns the exact decimal sum of the trip's expense amounts,
// zero when there are none.
func (r *ExpenseRepository) SumByTrip(ctx context.Context, tripID int64) (decimal.Decimal, error) {
	defer observe("select", "expenses", time.Now())

	var sum decimal.Decimal
	err := r.db.QueryRow(ctx,
		`SELECT COALESCE(SUM(amount), 0) FROM expenses WHERE trip_id = $1`, tripID,
	).Scan(&sum)
	return sum, err
}

func (r *ExpenseRepository) Get(ctx context.Context, id int64) (*model.Expense, error) {
	defer observe("select", "expenses", time.Now())

	query := `SELECT ` + expenseColumns + ` FROM expenses WHERE id = $1`
	var e model.Expense
	err := scanExpense(r.db.QueryRow(ctx, query, id), &e)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, fmt.Errorf("expense %d: %w", id, ErrNotFound)
	}
	if err != nil {
		return nil, err
	}
	return &e, nil
}

func (r *ExpenseRepository) Create(ctx context.Context, e *model.Expense) error {
	defer observe("insert", "expenses", time.Now())

	query := `
        INSERT INTO expenses (trip_id, category, description, amount, date)
        VALUES ($1, $2, $3, $4, $5)
        RETURNING id, created_at
    `
	err := r.db.QueryRow(ctx, query,
		e.TripID,
		e.Category,
		e.Description,
		e.Amount,
		e.Date.Time,
	).Scan(&e.ID, &e.CreatedAt)
	if err != nil {
		r.logger.Error("Failed to insert expense", zap.Error(err), zap.Int64("trip_id", e.TripID))
		return err
	}
	return nil
}

func (r *ExpenseRepository) Update(ctx context.Context, e *model.Expense) error {
	defer observe("update", "expenses", time.Now())

	query := `
        UPDATE expenses
        SET trip_id = $1, category = $2, description = $3, amount = $4, date = $5
        WHERE id = $6
    `
	tag, err := r.db.Exec(ctx, query,
		e.TripID,
		e.Category,
		e.Description,
		e.Amount,
		e.Date.Time,
		e.ID,
	)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("expense %d: %w", e.ID, ErrNotFound)
	}
	return nil
}

func (r *ExpenseRepository) Delete(ctx context.Context, id int64) error {
	defer observe("delete", "expenses", time.Now())

	tag, err := r.db.Exec(ctx, `DELETE FROM expenses WHERE id = $1`, id)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("expense %d: %w", id, ErrNotFound)
	}
	return nil
}
