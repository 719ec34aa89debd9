package service

import (
	"context"

	"github.com/shopspring/decimal"

	"tripplanner/internal/model"
)

// Store contracts are declared here, on the consumer side. The pgx
// repositories satisfy them; tests substitute in-memory fakes.

type DestinationStore interface {
	List(ctx context.Context) ([]model.Destination, error)
	Search(ctx context.Context, q string) ([]model.Destination, error)
	Get(ctx context.Context, id int64) (*model.Destination, error)
	Create(ctx context.Context, d *model.Destination) error
	Update(ctx context.Context, d *model.Destination) error
	Delete(ctx context.Context, id int64) error
}

type TripStore interface {
	List(ctx context.Context) ([]model.Trip, error)
	ListByUser(ctx context.Context, userID int64) ([]model.Trip, error)
	Get(ctx context.Context, id int64) (*model.Trip, error)
	Create(ctx context.Context, t *model.Trip) error
	Update(ctx context.Context, t *model.Trip) error
	Delete(ctx context.Context, id int64) error
}

type ActivityStore interface {
	List(ctx context.Context) ([]model.Activity, error)
	ListByTrip(ctx context.Context, tripID int64) ([]model.Activity, error)
	CountByTrip(ctx context.Context, tripID int64) (int, error)
	Get(ctx context.Context, id int64) (*model.Activity, error)
	Create(ctx context.Context, a *model.Activity) error
	Update(ctx context.Context, a *model.Activity) error
	Delete(ctx context.Context, id int64) error
}

type ExpenseStore interface {
	List(ctx context.Context) ([]model.Expense, error)
	ListByTrip(ctx context.Context, tripID int64) ([]model.Expense, error)
	SumByTrip(ctx context.Context, tripID int64) (decimal.Decimal, error)
	Get(ctx context.Context, id int64) (*model.Expense, error)
	Create(ctx context.Context, e *model.Expense) error
	Update(ctx context.Context, e *model.Expense) error
	Delete(ctx context.Context, id int64) error
}

type UserStore interface {
	Get(ctx context.Context, id int64) (*model.User, error)
	GetByUsername(ctx context.Context, username string) (*model.User, error)
	Create(ctx context.Context, u *model.User) error
	TripCounts(ctx context.Context, userID int64) (total int, completed int, err error)
}
