package model

import (
	"time"

	"github.com/shopspring/decimal"
)

// Trip status values.
const (
	StatusPlanned   = "planned"
	StatusOngoing   = "ongoing"
	StatusCompleted = "completed"
	StatusCancelled = "cancelled"
)

func IsValidTripStatus(s string) bool {
	switch s {
	case StatusPlanned, StatusOngoing, StatusCompleted, StatusCancelled:
		return true
	}
	return false
}

// Trip is the stored row. Foreign keys serialize as bare ids under the
// relation name, matching the rest of the wire format.
type Trip struct {
	ID            int64           `json:"id"`
	UserID        int64           `json:"user"`
	Title         string          `json:"title"`
	DestinationID int64           `json:"destination"`
	StartDate     Date            `json:"start_date"`
	EndDate       Date            `json:"end_date"`
	Budget        decimal.Decimal `json:"budget"`
	Status        string          `json:"status"`
	CreatedAt     time.Time       `json:"created_at"`
	UpdatedAt     time.Time       `json:"updated_at"`
}

// TripDetail is the full read representation: the trip row plus its nested
// activities and expenses, the destination name, and the recomputed
// total_expenses. Never stored.
type TripDetail struct {
	Trip
	Activities      []Activity      `json:"activities"`
	Expenses        []Expense       `json:"expenses"`
	DestinationName string          `json:"destination_name"`
	TotalExpenses   decimal.Decimal `json:"total_expenses"`
}

// TripSummary is the flat aggregation for GET /trips/{id}/summary/. The
// monetary fields go lossy to float here and only here.
type TripSummary struct {
	TripID          int64   `json:"trip_id"`
	Title           string  `json:"title"`
	Destination     string  `json:"destination"`
	ActivitiesCount int     `json:"activities_count"`
	TotalExpenses   float64 `json:"total_expenses"`
	Budget          float64 `json:"budget"`
	BudgetRemaining float64 `json:"budget_remaining"`
	Status          string  `json:"status"`
}

// TripInput is the create/update payload. The owning user and the timestamps
// are server-managed and deliberately absent.
type TripInput struct {
	Title       *string          `json:"title"`
	Destination *int64           `json:"destination"`
	StartDate   *Date            `json:"start_date"`
	EndDate     *Date            `json:"end_date"`
	Budget      *decimal.Decimal `json:"budget"`
	Status      *string          `json:"status"`
}

func (in *TripInput) Validate(partial bool) FieldErrors {
	errs := FieldErrors{}
	requireString(errs, "title", in.Title, partial)
	if in.Destination == nil && !partial {
		errs["destination"] = errRequired
	}
	if in.StartDate == nil && !partial {
		errs["start_date"] = errRequired
	}
	if in.EndDate == nil && !partial {
		errs["end_date"] = errRequired
	}
	if in.Budget == nil && !partial {
		errs["budget"] = errRequired
	}
	if in.Status != nil && !IsValidTripStatus(*in.Status) {
		errs["status"] = "invalid status, expected one of planned, ongoing, completed, cancelled"
	}
	if len(errs) == 0 {
		return nil
	}
	return errs
}

func (in *TripInput) Apply(t *Trip, partial bool) {
	if in.Title != nil {
		t.Title = *in.Title
	}
	if in.Destination != nil {
		t.DestinationID = *in.Destination
	}
	if in.StartDate != nil {
		t.StartDate = *in.StartDate
	}
	if in.EndDate != nil {
		t.EndDate = *in.EndDate
	}
	if in.Budget != nil {
		t.Budget = *in.Budget
	}
	if in.Status != nil {
		t.Status = *in.Status
	} else if !partial {
		t.Status = StatusPlanned
	}
}
