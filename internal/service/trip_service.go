package service

import (
	"context"

	"github.com/shopspring/decimal"

	"tripplanner/internal/model"
)

// TripService assembles the read representations that span several stores:
// the full trip serialization and the summary aggregation.
type TripService struct {
	trips        TripStore
	destinations DestinationStore
	activities   ActivityStore
	expenses     ExpenseStore
}

func NewTripService(trips TripStore, destinations DestinationStore, activities ActivityStore, expenses ExpenseStore) *TripService {
	return &TripService{
		trips:        trips,
		destinations: destinations,
		activities:   activities,
		expenses:     expenses,
	}
}

// Detail expands a trip row into its wire representation: nested activities
// and expenses, the destination name, and total_expenses as the exact
// decimal sum of the expense amounts. Recomputed on every call.
func (s *TripService) Detail(ctx context.Context, t *model.Trip) (*model.TripDetail, error) {
	destination, err := s.destinations.Get(ctx, t.DestinationID)
	if err != nil {
		return nil, err
	}

	activities, err := s.activities.ListByTrip(ctx, t.ID)
	if err != nil {
		return nil, err
	}

	expenses, err := s.expenses.ListByTrip(ctx, t.ID)
	if err != nil {
		return nil, err
	}

	total := decimal.Zero
	for _, e := range expenses {
		total = total.Add(e.Amount)
	}

	return &model.TripDetail{
		Trip:            *t,
		Activities:      activities,
		Expenses:        expenses,
		DestinationName: destination.Name,
		TotalExpenses:   total,
	}, nil
}

func (s *TripService) DetailByID(ctx context.Context, id int64) (*model.TripDetail, error) {
	t, err := s.trips.Get(ctx, id)
	if err != nil {
		return nil, err
	}
	return s.Detail(ctx, t)
}

// ListDetails returns fully serialized trips, optionally filtered by owner.
func (s *TripService) ListDetails(ctx context.Context, userID *int64) ([]model.TripDetail, error) {
	var trips []model.Trip
	var err error
	if userID != nil {
		trips, err = s.trips.ListByUser(ctx, *userID)
	} else {
		trips, err = s.trips.List(ctx)
	}
	if err != nil {
		return nil, err
	}

	details := []model.TripDetail{}
	for i := range trips {
		detail, err := s.Detail(ctx, &trips[i])
		if err != nil {
			return nil, err
		}
		details = append(details, *detail)
	}
	return details, nil
}

// Summary computes the flat aggregation for one trip. Arithmetic stays in
// exact decimals; the float conversion happens only when filling the
// response struct.
func (s *TripService) Summary(ctx context.Context, id int64) (*model.TripSummary, error) {
	t, err := s.trips.Get(ctx, id)
	if err != nil {
		return nil, err
	}

	destination, err := s.destinations.Get(ctx, t.DestinationID)
	if err != nil {
		return nil, err
	}

	count, err := s.activities.CountByTrip(ctx, t.ID)
	if err != nil {
		return nil, err
	}

	total, err := s.expenses.SumByTrip(ctx, t.ID)
	if err != nil {
		return nil, err
	}

	remaining := t.Budget.Sub(total)

	return &model.TripSummary{
		TripID:          t.ID,
		Title:           t.Title,
		Destination:     destination.Name,
		ActivitiesCount: count,
		TotalExpenses:   total.InexactFloat64(),
		Budget:          t.Budget.InexactFloat64(),
		BudgetRemaining: remaining.InexactFloat64(),
		Status:          t.Status,
	}, nil
}
