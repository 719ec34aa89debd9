package model

import (
	"testing"

	"github.com/shopspring/decimal"
)

func strPtr(s string) *string       { return &s }
func int64Ptr(i int64) *int64       { return &i }
func datePtr(s string) *Date        { d, _ := ParseDate(s); return &d }
func decPtr(s string) *decimal.Decimal {
	d := decimal.RequireFromString(s)
	return &d
}

func TestTripInputValidate(t *testing.T) {
	full := TripInput{
		Title:       strPtr("Paris Adventure"),
		Destination: int64Ptr(1),
		StartDate:   datePtr("2026-10-01"),
		EndDate:     datePtr("2026-10-08"),
		Budget:      decPtr("2500.00"),
	}

	tests := []struct {
		name      string
		input     TripInput
		partial   bool
		badFields []string
	}{
		{name: "complete create", input: full},
		{name: "missing everything", input: TripInput{}, badFields: []string{"title", "destination", "start_date", "end_date", "budget"}},
		{name: "empty partial is fine", input: TripInput{}, partial: true},
		{name: "bad status", input: TripInput{Status: strPtr("postponed")}, partial: true, badFields: []string{"status"}},
		{name: "blank title on partial", input: TripInput{Title: strPtr("")}, partial: true, badFields: []string{"title"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			errs := tt.input.Validate(tt.partial)
			if len(errs) != len(tt.badFields) {
				t.Fatalf("Validate = %v; want errors on %v", errs, tt.badFields)
			}
			for _, field := range tt.badFields {
				if _, ok := errs[field]; !ok {
					t.Errorf("Validate missing error for field %q: %v", field, errs)
				}
			}
		})
	}
}

func TestTripInputApplyDefaultsStatus(t *testing.T) {
	var trip Trip
	in := TripInput{
		Title:       strPtr("Paris Adventure"),
		Destination: int64Ptr(1),
		StartDate:   datePtr("2026-10-01"),
		EndDate:     datePtr("2026-10-08"),
		Budget:      decPtr("2500.00"),
	}
	in.Apply(&trip, false)
	if trip.Status != StatusPlanned {
		t.Errorf("full apply without status: got %q, want %q", trip.Status, StatusPlanned)
	}
}

func TestTripInputApplyPartialKeepsOtherFields(t *testing.T) {
	trip := Trip{
		Title:         "Paris Adventure",
		DestinationID: 1,
		Budget:        decimal.RequireFromString("2500.00"),
		Status:        StatusPlanned,
	}
	in := TripInput{Status: strPtr(StatusCompleted)}
	in.Apply(&trip, true)

	if trip.Status != StatusCompleted {
		t.Errorf("status = %q; want %q", trip.Status, StatusCompleted)
	}
	if trip.Title != "Paris Adventure" || trip.DestinationID != 1 || !trip.Budget.Equal(decimal.RequireFromString("2500.00")) {
		t.Errorf("partial apply touched unrelated fields: %+v", trip)
	}
}

func TestActivityInputApply(t *testing.T) {
	var a Activity
	in := ActivityInput{
		Trip:         int64Ptr(1),
		Name:         strPtr("Louvre"),
		ActivityType: strPtr(ActivityCultural),
		Date:         datePtr("2026-10-02"),
		Time:         strPtr("09:30"),
	}
	in.Apply(&a, false)

	if a.Time == nil || *a.Time != "09:30:00" {
		t.Errorf("time = %v; want normalized 09:30:00", a.Time)
	}
	if !a.Cost.Equal(decimal.Zero) {
		t.Errorf("cost = %s; want default 0", a.Cost)
	}
}

func TestExpenseInputValidateCategory(t *testing.T) {
	in := ExpenseInput{
		Trip:        int64Ptr(1),
		Category:    strPtr("bribes"),
		Description: strPtr("misc"),
		Amount:      decPtr("10.00"),
		Date:        datePtr("2026-10-02"),
	}
	errs := in.Validate(false)
	if _, ok := errs["category"]; !ok {
		t.Errorf("Validate accepted bad category: %v", errs)
	}
}

func TestEnumMembership(t *testing.T) {
	if !IsValidTripStatus("cancelled") || IsValidTripStatus("postponed") {
		t.Error("trip status membership check is wrong")
	}
	if !IsValidActivityType("relaxation") || IsValidActivityType("sleeping") {
		t.Error("activity type membership check is wrong")
	}
	if !IsValidExpenseCategory("accommodation") || IsValidExpenseCategory("bribes") {
		t.Error("expense category membership check is wrong")
	}
}
