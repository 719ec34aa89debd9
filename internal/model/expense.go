package model

import (
	"time"

	"github.com/shopspring/decimal"
)

// Expense category values.
const (
	ExpenseTransport     = "transport"
	ExpenseAccommodation = "accommodation"
	ExpenseFood          = "food"
	ExpenseActivities    = "activities"
	ExpenseShopping      = "shopping"
	ExpenseOther         = "other"
)

func IsValidExpenseCategory(s string) bool {
	switch s {
	case ExpenseTransport, ExpenseAccommodation, ExpenseFood,
		ExpenseActivities, ExpenseShopping, ExpenseOther:
		return true
	}
	return false
}

type Expense struct {
	ID          int64           `json:"id"`
	TripID      int64           `json:"trip"`
	Category    string          `json:"category"`
	Description string          `json:"description"`
	Amount      decimal.Decimal `json:"amount"`
	Date        Date            `json:"date"`
	CreatedAt   time.Time       `json:"created_at"`
}

type ExpenseInput struct {
	Trip        *int64           `json:"trip"`
	Category    *string          `json:"category"`
	Description *string          `json:"description"`
	Amount      *decimal.Decimal `json:"amount"`
	Date        *Date            `json:"date"`
}

func (in *ExpenseInput) Validate(partial bool) FieldErrors {
	errs := FieldErrors{}
	if in.Trip == nil && !partial {
		errs["trip"] = errRequired
	}
	if in.Category == nil {
		if !partial {
			errs["category"] = errRequired
		}
	} else if !IsValidExpenseCategory(*in.Category) {
		errs["category"] = "invalid category, expected one of transport, accommodation, food, activities, shopping, other"
	}
	requireString(errs, "description", in.Description, partial)
	if in.Amount == nil && !partial {
		errs["amount"] = errRequired
	}
	if in.Date == nil && !partial {
		errs["date"] = errRequired
	}
	if len(errs) == 0 {
		return nil
	}
	return errs
}

func (in *ExpenseInput) Apply(e *Expense, partial bool) {
	if in.Trip != nil {
		e.TripID = *in.Trip
	}
	if in.Category != nil {
		e.Category = *in.Category
	}
	if in.Description != nil {
		e.Description = *in.Description
	}
	if in.Amount != nil {
		e.Amount = *in.Amount
	}
	if in.Date != nil {
		e.Date = *in.Date
	}
}
