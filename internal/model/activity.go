package model

import "github.com/shopspring/decimal"

// Activity type values.
const (
	ActivitySightseeing = "sightseeing"
	ActivityAdventure   = "adventure"
	ActivityCultural    = "cultural"
	ActivityFood        = "food"
	ActivityShopping    = "shopping"
	ActivityRelaxation  = "relaxation"
)

func IsValidActivityType(s string) bool {
	switch s {
	case ActivitySightseeing, ActivityAdventure, ActivityCultural,
		ActivityFood, ActivityShopping, ActivityRelaxation:
		return true
	}
	return false
}

type Activity struct {
	ID           int64           `json:"id"`
	TripID       int64           `json:"trip"`
	Name         string          `json:"name"`
	Description  string          `json:"description"`
	ActivityType string          `json:"activity_type"`
	Date         Date            `json:"date"`
	Time         *string         `json:"time"`
	Cost         decimal.Decimal `json:"cost"`
	Location     string          `json:"location"`
}

type ActivityInput struct {
	Trip         *int64           `json:"trip"`
	Name         *string          `json:"name"`
	Description  *string          `json:"description"`
	ActivityType *string          `json:"activity_type"`
	Date         *Date            `json:"date"`
	Time         *string          `json:"time"`
	Cost         *decimal.Decimal `json:"cost"`
	Location     *string          `json:"location"`
}

func (in *ActivityInput) Validate(partial bool) FieldErrors {
	errs := FieldErrors{}
	if in.Trip == nil && !partial {
		errs["trip"] = errRequired
	}
	requireString(errs, "name", in.Name, partial)
	if in.ActivityType == nil {
		if !partial {
			errs["activity_type"] = errRequired
		}
	} else if !IsValidActivityType(*in.ActivityType) {
		errs["activity_type"] = "invalid activity_type, expected one of sightseeing, adventure, cultural, food, shopping, relaxation"
	}
	if in.Date == nil && !partial {
		errs["date"] = errRequired
	}
	if in.Time != nil && *in.Time != "" {
		if _, err := NormalizeClock(*in.Time); err != nil {
			errs["time"] = err.Error()
		}
	}
	if len(errs) == 0 {
		return nil
	}
	return errs
}

func (in *ActivityInput) Apply(a *Activity, partial bool) {
	if in.Trip != nil {
		a.TripID = *in.Trip
	}
	if in.Name != nil {
		a.Name = *in.Name
	}
	if in.Description != nil {
		a.Description = *in.Description
	} else if !partial {
		a.Description = ""
	}
	if in.ActivityType != nil {
		a.ActivityType = *in.ActivityType
	}
	if in.Date != nil {
		a.Date = *in.Date
	}
	if in.Time != nil {
		if *in.Time == "" {
			a.Time = nil
		} else {
			normalized, _ := NormalizeClock(*in.Time)
			a.Time = &normalized
		}
	} else if !partial {
		a.Time = nil
	}
	if in.Cost != nil {
		a.Cost = *in.Cost
	} else if !partial {
		a.Cost = decimal.Zero
	}
	if in.Location != nil {
		a.Location = *in.Location
	} else if !partial {
		a.Location = ""
	}
}
