package model

import "time"

type Destination struct {
	ID          int64     `json:"id"`
	Name        string    `json:"name"`
	Country     string    `json:"country"`
	Description string    `json:"description"`
	ImageURL    string    `json:"image_url"`
	CreatedAt   time.Time `json:"created_at"`
}

// DestinationInput is the create/update payload. Pointer fields distinguish
// "absent" from "empty" so the same payload serves full and partial updates.
type DestinationInput struct {
	Name        *string `json:"name"`
	Country     *string `json:"country"`
	Description *string `json:"description"`
	ImageURL    *string `json:"image_url"`
}

func (in *DestinationInput) Validate(partial bool) FieldErrors {
	errs := FieldErrors{}
	requireString(errs, "name", in.Name, partial)
	requireString(errs, "country", in.Country, partial)
	if len(errs) == 0 {
		return nil
	}
	return errs
}

// Apply copies the provided fields onto d. A full update re-applies defaults
// for the omitted blank-able fields.
func (in *DestinationInput) Apply(d *Destination, partial bool) {
	if in.Name != nil {
		d.Name = *in.Name
	}
	if in.Country != nil {
		d.Country = *in.Country
	}
	if in.Description != nil {
		d.Description = *in.Description
	} else if !partial {
		d.Description = ""
	}
	if in.ImageURL != nil {
		d.ImageURL = *in.ImageURL
	} else if !partial {
		d.ImageURL = ""
	}
}
