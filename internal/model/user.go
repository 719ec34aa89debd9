package model

import "time"

// User mirrors the external identity collaborator's account record. Only the
// identity fields travel over the wire; credentials never live here.
type User struct {
	ID        int64     `json:"id"`
	Username  string    `json:"username"`
	Email     string    `json:"email"`
	FirstName string    `json:"first_name"`
	LastName  string    `json:"last_name"`
	CreatedAt time.Time `json:"-"`
}

// UserProfile is the aggregation returned by GET /users/{id}/profile/.
type UserProfile struct {
	User           User `json:"user"`
	TripsCount     int  `json:"trips_count"`
	CompletedTrips int  `json:"completed_trips"`
}
