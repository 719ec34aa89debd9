package service

import (
	"context"

	"tripplanner/internal/model"
)

// UserService computes the profile aggregation over the identity
// collaborator's records.
type UserService struct {
	users UserStore
}

func NewUserService(users UserStore) *UserService {
	return &UserService{users: users}
}

func (s *UserService) Profile(ctx context.Context, id int64) (*model.UserProfile, error) {
	u, err := s.users.Get(ctx, id)
	if err != nil {
		return nil, err
	}

	total, completed, err := s.users.TripCounts(ctx, id)
	if err != nil {
		return nil, err
	}

	return &model.UserProfile{
		User:           *u,
		TripsCount:     total,
		CompletedTrips: completed,
	}, nil
}
