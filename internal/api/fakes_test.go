package api

import (
	"context"
	"fmt"
	"sort"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"
	"go.uber.org/zap"

	"tripplanner/internal/model"
	"tripplanner/internal/repository"
	"tripplanner/internal/service"
)

// In-memory store fakes. They mirror the repository contracts, including the
// explicit cascade deletes and the updated_at bump on trip updates.

type memDB struct {
	users        map[int64]model.User
	destinations map[int64]model.Destination
	trips        map[int64]model.Trip
	activities   map[int64]model.Activity
	expenses     map[int64]model.Expense
	lastID       int64
}

func newMemDB() *memDB {
	return &memDB{
		users:        map[int64]model.User{},
		destinations: map[int64]model.Destination{},
		trips:        map[int64]model.Trip{},
		activities:   map[int64]model.Activity{},
		expenses:     map[int64]model.Expense{},
	}
}

func (db *memDB) nextID() int64 {
	db.lastID++
	return db.lastID
}

func (db *memDB) addUser(u model.User) model.User {
	u.ID = db.nextID()
	u.CreatedAt = time.Now()
	db.users[u.ID] = u
	return u
}

func (db *memDB) addDestination(d model.Destination) model.Destination {
	d.ID = db.nextID()
	d.CreatedAt = time.Now()
	db.destinations[d.ID] = d
	return d
}

func (db *memDB) addTrip(t model.Trip) model.Trip {
	t.ID = db.nextID()
	if t.CreatedAt.IsZero() {
		t.CreatedAt = time.Now()
	}
	if t.UpdatedAt.IsZero() {
		t.UpdatedAt = t.CreatedAt
	}
	db.trips[t.ID] = t
	return t
}

func (db *memDB) addActivity(a model.Activity) model.Activity {
	a.ID = db.nextID()
	db.activities[a.ID] = a
	return a
}

func (db *memDB) addExpense(e model.Expense) model.Expense {
	e.ID = db.nextID()
	e.CreatedAt = time.Now()
	db.expenses[e.ID] = e
	return e
}

func sortedIDs[M any](m map[int64]M) []int64 {
	ids := make([]int64, 0, len(m))
	for id := range m {
		ids = append(ids, id)
	}
	sort.Slice(ids, func(i, j int) bool { return ids[i] < ids[j] })
	return ids
}

type fakeDestinationStore struct{ db *memDB }

func (s *fakeDestinationStore) List(ctx context.Context) ([]model.Destination, error) {
	destinations := []model.Destination{}
	for _, id := range sortedIDs(s.db.destinations) {
		destinations = append(destinations, s.db.destinations[id])
	}
	return destinations, nil
}

func (s *fakeDestinationStore) Search(ctx context.Context, q string) ([]model.Destination, error) {
	destinations := []model.Destination{}
	for _, id := range sortedIDs(s.db.destinations) {
		d := s.db.destinations[id]
		if strings.Contains(strings.ToLower(d.Name), strings.ToLower(q)) {
			destinations = append(destinations, d)
		}
	}
	return destinations, nil
}

func (s *fakeDestinationStore) Get(ctx context.Context, id int64) (*model.Destination, error) {
	d, ok := s.db.destinations[id]
	if !ok {
		return nil, fmt.Errorf("destination %d: %w", id, repository.ErrNotFound)
	}
	return &d, nil
}

func (s *fakeDestinationStore) Create(ctx context.Context, d *model.Destination) error {
	*d = s.db.addDestination(*d)
	return nil
}

func (s *fakeDestinationStore) Update(ctx context.Context, d *model.Destination) error {
	if _, ok := s.db.destinations[d.ID]; !ok {
		return fmt.Errorf("destination %d: %w", d.ID, repository.ErrNotFound)
	}
	s.db.destinations[d.ID] = *d
	return nil
}

func (s *fakeDestinationStore) Delete(ctx context.Context, id int64) error {
	if _, ok := s.db.destinations[id]; !ok {
		return fmt.Errorf("destination %d: %w", id, repository.ErrNotFound)
	}
	for tripID, t := range s.db.trips {
		if t.DestinationID != id {
			continue
		}
		deleteTripChildren(s.db, tripID)
		delete(s.db.trips, tripID)
	}
	delete(s.db.destinations, id)
	return nil
}

func deleteTripChildren(db *memDB, tripID int64) {
	for id, a := range db.activities {
		if a.TripID == tripID {
			delete(db.activities, id)
		}
	}
	for id, e := range db.expenses {
		if e.TripID == tripID {
			delete(db.expenses, id)
		}
	}
}

type fakeTripStore struct{ db *memDB }

func (s *fakeTripStore) List(ctx context.Context) ([]model.Trip, error) {
	trips := []model.Trip{}
	for _, id := range sortedIDs(s.db.trips) {
		trips = append(trips, s.db.trips[id])
	}
	return trips, nil
}

func (s *fakeTripStore) ListByUser(ctx context.Context, userID int64) ([]model.Trip, error) {
	trips := []model.Trip{}
	for _, id := range sortedIDs(s.db.trips) {
		if t := s.db.trips[id]; t.UserID == userID {
			trips = append(trips, t)
		}
	}
	return trips, nil
}

func (s *fakeTripStore) Get(ctx context.Context, id int64) (*model.Trip, error) {
	t, ok := s.db.trips[id]
	if !ok {
		return nil, fmt.Errorf("trip %d: %w", id, repository.ErrNotFound)
	}
	return &t, nil
}

func (s *fakeTripStore) Create(ctx context.Context, t *model.Trip) error {
	*t = s.db.addTrip(*t)
	return nil
}

func (s *fakeTripStore) Update(ctx context.Context, t *model.Trip) error {
	if _, ok := s.db.trips[t.ID]; !ok {
		return fmt.Errorf("trip %d: %w", t.ID, repository.ErrNotFound)
	}
	t.UpdatedAt = time.Now()
	s.db.trips[t.ID] = *t
	return nil
}

func (s *fakeTripStore) Delete(ctx context.Context, id int64) error {
	if _, ok := s.db.trips[id]; !ok {
		return fmt.Errorf("trip %d: %w", id, repository.ErrNotFound)
	}
	deleteTripChildren(s.db, id)
	delete(s.db.trips, id)
	return nil
}

type fakeActivityStore struct{ db *memDB }

func (s *fakeActivityStore) List(ctx context.Context) ([]model.Activity, error) {
	activities := []model.Activity{}
	for _, id := range sortedIDs(s.db.activities) {
		activities = append(activities, s.db.activities[id])
	}
	return activities, nil
}

func (s *fakeActivityStore) ListByTrip(ctx context.Context, tripID int64) ([]model.Activity, error) {
	activities := []model.Activity{}
	for _, id := range sortedIDs(s.db.activities) {
		if a := s.db.activities[id]; a.TripID == tripID {
			activities = append(activities, a)
		}
	}
	return activities, nil
}

func (s *fakeActivityStore) CountByTrip(ctx context.Context, tripID int64) (int, error) {
	count := 0
	for _, a := range s.db.activities {
		if a.TripID == tripID {
			count++
		}
	}
	return count, nil
}

func (s *fakeActivityStore) Get(ctx context.Context, id int64) (*model.Activity, error) {
	a, ok := s.db.activities[id]
	if !ok {
		return nil, fmt.Errorf("activity %d: %w", id, repository.ErrNotFound)
	}
	return &a, nil
}

func (s *fakeActivityStore) Create(ctx context.Context, a *model.Activity) error {
	*a = s.db.addActivity(*a)
	return nil
}

func (s *fakeActivityStore) Update(ctx context.Context, a *model.Activity) error {
	if _, ok := s.db.activities[a.ID]; !ok {
		return fmt.Errorf("activity %d: %w", a.ID, repository.ErrNotFound)
	}
	s.db.activities[a.ID] = *a
	return nil
}

func (s *fakeActivityStore) Delete(ctx context.Context, id int64) error {
	if _, ok := s.db.activities[id]; !ok {
		return fmt.Errorf("activity %d: %w", id, repository.ErrNotFound)
	}
	delete(s.db.activities, id)
	return nil
}

type fakeExpenseStore struct{ db *memDB }

func (s *fakeExpenseStore) List(ctx context.Context) ([]model.Expense, error) {
	expenses := []model.Expense{}
	for _, id := range sortedIDs(s.db.expenses) {
		expenses = append(expenses, s.db.expenses[id])
	}
	return expenses, nil
}

func (s *fakeExpenseStore) ListByTrip(ctx context.Context, tripID int64) ([]model.Expense, error) {
	expenses := []model.Expense{}
	for _, id := range sortedIDs(s.db.expenses) {
		if e := s.db.expenses[id]; e.TripID == tripID {
			expenses = append(expenses, e)
		}
	}
	return expenses, nil
}

func (s *fakeExpenseStore) SumByTrip(ctx context.Context, tripID int64) (decimal.Decimal, error) {
	sum := decimal.Zero
	for _, e := range s.db.expenses {
		if e.TripID == tripID {
			sum = sum.Add(e.Amount)
		}
	}
	return sum, nil
}

func (s *fakeExpenseStore) Get(ctx context.Context, id int64) (*model.Expense, error) {
	e, ok := s.db.expenses[id]
	if !ok {
		return nil, fmt.Errorf("expense %d: %w", id, repository.ErrNotFound)
	}
	return &e, nil
}

func (s *fakeExpenseStore) Create(ctx context.Context, e *model.Expense) error {
	*e = s.db.addExpense(*e)
	return nil
}

func (s *fakeExpenseStore) Update(ctx context.Context, e *model.Expense) error {
	if _, ok := s.db.expenses[e.ID]; !ok {
		return fmt.Errorf("expense %d: %w", e.ID, repository.ErrNotFound)
	}
	s.db.expenses[e.ID] = *e
	return nil
}

func (s *fakeExpenseStore) Delete(ctx context.Context, id int64) error {
	if _, ok := s.db.expenses[id]; !ok {
		return fmt.Errorf("expense %d: %w", id, repository.ErrNotFound)
	}
	delete(s.db.expenses, id)
	return nil
}

type fakeUserStore struct{ db *memDB }

func (s *fakeUserStore) Get(ctx context.Context, id int64) (*model.User, error) {
	u, ok := s.db.users[id]
	if !ok {
		return nil, fmt.Errorf("user %d: %w", id, repository.ErrNotFound)
	}
	return &u, nil
}

func (s *fakeUserStore) GetByUsername(ctx context.Context, username string) (*model.User, error) {
	for _, u := range s.db.users {
		if u.Username == username {
			return &u, nil
		}
	}
	return nil, fmt.Errorf("user %q: %w", username, repository.ErrNotFound)
}

func (s *fakeUserStore) Create(ctx context.Context, u *model.User) error {
	*u = s.db.addUser(*u)
	return nil
}

func (s *fakeUserStore) TripCounts(ctx context.Context, userID int64) (int, int, error) {
	total, completed := 0, 0
	for _, t := range s.db.trips {
		if t.UserID != userID {
			continue
		}
		total++
		if t.Status == model.StatusCompleted {
			completed++
		}
	}
	return total, completed, nil
}

func newTestRouter(db *memDB) *gin.Engine {
	log := zap.NewNop()
	destinations := &fakeDestinationStore{db}
	trips := &fakeTripStore{db}
	activities := &fakeActivityStore{db}
	expenses := &fakeExpenseStore{db}
	users := &fakeUserStore{db}

	tripService := service.NewTripService(trips, destinations, activities, expenses)
	userService := service.NewUserService(users)

	router := NewRouter(
		NewDestinationHandler(destinations, log),
		NewTripHandler(tripService, trips, destinations, users, log),
		NewActivityHandler(activities, trips, log),
		NewExpenseHandler(expenses, trips, log),
		NewUserHandler(userService, log),
	)
	return router.Engine
}
