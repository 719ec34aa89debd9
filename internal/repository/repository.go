package repository

import (
	"errors"
	"time"

	"tripplanner/pkg/metrics"
)

// ErrNotFound is returned when the requested row does not exist. Callers
// match it with errors.Is; the wrapping error names the entity and id.
var ErrNotFound = errors.New("not found")

func observe(operation, table string, start time.Time) {
	metrics.RecordDBQueryDuration(operation, table, time.Since(start))
}
