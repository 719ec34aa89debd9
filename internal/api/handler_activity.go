package api

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"tripplanner/internal/model"
	"tripplanner/internal/repository"
	"tripplanner/internal/service"
	"tripplanner/pkg/logger"
)

type ActivityHandler struct {
	activities service.ActivityStore
	trips      service.TripStore
	logger     *zap.Logger
}

func NewActivityHandler(activities service.ActivityStore, trips service.TripStore, log *zap.Logger) *ActivityHandler {
	return &ActivityHandler{activities: activities, trips: trips, logger: log}
}

func (h *ActivityHandler) List(c *gin.Context) {
	tripID, ok := parseOptionalIDQuery(c, "trip_id")
	if !ok {
		return
	}

	var activities []model.Activity
	var err error
	if tripID != nil {
		activities, err = h.activities.ListByTrip(c.Request.Context(), *tripID)
	} else {
		activities, err = h.activities.List(c.Request.Context())
	}
	if err != nil {
		h.log(c).Error("Failed to list activities", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to fetch activities"})
		return
	}
	c.JSON(http.StatusOK, activities)
}

func (h *ActivityHandler) Create(c *gin.Context) {
	var in model.ActivityInput
	if err := c.ShouldBindJSON(&in); err != nil {
		invalidBody(c, err)
		return
	}
	if errs := in.Validate(false); errs != nil {
		validationFailed(c, errs)
		return
	}

	if !h.tripExists(c, *in.Trip) {
		return
	}

	var a model.Activity
	in.Apply(&a, false)

	if err := h.activities.Create(c.Request.Context(), &a); err != nil {
		h.log(c).Error("Failed to create activity", zap.Error(err), zap.Int64("trip_id", a.TripID))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to create activity"})
		return
	}
	c.JSON(http.StatusCreated, a)
}

func (h *ActivityHandler) Get(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}

	a, err := h.activities.Get(c.Request.Context(), id)
	if errors.Is(err, repository.ErrNotFound) {
		notFound(c, "Activity")
		return
	}
	if err != nil {
		h.log(c).Error("Failed to fetch activity", zap.Error(err), zap.Int64("id", id))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to fetch activity"})
		return
	}
	c.JSON(http.StatusOK, a)
}

func (h *ActivityHandler) Update(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}
	partial := c.Request.Method == http.MethodPatch

	var in model.ActivityInput
	if err := c.ShouldBindJSON(&in); err != nil {
		invalidBody(c, err)
		return
	}
	if errs := in.Validate(partial); errs != nil {
		validationFailed(c, errs)
		return
	}

	a, err := h.activities.Get(c.Request.Context(), id)
	if errors.Is(err, repository.ErrNotFound) {
		notFound(c, "Activity")
		return
	}
	if err != nil {
		h.log(c).Error("Failed to fetch activity", zap.Error(err), zap.Int64("id", id))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to update activity"})
		return
	}

	if in.Trip != nil && !h.tripExists(c, *in.Trip) {
		return
	}

	in.Apply(a, partial)
	if err := h.activities.Update(c.Request.Context(), a); err != nil {
		h.log(c).Error("Failed to update activity", zap.Error(err), zap.Int64("id", id))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to update activity"})
		return
	}
	c.JSON(http.StatusOK, a)
}

func (h *ActivityHandler) Delete(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}

	err := h.activities.Delete(c.Request.Context(), id)
	if errors.Is(err, repository.ErrNotFound) {
		notFound(c, "Activity")
		return
	}
	if err != nil {
		h.log(c).Error("Failed to delete activity", zap.Error(err), zap.Int64("id", id))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to delete activity"})
		return
	}
	c.Status(http.StatusNoContent)
}

// tripExists verifies the referenced trip; on failure it writes the response
// itself and returns false.
func (h *ActivityHandler) tripExists(c *gin.Context, tripID int64) bool {
	_, err := h.trips.Get(c.Request.Context(), tripID)
	if errors.Is(err, repository.ErrNotFound) {
		validationFailed(c, model.FieldErrors{"trip": "unknown trip"})
		return false
	}
	if err != nil {
		h.log(c).Error("Failed to fetch trip", zap.Error(err), zap.Int64("trip_id", tripID))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to resolve trip"})
		return false
	}
	return true
}

func (h *ActivityHandler) log(c *gin.Context) *zap.Logger {
	return logger.WithTrace(c.Request.Context(), h.logger)
}
