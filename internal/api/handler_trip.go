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

type TripHandler struct {
	svc          *service.TripService
	trips        service.TripStore
	destinations service.DestinationStore
	users        service.UserStore
	logger       *zap.Logger
}

func NewTripHandler(svc *service.TripService, trips service.TripStore, destinations service.DestinationStore, users service.UserStore, log *zap.Logger) *TripHandler {
	return &TripHandler{
		svc:          svc,
		trips:        trips,
		destinations: destinations,
		users:        users,
		logger:       log,
	}
}

func (h *TripHandler) List(c *gin.Context) {
	userID, ok := parseOptionalIDQuery(c, "user_id")
	if !ok {
		return
	}

	details, err := h.svc.ListDetails(c.Request.Context(), userID)
	if err != nil {
		h.log(c).Error("Failed to list trips", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to fetch trips"})
		return
	}
	c.JSON(http.StatusOK, details)
}

// Create accepts only the client-writable fields; the owning user comes from
// the user_id query parameter and the timestamps from the server.
func (h *TripHandler) Create(c *gin.Context) {
	userID, ok := parseOptionalIDQuery(c, "user_id")
	if !ok {
		return
	}
	if userID == nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "user_id query parameter is required"})
		return
	}

	var in model.TripInput
	if err := c.ShouldBindJSON(&in); err != nil {
		invalidBody(c, err)
		return
	}
	if errs := in.Validate(false); errs != nil {
		validationFailed(c, errs)
		return
	}

	if _, err := h.users.Get(c.Request.Context(), *userID); err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			notFound(c, "User")
			return
		}
		h.log(c).Error("Failed to fetch trip owner", zap.Error(err), zap.Int64("user_id", *userID))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to create trip"})
		return
	}

	if _, err := h.destinations.Get(c.Request.Context(), *in.Destination); err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			validationFailed(c, model.FieldErrors{"destination": "unknown destination"})
			return
		}
		h.log(c).Error("Failed to fetch trip destination", zap.Error(err), zap.Int64("destination_id", *in.Destination))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to create trip"})
		return
	}

	t := model.Trip{UserID: *userID}
	in.Apply(&t, false)

	if err := h.trips.Create(c.Request.Context(), &t); err != nil {
		h.log(c).Error("Failed to create trip", zap.Error(err), zap.Int64("user_id", *userID))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to create trip"})
		return
	}

	detail, err := h.svc.Detail(c.Request.Context(), &t)
	if err != nil {
		h.log(c).Error("Failed to serialize trip", zap.Error(err), zap.Int64("id", t.ID))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to create trip"})
		return
	}
	c.JSON(http.StatusCreated, detail)
}

func (h *TripHandler) Get(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}

	detail, err := h.svc.DetailByID(c.Request.Context(), id)
	if errors.Is(err, repository.ErrNotFound) {
		notFound(c, "Trip")
		return
	}
	if err != nil {
		h.log(c).Error("Failed to fetch trip", zap.Error(err), zap.Int64("id", id))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to fetch trip"})
		return
	}
	c.JSON(http.StatusOK, detail)
}

func (h *TripHandler) Update(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}
	partial := c.Request.Method == http.MethodPatch

	var in model.TripInput
	if err := c.ShouldBindJSON(&in); err != nil {
		invalidBody(c, err)
		return
	}
	if errs := in.Validate(partial); errs != nil {
		validationFailed(c, errs)
		return
	}

	t, err := h.trips.Get(c.Request.Context(), id)
	if errors.Is(err, repository.ErrNotFound) {
		notFound(c, "Trip")
		return
	}
	if err != nil {
		h.log(c).Error("Failed to fetch trip", zap.Error(err), zap.Int64("id", id))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to update trip"})
		return
	}

	if in.Destination != nil {
		if _, err := h.destinations.Get(c.Request.Context(), *in.Destination); err != nil {
			if errors.Is(err, repository.ErrNotFound) {
				validationFailed(c, model.FieldErrors{"destination": "unknown destination"})
				return
			}
			h.log(c).Error("Failed to fetch trip destination", zap.Error(err), zap.Int64("destination_id", *in.Destination))
			c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to update trip"})
			return
		}
	}

	in.Apply(t, partial)
	if err := h.trips.Update(c.Request.Context(), t); err != nil {
		h.log(c).Error("Failed to update trip", zap.Error(err), zap.Int64("id", id))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to update trip"})
		return
	}

	detail, err := h.svc.Detail(c.Request.Context(), t)
	if err != nil {
		h.log(c).Error("Failed to serialize trip", zap.Error(err), zap.Int64("id", id))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to update trip"})
		return
	}
	c.JSON(http.StatusOK, detail)
}

func (h *TripHandler) Delete(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}

	err := h.trips.Delete(c.Request.Context(), id)
	if errors.Is(err, repository.ErrNotFound) {
		notFound(c, "Trip")
		return
	}
	if err != nil {
		h.log(c).Error("Failed to delete trip", zap.Error(err), zap.Int64("id", id))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to delete trip"})
		return
	}
	c.Status(http.StatusNoContent)
}

func (h *TripHandler) Summary(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}

	summary, err := h.svc.Summary(c.Request.Context(), id)
	if errors.Is(err, repository.ErrNotFound) {
		notFound(c, "Trip")
		return
	}
	if err != nil {
		h.log(c).Error("Failed to build trip summary", zap.Error(err), zap.Int64("id", id))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to build trip summary"})
		return
	}
	c.JSON(http.StatusOK, summary)
}

func (h *TripHandler) log(c *gin.Context) *zap.Logger {
	return logger.WithTrace(c.Request.Context(), h.logger)
}
