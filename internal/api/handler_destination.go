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

type DestinationHandler struct {
	destinations service.DestinationStore
	logger       *zap.Logger
}

func NewDestinationHandler(destinations service.DestinationStore, log *zap.Logger) *DestinationHandler {
	return &DestinationHandler{destinations: destinations, logger: log}
}

func (h *DestinationHandler) List(c *gin.Context) {
	destinations, err := h.destinations.List(c.Request.Context())
	if err != nil {
		h.log(c).Error("Failed to list destinations", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to fetch destinations"})
		return
	}
	c.JSON(http.StatusOK, destinations)
}

// Search matches destination names case-insensitively. An empty or missing q
// returns an empty collection, not the full list. Deliberate: changing it
// would change observable behavior.
func (h *DestinationHandler) Search(c *gin.Context) {
	q := c.Query("q")
	if q == "" {
		c.JSON(http.StatusOK, []model.Destination{})
		return
	}

	destinations, err := h.destinations.Search(c.Request.Context(), q)
	if err != nil {
		h.log(c).Error("Failed to search destinations", zap.Error(err), zap.String("q", q))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to search destinations"})
		return
	}
	c.JSON(http.StatusOK, destinations)
}

func (h *DestinationHandler) Create(c *gin.Context) {
	var in model.DestinationInput
	if err := c.ShouldBindJSON(&in); err != nil {
		invalidBody(c, err)
		return
	}
	if errs := in.Validate(false); errs != nil {
		validationFailed(c, errs)
		return
	}

	var d model.Destination
	in.Apply(&d, false)

	if err := h.destinations.Create(c.Request.Context(), &d); err != nil {
		h.log(c).Error("Failed to create destination", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to create destination"})
		return
	}
	c.JSON(http.StatusCreated, d)
}

func (h *DestinationHandler) Get(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}

	d, err := h.destinations.Get(c.Request.Context(), id)
	if errors.Is(err, repository.ErrNotFound) {
		notFound(c, "Destination")
		return
	}
	if err != nil {
		h.log(c).Error("Failed to fetch destination", zap.Error(err), zap.Int64("id", id))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to fetch destination"})
		return
	}
	c.JSON(http.StatusOK, d)
}

func (h *DestinationHandler) Update(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}
	partial := c.Request.Method == http.MethodPatch

	var in model.DestinationInput
	if err := c.ShouldBindJSON(&in); err != nil {
		invalidBody(c, err)
		return
	}
	if errs := in.Validate(partial); errs != nil {
		validationFailed(c, errs)
		return
	}

	d, err := h.destinations.Get(c.Request.Context(), id)
	if errors.Is(err, repository.ErrNotFound) {
		notFound(c, "Destination")
		return
	}
	if err != nil {
		h.log(c).Error("Failed to fetch destination", zap.Error(err), zap.Int64("id", id))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to update destination"})
		return
	}

	in.Apply(d, partial)
	if err := h.destinations.Update(c.Request.Context(), d); err != nil {
		h.log(c).Error("Failed to update destination", zap.Error(err), zap.Int64("id", id))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to update destination"})
		return
	}
	c.JSON(http.StatusOK, d)
}

func (h *DestinationHandler) Delete(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}

	err := h.destinations.Delete(c.Request.Context(), id)
	if errors.Is(err, repository.ErrNotFound) {
		notFound(c, "Destination")
		return
	}
	if err != nil {
		h.log(c).Error("Failed to delete destination", zap.Error(err), zap.Int64("id", id))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to delete destination"})
		return
	}
	c.Status(http.StatusNoContent)
}

func (h *DestinationHandler) log(c *gin.Context) *zap.Logger {
	return logger.WithTrace(c.Request.Context(), h.logger)
}
