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

type ExpenseHandler struct {
	expenses service.ExpenseStore
	trips    service.TripStore
	logger   *zap.Logger
}

func NewExpenseHandler(expenses service.ExpenseStore, trips service.TripStore, log *zap.Logger) *ExpenseHandler {
	return &ExpenseHandler{expenses: expenses, trips: trips, logger: log}
}

func (h *ExpenseHandler) List(c *gin.Context) {
	tripID, ok := parseOptionalIDQuery(c, "trip_id")
	if !ok {
		return
	}

	var expenses []model.Expense
	var err error
	if tripID != nil {
		expenses, err = h.expenses.ListByTrip(c.Request.Context(), *tripID)
	} else {
		expenses, err = h.expenses.List(c.Request.Context())
	}
	if err != nil {
		h.log(c).Error("Failed to list expenses", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to fetch expenses"})
		return
	}
	c.JSON(http.StatusOK, expenses)
}

func (h *ExpenseHandler) Create(c *gin.Context) {
	var in model.ExpenseInput
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

	var e model.Expense
	in.Apply(&e, false)

	if err := h.expenses.Create(c.Request.Context(), &e); err != nil {
		h.log(c).Error("Failed to create expense", zap.Error(err), zap.Int64("trip_id", e.TripID))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to create expense"})
		return
	}
	c.JSON(http.StatusCreated, e)
}

func (h *ExpenseHandler) Get(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}

	e, err := h.expenses.Get(c.Request.Context(), id)
	if errors.Is(err, repository.ErrNotFound) {
		notFound(c, "Expense")
		return
	}
	if err != nil {
		h.log(c).Error("Failed to fetch expense", zap.Error(err), zap.Int64("id", id))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to fetch expense"})
		return
	}
	c.JSON(http.StatusOK, e)
}

func (h *ExpenseHandler) Update(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}
	partial := c.Request.Method == http.MethodPatch

	var in model.ExpenseInput
	if err := c.ShouldBindJSON(&in); err != nil {
		invalidBody(c, err)
		return
	}
	if errs := in.Validate(partial); errs != nil {
		validationFailed(c, errs)
		return
	}

	e, err := h.expenses.Get(c.Request.Context(), id)
	if errors.Is(err, repository.ErrNotFound) {
		notFound(c, "Expense")
		return
	}
	if err != nil {
		h.log(c).Error("Failed to fetch expense", zap.Error(err), zap.Int64("id", id))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to update expense"})
		return
	}

	if in.Trip != nil && !h.tripExists(c, *in.Trip) {
		return
	}

	in.Apply(e, partial)
	if err := h.expenses.Update(c.Request.Context(), e); err != nil {
		h.log(c).Error("Failed to update expense", zap.Error(err), zap.Int64("id", id))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to update expense"})
		return
	}
	c.JSON(http.StatusOK, e)
}

func (h *ExpenseHandler) Delete(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}

	err := h.expenses.Delete(c.Request.Context(), id)
	if errors.Is(err, repository.ErrNotFound) {
		notFound(c, "Expense")
		return
	}
	if err != nil {
		h.log(c).Error("Failed to delete expense", zap.Error(err), zap.Int64("id", id))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to delete expense"})
		return
	}
	c.Status(http.StatusNoContent)
}

func (h *ExpenseHandler) tripExists(c *gin.Context, tripID int64) bool {
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

func (h *ExpenseHandler) log(c *gin.Context) *zap.Logger {
	return logger.WithTrace(c.Request.Context(), h.logger)
}
