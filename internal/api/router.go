package api

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

type Router struct {
	Engine *gin.Engine
}

func NewRouter(
	destinationHandler *DestinationHandler,
	tripHandler *TripHandler,
	activityHandler *ActivityHandler,
	expenseHandler *ExpenseHandler,
	userHandler *UserHandler,
) *Router {
	r := gin.Default()
	r.Use(RequestTrace(), Metrics())

	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})
	r.GET("/metrics", gin.WrapH(promhttp.Handler()))

	r.GET("/destinations/", destinationHandler.List)
	r.POST("/destinations/", destinationHandler.Create)
	r.GET("/destinations/search/", destinationHandler.Search)
	r.GET("/destinations/:id/", destinationHandler.Get)
	r.PUT("/destinations/:id/", destinationHandler.Update)
	r.PATCH("/destinations/:id/", destinationHandler.Update)
	r.DELETE("/destinations/:id/", destinationHandler.Delete)

	r.GET("/trips/", tripHandler.List)
	r.POST("/trips/", tripHandler.Create)
	r.GET("/trips/:id/", tripHandler.Get)
	r.PUT("/trips/:id/", tripHandler.Update)
	r.PATCH("/trips/:id/", tripHandler.Update)
	r.DELETE("/trips/:id/", tripHandler.Delete)
	r.GET("/trips/:id/summary/", tripHandler.Summary)

	r.GET("/activities/", activityHandler.List)
	r.POST("/activities/", activityHandler.Create)
	r.GET("/activities/:id/", activityHandler.Get)
	r.PUT("/activities/:id/", activityHandler.Update)
	r.PATCH("/activities/:id/", activityHandler.Update)
	r.DELETE("/activities/:id/", activityHandler.Delete)

	r.GET("/expenses/", expenseHandler.List)
	r.POST("/expenses/", expenseHandler.Create)
	r.GET("/expenses/:id/", expenseHandler.Get)
	r.PUT("/expenses/:id/", expenseHandler.Update)
	r.PATCH("/expenses/:id/", expenseHandler.Update)
	r.DELETE("/expenses/:id/", expenseHandler.Delete)

	r.GET("/users/:id/profile/", userHandler.Profile)

	return &Router{Engine: r}
}

func (r *Router) Run(port string) error {
	return r.Engine.Run(":" + port)
}
