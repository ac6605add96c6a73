package api

import (
	"database/sql"
	"log"
	stdhttp "net/http"

	h "busbooking/internal/http/handlers"
	"busbooking/internal/http/middleware"

	"github.com/gin-gonic/gin"
)

// NewRouter wires middleware and routes over the injected store handle.
func NewRouter(db *sql.DB) *gin.Engine {
	r := gin.New()
	r.Use(middleware.RequestID(), middleware.Logger(), gin.Recovery(), middleware.CORS())

	if err := r.SetTrustedProxies(nil); err != nil {
		log.Printf("warning: failed to set trusted proxies: %v", err)
	}

	r.NoRoute(func(c *gin.Context) {
		c.JSON(stdhttp.StatusNotFound, gin.H{
			"error":  "route not found",
			"path":   c.Request.URL.Path,
			"method": c.Request.Method,
		})
	})

	handler := h.NewHandler(db)

	api := r.Group("/api")
	{
		api.GET("/health", handler.Health)
		api.GET("/db-check", handler.DBCheck)

		buses := api.Group("/buses")
		buses.POST("", handler.CreateBus)
		buses.GET("", handler.GetBuses)
		buses.GET("/choices", handler.GetBusChoices)

		bookings := api.Group("/bookings")
		bookings.POST("", handler.CreateBooking)
		bookings.GET("", handler.GetBookings)
		bookings.GET("/:id/e-ticket", handler.GetETicketPDF)
	}

	return r
}
