package handlers

import (
	"database/sql"

	"busbooking/internal/http/middleware"
	"busbooking/internal/repositories"
	"busbooking/internal/services"

	"github.com/gin-gonic/gin"
)

// Handler owns the injected store handle and builds per-request services
// carrying the request id for log correlation.
type Handler struct {
	DB *sql.DB
}

func NewHandler(db *sql.DB) *Handler {
	return &Handler{DB: db}
}

func (h *Handler) catalog(c *gin.Context) services.CatalogService {
	return services.CatalogService{
		Buses:     repositories.BusRepository{DB: h.DB},
		RequestID: middleware.GetRequestID(c),
	}
}

func (h *Handler) booking(c *gin.Context) services.BookingService {
	return services.BookingService{
		Buses:     repositories.BusRepository{DB: h.DB},
		Tickets:   repositories.TicketRepository{DB: h.DB},
		RequestID: middleware.GetRequestID(c),
	}
}

func (h *Handler) docs(c *gin.Context) services.DocsService {
	return services.DocsService{
		Tickets:   repositories.TicketRepository{DB: h.DB},
		RequestID: middleware.GetRequestID(c),
	}
}
