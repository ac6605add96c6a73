package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

type busPayload struct {
	Name        string  `json:"name"`
	Origin      string  `json:"origin"`
	Destination string  `json:"destination"`
	Capacity    float64 `json:"capacity"`
}

// POST /api/buses
func (h *Handler) CreateBus(c *gin.Context) {
	var payload busPayload
	if !BindJSONOrError(c, &payload) {
		return
	}

	// JSON numbers arrive as float64; a fractional capacity is truncated
	// toward zero, matching the original admin form's lenient coercion.
	bus, err := h.catalog(c).AddBus(payload.Name, payload.Origin, payload.Destination, int(payload.Capacity))
	if err != nil {
		RespondDomainError(c, err)
		return
	}
	c.JSON(http.StatusCreated, bus)
}

// GET /api/buses
func (h *Handler) GetBuses(c *gin.Context) {
	buses, err := h.catalog(c).ListBuses()
	if err != nil {
		RespondDomainError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"buses": buses})
}

// GET /api/buses/choices — sorted name list for dropdown refresh.
func (h *Handler) GetBusChoices(c *gin.Context) {
	names, err := h.catalog(c).BusChoices()
	if err != nil {
		RespondDomainError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"choices": names})
}
