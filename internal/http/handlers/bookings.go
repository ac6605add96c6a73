package handlers

import (
	"net/http"
	"strconv"

	"busbooking/internal/domain"

	"github.com/gin-gonic/gin"
)

type bookingPayload struct {
	PassengerName string  `json:"passengerName"`
	BusName       string  `json:"busName"`
	TravelDate    string  `json:"travelDate"`
	SeatNumber    float64 `json:"seatNumber"`
}

// POST /api/bookings
func (h *Handler) CreateBooking(c *gin.Context) {
	var payload bookingPayload
	if !BindJSONOrError(c, &payload) {
		return
	}

	// Unlike capacity, a fractional seat number is rejected outright: seat 5.5
	// is a caller mistake, not a form-widget artifact.
	seat := int(payload.SeatNumber)
	if float64(seat) != payload.SeatNumber {
		RespondDomainError(c, domain.ValidationError{Field: "seat_number", Msg: "must be an integer"})
		return
	}

	ticket, err := h.booking(c).BookTicket(payload.PassengerName, payload.BusName, payload.TravelDate, seat)
	if err != nil {
		RespondDomainError(c, err)
		return
	}
	c.JSON(http.StatusCreated, ticket)
}

// GET /api/bookings — tickets joined with buses, sorted ascending by
// (travel_date, bus_name, seat_number).
func (h *Handler) GetBookings(c *gin.Context) {
	rows, err := h.booking(c).ListBookings()
	if err != nil {
		RespondDomainError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"bookings": rows})
}

// GET /api/bookings/:id/e-ticket
func (h *Handler) GetETicketPDF(c *gin.Context) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil || id <= 0 {
		RespondDomainError(c, domain.ValidationError{Field: "id", Msg: "must be a positive integer"})
		return
	}

	pdf, filename, err := h.docs(c).GenerateETicket(id)
	if err != nil {
		RespondDomainError(c, err)
		return
	}
	c.Header("Content-Disposition", `attachment; filename="`+filename+`"`)
	c.Data(http.StatusOK, "application/pdf", pdf)
}
