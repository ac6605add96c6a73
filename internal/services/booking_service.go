package services

import (
	"fmt"

	"busbooking/internal/domain"
	"busbooking/internal/domain/models"
	"busbooking/internal/repositories"
	"busbooking/internal/utils"
)

// BookingService validates and persists tickets. Seat uniqueness per
// (bus, travel date) is enforced by the ticket table's unique key, so the
// insert itself is the race-free double-booking guard.
type BookingService struct {
	Buses     repositories.BusRepository
	Tickets   repositories.TicketRepository
	RequestID string
}

// BookTicket books one seat on one bus for one travel date.
//
// Validation order matches the booking flow: presence, bus resolution,
// seat range against the bus capacity, then the insert. travel_date is an
// opaque string; it is stored as given after trimming.
func (s BookingService) BookTicket(passengerName, busName, travelDate string, seatNumber int) (models.Ticket, error) {
	passengerName = utils.TrimOrEmpty(passengerName)
	busName = utils.TrimOrEmpty(busName)
	travelDate = utils.TrimOrEmpty(travelDate)

	if !utils.AllPresent(passengerName, busName, travelDate) {
		return models.Ticket{}, domain.ValidationError{Msg: "all fields are required"}
	}

	bus, err := s.Buses.FindByName(busName)
	if err != nil {
		return models.Ticket{}, err
	}

	if seatNumber < 1 || seatNumber > bus.Capacity {
		return models.Ticket{}, domain.ValidationError{
			Field: "seat_number",
			Msg:   fmt.Sprintf("must be between 1 and %d", bus.Capacity),
		}
	}

	ticket, err := s.Tickets.Insert(models.Ticket{
		PassengerName: passengerName,
		BusID:         bus.ID,
		TravelDate:    travelDate,
		SeatNumber:    seatNumber,
	})
	if err != nil {
		return models.Ticket{}, err
	}

	utils.LogEvent(s.RequestID, "booking", "book_ticket",
		fmt.Sprintf("ticket_id=%d bus=%s date=%s seat=%d", ticket.ID, bus.Name, ticket.TravelDate, ticket.SeatNumber))
	return ticket, nil
}

// ListBookings returns every ticket joined with its bus, sorted ascending by
// (travel_date, bus_name, seat_number).
func (s BookingService) ListBookings() ([]models.BookingRow, error) {
	return s.Tickets.ListBookings()
}

// GetBooking fetches one joined booking row by ticket id.
func (s BookingService) GetBooking(ticketID int64) (models.BookingRow, error) {
	if ticketID <= 0 {
		return models.BookingRow{}, domain.ValidationError{Field: "id", Msg: "must be a positive integer"}
	}
	return s.Tickets.GetBooking(ticketID)
}
