package repositories

import (
	"database/sql"
	"errors"
	"fmt"

	"busbooking/internal/domain"
	"busbooking/internal/domain/models"
)

// TicketRepository persists and queries ticket records. The unique key on
// (bus_id, travel_date, seat_number) makes Insert the atomic double-booking
// guard; there is no separate availability check.
type TicketRepository struct {
	DB *sql.DB
}

// Insert stores a new ticket and returns it with the assigned id. A seat
// already taken for the same bus and date surfaces as ConflictError.
func (r TicketRepository) Insert(t models.Ticket) (models.Ticket, error) {
	res, err := r.DB.Exec(
		`INSERT INTO tickets (passenger_name, bus_id, travel_date, seat_number) VALUES (?, ?, ?, ?)`,
		t.PassengerName, t.BusID, t.TravelDate, t.SeatNumber,
	)
	if err != nil {
		if isDuplicateKey(err) {
			return models.Ticket{}, domain.ConflictError{
				Resource: "seat",
				Msg:      fmt.Sprintf("seat %d already booked on %s", t.SeatNumber, t.TravelDate),
				Err:      err,
			}
		}
		return models.Ticket{}, domain.InternalError{Msg: "insert ticket failed", Err: err}
	}
	id, err := res.LastInsertId()
	if err != nil {
		return models.Ticket{}, domain.InternalError{Msg: "read ticket id failed", Err: err}
	}
	t.ID = id
	return t, nil
}

// ListBookings joins every ticket with its bus. The three-key ascending
// order (travel_date, bus_name, seat_number) is a presentation contract.
func (r TicketRepository) ListBookings() ([]models.BookingRow, error) {
	rows, err := r.DB.Query(`
		SELECT t.id, t.passenger_name, b.bus_name, b.from_city, b.to_city, t.travel_date, t.seat_number
		FROM tickets t
		JOIN buses b ON t.bus_id = b.id
		ORDER BY t.travel_date, b.bus_name, t.seat_number`)
	if err != nil {
		return nil, domain.InternalError{Msg: "list bookings failed", Err: err}
	}
	defer rows.Close()

	out := []models.BookingRow{}
	for rows.Next() {
		var row models.BookingRow
		if err := rows.Scan(&row.TicketID, &row.PassengerName, &row.BusName,
			&row.Origin, &row.Destination, &row.TravelDate, &row.SeatNumber); err != nil {
			return nil, domain.InternalError{Msg: "scan booking failed", Err: err}
		}
		out = append(out, row)
	}
	if err := rows.Err(); err != nil {
		return nil, domain.InternalError{Msg: "list bookings failed", Err: err}
	}
	return out, nil
}

// GetBooking fetches a single joined row by ticket id.
func (r TicketRepository) GetBooking(ticketID int64) (models.BookingRow, error) {
	var row models.BookingRow
	err := r.DB.QueryRow(`
		SELECT t.id, t.passenger_name, b.bus_name, b.from_city, b.to_city, t.travel_date, t.seat_number
		FROM tickets t
		JOIN buses b ON t.bus_id = b.id
		WHERE t.id = ?`, ticketID,
	).Scan(&row.TicketID, &row.PassengerName, &row.BusName,
		&row.Origin, &row.Destination, &row.TravelDate, &row.SeatNumber)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return models.BookingRow{}, domain.NotFoundError{Resource: "ticket", Err: err}
		}
		return models.BookingRow{}, domain.InternalError{Msg: "get booking failed", Err: err}
	}
	return row, nil
}
