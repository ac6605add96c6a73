package models

// Ticket reserves one seat on one bus for one travel date. The triple
// (BusID, TravelDate, SeatNumber) is unique across all tickets.
type Ticket struct {
	ID            int64  `json:"id"`
	PassengerName string `json:"passengerName"`
	BusID         int64  `json:"busId"`
	TravelDate    string `json:"travelDate"`
	SeatNumber    int    `json:"seatNumber"`
}

// BookingRow is a ticket joined with its bus, the shape the listing and
// e-ticket surfaces render.
type BookingRow struct {
	TicketID      int64  `json:"ticketId"`
	PassengerName string `json:"passengerName"`
	BusName       string `json:"busName"`
	Origin        string `json:"origin"`
	Destination   string `json:"destination"`
	TravelDate    string `json:"travelDate"`
	SeatNumber    int    `json:"seatNumber"`
}
