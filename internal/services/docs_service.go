package services

import (
	"bytes"
	"fmt"
	"strings"

	"busbooking/internal/domain/models"
	"busbooking/internal/repositories"
	"busbooking/internal/utils"

	"github.com/phpdave11/gofpdf"
)

// DocsService renders a printable e-ticket PDF for a booking.
type DocsService struct {
	Tickets   repositories.TicketRepository
	RequestID string
}

// GenerateETicket renders the e-ticket for a ticket id and returns the PDF
// bytes plus a download filename.
func (s DocsService) GenerateETicket(ticketID int64) ([]byte, string, error) {
	row, err := s.Tickets.GetBooking(ticketID)
	if err != nil {
		return nil, "", err
	}
	utils.LogEvent(s.RequestID, "docs", "generate_eticket", fmt.Sprintf("ticket_id=%d", ticketID))
	return buildETicketPDF(row)
}

func buildETicketPDF(row models.BookingRow) ([]byte, string, error) {
	pdf := gofpdf.New("P", "mm", "A4", "")
	pdf.SetTitle("E-Ticket", false)
	pdf.AddPage()
	pdf.SetFont("Helvetica", "B", 18)
	pdf.Cell(0, 10, "BUS E-TICKET")
	pdf.Ln(12)

	pdf.SetFont("Helvetica", "", 12)
	lines := []string{
		fmt.Sprintf("Passenger   : %s", row.PassengerName),
		fmt.Sprintf("Bus         : %s", row.BusName),
		fmt.Sprintf("Route       : %s -> %s", row.Origin, row.Destination),
		fmt.Sprintf("Travel date : %s", row.TravelDate),
		fmt.Sprintf("Seat        : %d", row.SeatNumber),
		fmt.Sprintf("Ticket no.  : TCK-%d", row.TicketID),
	}
	for _, line := range lines {
		pdf.Cell(0, 7, line)
		pdf.Ln(7)
	}

	pdf.Ln(6)
	pdf.SetFont("Helvetica", "I", 10)
	pdf.MultiCell(0, 6, "This e-ticket is valid for one passenger on the printed date and seat. Please present it at departure.", "", "", false)

	var buf bytes.Buffer
	if err := pdf.Output(&buf); err != nil {
		return nil, "", err
	}

	filename := fmt.Sprintf("ETICKET_%d_%s.pdf", row.TicketID, safeFilenamePart(row.PassengerName))
	return buf.Bytes(), filename, nil
}

func safeFilenamePart(s string) string {
	s = strings.TrimSpace(s)
	out := make([]rune, 0, len(s))
	for _, r := range s {
		switch {
		case r >= 'a' && r <= 'z', r >= 'A' && r <= 'Z', r >= '0' && r <= '9':
			out = append(out, r)
		default:
			out = append(out, '_')
		}
	}
	if len(out) == 0 {
		return "ticket"
	}
	return string(out)
}
