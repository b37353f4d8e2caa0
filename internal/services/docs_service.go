package services

import (
	"bytes"
	"fmt"

	"vtc-booking/internal/domain/models"

	"github.com/phpdave11/gofpdf"
)

// DocsService renders the printable voucher the operator hands to a
// driver before a ride.
type DocsService struct {
	Bookings BookingService
}

// Voucher builds the one-page PDF for a booking and returns the bytes
// plus a download filename.
func (s DocsService) Voucher(id int64) ([]byte, string, error) {
	b, err := s.Bookings.Get(id)
	if err != nil {
		return nil, "", err
	}
	return buildVoucherPDF(b)
}

func buildVoucherPDF(b models.Booking) ([]byte, string, error) {
	pdf := gofpdf.New("P", "mm", "A4", "")
	pdf.SetTitle("Bon de course", false)
	pdf.AddPage()

	pdf.SetFont("Helvetica", "B", 18)
	pdf.Cell(0, 10, "BON DE COURSE")
	pdf.Ln(12)

	pdf.SetFont("Helvetica", "", 12)
	lines := []string{
		fmt.Sprintf("Reservation : #%d", b.ID),
		fmt.Sprintf("Statut      : %s", b.Status),
		fmt.Sprintf("Depart      : %s", b.Pickup),
		fmt.Sprintf("Destination : %s", b.Destination),
		fmt.Sprintf("Date/Heure  : %s %s", b.Date, b.Time),
		fmt.Sprintf("Passagers   : %d", b.Passengers),
		fmt.Sprintf("Service     : %s", serviceTypeLabels[b.ServiceType]),
		fmt.Sprintf("Client      : %s", b.Name),
		fmt.Sprintf("Telephone   : %s", b.Phone),
	}
	if b.Email != "" {
		lines = append(lines, fmt.Sprintf("Email       : %s", b.Email))
	}
	for _, l := range lines {
		pdf.Cell(0, 7, l)
		pdf.Ln(7)
	}

	if b.Notes != "" {
		pdf.Ln(4)
		pdf.SetFont("Helvetica", "I", 11)
		pdf.MultiCell(0, 6, "Notes : "+b.Notes, "", "", false)
	}

	var buf bytes.Buffer
	if err := pdf.Output(&buf); err != nil {
		return nil, "", err
	}

	filename := fmt.Sprintf("BON_COURSE_%d.pdf", b.ID)
	return buf.Bytes(), filename, nil
}
