package billing

import (
	"bytes"
	"fmt"
	"strings"
	"time"

	"hotelreserve/internal/domain"

	"github.com/phpdave11/gofpdf"
)

// Invoice renders the guest folio as a PDF: nightly breakdown, charges,
// tax, payments and the remaining balance. Returns the bytes and a
// suggested filename.
func (e *Engine) Invoice(b *domain.Booking, room *domain.Room, guest *domain.Guest) ([]byte, string, error) {
	pdf := gofpdf.New("P", "mm", "A4", "")
	pdf.SetTitle("Guest Folio", false)
	pdf.AddPage()

	pdf.SetFont("Helvetica", "B", 18)
	pdf.Cell(0, 10, e.cfg.HotelName)
	pdf.Ln(8)
	pdf.SetFont("Helvetica", "", 11)
	pdf.Cell(0, 7, "Guest Folio")
	pdf.Ln(12)

	pdf.SetFont("Helvetica", "", 11)
	header := []string{
		fmt.Sprintf("Guest    : %s (%s)", guest.Name, guest.Document),
		fmt.Sprintf("Room     : %d (%s)", room.Number, strings.ToUpper(string(room.Category))),
		fmt.Sprintf("Stay     : %s -> %s (%d nights, %d guests)",
			b.CheckInDate.Format("2006-01-02"), b.CheckOutDate.Format("2006-01-02"), b.Nights(), b.PartySize),
		fmt.Sprintf("Status   : %s", strings.ToUpper(string(b.Status))),
	}
	for _, line := range header {
		pdf.Cell(0, 7, line)
		pdf.Ln(7)
	}
	pdf.Ln(4)

	pdf.SetFont("Helvetica", "B", 11)
	pdf.Cell(0, 7, "Nightly rates")
	pdf.Ln(8)
	pdf.SetFont("Helvetica", "", 10)
	subtotal := 0.0
	for night := b.CheckInDate; night.Before(b.CheckOutDate); night = night.AddDate(0, 0, 1) {
		rate := e.tariff.NightlyRate(night, room.BaseRate)
		subtotal += rate
		pdf.Cell(0, 6, fmt.Sprintf("%s  %10.2f", night.Format("Mon 2006-01-02"), rate))
		pdf.Ln(6)
	}

	if len(b.Charges) > 0 {
		pdf.Ln(2)
		pdf.SetFont("Helvetica", "B", 11)
		pdf.Cell(0, 7, "Charges")
		pdf.Ln(8)
		pdf.SetFont("Helvetica", "", 10)
		for _, c := range b.Charges {
			subtotal += c.Amount
			pdf.Cell(0, 6, fmt.Sprintf("%-30s  %10.2f", c.Description, c.Amount))
			pdf.Ln(6)
		}
	}

	due := e.TotalDue(b, room)
	paid := e.TotalPaid(b)

	pdf.Ln(4)
	pdf.SetFont("Helvetica", "B", 11)
	totals := []string{
		fmt.Sprintf("Subtotal           %10.2f", round2(subtotal)),
		fmt.Sprintf("Service tax (%.0f%%)  %10.2f", e.taxRate*100, round2(due-round2(subtotal))),
		fmt.Sprintf("Total due          %10.2f", due),
		fmt.Sprintf("Paid               %10.2f", paid),
		fmt.Sprintf("Balance            %10.2f", e.Outstanding(b, room)),
	}
	for _, line := range totals {
		pdf.Cell(0, 7, line)
		pdf.Ln(7)
	}

	if len(b.Payments) > 0 {
		pdf.Ln(2)
		pdf.SetFont("Helvetica", "B", 11)
		pdf.Cell(0, 7, "Payments")
		pdf.Ln(8)
		pdf.SetFont("Helvetica", "", 10)
		for _, p := range b.Payments {
			pdf.Cell(0, 6, fmt.Sprintf("%s  %-7s  %10.2f",
				p.PaidAt.Format("2006-01-02 15:04"), strings.ToUpper(string(p.Method)), p.Amount))
			pdf.Ln(6)
		}
	}

	pdf.Ln(6)
	pdf.SetFont("Helvetica", "I", 9)
	pdf.Cell(0, 6, fmt.Sprintf("Issued %s", time.Now().UTC().Format("2006-01-02 15:04 MST")))

	var buf bytes.Buffer
	if err := pdf.Output(&buf); err != nil {
		return nil, "", err
	}
	name := fmt.Sprintf("folio-%s-room%d.pdf", guest.Document, room.Number)
	return buf.Bytes(), name, nil
}
