// Package receipt prices out a stored booking and renders it as a PDF.
package receipt

import (
	"bytes"
	"fmt"
	"strings"
	"time"

	"github.com/Domenick1991/travelbooking/internal/domain"
	"github.com/jung-kurt/gofpdf"
)

type Breakdown struct {
	Currency  domain.Currency `json:"currency"`
	UnitPrice float64         `json:"unit_price"`
	UnitLabel string          `json:"unit_label"`
	Units     int             `json:"units"`
	Extras    float64         `json:"extras,omitempty"`
	Subtotal  float64         `json:"subtotal"`
	Taxes     float64         `json:"taxes"`
	Total     float64         `json:"total"`
}

// BreakdownFor rebuilds the pre-tax figures from the captured listing. Taxes
// are whatever separates the subtotal from the stored total, so the three
// always add up.
func BreakdownFor(b domain.Booking) Breakdown {
	out := Breakdown{Currency: b.Currency, Total: b.Total}
	if b.Listing.Kind == domain.ListingKindFlight {
		out.UnitPrice = b.Currency.Convert(b.Listing.Price)
		out.UnitLabel = "passenger"
		out.Units = max(b.Criteria.Guests, 1)
		out.Extras = b.Currency.Convert(b.Guest.Extras.Fee())
	} else {
		out.UnitPrice = b.Currency.Convert(b.Listing.Price) * b.Guest.RoomType.Multiplier()
		out.UnitLabel = "night"
		out.Units = b.Criteria.Nights()
	}
	out.Subtotal = out.UnitPrice*float64(out.Units) + out.Extras
	out.Taxes = b.Total - out.Subtotal
	return out
}

func money(c domain.Currency, v float64) string {
	return fmt.Sprintf("%s %.2f", c, v)
}

func dateOrDash(t time.Time) string {
	if t.IsZero() {
		return "-"
	}
	return t.Format("02 Jan 2006")
}

// Render writes a one-page A4 confirmation for b.
func Render(b domain.Booking) ([]byte, error) {
	pdf := gofpdf.New("P", "mm", "A4", "")
	pdf.SetMargins(20, 20, 20)
	pdf.SetTitle("Booking Confirmation "+b.PNR, false)
	pdf.AddPage()
	tr := pdf.UnicodeTranslatorFromDescriptor("")

	pdf.SetFillColor(13, 24, 37)
	pdf.Rect(0, 0, 210, 28, "F")
	pdf.SetTextColor(255, 255, 255)
	pdf.SetFont("Helvetica", "B", 18)
	pdf.SetXY(20, 8)
	pdf.CellFormat(170, 10, "Booking Confirmation", "", 1, "L", false, 0, "")
	pdf.SetFont("Helvetica", "", 10)
	pdf.SetTextColor(212, 168, 67)
	pdf.SetXY(20, 18)
	pdf.CellFormat(170, 6, "PNR "+b.PNR, "", 1, "L", false, 0, "")
	pdf.SetY(36)

	if b.Status == domain.BookingStatusCancelled {
		pdf.SetTextColor(180, 30, 30)
		pdf.SetFont("Helvetica", "B", 12)
		pdf.CellFormat(170, 8, "CANCELLED", "", 1, "L", false, 0, "")
		pdf.Ln(2)
	}

	section := func(title string) {
		pdf.SetFillColor(13, 24, 37)
		pdf.SetTextColor(255, 255, 255)
		pdf.SetFont("Helvetica", "B", 11)
		pdf.CellFormat(170, 8, "  "+title, "", 1, "L", true, 0, "")
		pdf.SetTextColor(0, 0, 0)
		pdf.Ln(2)
	}
	row := func(label, value string) {
		pdf.SetFont("Helvetica", "", 10)
		pdf.SetTextColor(100, 100, 100)
		pdf.CellFormat(55, 7, label, "", 0, "L", false, 0, "")
		pdf.SetTextColor(20, 20, 20)
		pdf.SetFont("Helvetica", "B", 10)
		pdf.CellFormat(115, 7, tr(value), "", 1, "L", false, 0, "")
	}

	l := b.Listing
	if l.Kind == domain.ListingKindFlight {
		section("Flight")
		row("Airline", fmt.Sprintf("%s %s", l.Airline, l.FlightNumber))
		row("Route", fmt.Sprintf("%s - %s", l.Origin, l.Destination))
		row("Departure", l.DepartureTime.Format("02 Jan 2006 15:04"))
		row("Cabin", l.CabinClass)
		row("Passengers", fmt.Sprintf("%d", b.Criteria.Guests))
		if b.Guest.Extras.Any() {
			row("Extras", strings.Join(b.Guest.Extras.Labels(), ", "))
		}
	} else {
		section("Hotel")
		row("Hotel", l.Name)
		row("Location", l.Location)
		row("Check-In", dateOrDash(b.Criteria.CheckIn))
		row("Check-Out", dateOrDash(b.Criteria.CheckOut))
		row("Guests", fmt.Sprintf("%d", b.Criteria.Guests))
		row("Room Type", string(b.Guest.RoomType))
	}
	row("Booking Date", b.CreatedAt.Format("02 Jan 2006, 15:04 UTC"))
	pdf.Ln(4)

	section("Guest")
	row("Name", b.Guest.Name)
	row("Email", b.Guest.Email)
	row("Phone", b.Guest.Phone)
	row("Payment Method", string(b.Guest.PaymentMethod))
	if b.Guest.CardNumber != "" {
		row("Card", b.Guest.CardNumber)
	}
	requests := strings.TrimSpace(b.Guest.SpecialRequests)
	if requests == "" {
		requests = "None"
	}
	row("Special Requests", requests)
	pdf.Ln(4)

	bd := BreakdownFor(b)
	section("Price")
	row(fmt.Sprintf("Rate per %s", bd.UnitLabel), money(bd.Currency, bd.UnitPrice))
	row("Quantity", fmt.Sprintf("%d", bd.Units))
	if bd.Extras > 0 {
		row("Extras", money(bd.Currency, bd.Extras))
	}
	row("Subtotal", money(bd.Currency, bd.Subtotal))
	row("Taxes", money(bd.Currency, bd.Taxes))

	pdf.SetFillColor(212, 168, 67)
	pdf.SetTextColor(13, 24, 37)
	pdf.SetFont("Helvetica", "B", 12)
	pdf.CellFormat(55, 9, "TOTAL", "", 0, "L", true, 0, "")
	pdf.CellFormat(115, 9, money(bd.Currency, bd.Total), "", 1, "L", true, 0, "")

	var buf bytes.Buffer
	if err := pdf.Output(&buf); err != nil {
		return nil, fmt.Errorf("render receipt: %w", err)
	}
	return buf.Bytes(), nil
}
