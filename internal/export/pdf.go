package export

import (
	"bytes"
	"fmt"
	"strings"

	"github.com/jung-kurt/gofpdf"

	"tripplanner/internal/itinerary"
	"tripplanner/internal/planner"
)

// ItineraryPDF renders a planning draft and its generated day plan as a
// printable PDF and returns the raw bytes.
func ItineraryPDF(draft *planner.Draft, days []itinerary.DayPlan) ([]byte, error) {
	pdf := gofpdf.New("P", "mm", "A4", "")
	pdf.SetMargins(20, 20, 20)
	pdf.AddPage()

	// Header bar
	pdf.SetFillColor(22, 78, 99)
	pdf.Rect(0, 0, 210, 28, "F")
	pdf.SetTextColor(255, 255, 255)
	pdf.SetFont("Helvetica", "B", 18)
	pdf.SetXY(20, 8)
	pdf.CellFormat(100, 10, "Trip Planner", "", 0, "L", false, 0, "")
	pdf.SetFont("Helvetica", "", 10)
	pdf.SetTextColor(186, 230, 253)
	pdf.SetXY(20, 18)
	pdf.CellFormat(170, 6, fmt.Sprintf("%d-Day Itinerary: %s", len(days), draft.State), "", 1, "L", false, 0, "")

	pdf.SetY(35)
	pdf.SetTextColor(0, 0, 0)

	sectionHeader := func(title string) {
		pdf.SetFillColor(22, 78, 99)
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
		pdf.CellFormat(115, 7, value, "", 1, "L", false, 0, "")
	}

	sectionHeader("Trip Overview")
	row("Destination", draft.State)
	row("Cities", strings.Join(draft.Cities, ", "))
	row("Start date", draft.StartDate.Format("02 Jan 2006 (Mon)"))
	row("Travelers", fmt.Sprintf("%d", draft.NumPeople))
	row("Budget per person", fmt.Sprintf("Rs. %.0f", draft.BudgetPerPerson))
	row("Total budget", fmt.Sprintf("Rs. %.0f", draft.BudgetPerPerson*float64(draft.NumPeople)))
	pdf.Ln(4)

	for _, day := range days {
		// Keep a day's header and first rows together on one page.
		if pdf.GetY() > 240 {
			pdf.AddPage()
		}
		sectionHeader(fmt.Sprintf("Day %d - %s (%s)", day.Day, day.City, day.Date.Format("02 Jan 2006")))
		for _, act := range day.Activities {
			pdf.SetFont("Helvetica", "B", 10)
			pdf.SetTextColor(20, 20, 20)
			pdf.CellFormat(30, 6, act.Time, "", 0, "L", false, 0, "")
			pdf.CellFormat(140, 6, act.Title, "", 1, "L", false, 0, "")
			pdf.SetFont("Helvetica", "", 9)
			pdf.SetTextColor(100, 100, 100)
			pdf.SetX(50)
			pdf.MultiCell(140, 5, fmt.Sprintf("%s - %s", act.Location, act.Description), "", "L", false)
			pdf.Ln(1)
		}
		pdf.Ln(3)
	}

	pdf.SetY(-22)
	pdf.SetDrawColor(200, 200, 200)
	pdf.SetLineWidth(0.3)
	pdf.Line(20, pdf.GetY(), 190, pdf.GetY())
	pdf.SetFont("Helvetica", "I", 8)
	pdf.SetTextColor(150, 150, 150)
	pdf.CellFormat(0, 8, "Generated by Trip Planner - schedule subject to change", "", 0, "C", false, 0, "")

	var buf bytes.Buffer
	if err := pdf.Output(&buf); err != nil {
		return nil, fmt.Errorf("PDF output failed: %w", err)
	}
	return buf.Bytes(), nil
}
