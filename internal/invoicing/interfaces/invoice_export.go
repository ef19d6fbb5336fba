package interfaces

import (
	"bytes"
	"fmt"

	"github.com/jung-kurt/gofpdf"
	"github.com/xuri/excelize/v2"

	invoicing "swimclub/internal/invoicing/domain"
)

// BuildInvoicePDF renders a minimal PDF for a monthly coaching invoice.
func BuildInvoicePDF(inv *invoicing.Invoice) ([]byte, error) {
	pdf := gofpdf.New("P", "mm", "A4", "")
	pdf.SetFont("Arial", "", 12)
	pdf.AddPage()

	pdf.Cell(0, 8, "Coaching Invoice")
	pdf.Ln(10)
	pdf.SetFont("Arial", "", 10)
	pdf.Cell(0, 6, fmt.Sprintf("Coach: %s (%s)", inv.CoachName, inv.CoachID))
	pdf.Ln(5)
	pdf.Cell(0, 6, fmt.Sprintf("Month: %04d-%02d", inv.Year, inv.Month))
	pdf.Ln(5)
	pdf.Cell(0, 6, fmt.Sprintf("Hourly Rate: %.2f", inv.Rates.HourlyRate))
	pdf.Ln(5)
	pdf.Cell(0, 6, fmt.Sprintf("Session Writing Rate: %.2f", inv.Rates.SessionWritingRate))
	pdf.Ln(8)

	pdf.Cell(0, 6, fmt.Sprintf("Coaching Hours: %.2f (sessions %.2f, competitions %.2f)",
		inv.Coaching.TotalHours, inv.Coaching.Breakdown.SessionHours, inv.Coaching.Breakdown.CompetitionHours))
	pdf.Ln(5)
	pdf.Cell(0, 6, fmt.Sprintf("Coaching Earnings: %.2f", inv.Coaching.Earnings))
	pdf.Ln(5)
	pdf.Cell(0, 6, fmt.Sprintf("Sets Written: %d", inv.SessionWriting.Count))
	pdf.Ln(5)
	pdf.Cell(0, 6, fmt.Sprintf("Set Writing Earnings: %.2f", inv.SessionWriting.Earnings))
	pdf.Ln(5)
	pdf.SetFont("Arial", "B", 10)
	pdf.Cell(0, 6, fmt.Sprintf("Total Earnings: %.2f", inv.Totals.TotalEarnings))
	pdf.Ln(8)

	// Sessions table
	pdf.SetFont("Arial", "B", 10)
	pdf.CellFormat(30, 6, "Date", "1", 0, "C", false, 0, "")
	pdf.CellFormat(35, 6, "Time", "1", 0, "C", false, 0, "")
	pdf.CellFormat(25, 6, "Role", "1", 0, "C", false, 0, "")
	pdf.CellFormat(30, 6, "Hours", "1", 0, "C", false, 0, "")
	pdf.Ln(-1)
	pdf.SetFont("Arial", "", 10)
	for _, line := range inv.Coaching.Sessions {
		pdf.CellFormat(30, 6, line.Date, "1", 0, "C", false, 0, "")
		pdf.CellFormat(35, 6, line.StartTime+"-"+line.EndTime, "1", 0, "C", false, 0, "")
		pdf.CellFormat(25, 6, string(line.Role), "1", 0, "C", false, 0, "")
		pdf.CellFormat(30, 6, fmt.Sprintf("%.2f", line.Duration), "1", 0, "R", false, 0, "")
		pdf.Ln(-1)
	}
	for _, line := range inv.Coaching.Competitions {
		pdf.CellFormat(30, 6, line.Date, "1", 0, "C", false, 0, "")
		pdf.CellFormat(35, 6, line.StartTime+"-"+line.EndTime, "1", 0, "C", false, 0, "")
		pdf.CellFormat(25, 6, "competition", "1", 0, "C", false, 0, "")
		pdf.CellFormat(30, 6, fmt.Sprintf("%.2f", line.Duration), "1", 0, "R", false, 0, "")
		pdf.Ln(-1)
	}

	if len(inv.Warnings) > 0 {
		pdf.Ln(4)
		pdf.SetFont("Arial", "B", 10)
		pdf.Cell(0, 6, fmt.Sprintf("Incomplete: %d record(s) excluded for data problems", len(inv.Warnings)))
		pdf.Ln(5)
		pdf.SetFont("Arial", "", 9)
		for _, warning := range inv.Warnings {
			pdf.Cell(0, 5, fmt.Sprintf("%s %s: %s", warning.RecordID, warning.Date, warning.Detail))
			pdf.Ln(4)
		}
	}

	var buf bytes.Buffer
	if err := pdf.Output(&buf); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

// BuildInvoiceXLSX renders a minimal XLSX for a monthly coaching invoice.
func BuildInvoiceXLSX(inv *invoicing.Invoice) ([]byte, error) {
	f := excelize.NewFile()
	summarySheet := "summary"
	sessionsSheet := "sessions"
	competitionsSheet := "competitions"
	writingSheet := "set writing"
	f.SetSheetName("Sheet1", summarySheet)
	f.NewSheet(sessionsSheet)
	f.NewSheet(competitionsSheet)
	f.NewSheet(writingSheet)

	_ = f.SetCellValue(summarySheet, "A1", "Coaching Invoice")
	_ = f.SetCellValue(summarySheet, "A3", "Coach")
	_ = f.SetCellValue(summarySheet, "B3", inv.CoachName)
	_ = f.SetCellValue(summarySheet, "A4", "Month")
	_ = f.SetCellValue(summarySheet, "B4", fmt.Sprintf("%04d-%02d", inv.Year, inv.Month))
	_ = f.SetCellValue(summarySheet, "A5", "Hourly Rate")
	_ = f.SetCellValue(summarySheet, "B5", inv.Rates.HourlyRate)
	_ = f.SetCellValue(summarySheet, "A6", "Session Writing Rate")
	_ = f.SetCellValue(summarySheet, "B6", inv.Rates.SessionWritingRate)
	_ = f.SetCellValue(summarySheet, "A7", "Coaching Hours")
	_ = f.SetCellValue(summarySheet, "B7", inv.Coaching.TotalHours)
	_ = f.SetCellValue(summarySheet, "A8", "Coaching Earnings")
	_ = f.SetCellValue(summarySheet, "B8", inv.Coaching.Earnings)
	_ = f.SetCellValue(summarySheet, "A9", "Sets Written")
	_ = f.SetCellValue(summarySheet, "B9", inv.SessionWriting.Count)
	_ = f.SetCellValue(summarySheet, "A10", "Set Writing Earnings")
	_ = f.SetCellValue(summarySheet, "B10", inv.SessionWriting.Earnings)
	_ = f.SetCellValue(summarySheet, "A11", "Total Earnings")
	_ = f.SetCellValue(summarySheet, "B11", inv.Totals.TotalEarnings)
	_ = f.SetCellValue(summarySheet, "A12", "Excluded Records")
	_ = f.SetCellValue(summarySheet, "B12", len(inv.Warnings))

	_ = f.SetCellValue(sessionsSheet, "A1", "Date")
	_ = f.SetCellValue(sessionsSheet, "B1", "Start")
	_ = f.SetCellValue(sessionsSheet, "C1", "End")
	_ = f.SetCellValue(sessionsSheet, "D1", "Squad")
	_ = f.SetCellValue(sessionsSheet, "E1", "Role")
	_ = f.SetCellValue(sessionsSheet, "F1", "Hours")
	for i, line := range inv.Coaching.Sessions {
		row := i + 2
		_ = f.SetCellValue(sessionsSheet, fmt.Sprintf("A%d", row), line.Date)
		_ = f.SetCellValue(sessionsSheet, fmt.Sprintf("B%d", row), line.StartTime)
		_ = f.SetCellValue(sessionsSheet, fmt.Sprintf("C%d", row), line.EndTime)
		_ = f.SetCellValue(sessionsSheet, fmt.Sprintf("D%d", row), line.SquadID)
		_ = f.SetCellValue(sessionsSheet, fmt.Sprintf("E%d", row), string(line.Role))
		_ = f.SetCellValue(sessionsSheet, fmt.Sprintf("F%d", row), line.Duration)
	}

	_ = f.SetCellValue(competitionsSheet, "A1", "Date")
	_ = f.SetCellValue(competitionsSheet, "B1", "Start")
	_ = f.SetCellValue(competitionsSheet, "C1", "End")
	_ = f.SetCellValue(competitionsSheet, "D1", "Competition")
	_ = f.SetCellValue(competitionsSheet, "E1", "Hours")
	for i, line := range inv.Coaching.Competitions {
		row := i + 2
		_ = f.SetCellValue(competitionsSheet, fmt.Sprintf("A%d", row), line.Date)
		_ = f.SetCellValue(competitionsSheet, fmt.Sprintf("B%d", row), line.StartTime)
		_ = f.SetCellValue(competitionsSheet, fmt.Sprintf("C%d", row), line.EndTime)
		_ = f.SetCellValue(competitionsSheet, fmt.Sprintf("D%d", row), line.CompetitionName)
		_ = f.SetCellValue(competitionsSheet, fmt.Sprintf("E%d", row), line.Duration)
	}

	_ = f.SetCellValue(writingSheet, "A1", "Date")
	_ = f.SetCellValue(writingSheet, "B1", "Session")
	_ = f.SetCellValue(writingSheet, "C1", "Squad")
	for i, line := range inv.SessionWriting.Sessions {
		row := i + 2
		_ = f.SetCellValue(writingSheet, fmt.Sprintf("A%d", row), line.Date)
		_ = f.SetCellValue(writingSheet, fmt.Sprintf("B%d", row), line.SessionID)
		_ = f.SetCellValue(writingSheet, fmt.Sprintf("C%d", row), line.SquadID)
	}

	var buf bytes.Buffer
	if err := f.Write(&buf); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}
