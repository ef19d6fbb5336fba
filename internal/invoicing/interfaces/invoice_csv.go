package interfaces

import (
	"encoding/csv"
	"fmt"
	"io"
	"strconv"

	invoicing "swimclub/internal/invoicing/domain"
)

// WriteInvoiceCSV writes the flat export format: one row per category with
// its rate, hours, earnings and count.
func WriteInvoiceCSV(w io.Writer, inv *invoicing.Invoice) error {
	writer := csv.NewWriter(w)
	rows := [][]string{
		{"coach_id", "month", "category", "rate", "hours", "count", "earnings"},
		{
			inv.CoachID, monthLabel(inv), "coaching",
			formatAmount(inv.Rates.HourlyRate),
			formatAmount(inv.Coaching.TotalHours),
			"",
			formatAmount(inv.Coaching.Earnings),
		},
		{
			inv.CoachID, monthLabel(inv), "session_writing",
			formatAmount(inv.Rates.SessionWritingRate),
			"",
			strconv.Itoa(inv.SessionWriting.Count),
			formatAmount(inv.SessionWriting.Earnings),
		},
		{
			inv.CoachID, monthLabel(inv), "total",
			"",
			formatAmount(inv.Totals.TotalHours),
			strconv.Itoa(inv.Totals.TotalSessionsWritten),
			formatAmount(inv.Totals.TotalEarnings),
		},
	}
	for _, row := range rows {
		if err := writer.Write(row); err != nil {
			return err
		}
	}
	writer.Flush()
	return writer.Error()
}

func monthLabel(inv *invoicing.Invoice) string {
	return fmt.Sprintf("%04d-%02d", inv.Year, inv.Month)
}

func formatAmount(v float64) string {
	return strconv.FormatFloat(v, 'f', 2, 64)
}
