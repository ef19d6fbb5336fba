package interfaces

import (
	"bytes"
	"testing"

	invoicing "swimclub/internal/invoicing/domain"
)

func sampleInvoice() *invoicing.Invoice {
	return &invoicing.Invoice{
		CoachID:   "coach-1",
		CoachName: "Sam Little",
		Year:      2024,
		Month:     1,
		Rates:     invoicing.InvoiceRates{HourlyRate: 17, SessionWritingRate: 8.5},
		Coaching: invoicing.CoachingSummary{
			TotalHours: 5.5,
			Breakdown:  invoicing.CoachingBreakdown{SessionHours: 1.5, CompetitionHours: 4},
			Sessions: []invoicing.SessionLine{
				{SessionID: "s-1", Date: "2024-01-08", StartTime: "09:00", EndTime: "10:30", SquadID: "squad-a", Role: invoicing.RoleLead, Duration: 1.5},
			},
			Competitions: []invoicing.CompetitionLine{
				{CompetitionID: "comp-1", CompetitionName: "County Champs", Date: "2024-01-20", StartTime: "08:00", EndTime: "12:00", Duration: 4},
			},
			Earnings: 93.5,
		},
		SessionWriting: invoicing.WritingSummary{
			Count:    1,
			Sessions: []invoicing.WritingLine{{SessionID: "s-2", Date: "2024-01-09", SquadID: "squad-a"}},
			Earnings: 8.5,
		},
		Totals: invoicing.InvoiceTotals{TotalEarnings: 102, TotalHours: 5.5, TotalSessionsWritten: 1},
		Warnings: []invoicing.Warning{
			{Kind: invoicing.WarningInvalidTimeRange, RecordID: "s-bad", Date: "2024-01-10", Detail: "record excluded: end time is not after start time"},
		},
	}
}

func TestBuildInvoicePDF(t *testing.T) {
	data, err := BuildInvoicePDF(sampleInvoice())
	if err != nil {
		t.Fatalf("build pdf: %v", err)
	}
	if !bytes.HasPrefix(data, []byte("%PDF")) {
		t.Fatalf("expected a pdf document")
	}
}

func TestBuildInvoiceXLSX(t *testing.T) {
	data, err := BuildInvoiceXLSX(sampleInvoice())
	if err != nil {
		t.Fatalf("build xlsx: %v", err)
	}
	// XLSX files are zip archives.
	if !bytes.HasPrefix(data, []byte("PK")) {
		t.Fatalf("expected a zip container")
	}
}

func TestWriteInvoiceCSV(t *testing.T) {
	var buf bytes.Buffer
	if err := WriteInvoiceCSV(&buf, sampleInvoice()); err != nil {
		t.Fatalf("write csv: %v", err)
	}
	out := buf.String()
	for _, want := range []string{"coach_id,month,category,rate,hours,count,earnings", "coaching", "session_writing", "total", "2024-01", "102.00"} {
		if !bytes.Contains([]byte(out), []byte(want)) {
			t.Fatalf("csv missing %q:\n%s", want, out)
		}
	}
}
