package integration_test

import (
	"context"
	"database/sql"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"testing"

	invoiceapp "swimclub/internal/invoicing/application"
	invoicerates "swimclub/internal/invoicing/infrastructure/rates"
	invoiceinterfaces "swimclub/internal/invoicing/interfaces"
	rosterrepo "swimclub/internal/roster/infrastructure/postgres"
	schedulingrepo "swimclub/internal/scheduling/infrastructure/postgres"

	_ "github.com/jackc/pgx/v5/stdlib"
)

func TestMonthlyInvoice_PostgresEndToEnd(t *testing.T) {
	dsn := os.Getenv("PG_DSN")
	if dsn == "" {
		t.Skip("PG_DSN not set")
	}

	db, err := sql.Open("pgx", dsn)
	if err != nil {
		t.Fatalf("open db: %v", err)
	}
	defer db.Close()

	if err := applyMigrations(db); err != nil {
		t.Fatalf("apply migrations: %v", err)
	}

	ctx := context.Background()
	coachID := "coach-int-001"

	_, _ = db.ExecContext(ctx, "DELETE FROM assignment_blocks")
	_, _ = db.ExecContext(ctx, "DELETE FROM coach_assignments")
	_, _ = db.ExecContext(ctx, "DELETE FROM competitions")
	_, _ = db.ExecContext(ctx, "DELETE FROM sessions")
	_, _ = db.ExecContext(ctx, "DELETE FROM coaches WHERE id = $1", coachID)

	if err := seedActivity(ctx, db, coachID); err != nil {
		t.Fatalf("seed: %v", err)
	}

	coachRepo := rosterrepo.NewCoachRepository(db)
	sessionRepo := schedulingrepo.NewSessionRepository(db)
	assignmentRepo := schedulingrepo.NewAssignmentRepository(db)

	service, err := invoiceapp.NewInvoiceService(coachRepo, sessionRepo, assignmentRepo, invoicerates.NewStaticSource(nil), nil)
	if err != nil {
		t.Fatalf("service: %v", err)
	}

	inv, err := service.MonthlyInvoice(ctx, coachID, 2026, 1)
	if err != nil {
		t.Fatalf("monthly invoice: %v", err)
	}
	if inv.Coaching.TotalHours != 5.5 {
		t.Fatalf("coaching hours: %v", inv.Coaching.TotalHours)
	}
	if inv.Coaching.Earnings != 93.5 {
		t.Fatalf("coaching earnings: %v", inv.Coaching.Earnings)
	}
	if inv.SessionWriting.Count != 1 || inv.SessionWriting.Earnings != 8.5 {
		t.Fatalf("writing summary: %+v", inv.SessionWriting)
	}
	if inv.Totals.TotalEarnings != 102 {
		t.Fatalf("total earnings: %v", inv.Totals.TotalEarnings)
	}
	if len(inv.Warnings) != 0 {
		t.Fatalf("unexpected warnings: %+v", inv.Warnings)
	}

	months, err := service.AvailableMonths(ctx, coachID)
	if err != nil {
		t.Fatalf("available months: %v", err)
	}
	if len(months) != 2 {
		t.Fatalf("expected 2 months, got %d", len(months))
	}
	if months[0].Year != 2026 || months[0].Month != 2 {
		t.Fatalf("months not descending: %+v", months)
	}

	// empty month is a valid zero invoice, not an error
	empty, err := service.MonthlyInvoice(ctx, coachID, 2025, 6)
	if err != nil {
		t.Fatalf("empty month: %v", err)
	}
	if empty.Totals.TotalEarnings != 0 {
		t.Fatalf("empty month earnings: %v", empty.Totals.TotalEarnings)
	}

	handler, err := invoiceinterfaces.NewInvoiceHandler(service)
	if err != nil {
		t.Fatalf("handler: %v", err)
	}
	mux := http.NewServeMux()
	mux.Handle("/api/v1/invoices", handler)
	mux.Handle("/api/v1/invoices/", handler)

	pdfReq := httptest.NewRequest(http.MethodGet, "/api/v1/invoices/export.pdf?coach_id="+coachID+"&year=2026&month=1", nil)
	pdfResp := httptest.NewRecorder()
	mux.ServeHTTP(pdfResp, pdfReq)
	if pdfResp.Code != http.StatusOK {
		t.Fatalf("pdf status %d: %s", pdfResp.Code, pdfResp.Body.String())
	}
	if pdfResp.Header().Get("Content-Type") != "application/pdf" {
		t.Fatalf("pdf content-type mismatch")
	}
	if len(pdfResp.Body.Bytes()) == 0 {
		t.Fatalf("pdf empty")
	}

	missingReq := httptest.NewRequest(http.MethodGet, "/api/v1/invoices?coach_id=coach-missing&year=2026&month=1", nil)
	missingResp := httptest.NewRecorder()
	mux.ServeHTTP(missingResp, missingReq)
	if missingResp.Code != http.StatusNotFound {
		t.Fatalf("expected 404 for unknown coach, got %d", missingResp.Code)
	}
}

func applyMigrations(db *sql.DB) error {
	root := projectRoot()
	files := []string{
		filepath.Join(root, "migrations", "001_roster.sql"),
		filepath.Join(root, "migrations", "002_scheduling.sql"),
	}
	for _, path := range files {
		content, err := os.ReadFile(path)
		if err != nil {
			return err
		}
		if _, err := db.Exec(string(content)); err != nil {
			return err
		}
	}
	return nil
}

func seedActivity(ctx context.Context, db *sql.DB, coachID string) error {
	_, err := db.ExecContext(ctx, `
INSERT INTO coaches (id, name, email, qualification)
VALUES ($1, 'Integration Coach', 'coach@club.test', 'level2')
ON CONFLICT (id) DO UPDATE SET qualification = EXCLUDED.qualification`, coachID)
	if err != nil {
		return err
	}

	sessions := []struct {
		id, date, start, end, lead, writer string
	}{
		// 1.5h lead in January
		{"sess-int-1", "2026-01-10", "09:00", "10:30", coachID, ""},
		// writer only, no coaching hours
		{"sess-int-2", "2026-01-12", "16:00", "17:00", "", coachID},
		// another month, should not appear on the January invoice
		{"sess-int-3", "2026-02-03", "09:00", "10:00", coachID, ""},
	}
	for _, s := range sessions {
		_, err := db.ExecContext(ctx, `
INSERT INTO sessions (id, session_date, start_time, end_time, squad_id, title, lead_coach_id, set_writer_id)
VALUES ($1, $2, $3, $4, 'squad-a', 'Morning', NULLIF($5, ''), NULLIF($6, ''))`,
			s.id, s.date, s.start, s.end, s.lead, s.writer)
		if err != nil {
			return err
		}
	}

	_, err = db.ExecContext(ctx, `
INSERT INTO competitions (id, name, location) VALUES ('comp-int-1', 'Winter Gala', 'City Pool')`)
	if err != nil {
		return err
	}
	_, err = db.ExecContext(ctx, `
INSERT INTO coach_assignments (id, competition_id, coach_id) VALUES ('assign-int-1', 'comp-int-1', $1)`, coachID)
	if err != nil {
		return err
	}
	_, err = db.ExecContext(ctx, `
INSERT INTO assignment_blocks (assignment_id, block_date, start_time, end_time)
VALUES ('assign-int-1', '2026-01-18', '08:00', '12:00')`)
	return err
}

func projectRoot() string {
	dir, err := os.Getwd()
	if err != nil {
		return "."
	}
	return filepath.Clean(filepath.Join(dir, "..", "..", ".."))
}
