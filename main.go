package main

import (
	"database/sql"
	"log"
	"net/http"
	"os"
	"time"

	invoiceapp "swimclub/internal/invoicing/application"
	invoicerates "swimclub/internal/invoicing/infrastructure/rates"
	invoiceinterfaces "swimclub/internal/invoicing/interfaces"
	"swimclub/internal/observability/metrics"
	rosterrepo "swimclub/internal/roster/infrastructure/postgres"
	rosterhttp "swimclub/internal/roster/interfaces/http"
	schedulingrepo "swimclub/internal/scheduling/infrastructure/postgres"

	_ "github.com/jackc/pgx/v5/stdlib"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

func main() {
	cfg := loadConfig()
	logger := log.New(os.Stdout, "", log.LstdFlags)

	db, err := sql.Open("pgx", cfg.DatabaseURL)
	if err != nil {
		logger.Fatalf("db open error: %v", err)
	}
	defer db.Close()

	if err := db.Ping(); err != nil {
		logger.Fatalf("db ping error: %v", err)
	}

	metrics.Init(db, logger)

	coachRepo := rosterrepo.NewCoachRepository(db)
	sessionRepo := schedulingrepo.NewSessionRepository(db)
	assignmentRepo := schedulingrepo.NewAssignmentRepository(db)

	rateSource, err := buildRateSource(cfg, db)
	if err != nil {
		logger.Fatalf("rate source error: %v", err)
	}

	invoiceService, err := invoiceapp.NewInvoiceService(coachRepo, sessionRepo, assignmentRepo, rateSource, logger)
	if err != nil {
		logger.Fatalf("invoice service error: %v", err)
	}
	invoiceHandler, err := invoiceinterfaces.NewInvoiceHandler(invoiceService)
	if err != nil {
		logger.Fatalf("invoice handler error: %v", err)
	}
	coachHandler, err := rosterhttp.NewCoachHandler(coachRepo)
	if err != nil {
		logger.Fatalf("coach handler error: %v", err)
	}

	mux := http.NewServeMux()
	mux.Handle("/api/v1/invoices", invoiceHandler)
	mux.Handle("/api/v1/invoices/", invoiceHandler)
	mux.Handle("/api/v1/coaches", coachHandler)
	mux.Handle("/metrics", promhttp.Handler())
	mux.HandleFunc("/healthz", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte("ok"))
	})

	server := &http.Server{Addr: cfg.HTTPAddr, Handler: loggingMiddleware(mux, logger)}
	logger.Printf("http listening on %s", cfg.HTTPAddr)
	logger.Fatal(server.ListenAndServe())
}

type config struct {
	DatabaseURL  string
	HTTPAddr     string
	RatesConfig  string
	RatesFromDB  bool
	RatesDBTable string
}

func loadConfig() config {
	cfg := config{
		DatabaseURL:  getenvDefault("DATABASE_URL", getenvDefault("PG_DSN", "")),
		HTTPAddr:     getenvDefault("HTTP_ADDR", ":8080"),
		RatesConfig:  getenvDefault("RATES_CONFIG", ""),
		RatesFromDB:  getenvDefault("RATES_FROM_DB", "") == "true",
		RatesDBTable: getenvDefault("RATES_DB_TABLE", ""),
	}
	if cfg.DatabaseURL == "" {
		log.Fatal("DATABASE_URL or PG_DSN is required")
	}
	return cfg
}

// buildRateSource picks where qualification rates come from: the database,
// a yaml file, or the built-in club defaults.
func buildRateSource(cfg config, db *sql.DB) (invoiceapp.RateSource, error) {
	if cfg.RatesFromDB {
		return invoicerates.NewPostgresSource(db, invoicerates.WithRatesTable(cfg.RatesDBTable)), nil
	}
	return invoicerates.NewConfigSource(cfg.RatesConfig)
}

func getenvDefault(key, fallback string) string {
	value := os.Getenv(key)
	if value == "" {
		return fallback
	}
	return value
}

func loggingMiddleware(next http.Handler, logger *log.Logger) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		resp := &statusWriter{ResponseWriter: w, status: http.StatusOK}
		next.ServeHTTP(resp, r)
		logger.Printf("http %s %s %d %s", r.Method, r.URL.Path, resp.status, time.Since(start))
	})
}

type statusWriter struct {
	http.ResponseWriter
	status int
}

func (w *statusWriter) WriteHeader(status int) {
	w.status = status
	w.ResponseWriter.WriteHeader(status)
}
