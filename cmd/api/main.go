package main

import (
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"time"

	"github.com/kakeibo-app/kakeibo/internal/auth"
	"github.com/kakeibo-app/kakeibo/internal/balance"
	balanceStore "github.com/kakeibo-app/kakeibo/internal/balance/store"
	"github.com/kakeibo-app/kakeibo/internal/catalog"
	catalogStore "github.com/kakeibo-app/kakeibo/internal/catalog/store"
	"github.com/kakeibo-app/kakeibo/internal/config"
	"github.com/kakeibo-app/kakeibo/internal/database"
	kakeiboHttp "github.com/kakeibo-app/kakeibo/internal/http"
	authHandler "github.com/kakeibo-app/kakeibo/internal/http/auth"
	catalogHandler "github.com/kakeibo-app/kakeibo/internal/http/catalog"
	entryHandler "github.com/kakeibo-app/kakeibo/internal/http/entry"
	importHandler "github.com/kakeibo-app/kakeibo/internal/http/importcsv"
	periodHandler "github.com/kakeibo-app/kakeibo/internal/http/period"
	reconcileHandler "github.com/kakeibo-app/kakeibo/internal/http/reconcile"
	"github.com/kakeibo-app/kakeibo/internal/importer"
	"github.com/kakeibo-app/kakeibo/internal/ledger"
	ledgerStore "github.com/kakeibo-app/kakeibo/internal/ledger/store"
	"github.com/kakeibo-app/kakeibo/internal/period"
	"github.com/kakeibo-app/kakeibo/internal/recurrence"
	recurrenceStore "github.com/kakeibo-app/kakeibo/internal/recurrence/store"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		slog.Error("failed to load config", "error", err)
		os.Exit(1)
	}

	if err := database.RunMigrations(cfg.ConnectionString()); err != nil {
		slog.Error("failed to run migrations", "error", err)
		os.Exit(1)
	}

	db, err := database.New(cfg.ConnectionString())
	if err != nil {
		slog.Error("failed to connect to database", "error", err)
		os.Exit(1)
	}
	defer db.Close()

	calc, err := period.NewCalculator(period.Config{
		CutoverDay:      cfg.Fiscal.CutoverDay,
		NextMonthMinDay: cfg.Fiscal.NextMonthMinDay,
		MinYear:         cfg.Fiscal.MinYear,
		MaxYear:         cfg.Fiscal.MaxYear,
	})
	if err != nil {
		slog.Error("invalid fiscal configuration", "error", err)
		os.Exit(1)
	}

	var (
		authService       = auth.NewService(cfg.Auth.Secret, cfg.Auth.Username, cfg.Auth.PasswordHash, cfg.Auth.TokenTTL)
		entryService      = ledger.NewService(ledgerStore.New(db), calc, time.Now)
		recurrenceService = recurrence.NewService(recurrenceStore.New(db), calc, time.Now)
		balanceService    = balance.NewService(balanceStore.New(db), calc)
		catalogService    = catalog.NewService(catalogStore.New(db))
		importService     = importer.NewService()
	)

	var (
		authH      = authHandler.NewHandler(authService)
		periodsH   = periodHandler.NewHandler(calc, entryService, recurrenceService, balanceService, time.Now)
		entriesH   = entryHandler.NewHandler(entryService)
		reconcileH = reconcileHandler.NewHandler(calc, balanceService)
		catalogH   = catalogHandler.NewHandler(catalogService, time.Now)
		importH    = importHandler.NewHandler(importService, entryService)
	)

	router := kakeiboHttp.New(authService, authH, periodsH, entriesH, reconcileH, catalogH, importH)

	port := fmt.Sprintf(":%d", cfg.App.Port)
	slog.Info("starting server", "port", port)

	if err := http.ListenAndServe(port, router); err != nil {
		slog.Error("server failed", "error", err)
		os.Exit(1)
	}
}
