package main

import (
	"log/slog"
	"os"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/joho/godotenv"

	"github.com/kakeibo-app/kakeibo/cmd/tui/internal/view"
	"github.com/kakeibo-app/kakeibo/internal/balance"
	balanceStore "github.com/kakeibo-app/kakeibo/internal/balance/store"
	"github.com/kakeibo-app/kakeibo/internal/catalog"
	catalogStore "github.com/kakeibo-app/kakeibo/internal/catalog/store"
	"github.com/kakeibo-app/kakeibo/internal/config"
	"github.com/kakeibo-app/kakeibo/internal/database"
	"github.com/kakeibo-app/kakeibo/internal/ledger"
	ledgerStore "github.com/kakeibo-app/kakeibo/internal/ledger/store"
	"github.com/kakeibo-app/kakeibo/internal/period"
	"github.com/kakeibo-app/kakeibo/internal/recurrence"
	recurrenceStore "github.com/kakeibo-app/kakeibo/internal/recurrence/store"
)

type model struct {
	ledgerService     *ledger.Service
	recurrenceService *recurrence.Service
	balanceService    *balance.Service
	catalogService    *catalog.Service
	calc              *period.Calculator

	currentView View

	monthlyView   view.MonthlyModel
	reconcileView view.ReconcileModel
}

type View int

const (
	ViewMenu      View = 0
	ViewMonthly   View = 1
	ViewReconcile View = 2
)

func initialModel() model {
	_ = godotenv.Load()

	cfg, err := config.Load()
	if err != nil {
		slog.Error("failed to load config", "error", err)
		os.Exit(1)
	}

	db, err := database.New(cfg.ConnectionString())
	if err != nil {
		slog.Error("failed to connect to database", "error", err)
		os.Exit(1)
	}

	calc, err := period.NewCalculator(period.Config{
		CutoverDay:      cfg.Fiscal.CutoverDay,
		NextMonthMinDay: cfg.Fiscal.NextMonthMinDay,
		MinYear:         cfg.Fiscal.MinYear,
		MaxYear:         cfg.Fiscal.MaxYear,
	})
	if err != nil {
		slog.Error("failed to build period calculator", "error", err)
		os.Exit(1)
	}

	ledgerSvc := ledger.NewService(ledgerStore.New(db), calc, time.Now)
	recurrenceSvc := recurrence.NewService(recurrenceStore.New(db), calc, time.Now)
	balanceSvc := balance.NewService(balanceStore.New(db), calc)
	catalogSvc := catalog.NewService(catalogStore.New(db))

	year, month := calc.Resolve(time.Now())

	return model{
		ledgerService:     ledgerSvc,
		recurrenceService: recurrenceSvc,
		balanceService:    balanceSvc,
		catalogService:    catalogSvc,
		calc:              calc,
		currentView:       ViewMenu,
		monthlyView:       view.NewMonthlyModel(ledgerSvc, recurrenceSvc, balanceSvc, calc, year, month),
		reconcileView:     view.NewReconcileModel(balanceSvc, catalogSvc, year, month),
	}
}

func (m model) Init() tea.Cmd {
	return nil
}

func (m model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmd tea.Cmd

	switch msg := msg.(type) {
	case tea.KeyMsg:
		if m.currentView == ViewMenu {
			switch msg.String() {
			case "ctrl+c", "q":
				return m, tea.Quit
			case "1":
				m.currentView = ViewMonthly

				year, month := m.calc.Resolve(time.Now())
				m.monthlyView = view.NewMonthlyModel(
					m.ledgerService, m.recurrenceService, m.balanceService, m.calc, year, month)

				return m, m.monthlyView.Init()
			case "2":
				m.currentView = ViewReconcile

				year, month := m.calc.Resolve(time.Now())
				m.reconcileView = view.NewReconcileModel(m.balanceService, m.catalogService, year, month)

				return m, m.reconcileView.Init()
			}
		}
	case view.BackMsg:
		m.currentView = ViewMenu
		return m, nil
	}

	switch m.currentView {
	case ViewMonthly:
		var newModel tea.Model
		newModel, cmd = m.monthlyView.Update(msg)
		m.monthlyView = newModel.(view.MonthlyModel)
	case ViewReconcile:
		var newModel tea.Model
		newModel, cmd = m.reconcileView.Update(msg)
		m.reconcileView = newModel.(view.ReconcileModel)
	}

	return m, cmd
}

func (m model) View() string {
	switch m.currentView {
	case ViewMenu:
		return lipgloss.NewStyle().Padding(2).Render(
			"Kakeibo TUI\n\n" +
				"1. Monthly Table\n" +
				"2. Balance Check\n\n" +
				"q. Quit",
		)
	case ViewMonthly:
		return m.monthlyView.View()
	case ViewReconcile:
		return m.reconcileView.View()
	}

	return "Unknown View"
}

func main() {
	p := tea.NewProgram(initialModel())
	if _, err := p.Run(); err != nil {
		slog.Error("failed to run TUI", "error", err)
		os.Exit(1)
	}
}
