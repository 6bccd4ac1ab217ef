package view

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/charmbracelet/bubbles/table"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/huh"
	"github.com/charmbracelet/lipgloss"

	"github.com/kakeibo-app/kakeibo/internal/balance"
	"github.com/kakeibo-app/kakeibo/internal/catalog"
	"github.com/kakeibo-app/kakeibo/internal/period"
)

type reconcileTab int

const (
	tabAccounts reconcileTab = iota
	tabMethods
)

type reconcileState int

const (
	reconcileStateBrowse reconcileState = iota
	reconcileStateEditBalance
)

type reconcileData struct {
	accounts    []balance.AccountRequirement
	methods     []balance.MethodRequirement
	discrepancy balance.DiscrepancyReport
}

// ReconcileModel shows, per fiscal period, how much money every account
// and payment method still needs to cover its undone expenses.
type ReconcileModel struct {
	CommonModel
	balSvc     *balance.Service
	catalogSvc *catalog.Service

	year  int
	month int

	tab   reconcileTab
	state reconcileState
	table table.Model
	data  reconcileData
	form  *huh.Form

	loading bool
	err     error
	status  string

	formBalance string
}

func NewReconcileModel(balSvc *balance.Service, catalogSvc *catalog.Service, year, month int) ReconcileModel {
	t := table.New(
		table.WithFocused(true),
		table.WithHeight(15),
	)

	s := table.DefaultStyles()
	s.Header = s.Header.
		BorderStyle(lipgloss.NormalBorder()).
		BorderForeground(lipgloss.Color("240")).
		BorderBottom(true).
		Bold(false)
	s.Selected = s.Selected.
		Foreground(lipgloss.Color("229")).
		Background(lipgloss.Color("57")).
		Bold(false)
	t.SetStyles(s)

	m := ReconcileModel{
		balSvc:     balSvc,
		catalogSvc: catalogSvc,
		year:       year,
		month:      month,
		table:      t,
	}
	m.setColumns()

	return m
}

func (m ReconcileModel) Title() string { return "Balance Check" }
func (m ReconcileModel) ShortHelp() string {
	if m.state == reconcileStateEditBalance {
		return "Navigate form | Esc: cancel"
	}

	if m.tab == tabAccounts {
		return "Esc: back | Tab: methods | n/p: next/prev month | e: edit balance"
	}

	return "Esc: back | Tab: accounts | n/p: next/prev month | d: mark expenses done"
}

func (m ReconcileModel) Init() tea.Cmd {
	return m.loadCmd()
}

func (m ReconcileModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case loadReconcileMsg:
		m.loading = false
		if msg.err != nil {
			m.err = msg.err
			return m, nil
		}

		m.err = nil
		m.data = msg.data
		m.refreshTable()

		return m, nil

	case reconcileActionMsg:
		if msg.err != nil {
			m.status = fmt.Sprintf("Error: %v", msg.err)
		} else if msg.marked > 0 {
			m.status = fmt.Sprintf("Marked %d expenses done", msg.marked)
		} else {
			m.status = ""
		}

		m.state = reconcileStateBrowse
		m.form = nil
		m.table.Focus()

		return m, m.loadCmd()

	case tea.WindowSizeMsg:
		m.table.SetHeight(msg.Height - 12)
		return m, nil
	}

	switch m.state {
	case reconcileStateBrowse:
		return m.updateBrowse(msg)
	case reconcileStateEditBalance:
		return m.updateEdit(msg)
	}

	return m, nil
}

func (m ReconcileModel) updateBrowse(msg tea.Msg) (tea.Model, tea.Cmd) {
	if keyMsg, ok := msg.(tea.KeyMsg); ok {
		switch keyMsg.String() {
		case "esc":
			return m, Back
		case "tab":
			if m.tab == tabAccounts {
				m.tab = tabMethods
			} else {
				m.tab = tabAccounts
			}

			m.setColumns()
			m.refreshTable()

			return m, nil
		case "n":
			m.year, m.month = period.AddMonths(m.year, m.month, 1)
			m.loading = true

			return m, m.loadCmd()
		case "p":
			m.year, m.month = period.AddMonths(m.year, m.month, -1)
			m.loading = true

			return m, m.loadCmd()
		case "e":
			if m.tab == tabAccounts {
				return m.enterBalanceEdit()
			}
		case "d":
			if m.tab == tabMethods {
				return m, m.markDoneCmd()
			}
		}
	}

	var cmd tea.Cmd
	m.table, cmd = m.table.Update(msg)

	return m, cmd
}

func (m ReconcileModel) enterBalanceEdit() (tea.Model, tea.Cmd) {
	idx := m.table.Cursor()
	if idx < 0 || idx >= len(m.data.accounts) {
		return m, nil
	}

	m.formBalance = strconv.FormatInt(m.data.accounts[idx].Account.Balance, 10)

	m.form = huh.NewForm(
		huh.NewGroup(
			huh.NewInput().
				Key("balance").
				Title("Current balance (yen)").
				Value(&m.formBalance).
				Validate(func(s string) error {
					v, err := strconv.ParseInt(strings.TrimSpace(s), 10, 64)
					if err != nil || v < 0 {
						return fmt.Errorf("enter a non-negative integer")
					}

					return nil
				}),
		),
	).WithWidth(40).WithShowHelp(false)

	m.state = reconcileStateEditBalance
	m.table.Blur()

	return m, m.form.Init()
}

func (m ReconcileModel) updateEdit(msg tea.Msg) (tea.Model, tea.Cmd) {
	if keyMsg, ok := msg.(tea.KeyMsg); ok {
		if keyMsg.Type == tea.KeyEsc {
			m.state = reconcileStateBrowse
			m.form = nil
			m.table.Focus()

			return m, nil
		}
	}

	form, cmd := m.form.Update(msg)
	if f, ok := form.(*huh.Form); ok {
		m.form = f
	}

	if m.form.State != huh.StateCompleted {
		return m, cmd
	}

	return m, m.saveBalanceCmd()
}

func (m ReconcileModel) View() string {
	if m.loading {
		return lipgloss.NewStyle().Padding(2).Render("Loading balances...")
	}

	if m.err != nil {
		return lipgloss.NewStyle().Padding(2).Render(fmt.Sprintf("Error: %v", m.err))
	}

	tabName := "Accounts"
	if m.tab == tabMethods {
		tabName = "Methods"
	}

	header := lipgloss.NewStyle().Bold(true).
		Render(fmt.Sprintf("%s  %s", PeriodLabel(m.year, m.month), tabName))

	discrepancy := fmt.Sprintf(
		"Accounts: %s | Ledger done: %s | Diff: %s",
		FormatYen(m.data.discrepancy.AccountBalanceSum),
		FormatYen(m.data.discrepancy.LedgerDoneBalance),
		FormatYen(m.data.discrepancy.Diff),
	)

	tableView := lipgloss.NewStyle().
		BorderStyle(lipgloss.NormalBorder()).
		BorderForeground(lipgloss.Color("240")).
		Render(m.table.View())

	content := lipgloss.JoinVertical(lipgloss.Left,
		header,
		tableView,
		lipgloss.NewStyle().Faint(true).Render(discrepancy),
	)

	if m.state == reconcileStateEditBalance && m.form != nil {
		idx := m.table.Cursor()

		name := ""
		if idx >= 0 && idx < len(m.data.accounts) {
			name = accountLabel(m.data.accounts[idx].Account.Bank.Name, m.data.accounts[idx].Account.Owner.Name)
		}

		panel := lipgloss.NewStyle().
			Padding(1, 2).
			BorderStyle(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color("63")).
			Width(44).
			Render(fmt.Sprintf("Update Balance\n\n%s\n\n%s", name, m.form.View()))

		content = lipgloss.JoinHorizontal(lipgloss.Top, content, panel)
	}

	if m.status != "" {
		content = lipgloss.NewStyle().Faint(true).Render(m.status) + "\n" + content
	}

	return lipgloss.NewStyle().Padding(1).Render(content)
}

func (m *ReconcileModel) setColumns() {
	if m.tab == tabAccounts {
		m.table.SetColumns([]table.Column{
			{Title: "Account", Width: 28},
			{Title: "Balance", Width: 12},
			{Title: "Required", Width: 12},
			{Title: "Shortfall", Width: 12},
		})

		return
	}

	m.table.SetColumns([]table.Column{
		{Title: "Method", Width: 20},
		{Title: "Account", Width: 24},
		{Title: "Required", Width: 12},
		{Title: "Shortfall", Width: 12},
	})
}

func (m *ReconcileModel) refreshTable() {
	if m.tab == tabAccounts {
		rows := make([]table.Row, 0, len(m.data.accounts))
		for _, ar := range m.data.accounts {
			rows = append(rows, table.Row{
				accountLabel(ar.Account.Bank.Name, ar.Account.Owner.Name),
				FormatYen(ar.Account.Balance),
				FormatYen(ar.Requirement),
				shortfallCell(ar.IsInsufficient, ar.InsufficientAmount),
			})
		}

		m.table.SetRows(rows)
		m.table.SetCursor(0)

		return
	}

	rows := make([]table.Row, 0, len(m.data.methods))
	for _, mr := range m.data.methods {
		account := ""
		if mr.Method.Account != nil {
			account = accountLabel(mr.Method.Account.Bank.Name, mr.Method.Account.Owner.Name)
		}

		rows = append(rows, table.Row{
			mr.Method.Name,
			account,
			FormatYen(mr.Requirement),
			shortfallCell(mr.IsInsufficient, mr.InsufficientAmount),
		})
	}

	m.table.SetRows(rows)
	m.table.SetCursor(0)
}

func accountLabel(bank, owner string) string {
	return fmt.Sprintf("%s / %s", bank, owner)
}

func shortfallCell(insufficient bool, amount int64) string {
	if !insufficient {
		return "-"
	}

	return FormatYen(amount)
}

// Messages

type loadReconcileMsg struct {
	data reconcileData
	err  error
}

type reconcileActionMsg struct {
	marked int64
	err    error
}

func (m ReconcileModel) loadCmd() tea.Cmd {
	year, month := m.year, m.month

	return func() tea.Msg {
		ctx, cancel := DbCtx()
		defer cancel()

		var data reconcileData

		var err error

		data.accounts, err = m.balSvc.AccountRequirements(ctx, year, month)
		if err != nil {
			return loadReconcileMsg{err: err}
		}

		data.methods, err = m.balSvc.MethodRequirements(ctx, year, month)
		if err != nil {
			return loadReconcileMsg{err: err}
		}

		data.discrepancy, err = m.balSvc.Discrepancy(ctx, year, month)
		if err != nil {
			return loadReconcileMsg{err: err}
		}

		return loadReconcileMsg{data: data}
	}
}

func (m ReconcileModel) saveBalanceCmd() tea.Cmd {
	idx := m.table.Cursor()
	if idx < 0 || idx >= len(m.data.accounts) {
		return nil
	}

	accountID := m.data.accounts[idx].Account.ID

	newBalance, err := strconv.ParseInt(strings.TrimSpace(m.formBalance), 10, 64)
	if err != nil {
		return func() tea.Msg { return reconcileActionMsg{err: err} }
	}

	return func() tea.Msg {
		ctx, cancel := DbCtx()
		defer cancel()

		return reconcileActionMsg{err: m.catalogSvc.UpdateAccountBalance(ctx, accountID, newBalance)}
	}
}

func (m ReconcileModel) markDoneCmd() tea.Cmd {
	idx := m.table.Cursor()
	if idx < 0 || idx >= len(m.data.methods) {
		return nil
	}

	methodID := m.data.methods[idx].Method.ID
	year, month := m.year, m.month

	return func() tea.Msg {
		ctx, cancel := DbCtx()
		defer cancel()

		marked, err := m.balSvc.BulkMarkMethodDone(ctx, methodID, year, month)

		return reconcileActionMsg{marked: marked, err: err}
	}
}
