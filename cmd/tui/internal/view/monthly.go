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
	"github.com/kakeibo-app/kakeibo/internal/ledger"
	"github.com/kakeibo-app/kakeibo/internal/period"
	"github.com/kakeibo-app/kakeibo/internal/recurrence"
)

type monthlyState int

const (
	monthlyStateBrowse monthlyState = iota
	monthlyStateEdit
)

// entryRef points at either an income or an expense behind a table row.
type entryRef struct {
	income  *ledger.Income
	expense *ledger.Expense
}

func (e entryRef) name() string {
	if e.income != nil {
		return e.income.Name
	}

	return e.expense.Name
}

// monthlyData is everything the view needs for one fiscal period.
type monthlyData struct {
	incomes          []*ledger.Income
	expenses         []*ledger.Expense
	lastMonthBalance int64
	cumulative       int64
	discrepancy      balance.DiscrepancyReport
}

type MonthlyModel struct {
	CommonModel
	entrySvc *ledger.Service
	recSvc   *recurrence.Service
	balSvc   *balance.Service
	calc     *period.Calculator

	year  int
	month int

	state   monthlyState
	table   table.Model
	entries []entryRef
	data    monthlyData
	form    *huh.Form

	loading bool
	err     error
	status  string

	formAmount string
}

func NewMonthlyModel(
	entrySvc *ledger.Service,
	recSvc *recurrence.Service,
	balSvc *balance.Service,
	calc *period.Calculator,
	year, month int,
) MonthlyModel {
	columns := []table.Column{
		{Title: "Date", Width: 12},
		{Title: "Kind", Width: 8},
		{Title: "Name", Width: 28},
		{Title: "Amount", Width: 12},
		{Title: "State", Width: 10},
	}

	t := table.New(
		table.WithColumns(columns),
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

	return MonthlyModel{
		entrySvc: entrySvc,
		recSvc:   recSvc,
		balSvc:   balSvc,
		calc:     calc,
		year:     year,
		month:    month,
		table:    t,
	}
}

func (m MonthlyModel) Title() string { return "Monthly Table" }
func (m MonthlyModel) ShortHelp() string {
	if m.state == monthlyStateEdit {
		return "Navigate form | Esc: cancel"
	}

	return "Esc: back | n/p: next/prev month | e: edit amount | s: advance state | r: refresh"
}

func (m MonthlyModel) Init() tea.Cmd {
	return m.loadCmd()
}

func (m MonthlyModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case loadMonthMsg:
		m.loading = false
		if msg.err != nil {
			m.err = msg.err
			return m, nil
		}

		m.err = nil
		m.data = msg.data
		m.refreshTable()

		return m, nil

	case monthActionMsg:
		if msg.err != nil {
			m.status = fmt.Sprintf("Error: %v", msg.err)
		} else {
			m.status = ""
		}

		m.state = monthlyStateBrowse
		m.form = nil
		m.table.Focus()

		return m, m.loadCmd()

	case tea.WindowSizeMsg:
		m.table.SetHeight(msg.Height - 14)
		return m, nil
	}

	switch m.state {
	case monthlyStateBrowse:
		return m.updateBrowse(msg)
	case monthlyStateEdit:
		return m.updateEdit(msg)
	}

	return m, nil
}

func (m MonthlyModel) updateBrowse(msg tea.Msg) (tea.Model, tea.Cmd) {
	if keyMsg, ok := msg.(tea.KeyMsg); ok {
		switch keyMsg.String() {
		case "esc":
			return m, Back
		case "r":
			m.loading = true
			return m, m.loadCmd()
		case "n":
			m.year, m.month = period.AddMonths(m.year, m.month, 1)
			m.loading = true

			return m, m.loadCmd()
		case "p":
			m.year, m.month = period.AddMonths(m.year, m.month, -1)
			m.loading = true

			return m, m.loadCmd()
		case "e":
			return m.enterEditMode()
		case "s":
			return m, m.advanceStateCmd()
		}
	}

	var cmd tea.Cmd
	m.table, cmd = m.table.Update(msg)

	return m, cmd
}

func (m MonthlyModel) enterEditMode() (tea.Model, tea.Cmd) {
	idx := m.table.Cursor()
	if idx < 0 || idx >= len(m.entries) {
		return m, nil
	}

	entry := m.entries[idx]

	amount := int64(0)
	if entry.income != nil {
		amount = entry.income.Amount
	} else {
		amount = entry.expense.Amount
	}

	m.formAmount = strconv.FormatInt(amount, 10)

	m.form = huh.NewForm(
		huh.NewGroup(
			huh.NewInput().
				Key("amount").
				Title("Amount (yen)").
				Value(&m.formAmount).
				Validate(func(s string) error {
					v, err := strconv.ParseInt(strings.TrimSpace(s), 10, 64)
					if err != nil || v < 0 {
						return fmt.Errorf("enter a non-negative integer")
					}

					return nil
				}),
		),
	).WithWidth(40).WithShowHelp(false)

	m.state = monthlyStateEdit
	m.table.Blur()

	return m, m.form.Init()
}

func (m MonthlyModel) updateEdit(msg tea.Msg) (tea.Model, tea.Cmd) {
	if keyMsg, ok := msg.(tea.KeyMsg); ok {
		if keyMsg.Type == tea.KeyEsc {
			m.state = monthlyStateBrowse
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

	return m, m.saveAmountCmd()
}

func (m MonthlyModel) View() string {
	if m.loading {
		return lipgloss.NewStyle().Padding(2).Render("Loading period...")
	}

	if m.err != nil {
		return lipgloss.NewStyle().Padding(2).Render(fmt.Sprintf("Error: %v", m.err))
	}

	incomeSum := balance.SumIncomeAmounts(m.data.incomes)
	expenseSum := balance.SumExpenseAmounts(m.data.expenses)

	header := lipgloss.NewStyle().Bold(true).Render(PeriodLabel(m.year, m.month))

	summary := fmt.Sprintf(
		"Income: %s | Expense: %s | Month: %s | Carried: %s | Total: %s",
		FormatYen(incomeSum),
		FormatYen(expenseSum),
		FormatYen(incomeSum-expenseSum),
		FormatYen(m.data.lastMonthBalance),
		FormatYen(m.data.cumulative),
	)

	reconcile := fmt.Sprintf(
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
		lipgloss.NewStyle().PaddingBottom(1).Render(summary),
		tableView,
		lipgloss.NewStyle().Faint(true).Render(reconcile),
	)

	if m.state == monthlyStateEdit && m.form != nil {
		idx := m.table.Cursor()

		name := ""
		if idx >= 0 && idx < len(m.entries) {
			name = m.entries[idx].name()
		}

		panel := lipgloss.NewStyle().
			Padding(1, 2).
			BorderStyle(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color("63")).
			Width(44).
			Render(fmt.Sprintf("Edit Entry\n\n%s\n\n%s", name, m.form.View()))

		content = lipgloss.JoinHorizontal(lipgloss.Top, content, panel)
	}

	if m.status != "" {
		content = lipgloss.NewStyle().Faint(true).Render(m.status) + "\n" + content
	}

	return lipgloss.NewStyle().Padding(1).Render(content)
}

func (m *MonthlyModel) refreshTable() {
	m.entries = m.entries[:0]

	rows := make([]table.Row, 0, len(m.data.incomes)+len(m.data.expenses))

	for _, inc := range m.data.incomes {
		m.entries = append(m.entries, entryRef{income: inc})
		rows = append(rows, table.Row{
			FormatDate(inc.PayDate),
			"income",
			inc.Name,
			FormatYen(inc.Amount),
			string(inc.State),
		})
	}

	for _, exp := range m.data.expenses {
		m.entries = append(m.entries, entryRef{expense: exp})
		rows = append(rows, table.Row{
			FormatDate(exp.PayDate),
			"expense",
			exp.Name,
			FormatYen(exp.Amount),
			string(exp.State),
		})
	}

	m.table.SetRows(rows)
}

// Messages

type loadMonthMsg struct {
	data monthlyData
	err  error
}

type monthActionMsg struct {
	err error
}

func (m MonthlyModel) loadCmd() tea.Cmd {
	year, month := m.year, m.month

	return func() tea.Msg {
		ctx, cancel := DbCtx()
		defer cancel()

		if m.recSvc.CanMaterialize(year, month) {
			if _, err := m.recSvc.MaterializeAll(ctx, year, month); err != nil {
				return loadMonthMsg{err: err}
			}
		}

		var data monthlyData

		var err error

		data.incomes, err = m.entrySvc.ListPeriodIncomes(ctx, year, month)
		if err != nil {
			return loadMonthMsg{err: err}
		}

		data.expenses, err = m.entrySvc.ListPeriodExpenses(ctx, year, month)
		if err != nil {
			return loadMonthMsg{err: err}
		}

		prevYear, prevMonth := period.AddMonths(year, month, -1)
		if data.lastMonthBalance, err = m.balSvc.CumulativeBalance(ctx, prevYear, prevMonth); err != nil {
			data.lastMonthBalance = 0
		}

		if data.cumulative, err = m.balSvc.CumulativeBalance(ctx, year, month); err != nil {
			return loadMonthMsg{err: err}
		}

		if data.discrepancy, err = m.balSvc.Discrepancy(ctx, year, month); err != nil {
			return loadMonthMsg{err: err}
		}

		return loadMonthMsg{data: data}
	}
}

func (m MonthlyModel) saveAmountCmd() tea.Cmd {
	idx := m.table.Cursor()
	if idx < 0 || idx >= len(m.entries) {
		return nil
	}

	entry := m.entries[idx]

	amount, err := strconv.ParseInt(strings.TrimSpace(m.formAmount), 10, 64)
	if err != nil {
		return func() tea.Msg { return monthActionMsg{err: err} }
	}

	return func() tea.Msg {
		ctx, cancel := DbCtx()
		defer cancel()

		if entry.income != nil {
			entry.income.Amount = amount
			return monthActionMsg{err: m.entrySvc.UpdateIncome(ctx, entry.income)}
		}

		entry.expense.Amount = amount

		return monthActionMsg{err: m.entrySvc.UpdateExpense(ctx, entry.expense)}
	}
}

// advanceStateCmd moves the selected entry one step forward in its
// lifecycle: undecided -> decided -> done.
func (m MonthlyModel) advanceStateCmd() tea.Cmd {
	idx := m.table.Cursor()
	if idx < 0 || idx >= len(m.entries) {
		return nil
	}

	entry := m.entries[idx]

	return func() tea.Msg {
		ctx, cancel := DbCtx()
		defer cancel()

		if entry.income != nil {
			next, ok := nextState(entry.income.State)
			if !ok {
				return monthActionMsg{}
			}

			return monthActionMsg{err: m.entrySvc.AdvanceIncomeState(ctx, entry.income.ID, next)}
		}

		next, ok := nextState(entry.expense.State)
		if !ok {
			return monthActionMsg{}
		}

		return monthActionMsg{err: m.entrySvc.AdvanceExpenseState(ctx, entry.expense.ID, next)}
	}
}

func nextState(s ledger.State) (ledger.State, bool) {
	switch s {
	case ledger.StateUndecided:
		return ledger.StateDecided, true
	case ledger.StateDecided:
		return ledger.StateDone, true
	}

	return s, false
}
