package view

import (
	"fmt"

	tea "github.com/charmbracelet/bubbletea"
)

// View is implemented by every screen the root model can switch to.
type View interface {
	tea.Model
	Title() string
	ShortHelp() string
}

// CommonModel is embedded by all views.
type CommonModel struct{}

// BackMsg asks the root model to return to the menu.
type BackMsg struct{}

func Back() tea.Msg {
	return BackMsg{}
}

// PeriodLabel renders a fiscal period for view headers, e.g. "2024/06".
func PeriodLabel(year, month int) string {
	return fmt.Sprintf("%d/%02d", year, month)
}
