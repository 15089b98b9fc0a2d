package view

import (
	tea "github.com/charmbracelet/bubbletea"

	"github.com/MrJamesThe3rd/lendbook/internal/auth"
)

// View is implemented by every screen reachable from the menu.
type View interface {
	tea.Model
	Title() string
	ShortHelp() string
}

// CommonModel is embedded by all views.
type CommonModel struct {
	Width   int
	Height  int
	Session *auth.Session
}

// Can reports whether the signed-in staff member holds p.
func (c CommonModel) Can(p auth.Permission) bool {
	return c.Session.Can(p)
}

type BackMsg struct{}

func Back() tea.Msg {
	return BackMsg{}
}
