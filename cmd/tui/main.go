package main

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/joho/godotenv"

	"github.com/MrJamesThe3rd/lendbook/cmd/tui/internal/view"
	"github.com/MrJamesThe3rd/lendbook/internal/auth"
	"github.com/MrJamesThe3rd/lendbook/internal/config"
	"github.com/MrJamesThe3rd/lendbook/internal/credit"
	creditStore "github.com/MrJamesThe3rd/lendbook/internal/credit/store"
	"github.com/MrJamesThe3rd/lendbook/internal/database"
	"github.com/MrJamesThe3rd/lendbook/internal/guarantor"
	"github.com/MrJamesThe3rd/lendbook/internal/importer"
	"github.com/MrJamesThe3rd/lendbook/internal/loan"
	loanStore "github.com/MrJamesThe3rd/lendbook/internal/loan/store"
	"github.com/MrJamesThe3rd/lendbook/internal/statement"
)

// tokenEnv holds the staff member's bearer token; the TUI resolves the same
// capabilities from it as the API does.
const tokenEnv = "LENDBOOK_TOKEN"

type View int

const (
	ViewMenu View = iota
	ViewLoans
	ViewCredits
	ViewImport
	ViewGuarantor
)

type menuItem struct {
	key        string
	label      string
	view       View
	permission auth.Permission
}

var menu = []menuItem{
	{"1", "Loans", ViewLoans, auth.LoansView},
	{"2", "Credits", ViewCredits, auth.CreditsView},
	{"3", "Import Repayments", ViewImport, auth.RepaymentsImport},
	{"4", "Guarantor Requirement", ViewGuarantor, auth.LoansView},
}

type model struct {
	session          *auth.Session
	loanService      *loan.Service
	creditService    *credit.Service
	importService    *importer.Service
	statementService *statement.Service
	guarantorConfig  guarantor.Config

	currentView View
	active      view.View
	width       int
	height      int
}

func initialModel() model {
	_ = godotenv.Load()

	cfg, err := config.Load()
	if err != nil {
		slog.Error("failed to load config", "error", err)
		os.Exit(1)
	}

	session, err := auth.NewAuthenticator(cfg.Auth.JWTSecret).Parse(os.Getenv(tokenEnv))
	if err != nil {
		slog.Error("failed to authenticate", "env", tokenEnv, "error", err)
		os.Exit(1)
	}

	db, err := database.New(context.Background(), cfg.ConnectionString(), database.Pool{
		MaxOpenConns:    cfg.DB.MaxOpenConns,
		MaxIdleConns:    cfg.DB.MaxIdleConns,
		ConnMaxLifetime: cfg.DB.ConnMaxLifetime,
	})
	if err != nil {
		slog.Error("failed to connect to database", "error", err)
		os.Exit(1)
	}

	loanSvc := loan.NewService(loanStore.New(db))

	return model{
		session:          session,
		loanService:      loanSvc,
		creditService:    credit.NewService(creditStore.New(db)),
		importService:    importer.NewService(loanSvc),
		statementService: statement.NewService(loanSvc),
		guarantorConfig:  cfg.Guarantor,
		currentView:      ViewMenu,
	}
}

func (m model) Init() tea.Cmd {
	return nil
}

func (m model) open(v View) (tea.Model, tea.Cmd) {
	switch v {
	case ViewLoans:
		m.active = view.NewLoansModel(m.session, m.loanService, m.statementService)
	case ViewCredits:
		m.active = view.NewCreditsModel(m.session, m.creditService)
	case ViewImport:
		m.active = view.NewImportModel(m.session, m.importService)
	case ViewGuarantor:
		m.active = view.NewGuarantorModel(m.session, m.guarantorConfig)
	default:
		return m, nil
	}

	m.currentView = v

	cmds := []tea.Cmd{m.active.Init()}
	if m.width > 0 {
		width, height := m.width, m.height
		cmds = append(cmds, func() tea.Msg { return tea.WindowSizeMsg{Width: width, Height: height} })
	}

	return m, tea.Batch(cmds...)
}

func (m model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width, m.height = msg.Width, msg.Height
	case tea.KeyMsg:
		if msg.String() == "ctrl+c" {
			return m, tea.Quit
		}

		if m.currentView == ViewMenu {
			if msg.String() == "q" {
				return m, tea.Quit
			}

			for _, item := range menu {
				if msg.String() == item.key && m.session.Can(item.permission) {
					return m.open(item.view)
				}
			}

			return m, nil
		}
	case view.BackMsg:
		m.currentView = ViewMenu
		m.active = nil

		return m, nil
	}

	if m.active == nil {
		return m, nil
	}

	next, cmd := m.active.Update(msg)
	if v, ok := next.(view.View); ok {
		m.active = v
	}

	return m, cmd
}

func (m model) View() string {
	if m.currentView == ViewMenu || m.active == nil {
		var sb strings.Builder

		fmt.Fprintf(&sb, "Lendbook\nSigned in as %s (%s)\n\n", m.session.Subject, strings.Join(m.session.Roles, ", "))

		for _, item := range menu {
			if !m.session.Can(item.permission) {
				continue
			}

			fmt.Fprintf(&sb, "%s. %s\n", item.key, item.label)
		}

		sb.WriteString("\nq. Quit")

		return lipgloss.NewStyle().Padding(2).Render(sb.String())
	}

	help := lipgloss.NewStyle().Faint(true).PaddingLeft(1).Render(m.active.ShortHelp())
	title := lipgloss.NewStyle().Bold(true).PaddingLeft(1).Render(m.active.Title())

	return lipgloss.JoinVertical(lipgloss.Left, title, m.active.View(), help)
}

func main() {
	p := tea.NewProgram(initialModel(), tea.WithAltScreen())
	if _, err := p.Run(); err != nil {
		slog.Error("failed to run TUI", "error", err)
		os.Exit(1)
	}
}
