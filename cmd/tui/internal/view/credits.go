package view

import (
	"fmt"
	"time"

	"github.com/charmbracelet/bubbles/table"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/huh"
	"github.com/charmbracelet/lipgloss"

	"github.com/MrJamesThe3rd/lendbook/internal/auth"
	"github.com/MrJamesThe3rd/lendbook/internal/credit"
)

type creditsState int

const (
	creditsStateBrowse creditsState = iota
	creditsStatePayout
)

type CreditsModel struct {
	CommonModel
	creditService *credit.Service

	state   creditsState
	table   table.Model
	credits []*credit.Credit
	form    *huh.Form

	loading bool
	err     error
	status  string
}

func NewCreditsModel(session *auth.Session, svc *credit.Service) CreditsModel {
	columns := []table.Column{
		{Title: "Reference", Width: 16},
		{Title: "Status", Width: 10},
		{Title: "Principal", Width: 14},
		{Title: "Remaining", Width: 14},
		{Title: "Paid Out", Width: 14},
		{Title: "Rate %", Width: 7},
		{Title: "Matures", Width: 12},
	}

	return CreditsModel{
		CommonModel:   CommonModel{Session: session},
		creditService: svc,
		table:         newTable(columns),
		loading:       true,
	}
}

func (m CreditsModel) Title() string { return "Credits" }

func (m CreditsModel) ShortHelp() string {
	if m.state == creditsStatePayout {
		return "Navigate form | Esc: cancel"
	}

	return "Esc: back | p: payout | a: archive/restore | r: refresh"
}

func (m CreditsModel) Init() tea.Cmd {
	return m.loadCmd()
}

func (m CreditsModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case creditsLoadedMsg:
		m.loading = false
		if msg.err != nil {
			m.err = msg.err
			return m, nil
		}

		m.err = nil
		m.credits = msg.credits
		m.refreshTable()

		return m, nil

	case creditActionMsg:
		m.status = msg.text
		if msg.err != nil {
			m.status = errorStyle.Render(fmt.Sprintf("Error: %v", msg.err))
		}

		m.state = creditsStateBrowse
		m.form = nil
		m.table.Focus()

		return m, m.loadCmd()

	case tea.WindowSizeMsg:
		m.Width, m.Height = msg.Width, msg.Height
		m.table.SetHeight(msg.Height - 10)

		return m, nil
	}

	if m.state == creditsStatePayout {
		return m.updatePayout(msg)
	}

	return m.updateBrowse(msg)
}

func (m CreditsModel) selected() *credit.Credit {
	idx := m.table.Cursor()
	if idx < 0 || idx >= len(m.credits) {
		return nil
	}

	return m.credits[idx]
}

func (m CreditsModel) updateBrowse(msg tea.Msg) (tea.Model, tea.Cmd) {
	if keyMsg, ok := msg.(tea.KeyMsg); ok {
		switch keyMsg.String() {
		case "esc":
			return m, Back
		case "r":
			m.loading = true
			return m, m.loadCmd()
		case "p":
			if !m.Can(auth.PayoutsRecord) {
				m.status = errorStyle.Render("You are not allowed to record payouts.")
				return m, nil
			}

			return m.enterPayoutMode()
		case "a":
			if !m.Can(auth.CreditsManage) {
				m.status = errorStyle.Render("You are not allowed to archive credits.")
				return m, nil
			}

			return m, m.toggleArchiveCmd()
		}
	}

	var cmd tea.Cmd
	m.table, cmd = m.table.Update(msg)

	return m, cmd
}

func (m CreditsModel) enterPayoutMode() (tea.Model, tea.Cmd) {
	if m.selected() == nil {
		return m, nil
	}

	m.form = huh.NewForm(
		huh.NewGroup(
			huh.NewSelect[credit.PayoutType]().
				Key("type").
				Title("Payout type").
				Options(
					huh.NewOption("Interest only", credit.PayoutInterestOnly),
					huh.NewOption("Partial principal", credit.PayoutPartialPrincipal),
					huh.NewOption("Full maturity", credit.PayoutFullMaturity),
					huh.NewOption("Early withdrawal", credit.PayoutEarlyWithdrawal),
				),
		),
		huh.NewGroup(
			huh.NewInput().
				Key("principal").
				Title("Principal").
				Description("Ignored for interest-only and closing payouts").
				Placeholder("0.00").
				Validate(validateAmount),

			huh.NewInput().
				Key("interest").
				Title("Interest").
				Description("Closing payouts pay the accrued interest").
				Placeholder("0.00").
				Validate(validateAmount),

			huh.NewInput().
				Key("notes").
				Title("Notes"),

			huh.NewConfirm().
				Key("confirm").
				Title("Record payout?"),
		),
	).WithWidth(45).WithShowHelp(false)

	m.state = creditsStatePayout
	m.table.Blur()

	return m, m.form.Init()
}

func (m CreditsModel) updatePayout(msg tea.Msg) (tea.Model, tea.Cmd) {
	if keyMsg, ok := msg.(tea.KeyMsg); ok && keyMsg.Type == tea.KeyEsc {
		m.state = creditsStateBrowse
		m.form = nil
		m.table.Focus()

		return m, nil
	}

	form, cmd := m.form.Update(msg)
	if f, ok := form.(*huh.Form); ok {
		m.form = f
	}

	if m.form.State != huh.StateCompleted {
		return m, cmd
	}

	if !m.form.GetBool("confirm") {
		m.state = creditsStateBrowse
		m.form = nil
		m.table.Focus()

		return m, nil
	}

	return m, m.payoutCmd()
}

func (m CreditsModel) View() string {
	if m.loading {
		return lipgloss.NewStyle().Padding(2).Render("Loading credits...")
	}

	if m.err != nil {
		return lipgloss.NewStyle().Padding(2).Render(fmt.Sprintf("Error: %v", m.err))
	}

	content := tableBox(m.table)

	if m.state == creditsStatePayout && m.form != nil {
		if c := m.selected(); c != nil {
			panel := formPanel(fmt.Sprintf("Payout for %s\n\nRemaining principal: %s\n\n%s",
				c.Reference, FormatAmount(c.RemainingPrincipal), m.form.View()))

			content = lipgloss.JoinHorizontal(lipgloss.Top, content, panel)
		}
	}

	if m.status != "" {
		content = faintStyle.Render(m.status) + "\n" + content
	}

	return lipgloss.NewStyle().Padding(1).Render(content)
}

func (m *CreditsModel) refreshTable() {
	rows := make([]table.Row, 0, len(m.credits))
	for _, c := range m.credits {
		rows = append(rows, table.Row{
			c.Reference,
			string(c.Status),
			FormatAmount(c.Principal),
			FormatAmount(c.RemainingPrincipal),
			FormatAmount(c.TotalPaidOut),
			c.InterestRate.StringFixed(2),
			FormatDate(c.MaturityDate()),
		})
	}

	m.table.SetRows(rows)
}

// Messages

type creditsLoadedMsg struct {
	credits []*credit.Credit
	err     error
}

type creditActionMsg struct {
	text string
	err  error
}

func (m CreditsModel) loadCmd() tea.Cmd {
	return func() tea.Msg {
		ctx, cancel := DbCtx()
		defer cancel()

		credits, err := m.creditService.List(ctx, credit.ListFilter{IncludeArchived: true})
		if err != nil {
			return creditsLoadedMsg{err: err}
		}

		// Credits past maturity are flagged as they are listed.
		for _, c := range credits {
			if c.Status != credit.StatusActive || time.Now().Before(c.MaturityDate()) {
				continue
			}

			changed, err := m.creditService.MarkMatured(ctx, c.ID)
			if err != nil {
				return creditsLoadedMsg{err: err}
			}

			if changed {
				c.Status = credit.StatusMatured
			}
		}

		return creditsLoadedMsg{credits: credits}
	}
}

func (m CreditsModel) payoutCmd() tea.Cmd {
	c := m.selected()
	if c == nil {
		return nil
	}

	principal, _ := parseAmount(m.form.GetString("principal"))
	interest, _ := parseAmount(m.form.GetString("interest"))
	payoutType, _ := m.form.Get("type").(credit.PayoutType)
	notes := m.form.GetString("notes")
	recordedBy := m.Session.Subject

	return func() tea.Msg {
		ctx, cancel := DbCtx()
		defer cancel()

		res, err := m.creditService.RecordPayout(ctx, credit.PayoutParams{
			CreditID:   c.ID,
			Type:       payoutType,
			Principal:  principal,
			Interest:   interest,
			Notes:      notes,
			RecordedBy: recordedBy,
		})
		if err != nil {
			return creditActionMsg{err: err}
		}

		return creditActionMsg{text: fmt.Sprintf("Paid out %s on %s, remaining %s.",
			FormatAmount(res.Payout.Total()), c.Reference, FormatAmount(res.Credit.RemainingPrincipal))}
	}
}

func (m CreditsModel) toggleArchiveCmd() tea.Cmd {
	c := m.selected()
	if c == nil {
		return nil
	}

	return func() tea.Msg {
		ctx, cancel := DbCtx()
		defer cancel()

		if c.Status == credit.StatusArchived {
			if _, err := m.creditService.Restore(ctx, c.ID); err != nil {
				return creditActionMsg{err: err}
			}

			return creditActionMsg{text: fmt.Sprintf("Restored %s.", c.Reference)}
		}

		if _, err := m.creditService.Archive(ctx, c.ID); err != nil {
			return creditActionMsg{err: err}
		}

		return creditActionMsg{text: fmt.Sprintf("Archived %s.", c.Reference)}
	}
}
