package view

import (
	"fmt"

	"github.com/charmbracelet/bubbles/table"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/huh"
	"github.com/charmbracelet/lipgloss"

	"github.com/MrJamesThe3rd/lendbook/internal/auth"
	"github.com/MrJamesThe3rd/lendbook/internal/loan"
	"github.com/MrJamesThe3rd/lendbook/internal/statement"
)

const statementDir = "./statements"

type loansState int

const (
	loansStateBrowse loansState = iota
	loansStateRepay
	loansStateStatement
)

var loanStatusFilters = []*loan.Status{
	nil,
	new(loan.StatusPerforming),
	new(loan.StatusNonPerforming),
	new(loan.StatusOverdue),
	new(loan.StatusPreliquidated),
	new(loan.StatusArchived),
}

type LoansModel struct {
	CommonModel
	loanService      *loan.Service
	statementService *statement.Service

	state loansState
	table table.Model
	loans []*loan.Loan
	form  *huh.Form
	doc   viewport.Model

	statusFilterIdx int
	filter          loan.ListFilter

	loading bool
	err     error
	status  string
}

func NewLoansModel(session *auth.Session, loanSvc *loan.Service, stmtSvc *statement.Service) LoansModel {
	columns := []table.Column{
		{Title: "Reference", Width: 16},
		{Title: "Status", Width: 15},
		{Title: "Principal", Width: 14},
		{Title: "Repaid", Width: 14},
		{Title: "Interest Paid", Width: 14},
		{Title: "Rate %", Width: 7},
		{Title: "Start", Width: 12},
		{Title: "End", Width: 12},
	}

	return LoansModel{
		CommonModel:      CommonModel{Session: session},
		loanService:      loanSvc,
		statementService: stmtSvc,
		table:            newTable(columns),
		doc:              viewport.New(80, 20),
		loading:          true,
	}
}

func (m LoansModel) Title() string { return "Loans" }

func (m LoansModel) ShortHelp() string {
	switch m.state {
	case loansStateRepay:
		return "Navigate form | Esc: cancel"
	case loansStateStatement:
		return "↑/↓: scroll | w: write to file | Esc: close"
	}

	return "Esc: back | p: repayment | a: archive/restore | s: statement | f: status filter | r: refresh"
}

func (m LoansModel) Init() tea.Cmd {
	return m.loadCmd()
}

func (m LoansModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case loansLoadedMsg:
		m.loading = false
		if msg.err != nil {
			m.err = msg.err
			return m, nil
		}

		m.err = nil
		m.loans = msg.loans
		m.refreshTable()

		return m, nil

	case loanActionMsg:
		m.status = msg.text
		if msg.err != nil {
			m.status = errorStyle.Render(fmt.Sprintf("Error: %v", msg.err))
		}

		m.state = loansStateBrowse
		m.form = nil
		m.table.Focus()

		return m, m.loadCmd()

	case statementMsg:
		if msg.err != nil {
			m.status = errorStyle.Render(fmt.Sprintf("Error: %v", msg.err))
			return m, nil
		}

		m.doc.SetContent(msg.text)
		m.doc.GotoTop()
		m.state = loansStateStatement
		m.table.Blur()

		return m, nil

	case tea.WindowSizeMsg:
		m.Width, m.Height = msg.Width, msg.Height
		m.table.SetHeight(msg.Height - 10)
		m.doc.Width = msg.Width - 6
		m.doc.Height = msg.Height - 8

		return m, nil
	}

	switch m.state {
	case loansStateRepay:
		return m.updateRepay(msg)
	case loansStateStatement:
		return m.updateStatement(msg)
	}

	return m.updateBrowse(msg)
}

func (m LoansModel) selected() *loan.Loan {
	idx := m.table.Cursor()
	if idx < 0 || idx >= len(m.loans) {
		return nil
	}

	return m.loans[idx]
}

func (m LoansModel) updateBrowse(msg tea.Msg) (tea.Model, tea.Cmd) {
	if keyMsg, ok := msg.(tea.KeyMsg); ok {
		switch keyMsg.String() {
		case "esc":
			return m, Back
		case "r":
			m.loading = true
			return m, m.loadCmd()
		case "f":
			m.statusFilterIdx = (m.statusFilterIdx + 1) % len(loanStatusFilters)
			m.filter.Status = loanStatusFilters[m.statusFilterIdx]
			m.filter.IncludeArchived = m.filter.Status != nil && *m.filter.Status == loan.StatusArchived

			return m, m.loadCmd()
		case "p":
			if !m.Can(auth.RepaymentsRecord) {
				m.status = errorStyle.Render("You are not allowed to record repayments.")
				return m, nil
			}

			return m.enterRepayMode()
		case "a":
			if !m.Can(auth.LoansManage) {
				m.status = errorStyle.Render("You are not allowed to archive loans.")
				return m, nil
			}

			return m, m.toggleArchiveCmd()
		case "s":
			return m, m.statementCmd()
		}
	}

	var cmd tea.Cmd
	m.table, cmd = m.table.Update(msg)

	return m, cmd
}

func (m LoansModel) enterRepayMode() (tea.Model, tea.Cmd) {
	l := m.selected()
	if l == nil {
		return m, nil
	}

	m.form = huh.NewForm(
		huh.NewGroup(
			huh.NewInput().
				Key("principal").
				Title("Principal").
				Placeholder("0.00").
				Validate(validateAmount),

			huh.NewInput().
				Key("interest").
				Title("Interest").
				Placeholder("0.00").
				Validate(validateAmount),

			huh.NewInput().
				Key("notes").
				Title("Notes"),

			huh.NewConfirm().
				Key("confirm").
				Title("Record repayment?"),
		),
	).WithWidth(45).WithShowHelp(false)

	m.state = loansStateRepay
	m.table.Blur()

	return m, m.form.Init()
}

func (m LoansModel) updateRepay(msg tea.Msg) (tea.Model, tea.Cmd) {
	if keyMsg, ok := msg.(tea.KeyMsg); ok && keyMsg.Type == tea.KeyEsc {
		m.state = loansStateBrowse
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
		m.state = loansStateBrowse
		m.form = nil
		m.table.Focus()

		return m, nil
	}

	return m, m.repayCmd()
}

func (m LoansModel) updateStatement(msg tea.Msg) (tea.Model, tea.Cmd) {
	if keyMsg, ok := msg.(tea.KeyMsg); ok {
		switch keyMsg.String() {
		case "esc":
			m.state = loansStateBrowse
			m.table.Focus()

			return m, nil
		case "w":
			return m, m.saveStatementCmd()
		}
	}

	var cmd tea.Cmd
	m.doc, cmd = m.doc.Update(msg)

	return m, cmd
}

func (m LoansModel) View() string {
	if m.loading {
		return lipgloss.NewStyle().Padding(2).Render("Loading loans...")
	}

	if m.err != nil {
		return lipgloss.NewStyle().Padding(2).Render(fmt.Sprintf("Error: %v", m.err))
	}

	if m.state == loansStateStatement {
		content := lipgloss.NewStyle().
			BorderStyle(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color("63")).
			Padding(0, 1).
			Render(m.doc.View())

		if m.status != "" {
			content = faintStyle.Render(m.status) + "\n" + content
		}

		return lipgloss.NewStyle().Padding(1).Render(content)
	}

	label := "All"
	if s := loanStatusFilters[m.statusFilterIdx]; s != nil {
		label = string(*s)
	}

	header := fmt.Sprintf("Filter: [f] Status: %s", activeStyle(label))

	content := lipgloss.JoinVertical(lipgloss.Left,
		lipgloss.NewStyle().PaddingBottom(1).Render(header),
		tableBox(m.table),
	)

	if m.state == loansStateRepay && m.form != nil {
		if l := m.selected(); l != nil {
			panel := formPanel(fmt.Sprintf("Repayment for %s\n\nPrincipal outstanding: %s\n\n%s",
				l.Reference, FormatAmount(l.Principal.Sub(l.AmountRepaid)), m.form.View()))

			content = lipgloss.JoinHorizontal(lipgloss.Top, content, panel)
		}
	}

	if m.status != "" {
		content = faintStyle.Render(m.status) + "\n" + content
	}

	return lipgloss.NewStyle().Padding(1).Render(content)
}

func (m *LoansModel) refreshTable() {
	rows := make([]table.Row, 0, len(m.loans))
	for _, l := range m.loans {
		rows = append(rows, table.Row{
			l.Reference,
			string(l.Status),
			FormatAmount(l.Principal),
			FormatAmount(l.AmountRepaid),
			FormatAmount(l.InterestRepaid),
			l.InterestRate.StringFixed(2),
			FormatDate(l.StartDate),
			FormatDate(l.EndDate),
		})
	}

	m.table.SetRows(rows)
}

// Messages

type loansLoadedMsg struct {
	loans []*loan.Loan
	err   error
}

type loanActionMsg struct {
	text string
	err  error
}

type statementMsg struct {
	text string
	err  error
}

func (m LoansModel) loadCmd() tea.Cmd {
	filter := m.filter

	return func() tea.Msg {
		ctx, cancel := DbCtx()
		defer cancel()

		loans, err := m.loanService.List(ctx, filter)

		return loansLoadedMsg{loans: loans, err: err}
	}
}

func (m LoansModel) repayCmd() tea.Cmd {
	l := m.selected()
	if l == nil {
		return nil
	}

	principal, _ := parseAmount(m.form.GetString("principal"))
	interest, _ := parseAmount(m.form.GetString("interest"))
	notes := m.form.GetString("notes")
	recordedBy := m.Session.Subject

	return func() tea.Msg {
		ctx, cancel := DbCtx()
		defer cancel()

		res, err := m.loanService.RecordRepayment(ctx, loan.RepaymentParams{
			LoanID:     l.ID,
			Principal:  principal,
			Interest:   interest,
			Notes:      notes,
			RecordedBy: recordedBy,
		})
		if err != nil {
			return loanActionMsg{err: err}
		}

		return loanActionMsg{text: fmt.Sprintf("Recorded %s repayment on %s, loan is now %s.",
			res.Repayment.PaymentType, l.Reference, res.Loan.Status)}
	}
}

func (m LoansModel) toggleArchiveCmd() tea.Cmd {
	l := m.selected()
	if l == nil {
		return nil
	}

	return func() tea.Msg {
		ctx, cancel := DbCtx()
		defer cancel()

		if l.Status == loan.StatusArchived {
			restored, err := m.loanService.Restore(ctx, l.ID)
			if err != nil {
				return loanActionMsg{err: err}
			}

			return loanActionMsg{text: fmt.Sprintf("Restored %s as %s.", l.Reference, restored.Status)}
		}

		if _, err := m.loanService.Archive(ctx, l.ID); err != nil {
			return loanActionMsg{err: err}
		}

		return loanActionMsg{text: fmt.Sprintf("Archived %s.", l.Reference)}
	}
}

func (m LoansModel) statementCmd() tea.Cmd {
	l := m.selected()
	if l == nil {
		return nil
	}

	return func() tea.Msg {
		ctx, cancel := DbCtx()
		defer cancel()

		st, err := m.statementService.Build(ctx, l.ID)
		if err != nil {
			return statementMsg{err: err}
		}

		return statementMsg{text: statement.Render(st)}
	}
}

func (m LoansModel) saveStatementCmd() tea.Cmd {
	l := m.selected()
	if l == nil {
		return nil
	}

	return func() tea.Msg {
		ctx, cancel := DbCtx()
		defer cancel()

		path, err := m.statementService.Save(ctx, l.ID, statementDir)
		if err != nil {
			return loanActionMsg{err: err}
		}

		return loanActionMsg{text: successStyle.Render("Statement written to " + path)}
	}
}
