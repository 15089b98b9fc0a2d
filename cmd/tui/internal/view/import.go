package view

import (
	"context"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/filepicker"
	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/MrJamesThe3rd/lendbook/internal/auth"
	"github.com/MrJamesThe3rd/lendbook/internal/importer"
)

const importTimeout = 2 * time.Minute

type importState int

const (
	importStateFilePick importState = iota
	importStateImporting
	importStateResult
)

type ImportModel struct {
	CommonModel
	importService *importer.Service

	state      importState
	filePicker filepicker.Model
	spinner    spinner.Model

	result *importer.Result
	status string
	err    error
}

func NewImportModel(session *auth.Session, impSvc *importer.Service) ImportModel {
	fp := filepicker.New()
	fp.CurrentDirectory, _ = os.Getwd()
	fp.AllowedTypes = []string{".csv", ".txt"}
	fp.ShowHidden = false
	fp.DirAllowed = false
	fp.FileAllowed = true
	fp.SetHeight(15)

	s := spinner.New()
	s.Spinner = spinner.Dot
	s.Style = lipgloss.NewStyle().Foreground(lipgloss.Color("205"))

	return ImportModel{
		CommonModel:   CommonModel{Session: session},
		importService: impSvc,
		filePicker:    fp,
		spinner:       s,
	}
}

func (m ImportModel) Title() string { return "Import Repayments" }

func (m ImportModel) ShortHelp() string {
	if m.state == importStateResult {
		return "Esc: pick another file"
	}

	return "Esc: back | Enter: select"
}

func (m ImportModel) Init() tea.Cmd {
	return m.filePicker.Init()
}

func (m ImportModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		if msg.Type == tea.KeyEsc {
			return m.handleEsc()
		}

	case importResultMsg:
		m.state = importStateResult
		m.result = msg.result
		m.err = msg.err

		if msg.err != nil {
			m.status = fmt.Sprintf("Error: %v", msg.err)
			return m, nil
		}

		m.status = fmt.Sprintf("Applied %d repayments, rejected %d rows.", len(msg.result.Applied), len(msg.result.Rejected))

		return m, nil

	case spinner.TickMsg:
		if m.state != importStateImporting {
			return m, nil
		}

		var cmd tea.Cmd
		m.spinner, cmd = m.spinner.Update(msg)

		return m, cmd
	}

	if m.state != importStateFilePick {
		return m, nil
	}

	var cmd tea.Cmd
	m.filePicker, cmd = m.filePicker.Update(msg)

	if didSelect, path := m.filePicker.DidSelectFile(msg); didSelect {
		if !m.Can(auth.RepaymentsImport) {
			m.state = importStateResult
			m.err = fmt.Errorf("not allowed to import repayments")
			m.status = "Error: " + m.err.Error()

			return m, nil
		}

		m.state = importStateImporting
		m.status = fmt.Sprintf("Importing from %s...", path)

		return m, tea.Batch(m.spinner.Tick, m.importCmd(path))
	}

	return m, cmd
}

func (m ImportModel) handleEsc() (tea.Model, tea.Cmd) {
	switch m.state {
	case importStateResult:
		m.state = importStateFilePick
		m.result = nil
		m.err = nil
		m.status = ""

		return m, m.filePicker.Init()
	case importStateImporting:
		return m, nil
	}

	return m, Back
}

func (m ImportModel) View() string {
	switch m.state {
	case importStateFilePick:
		return lipgloss.NewStyle().Padding(1).Render(
			"Select repayments CSV (Loan, Principal, Interest, Notes):\n\n" + m.filePicker.View(),
		)
	case importStateImporting:
		return lipgloss.NewStyle().Padding(2).Render(m.spinner.View() + " " + m.status)
	case importStateResult:
		return m.viewResult()
	}

	return ""
}

func (m ImportModel) viewResult() string {
	style := lipgloss.NewStyle().Padding(2)
	if m.err != nil {
		return style.Render(errorStyle.Render(m.status) + "\n\n(Esc to go back)")
	}

	var sb strings.Builder

	sb.WriteString(successStyle.Render(m.status))
	sb.WriteString("\n\n")

	for _, a := range m.result.Applied {
		fmt.Fprintf(&sb, "  line %-4d %-16s %12s %12s  %s\n",
			a.Line, a.Loan,
			FormatAmount(a.Repayment.AmountPrincipal),
			FormatAmount(a.Repayment.AmountInterest),
			a.Status,
		)
	}

	if len(m.result.Rejected) > 0 {
		sb.WriteString("\nRejected:\n")

		for _, r := range m.result.Rejected {
			fmt.Fprintf(&sb, "  line %-4d %-16s %s\n", r.Line, r.Loan, errorStyle.Render(r.Reason))
		}
	}

	sb.WriteString("\n(Esc to go back)")

	return style.Render(sb.String())
}

// Messages

type importResultMsg struct {
	result *importer.Result
	err    error
}

func (m ImportModel) importCmd(path string) tea.Cmd {
	recordedBy := m.Session.Subject

	return func() tea.Msg {
		f, err := os.Open(path)
		if err != nil {
			return importResultMsg{err: err}
		}
		defer f.Close()

		ctx, cancel := context.WithTimeout(context.Background(), importTimeout)
		defer cancel()

		result, err := m.importService.Import(ctx, f, recordedBy)

		return importResultMsg{result: result, err: err}
	}
}
