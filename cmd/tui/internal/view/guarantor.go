package view

import (
	"fmt"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/huh"
	"github.com/charmbracelet/lipgloss"

	"github.com/MrJamesThe3rd/lendbook/internal/auth"
	"github.com/MrJamesThe3rd/lendbook/internal/guarantor"
)

// GuarantorModel answers how many guarantors a requested amount needs.
type GuarantorModel struct {
	CommonModel
	cfg guarantor.Config

	form   *huh.Form
	result string
}

func NewGuarantorModel(session *auth.Session, cfg guarantor.Config) GuarantorModel {
	m := GuarantorModel{
		CommonModel: CommonModel{Session: session},
		cfg:         cfg,
	}
	m.form = buildAmountForm()

	return m
}

func buildAmountForm() *huh.Form {
	return huh.NewForm(
		huh.NewGroup(
			huh.NewInput().
				Key("amount").
				Title("Loan amount").
				Placeholder("25000.00").
				Validate(validateAmount),
		),
	).WithWidth(40).WithShowHelp(false)
}

func (m GuarantorModel) Title() string { return "Guarantor Requirement" }

func (m GuarantorModel) ShortHelp() string { return "Enter: calculate | Esc: back" }

func (m GuarantorModel) Init() tea.Cmd {
	return m.form.Init()
}

func (m GuarantorModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	if keyMsg, ok := msg.(tea.KeyMsg); ok && keyMsg.Type == tea.KeyEsc {
		return m, Back
	}

	form, cmd := m.form.Update(msg)
	if f, ok := form.(*huh.Form); ok {
		m.form = f
	}

	if m.form.State != huh.StateCompleted {
		return m, cmd
	}

	m.result = m.describe(m.form.GetString("amount"))
	m.form = buildAmountForm()

	return m, m.form.Init()
}

func (m GuarantorModel) describe(input string) string {
	amount, err := parseAmount(input)
	if err != nil {
		return errorStyle.Render(err.Error())
	}

	if v := m.cfg.ValidateAmount(amount); !v.Valid {
		return errorStyle.Render(v.Message)
	}

	if !m.cfg.Enabled {
		return fmt.Sprintf("%s: guarantors are disabled.", FormatAmount(amount))
	}

	n := m.cfg.RequiredGuarantors(amount)

	noun := "guarantors"
	if n == 1 {
		noun = "guarantor"
	}

	return successStyle.Render(fmt.Sprintf("%s requires %d %s.", FormatAmount(amount), n, noun))
}

func (m GuarantorModel) View() string {
	var tiers string
	for _, t := range m.cfg.Tiers {
		tiers += fmt.Sprintf("  %s to %s: %d\n", FormatAmount(t.Min), FormatAmount(t.Max), t.Required)
	}

	body := fmt.Sprintf("Tiers\n%s\nLimits: %s to %s\n\n%s",
		tiers, FormatAmount(m.cfg.Limits.Min), FormatAmount(m.cfg.Limits.Max), m.form.View())

	if m.result != "" {
		body += "\n" + m.result
	}

	return lipgloss.NewStyle().Padding(2).Render(body)
}
