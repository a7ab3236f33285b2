package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

// Credentials is what the login/signup form collects.
type Credentials struct {
	FullName string
	Email    string
	Password string
}

type loginFormModel struct {
	signup   bool
	inputs   []textinput.Model
	focused  int
	result   *Credentials
	err      error
	canceled bool
}

func newLoginForm(signup bool) loginFormModel {
	m := loginFormModel{signup: signup}

	const fieldWidth = 36

	if signup {
		name := textinput.New()
		name.Placeholder = "Full name"
		name.CharLimit = 100
		name.Width = fieldWidth
		name.Prompt = "│ "
		m.inputs = append(m.inputs, name)
	}

	email := textinput.New()
	email.Placeholder = "Email"
	email.CharLimit = 100
	email.Width = fieldWidth
	email.Prompt = "│ "
	m.inputs = append(m.inputs, email)

	password := textinput.New()
	password.Placeholder = "Password"
	password.CharLimit = 100
	password.Width = fieldWidth
	password.Prompt = "│ "
	password.EchoMode = textinput.EchoPassword
	password.EchoCharacter = '•'
	m.inputs = append(m.inputs, password)

	m.inputs[0].Focus()
	return m
}

func (m loginFormModel) Init() tea.Cmd {
	return textinput.Blink
}

func (m loginFormModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "ctrl+c", "esc":
			m.canceled = true
			return m, tea.Quit

		case "enter":
			// Enter on any field but the last advances; on the last, submits.
			if m.focused < len(m.inputs)-1 {
				return m.focusField(m.focused + 1)
			}
			creds := m.collect()
			if creds.Email == "" || creds.Password == "" || (m.signup && creds.FullName == "") {
				m.err = fmt.Errorf("all fields are required")
				return m, nil
			}
			m.result = &creds
			return m, tea.Quit

		case "tab", "down":
			return m.focusField((m.focused + 1) % len(m.inputs))

		case "shift+tab", "up":
			return m.focusField((m.focused + len(m.inputs) - 1) % len(m.inputs))
		}
	}

	cmds := make([]tea.Cmd, len(m.inputs))
	for i := range m.inputs {
		m.inputs[i], cmds[i] = m.inputs[i].Update(msg)
	}
	return m, tea.Batch(cmds...)
}

func (m loginFormModel) focusField(idx int) (tea.Model, tea.Cmd) {
	m.focused = idx
	var cmd tea.Cmd
	for i := range m.inputs {
		if i == idx {
			cmd = m.inputs[i].Focus()
		} else {
			m.inputs[i].Blur()
		}
	}
	return m, cmd
}

func (m loginFormModel) collect() Credentials {
	c := Credentials{}
	i := 0
	if m.signup {
		c.FullName = m.inputs[i].Value()
		i++
	}
	c.Email = m.inputs[i].Value()
	c.Password = m.inputs[i+1].Value()
	return c
}

func (m loginFormModel) View() string {
	if m.canceled || m.result != nil {
		return ""
	}

	outerStyle := lipgloss.NewStyle().Padding(2, 4)

	var b strings.Builder
	if m.signup {
		b.WriteString(StyleHeader.Render("Sign Up"))
	} else {
		b.WriteString(StyleHeader.Render("Login"))
	}
	b.WriteString("\n\n")

	if m.err != nil {
		b.WriteString(StyleError.Render(m.err.Error()))
		b.WriteString("\n\n")
	}

	labels := []string{"Email", "Password"}
	if m.signup {
		labels = []string{"Name", "Email", "Password"}
	}
	labelStyle := lipgloss.NewStyle().
		Foreground(ColorGray).
		Width(10).
		Align(lipgloss.Right).
		PaddingRight(1)
	activeStyle := labelStyle.
		Foreground(ColorYellow).
		Bold(true)

	for i, label := range labels {
		if i == m.focused {
			b.WriteString(activeStyle.Render("› " + label))
		} else {
			b.WriteString(labelStyle.Render(label))
		}
		b.WriteString(m.inputs[i].View())
		b.WriteString("\n\n")
	}

	b.WriteString(RenderFooterBar([]ShortcutEntry{
		{Key: "", Label: "enter next/submit"},
		{Key: "", Label: "esc cancel"},
	}, ""))
	b.WriteString("\n")

	innerPadding := lipgloss.NewStyle().Padding(0, 2, 0, 1)
	return outerStyle.Render(StyleBorder.Render(innerPadding.Render(b.String())))
}

// RunLoginForm launches the credentials form. signup adds the name
// field. Returns nil without error when the user cancels.
func RunLoginForm(signup bool) (*Credentials, error) {
	m := newLoginForm(signup)
	p := tea.NewProgram(m, tea.WithAltScreen())

	finalModel, err := p.Run()
	if err != nil {
		return nil, fmt.Errorf("running form: %w", err)
	}
	fm, ok := finalModel.(loginFormModel)
	if !ok {
		return nil, fmt.Errorf("unexpected model type")
	}
	if fm.canceled {
		return nil, nil
	}
	return fm.result, nil
}
