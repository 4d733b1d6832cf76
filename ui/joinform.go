package ui

import (
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

// joinSubmittedMsg carries the join form's values. Validation happens in
// the Share page so failed submissions leave the form open.
type joinSubmittedMsg struct {
	code string
	name string
}

type joinCancelledMsg struct{}

const (
	fieldCode = iota
	fieldName
	fieldCount
)

// joinForm is the modal for entering a group code and display name.
type joinForm struct {
	inputs [fieldCount]textinput.Model
	focus  int
}

func newJoinForm(groupCode, name string) joinForm {
	var f joinForm

	code := textinput.New()
	code.Placeholder = "e.g. RIDGE42"
	code.CharLimit = 16
	code.Width = 24
	code.SetValue(groupCode)
	code.Focus()
	f.inputs[fieldCode] = code

	who := textinput.New()
	who.Placeholder = "Your name"
	who.CharLimit = 24
	who.Width = 24
	who.SetValue(name)
	f.inputs[fieldName] = who

	return f
}

func (f joinForm) Update(msg tea.Msg) (joinForm, tea.Cmd) {
	if key, ok := msg.(tea.KeyMsg); ok {
		switch key.String() {
		case "esc":
			return f, func() tea.Msg { return joinCancelledMsg{} }

		case "enter":
			if f.focus < fieldCount-1 {
				return f.focusField(f.focus + 1), nil
			}
			code := strings.TrimSpace(f.inputs[fieldCode].Value())
			name := strings.TrimSpace(f.inputs[fieldName].Value())
			return f, func() tea.Msg { return joinSubmittedMsg{code: code, name: name} }

		case "tab", "down":
			return f.focusField((f.focus + 1) % fieldCount), nil

		case "shift+tab", "up":
			return f.focusField((f.focus + fieldCount - 1) % fieldCount), nil
		}
	}

	var cmd tea.Cmd
	f.inputs[f.focus], cmd = f.inputs[f.focus].Update(msg)
	return f, cmd
}

func (f joinForm) focusField(i int) joinForm {
	f.inputs[f.focus].Blur()
	f.focus = i
	f.inputs[f.focus].Focus()
	return f
}

func (f joinForm) View() string {
	body := lipgloss.JoinVertical(lipgloss.Left,
		titleStyle.Render("Join a group"),
		formLabelStyle.Render("Group code"),
		f.inputs[fieldCode].View(),
		"",
		formLabelStyle.Render("Display name"),
		f.inputs[fieldName].View(),
		"",
		mutedStyle.Render("enter: next/join · esc: cancel"),
	)
	return boxStyle.Render(body)
}
