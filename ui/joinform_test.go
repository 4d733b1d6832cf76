package ui

import (
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func typeInto(f joinForm, s string) joinForm {
	for _, r := range s {
		f, _ = f.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{r}})
	}
	return f
}

func TestJoinFormSubmitsTrimmedValues(t *testing.T) {
	f := newJoinForm("", "")
	f = typeInto(f, "RIDGE42 ")

	f, _ = f.Update(tea.KeyMsg{Type: tea.KeyEnter}) // to the name field
	f = typeInto(f, " Casey")

	f, cmd := f.Update(tea.KeyMsg{Type: tea.KeyEnter})
	require.NotNil(t, cmd)

	msg, ok := cmd().(joinSubmittedMsg)
	require.True(t, ok)
	assert.Equal(t, "RIDGE42", msg.code)
	assert.Equal(t, "Casey", msg.name)
}

func TestJoinFormPrefillsName(t *testing.T) {
	f := newJoinForm("", "Casey")
	assert.Equal(t, "Casey", f.inputs[fieldName].Value())
}

func TestJoinFormPrefillsGroupCode(t *testing.T) {
	f := newJoinForm("RIDGE42", "")
	assert.Equal(t, "RIDGE42", f.inputs[fieldCode].Value())
}

func TestJoinFormEscapeCancels(t *testing.T) {
	f := newJoinForm("", "")
	_, cmd := f.Update(tea.KeyMsg{Type: tea.KeyEsc})
	require.NotNil(t, cmd)

	_, ok := cmd().(joinCancelledMsg)
	assert.True(t, ok)
}

func TestJoinFormTabMovesFocus(t *testing.T) {
	f := newJoinForm("", "")
	require.Equal(t, fieldCode, f.focus)

	f, _ = f.Update(tea.KeyMsg{Type: tea.KeyTab})
	assert.Equal(t, fieldName, f.focus)

	f, _ = f.Update(tea.KeyMsg{Type: tea.KeyShiftTab})
	assert.Equal(t, fieldCode, f.focus)
}

func TestJoinFormView(t *testing.T) {
	f := newJoinForm("", "")
	view := f.View()
	assert.Contains(t, view, "Join a group")
	assert.Contains(t, view, "Group code")
	assert.Contains(t, view, "Display name")
}
