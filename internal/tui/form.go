// Copyright (c) 2026 Roster Team
// Roster - employee directory
// This source code is licensed under the MIT license found in the LICENSE file.

package tui

import (
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/toeirei/roster/internal/i18n"
)

// formModel is a stack of single-line inputs. Enter on the last field
// submits; esc cancels. The values are handed back untrimmed so the store
// applies its own trimming rules.
type formModel struct {
	inputs     []textinput.Model
	focusIndex int
}

// submitMsg carries the field values of a completed form.
type submitMsg struct {
	values []string
}

// cancelMsg signals the form was abandoned.
type cancelMsg struct{}

func newFormModel(prompts ...string) formModel {
	m := formModel{inputs: make([]textinput.Model, len(prompts))}
	width := 0
	for _, p := range prompts {
		width = max(width, len(p))
	}
	for i, p := range prompts {
		t := textinput.New()
		t.Cursor.Style = focusedStyle
		t.Width = 40
		t.Prompt = p + strings.Repeat(" ", width-len(p)+1)
		m.inputs[i] = t
	}
	if len(m.inputs) > 0 {
		m.inputs[0].Focus()
		m.inputs[0].PromptStyle = focusedStyle
	}
	return m
}

func (m formModel) Init() tea.Cmd {
	return textinput.Blink
}

func (m formModel) Update(msg tea.Msg) (formModel, tea.Cmd) {
	if key, ok := msg.(tea.KeyMsg); ok {
		switch key.String() {
		case "esc":
			return m, func() tea.Msg { return cancelMsg{} }
		case "enter":
			if m.focusIndex == len(m.inputs)-1 {
				values := make([]string, len(m.inputs))
				for i, in := range m.inputs {
					values[i] = in.Value()
				}
				return m, func() tea.Msg { return submitMsg{values: values} }
			}
			return m.focus(m.focusIndex + 1)
		case "tab", "down":
			return m.focus((m.focusIndex + 1) % len(m.inputs))
		case "shift+tab", "up":
			return m.focus((m.focusIndex - 1 + len(m.inputs)) % len(m.inputs))
		}
	}

	var cmd tea.Cmd
	m.inputs[m.focusIndex], cmd = m.inputs[m.focusIndex].Update(msg)
	return m, cmd
}

func (m formModel) focus(i int) (formModel, tea.Cmd) {
	m.focusIndex = i
	var cmd tea.Cmd
	for j := range m.inputs {
		if j == i {
			cmd = m.inputs[j].Focus()
			m.inputs[j].PromptStyle = focusedStyle
			continue
		}
		m.inputs[j].Blur()
		m.inputs[j].PromptStyle = blurredStyle
	}
	return m, cmd
}

func (m formModel) View() string {
	var b strings.Builder
	for _, in := range m.inputs {
		b.WriteString(in.View())
		b.WriteString("\n")
	}
	b.WriteString("\n")
	b.WriteString(helpStyle.Render(i18n.T("tui.form_help")))
	return b.String()
}
