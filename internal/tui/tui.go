// Copyright (c) 2026 Roster Team
// Roster - employee directory
// This source code is licensed under the MIT license found in the LICENSE file.

// package tui provides the full-screen terminal interface for Roster. The
// top-level model routes between the menu, the add and lookup forms and the
// listing view, all backed by the same directory.Store the text menu uses.
package tui // import "github.com/toeirei/roster/internal/tui"

import (
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/atotto/clipboard"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/toeirei/roster/internal/directory"
	"github.com/toeirei/roster/internal/i18n"
	"github.com/toeirei/roster/internal/logging"
	"github.com/toeirei/roster/internal/menu"
)

// viewState represents which part of the UI is currently active.
type viewState int

const (
	menuView viewState = iota
	addView
	lookupView
	listingView
)

// Model is the top-level bubbletea model.
type Model struct {
	store *directory.Store
	opts  menu.Options

	state   viewState
	cursor  int
	choices []string

	form    formModel
	listing []string

	status   string
	err      error
	copy     func(string) error
	width    int
	quitting bool
}

// New returns the initial model showing the menu.
func New(store *directory.Store, opts menu.Options) Model {
	return Model{
		store: store,
		opts:  opts,
		state: menuView,
		choices: []string{
			i18n.T("menu.add"),
			i18n.T("menu.department"),
			i18n.T("menu.all"),
			i18n.T("menu.exit"),
		},
		copy: clipboard.WriteAll,
	}
}

// Init is the first function that will be called by the Bubble Tea runtime.
func (m Model) Init() tea.Cmd {
	return nil
}

// Update routes messages to the active view.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		if msg.String() == "ctrl+c" {
			m.quitting = true
			return m, tea.Quit
		}
	case tea.WindowSizeMsg:
		m.width = msg.Width
		return m, nil
	case cancelMsg:
		m.state = menuView
		return m, nil
	case submitMsg:
		return m.submit(msg.values)
	}

	switch m.state {
	case addView, lookupView:
		var cmd tea.Cmd
		m.form, cmd = m.form.Update(msg)
		return m, cmd
	case listingView:
		return m.updateListing(msg)
	default:
		return m.updateMenu(msg)
	}
}

func (m Model) updateMenu(msg tea.Msg) (tea.Model, tea.Cmd) {
	key, ok := msg.(tea.KeyMsg)
	if !ok {
		return m, nil
	}
	switch key.String() {
	case "q", "esc":
		m.quitting = true
		return m, tea.Quit
	case "up", "k":
		if m.cursor > 0 {
			m.cursor--
		}
	case "down", "j":
		if m.cursor < len(m.choices)-1 {
			m.cursor++
		}
	case "1", "2", "3", "4":
		m.cursor = int(key.String()[0] - '1')
		return m.choose(menu.Selection(m.cursor + 1))
	case "enter":
		return m.choose(menu.Selection(m.cursor + 1))
	}
	return m, nil
}

// choose performs the menu action for sel.
func (m Model) choose(sel menu.Selection) (tea.Model, tea.Cmd) {
	m.status, m.err = "", nil
	switch sel {
	case menu.SelectAdd:
		m.state = addView
		m.form = newFormModel(i18n.T("prompt.employee_name"), i18n.T("prompt.department_name"))
		return m, m.form.Init()
	case menu.SelectDepartment:
		m.state = lookupView
		m.form = newFormModel(i18n.T("prompt.inspect_department"))
		return m, m.form.Init()
	case menu.SelectAll:
		m.listing = m.renderAll()
		m.state = listingView
	case menu.SelectExit:
		m.quitting = true
		return m, tea.Quit
	}
	return m, nil
}

func (m Model) submit(values []string) (tea.Model, tea.Cmd) {
	switch m.state {
	case addView:
		name, dept := values[0], values[1]
		m.store.Add(dept, name)
		logging.Debugf("tui: added %q to %q", strings.TrimSpace(name), strings.TrimSpace(dept))
		m.status = i18n.T("tui.added", strings.TrimSpace(name), strings.TrimSpace(dept))
		m.state = menuView
	case lookupView:
		names, err := m.store.Department(values[0])
		if errors.Is(err, directory.ErrDepartmentNotFound) {
			m.err = errors.New(i18n.T("listing.not_found"))
			m.state = menuView
			return m, nil
		}
		d := directory.Department{Name: strings.TrimSpace(values[0]), Employees: names}
		if m.opts.Sorted {
			d = directory.Sorted([]directory.Department{d}, m.opts.Language)[0]
		}
		m.listing = menu.FormatDepartment(d)
		m.state = listingView
	}
	return m, nil
}

func (m Model) renderAll() []string {
	deps := m.store.All()
	if len(deps) == 0 {
		return []string{i18n.T("listing.empty")}
	}
	if m.opts.Sorted {
		deps = directory.Sorted(deps, m.opts.Language)
	}
	var lines []string
	for i, d := range deps {
		if i > 0 {
			lines = append(lines, "")
		}
		lines = append(lines, menu.FormatDepartment(d)...)
	}
	return lines
}

func (m Model) updateListing(msg tea.Msg) (tea.Model, tea.Cmd) {
	key, ok := msg.(tea.KeyMsg)
	if !ok {
		return m, nil
	}
	switch key.String() {
	case "c":
		if err := m.copy(strings.Join(m.listing, "\n")); err != nil {
			m.err = errors.New(i18n.T("tui.copy_failed", err))
			m.status = ""
		} else {
			m.status, m.err = i18n.T("tui.copied"), nil
		}
	case "esc", "enter", "q", "backspace":
		m.state = menuView
	}
	return m, nil
}

// View renders the active view.
func (m Model) View() string {
	if m.quitting {
		return ""
	}

	var b strings.Builder
	b.WriteString(titleStyle.Render(i18n.T("tui.title")))
	b.WriteString("\n\n")

	switch m.state {
	case addView, lookupView:
		b.WriteString(m.form.View())
	case listingView:
		b.WriteString(listingStyle.Render(strings.Join(m.listing, "\n")))
		b.WriteString("\n\n")
		b.WriteString(m.footer(i18n.T("tui.listing_help")))
	default:
		for i, choice := range m.choices {
			if i == m.cursor {
				b.WriteString(selectedItemStyle.Render("> " + choice))
			} else {
				b.WriteString(itemStyle.Render(choice))
			}
			b.WriteString("\n")
		}
		b.WriteString("\n")
		b.WriteString(m.footer(i18n.T("tui.menu_help")))
	}

	if m.err != nil {
		b.WriteString("\n\n")
		b.WriteString(errorStyle.Render(m.err.Error()))
	} else if m.status != "" {
		b.WriteString("\n\n")
		b.WriteString(successStyle.Render(m.status))
	}

	return docStyle.Render(b.String())
}

// footer renders help on the left and directory counts on the right.
func (m Model) footer(help string) string {
	deps, emps := m.store.Len()
	// docStyle has a two column margin on each side
	width := m.width - 4
	return helpStyle.Render(alignFooter(help, i18n.T("tui.stats", deps, emps), width))
}

// Run starts the TUI on the current terminal and blocks until the user
// quits. Logging is silenced while the TUI owns the screen.
func Run(store *directory.Store, opts menu.Options) error {
	logging.SetOutput(io.Discard)
	defer logging.SetOutput(os.Stderr)

	if _, err := tea.NewProgram(New(store, opts), tea.WithAltScreen()).Run(); err != nil {
		return fmt.Errorf("tui: %w", err)
	}
	return nil
}
