// Copyright (c) 2026 Roster Team
// Roster - employee directory
// This source code is licensed under the MIT license found in the LICENSE file.

package tui

import (
	"errors"
	"reflect"
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"golang.org/x/text/language"

	"github.com/toeirei/roster/internal/directory"
	"github.com/toeirei/roster/internal/i18n"
	"github.com/toeirei/roster/internal/menu"
)

func keyMsg(s string) tea.KeyMsg {
	switch s {
	case "enter":
		return tea.KeyMsg{Type: tea.KeyEnter}
	case "esc":
		return tea.KeyMsg{Type: tea.KeyEsc}
	case "tab":
		return tea.KeyMsg{Type: tea.KeyTab}
	case "up":
		return tea.KeyMsg{Type: tea.KeyUp}
	case "down":
		return tea.KeyMsg{Type: tea.KeyDown}
	case "ctrl+c":
		return tea.KeyMsg{Type: tea.KeyCtrlC}
	}
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
}

// press sends one key and returns the updated model. Commands are not run
// because textinput cursor commands block on timers.
func press(t *testing.T, m Model, key string) (Model, tea.Cmd) {
	t.Helper()
	next, cmd := m.Update(keyMsg(key))
	nm, ok := next.(Model)
	if !ok {
		t.Fatalf("Update returned %T, want Model", next)
	}
	return nm, cmd
}

// typeText feeds s to the focused input one rune at a time.
func typeText(t *testing.T, m Model, s string) Model {
	t.Helper()
	for _, r := range s {
		m, _ = press(t, m, string(r))
	}
	return m
}

// finish presses key and feeds the form's submit/cancel message back in.
func finish(t *testing.T, m Model, key string) Model {
	t.Helper()
	m, cmd := press(t, m, key)
	if cmd == nil {
		t.Fatalf("expected a command from %q", key)
	}
	msg := cmd()
	switch msg.(type) {
	case submitMsg, cancelMsg:
	default:
		t.Fatalf("expected submit or cancel message, got %T", msg)
	}
	next, _ := m.Update(msg)
	return next.(Model)
}

func isQuit(cmd tea.Cmd) bool {
	if cmd == nil {
		return false
	}
	_, ok := cmd().(tea.QuitMsg)
	return ok
}

func addEmployee(t *testing.T, m Model, name, dept string) Model {
	t.Helper()
	m, _ = press(t, m, "1")
	if m.state != addView {
		t.Fatalf("expected add view, got %v", m.state)
	}
	m = typeText(t, m, name)
	m, _ = press(t, m, "tab")
	m = typeText(t, m, dept)
	return finish(t, m, "enter")
}

func TestTUI_AddAndListAll(t *testing.T) {
	i18n.Init("en")
	store := directory.New()
	m := New(store, menu.Options{})

	m = addEmployee(t, m, "Amir", "Sales")
	m = addEmployee(t, m, "Sally", "Engineering")
	m = addEmployee(t, m, "Bob", "Sales")

	if m.state != menuView {
		t.Fatalf("expected menu after add, got %v", m.state)
	}
	if !strings.Contains(m.status, "Added Bob to Sales.") {
		t.Fatalf("unexpected status %q", m.status)
	}

	m, _ = press(t, m, "3")
	if m.state != listingView {
		t.Fatalf("expected listing view, got %v", m.state)
	}
	want := []string{"Sales Employees:", "1. Amir.", "2. Bob.", "", "Engineering Employees:", "1. Sally."}
	if !reflect.DeepEqual(m.listing, want) {
		t.Fatalf("listing = %q, want %q", m.listing, want)
	}
	if !strings.Contains(m.View(), "2. Bob.") {
		t.Fatalf("view does not show listing:\n%s", m.View())
	}

	m, _ = press(t, m, "esc")
	if m.state != menuView {
		t.Fatalf("expected esc to return to menu, got %v", m.state)
	}
}

func TestTUI_LookupFoundAndMissing(t *testing.T) {
	i18n.Init("en")
	store := directory.New()
	store.Add("Sales", "zoe")
	store.Add("Sales", "Amir")
	m := New(store, menu.Options{Sorted: true, Language: language.English})

	m, _ = press(t, m, "2")
	if m.state != lookupView {
		t.Fatalf("expected lookup view, got %v", m.state)
	}
	m = typeText(t, m, "Sales")
	m = finish(t, m, "enter")
	want := []string{"Sales Employees:", "1. Amir.", "2. zoe."}
	if m.state != listingView || !reflect.DeepEqual(m.listing, want) {
		t.Fatalf("lookup listing = %q (state %v), want %q", m.listing, m.state, want)
	}

	m, _ = press(t, m, "q")
	m, _ = press(t, m, "2")
	m = typeText(t, m, "Marketing")
	m = finish(t, m, "enter")
	if m.state != menuView {
		t.Fatalf("expected menu after failed lookup, got %v", m.state)
	}
	if m.err == nil || m.err.Error() != "Error: department name doesn't exist." {
		t.Fatalf("unexpected error %v", m.err)
	}
	if !strings.Contains(m.View(), "department name doesn't exist") {
		t.Fatalf("view does not show error")
	}
}

func TestTUI_CancelFormLeavesStoreUntouched(t *testing.T) {
	i18n.Init("en")
	store := directory.New()
	m := New(store, menu.Options{})

	m, _ = press(t, m, "1")
	m = typeText(t, m, "Amir")
	m = finish(t, m, "esc")

	if m.state != menuView {
		t.Fatalf("expected menu after cancel, got %v", m.state)
	}
	if d, _ := store.Len(); d != 0 {
		t.Fatalf("cancelled add mutated store")
	}
}

func TestTUI_EmptyListing(t *testing.T) {
	i18n.Init("en")
	m := New(directory.New(), menu.Options{})
	m, _ = press(t, m, "3")
	if !reflect.DeepEqual(m.listing, []string{"The directory is empty."}) {
		t.Fatalf("unexpected empty listing %q", m.listing)
	}
}

func TestTUI_CursorNavigation(t *testing.T) {
	i18n.Init("en")
	m := New(directory.New(), menu.Options{})

	m, _ = press(t, m, "up")
	if m.cursor != 0 {
		t.Fatalf("cursor moved above first item")
	}
	for i := 0; i < 10; i++ {
		m, _ = press(t, m, "down")
	}
	if m.cursor != len(m.choices)-1 {
		t.Fatalf("cursor = %d, want last item", m.cursor)
	}
	m, _ = press(t, m, "k")
	if m.cursor != 2 {
		t.Fatalf("cursor = %d after k, want 2", m.cursor)
	}
	m, _ = press(t, m, "enter")
	if m.state != listingView {
		t.Fatalf("enter on item 3 should list all, got %v", m.state)
	}
}

func TestTUI_Quit(t *testing.T) {
	i18n.Init("en")
	for _, key := range []string{"4", "q", "ctrl+c"} {
		m := New(directory.New(), menu.Options{})
		m, cmd := press(t, m, key)
		if !isQuit(cmd) {
			t.Fatalf("%q: expected quit command", key)
		}
		if m.View() != "" {
			t.Fatalf("%q: expected empty view after quit", key)
		}
	}
}

func TestTUI_CopyListing(t *testing.T) {
	i18n.Init("en")
	store := directory.New()
	store.Add("Sales", "Amir")
	m := New(store, menu.Options{})

	var copied string
	m.copy = func(s string) error { copied = s; return nil }
	m, _ = press(t, m, "3")
	m, _ = press(t, m, "c")
	if copied != "Sales Employees:\n1. Amir." {
		t.Fatalf("unexpected clipboard text %q", copied)
	}
	if m.status != "Listing copied to clipboard." {
		t.Fatalf("unexpected status %q", m.status)
	}

	m.copy = func(string) error { return errors.New("no clipboard") }
	m, _ = press(t, m, "c")
	if m.err == nil || !strings.Contains(m.err.Error(), "no clipboard") {
		t.Fatalf("expected copy error, got %v", m.err)
	}
	if m.state != listingView {
		t.Fatalf("copy should stay in listing view")
	}
}

func TestAlignFooter(t *testing.T) {
	if got := alignFooter("help", "2 departments", 20); got != "help   2 departments" {
		t.Fatalf("alignFooter = %q", got)
	}
	if got := alignFooter("help", "stats", 3); got != "help stats" {
		t.Fatalf("narrow alignFooter = %q", got)
	}
}

func TestTUI_FooterShowsCounts(t *testing.T) {
	i18n.Init("en")
	store := directory.New()
	store.Add("Sales", "Amir")
	store.Add("Sales", "Bob")
	m := New(store, menu.Options{})

	next, _ := m.Update(tea.WindowSizeMsg{Width: 100, Height: 30})
	m = next.(Model)
	if m.width != 100 {
		t.Fatalf("width not recorded")
	}
	if !strings.Contains(m.View(), i18n.T("tui.stats", 1, 2)) {
		t.Fatalf("view missing counts:\n%s", m.View())
	}
}

func TestTUI_LongNamesStoredInFull(t *testing.T) {
	i18n.Init("en")
	store := directory.New()
	m := New(store, menu.Options{})

	name := strings.Repeat("Bartholomew-", 20)
	dept := strings.Repeat("Research ", 20) + "Lab"
	addEmployee(t, m, name, dept)

	got, err := store.Department(dept)
	if err != nil {
		t.Fatalf("department %q not stored: %v", dept, err)
	}
	if !reflect.DeepEqual(got, []string{name}) {
		t.Fatalf("stored %q, want %q", got, []string{name})
	}
}
