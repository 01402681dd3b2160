// Copyright (c) 2026 Roster Team
// Roster - employee directory
// This source code is licensed under the MIT license found in the LICENSE file.

// Package menu implements the numbered text menu over a directory.Store.
// It talks to the user only through LineReader and LineWriter.
package menu

import (
	"context"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"

	"golang.org/x/text/language"

	"github.com/toeirei/roster/internal/directory"
	"github.com/toeirei/roster/internal/i18n"
	"github.com/toeirei/roster/internal/logging"
)

// Selection is a parsed menu choice.
type Selection int

const (
	// noSelection is the initial value; it is not SelectExit so the loop
	// body runs at least once.
	noSelection Selection = 0

	SelectAdd        Selection = 1
	SelectDepartment Selection = 2
	SelectAll        Selection = 3
	SelectExit       Selection = 4
)

// Options tune presentation only; they never change what is stored.
type Options struct {
	// Sorted lists departments and names by collation order of Language
	// instead of insertion order.
	Sorted   bool
	Language language.Tag
}

// Loop is the menu state machine. It owns nothing but borrows the store
// for the duration of Run.
type Loop struct {
	store *directory.Store
	in    LineReader
	out   LineWriter
	opts  Options

	selection Selection
}

// New returns a Loop over store reading from in and writing to out.
func New(store *directory.Store, in LineReader, out LineWriter, opts Options) *Loop {
	return &Loop{store: store, in: in, out: out, opts: opts, selection: noSelection}
}

// errEndOfInput marks an exhausted reader; Run treats it like SelectExit.
var errEndOfInput = errors.New("end of input")

// Run shows the menu and dispatches commands until the user selects exit
// or the input ends. Both return nil. Read and write failures are
// returned, as is ctx.Err() when ctx is cancelled between commands.
func (l *Loop) Run(ctx context.Context) error {
	for l.selection != SelectExit {
		if err := ctx.Err(); err != nil {
			return err
		}
		err := l.step()
		if errors.Is(err, errEndOfInput) {
			logging.Debugf("input closed, leaving menu")
			return nil
		}
		if err != nil {
			return err
		}
	}
	logging.Debugf("exit selected")
	return nil
}

// Selection returns the last valid selection, or zero before the first.
func (l *Loop) Selection() Selection {
	return l.selection
}

// step runs one menu iteration: show, read, dispatch.
func (l *Loop) step() error {
	if err := l.showMenu(); err != nil {
		return err
	}
	line, err := l.ask(i18n.T("menu.prompt"))
	if err != nil {
		return err
	}

	n, err := strconv.Atoi(strings.TrimSpace(line))
	if err != nil {
		logging.Debugf("unparsable selection %q", line)
		return l.say(i18n.T("menu.not_a_number"))
	}

	sel := Selection(n)
	switch sel {
	case SelectAdd:
		err = l.addEmployee()
	case SelectDepartment:
		err = l.showDepartment()
	case SelectAll:
		err = l.showAll()
	case SelectExit:
	default:
		logging.Debugf("selection %d out of range", n)
		return l.say(i18n.T("menu.invalid_option"))
	}
	if err != nil {
		return err
	}
	l.selection = sel
	return nil
}

func (l *Loop) showMenu() error {
	lines := []string{
		"",
		i18n.T("menu.title"),
		i18n.T("menu.add"),
		i18n.T("menu.department"),
		i18n.T("menu.all"),
		i18n.T("menu.exit"),
	}
	for _, line := range lines {
		if err := l.say(line); err != nil {
			return err
		}
	}
	return nil
}

func (l *Loop) addEmployee() error {
	if err := l.say(""); err != nil {
		return err
	}
	name, err := l.ask(i18n.T("prompt.employee_name"))
	if err != nil {
		return err
	}
	dept, err := l.ask(i18n.T("prompt.department_name"))
	if err != nil {
		return err
	}
	l.store.Add(dept, name)
	logging.Debugf("added %q to %q", strings.TrimSpace(name), strings.TrimSpace(dept))
	return nil
}

func (l *Loop) showDepartment() error {
	if err := l.say(""); err != nil {
		return err
	}
	dept, err := l.ask(i18n.T("prompt.inspect_department"))
	if err != nil {
		return err
	}
	names, err := l.store.Department(dept)
	if errors.Is(err, directory.ErrDepartmentNotFound) {
		return l.say(i18n.T("listing.not_found"))
	}
	if err != nil {
		return err
	}
	d := directory.Department{Name: strings.TrimSpace(dept), Employees: names}
	if l.opts.Sorted {
		d = directory.Sorted([]directory.Department{d}, l.opts.Language)[0]
	}
	return l.writeAll(FormatDepartment(d))
}

func (l *Loop) showAll() error {
	deps := l.store.All()
	if l.opts.Sorted {
		deps = directory.Sorted(deps, l.opts.Language)
	}
	for _, d := range deps {
		if err := l.say(""); err != nil {
			return err
		}
		if err := l.writeAll(FormatDepartment(d)); err != nil {
			return err
		}
	}
	return nil
}

// FormatDepartment renders a department as its header line followed by
// one "<n>. <name>." line per employee, numbered from 1.
func FormatDepartment(d directory.Department) []string {
	lines := make([]string, 0, len(d.Employees)+1)
	lines = append(lines, i18n.T("listing.header", d.Name))
	for i, name := range d.Employees {
		lines = append(lines, i18n.T("listing.entry", i+1, name))
	}
	return lines
}

func (l *Loop) writeAll(lines []string) error {
	for _, line := range lines {
		if err := l.say(line); err != nil {
			return err
		}
	}
	return nil
}

func (l *Loop) say(line string) error {
	if err := l.out.WriteLine(line); err != nil {
		return fmt.Errorf("write output: %w", err)
	}
	return nil
}

// ask shows a prompt and reads one line. io.EOF becomes errEndOfInput.
func (l *Loop) ask(prompt string) (string, error) {
	var err error
	if p, ok := l.out.(Prompter); ok {
		err = p.Prompt(prompt)
	} else {
		err = l.out.WriteLine(prompt)
	}
	if err != nil {
		return "", fmt.Errorf("write prompt: %w", err)
	}

	line, err := l.in.ReadLine()
	if errors.Is(err, io.EOF) {
		return "", errEndOfInput
	}
	if err != nil {
		return "", fmt.Errorf("read input: %w", err)
	}
	return line, nil
}
