// Copyright (c) 2026 Roster Team
// Roster - employee directory
// This source code is licensed under the MIT license found in the LICENSE file.

package menu

import (
	"bufio"
	"io"
	"strings"
)

// LineReader yields one line of input per call, without the line
// terminator. It returns io.EOF once the input is exhausted.
type LineReader interface {
	ReadLine() (string, error)
}

// LineWriter writes one line of output per call.
type LineWriter interface {
	WriteLine(line string) error
}

// Prompter is implemented by writers that can leave the cursor on the
// prompt line. Writers without it get prompts as ordinary lines.
type Prompter interface {
	Prompt(text string) error
}

// Console adapts an io.Reader/io.Writer pair to the line interfaces.
type Console struct {
	in  *bufio.Reader
	out *bufio.Writer
}

// NewConsole wraps r and w.
func NewConsole(r io.Reader, w io.Writer) *Console {
	return &Console{in: bufio.NewReader(r), out: bufio.NewWriter(w)}
}

// ReadLine returns the next line with any trailing "\n" or "\r\n"
// removed. A final line without terminator is returned before io.EOF.
func (c *Console) ReadLine() (string, error) {
	line, err := c.in.ReadString('\n')
	if err != nil {
		if err == io.EOF && line != "" {
			return strings.TrimRight(line, "\r"), nil
		}
		return "", err
	}
	return strings.TrimRight(line, "\r\n"), nil
}

// WriteLine writes line followed by a newline and flushes.
func (c *Console) WriteLine(line string) error {
	if _, err := c.out.WriteString(line + "\n"); err != nil {
		return err
	}
	return c.out.Flush()
}

// Prompt writes text and a space without a newline and flushes, so the
// user types on the same line.
func (c *Console) Prompt(text string) error {
	if _, err := c.out.WriteString(text + " "); err != nil {
		return err
	}
	return c.out.Flush()
}
