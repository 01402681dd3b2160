// Copyright (c) 2026 Roster Team
// Roster - employee directory
// This source code is licensed under the MIT license found in the LICENSE file.

// Package directory holds the in-memory mapping from department names to
// the ordered list of employees added to them. It performs no I/O; the
// menu and TUI front ends own presentation.
package directory
