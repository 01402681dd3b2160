// Copyright (c) 2026 Roster Team
// Roster - employee directory
// This source code is licensed under the MIT license found in the LICENSE file.
//
// Package cli implements the command-line interface for Roster using Cobra.
// It wires configuration, logging and translations, then hands control to
// the text menu, the summary calculator or the TUI. CLI code stays thin;
// behavior lives in the internal packages.
package cli
