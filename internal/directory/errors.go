// Copyright (c) 2026 Roster Team
// Roster - employee directory
// This source code is licensed under the MIT license found in the LICENSE file.

package directory

import "errors"

// ErrDepartmentNotFound is returned by lookups for a department that was
// never added to. It is distinct from an empty result.
var ErrDepartmentNotFound = errors.New("department not found")
