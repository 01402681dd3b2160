// Copyright (c) 2026 Roster Team
// Roster - employee directory
// This source code is licensed under the MIT license found in the LICENSE file.

package directory

import (
	"slices"

	"golang.org/x/text/collate"
	"golang.org/x/text/language"
)

// Sorted returns a copy of deps with departments, and the employees inside
// each department, ordered alphabetically using the collation rules of tag.
// Comparison ignores case; equal keys keep their original relative order.
func Sorted(deps []Department, tag language.Tag) []Department {
	c := collate.New(tag, collate.IgnoreCase)

	out := make([]Department, len(deps))
	for i, d := range deps {
		names := slices.Clone(d.Employees)
		slices.SortStableFunc(names, c.CompareString)
		out[i] = Department{Name: d.Name, Employees: names}
	}
	slices.SortStableFunc(out, func(a, b Department) int {
		return c.CompareString(a.Name, b.Name)
	})
	return out
}
