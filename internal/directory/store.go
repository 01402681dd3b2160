// Copyright (c) 2026 Roster Team
// Roster - employee directory
// This source code is licensed under the MIT license found in the LICENSE file.

package directory

import (
	"fmt"
	"strings"
)

// Department is a snapshot of one department and its employees in
// insertion order.
type Department struct {
	Name      string
	Employees []string
}

// Store maps department names to employee names. Departments are created
// implicitly on the first Add, so every department it knows about has at
// least one employee.
//
// A Store is owned by a single front end and is not safe for concurrent use.
type Store struct {
	employees map[string][]string
	order     []string // department names in first-insertion order
}

// New returns an empty Store.
func New() *Store {
	return &Store{employees: make(map[string][]string)}
}

// Add appends name to department, creating the department if needed.
// Both values are trimmed of surrounding whitespace. Empty values are
// accepted as-is.
func (s *Store) Add(department, name string) {
	department = strings.TrimSpace(department)
	name = strings.TrimSpace(name)

	if _, ok := s.employees[department]; !ok {
		s.order = append(s.order, department)
	}
	s.employees[department] = append(s.employees[department], name)
}

// Department returns the employees of the named department in the order
// they were added. The name is trimmed before the exact-match lookup.
// Unknown departments yield ErrDepartmentNotFound.
func (s *Store) Department(name string) ([]string, error) {
	name = strings.TrimSpace(name)
	names, ok := s.employees[name]
	if !ok {
		return nil, fmt.Errorf("lookup %q: %w", name, ErrDepartmentNotFound)
	}
	out := make([]string, len(names))
	copy(out, names)
	return out, nil
}

// All returns every department in the order departments were first added.
// The returned slices are copies.
func (s *Store) All() []Department {
	out := make([]Department, 0, len(s.order))
	for _, dept := range s.order {
		names := s.employees[dept]
		cp := make([]string, len(names))
		copy(cp, names)
		out = append(out, Department{Name: dept, Employees: cp})
	}
	return out
}

// Len reports the number of departments and the total number of employee
// entries, duplicates included.
func (s *Store) Len() (departments, employees int) {
	for _, names := range s.employees {
		employees += len(names)
	}
	return len(s.employees), employees
}
