// Copyright (c) 2026 Roster Team
// Roster - employee directory
// This source code is licensed under the MIT license found in the LICENSE file.

package directory

import (
	"errors"
	"reflect"
	"testing"

	"golang.org/x/text/language"
)

func TestAdd_PreservesOrderPerDepartment(t *testing.T) {
	s := New()
	adds := []struct{ dept, name string }{
		{"Sales", "Amir"},
		{"Engineering", "Sally"},
		{"Sales", "Bob"},
		{"Engineering", "Ada"},
		{"Sales", "Amir"},
	}
	for _, a := range adds {
		s.Add(a.dept, a.name)
	}

	want := []Department{
		{Name: "Sales", Employees: []string{"Amir", "Bob", "Amir"}},
		{Name: "Engineering", Employees: []string{"Sally", "Ada"}},
	}
	if got := s.All(); !reflect.DeepEqual(got, want) {
		t.Fatalf("All() = %#v, want %#v", got, want)
	}
}

func TestAdd_AppendsRatherThanReplaces(t *testing.T) {
	s := New()
	for i := 0; i < 5; i++ {
		s.Add("Ops", "worker")
	}
	names, err := s.Department("Ops")
	if err != nil {
		t.Fatalf("Department: %v", err)
	}
	if len(names) != 5 {
		t.Fatalf("expected 5 names, got %d", len(names))
	}
}

func TestAdd_TrimsInput(t *testing.T) {
	s := New()
	s.Add("  Sales \n", "\tAmir  ")

	names, err := s.Department("Sales")
	if err != nil {
		t.Fatalf("Department: %v", err)
	}
	if !reflect.DeepEqual(names, []string{"Amir"}) {
		t.Fatalf("unexpected names: %q", names)
	}
}

func TestAdd_AcceptsEmptyValues(t *testing.T) {
	s := New()
	s.Add("   ", "")
	s.Add("", "Nobody")

	names, err := s.Department("")
	if err != nil {
		t.Fatalf("empty department should be stored, got %v", err)
	}
	if !reflect.DeepEqual(names, []string{"", "Nobody"}) {
		t.Fatalf("unexpected names: %q", names)
	}
	if d, e := s.Len(); d != 1 || e != 2 {
		t.Fatalf("Len() = (%d, %d), want (1, 2)", d, e)
	}
}

func TestDepartment_NotFound(t *testing.T) {
	s := New()
	s.Add("Sales", "Amir")

	names, err := s.Department("sales")
	if !errors.Is(err, ErrDepartmentNotFound) {
		t.Fatalf("expected ErrDepartmentNotFound for case mismatch, got %v", err)
	}
	if names != nil {
		t.Fatalf("expected nil names on not found, got %q", names)
	}

	if _, err := New().Department("Anything"); !errors.Is(err, ErrDepartmentNotFound) {
		t.Fatalf("expected ErrDepartmentNotFound on empty store, got %v", err)
	}
}

func TestDepartment_ReturnsCopy(t *testing.T) {
	s := New()
	s.Add("Sales", "Amir")

	names, _ := s.Department("Sales")
	names[0] = "mutated"

	again, _ := s.Department("Sales")
	if again[0] != "Amir" {
		t.Fatalf("store was mutated through returned slice: %q", again)
	}

	all := s.All()
	all[0].Employees[0] = "mutated"
	if got, _ := s.Department("Sales"); got[0] != "Amir" {
		t.Fatalf("store was mutated through All(): %q", got)
	}
}

func TestAll_EmptyStore(t *testing.T) {
	if got := New().All(); len(got) != 0 {
		t.Fatalf("expected no departments, got %v", got)
	}
}

func TestSorted(t *testing.T) {
	in := []Department{
		{Name: "sales", Employees: []string{"zoe", "Amir", "bob"}},
		{Name: "Engineering", Employees: []string{"Sally", "ada"}},
	}
	got := Sorted(in, language.English)
	want := []Department{
		{Name: "Engineering", Employees: []string{"ada", "Sally"}},
		{Name: "sales", Employees: []string{"Amir", "bob", "zoe"}},
	}
	if !reflect.DeepEqual(got, want) {
		t.Fatalf("Sorted() = %#v, want %#v", got, want)
	}
	if in[0].Name != "sales" || in[0].Employees[0] != "zoe" {
		t.Fatalf("Sorted modified its input: %#v", in)
	}
}

func TestSorted_GermanCollation(t *testing.T) {
	in := []Department{{Name: "Vertrieb", Employees: []string{"Zimmer", "Özil", "Otto"}}}
	got := Sorted(in, language.German)
	want := []string{"Otto", "Özil", "Zimmer"}
	if !reflect.DeepEqual(got[0].Employees, want) {
		t.Fatalf("German collation = %q, want %q", got[0].Employees, want)
	}
}
