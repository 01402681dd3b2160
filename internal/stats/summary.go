// Copyright (c) 2026 Roster Team
// Roster - employee directory
// This source code is licensed under the MIT license found in the LICENSE file.

// Package stats computes the median and mode of an integer collection.
package stats

import (
	"errors"
	"fmt"
	"slices"
	"strconv"
	"strings"
)

var (
	// ErrEmptyInput is returned by Summarize when there are no numbers.
	ErrEmptyInput = errors.New("no numbers to summarize")
	// ErrUnknownMedianRule is returned by ParseMedianRule for unknown names.
	ErrUnknownMedianRule = errors.New("unknown median rule")
	// ErrInvalidNumber is returned by ParseInts for tokens that are not integers.
	ErrInvalidNumber = errors.New("invalid number")
)

// MedianRule selects which two elements are averaged for even-length input.
type MedianRule int

const (
	// MedianConventional averages the two middle elements, indices n/2-1 and n/2.
	MedianConventional MedianRule = iota
	// MedianReference averages indices n/2 and n/2+1, reproducing the
	// historical output of the exercise this tool grew out of. The upper
	// index is clamped to the last element.
	MedianReference
)

func (r MedianRule) String() string {
	switch r {
	case MedianConventional:
		return "conventional"
	case MedianReference:
		return "reference"
	default:
		return "MedianRule(" + strconv.Itoa(int(r)) + ")"
	}
}

// ParseMedianRule maps a config value to a MedianRule. Matching is
// case-insensitive; an empty string selects MedianConventional.
func ParseMedianRule(s string) (MedianRule, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", "conventional":
		return MedianConventional, nil
	case "reference":
		return MedianReference, nil
	default:
		return 0, fmt.Errorf("%w: %q (want \"conventional\" or \"reference\")", ErrUnknownMedianRule, s)
	}
}

// Summary is the result of Summarize.
type Summary struct {
	Median int
	Mode   int
}

type options struct {
	rule MedianRule
}

// Option configures Summarize.
type Option func(*options)

// WithMedianRule selects the even-length median rule.
func WithMedianRule(r MedianRule) Option {
	return func(o *options) { o.rule = r }
}

// Summarize returns the median and mode of numbers. The input slice is not
// modified. Even-length medians use integer division. When several values
// share the highest frequency the smallest of them is the mode.
func Summarize(numbers []int, opts ...Option) (Summary, error) {
	if len(numbers) == 0 {
		return Summary{}, ErrEmptyInput
	}
	o := options{rule: MedianConventional}
	for _, opt := range opts {
		opt(&o)
	}

	sorted := slices.Clone(numbers)
	slices.Sort(sorted)

	return Summary{
		Median: median(sorted, o.rule),
		Mode:   mode(sorted),
	}, nil
}

func median(sorted []int, rule MedianRule) int {
	n := len(sorted)
	if n%2 == 1 {
		return sorted[n/2]
	}

	lo, hi := n/2-1, n/2
	if rule == MedianReference {
		lo, hi = n/2, min(n/2+1, n-1)
	}
	return midpoint(sorted[lo], sorted[hi])
}

// midpoint returns (a+b)/2 truncated toward zero without overflowing int.
func midpoint(a, b int) int {
	if (a < 0) != (b < 0) {
		return (a + b) / 2
	}
	return a/2 + b/2 + (a%2+b%2)/2
}

// mode walks runs of equal values in sorted order. Only a strictly longer
// run replaces the current best, so ties resolve to the smallest value.
func mode(sorted []int) int {
	best, bestCount := sorted[0], 0
	for i := 0; i < len(sorted); {
		j := i
		for j < len(sorted) && sorted[j] == sorted[i] {
			j++
		}
		if count := j - i; count > bestCount {
			best, bestCount = sorted[i], count
		}
		i = j
	}
	return best
}

// ParseInts parses each field as a base-10 integer.
func ParseInts(fields []string) ([]int, error) {
	out := make([]int, 0, len(fields))
	for _, f := range fields {
		n, err := strconv.Atoi(strings.TrimSpace(f))
		if err != nil {
			return nil, fmt.Errorf("%w: %q", ErrInvalidNumber, f)
		}
		out = append(out, n)
	}
	return out, nil
}
