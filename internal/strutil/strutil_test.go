package strutil

import (
	"fmt"
	"strings"
	"testing"

	"showcase/internal/testutils"
)

func TestSlugify(t *testing.T) {
	tests := []struct {
		input    string
		expected string
	}{
		{"Hello World", "hello-world"},
		{"My App 2.0", "my-app-20"},
		{"Already-Slugged", "already-slugged"},
		{"UPPER CASE", "upper-case"},
		{"Trailing!", "trailing"},
		{"C++ & Go", "c--go"},
		{"", ""},
	}

	var cases []testutils.TestCase

	for _, tt := range tests {
		actual := Slugify(tt.input)
		cases = append(cases, testutils.TestCase{
			Input:    tt.input,
			Expected: tt.expected,
			Actual:   actual,
			Pass:     actual == tt.expected,
		})
	}

	testutils.PrintTestTable(t, cases)
}

func TestRepeat(t *testing.T) {
	tests := []struct {
		s        string
		count    int
		expected string
	}{
		{"ab", 3, "ababab"},
		{"x", 0, ""},
		{"x", -2, ""},
	}

	var cases []testutils.TestCase

	for _, tt := range tests {
		actual := Repeat(tt.s, tt.count)
		cases = append(cases, testutils.TestCase{
			Input:    fmt.Sprintf("%q x %d", tt.s, tt.count),
			Expected: tt.expected,
			Actual:   actual,
			Pass:     actual == tt.expected,
		})
	}

	testutils.PrintTestTable(t, cases)
}

func TestWordWrap(t *testing.T) {
	tests := []struct {
		input    string
		width    int
		expected string
	}{
		{"one two three four", 8, "one two|three|four"},
		{"short", 10, "short"},
		{"", 10, ""},
	}

	var cases []testutils.TestCase

	for _, tt := range tests {
		actual := strings.Join(WordWrap(tt.input, tt.width), "|")
		cases = append(cases, testutils.TestCase{
			Input:    tt.input,
			Expected: tt.expected,
			Actual:   actual,
			Pass:     actual == tt.expected,
		})
	}

	testutils.PrintTestTable(t, cases)
}
