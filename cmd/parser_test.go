package cmd

import (
	"errors"
	"fmt"
	"strings"
	"testing"

	"showcase/internal/testutils"
)

func groupString(g CommandGroup) string {
	return fmt.Sprintf("flags=%v cmd=%s args=%v", g.Flags, g.Command, g.Args)
}

func groupsString(groups []CommandGroup) string {
	var parts []string
	for _, g := range groups {
		parts = append(parts, groupString(g))
	}
	return strings.Join(parts, " | ")
}

func TestParseGroups(t *testing.T) {
	tests := []struct {
		args     []string
		expected string
	}{
		// Single command, no args
		{[]string{"--list"}, "flags=[] cmd=--list args=[]"},

		// Generate with optional source and output
		{[]string{"-g"}, "flags=[] cmd=-g args=[]"},
		{[]string{"-g", "projects.yaml"}, "flags=[] cmd=-g args=[projects.yaml]"},
		{[]string{"-g", "projects.yaml", "README.md"}, "flags=[] cmd=-g args=[projects.yaml README.md]"},

		// "-" is an argument, not a flag
		{[]string{"-g", "projects.yaml", "-"}, "flags=[] cmd=-g args=[projects.yaml -]"},

		// Modifier applies to the following command
		{[]string{"-f", "-I", "README.md"}, "flags=[-f] cmd=-I args=[README.md]"},

		// Combined short flags expand
		{[]string{"-vg", "projects.yaml"}, "flags=[-v] cmd=-g args=[projects.yaml]"},

		// Single optional argument commands
		{[]string{"--check", "projects.yaml"}, "flags=[] cmd=--check args=[projects.yaml]"},
		{[]string{"--serve", "127.0.0.1:9000"}, "flags=[] cmd=--serve args=[127.0.0.1:9000]"},

		// Help takes a flag argument
		{[]string{"-h", "--generate"}, "flags=[] cmd=-h args=[--generate]"},

		// Multiple groups run in order, flags reset between groups
		{[]string{"--check", "a.yaml", "-x", "-g", "a.yaml", "out.md"},
			"flags=[] cmd=--check args=[a.yaml] | flags=[-x] cmd=-g args=[a.yaml out.md]"},
	}

	var cases []testutils.TestCase

	for _, tt := range tests {
		groups, err := Parse(tt.args)
		actual := groupsString(groups)
		if err != nil {
			actual = "error: " + err.Error()
		}
		cases = append(cases, testutils.TestCase{
			Input:    strings.Join(tt.args, " "),
			Expected: tt.expected,
			Actual:   actual,
			Pass:     err == nil && actual == tt.expected,
		})
	}

	testutils.PrintTestTable(t, cases)
}

func TestParseErrors(t *testing.T) {
	tests := []struct {
		name  string
		args  []string
		index int
	}{
		{"unknown long option", []string{"--bogus"}, 0},
		{"unknown short option", []string{"-Z"}, 0},
		{"argument without command", []string{"projects.yaml"}, 0},
		{"unconsumed argument", []string{"--list", "extra"}, 1},
		{"too many generate args", []string{"-g", "a", "b", "c"}, 3},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Parse(tt.args)
			if err == nil {
				t.Fatalf("Expected error for %v", tt.args)
			}
			var parseErr *ParseError
			if !errors.As(err, &parseErr) {
				t.Fatalf("Expected ParseError, got %T", err)
			}
			if parseErr.Index != tt.index {
				t.Errorf("Expected error index %d, got %d", tt.index, parseErr.Index)
			}
		})
	}
}

func TestParseTrailingModifiers(t *testing.T) {
	groups, err := Parse([]string{"-v", "-x"})
	if err != nil {
		t.Fatal(err)
	}
	if len(groups) != 1 {
		t.Fatalf("Expected 1 group, got %d", len(groups))
	}
	if groups[0].Command != "" {
		t.Errorf("Expected no command, got %q", groups[0].Command)
	}
	if len(groups[0].Flags) != 2 {
		t.Errorf("Expected 2 flags, got %v", groups[0].Flags)
	}
}

func TestFlatten(t *testing.T) {
	groups := []CommandGroup{
		{Flags: []string{"-f"}, Command: "-I", Args: []string{"README.md"}},
		{Command: "--check"},
	}
	got := strings.Join(Flatten(groups), " ")
	want := "-f -I README.md --check"
	if got != want {
		t.Errorf("Expected %q, got %q", want, got)
	}
}

func TestGetUsageTargeted(t *testing.T) {
	out := GetUsage("--generate")
	if !strings.Contains(out, "--generate") {
		t.Error("Expected usage text for --generate")
	}
	if strings.Contains(out, "Flags:") {
		t.Error("Targeted usage should not include the global header")
	}
}
