package console

import (
	"testing"

	"github.com/muesli/termenv"

	"showcase/internal/testutils"
)

func TestToANSI(t *testing.T) {
	// Force TTY behavior so codes are emitted regardless of test runner
	SetTTY(true)
	SetPreferredProfile(termenv.ANSI)
	defer SetTTY(false)

	BuildColorMap()
	RegisterSemanticTag("TestColor", "red")
	RegisterSemanticTag("Complex", "blue:yellow:B")

	tests := []struct {
		input    string
		expected string
	}{
		// Basic pass-through
		{"Hello World", "Hello World"},

		// Semantic tag resolution
		{"{{_TestColor_}}Hello", CodeRed + "Hello"},
		{"Prefix{{_TestColor_}}Suffix", "Prefix" + CodeRed + "Suffix"},

		// Complex tags: fg, bg, flags
		{"{{_Complex_}}Bold", CodeBlue + CodeYellowBg + CodeBold + "Bold"},

		// Direct tags
		{"{{|green|}}OK{{|-|}}", CodeGreen + "OK" + CodeReset},
		{"{{|:red|}}BG", CodeRedBg + "BG"},

		// Unknown semantic tags are stripped
		{"{{_Unknown_}}text", "text"},
	}

	var cases []testutils.TestCase

	for _, tt := range tests {
		actual := ToANSI(tt.input)
		cases = append(cases, testutils.TestCase{
			Input:    tt.input,
			Expected: tt.expected,
			Actual:   actual,
			Pass:     actual == tt.expected,
		})
	}

	testutils.PrintTestTable(t, cases)
}

func TestSemanticTagRegistry(t *testing.T) {
	RegisterSemanticTag("RegistryDemoTag", "magenta::U")

	// Lookup is case-insensitive
	if got := GetSemanticTag("RegistryDemoTag"); got != "magenta::U" {
		t.Errorf("Expected 'magenta::U', got %q", got)
	}
	if got := GetSemanticTag("registrydemotag"); got != "magenta::U" {
		t.Errorf("Expected case-insensitive lookup, got %q", got)
	}
	if got := GetSemanticTag("NoSuchTag"); got != "" {
		t.Errorf("Expected empty code for unknown tag, got %q", got)
	}
}

func TestPreferredProfile(t *testing.T) {
	orig := GetPreferredProfile()
	defer SetPreferredProfile(orig)

	SetPreferredProfile(termenv.TrueColor)
	if GetPreferredProfile() != termenv.TrueColor {
		t.Error("Expected the forced TrueColor profile")
	}
}

func TestSprintf(t *testing.T) {
	SetTTY(true)
	defer SetTTY(false)
	BuildColorMap()

	got := Sprintf("{{|red|}}%s{{|-|}} %d", "fail", 3)
	want := CodeRed + "fail" + CodeReset + " 3"
	if got != want {
		t.Errorf("Expected %q, got %q", want, got)
	}
}

func TestStrip(t *testing.T) {
	tests := []struct {
		input    string
		expected string
	}{
		{"{{_Notice_}}done{{|-|}}", "done"},
		{"plain", "plain"},
		{"{{|cyan::B|}}file{{|-|}} saved", "file saved"},
	}

	var cases []testutils.TestCase

	for _, tt := range tests {
		actual := Strip(tt.input)
		cases = append(cases, testutils.TestCase{
			Input:    tt.input,
			Expected: tt.expected,
			Actual:   actual,
			Pass:     actual == tt.expected,
		})
	}

	testutils.PrintTestTable(t, cases)
}
