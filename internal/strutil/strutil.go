package strutil

import (
	"strings"

	"charm.land/lipgloss/v2"
)

// Limit truncates a string to a specific width, accounting for ANSI codes
func Limit(s string, width int) string {
	if lipgloss.Width(s) <= width {
		return s
	}

	return lipgloss.NewStyle().MaxWidth(width).Render(s)
}

// Repeat returns a string consisting of n copies of the string s.
// It's a safer version of strings.Repeat that handles negative counts.
func Repeat(s string, count int) string {
	if count <= 0 {
		return ""
	}
	result := ""
	for i := 0; i < count; i++ {
		result += s
	}
	return result
}

// Slugify converts a title to a GitHub-style heading anchor:
// lowercase, spaces become hyphens, everything outside [a-z0-9-] is dropped.
func Slugify(s string) string {
	s = strings.ToLower(s)
	s = strings.ReplaceAll(s, " ", "-")
	var b strings.Builder
	for _, r := range s {
		if (r >= 'a' && r <= 'z') || (r >= '0' && r <= '9') || r == '-' {
			b.WriteRune(r)
		}
	}
	return b.String()
}

// WordWrap wraps text at the specified width, breaking on word boundaries.
func WordWrap(text string, width int) []string {
	var lines []string
	words := strings.Fields(text)

	if len(words) == 0 {
		return lines
	}

	var currentLine string
	for _, word := range words {
		if currentLine == "" {
			currentLine = word
		} else if len(currentLine)+1+len(word) <= width {
			currentLine += " " + word
		} else {
			lines = append(lines, currentLine)
			currentLine = word
		}
	}

	if currentLine != "" {
		lines = append(lines, currentLine)
	}

	return lines
}
