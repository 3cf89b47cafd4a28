package console

import (
	"fmt"
	"strings"
	"unicode/utf8"
)

// PrintTable prints a table with the given headers and data.
// data should be a flat list of strings, length must be a multiple of len(headers).
// useLineChars determines if Unicode box drawing characters are used.
func PrintTable(headers []string, data []string, useLineChars bool) {
	cols := len(headers)
	if cols == 0 {
		return
	}

	// 1. Calculate Column Widths
	colWidths := make([]int, cols)

	for i, h := range headers {
		l := utf8.RuneCountInString(Strip(h))
		if l > colWidths[i] {
			colWidths[i] = l
		}
	}

	for i, d := range data {
		col := i % cols
		l := utf8.RuneCountInString(Strip(d))
		if l > colWidths[col] {
			colWidths[col] = l
		}
	}

	// 2. Define Character Set
	var charSet map[string]string
	if useLineChars {
		charSet = map[string]string{
			"TopLeft":     "┌",
			"TopRight":    "┐",
			"BottomLeft":  "└",
			"BottomRight": "┘",
			"Horizontal":  "─",
			"Vertical":    "│",
			"Cross":       "┼",
			"TLeft":       "├",
			"TRight":      "┤",
			"TTop":        "┬",
			"TBottom":     "┴",
		}
	} else {
		charSet = map[string]string{
			"TopLeft":     "+",
			"TopRight":    "+",
			"BottomLeft":  "+",
			"BottomRight": "+",
			"Horizontal":  "-",
			"Vertical":    "|",
			"Cross":       "+",
			"TLeft":       "|",
			"TRight":      "|",
			"TTop":        "-",
			"TBottom":     "-",
		}
	}

	// 3. Construct Borders
	var topBorder, middleBorder, bottomBorder strings.Builder

	topBorder.WriteString(charSet["TopLeft"])
	middleBorder.WriteString(charSet["TLeft"])
	bottomBorder.WriteString(charSet["BottomLeft"])

	for i := 0; i < cols; i++ {
		width := colWidths[i]
		// Padding is +2 (one space on each side)
		dashes := strings.Repeat(charSet["Horizontal"], width+2)

		topBorder.WriteString(dashes)
		middleBorder.WriteString(dashes)
		bottomBorder.WriteString(dashes)

		if i < cols-1 {
			topBorder.WriteString(charSet["TTop"])
			middleBorder.WriteString(charSet["Cross"])
			bottomBorder.WriteString(charSet["TBottom"])
		} else {
			topBorder.WriteString(charSet["TopRight"])
			middleBorder.WriteString(charSet["TRight"])
			bottomBorder.WriteString(charSet["BottomRight"])
		}
	}

	// 4. Print Table
	fmt.Println(ToANSI(topBorder.String()))

	printRow := func(rowItems []string) {
		var rowBuilder strings.Builder
		rowBuilder.WriteString(charSet["Vertical"])
		for i, item := range rowItems {
			visibleLen := utf8.RuneCountInString(Strip(item))
			padding := colWidths[i] - visibleLen
			padStr := strings.Repeat(" ", padding)

			rowBuilder.WriteString(" ")
			rowBuilder.WriteString(item)
			rowBuilder.WriteString(padStr)
			rowBuilder.WriteString(" ")
			rowBuilder.WriteString(charSet["Vertical"])
		}
		fmt.Println(ToANSI(rowBuilder.String()))
	}

	printRow(headers)

	fmt.Println(ToANSI(middleBorder.String()))

	for i := 0; i < len(data); i += cols {
		end := i + cols
		if end > len(data) {
			end = len(data)
		}
		rowSlice := data[i:end]
		if len(rowSlice) < cols {
			filled := make([]string, cols)
			copy(filled, rowSlice)
			rowSlice = filled
		}
		printRow(rowSlice)
	}

	fmt.Println(ToANSI(bottomBorder.String()))
}
