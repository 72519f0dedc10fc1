package main

import (
	"fmt"
	"strconv"
	"strings"
	"unicode/utf8"
)

const textColumnWidth = 60

// truncateText keeps table rows readable; full values stay in the store.
func truncateText(value string, width int) string {
	value = strings.TrimSpace(value)
	if width <= 3 || utf8.RuneCountInString(value) <= width {
		return value
	}
	runes := []rune(value)
	return string(runes[:width-3]) + "..."
}

func formatPercent(value float64) string {
	return strconv.FormatFloat(value, 'f', 1, 64) + "%"
}

func formatSeconds(value float64) string {
	return fmt.Sprintf("%.1f", value)
}

func formatCount(value int) string {
	return strconv.Itoa(value)
}
