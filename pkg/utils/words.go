package utils

import (
	"fmt"
	"regexp"
	"strings"
)

var wordPattern = regexp.MustCompile(`\S+`)

// CountWords counts whitespace separated words. Markdown markers such as
// "#", "-", "*" and "---" standing alone are not words.
func CountWords(text string) int {
	count := 0
	for _, w := range wordPattern.FindAllString(text, -1) {
		if strings.Trim(w, "#*-_|·•") == "" {
			continue
		}
		count++
	}
	return count
}

// FormatWordCount formats the word count for display
func FormatWordCount(words int) string {
	if words == 1 {
		return "1 word"
	} else if words < 1000 {
		return fmt.Sprintf("%d words", words)
	} else if words < 10000 {
		return fmt.Sprintf("~%.1fK words", float64(words)/1000)
	} else {
		return fmt.Sprintf("~%.0fK words", float64(words)/1000)
	}
}

// GetLengthStatus compares a CV's length with the usual page budgets
func GetLengthStatus(words int) (percentage int, limit int, pages int, status string) {
	// Roughly 450 words fit a printed page
	limits := []int{450, 900, 1350}

	// Find the smallest page budget that can hold the text
	limit = limits[len(limits)-1] // Default to largest
	pages = len(limits)
	for i, l := range limits {
		if words <= l {
			limit = l
			pages = i + 1
			break
		}
	}

	percentage = (words * 100) / limit

	// Two pages is the usual ceiling for a CV
	if pages == 1 {
		status = "good"
	} else if pages == 2 {
		status = "warning"
	} else {
		status = "danger"
	}

	return percentage, limit, pages, status
}
