package utils

import (
	"fmt"
	"regexp"
)

// WordsPerPage is the word count of a typical printed CV page.
const WordsPerPage = 450

var (
	wordPattern = regexp.MustCompile(`\S+`)
	// rules and bullets are not words
	letterPattern = regexp.MustCompile(`[\p{L}\p{N}]`)
)

// CountWords counts the words of text. Tokens without any letter or digit,
// such as markdown rules and bullets, are skipped.
func CountWords(text string) int {
	count := 0
	for _, w := range wordPattern.FindAllString(text, -1) {
		if letterPattern.MatchString(w) {
			count++
		}
	}
	return count
}

// EstimatePages returns the printed length of words in pages.
func EstimatePages(words int) float64 {
	return float64(words) / WordsPerPage
}

// FormatWordCount formats a word count with its page estimate.
func FormatWordCount(words int) string {
	var count string
	switch {
	case words == 1:
		count = "1 word"
	case words < 1000:
		count = fmt.Sprintf("%d words", words)
	default:
		count = fmt.Sprintf("%.1fK words", float64(words)/1000)
	}
	return fmt.Sprintf("%s · ~%.1f pages", count, EstimatePages(words))
}

// GetLengthStatus returns the share of the page limit used, the limit in
// pages and a status: "good" fits one page, "warning" fits two, anything
// longer is "danger".
func GetLengthStatus(words int) (percentage int, pages int, status string) {
	pages = 1
	if words > WordsPerPage {
		pages = 2
	}
	percentage = words * 100 / (pages * WordsPerPage)

	switch {
	case words <= WordsPerPage:
		status = "good"
	case words <= 2*WordsPerPage:
		status = "warning"
	default:
		status = "danger"
	}
	return percentage, pages, status
}
