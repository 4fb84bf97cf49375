package quiz

import (
	"strings"
	"unicode"
	"unicode/utf8"

	"github.com/a3tai/pdf-quiz/internal/question"
)

// IsCorrect judges a submitted answer. Multiple-choice answers match on the
// option letter alone, case-insensitively. Fill-in answers match when equal
// after lower-casing and removing all whitespace.
func IsCorrect(rec question.Record, submitted string) bool {
	if rec.IsMultipleChoice() {
		got, ok := firstRune(submitted)
		if !ok {
			return false
		}
		want, ok := firstRune(rec.Answer)
		if !ok {
			return false
		}
		return unicode.ToLower(got) == unicode.ToLower(want)
	}
	return normalize(submitted) == normalize(rec.Answer)
}

func firstRune(s string) (rune, bool) {
	if s == "" {
		return 0, false
	}
	r, _ := utf8.DecodeRuneInString(s)
	return r, true
}

// normalize lower-cases s and drops every whitespace rune
func normalize(s string) string {
	return strings.Map(func(r rune) rune {
		if unicode.IsSpace(r) {
			return -1
		}
		return unicode.ToLower(r)
	}, s)
}
