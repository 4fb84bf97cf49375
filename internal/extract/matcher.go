package extract

import (
	"iter"
	"regexp"
	"strings"
	"unicode"
)

// optionChars are the characters an option line may hold after its letter
const optionChars = "a-zA-Z+!?. "

// blockPattern recognizes a numbered question line followed by one to four
// lettered option lines. The question capture runs across newlines up to the
// first option line; option lines are confined to a single line each.
var blockPattern = compileBlockPattern(optionChars)

func compileBlockPattern(class string) *regexp.Regexp {
	return regexp.MustCompile(`(?s)(\d+[.].*?)\n([A-Da-d][.][` + class + `]+\n?){1,4}`)
}

// Block is a candidate question span found on a page
type Block struct {
	Text  string `json:"text"`
	Start int    `json:"start"` // byte offset in the page text
	End   int    `json:"end"`
}

// Matcher finds question blocks in page text
type Matcher struct {
	pattern *regexp.Regexp
}

// NewMatcher creates a matcher using the standard block grammar
func NewMatcher() *Matcher {
	return &Matcher{pattern: blockPattern}
}

// NewMatcherFor creates a matcher whose option lines may also carry the
// characters of marker, so a marked option is never cut off
func NewMatcherFor(marker string) *Matcher {
	extra := markerClass(marker)
	if extra == "" {
		return NewMatcher()
	}
	return &Matcher{pattern: compileBlockPattern(optionChars + extra)}
}

// markerClass escapes the marker characters missing from the option class.
// Every non-alphanumeric rune is backslash-escaped so none of them can form
// a range or close the class.
func markerClass(marker string) string {
	var b strings.Builder
	for _, r := range marker {
		if r == '\n' || strings.ContainsRune(b.String(), r) {
			continue
		}
		if isOptionChar(r) {
			continue
		}
		if r < unicode.MaxASCII && !unicode.IsLetter(r) && !unicode.IsDigit(r) {
			b.WriteByte('\\')
		}
		b.WriteRune(r)
	}
	return b.String()
}

func isOptionChar(r rune) bool {
	return (r >= 'a' && r <= 'z') || (r >= 'A' && r <= 'Z') || strings.ContainsRune("+!?. ", r)
}

// Blocks lazily yields non-overlapping blocks in page order
func (m *Matcher) Blocks(text string) iter.Seq[Block] {
	return func(yield func(Block) bool) {
		pos := 0
		for pos < len(text) {
			loc := m.pattern.FindStringIndex(text[pos:])
			if loc == nil {
				return
			}
			start, end := pos+loc[0], pos+loc[1]
			if !yield(Block{Text: text[start:end], Start: start, End: end}) {
				return
			}
			pos = end
		}
	}
}

// FindAll returns every block on the page
func (m *Matcher) FindAll(text string) []Block {
	var blocks []Block
	for b := range m.Blocks(text) {
		blocks = append(blocks, b)
	}
	return blocks
}
