package extract

import (
	"regexp"
	"strings"

	"github.com/a3tai/pdf-quiz/internal/question"
)

// DefaultMarker is the suffix that flags the correct multiple-choice option
const DefaultMarker = "+++"

// RejectReason explains why a block produced no record
type RejectReason string

const (
	ReasonNone            RejectReason = ""
	ReasonSplitFailed     RejectReason = "split_failed"
	ReasonOptionCount     RejectReason = "option_count"
	ReasonNoMarker        RejectReason = "no_marker"
	ReasonMultipleMarkers RejectReason = "multiple_markers"
)

var (
	// optionsBoundary is the newline preceding the first option line
	optionsBoundary = regexp.MustCompile(`\n[Aa][.]`)
	ordinalPrefix   = regexp.MustCompile(`^\d+[. ]{1,2}`)
	fillInPrefix    = regexp.MustCompile(`^[Aa][.] ?`)
)

// Result is the outcome of building one block
type Result struct {
	Record question.Record `json:"record"`
	Reason RejectReason    `json:"reason,omitempty"`
}

// OK reports whether the block produced a record
func (r Result) OK() bool {
	return r.Reason == ReasonNone
}

func reject(reason RejectReason) Result {
	return Result{Reason: reason}
}

// Builder turns matched blocks into question records
type Builder struct {
	marker string
}

// NewBuilder creates a builder for the given correct-answer marker. An empty
// marker selects DefaultMarker.
func NewBuilder(marker string) *Builder {
	if marker == "" {
		marker = DefaultMarker
	}
	return &Builder{marker: marker}
}

// Marker returns the correct-answer suffix in use
func (b *Builder) Marker() string {
	return b.marker
}

// Build parses a block. It never fails with an error: malformed blocks come
// back with a non-empty Reason.
func (b *Builder) Build(block string) Result {
	bounds := optionsBoundary.FindAllStringIndex(block, -1)
	if len(bounds) != 1 {
		return reject(ReasonSplitFailed)
	}
	questionPart := block[:bounds[0][0]]
	optionsPart := block[bounds[0][0]+1:]

	text := ordinalPrefix.ReplaceAllString(questionPart, "")
	lines := strings.Split(strings.Trim(optionsPart, "\n"), "\n")

	if len(lines) == 1 {
		return Result{Record: question.Record{
			Question: text,
			Options:  question.FillInBlank(),
			Answer:   fillInPrefix.ReplaceAllString(lines[0], ""),
		}}
	}

	if len(lines) != question.OptionCount {
		return reject(ReasonOptionCount)
	}

	var choices [question.OptionCount]string
	answer, marked := "", 0
	for i, line := range lines {
		if strings.HasSuffix(line, b.marker) {
			line = strings.TrimRight(strings.TrimSuffix(line, b.marker), " ")
			answer = line
			marked++
		}
		choices[i] = line
	}

	switch {
	case marked == 0:
		return reject(ReasonNoMarker)
	case marked > 1:
		return reject(ReasonMultipleMarkers)
	}

	return Result{Record: question.Record{
		Question: text,
		Options:  question.MultipleChoice(choices),
		Answer:   answer,
	}}
}
