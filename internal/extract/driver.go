package extract

import (
	"context"
	"errors"
	"fmt"

	"github.com/a3tai/pdf-quiz/internal/logger"
	"github.com/a3tai/pdf-quiz/internal/question"
)

// ErrInvalidPageRange is returned for a start page below 1 or an end page
// before the start page
var ErrInvalidPageRange = errors.New("invalid page range")

// PageSource supplies the plain text of 1-indexed pages
type PageSource interface {
	NumPages() int
	PageText(page int) (string, error)
}

// PageRange selects pages Start through End inclusive. End 0 means the
// last page of the document.
type PageRange struct {
	Start int `json:"start"`
	End   int `json:"end,omitempty"`
}

// Validate checks the range bounds
func (r PageRange) Validate() error {
	if r.Start < 1 {
		return fmt.Errorf("%w: start page %d must be at least 1", ErrInvalidPageRange, r.Start)
	}
	if r.End != 0 && r.End < r.Start {
		return fmt.Errorf("%w: end page %d is before start page %d", ErrInvalidPageRange, r.End, r.Start)
	}
	return nil
}

// Resolve returns the concrete first and last page for a document with
// total pages. first > last means there is nothing to read.
func (r PageRange) Resolve(total int) (first, last int) {
	last = total
	if r.End != 0 && r.End < total {
		last = r.End
	}
	return r.Start, last
}

// Outcome is one built block, in document order
type Outcome struct {
	Page  int    `json:"page"`
	Block string `json:"block"`
	Result
}

// Report is the product of an extraction run
type Report struct {
	Outcomes     []Outcome `json:"outcomes"`
	PagesScanned int       `json:"pages_scanned"`
	Valid        int       `json:"valid"`
	Rejected     int       `json:"rejected"`
}

// Entries returns one entry per outcome with nil for rejected blocks, the
// shape written to the persisted list
func (r *Report) Entries() []*question.Record {
	entries := make([]*question.Record, len(r.Outcomes))
	for i := range r.Outcomes {
		if r.Outcomes[i].OK() {
			rec := r.Outcomes[i].Record
			entries[i] = &rec
		}
	}
	return entries
}

// Records returns only the successfully built records
func (r *Report) Records() []question.Record {
	records := make([]question.Record, 0, r.Valid)
	for _, o := range r.Outcomes {
		if o.OK() {
			records = append(records, o.Record)
		}
	}
	return records
}

// Extract runs the matcher and builder over the page range of source. A page
// that cannot be read aborts the run.
func Extract(ctx context.Context, source PageSource, pages PageRange, matcher *Matcher, builder *Builder) (*Report, error) {
	return NewSession(source, matcher, builder, nil).Run(ctx, pages)
}

// ExtractText runs the matcher and builder over a single page of text
func ExtractText(text string, matcher *Matcher, builder *Builder) []Outcome {
	var outcomes []Outcome
	for block := range matcher.Blocks(text) {
		outcomes = append(outcomes, Outcome{Page: 1, Block: block.Text, Result: builder.Build(block.Text)})
	}
	return outcomes
}

// Session holds the collaborators of an extraction run
type Session struct {
	source  PageSource
	matcher *Matcher
	builder *Builder
	log     *logger.Logger
}

// NewSession creates an extraction session. Nil matcher, builder or log
// select the defaults; a nil matcher follows the builder's marker.
func NewSession(source PageSource, matcher *Matcher, builder *Builder, log *logger.Logger) *Session {
	if builder == nil {
		builder = NewBuilder(DefaultMarker)
	}
	if matcher == nil {
		matcher = NewMatcherFor(builder.Marker())
	}
	if log == nil {
		log = logger.Nop()
	}
	return &Session{source: source, matcher: matcher, builder: builder, log: log}
}

// Run extracts every block in the page range. Rejected blocks stay in the
// report so they can be written as null entries.
func (s *Session) Run(ctx context.Context, pages PageRange) (*Report, error) {
	if s.source == nil {
		return nil, fmt.Errorf("page source cannot be nil")
	}
	if err := pages.Validate(); err != nil {
		return nil, err
	}

	first, last := pages.Resolve(s.source.NumPages())
	report := &Report{Outcomes: []Outcome{}}

	for page := first; page <= last; page++ {
		if err := ctx.Err(); err != nil {
			return nil, err
		}

		text, err := s.source.PageText(page)
		if err != nil {
			return nil, fmt.Errorf("failed to read page %d: %w", page, err)
		}
		report.PagesScanned++

		for block := range s.matcher.Blocks(text) {
			result := s.builder.Build(block.Text)
			if result.OK() {
				report.Valid++
			} else {
				report.Rejected++
				s.log.Debug("block rejected", "page", page, "offset", block.Start, "reason", string(result.Reason))
			}
			report.Outcomes = append(report.Outcomes, Outcome{Page: page, Block: block.Text, Result: result})
		}
	}

	s.log.Info("extraction finished",
		"first_page", first,
		"last_page", last,
		"pages", report.PagesScanned,
		"valid", report.Valid,
		"rejected", report.Rejected,
	)
	return report, nil
}
