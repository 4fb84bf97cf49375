package mcp

import (
	"github.com/a3tai/pdf-quiz/internal/extract"
	"github.com/a3tai/pdf-quiz/internal/question"
)

// ExtractRequest asks for the questions on a page range of a PDF
type ExtractRequest struct {
	Path   string `json:"path"`
	Start  int    `json:"start"`
	End    int    `json:"end,omitempty"`
	Output string `json:"output,omitempty"` // optional JSON file to write
}

// ExtractResult summarizes an extraction
type ExtractResult struct {
	Path         string            `json:"path"`
	Pages        int               `json:"pages"`
	PagesScanned int               `json:"pages_scanned"`
	Blocks       int               `json:"blocks"`
	Valid        int               `json:"valid"`
	Rejected     int               `json:"rejected"`
	Records      []question.Record `json:"records"`
	Output       string            `json:"output,omitempty"`
}

// ParseTextRequest asks for the questions in raw page text
type ParseTextRequest struct {
	Text string `json:"text"`
}

// ParseTextResult lists every matched block with its outcome
type ParseTextResult struct {
	Outcomes []extract.Outcome `json:"outcomes"`
	Valid    int               `json:"valid"`
	Rejected int               `json:"rejected"`
}

// SampleRequest asks for a random subset of a persisted question list
type SampleRequest struct {
	Path string `json:"path"`
	Size int    `json:"size"`
}

// SampleResult holds the sampled records
type SampleResult struct {
	Path    string            `json:"path"`
	Total   int               `json:"total"`
	Dropped int               `json:"dropped"`
	Records []question.Record `json:"records"`
}

// CheckAnswerRequest judges a submission against one record
type CheckAnswerRequest struct {
	Record string `json:"record"` // JSON encoded question record
	Answer string `json:"answer"`
}

// CheckAnswerResult is the verdict
type CheckAnswerResult struct {
	Correct  bool   `json:"correct"`
	Kind     string `json:"kind"`
	Expected string `json:"expected"`
}
