package mcp

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/a3tai/pdf-quiz/internal/config"
	"github.com/a3tai/pdf-quiz/internal/extract"
	"github.com/a3tai/pdf-quiz/internal/logger"
	"github.com/a3tai/pdf-quiz/internal/pdf"
	"github.com/a3tai/pdf-quiz/internal/question"
	"github.com/a3tai/pdf-quiz/internal/quiz"
)

// Service implements the tool operations independent of the MCP transport.
// Every path is resolved inside the configured directory.
type Service struct {
	validator  *pdf.Validator
	sandbox    *pdf.Sandbox
	matcher    *extract.Matcher
	builder    *extract.Builder
	xTolerance float64
	log        *logger.Logger
}

// NewService creates a service rooted at cfg.PDFDirectory
func NewService(cfg *config.Config, log *logger.Logger) (*Service, error) {
	if cfg == nil {
		return nil, errors.New("config cannot be nil")
	}
	if log == nil {
		log = logger.Nop()
	}

	sandbox, err := pdf.NewSandbox(cfg.PDFDirectory)
	if err != nil {
		return nil, err
	}

	return &Service{
		validator:  pdf.NewValidator(cfg.MaxFileSize),
		sandbox:    sandbox,
		matcher:    extract.NewMatcherFor(cfg.Marker),
		builder:    extract.NewBuilder(cfg.Marker),
		xTolerance: cfg.XTolerance,
		log:        log,
	}, nil
}

// Root returns the directory tools are confined to
func (s *Service) Root() string {
	return s.sandbox.Root()
}

// Extract reads the requested pages of a PDF and returns the valid records.
// With an output path the full entry list, rejected blocks as nulls, is
// also written there.
func (s *Service) Extract(ctx context.Context, req ExtractRequest) (*ExtractResult, error) {
	path, err := s.sandbox.Resolve(req.Path)
	if err != nil {
		return nil, err
	}

	info, err := s.validator.ValidateFile(path)
	if err != nil {
		return nil, err
	}

	doc, err := pdf.Open(path, s.xTolerance)
	if err != nil {
		return nil, err
	}
	defer doc.Close()

	pages := extract.PageRange{Start: req.Start, End: req.End}
	if pages.Start == 0 {
		pages.Start = 1
	}

	report, err := extract.NewSession(doc, s.matcher, s.builder, s.log).Run(ctx, pages)
	if err != nil {
		return nil, err
	}

	result := &ExtractResult{
		Path:         path,
		Pages:        info.Pages,
		PagesScanned: report.PagesScanned,
		Blocks:       len(report.Outcomes),
		Valid:        report.Valid,
		Rejected:     report.Rejected,
		Records:      report.Records(),
	}

	if req.Output != "" {
		output, err := s.sandbox.Resolve(req.Output)
		if err != nil {
			return nil, err
		}
		if err := question.CheckPath(output); err != nil && !errors.Is(err, question.ErrNotFound) {
			return nil, err
		}
		if err := question.Save(output, report.Entries()); err != nil {
			return nil, err
		}
		result.Output = output
	}

	return result, nil
}

// ParseText runs the matcher and builder over text without touching a file
func (s *Service) ParseText(req ParseTextRequest) *ParseTextResult {
	result := &ParseTextResult{Outcomes: extract.ExtractText(req.Text, s.matcher, s.builder)}
	if result.Outcomes == nil {
		result.Outcomes = []extract.Outcome{}
	}
	for _, o := range result.Outcomes {
		if o.OK() {
			result.Valid++
		} else {
			result.Rejected++
		}
	}
	return result
}

// Sample loads a question list and draws up to req.Size records from it
func (s *Service) Sample(req SampleRequest) (*SampleResult, error) {
	if req.Size <= 0 {
		return nil, fmt.Errorf("sample size must be positive, got %d", req.Size)
	}

	path, err := s.sandbox.Resolve(req.Path)
	if err != nil {
		return nil, err
	}

	loaded, err := question.Load(path)
	if err != nil {
		return nil, err
	}

	return &SampleResult{
		Path:    path,
		Total:   loaded.Total,
		Dropped: loaded.Dropped,
		Records: question.Sample(loaded.Records, req.Size, nil),
	}, nil
}

// CheckAnswer judges req.Answer against the record encoded in req.Record
func (s *Service) CheckAnswer(req CheckAnswerRequest) (*CheckAnswerResult, error) {
	raw := json.RawMessage(req.Record)
	if err := question.ValidateEntry(raw); err != nil {
		return nil, fmt.Errorf("invalid question record: %w", err)
	}

	var rec question.Record
	if err := json.Unmarshal(raw, &rec); err != nil {
		return nil, fmt.Errorf("invalid question record: %w", err)
	}

	return &CheckAnswerResult{
		Correct:  quiz.IsCorrect(rec, req.Answer),
		Kind:     rec.Kind().String(),
		Expected: rec.Answer,
	}, nil
}
