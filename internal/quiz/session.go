package quiz

import (
	"fmt"

	"github.com/google/uuid"

	"github.com/a3tai/pdf-quiz/internal/logger"
	"github.com/a3tai/pdf-quiz/internal/question"
)

// Result is the outcome of one pass over a list of records
type Result struct {
	ID     string            `json:"id"`
	Score  int               `json:"score"`
	Total  int               `json:"total"`
	Missed []question.Record `json:"missed"`
}

// Perfect reports whether nothing was missed
func (r *Result) Perfect() bool {
	return len(r.Missed) == 0
}

// Session presents records one at a time and keeps the score
type Session struct {
	prompter  *Prompter
	presenter *Presenter
	log       *logger.Logger
}

// NewSession creates a session. A nil log discards output.
func NewSession(prompter *Prompter, presenter *Presenter, log *logger.Logger) *Session {
	if log == nil {
		log = logger.Nop()
	}
	return &Session{prompter: prompter, presenter: presenter, log: log}
}

// Run asks every record in order and returns a fresh result; sessions never
// share score state. If input ends early the partial result is returned
// together with the read error.
func (s *Session) Run(records []question.Record) (*Result, error) {
	result := &Result{
		ID:     uuid.NewString(),
		Total:  len(records),
		Missed: []question.Record{},
	}
	log := s.log.With("session_id", result.ID)
	log.Debug("quiz session started", "questions", len(records))

	s.presenter.Intro()
	for i, rec := range records {
		s.presenter.Question(i+1, rec)

		answer, err := s.prompter.Ask("\nType in your answer: ")
		if err != nil {
			log.Warn("quiz session interrupted", "question", i+1, "error", err)
			return result, fmt.Errorf("failed to read answer for question %d: %w", i+1, err)
		}

		if IsCorrect(rec, answer) {
			s.presenter.Correct()
			result.Score++
		} else {
			s.presenter.Incorrect(rec.Answer)
			result.Missed = append(result.Missed, rec)
		}
		s.presenter.Separator()
	}
	s.presenter.FinalScore(result.Score, result.Total)

	log.Info("quiz session finished", "score", result.Score, "total", result.Total, "missed", len(result.Missed))
	return result, nil
}
