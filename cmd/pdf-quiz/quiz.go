package main

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/a3tai/pdf-quiz/internal/question"
	"github.com/a3tai/pdf-quiz/internal/quiz"
)

func newQuizCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "quiz [questions.json]",
		Short: "Practice the questions of a JSON question list",
		Args:  cobra.MaximumNArgs(1),
		RunE:  runQuiz,
	}
}

func runQuiz(cmd *cobra.Command, args []string) error {
	cfg, log, err := loadConfig(cmd)
	if err != nil {
		return err
	}
	defer log.Sync()

	path := cfg.QuizPath
	if len(args) > 0 {
		path = args[0]
	}

	if err := question.CheckPath(path); err != nil {
		if errors.Is(err, question.ErrNotJSON) || errors.Is(err, question.ErrNotFound) {
			return &quizFileError{path: path, err: err}
		}
		return err
	}

	out := cmd.OutOrStdout()
	fmt.Fprintf(out, "Loading quiz from: %s\n\n", path)

	app := quiz.NewApp(path, cmd.InOrStdin(), out, quiz.AppConfig{Logger: log})
	_, err = app.Run()
	return err
}

// quizFileError renders a rejected quiz path as the message shown to the user
type quizFileError struct {
	path string
	err  error
}

func (e *quizFileError) Error() string {
	if errors.Is(e.err, question.ErrNotJSON) {
		return "Quiz file must be a JSON file (.json extension)"
	}
	return fmt.Sprintf("Quiz file '%s' not found", e.path)
}

func (e *quizFileError) Unwrap() error {
	return e.err
}
