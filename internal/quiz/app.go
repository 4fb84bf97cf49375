package quiz

import (
	"fmt"
	"io"
	"math/rand/v2"
	"strconv"
	"strings"

	"github.com/a3tai/pdf-quiz/internal/logger"
	"github.com/a3tai/pdf-quiz/internal/question"
)

// AppConfig holds optional collaborators of an App
type AppConfig struct {
	Rand   *rand.Rand     // sample source; nil uses the global source
	Logger *logger.Logger // nil discards logs
}

// App runs the interactive flow: sample size prompt, main round, and an
// optional practice round over the missed questions
type App struct {
	path      string
	prompter  *Prompter
	presenter *Presenter
	rng       *rand.Rand
	log       *logger.Logger
}

// NewApp creates an app for the quiz file at path
func NewApp(path string, in io.Reader, out io.Writer, config ...AppConfig) *App {
	var cfg AppConfig
	if len(config) > 0 {
		cfg = config[0]
	}
	if cfg.Logger == nil {
		cfg.Logger = logger.Nop()
	}
	return &App{
		path:      path,
		prompter:  NewPrompter(in, out),
		presenter: NewPresenter(out),
		rng:       cfg.Rand,
		log:       cfg.Logger,
	}
}

// Run loads the quiz file and administers it. The returned result is the
// main round's.
func (a *App) Run() (*Result, error) {
	loaded, err := question.Load(a.path)
	if err != nil {
		return nil, err
	}
	a.log.Info("quiz file loaded", "path", a.path, "records", len(loaded.Records), "dropped", loaded.Dropped)
	if len(loaded.Records) == 0 {
		return nil, fmt.Errorf("no valid questions in %s", a.path)
	}

	count, err := a.askCount()
	if err != nil {
		return nil, err
	}

	sample := question.Sample(loaded.Records, count, a.rng)
	a.presenter.Message("\nStarting quiz with %d questions...\n", len(sample))

	result, err := NewSession(a.prompter, a.presenter, a.log).Run(sample)
	if err != nil {
		return result, err
	}

	if result.Perfect() {
		a.presenter.Message("Perfect score! You didn't miss any questions. 🎉")
		return result, nil
	}

	if err := a.offerPractice(result.Missed); err != nil {
		return result, err
	}
	return result, nil
}

// askCount prompts until a positive integer is entered
func (a *App) askCount() (int, error) {
	for {
		line, err := a.prompter.Ask("How many questions would you like to practice? ")
		if err != nil {
			return 0, fmt.Errorf("failed to read question count: %w", err)
		}

		n, err := strconv.Atoi(strings.TrimSpace(line))
		switch {
		case err != nil:
			a.presenter.Message("Please enter a valid number.")
		case n <= 0:
			a.presenter.Message("Please enter a positive number.")
		default:
			return n, nil
		}
	}
}

// offerPractice asks whether to replay the missed records and runs them
func (a *App) offerPractice(missed []question.Record) error {
	a.presenter.Message("\nYou missed %d question(s).", len(missed))

	reply, err := a.prompter.Ask("Would you like to practice your missed questions? (yes/no): ")
	if err != nil {
		return fmt.Errorf("failed to read practice reply: %w", err)
	}

	switch strings.ToLower(strings.TrimSpace(reply)) {
	case "yes", "y":
		a.presenter.Message("\nStarting practice session with %d question(s)...\n", len(missed))
		_, err := NewSession(a.prompter, a.presenter, a.log).Run(missed)
		return err
	default:
		a.presenter.Message("Quiz session complete. Good job!")
		return nil
	}
}
