package quiz

import (
	"bytes"
	"errors"
	"io"
	"math/rand/v2"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/a3tai/pdf-quiz/internal/question"
)

var (
	logic = question.Record{
		Question: "Who introduced logic?",
		Options:  question.MultipleChoice([4]string{"a. Aristotle", "b. Plato", "c. Socrates", "d. Kant"}),
		Answer:   "a. Aristotle",
	}
	method = question.Record{
		Question: "The method of questioning is called",
		Options:  question.FillInBlank(),
		Answer:   "Socratic",
	}
)

func TestIsCorrect(t *testing.T) {
	tests := []struct {
		name      string
		record    question.Record
		submitted string
		want      bool
	}{
		{name: "letter upper case", record: logic, submitted: "A", want: true},
		{name: "letter lower case", record: logic, submitted: "a", want: true},
		{name: "full option text", record: logic, submitted: "a. Aristotle", want: true},
		{name: "leading space", record: logic, submitted: "  a", want: false},
		{name: "wrong letter", record: logic, submitted: "b", want: false},
		{name: "empty multiple choice", record: logic, submitted: "", want: false},
		{name: "fill in padded", record: method, submitted: " socratic ", want: true},
		{name: "fill in inner spaces", record: method, submitted: "SOC ratic", want: true},
		{name: "fill in wrong", record: method, submitted: "Platonic", want: false},
		{name: "fill in empty", record: method, submitted: "", want: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, IsCorrect(tt.record, tt.submitted))
		})
	}
}

func TestPrompter_Ask(t *testing.T) {
	var out bytes.Buffer
	p := NewPrompter(strings.NewReader("first\r\nlast"), &out)

	got, err := p.Ask("> ")
	require.NoError(t, err)
	assert.Equal(t, "first", got)

	got, err = p.Ask("> ")
	require.NoError(t, err)
	assert.Equal(t, "last", got)

	_, err = p.Ask("> ")
	assert.ErrorIs(t, err, io.EOF)
	assert.Equal(t, "> > > ", out.String())
}

func newTestSession(input string) (*Session, *bytes.Buffer) {
	var out bytes.Buffer
	return NewSession(NewPrompter(strings.NewReader(input), &out), NewPresenter(&out), nil), &out
}

func TestSession_Run(t *testing.T) {
	s, out := newTestSession("b\n socratic \n")

	result, err := s.Run([]question.Record{logic, method})
	require.NoError(t, err)

	assert.NotEmpty(t, result.ID)
	assert.Equal(t, 1, result.Score)
	assert.Equal(t, 2, result.Total)
	assert.Equal(t, []question.Record{logic}, result.Missed)
	assert.False(t, result.Perfect())

	text := out.String()
	assert.Contains(t, text, "Question number 1\nWho introduced logic?\n\na. Aristotle\nb. Plato\nc. Socrates\nd. Kant\n")
	assert.Contains(t, text, "Incorrect. The correct answer is: a. Aristotle")
	assert.Contains(t, text, "Question number 2\nThe method of questioning is called\n\nType in your answer: ")
	assert.Contains(t, text, "Correct!")
	assert.Contains(t, text, strings.Repeat("=", 50))
	assert.Contains(t, text, "FINAL SCORE: 1/2")
}

func TestSession_RunIsolatedScores(t *testing.T) {
	s, _ := newTestSession("b\nx\nA\nsocratic\n")

	first, err := s.Run([]question.Record{logic, method})
	require.NoError(t, err)
	assert.Equal(t, 0, first.Score)
	require.Len(t, first.Missed, 2)

	replay, err := s.Run(first.Missed)
	require.NoError(t, err)
	assert.Equal(t, 2, replay.Score)
	assert.True(t, replay.Perfect())
	assert.NotEqual(t, first.ID, replay.ID)
}

func TestSession_RunInputEnds(t *testing.T) {
	s, _ := newTestSession("a\n")

	result, err := s.Run([]question.Record{logic, method})
	require.Error(t, err)
	assert.True(t, errors.Is(err, io.EOF))
	require.NotNil(t, result)
	assert.Equal(t, 1, result.Score)
}

func writeQuiz(t *testing.T, records ...question.Record) string {
	t.Helper()
	entries := make([]*question.Record, 0, len(records)+1)
	for i := range records {
		entries = append(entries, &records[i])
	}
	entries = append(entries, nil)

	path := filepath.Join(t.TempDir(), "quiz.json")
	require.NoError(t, question.Save(path, entries))
	return path
}

func TestApp_Run(t *testing.T) {
	founder := question.Record{
		Question: "The founder of the Lyceum was",
		Options:  question.FillInBlank(),
		Answer:   "Aristotle",
	}
	path := writeQuiz(t, logic, founder)

	t.Run("reprompts count then practices missed", func(t *testing.T) {
		var out bytes.Buffer
		in := strings.NewReader("ten\n0\n2\nz\nz\nyes\naristotle\naristotle\n")
		app := NewApp(path, in, &out, AppConfig{Rand: rand.New(rand.NewPCG(7, 7))})

		result, err := app.Run()
		require.NoError(t, err)
		assert.Equal(t, 0, result.Score)
		assert.Len(t, result.Missed, 2)

		text := out.String()
		assert.Contains(t, text, "Please enter a valid number.")
		assert.Contains(t, text, "Please enter a positive number.")
		assert.Contains(t, text, "Starting quiz with 2 questions...")
		assert.Contains(t, text, "You missed 2 question(s).")
		assert.Contains(t, text, "Starting practice session with 2 question(s)...")
		assert.Contains(t, text, "FINAL SCORE: 0/2")
		assert.Contains(t, text, "FINAL SCORE: 2/2")
	})

	t.Run("declines practice", func(t *testing.T) {
		var out bytes.Buffer
		in := strings.NewReader("1\nwrong-for-both\nno\n")
		result, err := NewApp(path, in, &out).Run()
		require.NoError(t, err)
		assert.Equal(t, 1, result.Total)
		assert.Contains(t, out.String(), "Quiz session complete. Good job!")
	})

	t.Run("perfect score skips the offer", func(t *testing.T) {
		onlyLogic := writeQuiz(t, logic)
		var out bytes.Buffer
		result, err := NewApp(onlyLogic, strings.NewReader("5\nA\n"), &out).Run()
		require.NoError(t, err)
		assert.True(t, result.Perfect())
		assert.Contains(t, out.String(), "Starting quiz with 1 questions...")
		assert.Contains(t, out.String(), "Perfect score!")
		assert.NotContains(t, out.String(), "practice your missed")
	})
}

func TestApp_RunErrors(t *testing.T) {
	dir := t.TempDir()

	_, err := NewApp(filepath.Join(dir, "quiz.txt"), strings.NewReader(""), io.Discard).Run()
	assert.ErrorIs(t, err, question.ErrNotJSON)

	_, err = NewApp(filepath.Join(dir, "missing.json"), strings.NewReader(""), io.Discard).Run()
	assert.ErrorIs(t, err, question.ErrNotFound)

	empty := filepath.Join(dir, "empty.json")
	require.NoError(t, question.Save(empty, []*question.Record{nil, nil}))
	_, err = NewApp(empty, strings.NewReader("3\n"), io.Discard).Run()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "no valid questions")

	_, err = NewApp(writeQuiz(t, logic), strings.NewReader("abc\n"), io.Discard).Run()
	assert.ErrorIs(t, err, io.EOF)
}
