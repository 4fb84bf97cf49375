package extract

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/a3tai/pdf-quiz/internal/question"
)

func TestBuilder_Build(t *testing.T) {
	tests := []struct {
		name  string
		block string
		want  question.Record
	}{
		{
			name:  "multiple choice",
			block: logicBlock,
			want: question.Record{
				Question: "Who introduced logic?",
				Options:  question.MultipleChoice([4]string{"a. Aristotle", "b. Plato", "c. Socrates", "d. Kant"}),
				Answer:   "a. Aristotle",
			},
		},
		{
			name:  "fill in the blank",
			block: "5. The capital of France is\na. Paris",
			want: question.Record{
				Question: "The capital of France is",
				Options:  question.FillInBlank(),
				Answer:   "Paris",
			},
		},
		{
			name:  "fill in without a space after the letter",
			block: "5. The capital of France is\na.Paris",
			want: question.Record{
				Question: "The capital of France is",
				Options:  question.FillInBlank(),
				Answer:   "Paris",
			},
		},
		{
			name:  "fill in with uppercase letter and trailing newline",
			block: "6. Father of medicine\nA. Hippocrates\n",
			want: question.Record{
				Question: "Father of medicine",
				Options:  question.FillInBlank(),
				Answer:   "Hippocrates",
			},
		},
		{
			name:  "marker separated by a space",
			block: "2. Who wrote the Republic?\na. Aristotle\nb. Plato +++\nc. Socrates\nd. Kant\n",
			want: question.Record{
				Question: "Who wrote the Republic?",
				Options:  question.MultipleChoice([4]string{"a. Aristotle", "b. Plato", "c. Socrates", "d. Kant"}),
				Answer:   "b. Plato",
			},
		},
		{
			name:  "only the literal suffix is stripped",
			block: "3. Which language?\na. C+\nb. Go+++\nc. C++\nd. Ada",
			want: question.Record{
				Question: "Which language?",
				Options:  question.MultipleChoice([4]string{"a. C+", "b. Go", "c. C++", "d. Ada"}),
				Answer:   "b. Go",
			},
		},
		{
			name:  "ordinal without space",
			block: "44.Who?\na. Me",
			want:  question.Record{Question: "Who?", Options: question.FillInBlank(), Answer: "Me"},
		},
		{
			name:  "wrapped question keeps its line break",
			block: "7. A question that\nwraps here?\na. Yes+++\nb. No\nc. Maybe\nd. Never",
			want: question.Record{
				Question: "A question that\nwraps here?",
				Options:  question.MultipleChoice([4]string{"a. Yes", "b. No", "c. Maybe", "d. Never"}),
				Answer:   "a. Yes",
			},
		},
	}

	b := NewBuilder(DefaultMarker)
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := b.Build(tt.block)
			require.True(t, got.OK(), "unexpected rejection: %s", got.Reason)
			assert.Equal(t, tt.want, got.Record)
		})
	}
}

func TestBuilder_Rejections(t *testing.T) {
	tests := []struct {
		name  string
		block string
		want  RejectReason
	}{
		{name: "no option a", block: "4. Question\nb. x\nc. y", want: ReasonSplitFailed},
		{name: "two option a lines", block: "4. Question\na. x\nA. y", want: ReasonSplitFailed},
		{name: "two options", block: "4. Question\na. x+++\nb. y", want: ReasonOptionCount},
		{name: "three options", block: "4. Question\na. x\nb. y+++\nc. z\n", want: ReasonOptionCount},
		{name: "no marker", block: "4. Question\na. w\nb. x\nc. y\nd. z", want: ReasonNoMarker},
		{name: "two markers", block: "4. Question\na. w+++\nb. x\nc. y+++\nd. z", want: ReasonMultipleMarkers},
	}

	b := NewBuilder("")
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := b.Build(tt.block)
			assert.False(t, got.OK())
			assert.Equal(t, tt.want, got.Reason)
			assert.Equal(t, question.Record{}, got.Record)
		})
	}
}

func TestBuilder_MultipleChoiceInvariants(t *testing.T) {
	blocks := []string{
		logicBlock,
		"1. Q\na. w\nb. x+++\nc. y\nd. z",
		"1. Q\nA. w\nB. x\nC. y\nD. z +++\n",
	}

	b := NewBuilder(DefaultMarker)
	for _, block := range blocks {
		got := b.Build(block)
		require.True(t, got.OK())

		choices, ok := got.Record.Options.Choices()
		require.True(t, ok)

		matches := 0
		for _, c := range choices {
			assert.NotContains(t, c, DefaultMarker)
			if c == got.Record.Answer {
				matches++
			}
		}
		assert.Equal(t, 1, matches)
	}
}

func TestBuilder_Idempotent(t *testing.T) {
	b := NewBuilder(DefaultMarker)
	for _, block := range []string{logicBlock, "5. The capital of France is\na. Paris", "4. Q\na. w\nb. x"} {
		assert.Equal(t, b.Build(block), b.Build(block))
	}
}

func TestBuilder_CustomMarker(t *testing.T) {
	b := NewBuilder("**")
	assert.Equal(t, "**", b.Marker())

	got := b.Build("8. Pick\na. one\nb. two**\nc. three+++\nd. four")
	require.True(t, got.OK())
	assert.Equal(t, "b. two", got.Record.Answer)

	choices, _ := got.Record.Options.Choices()
	assert.Equal(t, "c. three+++", choices[2])
}
