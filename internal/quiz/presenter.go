package quiz

import (
	"fmt"
	"io"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/a3tai/pdf-quiz/internal/question"
)

const separatorWidth = 50

// Presenter renders quiz screens as plain lines. Styling is applied only
// when out is a color-capable terminal.
type Presenter struct {
	out       io.Writer
	separator string
	heading   lipgloss.Style
	correct   lipgloss.Style
	incorrect lipgloss.Style
	score     lipgloss.Style
}

// NewPresenter creates a presenter writing to out
func NewPresenter(out io.Writer) *Presenter {
	r := lipgloss.NewRenderer(out)
	return &Presenter{
		out:       out,
		separator: strings.Repeat("=", separatorWidth),
		heading:   r.NewStyle().Bold(true),
		correct:   r.NewStyle().Foreground(lipgloss.Color("2")),
		incorrect: r.NewStyle().Foreground(lipgloss.Color("1")),
		score:     r.NewStyle().Bold(true).Foreground(lipgloss.Color("6")),
	}
}

func (p *Presenter) printf(format string, args ...any) {
	fmt.Fprintf(p.out, format, args...)
}

// Intro explains that feedback is immediate
func (p *Presenter) Intro() {
	p.printf("Result to each question shows immediately after you answer it.\n\n")
}

// Question shows the numbered prompt and, for multiple choice, its options
func (p *Presenter) Question(num int, rec question.Record) {
	p.printf("%s\n", p.heading.Render(fmt.Sprintf("Question number %d", num)))
	p.printf("%s\n", rec.Question)
	if choices, ok := rec.Options.Choices(); ok {
		p.printf("\n%s\n", strings.Join(choices[:], "\n"))
	}
}

// Correct acknowledges a right answer
func (p *Presenter) Correct() {
	p.printf("%s\n\n", p.correct.Render("Correct!"))
}

// Incorrect shows the stored answer text
func (p *Presenter) Incorrect(answer string) {
	p.printf("%s\n", p.incorrect.Render("Incorrect. The correct answer is: "+answer))
}

// Separator draws the rule between questions
func (p *Presenter) Separator() {
	p.printf("%s\n", p.separator)
}

// FinalScore prints the score banner
func (p *Presenter) FinalScore(score, total int) {
	p.printf("\n%s\n", p.separator)
	p.printf("%s\n", p.score.Render(fmt.Sprintf("FINAL SCORE: %d/%d", score, total)))
	p.printf("%s\n\n", p.separator)
}

// Message prints one line of free text
func (p *Presenter) Message(format string, args ...any) {
	p.printf(format+"\n", args...)
}
