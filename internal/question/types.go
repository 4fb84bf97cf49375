package question

import (
	"bytes"
	"encoding/json"
	"fmt"
)

// Kind identifies the shape of a question
type Kind int

const (
	// KindFillIn is a single free-text answer with no letter options
	KindFillIn Kind = iota
	// KindMultipleChoice has exactly four lettered options
	KindMultipleChoice
)

// String returns a string representation of the Kind
func (k Kind) String() string {
	switch k {
	case KindMultipleChoice:
		return "multiple_choice"
	case KindFillIn:
		return "fill_in"
	default:
		return "unknown"
	}
}

const (
	// OptionCount is the number of options a multiple-choice question carries
	OptionCount = 4

	// BlankSentinel is the persisted options value of a fill-in question
	BlankSentinel = " "
)

// Options holds either four choices or the fill-in blank. The zero value is
// the blank.
type Options struct {
	kind    Kind
	choices [OptionCount]string
}

// MultipleChoice returns options holding the given choices in order
func MultipleChoice(choices [OptionCount]string) Options {
	return Options{kind: KindMultipleChoice, choices: choices}
}

// FillInBlank returns the blank options value
func FillInBlank() Options {
	return Options{kind: KindFillIn}
}

// Kind reports which shape the options describe
func (o Options) Kind() Kind {
	return o.kind
}

// IsMultipleChoice reports whether the options hold four choices
func (o Options) IsMultipleChoice() bool {
	return o.kind == KindMultipleChoice
}

// Choices returns the four choices. ok is false for the blank.
func (o Options) Choices() (choices [OptionCount]string, ok bool) {
	if o.kind != KindMultipleChoice {
		return choices, false
	}
	return o.choices, true
}

// MarshalJSON writes a four element array or the blank sentinel string
func (o Options) MarshalJSON() ([]byte, error) {
	if o.kind == KindMultipleChoice {
		return json.Marshal(o.choices[:])
	}
	return json.Marshal(BlankSentinel)
}

// UnmarshalJSON accepts a four element string array or any string, which is
// read as the blank.
func (o *Options) UnmarshalJSON(data []byte) error {
	data = bytes.TrimSpace(data)
	if len(data) == 0 {
		return fmt.Errorf("options: empty value")
	}

	switch data[0] {
	case '[':
		var list []string
		if err := json.Unmarshal(data, &list); err != nil {
			return fmt.Errorf("options: %w", err)
		}
		if len(list) != OptionCount {
			return fmt.Errorf("options: expected %d choices, got %d", OptionCount, len(list))
		}
		var choices [OptionCount]string
		copy(choices[:], list)
		*o = MultipleChoice(choices)
		return nil
	case '"':
		var s string
		if err := json.Unmarshal(data, &s); err != nil {
			return fmt.Errorf("options: %w", err)
		}
		*o = FillInBlank()
		return nil
	default:
		return fmt.Errorf("options: expected array or string, got %s", string(data))
	}
}

// Record is one extracted question as persisted and consumed by the quiz
type Record struct {
	Question string  `json:"question"`
	Options  Options `json:"options"`
	Answer   string  `json:"answer"`
}

// Kind reports the question shape
func (r Record) Kind() Kind {
	return r.Options.Kind()
}

// IsMultipleChoice reports whether the record has four lettered options
func (r Record) IsMultipleChoice() bool {
	return r.Options.IsMultipleChoice()
}
