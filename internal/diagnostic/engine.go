// Package diagnostic implements the onboarding questionnaire: an ordered
// list of question specifications with conditional visibility, applied to a
// profile one answer at a time. The engine knows nothing about rendering.
package diagnostic

import (
	"errors"
	"strconv"
	"strings"

	"github.com/thanvish21/systemx/internal/profile"
)

// Kind discriminates how a question collects its answer.
type Kind int

const (
	// KindSelect offers enumerated options; the answer is one of them.
	KindSelect Kind = iota
	// KindText accepts free text; blank input is rejected.
	KindText
	// KindInteger accepts a whole number; blank or unparseable input is rejected.
	KindInteger
)

// Complete is the index returned by Advance when the schedule is exhausted.
const Complete = -1

var (
	// ErrEmptyAnswer is returned when a text or integer question receives
	// blank input. The caller re-prompts; no state changes.
	ErrEmptyAnswer = errors.New("answer must not be empty")

	// ErrNotANumber is returned when an integer question receives input
	// that does not parse. The caller re-prompts; no state changes.
	ErrNotANumber = errors.New("answer must be a whole number")

	// ErrUnknownOption is returned when a select question receives an
	// answer outside its option list.
	ErrUnknownOption = errors.New("answer is not one of the options")
)

// Question is one entry in the diagnostic schedule. The setter carries the
// field typing so answers never go through dynamic field assignment.
type Question struct {
	Prompt  string
	Kind    Kind
	Options []string
	Default string

	// Visible gates the question on answers given so far. nil means
	// always asked.
	Visible func(profile.Profile) bool

	set func(*profile.Profile, string) error
}

// Engine walks an ordered question schedule.
type Engine struct {
	questions []Question
}

// New creates an Engine over the standard schedule.
func New() *Engine {
	return &Engine{questions: Schedule()}
}

// Len returns the number of questions in the schedule.
func (e *Engine) Len() int {
	return len(e.questions)
}

// Question returns the question at index i.
func (e *Engine) Question(i int) Question {
	return e.questions[i]
}

// First returns the index of the first visible question for the given
// profile seed.
func (e *Engine) First(p profile.Profile) int {
	return e.nextVisible(0, p)
}

// Advance applies answer to the question at current and scans forward for
// the next visible question, evaluating visibility against the cumulative,
// already-updated profile. It returns the next index (or Complete) and the
// updated profile. On invalid input the profile and position are unchanged
// and the caller re-prompts.
func (e *Engine) Advance(current int, p profile.Profile, answer string) (int, profile.Profile, error) {
	if current < 0 || current >= len(e.questions) {
		return current, p, errors.New("question index out of range")
	}

	q := e.questions[current]
	updated := p
	if err := q.apply(&updated, answer); err != nil {
		return current, p, err
	}

	next := e.nextVisible(current+1, updated)
	return next, updated, nil
}

// nextVisible scans forward from i and returns the first question visible
// against p, or Complete when the schedule is exhausted.
func (e *Engine) nextVisible(i int, p profile.Profile) int {
	for ; i < len(e.questions); i++ {
		q := e.questions[i]
		if q.Visible == nil || q.Visible(p) {
			return i
		}
	}
	return Complete
}

// apply validates the raw answer against the question kind and runs the
// typed setter.
func (q Question) apply(p *profile.Profile, raw string) error {
	answer := strings.TrimSpace(raw)

	switch q.Kind {
	case KindSelect:
		if !q.hasOption(answer) {
			return ErrUnknownOption
		}
	case KindText:
		if answer == "" {
			return ErrEmptyAnswer
		}
	case KindInteger:
		if answer == "" {
			return ErrEmptyAnswer
		}
		if _, err := strconv.Atoi(answer); err != nil {
			return ErrNotANumber
		}
	}

	return q.set(p, answer)
}

func (q Question) hasOption(answer string) bool {
	for _, opt := range q.Options {
		if opt == answer {
			return true
		}
	}
	return false
}
