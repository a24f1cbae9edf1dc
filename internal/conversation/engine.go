// Package conversation maintains the in-memory chat transcript for the
// active session: append-only turns, SLIDE normalization, day-mode
// augmentation, and the single-flight submit guard.
package conversation

import "strings"

// Role identifies the author of a transcript turn.
type Role string

const (
	RoleUser      Role = "user"
	RoleAssistant Role = "assistant"
)

// Turn is one entry in the ordered transcript.
type Turn struct {
	Role Role
	Text string
}

// SlideWord is the control word that enters Slide Mode. Matching is
// case-insensitive on trimmed input; the transcript entry is always the
// canonical form.
const SlideWord = "SLIDE"

// Status prefixes injected ahead of every outgoing message so the mentor
// knows the current day mode without being asked.
const (
	statusCollegeDay = "[Status: Regular College Day] "
	statusSelfStudy  = "[Status: Holiday/Self Study Day] "
)

// Request is the outbound payload produced by a successful Begin: the
// transcript as it stood before this submission, plus the augmented text.
type Request struct {
	History []Turn
	Message string
}

// Engine owns one session's transcript. It is not safe for concurrent use;
// the UI event loop is the only caller.
type Engine struct {
	turns      []Turn
	awaiting   bool
	slideMode  bool
	collegeDay bool
}

// New creates an Engine. Sessions start in college-day mode, matching the
// dashboard toggle's initial state.
func New() *Engine {
	return &Engine{collegeDay: true}
}

// Turns returns a copy of the transcript in strict chronological order.
func (e *Engine) Turns() []Turn {
	out := make([]Turn, len(e.turns))
	copy(out, e.turns)
	return out
}

// Awaiting reports whether a submission is in flight. The input is locked
// while true.
func (e *Engine) Awaiting() bool {
	return e.awaiting
}

// SlideMode reports whether the session has entered Slide Mode. Sticky for
// the remainder of the session; affects presentation only.
func (e *Engine) SlideMode() bool {
	return e.slideMode
}

// CollegeDay reports the current day-mode flag.
func (e *Engine) CollegeDay() bool {
	return e.collegeDay
}

// ToggleCollegeDay flips the day mode. Session-scoped, independent of the
// profile.
func (e *Engine) ToggleCollegeDay() {
	e.collegeDay = !e.collegeDay
}

// Begin validates and records an outgoing message. Blank input and
// submissions while awaiting are rejected as no-ops. On success the user
// turn is appended, the engine is marked awaiting, and the returned Request
// carries the prior transcript (excluding the just-appended turn) and the
// day-mode-augmented text for the mentor service.
func (e *Engine) Begin(raw string) (Request, bool) {
	if e.awaiting {
		return Request{}, false
	}

	msg := strings.TrimSpace(raw)
	if msg == "" {
		return Request{}, false
	}

	if strings.EqualFold(msg, SlideWord) {
		e.slideMode = true
		msg = SlideWord
	}

	history := e.Turns()
	e.turns = append(e.turns, Turn{Role: RoleUser, Text: msg})
	e.awaiting = true

	status := statusSelfStudy
	if e.collegeDay {
		status = statusCollegeDay
	}

	return Request{
		History: history,
		Message: status + msg,
	}, true
}

// Complete appends the assistant's response verbatim and unlocks the input.
func (e *Engine) Complete(text string) {
	e.turns = append(e.turns, Turn{Role: RoleAssistant, Text: text})
	e.awaiting = false
}

// Reset clears the transcript and all session flags. Called on logout.
func (e *Engine) Reset() {
	e.turns = nil
	e.awaiting = false
	e.slideMode = false
	e.collegeDay = true
}
