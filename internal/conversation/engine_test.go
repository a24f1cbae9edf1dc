package conversation

import (
	"strings"
	"testing"
)

func TestBlankSubmissionIsNoop(t *testing.T) {
	e := New()

	for _, raw := range []string{"", "   ", "\t\n"} {
		if _, ok := e.Begin(raw); ok {
			t.Errorf("Begin(%q) accepted blank input", raw)
		}
	}
	if len(e.Turns()) != 0 {
		t.Errorf("transcript has %d turns after blank submissions", len(e.Turns()))
	}
	if e.Awaiting() {
		t.Error("engine awaiting after blank submission")
	}
}

func TestSlideNormalization(t *testing.T) {
	for _, raw := range []string{"slide", "Slide", "SLIDE ", " sLiDe"} {
		e := New()
		req, ok := e.Begin(raw)
		if !ok {
			t.Fatalf("Begin(%q) rejected", raw)
		}
		turns := e.Turns()
		if len(turns) != 1 || turns[0].Text != "SLIDE" {
			t.Errorf("Begin(%q) transcript = %+v, want canonical SLIDE turn", raw, turns)
		}
		if !e.SlideMode() {
			t.Errorf("Begin(%q) did not enter slide mode", raw)
		}
		if !strings.HasSuffix(req.Message, "SLIDE") {
			t.Errorf("augmented message %q does not carry canonical SLIDE", req.Message)
		}
	}
}

func TestSlideModeIsSticky(t *testing.T) {
	e := New()
	e.Begin("slide")
	e.Complete("One PYQ for you.")
	e.Begin("my answer")
	e.Complete("Correct")

	if !e.SlideMode() {
		t.Error("slide mode dropped after later turns")
	}
}

func TestVerbatimTrimmedText(t *testing.T) {
	e := New()
	req, ok := e.Begin("  finished vectors today  ")
	if !ok {
		t.Fatal("submission rejected")
	}
	turns := e.Turns()
	if turns[0].Text != "finished vectors today" {
		t.Errorf("user turn = %q, want trimmed verbatim text", turns[0].Text)
	}
	if req.Message != "[Status: Regular College Day] finished vectors today" {
		t.Errorf("augmented message = %q", req.Message)
	}
}

func TestDayModeAugmentation(t *testing.T) {
	e := New()
	e.ToggleCollegeDay() // now self-study day

	req, ok := e.Begin("report")
	if !ok {
		t.Fatal("submission rejected")
	}
	if req.Message != "[Status: Holiday/Self Study Day] report" {
		t.Errorf("augmented message = %q", req.Message)
	}
}

func TestHistoryExcludesCurrentMessage(t *testing.T) {
	e := New()
	e.Begin("first")
	e.Complete("reply one")

	req, ok := e.Begin("second")
	if !ok {
		t.Fatal("submission rejected")
	}
	if len(req.History) != 2 {
		t.Fatalf("history length = %d, want 2", len(req.History))
	}
	if req.History[0].Text != "first" || req.History[1].Text != "reply one" {
		t.Errorf("history = %+v", req.History)
	}
	// The augmentation must not leak into the transcript.
	for _, turn := range e.Turns() {
		if strings.Contains(turn.Text, "[Status:") {
			t.Errorf("status prefix leaked into transcript: %q", turn.Text)
		}
	}
}

func TestSingleFlight(t *testing.T) {
	e := New()
	if _, ok := e.Begin("first"); !ok {
		t.Fatal("first submission rejected")
	}
	if !e.Awaiting() {
		t.Fatal("engine not awaiting after submission")
	}

	// Second submit during the in-flight window is ignored.
	if _, ok := e.Begin("second"); ok {
		t.Error("submission accepted while awaiting")
	}
	if len(e.Turns()) != 1 {
		t.Errorf("transcript has %d turns, want 1", len(e.Turns()))
	}

	e.Complete("reply")
	if e.Awaiting() {
		t.Error("engine still awaiting after Complete")
	}
	if _, ok := e.Begin("second"); !ok {
		t.Error("submission rejected after response arrived")
	}
}

func TestStrictOrdering(t *testing.T) {
	e := New()
	e.Begin("one")
	e.Complete("reply one")
	e.Begin("two")
	e.Complete("reply two")

	want := []Turn{
		{Role: RoleUser, Text: "one"},
		{Role: RoleAssistant, Text: "reply one"},
		{Role: RoleUser, Text: "two"},
		{Role: RoleAssistant, Text: "reply two"},
	}
	got := e.Turns()
	if len(got) != len(want) {
		t.Fatalf("transcript length = %d, want %d", len(got), len(want))
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("turn %d = %+v, want %+v", i, got[i], want[i])
		}
	}
}

func TestResetClearsSession(t *testing.T) {
	e := New()
	e.Begin("slide")
	e.Complete("q")
	e.ToggleCollegeDay()

	e.Reset()

	if len(e.Turns()) != 0 {
		t.Error("transcript survived reset")
	}
	if e.SlideMode() {
		t.Error("slide mode survived reset")
	}
	if e.Awaiting() {
		t.Error("awaiting flag survived reset")
	}
	if !e.CollegeDay() {
		t.Error("day mode not restored to default")
	}
}
