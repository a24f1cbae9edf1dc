// Package diagnostic implements the onboarding questionnaire screen. It
// renders one question at a time from the diagnostic schedule and builds
// the candidate profile answer by answer.
package diagnostic

import (
	"fmt"
	"strings"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	diag "github.com/thanvish21/systemx/internal/diagnostic"
	"github.com/thanvish21/systemx/internal/profile"
	"github.com/thanvish21/systemx/internal/screen"
	"github.com/thanvish21/systemx/internal/ui/components"
	"github.com/thanvish21/systemx/internal/ui/layout"
	"github.com/thanvish21/systemx/internal/ui/theme"
)

// CompletedMsg is emitted when every scheduled question has been answered.
// The app model persists the profile and moves to the dashboard.
type CompletedMsg struct {
	Profile profile.Profile
}

// AbortedMsg is emitted when the candidate backs out of calibration.
type AbortedMsg struct{}

// DiagnosticScreen drives the question schedule.
type DiagnosticScreen struct {
	engine   *diag.Engine
	profile  profile.Profile
	index    int
	answered int

	input   components.TextInput
	options components.OptionList
}

var _ screen.Screen = (*DiagnosticScreen)(nil)
var _ screen.KeyHintProvider = (*DiagnosticScreen)(nil)

// New creates a DiagnosticScreen seeded with profile defaults so skipped
// conditional questions keep sensible values.
func New() *DiagnosticScreen {
	s := &DiagnosticScreen{
		engine:  diag.New(),
		profile: profile.Defaults(),
	}
	s.index = s.engine.First(s.profile)
	s.arm()
	return s
}

// arm prepares the input widget for the current question.
func (s *DiagnosticScreen) arm() {
	if s.index == diag.Complete {
		return
	}
	q := s.engine.Question(s.index)
	switch q.Kind {
	case diag.KindSelect:
		s.options = components.NewOptionList(q.Options)
	case diag.KindInteger:
		s.input = components.NewTextInput("Type a number", true, 8)
		s.input.SetValue(q.Default)
	default:
		s.input = components.NewTextInput("Type your answer", false, 64)
		s.input.SetValue(q.Default)
	}
}

func (s *DiagnosticScreen) Title() string {
	return "Calibration"
}

func (s *DiagnosticScreen) Init() tea.Cmd {
	if s.index != diag.Complete && s.engine.Question(s.index).Kind != diag.KindSelect {
		return s.input.Init()
	}
	return nil
}

func (s *DiagnosticScreen) KeyHints() []layout.KeyHint {
	hints := []layout.KeyHint{
		{Key: "Enter", Description: "Confirm"},
	}
	if s.index != diag.Complete && s.engine.Question(s.index).Kind == diag.KindSelect {
		hints = append(hints, layout.KeyHint{Key: "↑/↓", Description: "Select"})
	}
	hints = append(hints, layout.KeyHint{Key: "Esc", Description: "Abort"})
	return hints
}

func (s *DiagnosticScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	if s.index == diag.Complete {
		return s, nil
	}

	if key, ok := msg.(tea.KeyMsg); ok && key.String() == "esc" {
		return s, func() tea.Msg { return AbortedMsg{} }
	}

	q := s.engine.Question(s.index)

	if q.Kind == diag.KindSelect {
		var cmd tea.Cmd
		s.options, cmd = s.options.Update(msg)
		if answer, ok := s.options.Chosen(); ok {
			s.options.ResetChoice()
			return s, s.submit(answer)
		}
		return s, cmd
	}

	if key, ok := msg.(tea.KeyMsg); ok && key.String() == "enter" {
		return s, s.submit(s.input.Value())
	}

	var cmd tea.Cmd
	s.input, cmd = s.input.Update(msg)
	return s, cmd
}

// submit feeds the answer to the engine. Invalid input re-prompts in
// place; valid input advances, and exhausting the schedule emits
// CompletedMsg.
func (s *DiagnosticScreen) submit(answer string) tea.Cmd {
	next, updated, err := s.engine.Advance(s.index, s.profile, answer)
	if err != nil {
		s.input.Reject(rejectHint(err))
		return nil
	}

	s.profile = updated
	s.index = next
	s.answered++

	if s.index == diag.Complete {
		done := s.profile
		return func() tea.Msg { return CompletedMsg{Profile: done} }
	}

	s.arm()
	if s.engine.Question(s.index).Kind != diag.KindSelect {
		return s.input.Init()
	}
	return nil
}

func rejectHint(err error) string {
	switch err {
	case diag.ErrEmptyAnswer:
		return "Required. Type an answer."
	case diag.ErrNotANumber:
		return "Whole numbers only."
	default:
		return "Invalid answer."
	}
}

func (s *DiagnosticScreen) View(width, height int) string {
	if s.index == diag.Complete {
		return lipgloss.Place(width, height, lipgloss.Center, lipgloss.Center,
			theme.Subtitle.Render("Calibrating..."))
	}

	q := s.engine.Question(s.index)

	title := theme.Title.Render("SYSTEM CALIBRATION")
	counter := theme.Hint.Render(fmt.Sprintf("Question %d of %d", s.answered+1, s.engine.Len()))

	prompt := lipgloss.NewStyle().
		Foreground(theme.Text).
		Bold(true).
		Width(min(width-8, 60)).
		Render(q.Prompt)

	var body string
	if q.Kind == diag.KindSelect {
		body = s.options.View()
	} else {
		body = s.input.View()
	}

	bar := components.NewProgressBar("", float64(s.answered)/float64(s.engine.Len()), false, min(width-8, 60))

	card := theme.Card.Render(prompt + "\n\n" + body)

	content := strings.Join([]string{title, counter, "", card, "", bar.View()}, "\n")

	return lipgloss.Place(width, height, lipgloss.Center, lipgloss.Center, content)
}
