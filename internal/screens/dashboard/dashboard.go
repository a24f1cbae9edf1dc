// Package dashboard implements the main command center screen: the
// rolling study plan, the mentor uplink chat, and the account panel,
// switched by tabs.
package dashboard

import (
	"context"
	"time"

	tea "charm.land/bubbletea/v2"
	"github.com/google/uuid"

	"github.com/thanvish21/systemx/internal/conversation"
	"github.com/thanvish21/systemx/internal/llm"
	"github.com/thanvish21/systemx/internal/mentor"
	"github.com/thanvish21/systemx/internal/profile"
	"github.com/thanvish21/systemx/internal/screen"
	"github.com/thanvish21/systemx/internal/ui/components"
	"github.com/thanvish21/systemx/internal/ui/layout"
)

// Tab identifies one dashboard panel.
type Tab int

const (
	TabPlan Tab = iota
	TabMentor
	TabKillRate
	TabProfile

	tabCount
)

func (t Tab) label() string {
	switch t {
	case TabPlan:
		return "ROLLING PLAN"
	case TabMentor:
		return "MENTOR UPLINK"
	case TabKillRate:
		return "KILL RATE"
	case TabProfile:
		return "ACC DETAILS"
	default:
		return "?"
	}
}

var spinnerFrames = []string{"⠋", "⠙", "⠹", "⠸", "⠼", "⠴", "⠦", "⠧", "⠇", "⠏"}

// mentorTimeout bounds one uplink round-trip, on top of the per-request
// timeout the provider stack already applies.
const mentorTimeout = 90 * time.Second

// DashboardScreen is the post-calibration command center.
type DashboardScreen struct {
	profile profile.Profile
	adapter *mentor.Adapter
	conv    *conversation.Engine

	// sessionID tags provider requests for the request log. One ID per
	// dashboard lifetime.
	sessionID string

	tab          Tab
	input        components.TextInput
	spinnerFrame int
}

var _ screen.Screen = (*DashboardScreen)(nil)
var _ screen.KeyHintProvider = (*DashboardScreen)(nil)

// New creates a DashboardScreen for the given candidate. adapter must be
// non-nil; a degraded adapter (no provider) simply answers with the
// recovery line.
func New(p profile.Profile, adapter *mentor.Adapter) *DashboardScreen {
	return &DashboardScreen{
		profile:   p,
		adapter:   adapter,
		conv:      conversation.New(),
		sessionID: uuid.New().String(),
		tab:       TabPlan,
		input:     components.NewTextInput("Report status or type SLIDE...", false, 400),
	}
}

func (d *DashboardScreen) Title() string {
	return "Command Center"
}

// CollegeDay exposes the current day mode for the header.
func (d *DashboardScreen) CollegeDay() bool {
	return d.conv.CollegeDay()
}

func (d *DashboardScreen) Init() tea.Cmd {
	return d.input.Init()
}

func (d *DashboardScreen) KeyHints() []layout.KeyHint {
	hints := []layout.KeyHint{
		{Key: "Tab", Description: "Switch panel"},
	}
	if d.tab == TabMentor {
		hints = append(hints, layout.KeyHint{Key: "Enter", Description: "Transmit"})
	}
	hints = append(hints,
		layout.KeyHint{Key: "Ctrl+T", Description: "Toggle day mode"},
		layout.KeyHint{Key: "Ctrl+L", Description: "Logout"},
	)
	return hints
}

func (d *DashboardScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	switch msg := msg.(type) {
	case mentorReplyMsg:
		d.conv.Complete(msg.Text)
		return d, nil

	case spinnerTickMsg:
		if !d.conv.Awaiting() {
			return d, nil
		}
		d.spinnerFrame = (d.spinnerFrame + 1) % len(spinnerFrames)
		return d, spinnerTick()

	case tea.KeyMsg:
		switch msg.String() {
		case "tab":
			d.tab = (d.tab + 1) % tabCount
			return d, nil
		case "shift+tab":
			d.tab = (d.tab + tabCount - 1) % tabCount
			return d, nil
		case "ctrl+t":
			d.conv.ToggleCollegeDay()
			return d, nil
		case "ctrl+l":
			return d, func() tea.Msg { return LogoutMsg{} }
		case "enter":
			if d.tab == TabMentor {
				return d, d.transmit()
			}
			return d, nil
		}

		if d.tab == TabMentor && !d.conv.Awaiting() {
			var cmd tea.Cmd
			d.input, cmd = d.input.Update(msg)
			return d, cmd
		}
		return d, nil
	}

	var cmd tea.Cmd
	d.input, cmd = d.input.Update(msg)
	return d, cmd
}

// transmit submits the composed message to the mentor. Blank input and
// in-flight submissions are no-ops.
func (d *DashboardScreen) transmit() tea.Cmd {
	req, ok := d.conv.Begin(d.input.Value())
	if !ok {
		return nil
	}
	d.input.Clear()
	if d.conv.SlideMode() {
		d.input.SetPlaceholder("Slide mode active. Log light tasks only...")
	}

	adapter := d.adapter
	p := d.profile
	sessionID := d.sessionID

	call := func() tea.Msg {
		ctx, cancel := context.WithTimeout(context.Background(), mentorTimeout)
		defer cancel()
		ctx = llm.WithSession(ctx, sessionID)
		return mentorReplyMsg{Text: adapter.Respond(ctx, p, req.History, req.Message)}
	}
	return tea.Batch(call, spinnerTick())
}

func spinnerTick() tea.Cmd {
	return tea.Tick(100*time.Millisecond, func(t time.Time) tea.Msg {
		return spinnerTickMsg(t)
	})
}
