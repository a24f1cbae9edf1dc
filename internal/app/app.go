// Package app wires the session controller, the mentor adapter, and the
// screen router into the root Bubble Tea model.
package app

import (
	"context"
	"fmt"
	"os"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/thanvish21/systemx/internal/mentor"
	"github.com/thanvish21/systemx/internal/router"
	"github.com/thanvish21/systemx/internal/screen"
	"github.com/thanvish21/systemx/internal/screens/dashboard"
	"github.com/thanvish21/systemx/internal/screens/diagnostic"
	"github.com/thanvish21/systemx/internal/screens/login"
	"github.com/thanvish21/systemx/internal/session"
	"github.com/thanvish21/systemx/internal/ui/layout"
	"github.com/thanvish21/systemx/internal/ui/theme"
)

// AppModel is the root Bubble Tea model. Session transitions (login,
// calibration complete, logout) are handled here; everything else is
// forwarded to the active screen.
type AppModel struct {
	ctrl    *session.Controller
	adapter *mentor.Adapter
	router  *router.Router

	width  int
	height int

	// notice is a one-shot error line shown above the footer. Cleared on
	// the next keypress.
	notice string
}

// newAppModel creates the root model. Every run starts at the login
// screen; a persisted profile is picked up when its codename is entered.
func newAppModel(ctrl *session.Controller, adapter *mentor.Adapter) AppModel {
	return AppModel{
		ctrl:    ctrl,
		adapter: adapter,
		router:  router.New(login.New()),
	}
}

func (m AppModel) Init() tea.Cmd {
	return m.router.Active().Init()
}

func (m AppModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		return m, nil

	case login.SubmittedMsg:
		phase, err := m.ctrl.Login(context.Background(), msg.Codename)
		if err != nil {
			m.notice = fmt.Sprintf("Login failed: %v", err)
			return m, m.router.Replace(login.New())
		}
		return m, m.enter(phase)

	case diagnostic.CompletedMsg:
		phase, err := m.ctrl.CompleteDiagnostic(context.Background(), msg.Profile)
		if err != nil {
			m.notice = fmt.Sprintf("Could not save profile: %v", err)
			return m, m.router.Replace(login.New())
		}
		return m, m.enter(phase)

	case diagnostic.AbortedMsg:
		return m, m.logout()

	case dashboard.LogoutMsg:
		return m, m.logout()

	case tea.KeyMsg:
		m.notice = ""
		if msg.String() == "ctrl+c" {
			return m, tea.Quit
		}
	}

	cmd := m.router.Update(msg)
	return m, cmd
}

// enter replaces the active screen with the one matching the session
// phase.
func (m *AppModel) enter(phase session.Phase) tea.Cmd {
	switch phase {
	case session.Active:
		state := m.ctrl.Snapshot()
		return m.router.Replace(dashboard.New(*state.Profile, m.adapter))
	case session.Onboarding:
		return m.router.Replace(diagnostic.New())
	default:
		return m.router.Replace(login.New())
	}
}

func (m *AppModel) logout() tea.Cmd {
	if _, err := m.ctrl.Logout(context.Background()); err != nil {
		m.notice = fmt.Sprintf("Logout incomplete: %v", err)
	}
	return m.router.Replace(login.New())
}

func (m AppModel) View() tea.View {
	v := tea.NewView("")
	v.AltScreen = true

	if m.width == 0 || m.height == 0 {
		return v
	}

	if layout.IsTooSmall(m.width, m.height) {
		v.SetContent(layout.RenderMinSizeMessage(m.width, m.height))
		return v
	}

	active := m.router.Active()
	title := ""
	if active != nil {
		title = active.Title()
	}

	state := m.ctrl.Snapshot()
	codename := state.Identity

	dayMode := ""
	if d, ok := active.(*dashboard.DashboardScreen); ok {
		if d.CollegeDay() {
			dayMode = "COLLEGE DAY"
		} else {
			dayMode = "SELF STUDY"
		}
	}

	header := layout.RenderHeader(title, codename, dayMode, m.width)

	footerHints := []layout.KeyHint{
		{Key: "Ctrl+C", Description: "Quit"},
	}
	if hinted, ok := active.(screen.KeyHintProvider); ok {
		footerHints = append(hinted.KeyHints(), footerHints...)
	}
	footer := layout.RenderFooter(footerHints, m.width)

	headerHeight := lipgloss.Height(header)
	footerHeight := lipgloss.Height(footer)
	contentHeight := m.height - headerHeight - footerHeight
	if contentHeight < 0 {
		contentHeight = 0
	}

	content := m.router.View(m.width, contentHeight)

	if m.notice != "" {
		noticeLine := lipgloss.NewStyle().Foreground(theme.Error).Render("  " + m.notice)
		lines := contentHeight - lipgloss.Height(noticeLine)
		content = lipgloss.NewStyle().Height(max(lines, 0)).Render(content) + "\n" + noticeLine
	}

	frame := layout.RenderFrame(header, content, footer, m.width, m.height)

	v.SetContent(frame)
	return v
}

// Run starts the Bubble Tea program.
func Run(ctrl *session.Controller, adapter *mentor.Adapter) error {
	p := tea.NewProgram(newAppModel(ctrl, adapter))
	if _, err := p.Run(); err != nil {
		fmt.Fprintln(os.Stderr, "Error running program:", err)
		return err
	}
	return nil
}
