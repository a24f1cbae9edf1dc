// Package login implements the identity verification screen.
package login

import (
	"strings"
	"time"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/thanvish21/systemx/internal/screen"
	"github.com/thanvish21/systemx/internal/ui/components"
	"github.com/thanvish21/systemx/internal/ui/layout"
	"github.com/thanvish21/systemx/internal/ui/theme"
)

// verifyDelay is the short "verifying" beat before the identity is
// accepted. Cosmetic only.
const verifyDelay = 1200 * time.Millisecond

// SubmittedMsg is emitted when a codename has been entered and verified.
// The app model owns the session transition.
type SubmittedMsg struct {
	Codename string
}

type verifiedMsg struct{}

// LoginScreen collects the candidate codename.
type LoginScreen struct {
	input     components.TextInput
	verifying bool
	codename  string
}

var _ screen.Screen = (*LoginScreen)(nil)
var _ screen.KeyHintProvider = (*LoginScreen)(nil)

// New creates a LoginScreen.
func New() *LoginScreen {
	return &LoginScreen{
		input: components.NewTextInput("E.g. AIR_ONE_2025", false, 32),
	}
}

func (l *LoginScreen) Title() string {
	return "Identity Verification"
}

func (l *LoginScreen) Init() tea.Cmd {
	return l.input.Init()
}

func (l *LoginScreen) KeyHints() []layout.KeyHint {
	return []layout.KeyHint{
		{Key: "Enter", Description: "Initialize link"},
	}
}

func (l *LoginScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	switch msg := msg.(type) {
	case verifiedMsg:
		return l, func() tea.Msg {
			return SubmittedMsg{Codename: l.codename}
		}

	case tea.KeyMsg:
		if l.verifying {
			return l, nil
		}
		if msg.String() == "enter" {
			name := strings.TrimSpace(l.input.Value())
			if name == "" {
				return l, nil
			}
			l.codename = name
			l.verifying = true
			return l, tea.Tick(verifyDelay, func(time.Time) tea.Msg {
				return verifiedMsg{}
			})
		}
	}

	if l.verifying {
		return l, nil
	}

	var cmd tea.Cmd
	l.input, cmd = l.input.Update(msg)
	return l, cmd
}

func (l *LoginScreen) View(width, height int) string {
	title := lipgloss.NewStyle().
		Foreground(theme.Primary).
		Bold(true).
		Italic(true).
		Render("SYSTEM X")

	tagline := theme.Subtitle.Render("PERSONAL JEE COMBAT MENTOR")

	label := lipgloss.NewStyle().
		Foreground(theme.TextDim).
		Bold(true).
		Render("CANDIDATE CODENAME")

	body := l.input.View()
	if l.verifying {
		body = lipgloss.NewStyle().
			Foreground(theme.TextDim).
			Render("VERIFYING...")
	}

	card := theme.Card.Render(label + "\n\n" + body)

	hint := theme.Hint.Render("Direct mentor uplink only")

	content := strings.Join([]string{title, tagline, "", card, "", hint}, "\n")

	return lipgloss.Place(width, height, lipgloss.Center, lipgloss.Center, content)
}
