package theme

import (
	"charm.land/lipgloss/v2"
)

// Color palette — combat-console dark: red accents on deep slate
var (
	Primary   = lipgloss.Color("#DC2626") // Red
	Secondary = lipgloss.Color("#F97316") // Orange
	Accent    = lipgloss.Color("#FACC15") // Amber
	Success   = lipgloss.Color("#22C55E") // Green
	Error     = lipgloss.Color("#F43F5E") // Rose
	Text      = lipgloss.Color("#E2E8F0") // Slate 200
	TextDim   = lipgloss.Color("#64748B") // Slate 500
	BgDark    = lipgloss.Color("#020617") // Slate 950
	BgCard    = lipgloss.Color("#0F172A") // Slate 900
	Border    = lipgloss.Color("#334155") // Slate 700
)

// Typography
var (
	Title = lipgloss.NewStyle().
		Bold(true).
		Foreground(Primary).
		Align(lipgloss.Center)

	Subtitle = lipgloss.NewStyle().
			Foreground(TextDim).
			Align(lipgloss.Center)

	Body = lipgloss.NewStyle().
		Foreground(Text)

	Hint = lipgloss.NewStyle().
		Foreground(TextDim).
		Italic(true)
)

// Layout
var (
	Header = lipgloss.NewStyle().
		Background(BgCard).
		Padding(0, 2)

	Footer = lipgloss.NewStyle().
		Background(BgCard).
		Padding(0, 2)

	Card = lipgloss.NewStyle().
		Background(BgCard).
		Border(lipgloss.RoundedBorder()).
		BorderForeground(Border).
		Padding(1, 2)
)

// States
var (
	Selected = lipgloss.NewStyle().
			Foreground(Primary).
			Bold(true)

	Unselected = lipgloss.NewStyle().
			Foreground(Text)
)

// Chat roles
var (
	UserTurn = lipgloss.NewStyle().
			Foreground(Text).
			Bold(true)

	AssistantTurn = lipgloss.NewStyle().
			Foreground(Text)

	SlideBanner = lipgloss.NewStyle().
			Foreground(Accent).
			Bold(true).
			Italic(true)
)
