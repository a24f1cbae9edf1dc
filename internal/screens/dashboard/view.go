package dashboard

import (
	"fmt"
	"image/color"
	"strings"

	"charm.land/lipgloss/v2"

	"github.com/thanvish21/systemx/internal/conversation"
	"github.com/thanvish21/systemx/internal/plan"
	"github.com/thanvish21/systemx/internal/ui/theme"
)

const slideBannerText = "DAY SLIDE: ALL TASKS COMPLETED"

func (d *DashboardScreen) View(width, height int) string {
	var b strings.Builder

	b.WriteString(d.renderTabs(width))
	b.WriteString("\n")
	b.WriteString(lipgloss.NewStyle().Foreground(theme.Border).Render(strings.Repeat("─", max(width-4, 0))))
	b.WriteString("\n")

	bodyHeight := height - 3
	if bodyHeight < 0 {
		bodyHeight = 0
	}

	switch d.tab {
	case TabPlan:
		b.WriteString(d.renderPlan(width))
	case TabMentor:
		b.WriteString(d.renderMentor(width, bodyHeight))
	case TabKillRate:
		b.WriteString(renderKillRate(width))
	case TabProfile:
		b.WriteString(d.renderProfile(width))
	}

	return b.String()
}

func (d *DashboardScreen) renderTabs(width int) string {
	parts := make([]string, 0, int(tabCount))
	for t := Tab(0); t < tabCount; t++ {
		label := " " + t.label() + " "
		if t == d.tab {
			parts = append(parts, theme.Selected.Render(label))
		} else {
			parts = append(parts, lipgloss.NewStyle().Foreground(theme.TextDim).Render(label))
		}
	}
	return "  " + strings.Join(parts, lipgloss.NewStyle().Foreground(theme.Border).Render("│"))
}

func (d *DashboardScreen) renderPlan(width int) string {
	p := plan.Rolling()

	mode := "College day: work the transit and post-college slots."
	if !d.conv.CollegeDay() {
		mode = "Self study day: all slots are open. No excuses."
	}

	var b strings.Builder
	b.WriteString("\n")
	b.WriteString(lipgloss.NewStyle().
		Foreground(theme.Text).
		Bold(true).
		Render("  " + p.Name))
	b.WriteString("\n")
	b.WriteString("  " + theme.Hint.Render(mode))
	b.WriteString("\n\n")

	for _, task := range p.Tasks {
		b.WriteString(renderTask(task, width))
		b.WriteString("\n")
	}

	return b.String()
}

func renderTask(t plan.StudyTask, width int) string {
	skip := t.Type == plan.TypeSkip

	marker := "  "
	if t.HighROI {
		marker = lipgloss.NewStyle().Foreground(theme.Accent).Render("★ ")
	}

	prio := lipgloss.NewStyle().Foreground(priorityColor(t.Priority)).Render(string(t.Priority))

	head := fmt.Sprintf("%s%s · %s  [%s · %s · %s]",
		marker, t.Subject, t.Topic, t.Type, t.Duration, prio)
	headStyle := lipgloss.NewStyle().Foreground(theme.Text).Bold(true)
	if skip {
		headStyle = lipgloss.NewStyle().Foreground(theme.TextDim).Strikethrough(true)
	}

	desc := lipgloss.NewStyle().
		Foreground(theme.TextDim).
		Width(min(width-8, 72)).
		Render(t.Description)

	return "  " + headStyle.Render(head) + "\n    " + strings.ReplaceAll(desc, "\n", "\n    ") + "\n"
}

func priorityColor(p plan.Priority) color.Color {
	switch p {
	case plan.PriorityHigh:
		return theme.Primary
	case plan.PriorityMedium:
		return theme.Secondary
	default:
		return theme.TextDim
	}
}

func (d *DashboardScreen) renderMentor(width, height int) string {
	inputLine := "  " + theme.Body.Render("» ") + d.input.View()
	if d.conv.Awaiting() {
		inputLine = "  " + lipgloss.NewStyle().
			Foreground(theme.Secondary).
			Render(spinnerFrames[d.spinnerFrame]+" Mentor is typing...")
	}

	transcriptHeight := height - 3
	if transcriptHeight < 1 {
		transcriptHeight = 1
	}

	transcript := d.renderTranscript(width, transcriptHeight)

	return transcript + "\n" +
		lipgloss.NewStyle().Foreground(theme.Border).Render("  "+strings.Repeat("─", max(width-8, 0))) + "\n" +
		inputLine
}

// renderTranscript renders the chat turns oldest-first, trimmed to the
// last lines that fit the panel.
func (d *DashboardScreen) renderTranscript(width, height int) string {
	turns := d.conv.Turns()
	if len(turns) == 0 {
		empty := theme.Hint.Render("Uplink established. Report your status, or type SLIDE if today collapsed.")
		return "\n  " + empty + strings.Repeat("\n", max(height-2, 0))
	}

	wrap := lipgloss.NewStyle().Width(min(width-10, 76))

	var lines []string
	for _, turn := range turns {
		lines = append(lines, "")
		switch {
		case turn.Role == conversation.RoleUser && turn.Text == conversation.SlideWord:
			lines = append(lines, "  "+theme.SlideBanner.Render("▼ "+slideBannerText))
		case turn.Role == conversation.RoleUser:
			lines = append(lines, "  "+theme.UserTurn.Render("YOU"))
			lines = append(lines, indent(wrap.Render(turn.Text), "  "))
		default:
			lines = append(lines, "  "+lipgloss.NewStyle().Foreground(theme.Primary).Bold(true).Render("MENTOR"))
			lines = append(lines, indent(theme.AssistantTurn.Render(wrap.Render(turn.Text)), "  "))
		}
	}

	flat := strings.Split(strings.Join(lines, "\n"), "\n")
	if len(flat) > height {
		flat = flat[len(flat)-height:]
	}
	return strings.Join(flat, "\n")
}

func indent(s, prefix string) string {
	return prefix + strings.ReplaceAll(s, "\n", "\n"+prefix)
}

func renderKillRate(width int) string {
	return "\n" + lipgloss.NewStyle().
		Width(width).
		Align(lipgloss.Center).
		Foreground(theme.TextDim).
		Render("\n\nKILL RATE TRACKING\n\nNo mock test data logged yet.\nScores appear here once tests are recorded.")
}

func (d *DashboardScreen) renderProfile(width int) string {
	p := d.profile

	rows := []struct {
		label, value string
	}{
		{"CODENAME", p.Codename},
		{"SYLLABUS LEVEL", string(p.Level)},
		{"TARGET", p.TargetPercentile},
		{"ATTEMPT", string(p.JEEAttempt) + " · " + string(p.CollegeYear)},
		{"GRIND HOURS / DAY", fmt.Sprintf("%d", p.DailyStudyTime)},
	}
	if p.IsCollegeStudent {
		rows = append(rows,
			struct{ label, value string }{"COLLEGE HOURS", p.CollegeHours},
			struct{ label, value string }{"POST-COLLEGE ENERGY", string(p.EnergyProfile)},
		)
	}

	var b strings.Builder
	for _, r := range rows {
		b.WriteString(lipgloss.NewStyle().
			Foreground(theme.TextDim).
			Width(22).
			Render(r.label))
		b.WriteString(theme.Body.Render(r.value))
		b.WriteString("\n")
	}

	card := theme.Card.Render(b.String())
	return "\n" + lipgloss.PlaceHorizontal(width, lipgloss.Center, card)
}
