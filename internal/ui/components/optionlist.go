package components

import (
	"fmt"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/thanvish21/systemx/internal/ui/theme"
)

// OptionList is a single-select list for diagnostic questions. Unlike a
// quiz choice there is no correct answer; Enter commits the highlighted
// option.
type OptionList struct {
	items    []string
	Selected int
	chosen   int
}

// NewOptionList creates an option list over the given items.
func NewOptionList(items []string) OptionList {
	return OptionList{items: items, chosen: -1}
}

// Items returns the selectable items.
func (o OptionList) Items() []string {
	return o.items
}

// Init returns nil.
func (o OptionList) Init() tea.Cmd {
	return nil
}

// Update handles keyboard navigation and selection.
func (o OptionList) Update(msg tea.Msg) (OptionList, tea.Cmd) {
	kmsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return o, nil
	}

	switch kmsg.String() {
	case "up", "k":
		if o.Selected > 0 {
			o.Selected--
		}
	case "down", "j":
		if o.Selected < len(o.items)-1 {
			o.Selected++
		}
	case "enter":
		o.chosen = o.Selected
	}

	return o, nil
}

// Chosen returns the committed option and true once Enter was pressed.
func (o OptionList) Chosen() (string, bool) {
	if o.chosen < 0 || o.chosen >= len(o.items) {
		return "", false
	}
	return o.items[o.chosen], true
}

// ResetChoice clears the committed option, keeping the highlight.
func (o *OptionList) ResetChoice() {
	o.chosen = -1
}

// View renders the option list.
func (o OptionList) View() string {
	var s string
	for i, item := range o.items {
		prefix := "  "
		if i == o.Selected {
			prefix = "▸ "
		}

		line := fmt.Sprintf("%s%s", prefix, item)
		if i == o.Selected {
			s += lipgloss.NewStyle().Foreground(theme.Primary).Bold(true).Render(line) + "\n"
		} else {
			s += lipgloss.NewStyle().Foreground(theme.Text).Render(line) + "\n"
		}
	}
	return s
}
