package components

import (
	"strconv"

	"charm.land/bubbles/v2/textinput"
	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/thanvish21/systemx/internal/ui/theme"
)

// TextInput wraps bubbles/textinput with SYSTEM X styling.
type TextInput struct {
	Model       textinput.Model
	NumericOnly bool
	errHint     string
}

// NewTextInput creates a new styled text input.
func NewTextInput(placeholder string, numericOnly bool, charLimit int) TextInput {
	ti := textinput.New()
	ti.Placeholder = placeholder
	ti.Focus()

	if charLimit > 0 {
		ti.CharLimit = charLimit
	}

	return TextInput{
		Model:       ti,
		NumericOnly: numericOnly,
	}
}

// Init returns the initial command.
func (t TextInput) Init() tea.Cmd {
	return t.Model.Focus()
}

// Update handles messages.
func (t TextInput) Update(msg tea.Msg) (TextInput, tea.Cmd) {
	if t.NumericOnly {
		if kmsg, ok := msg.(tea.KeyMsg); ok {
			key := kmsg.String()
			if len(key) == 1 {
				if key[0] < '0' || key[0] > '9' {
					return t, nil
				}
			}
		}
	}

	var cmd tea.Cmd
	t.Model, cmd = t.Model.Update(msg)
	return t, cmd
}

// View renders the text input with any validation hint below it.
func (t TextInput) View() string {
	view := t.Model.View()
	if t.errHint != "" {
		view += "\n" + lipgloss.NewStyle().Foreground(theme.Error).Render("✗ "+t.errHint)
	}
	return view
}

// Value returns the current input value.
func (t TextInput) Value() string {
	return t.Model.Value()
}

// NumericValue returns the input value as an integer.
func (t TextInput) NumericValue() (int, error) {
	return strconv.Atoi(t.Model.Value())
}

// SetValue replaces the current input value.
func (t *TextInput) SetValue(v string) {
	t.Model.SetValue(v)
}

// SetPlaceholder replaces the placeholder text.
func (t *TextInput) SetPlaceholder(p string) {
	t.Model.Placeholder = p
}

// Reject shows a validation hint under the input. Cleared on Clear.
func (t *TextInput) Reject(hint string) {
	t.errHint = hint
}

// Clear empties the input and removes any validation hint.
func (t *TextInput) Clear() {
	t.Model.SetValue("")
	t.errHint = ""
}
