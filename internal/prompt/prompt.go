package prompt

import (
	"fmt"
	"os"
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

var (
	styleBad    = lipgloss.NewStyle().Foreground(lipgloss.Color("9"))
	styleHint   = lipgloss.NewStyle().Faint(true)
	stylePrompt = lipgloss.NewStyle().Foreground(lipgloss.Color("12")).Bold(true)
)

type model struct {
	bad   string
	input textinput.Model
	done  bool
}

func newModel(badLine string) model {
	ti := textinput.New()
	ti.Placeholder = "corrected message"
	ti.Prompt = "> "
	ti.PromptStyle = stylePrompt
	ti.CharLimit = 512
	ti.Focus()
	return model{bad: badLine, input: ti}
}

func (m model) Init() tea.Cmd { return textinput.Blink }

func (m model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	if key, ok := msg.(tea.KeyMsg); ok {
		switch key.Type {
		case tea.KeyEnter:
			m.done = true
			return m, tea.Quit
		case tea.KeyCtrlC, tea.KeyEsc:
			m.input.SetValue("")
			m.done = true
			return m, tea.Quit
		}
	}
	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	return m, cmd
}

func (m model) View() string {
	if m.done {
		return ""
	}
	var b strings.Builder
	b.WriteString(styleBad.Render("Message not recognized: "+m.bad) + "\n")
	b.WriteString(m.input.View() + "\n")
	b.WriteString(styleHint.Render("type the corrected message, or press Enter to skip") + "\n")
	return b.String()
}

// Corrector asks the user for a one-line correction of an unrecognized
// chat line. Empty input skips the line. It satisfies parse.Resolver.
type Corrector struct{}

func (Corrector) Resolve(line string) (string, bool) {
	out, err := tea.NewProgram(newModel(line)).Run()
	if err != nil {
		fmt.Fprintf(os.Stderr, "correction prompt: %v\n", err)
		return "", false
	}
	value := strings.TrimSpace(out.(model).input.Value())
	if value == "" {
		return "", false
	}
	return value, true
}
