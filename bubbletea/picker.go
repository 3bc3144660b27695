// Package bubbletea provides an interactive suggestion picker using the
// Bubble Tea framework.
package bubbletea

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/pgebal/commitsense"
)

// ErrPickAborted is returned when the user quits without selecting.
var ErrPickAborted = errors.New("selection aborted")

// Compile-time interface verification.
var _ commitsense.Picker = (*Picker)(nil)

// Model is the Bubble Tea model for picking a suggestion.
type Model struct {
	suggestions []commitsense.CommitSuggestion
	styles      commitsense.Styles
	keys        KeyMap
	cursor      int
	chosen      int // -1 until a selection is made
	aborted     bool
}

// NewModel creates a Model listing the response's suggestions.
func NewModel(resp *commitsense.CommitResponse, theme commitsense.Theme) Model {
	return Model{
		suggestions: resp.Suggestions,
		styles:      theme.Styles(),
		keys:        DefaultKeyMap(),
		chosen:      -1,
	}
}

// Chosen returns the selected suggestion index, or -1.
func (m Model) Chosen() int {
	return m.chosen
}

// Aborted reports whether the user quit without selecting.
func (m Model) Aborted() bool {
	return m.aborted
}

// Init implements tea.Model.
func (m Model) Init() tea.Cmd {
	return nil
}

// Update implements tea.Model.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	keyMsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return m, nil
	}

	switch {
	case key.Matches(keyMsg, m.keys.Up):
		if m.cursor > 0 {
			m.cursor--
		}
	case key.Matches(keyMsg, m.keys.Down):
		if m.cursor < len(m.suggestions)-1 {
			m.cursor++
		}
	case key.Matches(keyMsg, m.keys.Select):
		m.chosen = m.cursor
		return m, tea.Quit
	case key.Matches(keyMsg, m.keys.Quit):
		m.aborted = true
		return m, tea.Quit
	}
	return m, nil
}

// View implements tea.Model.
func (m Model) View() string {
	selectedStyle := styleFromColorPair(m.styles.Selected)
	tagStyle := styleFromColorPair(m.styles.TypeTag)
	rationaleStyle := styleFromColorPair(m.styles.Rationale)

	var sb strings.Builder
	sb.WriteString("Pick a commit message:\n\n")
	for i, s := range m.suggestions {
		line := fmt.Sprintf("[%s] %s", s.Type, s.Message)
		if i == m.cursor {
			sb.WriteString("> " + selectedStyle.Render(line) + "\n")
			sb.WriteString("    " + rationaleStyle.Render(s.Rationale) + "\n")
		} else {
			sb.WriteString("  " + tagStyle.Render(fmt.Sprintf("[%s]", s.Type)) + " " + s.Message + "\n")
		}
	}
	sb.WriteString("\n" + rationaleStyle.Render("j/k move · enter select · q quit") + "\n")
	return sb.String()
}

func styleFromColorPair(cp commitsense.ColorPair) lipgloss.Style {
	style := lipgloss.NewStyle()
	if cp.Foreground != "" {
		style = style.Foreground(lipgloss.Color(cp.Foreground))
	}
	if cp.Background != "" {
		style = style.Background(lipgloss.Color(cp.Background))
	}
	return style
}

// Picker runs the interactive selection UI.
type Picker struct {
	theme commitsense.Theme
}

// NewPicker creates a Picker using theme.
func NewPicker(theme commitsense.Theme) *Picker {
	return &Picker{theme: theme}
}

// Pick displays the suggestions and blocks until the user selects one
// or quits.
func (p *Picker) Pick(ctx context.Context, resp *commitsense.CommitResponse) (*commitsense.CommitSuggestion, error) {
	if len(resp.Suggestions) == 0 {
		return nil, ErrPickAborted
	}

	m := NewModel(resp, p.theme)
	prog := tea.NewProgram(m, tea.WithContext(ctx))
	final, err := prog.Run()
	if err != nil {
		return nil, err
	}

	result, ok := final.(Model)
	if !ok || result.Aborted() || result.Chosen() < 0 {
		return nil, ErrPickAborted
	}
	return &resp.Suggestions[result.Chosen()], nil
}
