package lipgloss

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/pgebal/commitsense"
)

// Renderer converts a CommitResponse to styled terminal output.
type Renderer struct {
	theme    commitsense.Theme
	renderer *lipgloss.Renderer
}

// NewRenderer creates a Renderer using theme. If lr is nil, the default
// lipgloss renderer is used (respects the ambient color profile).
func NewRenderer(theme commitsense.Theme, lr *lipgloss.Renderer) *Renderer {
	return &Renderer{theme: theme, renderer: lr}
}

// Render returns the terminal listing of a response: suggestions with
// type tags and rationales, followed by the summary and usage blocks.
func (r *Renderer) Render(resp *commitsense.CommitResponse) string {
	styles := r.theme.Styles()

	primaryStyle := styleFromColorPair(styles.Primary, r.renderer)
	alternativeStyle := styleFromColorPair(styles.Alternative, r.renderer)
	tagStyle := styleFromColorPair(styles.TypeTag, r.renderer)
	rationaleStyle := styleFromColorPair(styles.Rationale, r.renderer)
	summaryStyle := styleFromColorPair(styles.Summary, r.renderer)
	usageStyle := styleFromColorPair(styles.Usage, r.renderer)

	var sb strings.Builder
	for i, s := range resp.Suggestions {
		messageStyle := alternativeStyle
		marker := " "
		if s.Priority == commitsense.PriorityPrimary {
			messageStyle = primaryStyle
			marker = "*"
		}
		sb.WriteString(fmt.Sprintf("%s %s %s\n",
			marker,
			tagStyle.Render(fmt.Sprintf("[%s]", s.Type)),
			messageStyle.Render(s.Message)))
		sb.WriteString("    " + rationaleStyle.Render(s.Rationale) + "\n")
		if i < len(resp.Suggestions)-1 {
			sb.WriteString("\n")
		}
	}

	sb.WriteString("\n")
	sb.WriteString(summaryStyle.Render(fmt.Sprintf(
		"%d suggestion(s) for %d file(s) changed [%s], recommended style: %s",
		resp.Summary.TotalSuggestions,
		resp.Summary.FilesChanged,
		strings.Join(resp.Summary.ChangeTypes, ", "),
		resp.Summary.RecommendedStyle)))
	sb.WriteString("\n\n")

	sb.WriteString(usageStyle.Render(resp.Usage.HowToUse))
	sb.WriteString("\n")
	for _, example := range resp.Usage.Examples {
		sb.WriteString(usageStyle.Render("  $ "+example) + "\n")
	}

	return sb.String()
}

func styleFromColorPair(cp commitsense.ColorPair, renderer *lipgloss.Renderer) lipgloss.Style {
	var style lipgloss.Style
	if renderer != nil {
		style = renderer.NewStyle()
	} else {
		style = lipgloss.NewStyle()
	}
	if cp.Foreground != "" {
		style = style.Foreground(lipgloss.Color(cp.Foreground))
	}
	if cp.Background != "" {
		style = style.Background(lipgloss.Color(cp.Background))
	}
	return style
}
