package ui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
)

var (
	TitleStyle = lipgloss.NewStyle().
			MarginLeft(2).
			Foreground(lipgloss.Color("#FFFDF5")).
			Background(lipgloss.Color("#25A065")).
			Padding(0, 1)

	KeyStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#25A065"))

	WarnStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#E5A50A"))

	DocStyle = lipgloss.NewStyle().
			Margin(1, 2)
)

// Field is one key/value line of a summary.
type Field struct {
	Key   string
	Value any
	Warn  bool
}

// Summary renders a titled block of aligned key/value lines.
func Summary(title string, fields ...Field) string {
	width := 0
	for _, f := range fields {
		width = max(width, len(f.Key))
	}

	lines := make([]string, 0, len(fields))
	for _, f := range fields {
		value := fmt.Sprint(f.Value)
		if f.Warn {
			value = WarnStyle.Render(value)
		}
		lines = append(lines, KeyStyle.Render(fmt.Sprintf("%-*s", width, f.Key))+"  "+value)
	}

	return DocStyle.Render(TitleStyle.Render(title) + "\n\n" + strings.Join(lines, "\n"))
}
