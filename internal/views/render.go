package views

import (
	"strings"

	"github.com/charmbracelet/glamour"
	"github.com/charmbracelet/lipgloss"
)

// Theme bundles the styles for one theme-mode ordinal (0 dark, 1 light,
// 2 midnight). The active mode is persisted in the theme slot.
type Theme struct {
	Mode          int
	Name          string
	MarkdownStyle string
	Header        lipgloss.Style
	Panel         lipgloss.Style
	Status        lipgloss.Style
	Error         lipgloss.Style
	Footer        lipgloss.Style
	Accent        lipgloss.Style
	Muted         lipgloss.Style
}

const ThemeModes = 3

func ThemeForMode(mode int) Theme {
	panel := lipgloss.NewStyle().Border(lipgloss.RoundedBorder()).Padding(0, 1)
	switch mode {
	case 1:
		return Theme{
			Mode:          1,
			Name:          "light",
			MarkdownStyle: "light",
			Header:        lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("4")),
			Panel:         panel.Foreground(lipgloss.Color("0")),
			Status:        lipgloss.NewStyle().Foreground(lipgloss.Color("2")),
			Error:         lipgloss.NewStyle().Foreground(lipgloss.Color("1")),
			Footer:        lipgloss.NewStyle().Foreground(lipgloss.Color("7")),
			Accent:        lipgloss.NewStyle().Foreground(lipgloss.Color("5")),
			Muted:         lipgloss.NewStyle().Foreground(lipgloss.Color("8")),
		}
	case 2:
		return Theme{
			Mode:          2,
			Name:          "midnight",
			MarkdownStyle: "dark",
			Header:        lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("13")),
			Panel:         panel.BorderForeground(lipgloss.Color("5")),
			Status:        lipgloss.NewStyle().Foreground(lipgloss.Color("14")),
			Error:         lipgloss.NewStyle().Foreground(lipgloss.Color("9")),
			Footer:        lipgloss.NewStyle().Foreground(lipgloss.Color("8")),
			Accent:        lipgloss.NewStyle().Foreground(lipgloss.Color("13")),
			Muted:         lipgloss.NewStyle().Foreground(lipgloss.Color("8")),
		}
	default:
		return Theme{
			Mode:          0,
			Name:          "dark",
			MarkdownStyle: "dark",
			Header:        lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("12")),
			Panel:         panel,
			Status:        lipgloss.NewStyle().Foreground(lipgloss.Color("10")),
			Error:         lipgloss.NewStyle().Foreground(lipgloss.Color("9")),
			Footer:        lipgloss.NewStyle().Foreground(lipgloss.Color("8")),
			Accent:        lipgloss.NewStyle().Foreground(lipgloss.Color("11")),
			Muted:         lipgloss.NewStyle().Foreground(lipgloss.Color("8")),
		}
	}
}

type AppData struct {
	Header     string
	LeftPane   string
	RightPane  string
	StatusLine string
	IsError    bool
	Footer     string
}

func RenderApp(theme Theme, data AppData) string {
	left := theme.Panel.Width(58).Render(data.LeftPane)
	right := theme.Panel.Width(58).Render(data.RightPane)
	row := lipgloss.JoinHorizontal(lipgloss.Top, left, right)

	status := theme.Status.Render(data.StatusLine)
	if data.IsError {
		status = theme.Error.Render(data.StatusLine)
	}

	lines := []string{
		theme.Header.Render(data.Header),
		row,
		status,
	}
	if data.Footer != "" {
		lines = append(lines, theme.Footer.Render(data.Footer))
	}
	return strings.Join(lines, "\n")
}

func RenderMarkdown(theme Theme, md string) string {
	if strings.TrimSpace(md) == "" {
		return ""
	}
	out, err := glamour.Render(md, theme.MarkdownStyle)
	if err != nil {
		return md
	}
	return strings.TrimSpace(out)
}
