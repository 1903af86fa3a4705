package views

import (
	"fmt"
	"strings"
)

type TaskListPanelData struct {
	ListView   string
	InputView  string
	InputLabel string
	FilterName string
	OrderName  string
	Query      string
	Count      int
	Total      int
}

func RenderTaskListPanel(theme Theme, data TaskListPanelData) string {
	var b strings.Builder
	summary := fmt.Sprintf("filter: %s | order: %s | %d/%d shown", data.FilterName, data.OrderName, data.Count, data.Total)
	if data.Query != "" {
		summary += fmt.Sprintf(" | search: %q", data.Query)
	}
	b.WriteString(theme.Muted.Render(summary))
	b.WriteString("\n")
	b.WriteString(data.ListView)
	if data.InputView != "" {
		b.WriteString("\n")
		if data.InputLabel != "" {
			b.WriteString(theme.Accent.Render(data.InputLabel))
			b.WriteString("\n")
		}
		b.WriteString(data.InputView)
	}
	return b.String()
}

type SubTaskData struct {
	Title  string
	IsDone bool
}

type DetailPanelData struct {
	Title        string
	Priority     string
	IsDone       bool
	SubTasks     []SubTaskData
	Cursor       int
	PaneFocused  bool
	MarkdownView string
	InputView    string
}

func RenderDetailPanel(theme Theme, data DetailPanelData) string {
	if data.Title == "" {
		return theme.Muted.Render("(no selection)")
	}
	var b strings.Builder
	state := "pending"
	if data.IsDone {
		state = "done"
	}
	b.WriteString(theme.Accent.Render(fmt.Sprintf("%s [%s, %s]", data.Title, data.Priority, state)))
	b.WriteString("\n")
	if len(data.SubTasks) == 0 {
		b.WriteString(theme.Muted.Render("no sub-tasks"))
	}
	for i, sub := range data.SubTasks {
		mark := "[ ]"
		if sub.IsDone {
			mark = "[x]"
		}
		cursor := "  "
		if data.PaneFocused && i == data.Cursor {
			cursor = "> "
		}
		b.WriteString(fmt.Sprintf("%s%s %s\n", cursor, mark, sub.Title))
	}
	if data.MarkdownView != "" {
		b.WriteString("\n")
		b.WriteString(data.MarkdownView)
	}
	if data.InputView != "" {
		b.WriteString("\n")
		b.WriteString(theme.Accent.Render("new sub-task"))
		b.WriteString("\n")
		b.WriteString(data.InputView)
	}
	return b.String()
}

func RenderCommandPalette(theme Theme, active bool, inputView string) string {
	if !active {
		return ""
	}
	return theme.Accent.Render("command palette") + "\n" + inputView + "\n" +
		theme.Muted.Render("add <title> [!low|!med|!high] | filter <all|pending|completed> | search [text] | sort | theme | undo")
}

type HelpPanelData struct {
	Bindings []string
	HelpView string
}

func RenderHelpPanel(theme Theme, data HelpPanelData) string {
	var b strings.Builder
	b.WriteString(theme.Accent.Render("keys"))
	b.WriteString("\n")
	for _, line := range data.Bindings {
		b.WriteString(line)
		b.WriteString("\n")
	}
	if data.HelpView != "" {
		b.WriteString(data.HelpView)
	}
	return b.String()
}

// TaskDetailMarkdown renders a task and its sub-task checklist as markdown
// for the glamour-backed detail viewport.
func TaskDetailMarkdown(title, priority string, isDone bool, subTasks []SubTaskData) string {
	var b strings.Builder
	mark := " "
	if isDone {
		mark = "x"
	}
	fmt.Fprintf(&b, "# %s\n\n- [%s] %s (%s)\n", title, mark, title, priority)
	if len(subTasks) > 0 {
		b.WriteString("\n## Sub-tasks\n\n")
		for _, sub := range subTasks {
			mark := " "
			if sub.IsDone {
				mark = "x"
			}
			fmt.Fprintf(&b, "- [%s] %s\n", mark, sub.Title)
		}
	}
	return b.String()
}
