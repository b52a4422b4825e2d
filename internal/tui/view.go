package tui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"

	"todo/internal/service"
)

var (
	headerStyle = lipgloss.NewStyle().
			Foreground(lipgloss.AdaptiveColor{Light: "25", Dark: "212"}).
			Bold(true).
			MarginBottom(1)

	sectionStyle = lipgloss.NewStyle().
			Foreground(lipgloss.AdaptiveColor{Light: "25", Dark: "212"}).
			Bold(true).
			MarginTop(1)

	taskTitleStyle = lipgloss.NewStyle().
			Foreground(lipgloss.AdaptiveColor{Light: "236", Dark: "252"}).
			Bold(true)

	taskDescStyle = lipgloss.NewStyle().
			Foreground(lipgloss.AdaptiveColor{Light: "243", Dark: "241"}).
			PaddingLeft(2)

	emptyStyle = lipgloss.NewStyle().
			Foreground(lipgloss.AdaptiveColor{Light: "243", Dark: "241"}).
			Italic(true)

	labelStyle = lipgloss.NewStyle().
			Foreground(lipgloss.AdaptiveColor{Light: "243", Dark: "241"}).
			Width(13)

	focusedLabelStyle = labelStyle.
				Foreground(lipgloss.AdaptiveColor{Light: "25", Dark: "212"}).
				Bold(true)

	buttonStyle = lipgloss.NewStyle().
			Foreground(lipgloss.AdaptiveColor{Light: "230", Dark: "230"}).
			Background(lipgloss.AdaptiveColor{Light: "25", Dark: "61"}).
			Bold(true).
			Padding(0, 1)

	statusStyle = lipgloss.NewStyle().
			Foreground(lipgloss.AdaptiveColor{Light: "236", Dark: "252"})

	errorStyle = lipgloss.NewStyle().
			Foreground(lipgloss.AdaptiveColor{Light: "160", Dark: "196"}).
			Bold(true)

	alertStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.AdaptiveColor{Light: "160", Dark: "196"}).
			Padding(1, 3)

	helpStyle = lipgloss.NewStyle().
			Foreground(lipgloss.AdaptiveColor{Light: "243", Dark: "241"}).
			MarginTop(1)
)

// renderTask is the display element for one task: title, then the
// description when there is one.
func renderTask(t service.Task) string {
	title := t.Title
	if strings.TrimSpace(title) == "" {
		title = "(untitled)"
	}
	s := taskTitleStyle.Render(title)
	if strings.TrimSpace(t.Description) != "" {
		s += "\n" + taskDescStyle.Render(t.Description)
	}
	return s
}

func (m Model) View() string {
	if m.alert != "" {
		box := alertStyle.Render(errorStyle.Render(m.alert) + "\n\n" + helpStyle.Render("press enter to dismiss"))
		if m.width > 0 && m.height > 0 {
			return lipgloss.Place(m.width, m.height, lipgloss.Center, lipgloss.Center, box)
		}
		return box
	}

	var b strings.Builder
	b.WriteString(headerStyle.Render("TODO"))
	b.WriteString("\n")

	tasks := m.app.State().Tasks
	if len(tasks) == 0 {
		b.WriteString(emptyStyle.Render("No tasks yet"))
		b.WriteString("\n")
	}
	for _, t := range tasks {
		b.WriteString(renderTask(t))
		b.WriteString("\n")
	}

	b.WriteString(sectionStyle.Render("Add a Todo"))
	b.WriteString("\n")
	b.WriteString(m.renderField("Title", m.title.View(), m.focus == fieldTitle))
	b.WriteString("\n")
	b.WriteString(m.renderField("Description", m.description.View(), m.focus == fieldDescription))
	b.WriteString("\n\n")
	b.WriteString(buttonStyle.Render("Add Todo"))
	b.WriteString("  ")
	if m.statusErr {
		b.WriteString(errorStyle.Render(m.status))
	} else {
		b.WriteString(statusStyle.Render(m.status))
	}
	b.WriteString("\n")
	b.WriteString(helpStyle.Render("enter add • tab switch field • ctrl+r refresh • esc quit"))
	return b.String()
}

func (m Model) renderField(label, input string, focused bool) string {
	style := labelStyle
	if focused {
		style = focusedLabelStyle
	}
	return style.Render(label) + input
}
