// Package output provides formatters for CLI output.
package output

import (
	"fmt"
	"io"
	"strings"

	"todo/internal/service"
)

// NoTasksMessage is printed by list when the collection is empty.
const NoTasksMessage = "no tasks found"

// FormatTask writes the display element for one task.
// Format: "{N:>4}  {TITLE}\n", followed by "      {DESCRIPTION}\n" when the
// description is not blank.
func FormatTask(w io.Writer, num int, task service.Task) {
	fmt.Fprintf(w, "%4d  %s\n", num, normalizeTitle(task.Title))
	if desc := normalizeText(task.Description); strings.TrimSpace(desc) != "" {
		fmt.Fprintf(w, "      %s\n", desc)
	}
}

// FormatTasks writes one display element per task, numbered from 1.
func FormatTasks(w io.Writer, tasks []service.Task) {
	for i, task := range tasks {
		FormatTask(w, i+1, task)
	}
}

// normalizeTitle normalizes a task title for display.
// - Empty or whitespace-only titles become "(untitled)"
// - Newlines are replaced with spaces
func normalizeTitle(title string) string {
	title = normalizeText(title)
	if strings.TrimSpace(title) == "" {
		return "(untitled)"
	}
	return title
}

func normalizeText(s string) string {
	s = strings.ReplaceAll(s, "\r", " ")
	return strings.ReplaceAll(s, "\n", " ")
}
