// Package output provides formatters for CLI output.
package output

import (
	"fmt"
	"io"
	"strings"

	"todo/internal/service"
)

const (
	// Separator frames the app header.
	Separator = "------------"

	// DoneMarker is appended to completed tasks.
	DoneMarker = " (done)"
)

// FormatTask formats a task line.
// Format: "{N:>4}  {TITLE}\n" (4-wide right-aligned number, two spaces, title),
// with DoneMarker appended for completed tasks.
func FormatTask(w io.Writer, num int, task service.Task) {
	title := normalizeTitle(task.Title)
	if task.Completed {
		title += DoneMarker
	}
	fmt.Fprintf(w, "%4d  %s\n", num, title)
}

// FormatHeader formats the app header framed by separator lines.
func FormatHeader(w io.Writer, title string) {
	fmt.Fprintln(w, Separator)
	fmt.Fprintln(w, normalizeTitle(title))
	fmt.Fprintln(w, Separator)
}

// normalizeTitle normalizes a title for display.
// - Empty or whitespace-only titles become "(untitled)"
// - Newlines are replaced with spaces
func normalizeTitle(title string) string {
	title = strings.ReplaceAll(title, "\r", " ")
	title = strings.ReplaceAll(title, "\n", " ")

	if strings.TrimSpace(title) == "" {
		return "(untitled)"
	}
	return title
}
