package main

import (
	"encoding/json"
	"fmt"
	"strings"
	"text/tabwriter"

	"github.com/fatih/color"

	"tasktracker/pkg/taskclient"
)

// Formatter renders command results.
type Formatter interface {
	FormatTask(t taskclient.Task) string
	FormatTaskList(tasks []taskclient.Task) string
	FormatStatus(t taskclient.Task) string
	FormatSummary(s taskclient.Summary) string
	FormatMessage(msg string) string
	FormatError(err error) string
}

// HumanFormatter formats output for terminal display.
type HumanFormatter struct {
	statusColors map[string]*color.Color
}

func NewHumanFormatter() *HumanFormatter {
	return &HumanFormatter{
		statusColors: map[string]*color.Color{
			"todo":  color.New(color.FgYellow),
			"doing": color.New(color.FgCyan),
			"done":  color.New(color.FgGreen),
		},
	}
}

func (f *HumanFormatter) status(s string) string {
	return f.paddedStatus(s, 0)
}

// paddedStatus pads before colouring so escape codes do not skew tabwriter
// columns.
func (f *HumanFormatter) paddedStatus(s string, width int) string {
	padded := fmt.Sprintf("%-*s", width, s)
	if c, ok := f.statusColors[s]; ok {
		return c.Sprint(padded)
	}
	return color.New(color.FgRed).Sprint(padded)
}

func (f *HumanFormatter) FormatTask(t taskclient.Task) string {
	var sb strings.Builder

	fmt.Fprintf(&sb, "[%s] %s\n", t.ID, t.Title)
	fmt.Fprintf(&sb, "  Status:   %s\n", f.status(t.Status))
	if t.CreatedAt != "" {
		fmt.Fprintf(&sb, "  Created:  %s\n", t.CreatedAt)
	}
	if t.UpdatedAt != "" {
		fmt.Fprintf(&sb, "  Updated:  %s\n", t.UpdatedAt)
	}
	if t.Description != "" {
		sb.WriteString("\n")
		sb.WriteString(t.Description)
		sb.WriteString("\n")
	}
	return sb.String()
}

func (f *HumanFormatter) FormatTaskList(tasks []taskclient.Task) string {
	if len(tasks) == 0 {
		return "No tasks found.\n"
	}

	width := len("STATUS")
	for _, t := range tasks {
		width = max(width, len(t.Status))
	}

	var sb strings.Builder
	w := tabwriter.NewWriter(&sb, 0, 0, 2, ' ', 0)
	fmt.Fprintf(w, "ID\t%-*s\tTITLE\tUPDATED\n", width, "STATUS")
	for _, t := range tasks {
		fmt.Fprintf(w, "%s\t%s\t%s\t%s\n", t.ID, f.paddedStatus(t.Status, width), t.Title, t.UpdatedAt)
	}
	_ = w.Flush()
	return sb.String()
}

func (f *HumanFormatter) FormatStatus(t taskclient.Task) string {
	return fmt.Sprintf("[%s] is now %s\n", t.ID, f.status(t.Status))
}

func (f *HumanFormatter) FormatSummary(s taskclient.Summary) string {
	var sb strings.Builder
	w := tabwriter.NewWriter(&sb, 0, 0, 2, ' ', 0)
	fmt.Fprintf(w, "%s\t%d\n", f.paddedStatus("todo", 5), s.Todo)
	fmt.Fprintf(w, "%s\t%d\n", f.paddedStatus("doing", 5), s.Doing)
	fmt.Fprintf(w, "%s\t%d\n", f.paddedStatus("done", 5), s.Done)
	fmt.Fprintf(w, "%-5s\t%d\n", "total", s.Todo+s.Doing+s.Done)
	_ = w.Flush()
	return sb.String()
}

func (f *HumanFormatter) FormatMessage(msg string) string {
	return msg + "\n"
}

func (f *HumanFormatter) FormatError(err error) string {
	return color.New(color.FgRed).Sprint("Error: ") + err.Error() + "\n"
}

// JSONFormatter prints the service payloads as indented JSON.
type JSONFormatter struct{}

func NewJSONFormatter() *JSONFormatter {
	return &JSONFormatter{}
}

// marshalJSON marshals a value to indented JSON with a trailing newline.
func marshalJSON(v any) string {
	data, _ := json.MarshalIndent(v, "", "  ")
	return string(data) + "\n"
}

func (f *JSONFormatter) FormatTask(t taskclient.Task) string {
	return marshalJSON(t)
}

func (f *JSONFormatter) FormatTaskList(tasks []taskclient.Task) string {
	if tasks == nil {
		tasks = []taskclient.Task{}
	}
	return marshalJSON(tasks)
}

func (f *JSONFormatter) FormatStatus(t taskclient.Task) string {
	return marshalJSON(map[string]string{"id": t.ID, "status": t.Status})
}

func (f *JSONFormatter) FormatSummary(s taskclient.Summary) string {
	return marshalJSON(s)
}

func (f *JSONFormatter) FormatMessage(msg string) string {
	return marshalJSON(map[string]string{"message": msg})
}

func (f *JSONFormatter) FormatError(err error) string {
	return marshalJSON(map[string]string{"detail": err.Error()})
}
