package main

import (
	"encoding/json"
	"errors"
	"strings"
	"testing"

	"github.com/fatih/color"
	"github.com/stretchr/testify/require"

	"tasktracker/pkg/taskclient"
)

func TestMain(m *testing.M) {
	color.NoColor = true
	m.Run()
}

func TestHumanFormatter_TaskList(t *testing.T) {
	f := NewHumanFormatter()

	require.Equal(t, "No tasks found.\n", f.FormatTaskList(nil))

	out := f.FormatTaskList([]taskclient.Task{
		{ID: "a1", Title: "Buy milk", Status: "todo", UpdatedAt: "2026-02-13T10:20:30.000Z"},
		{ID: "b2", Title: "Ship release", Status: "doing", UpdatedAt: "2026-02-13T11:00:00.000Z"},
	})
	lines := strings.Split(strings.TrimRight(out, "\n"), "\n")
	require.Len(t, lines, 3)
	require.True(t, strings.HasPrefix(lines[0], "ID"))
	require.Contains(t, lines[1], "Buy milk")
	require.Contains(t, lines[2], "doing")
	require.Equal(t, strings.Index(lines[0], "TITLE"), strings.Index(lines[1], "Buy milk"))
}

func TestHumanFormatter_TaskWithoutTimestamps(t *testing.T) {
	out := NewHumanFormatter().FormatTask(taskclient.Task{ID: "a1", Title: "Buy milk", Status: "done"})

	require.Contains(t, out, "[a1] Buy milk")
	require.Contains(t, out, "Status:   done")
	require.NotContains(t, out, "Created")
}

func TestHumanFormatter_Summary(t *testing.T) {
	out := NewHumanFormatter().FormatSummary(taskclient.Summary{Todo: 1, Doing: 2, Done: 3})

	require.Contains(t, out, "todo   1")
	require.Contains(t, out, "total  6")
}

func TestJSONFormatter(t *testing.T) {
	f := NewJSONFormatter()

	require.JSONEq(t, `[]`, f.FormatTaskList(nil))
	require.JSONEq(t, `{"id":"a1","status":"doing"}`, f.FormatStatus(taskclient.Task{ID: "a1", Status: "doing", Title: "x"}))
	require.JSONEq(t, `{"detail":"Task not found"}`, f.FormatError(errors.New("Task not found")))

	var summary taskclient.Summary
	require.NoError(t, json.Unmarshal([]byte(f.FormatSummary(taskclient.Summary{Done: 2})), &summary))
	require.Equal(t, 2, summary.Done)
}
