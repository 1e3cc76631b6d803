package main

import (
	"context"
	"os"
	"time"

	"github.com/spf13/cobra"

	"tasktracker/pkg/taskclient"
)

const serverEnv = "TASKS_API_URL"

//nolint:gochecknoglobals // CLI flags and formatter are package-level
var (
	jsonOutput bool
	serverURL  string
	language   string
	timeout    time.Duration
	formatter  Formatter = NewHumanFormatter()
)

func main() {
	rootCmd := &cobra.Command{
		Use:   "taskctl",
		Short: "Command-line client for the task service",
		PersistentPreRun: func(_ *cobra.Command, _ []string) {
			if jsonOutput {
				formatter = NewJSONFormatter()
			} else {
				formatter = NewHumanFormatter()
			}
		},
	}

	defaultServer := os.Getenv(serverEnv)
	if defaultServer == "" {
		defaultServer = taskclient.DefaultBaseURL
	}

	rootCmd.PersistentFlags().BoolVar(&jsonOutput, "json", false, "Output in JSON format")
	rootCmd.PersistentFlags().StringVar(&serverURL, "server", defaultServer, "Task service base URL (env "+serverEnv+")")
	rootCmd.PersistentFlags().StringVar(&language, "lang", "", "Language for server messages (en, fr)")
	rootCmd.PersistentFlags().DurationVar(&timeout, "timeout", 10*time.Second, "Request timeout")

	rootCmd.AddCommand(
		listCmd(),
		getCmd(),
		addCmd(),
		updateCmd(),
		statusCmd(),
		rmCmd(),
		summaryCmd(),
	)

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func getClient() *taskclient.Client {
	var opts []taskclient.Option
	if language != "" {
		opts = append(opts, taskclient.WithLanguage(language))
	}
	return taskclient.New(serverURL, opts...)
}

func requestContext() (context.Context, context.CancelFunc) {
	return context.WithTimeout(context.Background(), timeout)
}

func printOutput(s string) {
	os.Stdout.WriteString(s) //nolint:gosec // stdout write errors are unrecoverable
}

func printError(err error) {
	os.Stderr.WriteString(formatter.FormatError(err)) //nolint:gosec // stderr write errors are unrecoverable
	os.Exit(1)
}

// listCmd implements 'taskctl list'.
func listCmd() *cobra.Command {
	var status string
	cmd := &cobra.Command{
		Use:   "list",
		Short: "List tasks",
		Args:  cobra.NoArgs,
		Run: func(_ *cobra.Command, _ []string) {
			ctx, cancel := requestContext()
			defer cancel()

			tasks, err := getClient().ListTasks(ctx, status)
			if err != nil {
				printError(err)
			}
			printOutput(formatter.FormatTaskList(tasks))
		},
	}
	cmd.Flags().StringVarP(&status, "status", "s", "", "Only show tasks in this status (todo, doing, done)")
	return cmd
}

// getCmd implements 'taskctl get'.
func getCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "get <id>",
		Short: "Show task details",
		Args:  cobra.ExactArgs(1),
		Run: func(_ *cobra.Command, args []string) {
			ctx, cancel := requestContext()
			defer cancel()

			t, err := getClient().GetTask(ctx, args[0])
			if err != nil {
				printError(err)
			}
			printOutput(formatter.FormatTask(t))
		},
	}
}

// addCmd implements 'taskctl add'.
func addCmd() *cobra.Command {
	var description string
	cmd := &cobra.Command{
		Use:   "add <title>",
		Short: "Add a new task",
		Args:  cobra.ExactArgs(1),
		Run: func(_ *cobra.Command, args []string) {
			ctx, cancel := requestContext()
			defer cancel()

			t, err := getClient().CreateTask(ctx, args[0], description)
			if err != nil {
				printError(err)
			}
			printOutput(formatter.FormatTask(t))
		},
	}
	cmd.Flags().StringVarP(&description, "description", "d", "", "Task description")
	return cmd
}

// updateCmd implements 'taskctl update'. Fields left unset keep their
// current value.
func updateCmd() *cobra.Command {
	var title, description, status string
	cmd := &cobra.Command{
		Use:   "update <id>",
		Short: "Replace title, description and status of a task",
		Args:  cobra.ExactArgs(1),
		Run: func(cmd *cobra.Command, args []string) {
			ctx, cancel := requestContext()
			defer cancel()

			client := getClient()
			current, err := client.GetTask(ctx, args[0])
			if err != nil {
				printError(err)
			}
			if !cmd.Flags().Changed("title") {
				title = current.Title
			}
			if !cmd.Flags().Changed("description") {
				description = current.Description
			}
			if !cmd.Flags().Changed("status") {
				status = current.Status
			}

			t, err := client.UpdateTask(ctx, args[0], title, description, status)
			if err != nil {
				printError(err)
			}
			printOutput(formatter.FormatTask(t))
		},
	}
	cmd.Flags().StringVarP(&title, "title", "t", "", "New title")
	cmd.Flags().StringVarP(&description, "description", "d", "", "New description")
	cmd.Flags().StringVarP(&status, "status", "s", "", "New status (todo, doing, done)")
	return cmd
}

// statusCmd implements 'taskctl status'.
func statusCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "status <id> <status>",
		Short: "Move a task to another status",
		Args:  cobra.ExactArgs(2),
		Run: func(_ *cobra.Command, args []string) {
			ctx, cancel := requestContext()
			defer cancel()

			t, err := getClient().UpdateStatus(ctx, args[0], args[1])
			if err != nil {
				printError(err)
			}
			printOutput(formatter.FormatStatus(t))
		},
	}
}

// rmCmd implements 'taskctl rm'.
func rmCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "rm <id>",
		Short: "Delete a task",
		Args:  cobra.ExactArgs(1),
		Run: func(_ *cobra.Command, args []string) {
			ctx, cancel := requestContext()
			defer cancel()

			msg, err := getClient().DeleteTask(ctx, args[0])
			if err != nil {
				printError(err)
			}
			printOutput(formatter.FormatMessage(msg))
		},
	}
}

// summaryCmd implements 'taskctl summary'.
func summaryCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "summary",
		Short: "Count tasks per status",
		Args:  cobra.NoArgs,
		Run: func(_ *cobra.Command, _ []string) {
			ctx, cancel := requestContext()
			defer cancel()

			s, err := getClient().Summary(ctx)
			if err != nil {
				printError(err)
			}
			printOutput(formatter.FormatSummary(s))
		},
	}
}
