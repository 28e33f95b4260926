package cli

import (
	"context"
	"fmt"
	"strings"
	"text/tabwriter"
	"time"

	"github.com/spf13/cobra"
)

var (
	taskSubject  string
	taskText     string
	taskDeadline string
	taskListAll  bool
)

var taskCmd = &cobra.Command{
	Use:   "task",
	Short: "Manage the homework list that feeds the subject picker",
}

var taskAddCmd = &cobra.Command{
	Use:   "add",
	Short: "Add a homework task",
	Long: `Add a homework task. Subjects of unfinished tasks show up in the
timer's subject picker.

Examples:
  studyfocus task add --subject Math --task "Problem set 4"
  studyfocus task add --subject History --task Essay --deadline 2026-11-02`,
	Args: cobra.NoArgs,
	RunE: runTaskAdd,
}

var taskListCmd = &cobra.Command{
	Use:   "list",
	Short: "List homework tasks",
	Args:  cobra.NoArgs,
	RunE:  runTaskList,
}

func init() {
	taskAddCmd.Flags().StringVar(&taskSubject, "subject", "", "Subject of the task")
	taskAddCmd.Flags().StringVar(&taskText, "task", "", "Task description")
	taskAddCmd.Flags().StringVar(&taskDeadline, "deadline", "", "Deadline as YYYY-MM-DD or RFC3339")
	_ = taskAddCmd.MarkFlagRequired("subject")
	_ = taskAddCmd.MarkFlagRequired("task")

	taskListCmd.Flags().BoolVar(&taskListAll, "all", false, "Include completed tasks")

	taskCmd.AddCommand(taskAddCmd, taskListCmd)
	rootCmd.AddCommand(taskCmd)
}

// parseDeadline accepts a date (local midnight) or an RFC3339 timestamp.
func parseDeadline(s string) (*time.Time, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return nil, nil
	}
	if t, err := time.ParseInLocation("2006-01-02", s, time.Local); err == nil {
		return &t, nil
	}
	t, err := time.Parse(time.RFC3339, s)
	if err != nil {
		return nil, fmt.Errorf("invalid deadline %q: use YYYY-MM-DD or RFC3339", s)
	}
	return &t, nil
}

func runTaskAdd(cmd *cobra.Command, args []string) error {
	ctx := cmd.Context()
	if ctx == nil {
		ctx = context.Background()
	}
	deadline, err := parseDeadline(taskDeadline)
	if err != nil {
		return err
	}
	env, err := openEnv(ctx, cmd.ErrOrStderr(), false)
	if err != nil {
		return err
	}
	defer env.Close()

	id, err := env.db.AddHomework(ctx, taskSubject, taskText, deadline)
	if err != nil {
		return err
	}
	fmt.Fprintf(cmd.OutOrStdout(), "Added task %d: [%s] %s\n", id, strings.TrimSpace(taskSubject), strings.TrimSpace(taskText))
	return nil
}

func runTaskList(cmd *cobra.Command, args []string) error {
	ctx := cmd.Context()
	if ctx == nil {
		ctx = context.Background()
	}
	env, err := openEnv(ctx, cmd.ErrOrStderr(), false)
	if err != nil {
		return err
	}
	defer env.Close()

	items, err := env.db.ListHomework(ctx, taskListAll)
	if err != nil {
		return err
	}
	out := cmd.OutOrStdout()
	if len(items) == 0 {
		fmt.Fprintln(out, "No tasks.")
		return nil
	}
	tw := tabwriter.NewWriter(out, 0, 4, 2, ' ', 0)
	fmt.Fprintln(tw, "ID\tSUBJECT\tTASK\tDEADLINE\tDONE")
	for _, h := range items {
		deadline := "-"
		if h.Deadline != nil {
			deadline = h.Deadline.Local().Format("2006-01-02")
		}
		done := " "
		if h.Completed {
			done = "x"
		}
		fmt.Fprintf(tw, "%d\t%s\t%s\t%s\t%s\n", h.ID, h.Subject, h.Task, deadline, done)
	}
	return tw.Flush()
}
