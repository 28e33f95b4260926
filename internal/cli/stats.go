package cli

import (
	"context"
	"fmt"
	"io"
	"text/tabwriter"

	"github.com/akyairhashvil/studyfocus/internal/models"
	"github.com/akyairhashvil/studyfocus/internal/util"
	"github.com/spf13/cobra"
)

var statsCmd = &cobra.Command{
	Use:   "stats",
	Short: "Show focus minutes per subject",
	Args:  cobra.NoArgs,
	RunE:  runStats,
}

func init() {
	rootCmd.AddCommand(statsCmd)
}

func runStats(cmd *cobra.Command, args []string) error {
	ctx := cmd.Context()
	if ctx == nil {
		ctx = context.Background()
	}
	env, err := openEnv(ctx, cmd.ErrOrStderr(), false)
	if err != nil {
		return err
	}
	defer env.Close()

	stats, err := env.db.StudyStats(ctx)
	if err != nil {
		return err
	}
	return printStats(cmd.OutOrStdout(), stats)
}

func printStats(w io.Writer, stats models.StudyStats) error {
	fmt.Fprintf(w, "Focus time: %s in %d sessions\n", util.FormatMinutes(stats.TotalMinutes), stats.SessionCount)
	fmt.Fprintf(w, "Tasks: %d completed, %d pending\n", stats.TasksCompleted, stats.TasksPending)
	if len(stats.BySubject) == 0 {
		fmt.Fprintln(w, "\nNo focus sessions recorded yet.")
		return nil
	}
	fmt.Fprintln(w)
	tw := tabwriter.NewWriter(w, 0, 4, 2, ' ', 0)
	fmt.Fprintln(tw, "SUBJECT\tMINUTES")
	for _, sm := range stats.BySubject {
		fmt.Fprintf(tw, "%s\t%d\n", sm.Subject, sm.Minutes)
	}
	return tw.Flush()
}
