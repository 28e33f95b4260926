package cli

import (
	"context"
	"fmt"

	"github.com/akyairhashvil/studyfocus/internal/config"
	"github.com/akyairhashvil/studyfocus/internal/tui"
	"github.com/akyairhashvil/studyfocus/internal/util"
	"github.com/spf13/cobra"
)

var reportDir string

var reportCmd = &cobra.Command{
	Use:   "report",
	Short: "Write a PDF study report",
	Long: `Write study_report_<date>.pdf with total focus time, minutes per
subject and the full session log.

Examples:
  studyfocus report
  studyfocus report --dir ./reports`,
	Args: cobra.NoArgs,
	RunE: runReport,
}

func init() {
	reportCmd.Flags().StringVar(&reportDir, "dir", "",
		"Output directory (default: Documents/STUDYFOCUS)")
	rootCmd.AddCommand(reportCmd)
}

func runReport(cmd *cobra.Command, args []string) error {
	ctx := cmd.Context()
	if ctx == nil {
		ctx = context.Background()
	}
	env, err := openEnv(ctx, cmd.ErrOrStderr(), false)
	if err != nil {
		return err
	}
	defer env.Close()

	dir := reportDir
	if dir == "" {
		dir = util.ReportsDir(config.AppName)
	}
	path, err := tui.GenerateStudyReport(ctx, env.db, dir)
	if err != nil {
		return err
	}
	env.logger.Debug("report written", "path", path)
	fmt.Fprintf(cmd.OutOrStdout(), "PDF report generated: %s\n", path)
	return nil
}
