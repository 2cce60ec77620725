package main

import (
	"errors"
	"fmt"
	"time"

	"github.com/2beens/adaptivecoach/internal/aggregate"
	"github.com/2beens/adaptivecoach/internal/pipeline"

	"github.com/spf13/cobra"
)

var (
	pipelineWeek string
	pipelineUser string
)

var runPipelineCmd = &cobra.Command{
	Use:   "run-pipeline",
	Short: "Run the weekly adjustment pipeline now",
	Long: "Aggregate a closed training week and issue next week's directives and nutrition targets. " +
		"Runs for every athlete unless --user is given. Directives already issued are left untouched.",
	Args: cobra.NoArgs,
	RunE: runPipeline,
}

func init() {
	runPipelineCmd.Flags().StringVar(&pipelineWeek, "week", "",
		"any day (YYYY-MM-DD) of the closed week, defaults to last week")
	runPipelineCmd.Flags().StringVar(&pipelineUser, "user", "",
		"run for a single athlete")
}

func closedWeekFlag(value string, now time.Time) (aggregate.Window, error) {
	if value == "" {
		return pipeline.ClosedWeek(now), nil
	}
	day, err := time.Parse(time.DateOnly, value)
	if err != nil {
		return aggregate.Window{}, fmt.Errorf("invalid --week %q, expected YYYY-MM-DD", value)
	}
	return aggregate.WeekOf(day), nil
}

func runPipeline(cmd *cobra.Command, _ []string) error {
	closed, err := closedWeekFlag(pipelineWeek, time.Now())
	if err != nil {
		return err
	}

	ctx := cmd.Context()
	components, closeFn, err := openComponents(ctx)
	if err != nil {
		return err
	}
	defer closeFn()

	out := cmd.OutOrStdout()
	if pipelineUser != "" {
		res, err := components.Pipeline.RunUser(ctx, pipelineUser, closed)
		if jsonOutput && res != nil {
			if printErr := printJSON(out, res); printErr != nil {
				return errors.Join(err, printErr)
			}
		} else if res != nil {
			printUserResult(cmd, *res)
		}
		return err
	}

	summary, err := components.Pipeline.Run(ctx, closed)
	if err != nil {
		return err
	}
	if jsonOutput {
		return printJSON(out, summary)
	}

	fmt.Fprintf(out, "week %s: %d athletes, %d ok, %d failed, %d already issued, took %s\n",
		summary.WeekStart.Format(time.DateOnly),
		summary.Users,
		summary.Succeeded,
		summary.Failed,
		summary.DuplicateDirectives,
		summary.Duration.Round(time.Millisecond),
	)
	for _, res := range summary.Results {
		printUserResult(cmd, res)
	}
	return nil
}

func printUserResult(cmd *cobra.Command, res pipeline.UserResult) {
	out := cmd.OutOrStdout()
	status := "ok"
	switch {
	case res.Error != "":
		status = "failed: " + res.Error
	case res.DuplicateDirective:
		status = "directive already issued"
	}
	fmt.Fprintf(out, "  %s: %s\n", res.UserID, status)
	for _, skipped := range res.Skipped {
		fmt.Fprintf(out, "    skipped %s\n", skipped)
	}
}
