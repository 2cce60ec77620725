package main

import (
	"fmt"

	"github.com/spf13/cobra"
)

var tdeeCmd = &cobra.Command{
	Use:   "tdee <user-id>",
	Short: "Estimate the starting energy expenditure of an athlete",
	Long:  "Bootstrap the TDEE of an athlete from the stored profile and latest weight, before a weight trend exists.",
	Args:  cobra.ExactArgs(1),
	RunE:  runTDEE,
}

func runTDEE(cmd *cobra.Command, args []string) error {
	ctx := cmd.Context()
	components, closeFn, err := openComponents(ctx)
	if err != nil {
		return err
	}
	defer closeFn()

	estimate, err := components.Nutrition.Bootstrap(ctx, args[0])
	if err != nil {
		return fmt.Errorf("bootstrap tdee of %s: %w", args[0], err)
	}

	if jsonOutput {
		return printJSON(cmd.OutOrStdout(), estimate)
	}
	fmt.Fprintf(cmd.OutOrStdout(), "bmr %.0f kcal, tdee %.0f kcal, start target %.0f kcal\n",
		estimate.BMR, estimate.TDEE, estimate.StartKcal,
	)
	return nil
}
