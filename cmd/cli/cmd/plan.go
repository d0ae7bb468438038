// Package cmd - plan commands
package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"commission-engine/adapters/plan"
)

// planCmd groups plan file operations
var planCmd = &cobra.Command{
	Use:   "plan",
	Short: "Inspect commission plan files",
	Run: func(cmd *cobra.Command, args []string) {
		cmd.Help()
	},
}

// planValidateCmd validates a plan file
var planValidateCmd = &cobra.Command{
	Use:   "validate [file]",
	Short: "Validate a commission plan file",
	Long: `Parse a plan file and check every plan in it for well-formedness:
negative floors or rates, inverted ranges, overlapping or gapped tiers.

The calculators accept malformed schedules and produce deterministic
(if surprising) results from them; validate catches these upstream.`,
	Args: cobra.ExactArgs(1),
	RunE: runPlanValidate,
}

func init() {
	planCmd.AddCommand(planValidateCmd)
}

func runPlanValidate(cmd *cobra.Command, args []string) error {
	plans, err := plan.Load(args[0])
	if err != nil {
		return err
	}

	failed := false
	for i := range plans {
		current := &plans[i]
		issues := current.Validate()
		if len(issues) == 0 {
			fmt.Printf("plan %q: ok (%d tiers, quota %v)\n", current.Name, len(current.Tiers), current.Quota)
			continue
		}

		for _, issue := range issues {
			if issue.Tier != "" {
				fmt.Printf("plan %q: %s: tier %q: %s\n", current.Name, issue.Severity, issue.Tier, issue.Message)
			} else {
				fmt.Printf("plan %q: %s: %s\n", current.Name, issue.Severity, issue.Message)
			}
		}
		if plan.HasErrors(issues) {
			failed = true
		}
	}

	if failed {
		return fmt.Errorf("plan file has validation errors")
	}
	return nil
}
