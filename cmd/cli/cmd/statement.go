// Package cmd - statement command
package cmd

import (
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"commission-engine/adapters/deals"
	"commission-engine/adapters/plan"
	"commission-engine/core/engine"
	"commission-engine/core/output"
	"commission-engine/core/types"
	"commission-engine/internal/config"
	"commission-engine/internal/logging"
)

var (
	planFile        string
	planName        string
	dealsFile       string
	bookingsTotal   float64
	outputFormat    string
	withAttribution bool
)

// statementCmd represents the statement command
var statementCmd = &cobra.Command{
	Use:   "statement",
	Short: "Produce an aggregate commission statement",
	Long: `Compute gross commission and the per-tier breakdown for a rep's
bookings against a commission plan.

Bookings come either from a deal export (--deals, amounts are summed)
or directly via --bookings.

Examples:
  commission-engine statement --plan plan.hcl --deals deals.json
  commission-engine statement --plan plan.hcl --bookings 150000
  commission-engine statement --plan plan.hcl --deals deals.json --attribution --format json`,
	RunE: runStatement,
}

func init() {
	statementCmd.Flags().StringVarP(&planFile, "plan", "p", "", "commission plan file (HCL)")
	statementCmd.Flags().StringVar(&planName, "plan-name", "", "plan to use when the file defines several")
	statementCmd.Flags().StringVarP(&dealsFile, "deals", "d", "", "deal export file (JSON)")
	statementCmd.Flags().Float64VarP(&bookingsTotal, "bookings", "b", 0, "bookings total (overrides the deal sum)")
	statementCmd.Flags().StringVarP(&outputFormat, "format", "f", "", "output format (cli, json)")
	statementCmd.Flags().BoolVarP(&withAttribution, "attribution", "a", false, "include per-deal attribution")
	statementCmd.MarkFlagRequired("plan")
}

func runStatement(cmd *cobra.Command, args []string) error {
	startTime := time.Now()

	selected, err := loadPlan()
	if err != nil {
		return err
	}

	var dealList []types.Deal
	if dealsFile != "" {
		dealList, err = deals.Load(dealsFile)
		if err != nil {
			return err
		}
		logging.Info("Loaded deal export",
			zap.String("file", dealsFile),
			zap.Int("deals", len(dealList)))
	}

	bookings := bookingsTotal
	if !cmd.Flags().Changed("bookings") {
		if dealsFile == "" {
			return fmt.Errorf("either --deals or --bookings is required")
		}
		bookings = deals.TotalBookings(dealList)
	}

	statement := &output.Statement{
		Plan:        selected.Name,
		Currency:    selected.Currency,
		Quota:       selected.Quota,
		Bookings:    bookings,
		Calculation: engine.CalculateCommission(bookings, selected.Quota, selected.Tiers),
	}
	if withAttribution {
		statement.Attribution = engine.AttributeDeals(dealList, selected.Quota, selected.Tiers)
	}
	statement.Metadata = output.StatementMetadata{
		GeneratedAt: startTime.Format(time.RFC3339),
		Duration:    time.Since(startTime).String(),
		Version:     version,
	}

	return renderStatement(statement)
}

// loadPlan loads the plan file, selects a plan and warns on validation
// findings. Warnings never block a statement run; use "plan validate"
// for a hard check.
func loadPlan() (*plan.Plan, error) {
	plans, err := plan.Load(planFile)
	if err != nil {
		return nil, err
	}
	selected, err := plan.Select(plans, planName)
	if err != nil {
		return nil, err
	}
	if selected.Currency == "" {
		selected.Currency = config.Get().Statement.Currency
	}

	for _, issue := range selected.Validate() {
		logging.Warn("Plan validation issue",
			zap.String("plan", selected.Name),
			zap.String("severity", string(issue.Severity)),
			zap.String("tier", issue.Tier),
			zap.String("message", issue.Message))
	}

	logging.Info("Loaded commission plan",
		zap.String("plan", selected.Name),
		zap.Float64("quota", selected.Quota),
		zap.Int("tiers", len(selected.Tiers)))
	return selected, nil
}

func renderStatement(statement *output.Statement) error {
	cfg := config.Get()

	format := output.Format(outputFormat)
	if outputFormat == "" {
		format = output.Format(cfg.Output.DefaultFormat)
	}

	formatConfig := output.FormatConfig{
		PercentDecimals: cfg.Output.PercentDecimals,
		CurrencySymbol:  cfg.Statement.CurrencySymbol,
		ShowBreakdown:   cfg.Output.ShowBreakdown,
	}

	formatter, ok := output.NewFormatter(format, formatConfig)
	if !ok {
		return fmt.Errorf("unknown output format: %s", format)
	}
	return formatter.Render(os.Stdout, statement)
}
