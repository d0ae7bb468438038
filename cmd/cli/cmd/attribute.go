// Package cmd - attribute command
package cmd

import (
	"time"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"commission-engine/adapters/deals"
	"commission-engine/core/engine"
	"commission-engine/core/output"
	"commission-engine/internal/logging"
)

// attributeCmd represents the attribute command
var attributeCmd = &cobra.Command{
	Use:   "attribute",
	Short: "Attribute commission to individual deals",
	Long: `Compute a per-deal commission record for each deal in a deal export.

Deals are processed in close-date order; each deal earns the rate of
the tier covering the running attainment at the moment it closed.

Examples:
  commission-engine attribute --plan plan.hcl --deals deals.json
  commission-engine attribute --plan plan.hcl --deals deals.json --format json`,
	RunE: runAttribute,
}

func init() {
	attributeCmd.Flags().StringVarP(&planFile, "plan", "p", "", "commission plan file (HCL)")
	attributeCmd.Flags().StringVar(&planName, "plan-name", "", "plan to use when the file defines several")
	attributeCmd.Flags().StringVarP(&dealsFile, "deals", "d", "", "deal export file (JSON)")
	attributeCmd.Flags().StringVarP(&outputFormat, "format", "f", "", "output format (cli, json)")
	attributeCmd.MarkFlagRequired("plan")
	attributeCmd.MarkFlagRequired("deals")
}

func runAttribute(cmd *cobra.Command, args []string) error {
	startTime := time.Now()

	selected, err := loadPlan()
	if err != nil {
		return err
	}

	dealList, err := deals.Load(dealsFile)
	if err != nil {
		return err
	}
	logging.Info("Loaded deal export",
		zap.String("file", dealsFile),
		zap.Int("deals", len(dealList)))

	bookings := deals.TotalBookings(dealList)

	statement := &output.Statement{
		Plan:        selected.Name,
		Currency:    selected.Currency,
		Quota:       selected.Quota,
		Bookings:    bookings,
		Calculation: engine.CalculateCommission(bookings, selected.Quota, selected.Tiers),
		Attribution: engine.AttributeDeals(dealList, selected.Quota, selected.Tiers),
		Metadata: output.StatementMetadata{
			GeneratedAt: startTime.Format(time.RFC3339),
			Duration:    time.Since(startTime).String(),
			Version:     version,
		},
	}

	return renderStatement(statement)
}
