package cli

import (
	"context"
	"encoding/json"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/havenline/crisiscore/pkg/crisiscore"
)

var statsJSON bool

var statsCmd = &cobra.Command{
	Use:   "stats",
	Short: "Aggregate the persisted crisis logs",
	RunE: func(cmd *cobra.Command, args []string) error {
		engine, err := newEngine()
		if err != nil {
			return err
		}
		defer engine.Close()

		stats, err := engine.GetStatistics(context.Background())
		if err != nil {
			return fmt.Errorf("aggregate statistics: %w", err)
		}

		if statsJSON {
			enc := json.NewEncoder(os.Stdout)
			enc.SetIndent("", "  ")
			return enc.Encode(stats)
		}

		fmt.Printf("events:   %d total, %d in last 30 days\n", stats.TotalEvents, stats.EventsLast30Days)
		fmt.Printf("actions:  %d total, %d in last 30 days\n", stats.TotalActions, stats.ActionsLast30Days)
		fmt.Printf("response rate: %.2f\n", stats.ResponseRate)
		if len(stats.LevelDistribution) > 0 {
			fmt.Println("distribution:")
			for _, level := range []crisiscore.RiskLevel{
				crisiscore.RiskNone, crisiscore.RiskLow, crisiscore.RiskModerate,
				crisiscore.RiskHigh, crisiscore.RiskCritical,
			} {
				if n := stats.LevelDistribution[level]; n > 0 {
					fmt.Printf("  %-9s %d\n", level, n)
				}
			}
		}
		for i, ind := range stats.TopIndicators {
			if i == 0 {
				fmt.Println("top indicators (hashed):")
			}
			fmt.Printf("  %s… ×%d\n", ind.IndicatorHash[:12], ind.Count)
		}
		return nil
	},
}

func init() {
	statsCmd.Flags().BoolVar(&statsJSON, "json", false, "Emit JSON")
	rootCmd.AddCommand(statsCmd)
}
