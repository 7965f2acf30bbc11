package cli

import (
	"context"
	"encoding/json"
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var reportEventID string

var reportCmd = &cobra.Command{
	Use:   "report",
	Short: "Generate an anonymized provider report for a logged event",
	RunE: func(cmd *cobra.Command, args []string) error {
		engine, err := newEngine()
		if err != nil {
			return err
		}
		defer engine.Close()

		events, err := engine.Events(context.Background())
		if err != nil {
			return fmt.Errorf("read event log: %w", err)
		}
		if len(events) == 0 {
			return fmt.Errorf("event log is empty")
		}

		event := events[len(events)-1]
		if reportEventID != "" {
			found := false
			for _, ev := range events {
				if ev.ID == reportEventID {
					event, found = ev, true
					break
				}
			}
			if !found {
				return fmt.Errorf("no event with id %s", reportEventID)
			}
		}

		report := engine.PrepareProviderReport(event)
		enc := json.NewEncoder(os.Stdout)
		enc.SetIndent("", "  ")
		return enc.Encode(report)
	},
}

func init() {
	reportCmd.Flags().StringVar(&reportEventID, "event", "", "Event ID (default: most recent)")
	rootCmd.AddCommand(reportCmd)
}
