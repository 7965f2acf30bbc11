package cli

import (
	"context"
	"encoding/json"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/havenline/crisiscore/pkg/crisiscore"
)

var planCmd = &cobra.Command{
	Use:   "plan",
	Short: "Manage the stored safety plan",
}

var planInitCmd = &cobra.Command{
	Use:   "init [plan.json]",
	Short: "Create the safety plan, from a JSON file or empty",
	Args:  cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		engine, err := newEngine()
		if err != nil {
			return err
		}
		defer engine.Close()

		var plan crisiscore.SafetyPlan
		if len(args) == 1 {
			data, err := os.ReadFile(args[0])
			if err != nil {
				return fmt.Errorf("read plan: %w", err)
			}
			if err := json.Unmarshal(data, &plan); err != nil {
				return fmt.Errorf("parse plan: %w", err)
			}
		}

		created, err := engine.CreateSafetyPlan(context.Background(), plan)
		if err != nil {
			return err
		}
		fmt.Printf("safety plan created (version %d, %d emergency contacts)\n",
			created.Version, len(created.EmergencyContacts))
		return nil
	},
}

var planShowCmd = &cobra.Command{
	Use:   "show",
	Short: "Print the stored safety plan",
	RunE: func(cmd *cobra.Command, args []string) error {
		engine, err := newEngine()
		if err != nil {
			return err
		}
		defer engine.Close()

		plan, err := engine.GetSafetyPlan(context.Background())
		if err != nil {
			return err
		}
		if plan == nil {
			return fmt.Errorf("no safety plan stored (run: crisiscore plan init)")
		}
		enc := json.NewEncoder(os.Stdout)
		enc.SetIndent("", "  ")
		return enc.Encode(plan)
	},
}

func init() {
	planCmd.AddCommand(planInitCmd, planShowCmd)
	rootCmd.AddCommand(planCmd)
}
