package cli

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/havenline/crisiscore/pkg/crisiscore"
)

var (
	assessJSON   bool
	assessRegion string
	assessLog    bool
)

var assessCmd = &cobra.Command{
	Use:   "assess [text]",
	Short: "Score text for crisis risk and show the intervention",
	Args:  cobra.MinimumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		engine, err := newEngine()
		if err != nil {
			return err
		}
		defer engine.Close()

		ctx := context.Background()
		engine.EnsureLoaded(ctx)

		text := strings.Join(args, " ")
		user := crisiscore.UserContext{Region: assessRegion}

		result := engine.Assess(text)
		response := engine.Respond(result, user)
		if assessLog {
			engine.LogCrisisEvent(result, user)
		}

		if assessJSON {
			out := struct {
				Result   crisiscore.AssessmentResult `json:"result"`
				Response *crisiscore.CrisisResponse  `json:"response,omitempty"`
			}{result, response}
			enc := json.NewEncoder(os.Stdout)
			enc.SetIndent("", "  ")
			return enc.Encode(out)
		}

		fmt.Printf("level:      %s\n", result.Level)
		fmt.Printf("score:      %d\n", result.Score)
		fmt.Printf("confidence: %.2f\n", result.Confidence)
		if len(result.Indicators) > 0 {
			fmt.Printf("indicators: %s\n", strings.Join(result.Indicators, ", "))
		}
		if result.RequiresImmediate {
			fmt.Println("requires immediate attention")
		}
		if response != nil {
			fmt.Printf("\n%s\n", response.Message)
			for _, r := range response.Resources {
				fmt.Printf("  - %s", r.Name)
				if r.Number != "" {
					fmt.Printf(" (%s)", r.Number)
				}
				fmt.Println()
			}
			for _, a := range response.Actions {
				marker := " "
				if a.Urgent {
					marker = "!"
				}
				fmt.Printf("  %s %s\n", marker, a.Label)
			}
		}
		return nil
	},
}

func init() {
	assessCmd.Flags().BoolVar(&assessJSON, "json", false, "Emit JSON")
	assessCmd.Flags().StringVar(&assessRegion, "region", "", "User region for resource selection")
	assessCmd.Flags().BoolVar(&assessLog, "log", false, "Persist the evaluation to the event log")
	rootCmd.AddCommand(assessCmd)
}
