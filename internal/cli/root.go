// Package cli implements the crisiscore operator CLI: offline assessment,
// configuration inspection, statistics, and provider report generation.
package cli

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/havenline/crisiscore/internal/storage"
	"github.com/havenline/crisiscore/pkg/crisiscore"
)

var (
	stateDir   string
	configPath string
	remoteURL  string
)

var rootCmd = &cobra.Command{
	Use:   "crisiscore",
	Short: "Crisis risk assessment and intervention engine",
	Long:  "Scans free-form text for self-harm risk signals, grades the risk, selects an escalation response, and durably logs events through a tiered fallback chain.",
}

func init() {
	defaultState := ""
	if home, err := os.UserHomeDir(); err == nil {
		defaultState = filepath.Join(home, ".crisiscore")
	}
	rootCmd.PersistentFlags().StringVar(&stateDir, "state-dir", defaultState, "Directory for stores and logs")
	rootCmd.PersistentFlags().StringVar(&configPath, "config", "", "Local YAML override file")
	rootCmd.PersistentFlags().StringVar(&remoteURL, "remote-url", "", "Remote configuration override endpoint")
}

// Execute runs the root command.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

// newEngine builds an engine over the state directory: SQLite secure store,
// file-backed plain store, JSONL application log.
func newEngine() (*crisiscore.Engine, error) {
	if stateDir == "" {
		return nil, fmt.Errorf("no state directory (set --state-dir)")
	}
	if err := os.MkdirAll(stateDir, 0700); err != nil {
		return nil, fmt.Errorf("create state dir: %w", err)
	}

	secure, err := storage.NewSQLiteStore(filepath.Join(stateDir, "secure.db"))
	if err != nil {
		return nil, fmt.Errorf("open secure store: %w", err)
	}
	plain, err := storage.NewFileStore(filepath.Join(stateDir, "plain"))
	if err != nil {
		return nil, fmt.Errorf("open plain store: %w", err)
	}

	return crisiscore.New(
		crisiscore.WithSecureStore(secure),
		crisiscore.WithPlainStore(plain),
		crisiscore.WithConfigFile(configPath),
		crisiscore.WithRemoteEndpoint(remoteURL),
		crisiscore.WithAppLog(filepath.Join(stateDir, "app.log")),
	), nil
}
