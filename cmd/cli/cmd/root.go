// Package cmd provides the CLI commands for landed-cost.
package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"landed-cost/internal/config"
	"landed-cost/internal/logging"
)

// Version is the CLI version, stamped into reports and the API.
const Version = "1.0.0"

var (
	cfgFile string
	verbose bool
)

// rootCmd represents the base command
var rootCmd = &cobra.Command{
	Use:   "landed-cost",
	Short: "Estimate landed cost and sourcing risk for marketplace shipments",
	Long: `landed-cost estimates the fully landed (DDP) cost of importing a
product and classifies the sourcing risk of the order.

Every estimate is deterministic: the same input always produces the
same cost ranges, risk findings, and assumption list.

Examples:
  landed-cost analyze request.json
  cat request.json | landed-cost analyze -
  landed-cost serve --addr :8080`,
}

// Execute runs the CLI
func Execute() error {
	return rootCmd.Execute()
}

func init() {
	cobra.OnInitialize(initConfig)

	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file (HCL, default $LANDED_COST_CONFIG)")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "enable verbose output")

	// Add subcommands
	rootCmd.AddCommand(analyzeCmd)
	rootCmd.AddCommand(serveCmd)
	rootCmd.AddCommand(versionCmd)
}

func initConfig() {
	cfg, err := config.Load(cfgFile)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error loading config: %v\n", err)
		os.Exit(1)
	}
	config.Set(cfg)

	// Initialize logging
	lc := cfg.LogConfig()
	if verbose {
		lc.Level = "debug"
	}
	if err := logging.Initialize(lc); err != nil {
		fmt.Fprintf(os.Stderr, "Error initializing logging: %v\n", err)
	}
}

// versionCmd prints version information
var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print version information",
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Printf("landed-cost version %s\n", Version)
	},
}
