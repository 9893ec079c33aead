// Package cmd - analyze command
package cmd

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"time"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"landed-cost/core/denylist"
	"landed-cost/core/engine"
	"landed-cost/core/refdata"
	"landed-cost/core/report"
	"landed-cost/core/types"
	"landed-cost/internal/config"
	"landed-cost/internal/errors"
	"landed-cost/internal/logging"
)

var outputPretty bool

// analyzeCmd represents the analyze command
var analyzeCmd = &cobra.Command{
	Use:   "analyze [request-file]",
	Short: "Analyze one shipment request and print the report",
	Long: `Read a shipment request (JSON) from a file or stdin and print the
full landed-cost and risk report to stdout.

Examples:
  landed-cost analyze request.json
  cat request.json | landed-cost analyze -
  landed-cost analyze --pretty request.json`,
	Args: cobra.MaximumNArgs(1),
	RunE: runAnalyze,
}

func init() {
	analyzeCmd.Flags().BoolVarP(&outputPretty, "pretty", "p", false, "indent the report JSON")
}

func runAnalyze(cmd *cobra.Command, args []string) error {
	start := time.Now()

	input, err := readRequestInput(args)
	if err != nil {
		return err
	}

	var req types.ShipmentRequest
	if err := json.Unmarshal(input, &req); err != nil {
		return errors.Wrap(errors.TypeValidation, "cannot parse shipment request", err)
	}

	eng, err := buildEngine()
	if err != nil {
		return err
	}

	result, err := eng.Estimate(&req)
	if err != nil {
		return err
	}

	doc := report.NewAssembler().Assemble(result, report.RequestMeta{TargetMarket: req.TargetMarket})

	encoder := json.NewEncoder(os.Stdout)
	if outputPretty {
		encoder.SetIndent("", "  ")
	}
	if err := encoder.Encode(doc); err != nil {
		return err
	}

	logging.Debug("analysis complete",
		zap.String("confidence", string(doc.Meta.ConfidenceLevel)),
		zap.Int64("duration_ms", time.Since(start).Milliseconds()))
	return nil
}

// readRequestInput reads the request JSON from the named file, or from
// stdin when no argument or "-" is given.
func readRequestInput(args []string) ([]byte, error) {
	if len(args) == 0 || args[0] == "-" {
		return io.ReadAll(os.Stdin)
	}

	path := args[0]
	if _, err := os.Stat(path); os.IsNotExist(err) {
		return nil, fmt.Errorf("request file does not exist: %s", path)
	}
	return os.ReadFile(path)
}

// buildEngine loads reference tables and the denylist per the active
// configuration and constructs the aggregator.
func buildEngine() (*engine.Engine, error) {
	cfg := config.Get()

	tables, err := refdata.Load(cfg.Data)
	if err != nil {
		return nil, err
	}
	suppliers, err := denylist.Load(cfg.Data.Denylist)
	if err != nil {
		return nil, err
	}
	return engine.New(tables, suppliers), nil
}
