// Package cmd - serve command
package cmd

import (
	"fmt"
	"net/http"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"landed-cost/api"
	"landed-cost/core/report"
	"landed-cost/internal/config"
	"landed-cost/internal/logging"
)

var serveAddr string

// serveCmd represents the serve command
var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Run the HTTP API server",
	Long: `Start the landed-cost HTTP API.

Endpoints:
  POST /api/analyze   run one analysis
  GET  /api/health    liveness
  GET  /api/version   build version`,
	RunE: runServe,
}

func init() {
	serveCmd.Flags().StringVar(&serveAddr, "addr", "", "listen address (overrides the config file)")
}

func runServe(cmd *cobra.Command, args []string) error {
	eng, err := buildEngine()
	if err != nil {
		return err
	}
	server := api.NewServer(Version, eng, report.NewAssembler())

	mux := http.NewServeMux()
	mux.Handle("/api/", http.StripPrefix("/api", server))

	addr := serveAddr
	if addr == "" {
		addr = config.Get().Server.Addr
	}

	logging.Info("starting API server", zap.String("addr", addr), zap.String("version", Version))
	fmt.Printf("landed-cost API v%s listening on %s\n", Version, addr)
	return http.ListenAndServe(addr, mux)
}
