// Package main - Entry point for the landed-cost API server
package main

import (
	"flag"
	"fmt"
	"log"
	"net/http"

	"landed-cost/api"
	"landed-cost/core/denylist"
	"landed-cost/core/engine"
	"landed-cost/core/refdata"
	"landed-cost/core/report"
	"landed-cost/internal/config"
	"landed-cost/internal/logging"
)

const version = "1.0.0"

func main() {
	addr := flag.String("addr", "", "listen address (overrides the config file)")
	cfgPath := flag.String("config", "", "config file (HCL)")
	flag.Parse()

	cfg, err := config.Load(*cfgPath)
	if err != nil {
		log.Fatal(err)
	}
	config.Set(cfg)
	if err := logging.Initialize(cfg.LogConfig()); err != nil {
		log.Fatal(err)
	}
	defer logging.Sync()

	tables, err := refdata.Load(cfg.Data)
	if err != nil {
		log.Fatal(err)
	}
	suppliers, err := denylist.Load(cfg.Data.Denylist)
	if err != nil {
		log.Fatal(err)
	}

	server := api.NewServer(version, engine.New(tables, suppliers), report.NewAssembler())

	mux := http.NewServeMux()
	mux.Handle("/api/", http.StripPrefix("/api", server))

	listen := *addr
	if listen == "" {
		listen = cfg.Server.Addr
	}

	fmt.Printf("landed-cost API v%s listening on %s\n", version, listen)
	fmt.Printf("   POST http://localhost%s/api/analyze\n", listen)
	if err := http.ListenAndServe(listen, mux); err != nil {
		log.Fatal(err)
	}
}
