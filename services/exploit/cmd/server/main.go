// mission-exploit - hash-cracking terminal game server
// Copyright (C) 2026  nexus contributors
//
// This program is free software: you can redistribute it and/or modify
// it under the terms of the GNU Affero General Public License as published
// by the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.

package main

import (
	"flag"
	"fmt"
	"log"
	"net/http"
	"os"

	"github.com/jredh-dev/missionexploit/internal/challenge"
	"github.com/jredh-dev/missionexploit/services/exploit/config"
	"github.com/jredh-dev/missionexploit/services/exploit/internal/handlers"
	"github.com/jredh-dev/missionexploit/services/exploit/internal/receipt"
	"github.com/jredh-dev/missionexploit/services/exploit/internal/validator"
	gohttp "github.com/jredh-dev/missionexploit/services/go-http"
)

var (
	version   = "dev"
	commit    = "unknown"
	buildDate = "unknown"
)

func main() {
	showVersion := flag.Bool("version", false, "Show version information")
	flag.Parse()

	if *showVersion {
		fmt.Printf("mission-exploit %s\n", version)
		fmt.Printf("Commit: %s\n", commit)
		fmt.Printf("Built: %s\n", buildDate)
		os.Exit(0)
	}

	cfg := config.Load()

	v := validator.New(cfg.Challenge.TargetDigest, cfg.Challenge.Flag)
	receipts := receipt.New(cfg.Receipt.SigningKey, cfg.Receipt.Issuer, cfg.Receipt.TTL)
	h := handlers.New(cfg.Challenge, v, receipts)

	s := gohttp.New(gohttp.Options{OnPanic: handlers.ServerError})
	h.Register(s.Router, cfg.Server.MaxBodyBytes)

	if cfg.Server.StaticDir != "" {
		s.Router.Handle("/*", http.FileServer(http.Dir(cfg.Server.StaticDir)))
	}

	addr := ":" + cfg.Server.Port
	log.Printf("mission-exploit starting on %s (env=%s)", addr, cfg.Server.Env)
	log.Printf("  Submit:   POST http://localhost%s/submit", addr)
	log.Printf("  Health:   GET  http://localhost%s/health", addr)
	if cfg.Server.StaticDir != "" {
		log.Printf("  Static:   %s", cfg.Server.StaticDir)
	}
	log.Printf("  flag_set=%v hash_set=%v xor_key=%d receipts=%v",
		cfg.Challenge.FlagSet, cfg.Challenge.HashSet, challenge.XorKey, receipts.Enabled())

	if err := s.ListenAndServe(addr); err != nil {
		log.Fatalf("Server error: %v", err)
	}
}
