// Package main starts the Vora Global site service.
package main

import (
	"context"
	"flag"
	"os"
	"os/signal"
	"syscall"

	sitecmd "github.com/louisbranch/voraglobal/internal/cmd/site"
	"github.com/louisbranch/voraglobal/internal/platform/config"
)

func main() {
	cfg, err := sitecmd.ParseConfig(flag.CommandLine, os.Args[1:])
	if err != nil {
		config.Exitf("parse flags: %v", err)
	}
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()
	if err := sitecmd.Run(ctx, cfg); err != nil {
		config.Exitf("failed to serve: %v", err)
	}
}
