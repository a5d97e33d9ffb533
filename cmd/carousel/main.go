// Package main starts the testimonial carousel terminal preview.
package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	carouselcmd "github.com/louisbranch/voraglobal/internal/cmd/carousel"
	"github.com/louisbranch/voraglobal/internal/platform/config"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()
	if err := carouselcmd.NewCommand().ExecuteContext(ctx); err != nil {
		config.Exitf("%v", err)
	}
}
