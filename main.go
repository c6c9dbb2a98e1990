package main

import (
	"context"
	"errors"
	"os"
	"os/signal"
	"syscall"

	"github.com/charmbracelet/log"

	"github.com/slsforge/slsforge/cmd"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := cmd.Execute(ctx, os.Args); err != nil {
		stop()
		if errors.Is(err, cmd.ErrInterrupted) || errors.Is(err, context.Canceled) {
			os.Exit(130)
		}
		log.Error(err)
		os.Exit(1)
	}
}
