package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"crapsim/cmd"

	log "github.com/sirupsen/logrus"
)

func main() {
	os.Exit(run())
}

func run() int {
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	// Handle graceful shutdown
	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, os.Interrupt, syscall.SIGTERM)
	go func() {
		<-sigChan
		log.Info("Received shutdown signal, shutting down gracefully...")
		cancel()
	}()

	// Check for the bot subcommand
	if len(os.Args) > 1 && os.Args[1] == "bot" {
		if err := cmd.RunBot(ctx); err != nil {
			log.Errorf("Bot error: %v", err)
			return 1
		}
		return 0
	}

	if err := cmd.Run(ctx, os.Args[1:], os.Stdout, os.Stderr); err != nil {
		fmt.Fprintln(os.Stderr, "error:", err)
		return 1
	}
	return 0
}
