package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"cram/internal/app"
)

func main() {
	os.Exit(run())
}

func run() int {
	configPath := flag.String("config", "", "override config path (optional)")
	topic := flag.String("topic", "", "generate a deck for this topic on startup (optional)")
	flag.Parse()

	ctx, cancel := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer cancel()

	opts := app.Options{ConfigPath: *configPath, Topic: *topic}

	if err := app.Run(ctx, opts); err != nil {
		fmt.Fprintf(os.Stderr, "cram: %v\n", err)
		return 1
	}
	return 0
}
