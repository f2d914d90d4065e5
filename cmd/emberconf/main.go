package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/emberterm/ember/internal/app"
)

func main() {
	os.Exit(run())
}

func run() int {
	configPath := flag.String("config", "", "explicit ember config file (optional)")
	check := flag.Bool("check", false, "validate the config and exit without the TUI")
	theme := flag.String("theme", "", "theme override for this session (optional)")
	flag.Parse()

	opts := app.Options{ConfigPath: *configPath, Theme: *theme}

	if *check {
		if err := app.Check(opts, os.Stdout); err != nil {
			return 1
		}
		return 0
	}

	ctx, cancel := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer cancel()

	if err := app.Run(ctx, opts); err != nil {
		fmt.Fprintf(os.Stderr, "emberconf: %v\n", err)
		return 1
	}
	return 0
}
