package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/five82/pokesearch/internal/app"
)

func main() {
	os.Exit(run())
}

func run() int {
	configPath := flag.String("config", "", "override config path (optional)")
	prefsPath := flag.String("prefs", "", "override prefs path (optional)")
	rosterURL := flag.String("url", "", "roster JSON URL (optional)")
	rosterFile := flag.String("file", "", "local roster .json/.yaml file (optional)")
	fetch := flag.Bool("fetch", false, "load the roster as soon as the UI starts")
	flag.Parse()

	ctx, cancel := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer cancel()

	opts := app.Options{
		ConfigPath:   *configPath,
		PrefsPath:    *prefsPath,
		RosterURL:    *rosterURL,
		RosterFile:   *rosterFile,
		FetchOnStart: *fetch,
	}

	if err := app.Run(ctx, opts); err != nil {
		fmt.Fprintf(os.Stderr, "pokesearch: %v\n", err)
		return 1
	}
	return 0
}
