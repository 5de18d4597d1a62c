package app

import (
	"context"
	"fmt"
	"log"
	"strings"

	"github.com/five82/pokesearch/internal/config"
	"github.com/five82/pokesearch/internal/pokedex"
	"github.com/five82/pokesearch/internal/prefs"
	"github.com/five82/pokesearch/internal/ui"
)

// Options configure the pokesearch application. Non-empty values override
// the config file.
type Options struct {
	ConfigPath   string
	PrefsPath    string // empty uses default ~/.config/pokesearch/prefs.toml
	RosterURL    string
	RosterFile   string
	FetchOnStart bool
}

// Run boots the TUI until the context is cancelled or the user quits.
func Run(ctx context.Context, opts Options) error {
	cfg, err := config.Load(opts.ConfigPath)
	if err != nil {
		return fmt.Errorf("load config: %w", err)
	}
	cfg = applyOverrides(cfg, opts)

	logFile, err := setupLogging(cfg.LogFile)
	if err != nil {
		return fmt.Errorf("open log file: %w", err)
	}
	defer logFile.Close()

	source, err := pokedex.NewSource(cfg.RosterURL, cfg.RosterFile)
	if err != nil {
		return fmt.Errorf("init roster source: %w", err)
	}
	label := sourceLabel(source)
	log.Printf("pokesearch starting; roster source %s, fetch on start %v", label, cfg.FetchOnStart)

	userPrefs := prefs.Load(opts.PrefsPath)

	uiOpts := ui.Options{
		Context:      ctx,
		Source:       source,
		SourceLabel:  label,
		FetchOnStart: cfg.FetchOnStart,
		ThemeName:    userPrefs.Theme,
		StatBars:     userPrefs.StatBars,
		PrefsPath:    opts.PrefsPath,
	}
	return ui.Run(uiOpts)
}

func applyOverrides(cfg config.Config, opts Options) config.Config {
	if url := strings.TrimSpace(opts.RosterURL); url != "" {
		cfg.RosterURL = url
		// An explicit URL beats a file coming from the config.
		cfg.RosterFile = ""
	}
	if file := strings.TrimSpace(opts.RosterFile); file != "" {
		cfg.RosterFile = file
	}
	if opts.FetchOnStart {
		cfg.FetchOnStart = true
	}
	return cfg
}

func sourceLabel(src pokedex.RosterSource) string {
	switch s := src.(type) {
	case *pokedex.Client:
		return s.URL()
	case pokedex.FileSource:
		return s.Path
	default:
		return fmt.Sprintf("%T", src)
	}
}
