package main

import (
	"flag"
	"fmt"
	"log/slog"
	"os"
	"runtime/debug"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/marcus/jot/internal/app"
	"github.com/marcus/jot/internal/collection"
	"github.com/marcus/jot/internal/config"
	"github.com/marcus/jot/internal/state"
	"github.com/marcus/jot/internal/storage"
	"github.com/marcus/jot/internal/watch"
)

// Version is set at build time via ldflags
var Version = ""

var (
	configPath   = flag.String("config", "", "path to config file")
	notesDir     = flag.String("dir", "", "notes directory (overrides config)")
	debugFlag    = flag.Bool("debug", false, "enable debug logging")
	versionFlag  = flag.Bool("version", false, "print version and exit")
	shortVersion = flag.Bool("v", false, "print version and exit (short)")
)

func main() {
	flag.Parse()

	// Handle version flag
	if *versionFlag || *shortVersion {
		fmt.Printf("jot version %s\n", effectiveVersion(Version))
		os.Exit(0)
	}

	// Setup logging
	logLevel := slog.LevelInfo
	if *debugFlag {
		logLevel = slog.LevelDebug
	}
	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
		Level: logLevel,
	}))

	// Load configuration
	cfg, err := loadConfig(*configPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to load config: %v\n", err)
		os.Exit(1)
	}

	// Load persistent state (ignore errors - state is optional)
	_ = state.Init()

	// Resolve the notes directory: flag > config > default
	dir := *notesDir
	if dir == "" {
		dir = config.ExpandPath(cfg.Notes.Dir)
	}
	if dir == "" {
		dir, err = storage.DefaultDir()
		if err != nil {
			fmt.Fprintf(os.Stderr, "Failed to resolve notes directory: %v\n", err)
			os.Exit(1)
		}
	}

	store, err := storage.New(dir, logger)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to open notes directory: %v\n", err)
		os.Exit(1)
	}

	coll := collection.New(store)
	if err := coll.Load(); err != nil {
		fmt.Fprintf(os.Stderr, "Failed to load notes: %v\n", err)
		os.Exit(1)
	}

	// File watching is best effort; the app works without it.
	watcher, err := watch.New(dir, logger)
	if err != nil {
		logger.Warn("file watching unavailable", "error", err)
		watcher = nil
	}

	model := app.New(cfg, coll, watcher, logger, effectiveVersion(Version))
	p := tea.NewProgram(model, tea.WithAltScreen())

	if _, err := p.Run(); err != nil {
		fmt.Fprintf(os.Stderr, "Error running application: %v\n", err)
		os.Exit(1)
	}
}

func loadConfig(path string) (*config.Config, error) {
	if path != "" {
		return config.LoadFrom(path)
	}
	return config.Load()
}

// effectiveVersion returns the version string, with fallback to build info.
func effectiveVersion(v string) string {
	if v != "" {
		return v
	}

	// Try to get version from Go build info
	info, ok := debug.ReadBuildInfo()
	if !ok {
		return "unknown"
	}

	// Check module version
	if info.Main.Version != "" && info.Main.Version != "(devel)" {
		return info.Main.Version
	}

	// Fall back to VCS info
	var revision string
	var dirty bool

	for _, setting := range info.Settings {
		switch setting.Key {
		case "vcs.revision":
			revision = setting.Value
		case "vcs.modified":
			dirty = setting.Value == "true"
		}
	}

	if revision != "" {
		ver := "devel+" + revision
		if len(ver) > 20 {
			ver = ver[:20]
		}
		if dirty {
			ver += "+dirty"
		}
		return ver
	}

	return "devel"
}

func init() {
	// Customize usage output
	flag.Usage = func() {
		fmt.Fprintf(os.Stderr, "Usage: jot [options]\n\n")
		fmt.Fprintf(os.Stderr, "A terminal notes app with a sidebar and markdown preview.\n\n")
		fmt.Fprintf(os.Stderr, "Options:\n")
		flag.PrintDefaults()
	}
}
