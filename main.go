// asteroids is a terminal asteroids game built on a small ECS kernel.
//
// Usage:
//
//	./asteroids [-config tuning.yaml] [-log asteroids.log] [-v] [-seed 42] [-profile cpu]
package main

import (
	"flag"
	"fmt"
	"io"
	"log/slog"
	"math/rand"
	"os"
	"time"

	"asteroids/internal/config"
	"asteroids/internal/game"

	"github.com/pkg/profile"
)

func main() {
	cfgPath := flag.String("config", "", "YAML tuning file overlaid on the defaults")
	logPath := flag.String("log", "", "Write logs to this file (the terminal belongs to the game)")
	verbose := flag.Bool("v", false, "Log simulation events at debug level")
	seed := flag.Int64("seed", 0, "Random seed (0 picks one from the clock)")
	prof := flag.String("profile", "", "Profile the run: cpu or mem, written to the working directory")
	flag.Parse()

	cfg := config.Default()
	if *cfgPath != "" {
		var err error
		if cfg, err = config.Load(*cfgPath); err != nil {
			fmt.Fprintf(os.Stderr, "error: %v\n", err)
			os.Exit(1)
		}
	} else if err := cfg.Validate(); err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}

	var out io.Writer = io.Discard
	if *logPath != "" {
		f, err := os.OpenFile(*logPath, os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0o644)
		if err != nil {
			fmt.Fprintf(os.Stderr, "error: open log: %v\n", err)
			os.Exit(1)
		}
		defer f.Close()
		out = f
	}
	level := slog.LevelInfo
	if *verbose {
		level = slog.LevelDebug
	}
	logger := slog.New(slog.NewTextHandler(out, &slog.HandlerOptions{Level: level}))

	switch *prof {
	case "cpu":
		defer profile.Start(profile.CPUProfile, profile.ProfilePath("."), profile.NoShutdownHook, profile.Quiet).Stop()
	case "mem":
		defer profile.Start(profile.MemProfileAllocs, profile.ProfilePath("."), profile.NoShutdownHook, profile.Quiet).Stop()
	case "":
	default:
		fmt.Fprintf(os.Stderr, "error: unknown profile %q (want cpu or mem)\n", *prof)
		os.Exit(1)
	}

	if *seed == 0 {
		*seed = time.Now().UnixNano()
	}
	logger.Info("starting", "seed", *seed, "window", fmt.Sprintf("%gx%g", cfg.Window.Width, cfg.Window.Height))

	g, err := game.New(cfg, rand.New(rand.NewSource(*seed)), logger)
	if err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}
	g.Run()
}
