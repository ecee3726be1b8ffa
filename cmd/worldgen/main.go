// Command worldgen generates a Crystalvale world from a seed and options,
// optionally persisting it and serving it over the read-only API.
package main

import (
	"flag"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"sort"
	"syscall"

	"github.com/talgya/crystalvale/internal/api"
	"github.com/talgya/crystalvale/internal/config"
	"github.com/talgya/crystalvale/internal/persistence"
	"github.com/talgya/crystalvale/internal/world"
)

func main() {
	var (
		configPath   = flag.String("config", "", "YAML options file (overlays defaults)")
		seed         = flag.Int64("seed", 42, "world seed (overrides config)")
		radius       = flag.Int("radius", 0, "world radius in hex rings (0 = keep config)")
		name         = flag.String("name", "", "world name (overrides config)")
		dbPath       = flag.String("db", "", "save the world to this SQLite database")
		snapshotPath = flag.String("snapshot", "", "write a compressed snapshot to this path")
		servePort    = flag.Int("serve", 0, "serve the world over HTTP on this port (0 = off)")
	)
	flag.Parse()

	logger := slog.New(slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{
		Level: slog.LevelInfo,
	}))
	slog.SetDefault(logger)

	opts := world.DefaultOptions()
	if *configPath != "" {
		loaded, err := config.Load(*configPath)
		if err != nil {
			slog.Error("failed to load config", "path", *configPath, "error", err)
			os.Exit(1)
		}
		opts = loaded
	}
	opts.Seed = *seed
	if *radius > 0 {
		opts.Radius = *radius
	}
	if *name != "" {
		opts.Name = *name
	}
	if err := opts.Validate(); err != nil {
		slog.Error("invalid options", "error", err)
		os.Exit(1)
	}

	slog.Info("generating world", "name", opts.Name, "seed", opts.Seed, "radius", opts.Radius)
	w := world.NewGenerator(opts).Generate()
	slog.Info("world generated",
		"tiles", w.Map.TileCount(),
		"start_q", w.Start.Q,
		"start_r", w.Start.R,
	)

	// Stable log order for the distribution summary.
	biomes := make([]world.Biome, 0, len(w.Distribution))
	for b := range w.Distribution {
		biomes = append(biomes, b)
	}
	sort.Slice(biomes, func(i, j int) bool { return biomes[i] < biomes[j] })
	for _, b := range biomes {
		slog.Info("biome", "type", b.String(), "fraction", fmt.Sprintf("%.3f", w.Distribution[b]))
	}

	var worldID string
	if *dbPath != "" {
		db, err := persistence.Open(*dbPath)
		if err != nil {
			slog.Error("failed to open database", "error", err)
			os.Exit(1)
		}
		defer db.Close()

		worldID, err = db.SaveWorld(w, opts)
		if err != nil {
			slog.Error("failed to save world", "error", err)
			os.Exit(1)
		}
	}

	if *snapshotPath != "" {
		if err := persistence.WriteSnapshot(*snapshotPath, worldID, w, opts); err != nil {
			slog.Error("failed to write snapshot", "error", err)
			os.Exit(1)
		}
		slog.Info("snapshot written", "path", *snapshotPath)
	}

	if *servePort > 0 {
		server := &api.Server{World: w, Port: *servePort}
		server.Start()

		sigCh := make(chan os.Signal, 1)
		signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)
		sig := <-sigCh
		slog.Info("received signal, shutting down", "signal", sig)
	}
}
