// Package api provides the read-only HTTP surface over a generated world.
// All endpoints are GET: consumers (renderers, fog-of-war, inspectors)
// observe tiles; nothing here mutates generation state.
package api

import (
	"encoding/json"
	"fmt"
	"log/slog"
	"net/http"
	"strconv"

	"github.com/talgya/crystalvale/internal/world"
)

// Server serves a generated world over HTTP.
type Server struct {
	World *world.World
	Port  int
}

// Start begins serving in a goroutine.
func (s *Server) Start() {
	mux := http.NewServeMux()
	mux.HandleFunc("/api/v1/status", s.handleStatus)
	mux.HandleFunc("/api/v1/tiles", s.handleTiles)
	mux.HandleFunc("/api/v1/tile", s.handleTile)

	addr := fmt.Sprintf(":%d", s.Port)
	slog.Info("HTTP API starting", "addr", addr)

	go func() {
		if err := http.ListenAndServe(addr, mux); err != nil {
			slog.Error("HTTP server error", "error", err)
		}
	}()
}

func (s *Server) handleStatus(w http.ResponseWriter, r *http.Request) {
	dist := make(map[string]float64, len(s.World.Distribution))
	for b, f := range s.World.Distribution {
		dist[b.String()] = f
	}

	writeJSON(w, map[string]any{
		"name":         s.World.Name,
		"seed":         s.World.Seed,
		"radius":       s.World.Radius,
		"tiles":        s.World.Map.TileCount(),
		"start":        s.World.Start,
		"distribution": dist,
	})
}

// handleTiles lists tiles in stable (r, q) order. Optional ?biome= filters
// by biome name.
func (s *Server) handleTiles(w http.ResponseWriter, r *http.Request) {
	filter := r.URL.Query().Get("biome")

	var tiles []*world.Tile
	for _, t := range s.World.Map.Sorted() {
		if filter != "" && t.Biome.String() != filter {
			continue
		}
		tiles = append(tiles, t)
	}
	writeJSON(w, tiles)
}

// handleTile returns one tile by ?q=&r=. Unknown coordinates are 404.
func (s *Server) handleTile(w http.ResponseWriter, r *http.Request) {
	q, err1 := strconv.Atoi(r.URL.Query().Get("q"))
	rr, err2 := strconv.Atoi(r.URL.Query().Get("r"))
	if err1 != nil || err2 != nil {
		http.Error(w, "q and r query params required", http.StatusBadRequest)
		return
	}

	t := s.World.Map.Get(world.HexCoord{Q: q, R: rr})
	if t == nil {
		http.Error(w, "no such tile", http.StatusNotFound)
		return
	}
	writeJSON(w, t)
}

func writeJSON(w http.ResponseWriter, v any) {
	w.Header().Set("Content-Type", "application/json")
	if err := json.NewEncoder(w).Encode(v); err != nil {
		slog.Error("encode response", "error", err)
	}
}
