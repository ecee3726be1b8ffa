// Single-file world snapshots: a versioned JSON document compressed with
// zstd. Snapshots are self-contained — options, distribution, start, and
// every tile — so a consumer can rehydrate without the generator.
package persistence

import (
	"encoding/json"
	"fmt"
	"io"
	"os"

	"github.com/klauspost/compress/zstd"

	"github.com/talgya/crystalvale/internal/world"
)

const snapshotVersion = 1

// SnapshotHeader identifies a snapshot file.
type SnapshotHeader struct {
	Version int    `json:"version"`
	WorldID string `json:"world_id,omitempty"`
	Name    string `json:"name"`
	Seed    int64  `json:"seed"`
}

// SnapshotV1 is the version-1 snapshot document. Tiles are sorted by
// (r, q), so encoding the same world twice yields identical bytes.
type SnapshotV1 struct {
	Header SnapshotHeader `json:"header"`

	Radius       int                     `json:"radius"`
	Options      world.Options           `json:"options"`
	Start        world.HexCoord          `json:"start"`
	Distribution map[world.Biome]float64 `json:"distribution"`
	Tiles        []world.Tile            `json:"tiles"`
}

// encodeSnapshot builds the stable JSON document for a world.
func encodeSnapshot(worldID string, w *world.World, opts world.Options) ([]byte, error) {
	sorted := w.Map.Sorted()
	tiles := make([]world.Tile, len(sorted))
	for i, t := range sorted {
		tiles[i] = *t
	}

	snap := SnapshotV1{
		Header: SnapshotHeader{
			Version: snapshotVersion,
			WorldID: worldID,
			Name:    w.Name,
			Seed:    w.Seed,
		},
		Radius:       w.Radius,
		Options:      opts,
		Start:        w.Start,
		Distribution: w.Distribution,
		Tiles:        tiles,
	}
	return json.Marshal(snap)
}

// WriteSnapshot writes a compressed snapshot of the world to path.
func WriteSnapshot(path, worldID string, w *world.World, opts world.Options) error {
	raw, err := encodeSnapshot(worldID, w, opts)
	if err != nil {
		return fmt.Errorf("encode snapshot: %w", err)
	}

	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create snapshot: %w", err)
	}
	defer f.Close()

	enc, err := zstd.NewWriter(f)
	if err != nil {
		return fmt.Errorf("zstd writer: %w", err)
	}
	if _, err := enc.Write(raw); err != nil {
		enc.Close()
		return fmt.Errorf("write snapshot: %w", err)
	}
	if err := enc.Close(); err != nil {
		return fmt.Errorf("flush snapshot: %w", err)
	}
	return f.Close()
}

// ReadSnapshot loads a snapshot file back into a world and its options.
func ReadSnapshot(path string) (*world.World, world.Options, error) {
	var opts world.Options

	f, err := os.Open(path)
	if err != nil {
		return nil, opts, fmt.Errorf("open snapshot: %w", err)
	}
	defer f.Close()

	dec, err := zstd.NewReader(f)
	if err != nil {
		return nil, opts, fmt.Errorf("zstd reader: %w", err)
	}
	defer dec.Close()

	raw, err := io.ReadAll(dec)
	if err != nil {
		return nil, opts, fmt.Errorf("read snapshot: %w", err)
	}

	var snap SnapshotV1
	if err := json.Unmarshal(raw, &snap); err != nil {
		return nil, opts, fmt.Errorf("decode snapshot: %w", err)
	}
	if snap.Header.Version != snapshotVersion {
		return nil, opts, fmt.Errorf("unsupported snapshot version %d", snap.Header.Version)
	}

	m := world.NewMap(snap.Radius)
	for i := range snap.Tiles {
		t := snap.Tiles[i]
		m.Set(&t)
	}

	return &world.World{
		Name:         snap.Header.Name,
		Seed:         snap.Header.Seed,
		Radius:       snap.Radius,
		Map:          m,
		Distribution: snap.Distribution,
		Start:        snap.Start,
	}, snap.Options, nil
}
