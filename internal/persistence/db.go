// Package persistence provides SQLite-based world storage. A saved world
// is data, not a replayed seed: loading rehydrates the full tile set
// without re-running generation (replaying seed+options must reproduce it,
// which the tests use for verification).
// See design doc Section 8.3.
package persistence

import (
	"encoding/json"
	"fmt"
	"log/slog"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"
	_ "modernc.org/sqlite"

	"github.com/talgya/crystalvale/internal/world"
)

// DB wraps a SQLite connection for world storage.
type DB struct {
	conn *sqlx.DB
}

// Open opens or creates a SQLite database at the given path.
func Open(path string) (*DB, error) {
	conn, err := sqlx.Open("sqlite", path+"?_journal_mode=WAL&_busy_timeout=5000")
	if err != nil {
		return nil, fmt.Errorf("open db: %w", err)
	}

	db := &DB{conn: conn}
	if err := db.migrate(); err != nil {
		conn.Close()
		return nil, fmt.Errorf("migrate: %w", err)
	}
	return db, nil
}

// Close closes the database connection.
func (db *DB) Close() error {
	return db.conn.Close()
}

func (db *DB) migrate() error {
	schema := `
	CREATE TABLE IF NOT EXISTS worlds (
		id TEXT PRIMARY KEY,
		name TEXT NOT NULL,
		seed INTEGER NOT NULL,
		radius INTEGER NOT NULL,
		start_q INTEGER NOT NULL,
		start_r INTEGER NOT NULL,
		options_json TEXT NOT NULL,
		distribution_json TEXT NOT NULL,
		created_at TEXT NOT NULL DEFAULT (datetime('now'))
	);

	CREATE TABLE IF NOT EXISTS tiles (
		world_id TEXT NOT NULL REFERENCES worlds(id),
		q INTEGER NOT NULL,
		r INTEGER NOT NULL,
		biome INTEGER NOT NULL,
		variation INTEGER NOT NULL,
		elevation REAL NOT NULL,
		moisture REAL NOT NULL,
		temperature REAL NOT NULL,
		features_json TEXT NOT NULL,
		resources_json TEXT NOT NULL,
		discovered INTEGER NOT NULL,
		explored INTEGER NOT NULL,
		visibility REAL NOT NULL,
		PRIMARY KEY (world_id, q, r)
	);

	CREATE INDEX IF NOT EXISTS idx_tiles_world ON tiles(world_id);
	`
	_, err := db.conn.Exec(schema)
	return err
}

// SaveWorld writes a generated world and its options, returning the new
// world ID.
func (db *DB) SaveWorld(w *world.World, opts world.Options) (string, error) {
	id := uuid.NewString()

	optsJSON, err := json.Marshal(opts)
	if err != nil {
		return "", fmt.Errorf("marshal options: %w", err)
	}
	distJSON, err := json.Marshal(w.Distribution)
	if err != nil {
		return "", fmt.Errorf("marshal distribution: %w", err)
	}

	tx, err := db.conn.Beginx()
	if err != nil {
		return "", err
	}
	defer tx.Rollback()

	_, err = tx.Exec(`INSERT INTO worlds
		(id, name, seed, radius, start_q, start_r, options_json, distribution_json)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?)`,
		id, w.Name, w.Seed, w.Radius, w.Start.Q, w.Start.R,
		string(optsJSON), string(distJSON),
	)
	if err != nil {
		return "", fmt.Errorf("insert world: %w", err)
	}

	stmt, err := tx.Preparex(`INSERT INTO tiles
		(world_id, q, r, biome, variation, elevation, moisture, temperature,
		 features_json, resources_json, discovered, explored, visibility)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`)
	if err != nil {
		return "", err
	}
	defer stmt.Close()

	for _, t := range w.Map.Sorted() {
		featJSON, _ := json.Marshal(t.Features)
		resJSON, _ := json.Marshal(t.Resources)

		_, err := stmt.Exec(
			id, t.Coord.Q, t.Coord.R, t.Biome, t.Variation,
			t.Elevation, t.Moisture, t.Temperature,
			string(featJSON), string(resJSON),
			boolInt(t.Discovered), boolInt(t.Explored), t.Visibility,
		)
		if err != nil {
			return "", fmt.Errorf("insert tile (%d,%d): %w", t.Coord.Q, t.Coord.R, err)
		}
	}

	if err := tx.Commit(); err != nil {
		return "", err
	}

	slog.Info("world saved", "id", id, "tiles", w.Map.TileCount())
	return id, nil
}

type worldRow struct {
	ID               string `db:"id"`
	Name             string `db:"name"`
	Seed             int64  `db:"seed"`
	Radius           int    `db:"radius"`
	StartQ           int    `db:"start_q"`
	StartR           int    `db:"start_r"`
	OptionsJSON      string `db:"options_json"`
	DistributionJSON string `db:"distribution_json"`
	CreatedAt        string `db:"created_at"`
}

type tileRow struct {
	WorldID       string  `db:"world_id"`
	Q             int     `db:"q"`
	R             int     `db:"r"`
	Biome         uint8   `db:"biome"`
	Variation     int     `db:"variation"`
	Elevation     float64 `db:"elevation"`
	Moisture      float64 `db:"moisture"`
	Temperature   float64 `db:"temperature"`
	FeaturesJSON  string  `db:"features_json"`
	ResourcesJSON string  `db:"resources_json"`
	Discovered    int     `db:"discovered"`
	Explored      int     `db:"explored"`
	Visibility    float64 `db:"visibility"`
}

// LoadWorld rehydrates a saved world and the options it was generated with.
func (db *DB) LoadWorld(id string) (*world.World, world.Options, error) {
	var opts world.Options

	var wr worldRow
	if err := db.conn.Get(&wr, "SELECT * FROM worlds WHERE id = ?", id); err != nil {
		return nil, opts, fmt.Errorf("load world %s: %w", id, err)
	}
	if err := json.Unmarshal([]byte(wr.OptionsJSON), &opts); err != nil {
		return nil, opts, fmt.Errorf("unmarshal options: %w", err)
	}

	dist := make(map[world.Biome]float64)
	if err := json.Unmarshal([]byte(wr.DistributionJSON), &dist); err != nil {
		return nil, opts, fmt.Errorf("unmarshal distribution: %w", err)
	}

	var rows []tileRow
	err := db.conn.Select(&rows,
		"SELECT * FROM tiles WHERE world_id = ? ORDER BY r, q", id)
	if err != nil {
		return nil, opts, fmt.Errorf("load tiles: %w", err)
	}

	m := world.NewMap(wr.Radius)
	for _, row := range rows {
		t := &world.Tile{
			Coord:       world.HexCoord{Q: row.Q, R: row.R},
			Biome:       world.Biome(row.Biome),
			Variation:   row.Variation,
			Elevation:   row.Elevation,
			Moisture:    row.Moisture,
			Temperature: row.Temperature,
			Discovered:  row.Discovered != 0,
			Explored:    row.Explored != 0,
			Visibility:  row.Visibility,
		}
		if err := json.Unmarshal([]byte(row.FeaturesJSON), &t.Features); err != nil {
			return nil, opts, fmt.Errorf("unmarshal features (%d,%d): %w", row.Q, row.R, err)
		}
		if err := json.Unmarshal([]byte(row.ResourcesJSON), &t.Resources); err != nil {
			return nil, opts, fmt.Errorf("unmarshal resources (%d,%d): %w", row.Q, row.R, err)
		}
		m.Set(t)
	}

	return &world.World{
		Name:         wr.Name,
		Seed:         wr.Seed,
		Radius:       wr.Radius,
		Map:          m,
		Distribution: dist,
		Start:        world.HexCoord{Q: wr.StartQ, R: wr.StartR},
	}, opts, nil
}

// ListWorlds returns the IDs and names of all saved worlds, newest first.
func (db *DB) ListWorlds() (map[string]string, error) {
	var rows []struct {
		ID   string `db:"id"`
		Name string `db:"name"`
	}
	err := db.conn.Select(&rows, "SELECT id, name FROM worlds ORDER BY created_at DESC")
	if err != nil {
		return nil, err
	}

	worlds := make(map[string]string, len(rows))
	for _, r := range rows {
		worlds[r.ID] = r.Name
	}
	return worlds, nil
}

func boolInt(b bool) int {
	if b {
		return 1
	}
	return 0
}
