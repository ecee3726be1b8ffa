package world

import (
	"fmt"
	"sort"
)

// Map holds the complete generated tile set.
type Map struct {
	Tiles  map[HexCoord]*Tile `json:"-"` // all tiles keyed by coordinate
	Radius int                `json:"radius"`
}

// NewMap creates an empty map with the given radius.
// A hex grid of radius R contains tiles where max(|q|, |r|, |s|) <= R.
func NewMap(radius int) *Map {
	return &Map{
		Tiles:  make(map[HexCoord]*Tile, TileCountForRadius(radius)),
		Radius: radius,
	}
}

// TileCountForRadius returns the number of hexes in a full grid: 3R(R+1)+1.
func TileCountForRadius(radius int) int {
	if radius < 0 {
		return 0
	}
	return 3*radius*(radius+1) + 1
}

// Get returns the tile at the given coordinate, or nil if absent.
func (m *Map) Get(coord HexCoord) *Tile {
	return m.Tiles[coord]
}

// Set places a tile at its coordinate.
func (m *Map) Set(t *Tile) {
	m.Tiles[t.Coord] = t
}

// InBounds returns true if the coordinate is within the map radius.
func (m *Map) InBounds(coord HexCoord) bool {
	return Distance(coord, HexCoord{}) <= m.Radius
}

// TileCount returns the total number of tiles in the map.
func (m *Map) TileCount() int {
	return len(m.Tiles)
}

// Sorted returns all tiles ordered by (r, q). The order is stable across
// runs, which is what serialization and determinism checks rely on.
func (m *Map) Sorted() []*Tile {
	tiles := make([]*Tile, 0, len(m.Tiles))
	for _, t := range m.Tiles {
		tiles = append(tiles, t)
	}
	sort.Slice(tiles, func(i, j int) bool {
		if tiles[i].Coord.R != tiles[j].Coord.R {
			return tiles[i].Coord.R < tiles[j].Coord.R
		}
		return tiles[i].Coord.Q < tiles[j].Coord.Q
	})
	return tiles
}

// String returns a summary of the map.
func (m *Map) String() string {
	return fmt.Sprintf("Map(radius=%d, tiles=%d)", m.Radius, m.TileCount())
}
