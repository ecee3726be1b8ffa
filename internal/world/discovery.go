// Initial discovery propagation: concentric hex rings around the starting
// tile get decreasing visibility. Only ring 0 is marked explored; further
// exploration belongs to the fog-of-war collaborator.
package world

// visibilityByRing maps ring distance to initial visibility.
var visibilityByRing = [4]float64{1.0, 0.8, 0.5, 0.3}

// propagateDiscovery reveals the starting neighborhood. Ring coordinates
// outside the map are skipped silently.
func propagateDiscovery(m *Map, start HexCoord) {
	for dist, vis := range visibilityByRing {
		for _, c := range Ring(start, dist) {
			t := m.Get(c)
			if t == nil {
				continue
			}
			t.Discovered = true
			t.Visibility = vis
			if dist == 0 {
				t.Explored = true
			}
		}
	}
}
