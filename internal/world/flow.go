// Energy-flow path tracing. A greedy walk from a seed coordinate across
// hex neighbors, scoring each direction by downhill elevation delta plus a
// continuity bonus: crystalline currents prefer straight runs and single
// 60-degree turns over meandering. Branches spawn probabilistically.
package world

import "github.com/talgya/crystalvale/internal/rng"

const (
	straightRunBonus = 0.15
	turnBonus        = 0.05
	maxFlowBranches  = 2
)

// FlowPaths traces an energy current downhill from start, returning the
// main path and any branches. inBounds limits the walk; eng supplies the
// branch rolls, so the same engine state always yields the same paths.
func (f *Fields) FlowPaths(start HexCoord, inBounds func(HexCoord) bool, eng *rng.Engine) [][]HexCoord {
	var paths [][]HexCoord
	f.traceFlow(start, -1, inBounds, eng, maxFlowBranches, &paths)
	return paths
}

func (f *Fields) traceFlow(start HexCoord, prevDir int, inBounds func(HexCoord) bool, eng *rng.Engine, branchBudget int, out *[][]HexCoord) {
	crystalline := f.opts.Flow.Crystalline
	maxLen := f.opts.Flow.MaxLength
	if maxLen <= 0 {
		maxLen = 24
	}

	path := []HexCoord{start}
	cur := start

	for len(path) < maxLen {
		curElev := f.Elevation(cur)
		bestDir := -1
		bestScore := 0.0

		for d, dir := range HexNeighborDirections {
			next := cur.Add(dir)
			if !inBounds(next) {
				continue
			}
			score := curElev - f.Elevation(next)
			if d == prevDir {
				score += straightRunBonus * crystalline
			} else if prevDir >= 0 && (d == (prevDir+1)%6 || d == (prevDir+5)%6) {
				score += turnBonus * crystalline
			}
			if bestDir < 0 || score > bestScore {
				bestDir = d
				bestScore = score
			}
		}

		// No downhill-or-bonus direction left: the current dissipates.
		if bestDir < 0 || bestScore <= 0 {
			break
		}

		// Strongly crystalline currents commit to short straight runs.
		run := 1
		if bestDir == prevDir && crystalline > 0.5 {
			run = 2
		}
		dir := HexNeighborDirections[bestDir]
		target := HexCoord{Q: cur.Q + dir.Q*run, R: cur.R + dir.R*run}
		for _, step := range Line(cur, target)[1:] {
			if !inBounds(step) || len(path) >= maxLen {
				break
			}
			path = append(path, step)
			cur = step
		}
		prevDir = bestDir

		if branchBudget > 0 && eng.Next() < f.opts.Flow.BranchChance {
			branchDir := (bestDir + eng.NextInt(1, 5)) % 6
			branchStart := cur.Add(HexNeighborDirections[branchDir])
			if inBounds(branchStart) {
				f.traceFlow(branchStart, branchDir, inBounds, eng, branchBudget-1, out)
			}
			branchBudget--
		}
	}

	*out = append(*out, path)
}
