// Package segmentator implements the track-partitioning capability
// (spec.md §6, "segmentator"). The reference implementation, NearestSeed,
// is grounded on the watershed-style region growing in recast/region.go
// and the grid-neighbour traversal idiom used throughout the teacher's
// detour/recast packages: rather than a plain nearest-centre assignment
// (which can split disconnected "comb" shapes across group boundaries),
// every group centre seeds a simultaneous breadth-first flood across the
// occupied grid, so each resulting cluster is a connected region even on
// tracks with pinch points.
package segmentator

import (
	"math"

	"github.com/wentasah/ng-trajectory/contracts"
	"github.com/wentasah/ng-trajectory/geom"
	"github.com/wentasah/ng-trajectory/ngerror"
)

type cell struct{ x, y int }

var neigh4 = [4]cell{{1, 0}, {-1, 0}, {0, 1}, {0, -1}}

// NearestSeed segmentates valid points into connected clusters around
// group centres via multi-source BFS (spec.md §6, D2).
type NearestSeed struct {
	ctx contracts.MapContext
}

// Segmentate implements contracts.Segmentator.
func (s *NearestSeed) Segmentate(validPoints, groupCenters []geom.Point2) ([][]geom.Point2, error) {
	if len(groupCenters) == 0 {
		return nil, &ngerror.ConfigError{Field: "group_centers", Msg: "at least one group center is required"}
	}
	if len(validPoints) == 0 {
		return nil, &ngerror.ConfigError{Field: "points", Msg: "no valid points to segmentate"}
	}

	h := geom.GridCellSize(validPoints)
	if h <= 0 {
		h = 1
	}

	minX, minY := validPoints[0].X, validPoints[0].Y
	maxX, maxY := minX, minY
	for _, p := range validPoints {
		minX = math.Min(minX, p.X)
		minY = math.Min(minY, p.Y)
		maxX = math.Max(maxX, p.X)
		maxY = math.Max(maxY, p.Y)
	}
	origin := geom.Point2{X: minX, Y: minY}
	width := int(math.Round((maxX-minX)/h)) + 1
	height := int(math.Round((maxY-minY)/h)) + 1

	quantize := func(p geom.Point2) cell {
		return cell{
			x: int(math.Round((p.X - minX) / h)),
			y: int(math.Round((p.Y - minY) / h)),
		}
	}

	cellPoint := make(map[cell]geom.Point2, len(validPoints))
	for _, p := range validPoints {
		cellPoint[quantize(p)] = p
	}

	owner := make(map[cell]int, len(cellPoint))
	type queued struct {
		c     cell
		group int
	}
	var queue []queued
	for gi, center := range groupCenters {
		seed := nearestOccupied(cellPoint, quantize(center), center)
		if _, ok := owner[seed]; ok {
			continue
		}
		owner[seed] = gi
		queue = append(queue, queued{seed, gi})
	}

	for head := 0; head < len(queue); head++ {
		cur := queue[head]
		for _, d := range neigh4 {
			next := cell{cur.c.x + d.x, cur.c.y + d.y}
			if _, occ := cellPoint[next]; !occ {
				continue
			}
			if _, assigned := owner[next]; assigned {
				continue
			}
			owner[next] = cur.group
			queue = append(queue, queued{next, cur.group})
		}
	}

	// Disconnected remainder: assign to the nearest group centre by
	// straight-line distance so every valid point ends up in some cluster.
	for c := range cellPoint {
		if _, assigned := owner[c]; assigned {
			continue
		}
		owner[c] = nearestGroupIndex(cellPoint[c], groupCenters)
	}

	clusters := make([][]geom.Point2, len(groupCenters))
	occupied := make([]bool, width*height)
	for c, p := range cellPoint {
		if c.x >= 0 && c.x < width && c.y >= 0 && c.y < height {
			occupied[c.y*width+c.x] = true
		}
		g := owner[c]
		clusters[g] = append(clusters[g], p)
	}

	s.ctx = contracts.MapContext{
		Occupied: occupied,
		Width:    width,
		Height:   height,
		Origin:   origin,
		Grid:     [2]float64{h, h},
		Last:     validPoints[len(validPoints)-1],
	}

	return clusters, nil
}

// MapContext implements contracts.Segmentator.
func (s *NearestSeed) MapContext() contracts.MapContext {
	return s.ctx
}

// nearestOccupied returns the cell closest to target that is present in
// cellPoint, starting from the quantized seed cell and expanding outward
// in a small spiral. Falls back to a linear scan if the spiral misses
// (e.g. a very sparse grid).
func nearestOccupied(cellPoint map[cell]geom.Point2, seed cell, target geom.Point2) cell {
	if _, ok := cellPoint[seed]; ok {
		return seed
	}
	for radius := 1; radius < 64; radius++ {
		for dx := -radius; dx <= radius; dx++ {
			for dy := -radius; dy <= radius; dy++ {
				if dx > -radius && dx < radius && dy > -radius && dy < radius {
					continue // interior already checked at a smaller radius
				}
				c := cell{seed.x + dx, seed.y + dy}
				if _, ok := cellPoint[c]; ok {
					return c
				}
			}
		}
	}
	best, bestD := seed, math.Inf(1)
	for c, p := range cellPoint {
		d := geom.Dist(p, target)
		if d < bestD {
			best, bestD = c, d
		}
	}
	return best
}

func nearestGroupIndex(p geom.Point2, centers []geom.Point2) int {
	best, bestD := 0, math.Inf(1)
	for i, c := range centers {
		d := geom.Dist(p, c)
		if d < bestD {
			best, bestD = i, d
		}
	}
	return best
}
