// Package boundary implements the border extractor (spec.md §4.2, C2) and
// the border beautifier (spec.md §4.3, C3): turning a dense cloud of
// interior points belonging to one track segment into an ordered closed
// polyline, equi-spaced in arclength.
//
// The tracing routine is grounded on the boundary-walk in the teacher's
// recast/contour.go (walkContour2): step to a boundary cell, rotate the
// scan direction, and keep walking until the start cell is revisited. Here
// the walk runs over an 8-connected grid of arbitrary points instead of a
// 4-connected height-field, so the "rotate" is over 8 compass directions
// rather than 4 quadrant directions.
package boundary

import (
	"sort"

	"github.com/wentasah/ng-trajectory/geom"
	"github.com/wentasah/ng-trajectory/ngerror"
)

type cell struct{ x, y int }

// compass offsets in clockwise order, starting at North. The walk scans
// clockwise starting one step past the direction it arrived from, so it
// tries the sharpest left turn first, then gentler left turns, then
// straight on, then right turns.
var compass = [8]cell{
	{0, 1},   // N
	{1, 1},   // NE
	{1, 0},   // E
	{1, -1},  // SE
	{0, -1},  // S
	{-1, -1}, // SW
	{-1, 0},  // W
	{-1, 1},  // NW
}

// Extract traces the outer boundary of a segment cluster, returning it as
// an ordered closed polyline (spec.md §4.2). segIdx is only used to
// annotate errors.
func Extract(cluster []geom.Point2, segIdx int) (geom.ClosedPolyline, error) {
	if len(cluster) == 0 {
		return nil, &ngerror.DegenerateSegmentError{SegmentIndex: segIdx, Reason: "empty cluster"}
	}

	h := geom.GridCellSize(cluster)
	if h <= 0 {
		h = 1
	}

	occupied := make(map[cell]geom.Point2, len(cluster))
	for _, p := range cluster {
		occupied[quantize(p, h)] = p
	}

	isBoundary := func(c cell) bool {
		for _, o := range compass {
			if _, ok := occupied[cell{c.x + o.x, c.y + o.y}]; !ok {
				return true
			}
		}
		return false
	}

	var boundaryCells []cell
	for c := range occupied {
		if isBoundary(c) {
			boundaryCells = append(boundaryCells, c)
		}
	}
	if len(boundaryCells) < 3 {
		return nil, &ngerror.DegenerateSegmentError{SegmentIndex: segIdx, Reason: "fewer than 3 boundary points"}
	}

	sort.Slice(boundaryCells, func(i, j int) bool {
		return geom.Less(occupied[boundaryCells[i]], occupied[boundaryCells[j]])
	})
	start := boundaryCells[0]

	order, ok := walk(start, occupied, isBoundary)
	if !ok {
		return nil, &ngerror.DegenerateSegmentError{SegmentIndex: segIdx, Reason: "traversal failed to close"}
	}

	poly := make(geom.ClosedPolyline, len(order))
	for i, c := range order {
		poly[i] = occupied[c]
	}

	// The walk traces the boundary clockwise; reverse it so every boundary
	// is emitted counter-clockwise (positive signed area).
	var area2 float64
	for i := range poly {
		j := (i + 1) % len(poly)
		area2 += poly[i].X*poly[j].Y - poly[j].X*poly[i].Y
	}
	if area2 < 0 {
		for i, j := 0, len(poly)-1; i < j; i, j = i+1, j-1 {
			poly[i], poly[j] = poly[j], poly[i]
		}
	}
	return poly, nil
}

// walk performs the Moore-neighbourhood boundary walk starting at `start`,
// returning the visited cells in order. It stops either when it returns to
// `start` (success) or when a step finds no boundary neighbour (failure).
func walk(start cell, occupied map[cell]geom.Point2, isBoundary func(cell) bool) ([]cell, bool) {
	cur := start
	backDir := 6 // pretend we arrived from the West; nothing lies further west of the starting point.

	maxSteps := len(occupied)*8 + 16
	order := make([]cell, 0, len(occupied))

	for step := 0; step < maxSteps; step++ {
		order = append(order, cur)

		searchStart := (backDir + 1) % 8
		found := false
		var next cell
		var foundDir int
		for k := 0; k < 8; k++ {
			d := (searchStart + k) % 8
			cand := cell{cur.x + compass[d].x, cur.y + compass[d].y}
			if _, ok := occupied[cand]; ok && isBoundary(cand) {
				next = cand
				foundDir = d
				found = true
				break
			}
		}
		if !found {
			return nil, false
		}

		backDir = (foundDir + 4) % 8
		cur = next

		if cur == start {
			return order, true
		}
	}
	return nil, false
}

func quantize(p geom.Point2, h float64) cell {
	return cell{round(p.X / h), round(p.Y / h)}
}

func round(v float64) int {
	if v >= 0 {
		return int(v + 0.5)
	}
	return int(v - 0.5)
}
