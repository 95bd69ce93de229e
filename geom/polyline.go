package geom

// ClosedPolyline is an ordered sequence of points with an implicit edge
// from the last point back to the first (spec.md §3, "Closed polyline").
type ClosedPolyline []Point2

// Perimeter returns the total length of the closed polyline, walking the
// implicit closing edge too.
func (c ClosedPolyline) Perimeter() float64 {
	if len(c) < 2 {
		return 0
	}
	var total float64
	for i := range c {
		total += Dist(c[i], c[(i+1)%len(c)])
	}
	return total
}

// PointSegmentDistance returns the distance from p to the closed segment a-b.
func PointSegmentDistance(p, a, b Point2) float64 {
	abx, aby := b.X-a.X, b.Y-a.Y
	apx, apy := p.X-a.X, p.Y-a.Y
	ablen2 := abx*abx + aby*aby
	if ablen2 == 0 {
		return Dist(p, a)
	}
	t := (apx*abx + apy*aby) / ablen2
	if t < 0 {
		t = 0
	} else if t > 1 {
		t = 1
	}
	proj := Point2{a.X + t*abx, a.Y + t*aby}
	return Dist(p, proj)
}

// DistanceToPolyline returns the minimum distance from p to any edge of the
// closed polyline.
func (c ClosedPolyline) DistanceToPolyline(p Point2) float64 {
	if len(c) == 0 {
		return 0
	}
	best := PointSegmentDistance(p, c[0], c[len(c)%len(c)])
	for i := range c {
		d := PointSegmentDistance(p, c[i], c[(i+1)%len(c)])
		if d < best {
			best = d
		}
	}
	return best
}

// ClosestIndex returns the index of the polyline vertex closest to p.
func (c ClosedPolyline) ClosestIndex(p Point2) int {
	best := 0
	bestD := Dist(p, c[0])
	for i := 1; i < len(c); i++ {
		d := Dist(p, c[i])
		if d < bestD {
			bestD = d
			best = i
		}
	}
	return best
}

// RotatedTo returns a copy of c rotated so that index start becomes index 0,
// preserving traversal order. Used by the beautifier (spec.md §4.3) to set a
// common parameter origin across layers.
func (c ClosedPolyline) RotatedTo(start int) ClosedPolyline {
	n := len(c)
	out := make(ClosedPolyline, n)
	for i := 0; i < n; i++ {
		out[i] = c[(start+i)%n]
	}
	return out
}

// ArclengthResample returns n points equi-spaced in arclength around the
// closed polyline, linearly interpolating between input vertices (spec.md
// §4.1, C1 `arclength_resample`).
func ArclengthResample(c ClosedPolyline, n int) ClosedPolyline {
	if n <= 0 || len(c) == 0 {
		return ClosedPolyline{}
	}
	m := len(c)
	segLen := make([]float64, m)
	perim := 0.0
	for i := 0; i < m; i++ {
		segLen[i] = Dist(c[i], c[(i+1)%m])
		perim += segLen[i]
	}

	out := make(ClosedPolyline, n)
	if perim == 0 {
		for i := range out {
			out[i] = c[0]
		}
		return out
	}

	step := perim / float64(n)
	// Walk the polyline accumulating length, emitting a sample every `step`.
	segIdx := 0
	segStart := 0.0 // arclength at the start of the current segment
	for i := 0; i < n; i++ {
		target := step * float64(i)
		for segIdx < m-1 && segStart+segLen[segIdx] < target {
			segStart += segLen[segIdx]
			segIdx++
		}
		// target may have wrapped past the last recorded segment due to
		// floating point drift; clamp into range.
		for segStart+segLen[segIdx] < target && segIdx < m {
			segStart += segLen[segIdx]
			segIdx = (segIdx + 1) % m
		}
		var t float64
		if segLen[segIdx] > 0 {
			t = (target - segStart) / segLen[segIdx]
		}
		if t < 0 {
			t = 0
		} else if t > 1 {
			t = 1
		}
		out[i] = Lerp(c[segIdx], c[(segIdx+1)%m], t)
	}
	return out
}

// GridCellSize estimates the grid step of a point cloud laid out on a
// regular grid, returning the minimum non-zero coordinate difference across
// both axes (spec.md §4.1, C1 `grid_cell_size`).
func GridCellSize(points []Point2) float64 {
	var minDX, minDY float64
	haveDX, haveDY := false, false

	xs := make([]float64, 0, len(points))
	ys := make([]float64, 0, len(points))
	for _, p := range points {
		xs = append(xs, p.X)
		ys = append(ys, p.Y)
	}

	minDX = minNonZeroDiff(xs, &haveDX)
	minDY = minNonZeroDiff(ys, &haveDY)

	switch {
	case haveDX && haveDY:
		if minDX < minDY {
			return minDX
		}
		return minDY
	case haveDX:
		return minDX
	case haveDY:
		return minDY
	default:
		return 0
	}
}

func minNonZeroDiff(vals []float64, found *bool) float64 {
	sorted := append([]float64(nil), vals...)
	insertionSort(sorted)

	var min float64
	for i := 1; i < len(sorted); i++ {
		d := sorted[i] - sorted[i-1]
		if d <= 0 {
			continue
		}
		if !*found || d < min {
			min = d
			*found = true
		}
	}
	return min
}

// insertionSort sorts a per-axis coordinate list in place without pulling
// in sort.Float64s, keeping this package free of extra imports. It is
// quadratic in the list length, which for GridCellSize is the number of
// points in the cloud.
func insertionSort(a []float64) {
	for i := 1; i < len(a); i++ {
		v := a[i]
		j := i - 1
		for j >= 0 && a[j] > v {
			a[j+1] = a[j]
			j--
		}
		a[j+1] = v
	}
}
