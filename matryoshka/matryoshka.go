// Package matryoshka builds and evaluates the per-segment nested-layer
// bijection at the core of this system: the Matryoshka builder (spec.md
// §4.5, C5) and the Matryoshka map (spec.md §4.6, C6).
//
// Grounded on the teacher's mesh-table construction (recast/polymesh.go,
// recast/meshdetail.go build a flat table once and then look it up many
// times) and on the bilinear filtering idiom used throughout
// recast/rasterization.go. Once built, a Matryoshka is immutable and safe
// to share by reference across concurrent evaluator goroutines (spec.md
// §5).
package matryoshka

import "github.com/wentasah/ng-trajectory/geom"

// Matryoshka is the table T[l,k] of spec.md §3: L layers, each a closed
// polyline of B points, contracting from the beautified boundary (l=0) to
// the centre (l=L-1).
type Matryoshka struct {
	layers int
	bpts   int
	table  []geom.Point2 // row-major: table[l*bpts+k]
}

// Layers returns L, the number of layers.
func (m *Matryoshka) Layers() int { return m.layers }

// BoundaryPoints returns B, the number of points per layer.
func (m *Matryoshka) BoundaryPoints() int { return m.bpts }

// At returns T[l,k].
func (m *Matryoshka) At(l, k int) geom.Point2 {
	return m.table[l*m.bpts+k]
}

// Build constructs a Matryoshka from a beautified boundary and a centre by
// linear contraction (spec.md §4.5, §3):
//
//	T[0, k]   = boundary[k]
//	T[l, k]   = T[0,k] + (l/(L-1)) * (centre - T[0,k])   for l > 0
//	T[L-1, k] = centre                                   for all k
//
// layers must be >= 2.
func Build(boundary geom.ClosedPolyline, centre geom.Point2, layers int) *Matryoshka {
	if layers < 2 {
		layers = 2
	}
	b := len(boundary)
	m := &Matryoshka{
		layers: layers,
		bpts:   b,
		table:  make([]geom.Point2, layers*b),
	}

	for k := 0; k < b; k++ {
		m.table[k] = boundary[k]
	}
	for l := 1; l < layers; l++ {
		t := float64(l) / float64(layers-1)
		for k := 0; k < b; k++ {
			m.table[l*b+k] = geom.Lerp(boundary[k], centre, t)
		}
	}
	return m
}
