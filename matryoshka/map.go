package matryoshka

import (
	"math"

	"github.com/wentasah/ng-trajectory/geom"
)

// Map evaluates the forward map f: [0,1]² -> R² by bilinear lookup on the
// parameter grid (spec.md §4.6, C6). alpha parameterises layer depth, beta
// the angular position; beta is periodic (the map wraps).
func (m *Matryoshka) Map(alpha, beta float64) geom.Point2 {
	L := m.layers
	B := m.bpts

	r := alpha * float64(L-1)
	l0 := int(math.Floor(r))
	if l0 < 0 {
		l0 = 0
	}
	l1 := l0 + 1
	if l1 > L-1 {
		l1 = L - 1
	}
	if l0 > L-1 {
		l0 = L - 1
	}
	t := r - float64(l0)

	s := beta * float64(B)
	s = s - float64(B)*math.Floor(s/float64(B)) // wrap into [0, B)
	k0 := int(math.Floor(s)) % B
	if k0 < 0 {
		k0 += B
	}
	k1 := (k0 + 1) % B
	u := s - math.Floor(s)

	p00 := m.At(l0, k0)
	p01 := m.At(l0, k1)
	p10 := m.At(l1, k0)
	p11 := m.At(l1, k1)

	w00 := (1 - t) * (1 - u)
	w01 := (1 - t) * u
	w10 := t * (1 - u)
	w11 := t * u

	return geom.Point2{
		X: w00*p00.X + w01*p01.X + w10*p10.X + w11*p11.X,
		Y: w00*p00.Y + w01*p01.Y + w10*p10.Y + w11*p11.Y,
	}
}
