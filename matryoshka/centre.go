package matryoshka

import "github.com/wentasah/ng-trajectory/geom"

// Centre computes the representative interior centre of a segment cluster
// (spec.md §4.4, C4): the cluster point whose minimum distance to the
// beautified boundary is maximal — the "pole of inaccessibility" heuristic,
// robust to concave segments. Ties are broken lexicographically on (x, y).
func Centre(cluster []geom.Point2, boundary geom.ClosedPolyline) geom.Point2 {
	best := cluster[0]
	bestDist := boundary.DistanceToPolyline(best)

	for _, p := range cluster[1:] {
		d := boundary.DistanceToPolyline(p)
		switch {
		case d > bestDist:
			best, bestDist = p, d
		case d == bestDist && geom.Less(p, best):
			best = p
		}
	}
	return best
}
