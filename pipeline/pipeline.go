// Package pipeline implements the build half of a run: selector ->
// segmentator -> per-cluster boundary extraction/beautification ->
// Matryoshka construction (spec.md §4.1-§4.6, C2-C5), and the
// hold_matryoshka reuse rule of spec.md §4.9: "Re-entering init with
// hold_matryoshka=true reuses the existing MapSet; otherwise rebuilds
// from C2-C5."
package pipeline

import (
	"fmt"

	"github.com/wentasah/ng-trajectory/boundary"
	"github.com/wentasah/ng-trajectory/contracts"
	"github.com/wentasah/ng-trajectory/geom"
	"github.com/wentasah/ng-trajectory/matryoshka"
)

// Builder owns the collaborators that turn a centerline and a valid-area
// point cloud into a MapSet, and caches the most recent result so a
// caller can request it be reused instead of rebuilt.
type Builder struct {
	Selector    contracts.Selector
	Segmentator contracts.Segmentator
	Groups      int
	Layers      int

	built        bool
	maps         matryoshka.MapSet
	mapContext   contracts.MapContext
	groupCenters []geom.Point2
}

// Result bundles everything downstream of Build: the MapSet itself, the
// segmentator's occupancy-map context (consumed by the reference
// penalizer) and the group centres (consumed by PenalizerInit).
type Result struct {
	Maps         matryoshka.MapSet
	MapContext   contracts.MapContext
	GroupCenters []geom.Point2
}

// Build constructs the MapSet from validPoints and centerline, or returns
// the previously built one unchanged when hold is true and a prior Build
// succeeded (spec.md §4.9, §8 R2/S4). The first call on a Builder always
// constructs, regardless of hold, since there is nothing yet to reuse.
func (b *Builder) Build(validPoints, centerline []geom.Point2, hold bool) (Result, error) {
	if hold && b.built {
		return Result{Maps: b.maps, MapContext: b.mapContext, GroupCenters: b.groupCenters}, nil
	}

	groupCenters, err := b.Selector.Select(centerline, b.Groups)
	if err != nil {
		return Result{}, fmt.Errorf("pipeline: selector: %w", err)
	}

	clusters, err := b.Segmentator.Segmentate(validPoints, groupCenters)
	if err != nil {
		return Result{}, fmt.Errorf("pipeline: segmentator: %w", err)
	}

	maps := make(matryoshka.MapSet, len(clusters))
	for i, cluster := range clusters {
		bnd, err := boundary.Extract(cluster, i)
		if err != nil {
			return Result{}, fmt.Errorf("pipeline: boundary: %w", err)
		}
		beautified := boundary.Beautify(bnd, groupCenters[i], boundary.DefaultBeautifiedLength)
		centre := matryoshka.Centre(cluster, beautified)
		maps[i] = matryoshka.Build(beautified, centre, b.Layers)
	}

	b.maps = maps
	b.mapContext = b.Segmentator.MapContext()
	b.groupCenters = groupCenters
	b.built = true

	return Result{Maps: maps, MapContext: b.mapContext, GroupCenters: groupCenters}, nil
}
