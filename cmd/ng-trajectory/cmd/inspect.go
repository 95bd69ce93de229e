package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/wentasah/ng-trajectory/geom"
	"github.com/wentasah/ng-trajectory/internal/config"
	"github.com/wentasah/ng-trajectory/pipeline"
	"github.com/wentasah/ng-trajectory/segmentator"
	"github.com/wentasah/ng-trajectory/selector"
)

// inspectCmd represents the inspect command (grounded on
// cmd/recast/cmd/infos.go's "read the data, check it for consistency,
// then print informations on standard output"): it runs C2-C5 without
// ever invoking the optimiser, so a track and settings file can be
// checked before spending a budget on them.
var inspectCmd = &cobra.Command{
	Use:   "inspect",
	Short: "build the Matryoshka mapping and print diagnostics, without optimising",
	Run: func(cmd *cobra.Command, args []string) {
		if err := inspect(); err != nil {
			fmt.Fprintln(os.Stderr, "error,", err)
			os.Exit(-1)
		}
	},
}

func init() {
	RootCmd.AddCommand(inspectCmd)
	inspectCmd.Flags().StringVar(&cfgPathVal, "config", "ng-trajectory.yml", "build settings")
	inspectCmd.Flags().StringVar(&validPointsVal, "valid-points", "", "CSV file of the track's valid area, x,y per line (required)")
	inspectCmd.Flags().StringVar(&centerlineVal, "centerline", "", "CSV file of the track centerline, x,y per line (required)")
}

func inspect() error {
	settings, err := config.Load(cfgPathVal)
	if err != nil {
		return fmt.Errorf("config: %w", err)
	}
	if validPointsVal == "" || centerlineVal == "" {
		return fmt.Errorf("both --valid-points and --centerline are required")
	}

	validPoints, err := readPoints(validPointsVal)
	if err != nil {
		return err
	}
	centerline, err := readPoints(centerlineVal)
	if err != nil {
		return err
	}

	builder := &pipeline.Builder{
		Selector:    selector.Uniform{},
		Segmentator: &segmentator.NearestSeed{},
		Groups:      settings.Groups,
		Layers:      settings.Layers,
	}
	built, err := builder.Build(validPoints, centerline, false)
	if err != nil {
		return fmt.Errorf("init: %w", err)
	}

	grid := [2]float64{}
	if len(settings.Grid) == 2 {
		grid = [2]float64{settings.Grid[0], settings.Grid[1]}
	} else {
		h := geom.GridCellSize(validPoints)
		grid = [2]float64{h, h}
	}

	fmt.Printf("valid points:      %d\n", len(validPoints))
	fmt.Printf("centerline points: %d\n", len(centerline))
	fmt.Printf("groups:            %d\n", built.Maps.Groups())
	fmt.Printf("layers per group:  %d\n", settings.Layers)
	fmt.Printf("grid:              %v\n", grid)
	for i, m := range built.Maps {
		fmt.Printf("  group %d: centre=%v boundary points=%d\n", i, built.GroupCenters[i], m.BoundaryPoints())
	}
	return nil
}
