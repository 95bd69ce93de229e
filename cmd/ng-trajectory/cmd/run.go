package cmd

import (
	"context"
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"

	"github.com/wentasah/ng-trajectory/contracts"
	"github.com/wentasah/ng-trajectory/criterion"
	"github.com/wentasah/ng-trajectory/eval"
	"github.com/wentasah/ng-trajectory/geom"
	"github.com/wentasah/ng-trajectory/internal/buildctx"
	"github.com/wentasah/ng-trajectory/internal/config"
	"github.com/wentasah/ng-trajectory/internal/trackio"
	"github.com/wentasah/ng-trajectory/interpolator"
	"github.com/wentasah/ng-trajectory/optimizer"
	"github.com/wentasah/ng-trajectory/penalizer"
	"github.com/wentasah/ng-trajectory/pipeline"
	"github.com/wentasah/ng-trajectory/segmentator"
	"github.com/wentasah/ng-trajectory/selector"
)

var (
	cfgPathVal         string
	validPointsVal     string
	centerlineVal      string
	deadlineSecondsVal int
	runsVal            int
)

// runCmd runs --runs build-then-optimise cycles, each one building (or,
// with hold_matryoshka, reusing) the Matryoshka and optimising over it
// (spec.md §4.9). Grounded on cmd/recast/cmd/
// build.go's "settings file + flags -> pipeline" shape.
var runCmd = &cobra.Command{
	Use:   "run",
	Short: "build the Matryoshka transformation and optimise a trajectory",
	Run: func(cmd *cobra.Command, args []string) {
		if err := run(); err != nil {
			fmt.Fprintln(os.Stderr, "error,", err)
			os.Exit(-1)
		}
	},
}

func init() {
	RootCmd.AddCommand(runCmd)
	runCmd.Flags().StringVar(&cfgPathVal, "config", "ng-trajectory.yml", "build settings")
	runCmd.Flags().StringVar(&validPointsVal, "valid-points", "", "CSV file of the track's valid area, x,y per line (required)")
	runCmd.Flags().StringVar(&centerlineVal, "centerline", "", "CSV file of the track centerline, x,y per line (required)")
	runCmd.Flags().IntVar(&deadlineSecondsVal, "deadline", 0, "optional wall-clock deadline in seconds")
	runCmd.Flags().IntVar(&runsVal, "runs", 1, "number of init+optimise cycles; hold_matryoshka in --config governs whether each cycle after the first rebuilds the MapSet or reuses it")
}

func run() error {
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

	log := buildctx.New(os.Stdout, settings.LoggingVerbosity)
	if settings.Plot || settings.PlotMapping {
		log.Warningf("plot/plot_mapping: no plotting backend is implemented; ignored")
	}

	grid := [2]float64{}
	if len(settings.Grid) == 2 {
		grid = [2]float64{settings.Grid[0], settings.Grid[1]}
	} else {
		h := geom.GridCellSize(validPoints)
		grid = [2]float64{h, h}
	}

	builder := &pipeline.Builder{
		Selector:    selector.Uniform{},
		Segmentator: &segmentator.NearestSeed{},
		Groups:      settings.Groups,
		Layers:      settings.Layers,
	}

	runs := runsVal
	if runs < 1 {
		runs = 1
	}

	for i := 0; i < runs; i++ {
		// init() is only entitled to reuse the prior MapSet from its
		// second invocation on (spec.md §4.9): the first cycle always
		// builds, regardless of hold_matryoshka.
		hold := settings.HoldMatryoshka && i > 0

		log.StartTimer(buildctx.TimerBuild)
		built, err := builder.Build(validPoints, centerline, hold)
		log.StopTimer(buildctx.TimerBuild)
		if err != nil {
			return fmt.Errorf("init: %w", err)
		}
		if hold {
			log.Logf(1, "init:held run=%d", i)
		} else {
			log.Logf(1, "init:built run=%d", i)
		}

		curvaturePenalizer := penalizer.NewCurvature(0, log)
		curvaturePenalizer.Init(contracts.PenalizerInit{
			ValidPoints:  validPoints,
			StartPoints:  centerline,
			Map:          built.MapContext,
			GroupCenters: built.GroupCenters,
		})

		evaluator := &eval.Evaluator{
			Maps:        built.Maps,
			Interp:      interpolator.ClosedSpline{},
			Penalizer:   curvaturePenalizer,
			Criterion:   criterion.LapTime{},
			ValidPoints: validPoints,
			Grid:        grid,
			PenaltyK:    settings.Penalty,
			Log:         log,
		}

		driver := optimizer.NewDriver(evaluator, settings.Groups, log)

		cfg := optimizer.Config{
			Budget:  settings.Budget,
			Workers: settings.Workers,
			Seed:    settings.Seed,
		}
		if deadlineSecondsVal > 0 {
			cfg.Deadline = time.Now().Add(time.Duration(deadlineSecondsVal) * time.Second)
		}

		log.StartTimer(buildctx.TimerOptimise)
		report, err := driver.Optimise(context.Background(), cfg)
		log.StopTimer(buildctx.TimerOptimise)
		if err != nil {
			return fmt.Errorf("optimise: %w", err)
		}

		if settings.LoggingVerbosity > 0 {
			log.Logf(1, "solution:%v", report.Result.Points)
			log.Logf(1, "final:%f", report.Score)
		}
	}
	return nil
}

func readPoints(path string) ([]geom.Point2, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	return trackio.Decode(f)
}
