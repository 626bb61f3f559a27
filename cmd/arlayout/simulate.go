package main

import (
	"encoding/json"
	"fmt"

	"github.com/OCAP2/arlayout/internal/config"
	"github.com/OCAP2/arlayout/pkg/core"
	"github.com/OCAP2/arlayout/pkg/indicator"
	"github.com/OCAP2/arlayout/pkg/marker"
	"github.com/spf13/cobra"
)

type simulateOptions struct {
	frames   int
	turn     float64
	selected string
}

// frameOutput is one JSON line of simulate output.
type frameOutput struct {
	Frame   int64                    `json:"frame"`
	Heading float64                  `json:"heading"`
	Markers []indicator.MarkerLayout `json:"markers"`
	Signs   []core.Auxiliary         `json:"signs,omitempty"`
}

func newSimulateCmd(root *rootOptions) *cobra.Command {
	opts := &simulateOptions{}

	cmd := &cobra.Command{
		Use:   "simulate",
		Short: "Run the layout engine over the configured scene",
		Long: `Run the layout engine over the scene in the config file.

One marker is registered per scene place. The simulated user turns by --turn degrees
every frame, and each frame's layout is printed to stdout as one JSON line.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runSimulate(cmd, root, opts)
		},
	}

	cmd.Flags().IntVarP(&opts.frames, "frames", "n", 36, "number of frames to lay out")
	cmd.Flags().Float64Var(&opts.turn, "turn", 10, "heading change per frame in degrees")
	cmd.Flags().StringVar(&opts.selected, "select", "", "ID of the place to select")

	return cmd
}

func runSimulate(cmd *cobra.Command, root *rootOptions, opts *simulateOptions) error {
	var engine *indicator.Engine
	rt, err := setup(root, func() int64 {
		if engine == nil {
			return 0
		}
		return engine.FrameNumber()
	})
	if err != nil {
		return err
	}
	defer rt.close()

	cfg, err := config.Layout()
	if err != nil {
		return fmt.Errorf("layout config: %w", err)
	}
	scene, err := config.GetScene()
	if err != nil {
		return err
	}

	camera := &sceneCamera{fov: radians(scene.FieldOfView), pitch: radians(scene.Pitch)}
	user := &sceneUser{pose: core.UserPose{Position: scene.User, Heading: radians(scene.Heading)}}

	engine, err = indicator.New(camera, cfg,
		indicator.WithLogger(rt.logger),
		indicator.WithGeolocation(user),
		indicator.WithAuxiliaryFactory(signFactory{}),
	)
	if err != nil {
		return fmt.Errorf("creating engine: %w", err)
	}
	engine.OnMarkerAdded(func(ev indicator.MarkerAdded) {
		rt.logger.Info("Marker added", "marker", ev.Marker.ID(), "place", ev.Place.Name)
	})

	places := withIDs(scene.Places)
	for i := range places {
		engine.AddMarker(marker.New(places[i], cfg.PlaneDistance), &places[i])
	}
	if opts.selected != "" {
		for i := range places {
			if places[i].ID == opts.selected {
				engine.SetSelected(&places[i])
			}
		}
	}
	rt.logger.Info("Simulation started", "places", len(places), "frames", opts.frames, "log", rt.logPath)

	enc := json.NewEncoder(cmd.OutOrStdout())
	for i := 0; i < opts.frames; i++ {
		if err := cmd.Context().Err(); err != nil {
			return err
		}
		engine.Update()
		out := frameOutput{
			Frame:   engine.FrameNumber(),
			Heading: degrees(user.pose.Heading),
			Markers: engine.Layout(),
			Signs:   engine.AuxiliaryObjects(),
		}
		if err := enc.Encode(out); err != nil {
			return fmt.Errorf("writing frame %d: %w", out.Frame, err)
		}
		user.turn(radians(opts.turn))
	}

	engine.RemoveAll()
	rt.logger.Info("Simulation finished", "frames", engine.FrameNumber())
	return nil
}
