package main

import (
	"context"
	"fmt"
	"io"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/milk9111/transform/prefabs"
	"github.com/spf13/cobra"
)

func newRigCommand(opts *rootOptions) *cobra.Command {
	var points []string

	cmd := &cobra.Command{
		Use:   "rig <name.yaml>",
		Short: "Build a rig and print its world transform",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			extra := make([][3]float64, 0, len(points))
			for _, p := range points {
				v, err := parsePoint(p)
				if err != nil {
					return err
				}
				extra = append(extra, v)
			}
			return buildRig(cmd.Context(), opts, cmd.OutOrStdout(), args[0], extra)
		},
	}

	cmd.Flags().StringArrayVar(&points, "point", nil, "extra point x,y,z to map (repeatable)")
	return cmd
}

func buildRig(ctx context.Context, opts *rootOptions, w io.Writer, name string, extra [][3]float64) error {
	path := opts.resolve(name)
	dir := filepath.Dir(path)

	// Parents and script steps are looked up next to the rig first, then in
	// the configured dirs, then among the embedded prefabs.
	b := &prefabs.Builder{
		Logger:  opts.log,
		Timeout: opts.cfg.Scripts.Timeout,
		Resolve: func(n string) string {
			return opts.resolve(n, dir)
		},
		LoadScript: prefabs.ReadFile,
	}

	spec, err := prefabs.LoadRigSpec(path)
	if err != nil {
		return err
	}
	rig, err := b.BuildSpec(ctx, path, spec)
	if err != nil {
		return err
	}

	r := newReport(rig.Name, rig.World)
	for i, p := range spec.Points {
		r.Points = append(r.Points, mapping{In: vec3(p), Out: vec3(rig.Points[i])})
	}
	r.addPoints(rig.World, extra)
	for i, d := range spec.Dims {
		r.Dims = append(r.Dims, mapping{In: vec3(d), Out: vec3(rig.Dims[i])})
	}
	return writeReport(w, opts.Format, r)
}

func parsePoint(s string) ([3]float64, error) {
	var v [3]float64
	parts := strings.Split(s, ",")
	if len(parts) < 2 || len(parts) > 3 {
		return v, fmt.Errorf("point %q: want x,y[,z]", s)
	}
	for i, p := range parts {
		f, err := strconv.ParseFloat(strings.TrimSpace(p), 64)
		if err != nil {
			return v, fmt.Errorf("point %q: %w", s, err)
		}
		v[i] = f
	}
	return v, nil
}
