package main

import (
	"context"
	"errors"
	"fmt"
	"io"

	"github.com/milk9111/transform/prefabs"
	"github.com/milk9111/transform/script"
	"github.com/milk9111/transform/transform"
	"github.com/spf13/cobra"
)

var errNoResult = errors.New("script did not assign a transform to result")

func newRunCommand(opts *rootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "run <script.tengo>",
		Short: "Run a tengo script and print the transform it leaves in `result`",
		Long: `Run a tengo script with the transform module available.

The script sees an identity transform in ` + "`input`" + ` and should assign its
output to ` + "`result`" + `. Scripts are read from disk first and from the
embedded prefabs otherwise.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runScript(cmd.Context(), opts, cmd.OutOrStdout(), args[0])
		},
	}
}

func runScript(ctx context.Context, opts *rootOptions, w io.Writer, name string) error {
	path := opts.resolve(name)
	src, err := prefabs.ReadFile(path)
	if err != nil {
		return err
	}

	rt, err := script.Compile(name, src,
		script.WithVar("input", transform.Identity()),
		script.WithLogger(opts.log),
		script.WithTimeout(opts.cfg.Scripts.Timeout),
	)
	if err != nil {
		return err
	}
	res, err := rt.Run(ctx)
	if err != nil {
		return err
	}

	t, err := res.Transform(script.ResultVar)
	if err != nil {
		return fmt.Errorf("%s: %w", name, errNoResult)
	}
	return writeReport(w, opts.Format, newReport(name, t))
}
