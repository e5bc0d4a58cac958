package main

import (
	"context"
	"io"
	"path/filepath"
	"strings"

	"github.com/milk9111/transform/prefabs"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

func newWatchCommand(opts *rootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "watch [dir...]",
		Short: "Rebuild rigs and rerun scripts whenever they change",
		Long: `Watch directories for .yaml rigs and .tengo scripts. Each change is
evaluated and printed; failures are logged and watching continues.

With no arguments the configured script dirs are watched, or ./prefabs
when none are configured.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			dirs := args
			if len(dirs) == 0 {
				dirs = opts.cfg.Scripts.Dirs
			}
			if len(dirs) == 0 {
				dirs = []string{"prefabs"}
			}

			w, err := prefabs.NewWatcherDebounce(opts.cfg.Watch.Debounce, dirs...)
			if err != nil {
				return err
			}
			defer w.Close()

			opts.log.Info("watching", zap.Strings("dirs", dirs))
			return watchLoop(cmd.Context(), opts, cmd.OutOrStdout(), w)
		},
	}
}

func watchLoop(ctx context.Context, opts *rootOptions, out io.Writer, w *prefabs.Watcher) error {
	for {
		select {
		case <-ctx.Done():
			return nil
		case name, ok := <-w.Events:
			if !ok {
				return nil
			}
			if err := evaluate(ctx, opts, out, name); err != nil {
				opts.log.Warn("evaluate failed", zap.String("file", name), zap.Error(err))
			}
		case err, ok := <-w.Errors:
			if !ok {
				return nil
			}
			opts.log.Warn("watch error", zap.Error(err))
		}
	}
}

func evaluate(ctx context.Context, opts *rootOptions, out io.Writer, name string) error {
	mod, ok := prefabs.ModTime(name)
	if !ok {
		opts.log.Info("removed", zap.String("file", name))
		return nil
	}
	opts.log.Debug("changed", zap.String("file", name), zap.Time("modified", mod))

	switch strings.ToLower(filepath.Ext(name)) {
	case ".tengo":
		return runScript(ctx, opts, out, name)
	default:
		return buildRig(ctx, opts, out, name, nil)
	}
}
