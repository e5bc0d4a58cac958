package main

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/milk9111/transform/config"
	"github.com/milk9111/transform/logging"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

// rootOptions holds global flags and what PersistentPreRunE builds from them.
type rootOptions struct {
	ConfigPath string
	Verbose    bool
	Format     string

	cfg config.Config
	log *zap.Logger
}

var validFormats = []string{"text", "json"}

func newRootCommand() *cobra.Command {
	opts := &rootOptions{}

	cmd := &cobra.Command{
		Use:          "transformctl",
		Short:        "Build and inspect 4x4 transforms from rigs and tengo scripts",
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			if !isValidFormat(opts.Format) {
				return fmt.Errorf("invalid format %q: must be one of %v", opts.Format, validFormats)
			}

			cfg, err := config.Load(opts.ConfigPath)
			if err != nil {
				return err
			}
			opts.cfg = cfg

			logger, err := logging.New(cfg.Logging, opts.Verbose)
			if err != nil {
				return err
			}
			opts.log = logger
			return nil
		},
		PersistentPostRun: func(cmd *cobra.Command, args []string) {
			if opts.log != nil {
				_ = opts.log.Sync()
			}
		},
	}

	cmd.PersistentFlags().StringVar(&opts.ConfigPath, "config", "", "path to a yaml config file")
	cmd.PersistentFlags().BoolVarP(&opts.Verbose, "verbose", "v", false, "debug logging")
	cmd.PersistentFlags().StringVar(&opts.Format, "format", "text", "output format (text|json)")

	cmd.AddCommand(newRunCommand(opts))
	cmd.AddCommand(newRigCommand(opts))
	cmd.AddCommand(newWatchCommand(opts))

	return cmd
}

func isValidFormat(format string) bool {
	for _, f := range validFormats {
		if f == format {
			return true
		}
	}
	return false
}

// resolve finds name on disk, first as given and then under each extra dir
// and each configured script dir. Names that match nothing are returned
// unchanged so the embedded prefabs can serve them.
func (o *rootOptions) resolve(name string, extra ...string) string {
	if _, err := os.Stat(name); err == nil {
		return name
	}
	if filepath.IsAbs(name) {
		return name
	}
	dirs := append(append([]string{}, extra...), o.cfg.Scripts.Dirs...)
	for _, dir := range dirs {
		p := filepath.Join(dir, name)
		if _, err := os.Stat(p); err == nil {
			return p
		}
	}
	return name
}
