package main

import (
	"os"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"github.com/just1ngray/jfswatch"
	"github.com/just1ngray/jfswatch/config"
)

func init() {
	cfg := zap.NewDevelopmentConfig()
	if os.Getenv("NO_COLOR") == "" {
		cfg.EncoderConfig.EncodeLevel = zapcore.CapitalColorLevelEncoder
	}
	cfg.DisableStacktrace = true
	log, err := cfg.Build()
	if err != nil {
		panic(err)
	}
	zap.ReplaceGlobals(log)
}

var (
	rootOpt = struct {
		Exact    []string
		Glob     []string
		Interval float64
		Sleep    float64
		Config   string
	}{}

	rootCmd = cobra.Command{
		Use:   "jfswatch [flags] command...",
		Short: "Run a command when watched files change",
		Long: `jfswatch polls a set of watched paths and runs a command whenever one of
them is created, modified or deleted. Paths are given as exact paths or as
extended glob patterns ('src/**/*.go', 'config.{yml,yaml}').

The command may reference bash-like variables, substituted per change:
  $diff or ${diff}    one of 'new', 'modified' or 'deleted'
  $path or ${path}    the watched path that changed
  $mtime or ${mtime}  the path's last modified time (unavailable for
                      deleted paths)

The command runs through $SHELL -c (default sh) with inherited stdio.
Single-quote the command to keep your shell from substituting the
variables before jfswatch sees them.`,
		Args:         cobra.ArbitraryArgs,
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runWatch(cmd, args)
		},
	}
)

func runWatch(cmd *cobra.Command, args []string) error {
	cfg := &config.Config{}
	if rootOpt.Config != "" {
		var err error
		cfg, err = config.Load(rootOpt.Config)
		if err != nil {
			return err
		}
	}

	// Flags add to or override whatever the file provided.
	cfg.Exact = append(cfg.Exact, rootOpt.Exact...)
	cfg.Glob = append(cfg.Glob, rootOpt.Glob...)
	flags := cmd.Flags()
	if flags.Changed("interval") || cfg.Interval == 0 {
		cfg.Interval = rootOpt.Interval
	}
	if flags.Changed("sleep") {
		cfg.Sleep = &rootOpt.Sleep
	}
	if len(args) > 0 {
		cfg.Command = args
	}

	w, err := jfswatch.New(cfg)
	if err != nil {
		return err
	}
	w.Watch()
	return nil
}

func main() {
	flags := rootCmd.Flags()
	flags.SetInterspersed(false)
	flags.StringArrayVarP(&rootOpt.Exact, "exact", "e", nil, "exact file path to watch (repeatable)")
	flags.StringArrayVarP(&rootOpt.Glob, "glob", "g", nil, "extended glob pattern to watch (repeatable)")
	flags.Float64VarP(&rootOpt.Interval, "interval", "i", config.DefaultInterval, "seconds between checks while nothing changes")
	flags.Float64VarP(&rootOpt.Sleep, "sleep", "s", 0, "seconds to sleep after the command has run (default: interval)")
	flags.StringVarP(&rootOpt.Config, "config", "c", "", "optional YAML watch configuration file")

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
