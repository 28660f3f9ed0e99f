package cmd

import (
	"context"
	"fmt"

	"github.com/abhisek/moodlexml/internal/config"
	"github.com/abhisek/moodlexml/internal/logging"
	"github.com/spf13/cobra"
)

// options is shared by every command. Flags left unset fall back to the
// loaded config.
type options struct {
	configPath string
	logLevel   string
	logFormat  string
	output     string
	indent     int

	cfg config.Config
}

func newRootCmd() *cobra.Command {
	opts := &options{}

	rootCmd := &cobra.Command{
		Use:   "moodlexml",
		Short: "Build Moodle XML quiz question files",
		Long:  "moodlexml builds true/false quiz questions grouped into categories and exports them in the Moodle XML import format.",
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return opts.resolve(cmd)
		},
		SilenceUsage: true,
	}

	flags := rootCmd.PersistentFlags()
	flags.StringVar(&opts.configPath, "config", "", "Path to config file (overrides MOODLEXML_CONFIG env var)")
	flags.StringVar(&opts.logLevel, "log-level", "", "Log level: debug, info, warn or error")
	flags.StringVar(&opts.logFormat, "log-format", "", "Log format: text or json")
	flags.StringVarP(&opts.output, "output", "o", "", "Output file, or - for stdout")
	flags.IntVar(&opts.indent, "indent", 0, "Spaces per indentation level (0 disables pretty printing)")

	rootCmd.AddCommand(newSampleCmd(opts))
	rootCmd.AddCommand(newTrueFalseCmd(opts))
	rootCmd.AddCommand(versionCmd)
	return rootCmd
}

// Execute runs the CLI.
func Execute() error {
	return newRootCmd().Execute()
}

// resolve loads the config, applies flag overrides and installs a
// run-scoped logger on the command context.
func (o *options) resolve(cmd *cobra.Command) error {
	cfg, err := config.Load(o.configPath)
	if err != nil {
		return fmt.Errorf("load config: %w", err)
	}

	flags := cmd.Flags()
	if flags.Changed("log-level") {
		cfg.LogLevel = o.logLevel
	}
	if flags.Changed("log-format") {
		cfg.LogFormat = o.logFormat
	}
	if flags.Changed("output") {
		cfg.Output = o.output
	}
	if flags.Changed("indent") {
		cfg.Indent = o.indent
	}
	if err := cfg.Validate(); err != nil {
		return err
	}
	o.cfg = cfg

	logger, err := logging.New(logging.Options{
		Level:  cfg.LogLevel,
		Format: cfg.LogFormat,
		Out:    cmd.ErrOrStderr(),
	})
	if err != nil {
		return err
	}

	ctx := cmd.Context()
	if ctx == nil {
		ctx = context.Background()
	}
	cmd.SetContext(logging.WithRun(ctx, logger))
	return nil
}
