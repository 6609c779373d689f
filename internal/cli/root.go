package cli

import (
	"fmt"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"github.com/strand-db/strand/internal/config"
	"github.com/strand-db/strand/internal/service"
	"github.com/strand-db/strand/internal/store"
)

// RootOptions carries the global flags shared by every subcommand.
type RootOptions struct {
	Verbose    bool
	Format     string // "json" | "text"
	DBPath     string // overrides config when set
	ConfigPath string
}

// ValidFormats lists the accepted --format values.
var ValidFormats = []string{"text", "json"}

// NewRootCommand creates the root command for the strand CLI.
func NewRootCommand() *cobra.Command {
	opts := &RootOptions{}

	cmd := &cobra.Command{
		Use:           "strand",
		SilenceUsage:  true,
		SilenceErrors: true,
		Short:         "strand - content-addressed string analysis store",
		Long: `strand stores each distinct string exactly once, keyed by the SHA-256
of its value, together with a deterministic set of derived properties,
and answers structured and natural-language filter queries over them.`,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			if !isValidFormat(opts.Format) {
				return fmt.Errorf("invalid format %q: must be one of %v", opts.Format, ValidFormats)
			}
			return nil
		},
	}

	cmd.PersistentFlags().BoolVarP(&opts.Verbose, "verbose", "v", false, "verbose output")
	cmd.PersistentFlags().StringVar(&opts.Format, "format", "text", "output format (json|text)")
	cmd.PersistentFlags().StringVar(&opts.DBPath, "db", "", "path to SQLite database (overrides config)")
	cmd.PersistentFlags().StringVar(&opts.ConfigPath, "config", "", "path to config file")

	cmd.AddCommand(NewAnalyzeCommand(opts))
	cmd.AddCommand(NewAddCommand(opts))
	cmd.AddCommand(NewGetCommand(opts))
	cmd.AddCommand(NewQueryCommand(opts))
	cmd.AddCommand(NewAskCommand(opts))
	cmd.AddCommand(NewRemoveCommand(opts))
	cmd.AddCommand(NewSeedCommand(opts))

	return cmd
}

// isValidFormat reports whether format is an accepted --format value.
func isValidFormat(format string) bool {
	for _, f := range ValidFormats {
		if f == format {
			return true
		}
	}
	return false
}

// openService loads configuration, builds the logger, opens the store, and
// wires the service. The returned closer must be called when done.
func openService(opts *RootOptions) (*service.Service, func(), error) {
	cfg, err := config.Load(opts.ConfigPath)
	if err != nil {
		return nil, nil, WrapExitError(ExitCommandError, "failed to load config", err)
	}

	dbPath := cfg.DBPath
	if opts.DBPath != "" {
		dbPath = opts.DBPath
	}

	logger, err := buildLogger(cfg, opts.Verbose)
	if err != nil {
		return nil, nil, WrapExitError(ExitCommandError, "failed to build logger", err)
	}

	st, err := store.Open(dbPath)
	if err != nil {
		logger.Sync()
		return nil, nil, WrapExitError(ExitCommandError, "failed to open database", err)
	}

	closer := func() {
		st.Close()
		logger.Sync()
	}
	return service.New(st, logger), closer, nil
}

// buildLogger constructs the zap logger from config. Verbose forces debug
// level regardless of the configured one. Logs go to stderr so JSON
// command output on stdout stays machine-parseable.
func buildLogger(cfg config.Config, verbose bool) (*zap.Logger, error) {
	level, err := zapcore.ParseLevel(cfg.LogLevel)
	if err != nil {
		return nil, fmt.Errorf("invalid log level %q: %w", cfg.LogLevel, err)
	}
	if verbose {
		level = zapcore.DebugLevel
	}

	zapCfg := zap.NewProductionConfig()
	if !cfg.LogJSON {
		zapCfg = zap.NewDevelopmentConfig()
	}
	zapCfg.Level = zap.NewAtomicLevelAt(level)
	zapCfg.OutputPaths = []string{"stderr"}
	zapCfg.ErrorOutputPaths = []string{"stderr"}

	return zapCfg.Build()
}
