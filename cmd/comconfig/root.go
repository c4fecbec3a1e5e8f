package main

import (
	"context"
	"strings"
	"time"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"go.uber.org/zap"

	"github.com/ajitpratap0/comconfig/pkg/config"
	"github.com/ajitpratap0/comconfig/pkg/logger"
	"github.com/ajitpratap0/comconfig/pkg/observability"
)

// app carries what the persistent hooks prepare for a subcommand.
type app struct {
	v        *viper.Viper
	settings *config.Settings
	shutdown func(context.Context) error
}

func newRootCmd() *cobra.Command {
	a := &app{v: viper.New()}

	root := &cobra.Command{
		Use:   "comconfig",
		Short: "Load and inspect LoLa deployment descriptors",
		Long: `comconfig loads a FlatBuffer deployment descriptor the way a communicating
process does at startup. A descriptor that fails to load terminates the
command with a single fatal diagnostic.`,
		SilenceUsage:       true,
		PersistentPreRunE:  a.setup,
		PersistentPostRunE: a.teardown,
	}

	flags := root.PersistentFlags()
	flags.String("config", "", "Path to a YAML settings file (optional)")
	flags.String("log-level", "", "Log level (debug, info, warn, error)")
	flags.String("log-encoding", "", "Log encoding (json, console)")
	flags.Bool("trace", false, "Export the load span to stderr")

	a.v.SetEnvPrefix("COMCONFIG")
	a.v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	a.v.AutomaticEnv()
	_ = a.v.BindPFlag("config", flags.Lookup("config"))
	_ = a.v.BindPFlag("log.level", flags.Lookup("log-level"))
	_ = a.v.BindPFlag("log.encoding", flags.Lookup("log-encoding"))
	_ = a.v.BindPFlag("tracing.enabled", flags.Lookup("trace"))

	root.AddCommand(newValidateCmd(a), newInspectCmd(a), newVersionCmd())
	return root
}

// setup resolves settings in the order defaults, settings file, environment,
// flags, then installs the logger and, when asked, the tracer provider.
func (a *app) setup(cmd *cobra.Command, _ []string) error {
	s := config.Defaults()
	if path := a.v.GetString("config"); path != "" {
		loaded, err := config.LoadSettings(path)
		if err != nil {
			return err
		}
		s = loaded
	}

	a.v.SetDefault("log.level", s.Log.Level)
	a.v.SetDefault("log.encoding", s.Log.Encoding)
	a.v.SetDefault("log.development", s.Log.Development)
	a.v.SetDefault("output.format", s.Output.Format)
	a.v.SetDefault("tracing.enabled", s.Tracing.Enabled)
	a.v.SetDefault("tracing.exporter", s.Tracing.Exporter)
	a.v.SetDefault("tracing.sampling_rate", s.Tracing.SamplingRate)

	s.Log.Level = a.v.GetString("log.level")
	s.Log.Encoding = a.v.GetString("log.encoding")
	s.Log.Development = a.v.GetBool("log.development")
	s.Output.Format = a.v.GetString("output.format")
	s.Tracing.Enabled = a.v.GetBool("tracing.enabled")
	s.Tracing.Exporter = a.v.GetString("tracing.exporter")
	s.Tracing.SamplingRate = a.v.GetFloat64("tracing.sampling_rate")
	if err := s.Validate(); err != nil {
		return err
	}
	a.settings = s

	if err := logger.Init(logger.Config{
		Level:       s.Log.Level,
		Development: s.Log.Development,
		Encoding:    s.Log.Encoding,
	}); err != nil {
		return err
	}

	if s.Tracing.Enabled {
		tc := observability.DefaultTracingConfig()
		tc.ServiceVersion = version
		tc.ExporterType = s.Tracing.Exporter
		tc.SamplingRate = s.Tracing.SamplingRate
		tc.Writer = cmd.ErrOrStderr()
		shutdown, err := observability.InitTracing(tc)
		if err != nil {
			return err
		}
		a.shutdown = shutdown
	}
	return nil
}

func (a *app) teardown(cmd *cobra.Command, _ []string) error {
	if a.shutdown != nil {
		ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		if err := a.shutdown(ctx); err != nil {
			logger.Warn("failed to flush spans", zap.Error(err))
		}
	}
	_ = logger.Sync()
	return nil
}
