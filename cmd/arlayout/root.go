package main

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"time"

	"github.com/OCAP2/arlayout/internal/config"
	"github.com/OCAP2/arlayout/internal/logging"
	intOtel "github.com/OCAP2/arlayout/internal/otel"
	"github.com/OCAP2/arlayout/pkg/indicator"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

// options shared by every subcommand
type rootOptions struct {
	configDir string
	verbose   bool
}

func newRootCmd() *cobra.Command {
	opts := &rootOptions{}

	root := &cobra.Command{
		Use:          "arlayout",
		Short:        "Lay out AR navigation markers on and around the camera view",
		Version:      version,
		SilenceUsage: true,
	}
	root.PersistentFlags().StringVarP(&opts.configDir, "config", "c", ".", "directory containing "+config.FileName)
	root.PersistentFlags().BoolVarP(&opts.verbose, "verbose", "v", false, "enable debug logging")

	root.AddCommand(newSimulateCmd(opts))
	return root
}

var newOTelProvider = intOtel.New

// session holds what a subcommand needs once config and logging are set up.
type session struct {
	logger   indicator.Logger
	slog     *logging.SlogManager
	otel     *intOtel.Provider
	logFile  *os.File
	logPath  string
	frameRef func() int64
}

// setup loads config and wires logging. frame is read lazily for the frame log attribute.
func setup(opts *rootOptions, frame func() int64) (*session, error) {
	rt := &session{slog: logging.NewSlogManager(), frameRef: frame}

	loadErr := config.Load(opts.configDir)
	if loadErr != nil {
		config.LoadDefaults()
	}
	if opts.verbose {
		viper.Set("logLevel", "debug")
	}
	level := config.GetString("logLevel")

	logsDir := config.GetString("logsDir")
	if err := os.MkdirAll(logsDir, 0755); err != nil {
		return nil, fmt.Errorf("creating logs dir: %w", err)
	}
	rt.logPath = logging.LogFilePath(logsDir, logging.ServiceName, time.Now())
	f, err := os.OpenFile(rt.logPath, os.O_RDWR|os.O_CREATE|os.O_APPEND, 0666)
	if err != nil {
		return nil, fmt.Errorf("opening log file: %w", err)
	}
	rt.logFile = f

	ctxAttrs := func() []slog.Attr {
		return []slog.Attr{slog.Int64("frame", rt.frameRef())}
	}
	otelCfg := config.GetOTelConfig()
	if config.GetString("logFormat") == "json" {
		rt.logger = logging.NewZerologAdapter(logging.NewJSONLogger(f, level, ctxAttrs))
		if otelCfg.Enabled {
			rt.logger.Warn("OTel log export needs the text log format, skipping", "logFormat", "json")
		}
	} else {
		// the file exporter only runs when enabled, the provider is a no-op otherwise
		rt.otel, err = newOTelProvider(intOtel.Config{
			Enabled:      otelCfg.Enabled,
			ServiceName:  otelCfg.ServiceName,
			BatchTimeout: otelCfg.BatchTimeout,
			LogWriter:    f,
			Endpoint:     otelCfg.Endpoint,
			Insecure:     otelCfg.Insecure,
		})
		if err != nil {
			f.Close()
			return nil, fmt.Errorf("initializing OTel: %w", err)
		}
		rt.slog.Setup(f, level, rt.otel.LoggerProvider(), ctxAttrs)
		rt.logger = rt.slog.Logger()
		if rt.otel.Enabled() {
			rt.logger.Info("OTel log export enabled", "service", otelCfg.ServiceName, "endpoint", otelCfg.Endpoint)
		}
	}

	if loadErr != nil {
		rt.logger.Warn("Failed to load config, using defaults!", "error", loadErr)
	} else {
		rt.logger.Info("Loaded config", "dir", opts.configDir)
	}
	return rt, nil
}

func (rt *session) close() {
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := rt.slog.Flush(ctx); err != nil {
		rt.logger.Error("Failed to flush logs", "error", err)
	}
	if rt.otel != nil {
		if err := rt.otel.Flush(ctx); err != nil {
			rt.logger.Error("Failed to flush OTel logs", "error", err)
		}
		if err := rt.otel.Shutdown(ctx); err != nil {
			rt.logger.Error("Failed to shut down OTel", "error", err)
		}
	}
	rt.logFile.Close()
}
