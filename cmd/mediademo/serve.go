package main

import (
	"context"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/dmitrymomot/mediakit/pkg/clientip"
	"github.com/dmitrymomot/mediakit/pkg/config"
	"github.com/dmitrymomot/mediakit/pkg/httpserver"
	"github.com/dmitrymomot/mediakit/pkg/logger"
	"github.com/dmitrymomot/mediakit/pkg/mediaversion"
	"github.com/dmitrymomot/mediakit/pkg/requestid"
)

func newServeCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:     "serve",
		Aliases: []string{"s"},
		Short:   "Run the demo HTTP server",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadConfig(cmd)
			if err != nil {
				return err
			}
			if addr, _ := cmd.Flags().GetString("addr"); addr != "" {
				cfg.HTTP.Addr = addr
			}

			ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
			defer stop()
			return serve(ctx, cfg)
		},
	}
	cmd.Flags().String("addr", "", "listen address, overrides HTTP_ADDR")
	return cmd
}

func loadConfig(cmd *cobra.Command) (Config, error) {
	files, _ := cmd.Flags().GetStringSlice("env-file")
	prefix, _ := cmd.Flags().GetString("prefix")

	var cfg Config
	err := config.Load(&cfg, config.WithEnvFiles(files...), config.WithPrefix(prefix))
	return cfg, err
}

func newLogger(cfg Config) *slog.Logger {
	opts := []logger.Option{
		logger.WithEnvironment(cfg.Env, "mediademo"),
		logger.WithContextExtractors(requestid.LoggerExtractor(), clientip.LoggerExtractor(), mediaversion.LogExtractor()),
	}
	if cfg.LogLevel != "" {
		opts = append(opts, logger.WithLevel(logger.ParseLevel(cfg.LogLevel)))
	}
	return logger.New(opts...)
}

func serve(ctx context.Context, cfg Config) error {
	log := newLogger(cfg)
	logger.SetAsDefault(log)

	a, err := newApp(ctx, cfg, log, newRegistry())
	if err != nil {
		log.ErrorContext(ctx, "wire application", logger.Error(err))
		return err
	}
	defer func() {
		if err := a.Close(); err != nil {
			log.ErrorContext(ctx, "close application", logger.Error(err))
		}
	}()

	log.InfoContext(ctx, "media versions",
		slog.Any("versions", a.resolver.Registry().Keys()),
		slog.String("default", a.resolver.Registry().Default()),
		slog.Bool("strict", cfg.Media.StrictSessionMode),
		slog.String("mode", string(a.resolver.Config().Mode)),
	)

	srv := httpserver.NewFromConfig(cfg.HTTP, httpserver.WithLogger(log))
	return srv.Run(ctx, a.handler)
}
