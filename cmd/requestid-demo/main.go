package main

import (
	"context"
	"fmt"
	"log/slog"
	"os"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/spf13/cobra"

	"github.com/dmitrymomot/reqid/internal/demo"
	"github.com/dmitrymomot/reqid/pkg/config"
	"github.com/dmitrymomot/reqid/pkg/environment"
	"github.com/dmitrymomot/reqid/pkg/httpserver"
	"github.com/dmitrymomot/reqid/pkg/logger"
	"github.com/dmitrymomot/reqid/pkg/metrics"
	"github.com/dmitrymomot/reqid/pkg/requestid"
)

type appConfig struct {
	Env     string `env:"APP_ENV" envDefault:"development"`
	Service string `env:"APP_SERVICE" envDefault:"requestid-demo"`
}

func main() {
	if err := newRootCmd().ExecuteContext(context.Background()); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	var (
		envFiles  []string
		addr      string
		strategy  string
		header    string
		noHeader  bool
		framework string
	)

	cmd := &cobra.Command{
		Use:           "requestid-demo",
		Short:         "Serve an HTTP endpoint that reports the identifier bound to each request",
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, _ []string) error {
			if len(envFiles) > 0 {
				if err := config.LoadEnv(envFiles...); err != nil {
					return err
				}
			}

			var (
				app     appConfig
				ridCfg  requestid.Config
				srvCfg  httpserver.Config
				demoCfg demo.Config
			)
			if err := config.Load(&app); err != nil {
				return err
			}
			if err := config.Load(&ridCfg); err != nil {
				return err
			}
			if err := config.Load(&srvCfg); err != nil {
				return err
			}
			if err := config.Load(&demoCfg); err != nil {
				return err
			}

			flags := cmd.Flags()
			if flags.Changed("addr") {
				srvCfg.Addr = addr
			}
			if flags.Changed("strategy") {
				ridCfg.Strategy = strategy
			}
			if flags.Changed("header") {
				ridCfg.Header = header
			}
			if flags.Changed("no-header") {
				ridCfg.HeaderDisabled = noHeader
			}
			if flags.Changed("framework") {
				demoCfg.Framework = framework
			}

			return run(cmd.Context(), app, ridCfg, srvCfg, demoCfg)
		},
	}

	f := cmd.Flags()
	f.StringSliceVar(&envFiles, "env-file", nil, "load variables from .env files before reading the environment")
	f.StringVar(&addr, "addr", ":8080", "listen address (HTTP_ADDR)")
	f.StringVar(&strategy, "strategy", string(requestid.StrategyCounter), "identifier strategy: counter or random (REQUEST_ID_STRATEGY)")
	f.StringVar(&header, "header", requestid.Header, "response header carrying the identifier (REQUEST_ID_HEADER)")
	f.BoolVar(&noHeader, "no-header", false, "do not echo the identifier to clients (REQUEST_ID_HEADER_DISABLED)")
	f.StringVar(&framework, "framework", demo.FrameworkChi, "router implementation: chi or gin (DEMO_FRAMEWORK)")

	return cmd
}

func run(ctx context.Context, app appConfig, ridCfg requestid.Config, srvCfg httpserver.Config, demoCfg demo.Config) error {
	env := environment.Parse(app.Env)
	if env.IsProduction() {
		gin.SetMode(gin.ReleaseMode)
	}

	log := logger.New(
		logger.WithEnvironment(env, app.Service),
		logger.WithContextExtractors(requestid.LoggerExtractor()),
	)
	logger.SetAsDefault(log)

	reg := prometheus.NewRegistry()
	reg.MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)

	binder, err := requestid.NewFromConfig(ridCfg,
		requestid.WithLogger(log.With(logger.Component("requestid"))),
		requestid.WithObserver(metrics.NewObserver(reg)),
	)
	if err != nil {
		return fmt.Errorf("request id binder: %w", err)
	}

	handler, err := demo.NewHandler(demoCfg.Framework, demo.Deps{Binder: binder, Logger: log, Gatherer: reg})
	if err != nil {
		return err
	}

	log.InfoContext(ctx, "starting",
		slog.String("strategy", string(binder.Strategy())),
		slog.String("header", binder.HeaderName()),
		slog.String("framework", demoCfg.Framework),
	)

	srv := httpserver.NewFromConfig(srvCfg, httpserver.WithLogger(log.With(logger.Component("httpserver"))))
	if err := srv.Run(ctx, handler); err != nil {
		log.ErrorContext(ctx, "server stopped", logger.Error(err))
		return err
	}
	return nil
}
