package main

import (
	"context"
	"crypto/rand"
	"encoding/hex"
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/ariebrainware/clinique/config"
	"github.com/ariebrainware/clinique/docs"
	"github.com/ariebrainware/clinique/endpoint"
	"github.com/ariebrainware/clinique/logging"
	"github.com/ariebrainware/clinique/metrics"
	"github.com/ariebrainware/clinique/middleware"
	"github.com/ariebrainware/clinique/model"
	"github.com/ariebrainware/clinique/photo"
	"github.com/ariebrainware/clinique/remote"
	"github.com/ariebrainware/clinique/util"
	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/rs/zerolog"
	"github.com/spf13/cobra"
)

type serveOptions struct {
	shutdownTimeout time.Duration
	loginLimit      int
	loginWindow     time.Duration
}

func newServeCommand(service string) *cobra.Command {
	var opts serveOptions
	cmd := &cobra.Command{
		Use:   service,
		Short: fmt.Sprintf("Start the %s service", service),
		RunE: func(cmd *cobra.Command, args []string) error {
			return serve(cmd.Context(), service, opts)
		},
	}
	cmd.Flags().DurationVar(&opts.shutdownTimeout, "shutdown-timeout", 15*time.Second, "maximum time to wait for in-flight requests on shutdown")
	if service == config.ServiceAuth {
		cmd.Flags().IntVar(&opts.loginLimit, "login-limit", 5, "login attempts allowed per client IP and window")
		cmd.Flags().DurationVar(&opts.loginWindow, "login-window", 15*time.Minute, "login rate limit window")
	}
	return cmd
}

func serve(ctx context.Context, service string, opts serveOptions) error {
	cfg := config.LoadConfig()
	logger := logging.New(cfg, service)
	logging.Set(logger)
	gin.SetMode(cfg.GinMode)

	db, err := config.ConnectDB(service)
	if err != nil {
		return err
	}
	if err := model.Migrate(db, service); err != nil {
		return err
	}
	if service == config.ServiceDoctors {
		if err := model.SeedDoctors(db); err != nil {
			return err
		}
	}

	if _, err := config.ConnectRedis(); err != nil {
		logger.Warn().Err(err).Msg("redis unavailable, continuing without session cache and rate limiting")
	}

	reg := prometheus.NewRegistry()
	reg.MustRegister(collectors.NewGoCollector(), collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}))
	m := metrics.New(reg, service)

	env := &endpoint.Env{
		Config: cfg,
		Remote: remote.New(cfg.Endpoints, cfg.RemoteTimeout, m),
	}

	switch service {
	case config.ServiceAuth:
		util.SetSecurityLoggerDB(db)
		if err := util.InitGeoIP(cfg.GeoIPDBPath); err != nil {
			logger.Warn().Err(err).Str("path", cfg.GeoIPDBPath).Msg("geoip lookups disabled")
		}
		defer util.CloseGeoIP()
		metrics.RegisterCache(reg, "geoip", util.GetGeoIPCacheMetrics)
		util.SetJWTSecret(jwtSecret(cfg, logger))
	case config.ServicePatients:
		store, err := photo.NewStore(ctx, cfg)
		if err != nil {
			return err
		}
		env.Photos = store
	}

	docs.SwaggerInfo.Title = fmt.Sprintf("Clinique %s API", service)
	router, err := endpoint.NewRouter(env, endpoint.RouterOptions{
		Service: service,
		DB:      db,
		Logger:  logger,
		Metrics: m,
		LoginRateLimit: middleware.RateLimitConfig{
			Limit:  opts.loginLimit,
			Window: opts.loginWindow,
		},
	})
	if err != nil {
		return err
	}

	srv := &http.Server{
		Addr:              cfg.ListenAddress(service),
		Handler:           router,
		ReadHeaderTimeout: 10 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		logger.Info().Str("addr", srv.Addr).Str("profile", cfg.ServiceProfile).Msg("listening")
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
		close(errCh)
	}()

	select {
	case err := <-errCh:
		return err
	case <-ctx.Done():
	}

	logger.Info().Msg("shutting down")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), opts.shutdownTimeout)
	defer cancel()
	return srv.Shutdown(shutdownCtx)
}

// jwtSecret returns JWTSECRET, or a random per-process secret when it is unset.
func jwtSecret(cfg *config.Config, logger zerolog.Logger) string {
	if cfg.JWTSecret != "" {
		return cfg.JWTSecret
	}
	buf := make([]byte, 32)
	if _, err := rand.Read(buf); err != nil {
		logger.Fatal().Err(err).Msg("failed to generate jwt secret")
	}
	logger.Warn().Msg("JWTSECRET not set, sessions will not survive a restart")
	return hex.EncodeToString(buf)
}
