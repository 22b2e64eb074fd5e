package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os/signal"
	"syscall"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/spf13/cobra"

	"github.com/JonnyWalker81/focusflow/backend/internal/dates"
	"github.com/JonnyWalker81/focusflow/backend/internal/handlers"
	"github.com/JonnyWalker81/focusflow/backend/internal/logger"
	"github.com/JonnyWalker81/focusflow/backend/internal/middleware"
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the API server",
	Long:  `Start the HTTP API server and listen for requests.`,
	RunE:  runServe,
}

var (
	port string
)

func init() {
	serveCmd.Flags().StringVarP(&port, "port", "p", "", "Port to listen on (overrides config)")
}

func runServe(cmd *cobra.Command, args []string) error {
	a, err := loadApp()
	if err != nil {
		return err
	}
	cfg := a.cfg

	if port != "" {
		cfg.Server.Port = port
	}

	logger.Info("starting FocusFlow API server",
		logger.String("env", cfg.Server.Env),
		logger.String("data_path", a.store.Path()),
		logger.String("timezone", cfg.Analytics.Timezone),
	)

	if cfg.IsProduction() {
		gin.SetMode(gin.ReleaseMode)
	}

	profileHandler := handlers.NewProfileHandler(a.profiles)
	analyticsHandler := handlers.NewAnalyticsHandler(a.analytics, handlers.WindowParser{
		DefaultPreset: dates.Preset(cfg.Analytics.DefaultRange),
		MaxDays:       cfg.Analytics.MaxDays,
	})
	trackingHandler := handlers.NewTrackingHandler(a.tracking)

	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(middleware.RequestID())
	router.Use(middleware.Logger())
	router.Use(middleware.SecurityHeaders(cfg.IsProduction()))
	router.Use(middleware.CORS(cfg.CORS.AllowedOrigins))

	router.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{
			"status": "ok",
			"env":    cfg.Server.Env,
		})
	})
	router.GET("/metrics", gin.WrapH(promhttp.Handler()))

	v1 := router.Group("/api/v1")
	v1.Use(middleware.RateLimit(cfg.RateLimit.RequestsPerMinute))
	handlers.RegisterRoutes(v1, profileHandler, analyticsHandler, trackingHandler)

	srv := &http.Server{
		Addr:    ":" + cfg.Server.Port,
		Handler: router,
	}

	ctx, stop := signal.NotifyContext(cmd.Context(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	errCh := make(chan error, 1)
	go func() {
		logger.Info("server listening", logger.String("port", cfg.Server.Port))
		errCh <- srv.ListenAndServe()
	}()

	select {
	case err := <-errCh:
		if !errors.Is(err, http.ErrServerClosed) {
			return fmt.Errorf("failed to start server: %w", err)
		}
		return nil
	case <-ctx.Done():
	}

	logger.Info("shutting down server")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("failed to shut down server: %w", err)
	}
	return nil
}
