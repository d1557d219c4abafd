package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/spf13/cobra"

	"rolsa/internal/handlers"
	"rolsa/internal/logger"
	"rolsa/internal/mailer"
	"rolsa/internal/metrics"
	"rolsa/internal/repository"
	"rolsa/internal/repository/db"
	"rolsa/internal/server"
	"rolsa/internal/service"
	"rolsa/internal/session"
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Run the web server",
	Long:  `Migrates the database and serves the site until SIGINT or SIGTERM.`,
	RunE:  runServe,
}

func init() {
	rootCmd.AddCommand(serveCmd)
	// bare `rolsa` serves
	rootCmd.RunE = runServe
}

func runServe(cmd *cobra.Command, args []string) error {
	// load config.yml, .env and ROLSA_* overrides
	cfg, err := loadConfig()
	if err != nil {
		return err
	}

	// init logger
	log := logger.New(cfg.Log.Level)
	defer func() { _ = log.Sync() }()

	if !cfg.IsDevelopment() {
		gin.SetMode(gin.ReleaseMode)
	}
	if cfg.Session.Secret == "" {
		log.Warnw("session.secret not set; sessions will not survive a restart")
	}

	// open DB
	conn, err := db.InitDB(cfg.DB.Path)
	if err != nil {
		return fmt.Errorf("init sqlite: %w", err)
	}
	defer func() {
		if cerr := conn.Close(); cerr != nil {
			log.Errorw("failed to close sqlite", "err", cerr)
		}
	}()

	m, err := mailer.New(cfg.Mail)
	if err != nil {
		return fmt.Errorf("init mailer: %w", err)
	}

	// wire dependencies
	mtr := metrics.New()
	repos := repository.NewRepository(conn)
	services := service.NewService(repos, service.Options{
		Mailer:           m,
		Factors:          cfg.EmissionFactors(),
		SummaryRecipient: cfg.Mail.SummaryRecipient,
		Recorder:         mtr,
		Log:              log,
	})
	apiHandler := handlers.NewHandler(services, log, handlers.Options{
		Sessions:       session.NewManager(cfg.Session.Secret, cfg.Session.CookieName, cfg.Session.TTL, cfg.Session.Secure),
		Metrics:        mtr,
		EmailPerMinute: cfg.Limits.EmailPerMinute,
		EmailBurst:     cfg.Limits.EmailBurst,
	})

	// start HTTP server
	srv := server.New(cfg.HTTP, apiHandler.InitRoutes())
	errCh := runHTTPServer(srv, cfg.HTTP.Port, log)

	// graceful shutdown
	return waitForShutdown(srv, errCh, cfg.HTTP.ShutdownTimeout, log)
}

// runHTTPServer runs the HTTP server in a separate goroutine.
func runHTTPServer(srv *server.Server, port string, log *logger.Logger) <-chan error {
	errCh := make(chan error, 1)
	go func() {
		log.Infow("http server listening", "port", port)
		if err := srv.Run(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
		close(errCh)
	}()
	return errCh
}

// waitForShutdown blocks until a termination signal or a server failure,
// then drains in-flight requests.
func waitForShutdown(srv *server.Server, errCh <-chan error, timeout time.Duration, log *logger.Logger) error {
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	defer signal.Stop(quit)

	select {
	case err, ok := <-errCh:
		if ok {
			return fmt.Errorf("http server: %w", err)
		}
		return nil
	case <-quit:
	}

	log.Infow("shutting down server...")

	// allow in-flight requests to complete
	ctx, cancel := context.WithTimeout(context.Background(), timeout)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		return fmt.Errorf("server forced to shutdown: %w", err)
	}
	return nil
}
