package cmd

import (
	"context"
	"errors"
	"net/http"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/voiceinvoice/landing/backend"
	"github.com/voiceinvoice/landing/contactform"
	"github.com/voiceinvoice/landing/handlers"
	"github.com/voiceinvoice/landing/inits"
	"github.com/voiceinvoice/landing/operations"
	"github.com/voiceinvoice/landing/routines"
)

var port string

var serveCmd = &cobra.Command{
	Use:     "serve",
	Aliases: []string{"s"},
	Short:   "Run the site",
	RunE:    runServe,
}

func init() {
	serveCmd.Flags().StringVarP(&port, "port", "p", "", "listen port (overrides PORT)")
}

func runServe(cmd *cobra.Command, args []string) error {
	if port != "" {
		cfg.Port = port
	}
	gin.SetMode(cfg.GinMode)

	client := backend.New(cfg.BackendURL, cfg.BackendTimeout, logger)
	tmpl := contactform.DefaultTemplate()

	db, err := inits.NewDB()
	if err != nil {
		return err
	}
	sessions := operations.NewSessions(db, cfg.SessionTTL, func() *contactform.Controller {
		return contactform.NewController(tmpl, client, logger)
	}, logger)

	cleanup, err := routines.StartCleanupRoutine(sessions, cfg.CleanupSchedule, logger)
	if err != nil {
		return err
	}
	defer cleanup.Stop()

	router := handlers.NewRouter(cfg, handlers.New(cfg, tmpl, client, logger), sessions, logger)
	srv := &http.Server{
		Addr:              cfg.Addr(),
		Handler:           router,
		ReadHeaderTimeout: 10 * time.Second,
	}

	ctx, stop := signal.NotifyContext(cmd.Context(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	errCh := make(chan error, 1)
	go func() {
		logger.Info("server starting", zap.String("addr", srv.Addr), zap.String("backend", cfg.BackendURL))
		errCh <- srv.ListenAndServe()
	}()

	select {
	case err := <-errCh:
		if !errors.Is(err, http.ErrServerClosed) {
			return err
		}
		return nil
	case <-ctx.Done():
	}

	logger.Info("shutting down")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	return srv.Shutdown(shutdownCtx)
}
