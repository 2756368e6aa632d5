package cmd

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/BerylCAtieno/network-navigator/internal/api"
	"github.com/gin-gonic/gin"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

var (
	serveHost   string
	servePort   int
	serveStatic string
	serveSeed   bool
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Run the web UI and JSON API",
	Long: `Serve the static web UI and the JSON API on a local address. Gemini is used
for messages when GEMINI_API_KEY is set and the "gemini" model is selected in
settings; otherwise messages come from the template engine.`,
	RunE: runServe,
}

func init() {
	rootCmd.AddCommand(serveCmd)

	serveCmd.Flags().StringVar(&serveHost, "host", "", "Address to bind (default from config)")
	serveCmd.Flags().IntVarP(&servePort, "port", "p", 0, "Port to listen on (default from config)")
	serveCmd.Flags().StringVar(&serveStatic, "static", "", "Directory with the web UI (default from config)")
	serveCmd.Flags().BoolVar(&serveSeed, "seed", false, "Add sample contacts when the book is empty")
}

func runServe(cmd *cobra.Command, args []string) error {
	a, err := loadApp()
	if err != nil {
		return err
	}
	defer a.Close()

	if serveHost != "" {
		a.cfg.Server.Host = serveHost
	}
	if servePort != 0 {
		a.cfg.Server.Port = servePort
	}
	if serveStatic != "" {
		a.cfg.Server.StaticDir = serveStatic
	}

	if serveSeed {
		added, err := a.store.SeedSamples()
		if err != nil {
			return fmt.Errorf("failed to seed sample contacts: %w", err)
		}
		if added {
			a.logger.Info("sample contacts added")
		}
	}

	ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	composer, err := a.composer(ctx)
	if err != nil {
		return err
	}
	timeout, err := a.cfg.Generator.TimeoutDuration()
	if err != nil {
		return err
	}

	if !a.cfg.Logging.Development {
		gin.SetMode(gin.ReleaseMode)
	}

	handler := api.NewHandler(api.HandlerConfig{
		Composer: composer,
		Store:    a.store,
		Logger:   a.logger.Named("api"),
		Timeout:  timeout,
	})

	srv := &http.Server{
		Addr:              a.cfg.Addr(),
		Handler:           api.NewRouter(handler, a.cfg.Server.StaticDir),
		ReadHeaderTimeout: 10 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		errCh <- srv.ListenAndServe()
	}()

	a.logger.Info("Network Navigator starting",
		zap.String("url", "http://"+a.cfg.Addr()),
		zap.String("store", a.store.Path()),
		zap.Bool("gemini", composer.WriterConfigured()))

	select {
	case err := <-errCh:
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return fmt.Errorf("server failed: %w", err)
	case <-ctx.Done():
	}

	a.logger.Info("shutting down")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("failed to shut down server: %w", err)
	}
	return nil
}
