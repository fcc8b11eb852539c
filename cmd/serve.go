package cmd

import (
	"context"
	"errors"
	"fmt"
	"log"
	"net"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/spf13/cobra"

	"github.com/YahyaAf/portfolio/internal/analytics"
	"github.com/YahyaAf/portfolio/internal/config"
	"github.com/YahyaAf/portfolio/internal/content"
	"github.com/YahyaAf/portfolio/internal/server"
)

const (
	cleanupInterval = 24 * time.Hour
	shutdownTimeout = 5 * time.Second
)

var servePort int

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the portfolio web server",
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := loadConfig()
		if err != nil {
			return err
		}
		if cmd.Flags().Changed("port") {
			cfg.Server.Port = servePort
		}
		gin.SetMode(cfg.Server.Mode)

		ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
		defer stop()

		opts, closeAnalytics, err := setupAnalytics(ctx, cfg)
		if err != nil {
			return err
		}
		defer closeAnalytics()

		srv, err := server.New(content.Default(), opts)
		if err != nil {
			return err
		}

		httpServer := &http.Server{
			Handler:           srv.Router(),
			ReadHeaderTimeout: 10 * time.Second,
		}
		ln, err := net.Listen("tcp", cfg.Addr())
		if err != nil {
			return fmt.Errorf("listening on %s: %w", cfg.Addr(), err)
		}

		log.Printf("Portfolio listening on %s", ln.Addr())
		return serveHTTP(ctx, httpServer, ln)
	},
}

// serveHTTP serves on ln until ctx is cancelled, then shuts the server
// down gracefully. It returns only after in-flight requests have drained,
// so deferred cleanup never races a handler still writing.
func serveHTTP(ctx context.Context, httpServer *http.Server, ln net.Listener) error {
	drained := make(chan struct{})
	go func() {
		defer close(drained)
		<-ctx.Done()
		log.Println("Shutting down server...")
		shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
		defer cancel()
		if err := httpServer.Shutdown(shutdownCtx); err != nil {
			log.Printf("Error shutting down server: %v", err)
		}
	}()

	if err := httpServer.Serve(ln); err != nil && !errors.Is(err, http.ErrServerClosed) {
		return fmt.Errorf("serving: %w", err)
	}
	<-drained
	return nil
}

// setupAnalytics opens the visit database and builds the tracker and
// admin pages when analytics is enabled. The returned func flushes
// pending writes and closes the database.
func setupAnalytics(ctx context.Context, cfg *config.Config) (server.Options, func(), error) {
	opts := server.Options{ImagesDir: cfg.Site.ImagesDir}
	if !cfg.Analytics.Enabled {
		log.Println("Analytics disabled")
		return opts, func() {}, nil
	}

	store, err := analytics.Open(cfg.Database.Path)
	if err != nil {
		return opts, nil, err
	}
	hasher, err := analytics.NewHasher()
	if err != nil {
		store.Close()
		return opts, nil, err
	}

	tracker := analytics.NewTracker(store, hasher)
	opts.Tracker = tracker
	opts.TrackLinks = cfg.Analytics.TrackLinks
	go tracker.RunCleanup(ctx, cfg.Analytics.RetentionMonths, cleanupInterval)
	log.Println("Privacy: visitor tracking enabled with hashed IP addresses")

	admin, err := analytics.NewAdmin(store, hasher, cfg.Admin.Username, cfg.Admin.Password, cfg.Analytics.RetentionMonths)
	if err != nil {
		log.Printf("Admin pages disabled: %v", err)
	} else {
		opts.Admin = admin
		log.Printf("Admin access available at: /admin/login")
	}

	return opts, func() {
		tracker.Wait()
		store.Close()
	}, nil
}

func init() {
	serveCmd.Flags().IntVarP(&servePort, "port", "p", 8080, "port to listen on")
	rootCmd.AddCommand(serveCmd)
}
