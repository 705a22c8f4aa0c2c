package main

import (
	"context"
	"errors"
	"net/http"
	"time"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"github.com/georgemunganga/storeadmin/internal/dashboard"
	"github.com/georgemunganga/storeadmin/internal/db"
	"github.com/georgemunganga/storeadmin/internal/modules/upload"
	"github.com/georgemunganga/storeadmin/internal/server"
	"github.com/georgemunganga/storeadmin/internal/web"
)

const shutdownTimeout = 10 * time.Second

var skipMigrations bool

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Run the API and dashboard server",
	RunE: func(cmd *cobra.Command, args []string) error {
		if err := cfg.Validate(); err != nil {
			return err
		}
		d, err := openDB()
		if err != nil {
			return err
		}
		defer d.Close()
		logger.Info("connected to database", zap.String("dialect", string(d.Dialect)))

		if !skipMigrations {
			if err := db.Migrate(d); err != nil {
				return err
			}
		}

		uploader, err := upload.NewCloudinary(cfg.CloudinaryURL, "storeadmin")
		if err != nil {
			return err
		}
		if cfg.CloudinaryURL == "" {
			logger.Warn("CLOUDINARY_URL not set, image uploads are disabled")
		}

		svc := server.NewServices(d, cfg, uploader)
		pages := web.New(svc, dashboard.NewClient(cfg.APIBaseURL, nil), cfg.PublicOrigin, logger)
		srv := &http.Server{
			Addr:              cfg.Addr(),
			Handler:           server.NewRouter(svc, logger, pages),
			ReadHeaderTimeout: 10 * time.Second,
		}

		g, ctx := errgroup.WithContext(cmd.Context())
		g.Go(func() error {
			logger.Info("server listening", zap.String("addr", srv.Addr))
			if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
				return err
			}
			return nil
		})
		g.Go(func() error {
			<-ctx.Done()
			logger.Info("shutting down")
			shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
			defer cancel()
			return srv.Shutdown(shutdownCtx)
		})
		return g.Wait()
	},
}

func init() {
	serveCmd.Flags().BoolVar(&skipMigrations, "skip-migrations", false, "do not apply pending migrations on start")
}
