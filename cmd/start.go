package cmd

import (
	"context"
	"log"
	"os"
	"os/signal"
	"syscall"
	"time"

	"catalog-manager/core/config"
	"catalog-manager/core/database"
	"catalog-manager/core/loader"
	"catalog-manager/core/logger"
	"catalog-manager/core/middleware/auth"
	"catalog-manager/core/middleware/rayid"
	"catalog-manager/core/storage"

	"catalog-manager/feature/catalog"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/swagger"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	_ "catalog-manager/docs/swagger"
)

// @title Catalog Manager API
// @version 1.0
// @description API for reconciling the product catalog with the backend feed.
// @host localhost:8080
// @BasePath /

// startCmd represents the start command
var startCmd = &cobra.Command{
	Use:   "start",
	Short: "Start the catalog manager server",
	Long:  `Starts the HTTP server and initializes all enabled features.`,
	Run: func(cmd *cobra.Command, args []string) {
		// 1. Load Configuration
		cfg, err := config.LoadConfig(".")
		if err != nil {
			log.Fatalf("Failed to load configuration: %v", err)
		}

		// 2. Initialize Logger
		logg, err := logger.New(&cfg.Log)
		if err != nil {
			log.Fatalf("Failed to initialize logger: %v", err)
		}
		defer logg.Sync()
		zap.ReplaceGlobals(logg)

		// 3. Connect to Database (holds the catalog snapshot)
		db, err := database.Connect(cfg.Database)
		if err != nil {
			logg.Fatal("Failed to connect to catalog database", zap.Error(err))
		}
		logg.Info("Connected to catalog database", zap.String("driver", cfg.Database.Driver))

		// 4. Initialize Storage
		store, err := storage.NewClient(cfg.Storage)
		if err != nil {
			logg.Fatal("Failed to create storage client", zap.Error(err))
		}
		ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		if err := storage.EnsureBucket(ctx, store, cfg.Storage.Bucket, cfg.Storage.Region); err != nil {
			// Campaign sheets are read per sync, so a missing bucket only fails those syncs.
			logg.Warn("Storage bucket unavailable", zap.Error(err))
		}
		cancel()

		if len(cfg.Feed.CategoryList()) == 0 {
			logg.Warn("No feed categories configured; every linked item will be archived on sync")
		}

		// 5. Initialize Fiber App and Feature Loader
		app := fiber.New(fiber.Config{
			DisableStartupMessage: true,
		})

		mgr := loader.NewManager()
		mgr.Register(catalog.NewFeature(cfg, db, store, logg))

		// Middleware Registration
		// RayID must be first to trace everything
		app.Use(rayid.New())

		app.Use(func(c *fiber.Ctx) error {
			l := logger.WithRayID(logg, c)
			l.Info("Request started",
				zap.String("method", c.Method()),
				zap.String("path", c.Path()),
				zap.String("ip", c.IP()),
			)
			err := c.Next()
			if err != nil {
				l.Error("Request error", zap.Error(err))
			}
			return err
		})

		// Swagger Documentation (Public)
		app.Get("/swagger/*", swagger.HandlerDefault)

		app.Use(auth.New(auth.Config{ApiKey: cfg.Server.ApiKey, Skip: []string{"/swagger"}}))
		if !cfg.Server.AuthEnabled() {
			logg.Warn("SERVER_API_KEY is empty; API is unprotected")
		}

		// 6. Load Features
		if err := mgr.LoadAll(app); err != nil {
			logg.Fatal("Failed to load features", zap.Error(err))
		}

		// 7. Start Server
		go func() {
			logg.Info("Starting server", zap.String("port", cfg.Server.Port))
			if err := app.Listen(cfg.Server.Address()); err != nil {
				logg.Fatal("Server failed to start", zap.Error(err))
			}
		}()

		// 8. Graceful Shutdown
		c := make(chan os.Signal, 1)
		signal.Notify(c, os.Interrupt, syscall.SIGTERM)
		<-c
		logg.Info("Shutting down server...")
		_ = app.Shutdown()
	},
}

func init() {
	RootCmd.AddCommand(startCmd)
}
