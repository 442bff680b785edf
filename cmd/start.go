package cmd

import (
	"context"
	"fmt"
	"log"
	"os"
	"os/signal"
	"syscall"

	"pantry-pal/core/config"
	"pantry-pal/core/database"
	"pantry-pal/core/loader"
	"pantry-pal/core/logger"
	"pantry-pal/core/middleware/auth"
	"pantry-pal/core/middleware/rayid"
	"pantry-pal/core/storage"

	"pantry-pal/feature/pantry"
	"pantry-pal/feature/pantry/lookup"
	"pantry-pal/feature/recipes"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/swagger"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"gorm.io/gorm"

	_ "pantry-pal/docs/swagger"
)

// @title Pantry Pal API
// @version 1.0
// @description API for pantry inventory reconciliation and recipe generation.
// @host localhost:8080
// @BasePath /

// startCmd represents the start command
var startCmd = &cobra.Command{
	Use:   "start",
	Short: "Start the pantry server",
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

		// 3. Connect to History Database (Optional)
		// Without it the pantry still works; only recipe history is disabled.
		var db *gorm.DB
		if conn, err := database.Connect(cfg.Database); err != nil {
			logg.Warn("Optional history database connection failed", zap.Error(err))
		} else {
			db = conn
			logg.Info("Connected to recipe history database")
		}

		// 4. Initialize Fiber App
		app := fiber.New(fiber.Config{
			DisableStartupMessage: true, // We will log our own startup message
		})

		// 5. Initialize Pantry Store (file or object backend)
		store, err := newPantryStore(cmd.Context(), cfg, logg)
		if err != nil {
			logg.Fatal("Failed to create pantry store", zap.Error(err))
		}

		// 6. Initialize Feature Loader
		mgr := loader.NewManager(logg)

		// Register Features
		pantryFeature := pantry.NewFeature(store, lookup.NewClient(cfg.Lookup, logg), logg)
		mgr.Register(pantryFeature)

		history, err := recipes.NewHistory(db)
		if err != nil {
			logg.Fatal("Failed to initialize recipe history", zap.Error(err))
		}
		mgr.Register(recipes.NewFeature(
			pantryFeature.Service(),
			recipes.NewGenerator(cfg.Recipes, logg),
			history,
			logg,
		))

		// Middleware Registration
		// 1. RayID (Must be first to trace everything)
		app.Use(rayid.New())

		// 2. Logging Middleware (Custom to use Zap + RayID)
		app.Use(func(c *fiber.Ctx) error {
			l := logger.WithRayID(logg, c)
			l.Info("Request started",
				zap.String("method", c.Method()),
				zap.String("path", c.Path()),
				zap.String("ip", c.IP()),
			)
			err := c.Next()
			// Log error if happened
			if err != nil {
				l.Error("Request error", zap.Error(err))
			}
			return err
		})

		// 2.5 Swagger Documentation (Public)
		app.Get("/swagger/*", swagger.HandlerDefault)

		// 3. Auth (Protect API)
		app.Use(auth.New(auth.Config{ApiKey: cfg.Server.ApiKey}))

		// 4. Load Features
		if err := mgr.LoadAll(app); err != nil {
			logg.Fatal("Failed to load features", zap.Error(err))
		}

		// 5. Start Server
		go func() {
			logg.Info("Starting server", zap.String("port", cfg.Server.Port))
			if err := app.Listen(cfg.Server.Addr()); err != nil {
				logg.Fatal("Server failed to start", zap.Error(err))
			}
		}()

		// 6. Graceful Shutdown
		c := make(chan os.Signal, 1)
		signal.Notify(c, os.Interrupt, syscall.SIGTERM)
		<-c
		logg.Info("Shutting down server...")
		_ = app.Shutdown()
	},
}

// newPantryStore builds the inventory store selected by the pantry backend
// setting: a local JSON file or a blob in object storage.
func newPantryStore(ctx context.Context, cfg *config.Config, l *zap.Logger) (pantry.Store, error) {
	switch cfg.Pantry.Backend {
	case pantry.BackendFile:
		return pantry.NewFileStore(cfg.Pantry.File, l), nil
	case pantry.BackendObject:
		client, err := storage.NewClient(cfg.Storage)
		if err != nil {
			return nil, fmt.Errorf("failed to create storage client: %w", err)
		}
		return pantry.NewObjectStore(ctx, client, cfg.Storage.Bucket, cfg.Pantry.Object, l)
	default:
		return nil, fmt.Errorf("unknown pantry backend %q", cfg.Pantry.Backend)
	}
}

func init() {
	RootCmd.AddCommand(startCmd)
}
