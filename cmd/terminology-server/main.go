package main

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"path/filepath"
	"syscall"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/labstack/echo/v4"
	echomw "github.com/labstack/echo/v4/middleware"
	"github.com/rs/zerolog"
	"github.com/spf13/cobra"

	"github.com/ayushbridge/terminology-server/internal/config"
	"github.com/ayushbridge/terminology-server/internal/domain/abha"
	"github.com/ayushbridge/terminology-server/internal/domain/history"
	"github.com/ayushbridge/terminology-server/internal/domain/mapping"
	"github.com/ayushbridge/terminology-server/internal/domain/terminology"
	"github.com/ayushbridge/terminology-server/internal/platform/auth"
	"github.com/ayushbridge/terminology-server/internal/platform/db"
	"github.com/ayushbridge/terminology-server/internal/platform/middleware"
	"github.com/ayushbridge/terminology-server/internal/seed"
)

// historyRecorder adapts the history service to the mapping.Recorder
// interface, avoiding a direct import between the mapping and history
// packages.
type historyRecorder struct {
	svc *history.Service
}

func (r *historyRecorder) Record(ctx context.Context, abhaID string, m mapping.Mapping) error {
	_, err := r.svc.Append(ctx, abhaID, history.Entry{
		SourceSystem: string(m.SourceSystem),
		SourceCode:   m.SourceCode,
		TargetSystem: string(m.TargetSystem),
		TargetCode:   m.TargetCode,
		SnomedCTCode: m.SnomedCTCode,
		LoincCode:    m.LoincCode,
	})
	return err
}

func main() {
	rootCmd := &cobra.Command{
		Use:   "terminology-server",
		Short: "NAMASTE / ICD-11 TM2 terminology and cross-mapping server",
	}

	rootCmd.AddCommand(serveCmd())
	rootCmd.AddCommand(seedCmd())

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func serveCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "serve",
		Short: "Start the terminology API server",
		RunE: func(cmd *cobra.Command, args []string) error {
			return runServer()
		},
	}
}

func seedCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "seed",
		Short: "Create database tables and load ABHA identities from seed data",
		RunE: func(cmd *cobra.Command, args []string) error {
			return runSeed()
		},
	}
}

func runSeed() error {
	cfg, err := config.Load()
	if err != nil {
		return err
	}
	if !cfg.HasDatabase() {
		return fmt.Errorf("DATABASE_URL is required for seeding")
	}

	ctx := context.Background()
	pool, err := db.NewPool(ctx, cfg.DatabaseURL, cfg.DBMaxConns, cfg.DBMinConns)
	if err != nil {
		return err
	}
	defer pool.Close()

	if err := history.EnsureSchema(ctx, pool); err != nil {
		return fmt.Errorf("create history schema: %w", err)
	}
	if err := abha.EnsureSchema(ctx, pool); err != nil {
		return fmt.Errorf("create abha schema: %w", err)
	}

	identities, err := seed.LoadIdentities(filepath.Join(cfg.DataDir, seed.UsersFile))
	if err != nil {
		return err
	}
	if err := abha.SeedIdentities(ctx, pool, identities); err != nil {
		return fmt.Errorf("seed identities: %w", err)
	}

	fmt.Printf("Seeded %d ABHA identities.\n", len(identities))
	return nil
}

func runServer() error {
	// Logger
	logger := zerolog.New(os.Stdout).With().Timestamp().Logger()
	if os.Getenv("ENV") == "development" || os.Getenv("ENV") == "" {
		logger = zerolog.New(zerolog.ConsoleWriter{Out: os.Stdout}).With().Timestamp().Logger()
	}

	// Config
	cfg, err := config.Load()
	if err != nil {
		logger.Fatal().Err(err).Msg("failed to load config")
	}
	if err := cfg.Validate(); err != nil {
		logger.Fatal().Err(err).Msg("invalid config")
	}

	// Seed data
	bundle, err := seed.LoadDir(cfg.DataDir)
	if err != nil {
		logger.Fatal().Err(err).Str("dir", cfg.DataDir).Msg("failed to load seed data")
	}

	// Optional database
	ctx := context.Background()
	var pool *pgxpool.Pool
	var historyRepo history.Repository
	var abhaRepo abha.Repository

	if cfg.HasDatabase() {
		pool, err = db.NewPool(ctx, cfg.DatabaseURL, cfg.DBMaxConns, cfg.DBMinConns)
		if err != nil {
			logger.Fatal().Err(err).Msg("failed to connect to database")
		}
		defer pool.Close()
		historyRepo = history.NewRepoPG(pool)
		abhaRepo = abha.NewRepoPG(pool)
		logger.Info().Msg("connected to database")
	} else {
		historyRepo = history.NewRepoMem()
		abhaRepo = abha.NewRepoMem(bundle.Identities)
		logger.Warn().Msg("running without a database; history and identities are in memory")
	}

	e, err := buildServer(cfg, logger, bundle, historyRepo, abhaRepo)
	if err != nil {
		logger.Fatal().Err(err).Msg("failed to build server")
	}

	if pool != nil {
		e.GET("/health/db", db.HealthHandler(pool))
	}

	// Graceful shutdown
	go func() {
		addr := ":" + cfg.Port
		logger.Info().Str("addr", addr).Msg("starting server")
		if err := e.Start(addr); err != nil && err != http.ErrServerClosed {
			logger.Fatal().Err(err).Msg("server error")
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	logger.Info().Msg("shutting down server")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := e.Shutdown(shutdownCtx); err != nil {
		logger.Fatal().Err(err).Msg("server shutdown failed")
	}
	logger.Info().Msg("server stopped")
	return nil
}

// buildServer wires the concept store, mapping table, and domain handlers
// onto a configured echo instance. It is independent of how the history
// and identity repositories are backed.
func buildServer(cfg *config.Config, logger zerolog.Logger, bundle *seed.Bundle, historyRepo history.Repository, abhaRepo abha.Repository) (*echo.Echo, error) {
	store, err := terminology.NewStore(bundle.Concepts)
	if err != nil {
		return nil, fmt.Errorf("build concept store: %w", err)
	}
	table, err := mapping.NewTable(bundle.Mappings, store)
	if err != nil {
		return nil, fmt.Errorf("build mapping table: %w", err)
	}
	logger.Info().
		Int("namaste_concepts", store.Count(terminology.SystemNAMASTE)).
		Int("tm2_concepts", store.Count(terminology.SystemICD11TM2)).
		Int("mapping_entries", table.Len()).
		Msg("seed data loaded")

	tokens := auth.NewTokenIssuer(cfg.JWTSecret, time.Duration(cfg.TokenTTLHours)*time.Hour)

	historySvc := history.NewService(historyRepo)
	abhaSvc := abha.NewService(abhaRepo, tokens, logger)
	termSvc := terminology.NewService(store, cfg.SearchLimit)
	resolver := mapping.NewResolver(table)

	e := echo.New()
	e.HideBanner = true
	e.HidePort = true

	e.Use(middleware.Recovery(logger))
	e.Use(middleware.RequestID())
	e.Use(middleware.Logger(logger))
	e.Use(echomw.CORSWithConfig(echomw.CORSConfig{
		AllowOrigins: cfg.CORSOrigins,
		AllowMethods: []string{http.MethodGet, http.MethodPost},
		AllowHeaders: []string{"Authorization", "Content-Type", "X-Request-ID"},
	}))

	// Health check
	e.GET("/health", func(c echo.Context) error {
		return c.JSON(http.StatusOK, map[string]string{
			"status":  "ok",
			"version": "0.1.0",
		})
	})

	requireAuth := auth.Require(tokens)
	optionalAuth := auth.Optional(tokens)

	terminology.NewHandler(termSvc).RegisterRoutes(e)
	mapping.NewHandler(resolver, &historyRecorder{svc: historySvc}).RegisterRoutes(e, optionalAuth)
	history.NewHandler(historySvc).RegisterRoutes(e, requireAuth)
	abha.NewHandler(abhaSvc).RegisterRoutes(e, requireAuth)

	return e, nil
}
