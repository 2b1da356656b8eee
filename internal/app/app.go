package app

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	goredis "github.com/redis/go-redis/v9"

	"github.com/Aakash17x08/linkhive/internal/config"
	"github.com/Aakash17x08/linkhive/internal/favicon"
	"github.com/Aakash17x08/linkhive/internal/hive"
	"github.com/Aakash17x08/linkhive/internal/httpserver"
	"github.com/Aakash17x08/linkhive/internal/httpserver/deps"
	"github.com/Aakash17x08/linkhive/internal/lockout"
	"github.com/Aakash17x08/linkhive/internal/logger"
	"github.com/Aakash17x08/linkhive/internal/redis"
	"github.com/Aakash17x08/linkhive/internal/scheduler"
	redisstore "github.com/Aakash17x08/linkhive/internal/store/redis"
	"github.com/Aakash17x08/linkhive/internal/version"
)

const sweepInterval = time.Second

type App struct {
	cfg         *config.Config
	logger      logger.Logger
	server      *httpserver.Server
	redisClient *goredis.Client
	hive        *hive.Hive
	machine     *lockout.Machine
	seeder      *scheduler.Seeder
	sweeper     *scheduler.LockoutSweeper
}

func New() *App {
	cfg := config.Load()

	loggerClient := logger.New(cfg.LogLevel, cfg.PrettyLog)

	// Initialize Redis early - fail fast if unavailable
	loggerClient.Infof("Connecting to Redis at %s", cfg.RedisAddr)
	redisClient, err := redis.New(redis.ConnectOptions{
		Addr:           cfg.RedisAddr,
		User:           cfg.RedisUser,
		Password:       cfg.RedisPassword,
		RedisDB:        cfg.RedisDB,
		DialTimeout:    cfg.RedisDT,
		ReadTimeout:    cfg.RedisRT,
		WriteTimeout:   cfg.RedisWT,
		PoolSize:       cfg.RedisPoolSize,
		ConnectTimeout: cfg.RedisConnectTimeout,
		RetryInterval:  cfg.RedisRetryInterval,
		MaxWait:        cfg.RedisMaxWait,
		PingTimeout:    cfg.RedisPingTimeout,
		WarnThreshold:  cfg.RedisWarnThreshold,
	}, loggerClient)
	if err != nil {
		loggerClient.Errorf("Failed to connect to Redis: %v", err)
		os.Exit(1)
	}
	loggerClient.Info("Redis initialized successfully")

	store := redisstore.NewStore(redisClient)

	// Load the document into memory. A missing or corrupt record falls
	// back to an empty default, so boot always succeeds.
	h := hive.New(store, loggerClient)
	if err := h.Load(context.Background()); err != nil {
		loggerClient.Errorf("Failed to load document: %v", err)
		os.Exit(1)
	}
	sections, links, entries := h.Counts()
	loggerClient.Info("document loaded",
		logger.Int("sections", sections),
		logger.Int("links", links),
		logger.Int("apply_entries", entries))

	// Privacy gate, restored from persisted attempt/lockout records.
	machine := lockout.New(store, loggerClient, cfg.PrivacyPassword, cfg.MaxAttempts, cfg.LockoutDuration)
	if err := machine.Restore(context.Background()); err != nil {
		loggerClient.Warn("failed to restore privacy gate state",
			logger.Error(err))
	}

	favicons := favicon.New(h, loggerClient, cfg.FaviconTimeout)

	sweeper := scheduler.NewLockoutSweeper(machine, loggerClient, sweepInterval)

	// Seeder (if a seed file is configured)
	var seeder *scheduler.Seeder
	var seedReloadTrigger chan struct{}
	if cfg.SeedFile != "" {
		loggerClient.Info("seed file configured, initializing seeder",
			logger.String("file", cfg.SeedFile))
		seedReloadTrigger = make(chan struct{}, 1)
		seeder = scheduler.NewSeeder(
			cfg.SeedFile,
			h,
			loggerClient,
			cfg.SeedInterval,
			seedReloadTrigger,
		)
	} else {
		loggerClient.Info("seed file not configured, seeding disabled")
	}

	// Dependencies passed to routes (extend as needed).
	d := deps.Deps{
		Logger:            loggerClient,
		StartTime:         time.Now(),
		Version:           version.Version,
		Commit:            version.Commit,
		BuildDate:         version.BuildDate,
		GoVersion:         version.GoVersion,
		TimeNow:           time.Now,
		AllowedHosts:      cfg.AllowedHosts,
		AllowedCIDRS:      cfg.AllowedCIDRS,
		TrustProxy:        cfg.TrustProxy,
		RedisClient:       redisClient,
		Hive:              h,
		Lockout:           machine,
		Favicons:          favicons,
		SeedReloadTrigger: seedReloadTrigger,
		UnlockBurst:       cfg.UnlockBurst,
		UnlockRefill:      cfg.UnlockRefill,
	}

	server := httpserver.New(cfg, loggerClient, d)

	return &App{
		cfg:         cfg,
		logger:      loggerClient,
		server:      server,
		redisClient: redisClient,
		hive:        h,
		machine:     machine,
		seeder:      seeder,
		sweeper:     sweeper,
	}
}

func (a *App) Run() error {
	a.logger.Infof("🚀 Starting LinkHive v%s on %s", version.Version, a.cfg.ListenPort)
	a.logger.Infof("LinkHive %s (commit=%s, built=%s, go=%s)",
		version.Version, version.Commit, version.BuildDate, version.GoVersion)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	// Start seeder (applies the seed file to an empty document)
	if a.seeder != nil {
		if err := a.seeder.Start(ctx); err != nil {
			return fmt.Errorf("failed to start seeder: %w", err)
		}
		a.logger.Info("seeder started",
			logger.Duration("interval", a.cfg.SeedInterval))
	}

	// Start lockout sweeper
	if err := a.sweeper.Start(ctx); err != nil {
		return fmt.Errorf("failed to start lockout sweeper: %w", err)
	}
	a.logger.Info("lockout sweeper started",
		logger.Duration("interval", sweepInterval))

	errCh := make(chan error, 1)
	go func() {
		if err := a.server.Start(); err != nil {
			errCh <- fmt.Errorf("http server error: %w", err)
		}
	}()

	select {
	case <-ctx.Done():
		a.logger.Info("⏳ Shutting down gracefully...")
	case err := <-errCh:
		return err
	}

	if a.seeder != nil {
		a.seeder.Stop()
	}
	a.sweeper.Stop()

	shutdownCtx, cancel := context.WithTimeout(context.Background(), a.cfg.ShutdownTimeout)
	defer cancel()
	if err := a.server.Stop(shutdownCtx); err != nil {
		return fmt.Errorf("failed to stop server: %w", err)
	}

	if a.redisClient != nil {
		if err := a.redisClient.Close(); err != nil {
			a.logger.Warnf("failed to close redis: %v", err)
		} else {
			a.logger.Info("✅ Redis closed cleanly")
		}
	}

	a.logger.Info("✅ LinkHive stopped cleanly")
	return nil
}
