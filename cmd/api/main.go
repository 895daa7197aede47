package main

import (
	"context"
	"expvar"
	"fmt"
	"log"
	"os"
	"runtime"
	"time"

	"github.com/jackc/pgx/v5/stdlib"
	"github.com/joho/godotenv"
	"github.com/shopspring/decimal"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"storefront/internal/auth"
	"storefront/internal/db"
	"storefront/internal/domain/settings"
	"storefront/internal/domain/storage"
	"storefront/internal/images"
	"storefront/internal/mailer"
	"storefront/internal/ordering"
	"storefront/internal/ratelimiter"
)

// NewLogger creates a new zap logger with color.
func NewLogger() (*zap.SugaredLogger, error) {
	encoderCfg := zap.NewProductionEncoderConfig()
	encoderCfg.EncodeTime = zapcore.ISO8601TimeEncoder
	encoderCfg.EncodeLevel = zapcore.CapitalColorLevelEncoder

	consoleEncoder := zapcore.NewConsoleEncoder(encoderCfg)
	core := zapcore.NewCore(consoleEncoder, zapcore.AddSync(os.Stdout), zapcore.InfoLevel)

	return zap.New(core).Sugar(), nil
}

var version = "1.0.0"

//	@title			Storefront API
//	@description	Catalog, ordering and back-office API for the storefront.

//	@contact.name	API Support
//	@contact.email	support@swagger.io

//	@BasePath					/api
//	@securityDefinitions.apikey	ApiKeyAuth
//	@in							header
//	@name						Authorization
//	@description				Bearer token from /auth/login

func main() {
	if err := godotenv.Load(); err != nil && !os.IsNotExist(err) {
		log.Fatalf("Error loading .env file: %v", err)
	}

	cfg := loadConfig()

	// prices travel as JSON numbers
	decimal.MarshalJSONWithoutQuotes = true

	logger, err := NewLogger()
	if err != nil {
		fmt.Println("Error creating logger:", err)
		return
	}
	defer logger.Sync()

	m := newMetrics()
	logger = logger.Desugar().WithOptions(zap.Hooks(m.logHook)).Sugar()

	// Database
	pool, err := db.New(db.Config{
		Addr:        cfg.db.addr,
		MaxConns:    int32(cfg.db.maxConns),
		MaxIdleTime: cfg.db.maxIdleTime,
	})
	if err != nil {
		logger.Fatal(err)
	}
	defer pool.Close()
	logger.Info("database connection pool established")

	if cfg.db.autoMigrate {
		ctx, cancel := context.WithTimeout(context.Background(), time.Minute)
		applied, err := db.Migrate(ctx, stdlib.OpenDBFromPool(pool))
		cancel()
		if err != nil {
			logger.Fatalw("migrations failed", "error", err)
		}
		logger.Infow("migrations applied", "versions", applied)
	}

	store := storage.NewContainer(pool)

	seedCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	n := store.Settings.SeedDefaults(seedCtx, settings.Defaults, func(key string, err error) {
		logger.Warnw("failed to seed setting", "key", key, "error", err)
	})
	cancel()
	logger.Infow("default settings seeded", "inserted", n)

	// Images
	imgStore, local, err := newImageStore(cfg.images)
	if err != nil {
		logger.Fatal(err)
	}
	logger.Infow("image backend ready", "backend", cfg.images.backend)

	// Mail
	var mail mailer.Client = mailer.NewLogMailer(logger)
	if cfg.mail.enabled {
		smtp, err := mailer.NewSMTPMailer(cfg.mail.smtp)
		if err != nil {
			logger.Fatal(err)
		}
		mail = smtp
	}

	// Authenticator
	jwtAuthenticator, err := auth.NewJWTAuthenticator(
		cfg.auth.token.secret,
		cfg.auth.token.iss,
		cfg.auth.token.iss,
		cfg.auth.token.exp,
	)
	if err != nil {
		logger.Fatal(err)
	}

	admin, err := auth.NewAdmin(cfg.auth.admin.username, cfg.auth.admin.passwordHash, cfg.auth.admin.password)
	if err != nil {
		logger.Fatal(err)
	}

	// Rate limiter
	rateLimiter := ratelimiter.NewFixedWindowLimiter(
		cfg.rateLimiter.RequestsPerTimeFrame,
		cfg.rateLimiter.TimeFrame,
	)

	linker, err := ordering.NewLinker(cfg.orderSalt)
	if err != nil {
		logger.Fatal(err)
	}

	app := &application{
		config:        cfg,
		logger:        logger,
		store:         store,
		images:        images.NewManager(imgStore, logger),
		localImages:   local,
		mailer:        mail,
		authenticator: jwtAuthenticator,
		admin:         admin,
		rateLimiter:   rateLimiter,
		orders:        linker,
		metrics:       m,
	}

	//Metrics collected http://localhost:8080/api/debug/vars
	expvar.NewString("version").Set(version)
	expvar.Publish("database", expvar.Func(func() any {
		s := pool.Stat()
		return map[string]any{
			"total_conns":    s.TotalConns(),
			"idle_conns":     s.IdleConns(),
			"acquired_conns": s.AcquiredConns(),
			"max_conns":      s.MaxConns(),
		}
	}))
	expvar.Publish("goroutines", expvar.Func(func() any {
		return runtime.NumGoroutine()
	}))

	mux := app.mount()

	if err := app.run(mux); err != nil {
		logger.Fatal(err)
	}
}

// newImageStore picks the backend. The local store is also returned so the
// router can serve its directory.
func newImageStore(cfg imagesConfig) (images.Store, *images.LocalStore, error) {
	switch cfg.backend {
	case "", "local":
		s, err := images.NewLocalStore(cfg.uploadDir, images.DefaultPublicPath)
		if err != nil {
			return nil, nil, err
		}
		return s, s, nil
	case "cloudinary":
		s, err := images.NewCloudinaryStore(cfg.cloudinaryURL, cfg.cloudinaryFolder)
		return s, nil, err
	case "s3":
		ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		s, err := images.NewS3Store(ctx, cfg.s3)
		return s, nil, err
	default:
		return nil, nil, fmt.Errorf("unknown IMAGE_BACKEND %q", cfg.backend)
	}
}
