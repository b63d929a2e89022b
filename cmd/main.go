package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"cloud.google.com/go/storage"
	"github.com/go-chi/chi/v5"
	chimiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/jmoiron/sqlx"
	"github.com/redis/go-redis/v9"
	"github.com/segmentio/kafka-go"
	"golang.org/x/sync/errgroup"

	_ "github.com/sbilibin2017/prompt-gallery/docs"
	"github.com/sbilibin2017/prompt-gallery/internal/config"
	"github.com/sbilibin2017/prompt-gallery/internal/facades"
	"github.com/sbilibin2017/prompt-gallery/internal/handlers"
	"github.com/sbilibin2017/prompt-gallery/internal/jobs"
	"github.com/sbilibin2017/prompt-gallery/internal/jwt"
	"github.com/sbilibin2017/prompt-gallery/internal/logger"
	"github.com/sbilibin2017/prompt-gallery/internal/middlewares"
	"github.com/sbilibin2017/prompt-gallery/internal/models"
	"github.com/sbilibin2017/prompt-gallery/internal/repositories"
	"github.com/sbilibin2017/prompt-gallery/internal/services"
	"github.com/sbilibin2017/prompt-gallery/internal/store"

	_ "github.com/jackc/pgx/v5/stdlib"
	httpSwagger "github.com/swaggo/http-swagger"
)

// Build info variables, set via ldflags at build time.
var (
	buildVersion = "N/A" // Version of the service
	buildDate    = "N/A" // Build date
	buildCommit  = "N/A" // Git commit hash
)

const fallbackWarning = "Missing keys. Please set Postgres AND media host config. Showing sample artworks."

// @title prompt-gallery API
// @version 1.0.0
// @description AI art gallery with prompt sharing, moderation and an email gate on prompt copying
// @host localhost:8080
// @BasePath /api/v1
// @schemes http
// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
func main() {
	printBuildInfo()
	configPath := parseFlags()

	cfg, err := config.Load(configPath)
	if err != nil {
		log.Fatalf("failed to parse config: %v", err)
	}

	if err := run(context.Background(), cfg); err != nil {
		log.Fatalf("application stopped with error: %v", err)
	}
}

// printBuildInfo prints the build version, commit hash, and build date.
func printBuildInfo() {
	fmt.Printf("Starting service version %s, commit %s, build %s\n", buildVersion, buildCommit, buildDate)
}

// parseFlags parses command-line flags and returns the config file path.
func parseFlags() string {
	c := flag.String("c", "config.env", "Path to configuration file")
	flag.Parse()
	return *c
}

// afterCommitRefresher defers store reloads until the request transaction commits.
type afterCommitRefresher struct {
	store *store.Store
}

func (r afterCommitRefresher) Refresh(ctx context.Context) error {
	middlewares.AfterCommit(ctx, func(ctx context.Context) {
		r.store.Refresh(ctx)
	})
	return nil
}

// afterCommitPublisher defers change events until the request transaction commits.
type afterCommitPublisher struct {
	publisher *facades.ArtworkEventsPublisher
}

func (p afterCommitPublisher) Publish(ctx context.Context, artworkID, eventType string) {
	middlewares.AfterCommit(ctx, func(ctx context.Context) {
		p.publisher.Publish(ctx, artworkID, eventType)
	})
}

// newUploader builds the media backend selected by MEDIA_BACKEND.
func newUploader(ctx context.Context, cfg *config.Config) (services.MediaUploader, func() error, error) {
	if cfg.MediaBackend == config.MediaGCS {
		client, err := storage.NewClient(ctx)
		if err != nil {
			return nil, nil, fmt.Errorf("failed to create GCS client: %w", err)
		}
		return facades.NewGCSUploader(client, cfg.GCSBucket), client.Close, nil
	}
	u, err := facades.NewCloudinaryUploader(cfg.CloudinaryCloudName, cfg.CloudinaryUploadPreset)
	if err != nil {
		return nil, nil, err
	}
	return u, func() error { return nil }, nil
}

// run initializes the logger, database, Redis, Kafka and HTTP server.
// It sets up routes, applies middleware, and handles graceful shutdown.
func run(ctx context.Context, cfg *config.Config) error {
	// Initialize logger
	if err := logger.Initialize(cfg.LogLevel); err != nil {
		fmt.Println("failed to initialize logger:", err)
		return err
	}
	log := logger.Log
	defer log.Sync()
	log.Infof("Logger initialized with level %s", cfg.LogLevel)

	ctx, stop := signal.NotifyContext(ctx, os.Interrupt, syscall.SIGTERM, syscall.SIGQUIT)
	defer stop()

	// Connect to Redis
	rdb := redis.NewClient(&redis.Options{
		Addr:         cfg.RedisAddr(),
		Password:     cfg.RedisPassword,
		DB:           cfg.RedisDB,
		PoolSize:     cfg.RedisPoolSize,
		MinIdleConns: cfg.RedisMinIdleConns,
	})
	if err := rdb.Ping(ctx).Err(); err != nil {
		return fmt.Errorf("redis connection error: %w", err)
	}
	defer rdb.Close()

	// Connect to Kafka
	var (
		kafkaWriter facades.KafkaWriter
		listener    *facades.ArtworkEventsListener
	)
	if cfg.KafkaEnabled() {
		w := &kafka.Writer{
			Addr:                   kafka.TCP(cfg.KafkaBrokers...),
			Topic:                  cfg.KafkaTopic,
			Balancer:               &kafka.Hash{},
			AllowAutoTopicCreation: true,
		}
		defer w.Close()
		kafkaWriter = w

		reader := kafka.NewReader(kafka.ReaderConfig{
			Brokers: cfg.KafkaBrokers,
			Topic:   cfg.KafkaTopic,
			GroupID: cfg.KafkaGroupID,
		})
		if cfg.KafkaGroupID == "" {
			if err := reader.SetOffset(kafka.LastOffset); err != nil {
				reader.Close()
				return fmt.Errorf("kafka reader offset: %w", err)
			}
		}
		listener = facades.NewArtworkEventsListener(reader)
		defer listener.Close()
		log.Infof("Kafka enabled, topic %s", cfg.KafkaTopic)
	}
	publisher := facades.NewArtworkEventsPublisher(kafkaWriter)

	jwtService := jwt.New(jwt.WithSecretKey(cfg.JWTSecretKey), jwt.WithExpiration(cfg.JWTExp))
	sessionRepo := repositories.NewSessionCacheRepository(rdb, cfg.SessionTTL)

	// Storage. Interface-typed so that an unconfigured service sees nil.
	var (
		db            *sqlx.DB
		artworks      *store.Store
		warning       string
		dbReader      services.ArtworkReader
		artworkWriter services.ArtworkWriter
		statusWriter  services.ArtworkStatusWriter
		uploader      services.MediaUploader
		emailWriter   services.EmailWriter
		emailLister   services.EmailLister
		emailCounter  services.EmailCounter
		adminReader   services.AdminReader
		adminWriter   services.AdminWriter
	)

	if cfg.Configured() {
		log.Infof("Connecting to PostgreSQL at %s:%d/%s", cfg.PostgresHost, cfg.PostgresPort, cfg.PostgresDB)

		var err error
		db, err = sqlx.ConnectContext(ctx, "pgx", cfg.PostgresDSN())
		if err != nil {
			return fmt.Errorf("postgreSQL connection error: %w", err)
		}
		defer db.Close()
		db.SetMaxOpenConns(cfg.PostgresMaxOpenConns)
		db.SetMaxIdleConns(cfg.PostgresMaxIdleConns)

		if err := repositories.Migrate(ctx, db); err != nil {
			return fmt.Errorf("schema migration failed: %w", err)
		}

		readRepo := repositories.NewArtworkReadRepository(db)
		writeRepo := repositories.NewArtworkWriteRepository(db, middlewares.GetTxFromContext)
		emailRepo := repositories.NewEmailRepository(db)

		dbReader = readRepo
		artworkWriter = writeRepo
		statusWriter = writeRepo
		emailWriter = emailRepo
		emailLister = emailRepo
		emailCounter = emailRepo
		adminReader = repositories.NewAdminReadRepository(db)
		adminWriter = repositories.NewAdminWriteRepository(db)

		artworks = store.New(readRepo)
		if err := artworks.Refresh(ctx); err != nil {
			return fmt.Errorf("initial artwork load failed: %w", err)
		}

		var closeUploader func() error
		uploader, closeUploader, err = newUploader(ctx, cfg)
		if err != nil {
			return err
		}
		defer closeUploader()
	} else {
		log.Warnw("storage not configured, serving sample artworks read-only")
		artworks = store.NewStatic(store.DemoArtworks())
		dbReader = artworks
		warning = fallbackWarning
	}

	refresher := afterCommitRefresher{store: artworks}
	events := afterCommitPublisher{publisher: publisher}

	// Initialize services
	artworkService := services.NewArtworkService(artworks, refresher, artworks, artworkWriter, uploader, events, cfg.PublicBaseURL)
	moderationService := services.NewModerationService(dbReader, statusWriter, refresher, events)
	gateService := services.NewGateService(artworks, sessionRepo, emailWriter)
	authService := services.NewAuthService(adminReader, adminWriter, sessionRepo, jwtService)
	exportService := services.NewExportService(emailLister)
	statsService := services.NewStatsService(artworks, emailCounter)

	if err := authService.EnsureAdmin(ctx, cfg.AdminEmail, cfg.AdminPassword); err != nil {
		return fmt.Errorf("admin bootstrap failed: %w", err)
	}

	// Setup router
	maxUpload := int64(cfg.MaxUploadMB) << 20
	authMiddleware := middlewares.AuthMiddleware(jwtService, authService)
	withTx := func(next http.Handler) http.Handler { return next }
	if db != nil {
		withTx = middlewares.TxMiddleware(db)
	}

	r := chi.NewRouter()
	r.Use(chimiddleware.Recoverer)
	r.Use(middlewares.LoggingMiddleware(log))

	r.Get("/healthz", handlers.NewHealthHandler())

	r.Route("/api/v1", func(r chi.Router) {
		// Public routes
		r.Get("/artworks", handlers.NewListArtworksHandler(artworkService, warning))
		r.Get("/artworks/models", handlers.NewListModelsHandler(artworkService))
		r.Get("/artworks/live", handlers.NewLiveArtworksHandler(artworks))
		r.Get("/artworks/{id}", handlers.NewGetArtworkHandler(artworkService))
		r.Get("/artworks/{id}/share", handlers.NewShareArtworkHandler(artworkService))
		r.Post("/auth/anonymous", handlers.NewAnonymousHandler(authService))
		r.Post("/auth/login", handlers.NewLoginHandler(authService))

		// Any session
		r.Group(func(r chi.Router) {
			r.Use(authMiddleware)
			r.With(withTx).Post("/artworks", handlers.NewUploadArtworkHandler(artworkService, maxUpload, false))
			r.Post("/artworks/{id}/copy", handlers.NewCopyPromptHandler(gateService))
			r.Post("/prompt-access", handlers.NewSubmitEmailHandler(gateService))
			r.Post("/auth/logout", handlers.NewLogoutHandler(gateService, authService))
			r.Get("/auth/me", handlers.NewMeHandler())
		})

		// Administrators
		r.Route("/admin", func(r chi.Router) {
			r.Use(authMiddleware)
			r.Use(middlewares.AdminOnly(authService))

			r.Get("/artworks", handlers.NewAdminListArtworksHandler(artworkService))
			r.Get("/stats", handlers.NewStatsHandler(statsService))
			r.Get("/emails", handlers.NewListEmailsHandler(exportService))
			r.Get("/emails/export", handlers.NewExportEmailsHandler(exportService))

			r.Group(func(r chi.Router) {
				r.Use(withTx)
				r.Post("/artworks", handlers.NewUploadArtworkHandler(artworkService, maxUpload, true))
				r.Post("/artworks/{id}/approve", handlers.NewApproveArtworkHandler(moderationService))
				r.Post("/artworks/{id}/reject", handlers.NewRejectArtworkHandler(moderationService))
				r.Delete("/artworks/{id}", handlers.NewDeleteArtworkHandler(moderationService))
			})
		})
	})

	r.Get("/swagger/*", httpSwagger.Handler(
		httpSwagger.URL(fmt.Sprintf("http://%s/swagger/doc.json", cfg.Addr())),
	))

	srv := &http.Server{
		Addr:    cfg.Addr(),
		Handler: r,
	}

	g, gctx := errgroup.WithContext(ctx)

	if db != nil {
		if _, err := jobs.ScheduleResync(gctx, cfg.ResyncSchedule, artworks); err != nil {
			return fmt.Errorf("invalid RESYNC_SCHEDULE: %w", err)
		}
	}

	g.Go(func() error {
		log.Infof("HTTP server listening on %s", cfg.Addr())
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			return fmt.Errorf("HTTP server failed: %w", err)
		}
		return nil
	})

	if listener != nil && db != nil {
		g.Go(func() error {
			return listener.Listen(gctx, func(models.ArtworkEvent) {
				artworks.Refresh(gctx)
			})
		})
	}

	// Graceful shutdown
	g.Go(func() error {
		<-gctx.Done()
		log.Info("Shutdown signal received, stopping HTTP server...")

		shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		if err := srv.Shutdown(shutdownCtx); err != nil {
			log.Errorw("HTTP server shutdown error", "error", err)
		}
		return nil
	})

	if err := g.Wait(); err != nil {
		return err
	}

	log.Info("HTTP server stopped gracefully")
	return nil
}
