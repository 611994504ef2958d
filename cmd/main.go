package main

import (
	"context"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"strconv"
	"syscall"
	"time"

	"github.com/go-chi/chi/v5"
	chimiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/jmoiron/sqlx"
	"github.com/redis/go-redis/v9"
	"github.com/segmentio/kafka-go"
	"github.com/spf13/cobra"
	httpSwagger "github.com/swaggo/http-swagger"

	_ "github.com/sbilibin2017/gw-book-rental/docs"
	"github.com/sbilibin2017/gw-book-rental/internal/config"
	"github.com/sbilibin2017/gw-book-rental/internal/db"
	"github.com/sbilibin2017/gw-book-rental/internal/handlers"
	"github.com/sbilibin2017/gw-book-rental/internal/logger"
	"github.com/sbilibin2017/gw-book-rental/internal/middlewares"
	"github.com/sbilibin2017/gw-book-rental/internal/repositories"
	"github.com/sbilibin2017/gw-book-rental/internal/services"
)

// Build info variables, set via ldflags at build time.
var (
	buildVersion = "N/A" // Version of the service
	buildDate    = "N/A" // Build date
	buildCommit  = "N/A" // Git commit hash
)

const (
	kafkaBatchTimeout = 10 * time.Millisecond
	kafkaMaxAttempts  = 3
)

// @title gw-book-rental API
// @version 1.0.0
// @description Microservice for renting library books and reporting on rentals
// @host localhost:8080
// @BasePath /api/v1
// @schemes http
func main() {
	if err := newRootCmd().Execute(); err != nil {
		log.Fatalf("application stopped with error: %v", err)
	}
}

// printBuildInfo prints the build version, commit hash, and build date.
func printBuildInfo() {
	fmt.Printf("Starting service version %s, commit %s, build %s\n", buildVersion, buildCommit, buildDate)
}

// newRootCmd builds the CLI. Running the root command without a subcommand serves HTTP.
func newRootCmd() *cobra.Command {
	var configPath string

	serve := func(cmd *cobra.Command, args []string) error {
		printBuildInfo()
		cfg, err := loadConfig(configPath)
		if err != nil {
			return err
		}
		return run(cmd.Context(), cfg)
	}

	rootCmd := &cobra.Command{
		Use:           "book-rental",
		Short:         "Library book rental service",
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE:          serve,
	}
	rootCmd.PersistentFlags().StringVarP(&configPath, "config", "c", "config.env", "Path to configuration file")

	serveCmd := &cobra.Command{
		Use:   "serve",
		Short: "Start the HTTP server",
		Args:  cobra.NoArgs,
		RunE:  serve,
	}

	migrateCmd := &cobra.Command{
		Use:   "migrate",
		Short: "Run database migrations",
	}

	migrateUpCmd := &cobra.Command{
		Use:   "up",
		Short: "Apply all up migrations",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadConfig(configPath)
			if err != nil {
				return err
			}
			return db.MigrateUp(cfg.Postgres.DSN())
		},
	}

	migrateDownCmd := &cobra.Command{
		Use:   "down [steps]",
		Short: "Roll back migrations, one step by default",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			steps, err := parseSteps(args)
			if err != nil {
				return err
			}
			cfg, err := loadConfig(configPath)
			if err != nil {
				return err
			}
			return db.MigrateDown(cfg.Postgres.DSN(), steps)
		},
	}

	migrateCmd.AddCommand(migrateUpCmd, migrateDownCmd)
	rootCmd.AddCommand(serveCmd, migrateCmd)
	return rootCmd
}

// loadConfig reads the configuration and initializes the global logger.
func loadConfig(path string) (config.Config, error) {
	cfg, err := config.Load(path)
	if err != nil {
		return config.Config{}, fmt.Errorf("failed to parse config: %w", err)
	}
	if err := logger.Initialize(cfg.App.LogLevel, cfg.App.LogFormat); err != nil {
		return config.Config{}, fmt.Errorf("failed to initialize logger: %w", err)
	}
	return cfg, nil
}

func parseSteps(args []string) (int, error) {
	if len(args) == 0 {
		return 1, nil
	}
	steps, err := strconv.Atoi(args[0])
	if err != nil || steps <= 0 {
		return 0, fmt.Errorf("steps must be a positive integer, got %q", args[0])
	}
	return steps, nil
}

// run connects the stores, sets up routes and serves until a shutdown signal arrives.
func run(ctx context.Context, cfg config.Config) error {
	defer logger.Log.Sync()
	logger.Log.Infof("Logger initialized with level %s", cfg.App.LogLevel)

	// Connect to PostgreSQL
	logger.Log.Infow("Connecting to PostgreSQL", "host", cfg.Postgres.Host, "port", cfg.Postgres.Port, "db", cfg.Postgres.DB)
	sqlxDB, err := db.Open(ctx, cfg.Postgres.DSN(), cfg.Postgres.MaxOpenConns, cfg.Postgres.MaxIdleConns)
	if err != nil {
		return fmt.Errorf("PostgreSQL connection error: %w", err)
	}
	defer sqlxDB.Close()

	// Connect to Redis. The cache is optional: an unreachable server disables it.
	var bookCache services.BookCache
	if cfg.Redis.Host != "" {
		rdb := redis.NewClient(&redis.Options{
			Addr:         cfg.Redis.Addr(),
			Password:     cfg.Redis.Password,
			DB:           cfg.Redis.DB,
			PoolSize:     cfg.Redis.PoolSize,
			MinIdleConns: cfg.Redis.MinIdleConns,
		})
		defer rdb.Close()
		if err := rdb.Ping(ctx).Err(); err != nil {
			logger.Log.Warnw("Redis unavailable, book cache disabled", "addr", cfg.Redis.Addr(), "error", err)
		} else {
			bookCache = repositories.NewBookCacheRepository(rdb, cfg.Redis.BookTTL)
		}
	}

	// Kafka writer for rental events, optional as well
	var kafkaWriter services.KafkaWriter
	if len(cfg.Kafka.Brokers) > 0 {
		kw := &kafka.Writer{
			Addr:                   kafka.TCP(cfg.Kafka.Brokers...),
			Topic:                  cfg.Kafka.Topic,
			Balancer:               &kafka.Hash{},
			AllowAutoTopicCreation: true,
			BatchTimeout:           kafkaBatchTimeout,
			WriteTimeout:           cfg.App.StoreTimeout,
			MaxAttempts:            kafkaMaxAttempts,
		}
		defer kw.Close()
		kafkaWriter = kw
	}

	srv := &http.Server{
		Addr:              fmt.Sprintf("%s:%s", cfg.App.Host, cfg.App.Port),
		Handler:           newRouter(sqlxDB, bookCache, kafkaWriter, cfg),
		ReadHeaderTimeout: 10 * time.Second,
	}

	// Graceful shutdown
	errChan := make(chan error, 1)
	ctxShutdown, stop := signal.NotifyContext(ctx, os.Interrupt, syscall.SIGTERM, syscall.SIGQUIT)
	defer stop()

	go func() {
		logger.Log.Infof("HTTP server listening on %s", srv.Addr)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			errChan <- fmt.Errorf("HTTP server failed: %w", err)
		}
	}()

	select {
	case <-ctxShutdown.Done():
		logger.Log.Info("Shutdown signal received, stopping HTTP server...")
	case serveErr := <-errChan:
		return serveErr
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.App.ShutdownTimeout)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		logger.Log.Errorw("HTTP server shutdown error", "error", err)
	}

	logger.Log.Info("HTTP server stopped gracefully")
	return nil
}

// newRouter wires repositories, services and handlers. bookCache and kafkaWriter may be nil.
func newRouter(sqlxDB *sqlx.DB, bookCache services.BookCache, kafkaWriter services.KafkaWriter, cfg config.Config) http.Handler {
	timeout := cfg.App.StoreTimeout

	// Initialize repositories
	bookReadRepo := repositories.NewBookReadRepository(sqlxDB, middlewares.GetTxFromContext)
	bookWriteRepo := repositories.NewBookWriteRepository(sqlxDB, middlewares.GetTxFromContext)
	userReadRepo := repositories.NewUserReadRepository(sqlxDB)
	userWriteRepo := repositories.NewUserWriteRepository(sqlxDB)
	rentalReadRepo := repositories.NewRentalReadRepository(sqlxDB, middlewares.GetTxFromContext)
	rentalWriteRepo := repositories.NewRentalWriteRepository(sqlxDB, middlewares.GetTxFromContext)

	// Initialize services
	ledgerService := services.NewLedgerService(bookReadRepo, userReadRepo, rentalReadRepo, rentalWriteRepo, kafkaWriter, timeout)
	reportService := services.NewReportService(bookReadRepo, userReadRepo, rentalReadRepo, timeout)
	bookService := services.NewBookService(bookReadRepo, bookWriteRepo, bookCache, rentalReadRepo, timeout)
	userService := services.NewUserService(userReadRepo, userWriteRepo, timeout)

	// Setup router
	r := chi.NewRouter()
	r.Use(chimiddleware.RealIP)
	r.Use(chimiddleware.Recoverer)
	r.Use(middlewares.LoggingMiddleware)

	r.Get("/swagger/*", httpSwagger.Handler(
		httpSwagger.URL(fmt.Sprintf("http://%s:%s/swagger/doc.json", cfg.App.Host, cfg.App.Port)),
	))

	r.Route("/api/v1", func(r chi.Router) {
		handlers.RegisterHealthHandler(r, handlers.NewHealthHandler(sqlxDB))

		// Rental mutations and book deletion run in one transaction per request
		r.Group(func(r chi.Router) {
			r.Use(middlewares.TxMiddleware(sqlxDB))
			handlers.RegisterIssueRentalHandler(r, handlers.NewIssueRentalHandler(ledgerService))
			handlers.RegisterReturnRentalHandler(r, handlers.NewReturnRentalHandler(ledgerService))
			handlers.RegisterDeleteBookHandler(r, handlers.NewDeleteBookHandler(bookService))
		})

		handlers.RegisterBookHandlers(r,
			handlers.NewCreateBookHandler(bookService),
			handlers.NewListBooksHandler(bookService),
			handlers.NewSearchBooksHandler(bookService),
			handlers.NewBooksByRentRangeHandler(bookService),
			handlers.NewGetBookHandler(bookService),
			handlers.NewUpdateBookHandler(bookService),
		)

		handlers.RegisterUserHandlers(r,
			handlers.NewCreateUserHandler(userService),
			handlers.NewListUsersHandler(userService),
			handlers.NewGetUserHandler(userService),
		)

		handlers.RegisterReportHandlers(r,
			handlers.NewBookIssuersHandler(reportService),
			handlers.NewBookIssuersByNameHandler(reportService),
			handlers.NewBookRentHandler(reportService),
			handlers.NewBookRentByNameHandler(reportService),
			handlers.NewUserRentalsHandler(reportService),
			handlers.NewRentalsInRangeHandler(reportService),
		)
	})

	return r
}
