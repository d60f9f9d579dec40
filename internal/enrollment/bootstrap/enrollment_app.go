package bootstrap

import (
	"context"
	"errors"
	"fmt"
	"net"
	"net/http"
	"time"

	"github.com/Lexv0lk/course-store/internal/enrollment/application"
	"github.com/Lexv0lk/course-store/internal/enrollment/domain"
	httpwrap "github.com/Lexv0lk/course-store/internal/enrollment/infrastructure/http"
	"github.com/Lexv0lk/course-store/internal/enrollment/infrastructure/memory"
	"github.com/Lexv0lk/course-store/internal/enrollment/infrastructure/postgres"
	"github.com/Lexv0lk/course-store/internal/pkg/database"
	"github.com/Lexv0lk/course-store/internal/pkg/jwt"
	"github.com/Lexv0lk/course-store/internal/pkg/logging"
	"github.com/Lexv0lk/course-store/migrations"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
)

const (
	shutdownTimeout   = 5 * time.Second
	readHeaderTimeout = 10 * time.Second
)

type enrollmentStores struct {
	courseFinder        domain.CourseFinder
	subscriptionChecker domain.SubscriptionChecker
	subscriptionLister  domain.SubscriptionLister
	balanceFetcher      domain.BalanceFetcher
	balanceEnsurer      domain.BalanceEnsurer
	unitOfWork          domain.EnrollmentUnitOfWork
}

type EnrollmentApp struct {
	cfg    EnrollmentConfig
	logger logging.Logger

	server *http.Server
	dbpool *pgxpool.Pool
}

func NewEnrollmentApp(cfg EnrollmentConfig, logger logging.Logger) *EnrollmentApp {
	return &EnrollmentApp{
		cfg:    cfg,
		logger: logger,
	}
}

// Run serves the enrollment API on lis until ctx is done or the server fails.
func (a *EnrollmentApp) Run(ctx context.Context, lis net.Listener) error {
	logger := a.logger

	stores, err := a.openStores(ctx)
	if err != nil {
		return err
	}

	registry := prometheus.NewRegistry()
	registry.MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)

	enrollCase := application.NewEnrollCase(
		stores.courseFinder,
		stores.subscriptionChecker,
		stores.balanceFetcher,
		stores.unitOfWork,
		application.NewEnrollMetrics(registry),
		logger,
		a.cfg.EnrollTimeout,
	)
	userInfoCase := application.NewUserInfoCase(stores.balanceFetcher, stores.subscriptionLister)

	handler := httpwrap.NewEnrollmentHandler(enrollCase, userInfoCase, logger)
	router := httpwrap.NewRouter(handler, registry,
		httpwrap.NewAuthMiddleware(a.cfg.JwtSecret, jwt.NewJWTTokenParser(), logger),
		httpwrap.NewBalanceMiddleware(stores.balanceEnsurer, a.cfg.StartBalance, logger),
	)

	a.server = &http.Server{
		Handler:           router,
		ReadHeaderTimeout: readHeaderTimeout,
	}

	errChan := make(chan error, 1)
	go func() {
		logger.Info("starting http server", "addr", lis.Addr().String(), "storage", a.cfg.StorageDriver)

		if err := a.server.Serve(lis); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errChan <- fmt.Errorf("error while serving http: %w", err)
			return
		}

		errChan <- nil
	}()

	select {
	case err := <-errChan:
		return err
	case <-ctx.Done():
		return nil
	}
}

func (a *EnrollmentApp) Shutdown() {
	if a.server != nil {
		a.logger.Info("shutting down http server")

		shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
		defer cancel()

		if err := a.server.Shutdown(shutdownCtx); err != nil {
			a.logger.Error("server shutdown failed", "error", err.Error())
		}
	}

	if a.dbpool != nil {
		a.dbpool.Close()
	}
}

func (a *EnrollmentApp) openStores(ctx context.Context) (enrollmentStores, error) {
	switch a.cfg.StorageDriver {
	case StorageDriverMemory:
		return a.openMemoryStores()
	case StorageDriverPostgres:
		return a.openPostgresStores(ctx)
	default:
		return enrollmentStores{}, fmt.Errorf("unknown storage driver %q", a.cfg.StorageDriver)
	}
}

func (a *EnrollmentApp) openMemoryStores() (enrollmentStores, error) {
	store := memory.NewStore()

	if a.cfg.SeedFile != "" {
		if err := store.LoadSeedFile(a.cfg.SeedFile); err != nil {
			return enrollmentStores{}, fmt.Errorf("failed to seed memory store: %w", err)
		}
	}

	return enrollmentStores{
		courseFinder:        store,
		subscriptionChecker: store,
		subscriptionLister:  store,
		balanceFetcher:      store,
		balanceEnsurer:      store,
		unitOfWork:          store,
	}, nil
}

func (a *EnrollmentApp) openPostgresStores(ctx context.Context) (enrollmentStores, error) {
	dbURL := a.cfg.DbSettings.GetURL()

	if a.cfg.AutoMigrate {
		if err := Migrate(a.cfg.DbSettings); err != nil {
			return enrollmentStores{}, err
		}
	}

	dbpool, err := pgxpool.New(ctx, dbURL)
	if err != nil {
		return enrollmentStores{}, fmt.Errorf("failed to connect to database: %w", err)
	}

	if err := dbpool.Ping(ctx); err != nil {
		dbpool.Close()
		return enrollmentStores{}, fmt.Errorf("failed to ping database: %w", err)
	}

	a.dbpool = dbpool

	ledgerRepository := postgres.NewLedgerRepository(dbpool)
	subscriptionRepository := postgres.NewSubscriptionRepository(dbpool)
	txManager := database.NewDelegateTxManager(dbpool, a.logger)

	return enrollmentStores{
		courseFinder:        postgres.NewCatalogRepository(dbpool),
		subscriptionChecker: subscriptionRepository,
		subscriptionLister:  subscriptionRepository,
		balanceFetcher:      ledgerRepository,
		balanceEnsurer:      ledgerRepository,
		unitOfWork:          postgres.NewEnrollmentUnitOfWork(txManager),
	}, nil
}

// Migrate applies the embedded schema migrations.
func Migrate(settings database.PostgresSettings) error {
	err := database.MigrateDatabase(settings.GetURL(), migrations.FS, migrations.Dir, database.PgxDriverName, database.PostgresDialect)
	if err != nil {
		return fmt.Errorf("failed to migrate database: %w", err)
	}

	return nil
}
