package main

import (
	"context"
	"errors"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	_ "github.com/noah-isme/edu-admin-console/api/swagger"
	"github.com/noah-isme/edu-admin-console/internal/dto"
	"github.com/noah-isme/edu-admin-console/internal/handler"
	"github.com/noah-isme/edu-admin-console/internal/models"
	"github.com/noah-isme/edu-admin-console/internal/repository"
	"github.com/noah-isme/edu-admin-console/internal/service"
	"github.com/noah-isme/edu-admin-console/pkg/cache"
	"github.com/noah-isme/edu-admin-console/pkg/config"
	"github.com/noah-isme/edu-admin-console/pkg/database"
	"github.com/noah-isme/edu-admin-console/pkg/logger"
	"github.com/noah-isme/edu-admin-console/pkg/upstream"
)

// @title Education Admin Console API
// @version 1.0.0
// @description Backend for the institute admin dashboard: live-class calendar, admission inquiries and catalog lists.
// @BasePath /api/v1
// @schemes http https
// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization

const shutdownTimeout = 15 * time.Second

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("failed to load config: %v", err)
	}

	logr, err := logger.New(cfg)
	if err != nil {
		log.Fatalf("failed to init logger: %v", err)
	}
	defer logr.Sync() //nolint:errcheck

	if err := run(cfg, logr); err != nil {
		logr.Fatal("server failed", zap.Error(err))
	}
}

func run(cfg *config.Config, logr *zap.Logger) error {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if cfg.Env == config.EnvProduction {
		gin.SetMode(gin.ReleaseMode)
	}

	metrics := service.NewMetricsService()
	checks := map[string]handler.ReadinessCheck{}

	var cacheRepo service.CacheRepository
	if cfg.Session.CacheEnabled {
		client, err := cache.NewRedis(ctx, cfg.Redis)
		if err != nil {
			return fmt.Errorf("connect redis: %w", err)
		}
		repo := repository.NewCacheRepository(client, logr)
		defer repo.Close() //nolint:errcheck
		cacheRepo = repo
		checks["redis"] = repo.Ping
	}
	sessionCache := service.NewSessionCache(cacheRepo, metrics, logr)

	audit := service.NewAuditService(nil, metrics, cfg.Audit, logr)
	if cfg.Audit.Enabled {
		db, err := database.NewPostgres(ctx, cfg.Database)
		if err != nil {
			return fmt.Errorf("connect postgres: %w", err)
		}
		defer db.Close() //nolint:errcheck
		repo := repository.NewAuditRepository(db)
		if err := repo.EnsureSchema(ctx); err != nil {
			return fmt.Errorf("prepare audit schema: %w", err)
		}
		audit = service.NewAuditService(repo, metrics, cfg.Audit, logr)
		checks["postgres"] = db.PingContext
	}
	audit.Start(ctx)
	defer audit.Stop()

	client := upstream.New(cfg.Upstream, logr, metrics)
	auth := service.NewAuthService(repository.NewSessionRepository(client), sessionCache, cfg.Session.CacheTTL, logr)

	deps := service.WorkspaceDeps{
		Schedules:     repository.NewScheduleRepository(client),
		Inquiries:     repository.NewInquiryRepository(client),
		Courses:       repository.NewCourseRepository(client),
		Users:         repository.NewUserRepository(client),
		Media:         repository.NewMediaRepository(client),
		Announcements: repository.NewAnnouncementRepository(client),
		Orders:        repository.NewOrderRepository(client),
		Payments:      repository.NewPaymentRepository(client),
		Validator:     dto.NewValidator(),
		Audit:         audit,
		Location:      cfg.Calendar.Location(),
		NoticeBuffer:  cfg.Workspace.NoticeBuffer,
		Logger:        logr,
	}
	workspaces := service.NewWorkspaceManager(func(p models.Principal) *service.Workspace {
		return service.NewWorkspace(p, deps)
	}, cfg.Workspace.IdleTTL, metrics, logr)
	go workspaces.Run(ctx, cfg.Workspace.SweepInterval)

	router := handler.NewRouter(handler.RouterDeps{
		Config:     cfg,
		Logger:     logr,
		Metrics:    metrics,
		Sessions:   auth,
		Workspaces: workspaces,
		Audit:      audit,
		Export:     service.NewExportService(logr),
		Checks:     checks,
	})

	srv := &http.Server{
		Addr:              fmt.Sprintf(":%d", cfg.Port),
		Handler:           router,
		ReadHeaderTimeout: 10 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		logr.Info("server starting",
			zap.String("addr", srv.Addr),
			zap.String("env", cfg.Env),
			zap.String("upstream", cfg.Upstream.BaseURL),
			zap.Bool("session_cache", cfg.Session.CacheEnabled),
			zap.Bool("audit", audit.Enabled()),
		)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
		close(errCh)
	}()

	select {
	case err := <-errCh:
		return err
	case <-ctx.Done():
	}

	logr.Info("shutting down")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	return srv.Shutdown(shutdownCtx)
}
