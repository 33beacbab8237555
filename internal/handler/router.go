package handler

import (
	"context"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
	"go.uber.org/zap"

	"github.com/noah-isme/edu-admin-console/internal/dto"
	"github.com/noah-isme/edu-admin-console/internal/middleware"
	"github.com/noah-isme/edu-admin-console/internal/models"
	"github.com/noah-isme/edu-admin-console/internal/service"
	"github.com/noah-isme/edu-admin-console/pkg/config"
	"github.com/noah-isme/edu-admin-console/pkg/logger"
	corsmiddleware "github.com/noah-isme/edu-admin-console/pkg/middleware/cors"
	reqidmiddleware "github.com/noah-isme/edu-admin-console/pkg/middleware/requestid"
)

// SessionService resolves and forgets bearer sessions.
type SessionService interface {
	middleware.SessionResolver
	Forget(ctx context.Context, token string) error
}

// WorkspaceStore hands out and drops per-administrator workspaces.
type WorkspaceStore interface {
	middleware.WorkspaceProvider
	Release(principal models.Principal)
}

// RouterDeps are the collaborators of the HTTP surface.
type RouterDeps struct {
	Config     *config.Config
	Logger     *zap.Logger
	Metrics    *service.MetricsService
	Sessions   SessionService
	Workspaces WorkspaceStore
	Audit      auditLister
	Export     *service.ExportService
	Checks     map[string]ReadinessCheck
}

// NewRouter builds the gin engine with every route of the console.
func NewRouter(deps RouterDeps) *gin.Engine {
	cfg := deps.Config
	logr := deps.Logger
	if logr == nil {
		logr = zap.NewNop()
	}

	r := gin.New()
	r.Use(gin.Recovery())
	r.Use(reqidmiddleware.Middleware())
	r.Use(logger.GinMiddleware(logr))
	r.Use(corsmiddleware.New(cfg.CORS.AllowedOrigins))
	r.Use(middleware.Metrics(deps.Metrics))

	system := NewMetricsHandler(deps.Metrics, deps.Checks)
	r.GET("/health", system.Health)
	r.GET("/ready", system.Ready)
	r.GET("/metrics", system.Prometheus)
	if cfg.Env != config.EnvProduction {
		r.GET("/docs/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
	}

	api := r.Group(cfg.APIPrefix)
	api.Use(middleware.Session(deps.Sessions, deps.Workspaces))

	auth := NewAuthHandler(deps.Sessions, deps.Workspaces)
	api.GET("/me", auth.Me)
	api.POST("/logout", auth.Logout)
	api.GET("/notifications", NewNotificationHandler().Drain)
	api.GET("/audit-logs", NewAuditHandler(deps.Audit).List)
	api.GET("/system/metrics", system.System)

	NewCalendarHandler(deps.Export).Register(api)
	NewInquiryHandler().Register(api)
	for _, h := range listHandlers() {
		h.Register(api)
	}

	return r
}

type registrar interface {
	Register(rg *gin.RouterGroup)
}

func listHandlers() []registrar {
	return []registrar{
		NewListHandler("sessions", func(ws *service.Workspace) Endpoint[models.ClassSession, models.ClassSession, dto.SessionPayload] {
			return ws.Sessions
		}, true),
		NewListHandler("inquiries", func(ws *service.Workspace) Endpoint[models.InquiryCard, models.Inquiry, dto.InquiryPayload] {
			return ws.Inquiries
		}, true),
		NewListHandler("courses", func(ws *service.Workspace) Endpoint[models.Course, models.Course, dto.CoursePayload] {
			return ws.Courses
		}, true),
		NewListHandler("users", func(ws *service.Workspace) Endpoint[models.User, models.User, dto.UserPayload] {
			return ws.Users
		}, true),
		NewListHandler("media", func(ws *service.Workspace) Endpoint[models.Media, models.Media, dto.MediaPayload] {
			return ws.Media
		}, true),
		NewListHandler("announcements", func(ws *service.Workspace) Endpoint[models.Announcement, models.Announcement, dto.AnnouncementPayload] {
			return ws.Announcements
		}, true),
		NewListHandler("orders", func(ws *service.Workspace) Endpoint[models.Order, models.Order, dto.NoPayload] {
			return ws.Orders
		}, false),
		NewListHandler("payments", func(ws *service.Workspace) Endpoint[models.Payment, models.Payment, dto.NoPayload] {
			return ws.Payments
		}, false),
	}
}
