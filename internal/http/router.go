package http

import (
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/mrlokans/fleet/internal/logging"
)

// NewRouter creates and configures the HTTP router with all endpoints.
// Optional dependencies left nil in cfg disable their endpoints.
func NewRouter(cfg RouterConfig) *gin.Engine {
	logger := cfg.Logger
	if logger == nil {
		logger = zap.NewNop()
	}

	router := gin.New()
	router.Use(logging.GinLogger(logger))
	router.Use(gin.Recovery())

	if cfg.Metrics != nil {
		router.Use(cfg.Metrics.Middleware())
		router.GET("/metrics", gin.WrapH(cfg.Metrics.Handler()))
	}

	health := NewHealthController(cfg.Database, cfg.Facade, cfg.CleanupSchedule, cfg.Version)
	router.GET("/health", health.Status)
	router.GET("/ping", health.Ping)

	api := router.Group("/api/v1")
	if cfg.DemoMiddleware != nil {
		api.Use(cfg.DemoMiddleware.Handler())
	}

	usersController := NewUsersController(cfg.Facade.Users)
	users := api.Group("/users")
	{
		users.POST("", usersController.CreateUser)
		users.GET("", usersController.ListUsers)
		users.GET("/:id", usersController.GetUser)
		users.PUT("/:id", usersController.UpdateUser)
		users.DELETE("/:id", usersController.DeleteUser)
	}

	reportsController := NewReportsController(cfg.Facade.Reports)
	reports := api.Group("/reports")
	{
		reports.POST("", reportsController.CreateReport)
		reports.GET("", reportsController.ListReports)
		reports.GET("/:id", reportsController.GetReport)
		reports.PUT("/:id", reportsController.UpdateReport)
		reports.DELETE("/:id", reportsController.DeleteReport)
	}

	busesController := NewBusesController(cfg.Facade.Buses, cfg.Facade.Users, cfg.Facade.Reports, cfg.Facade.Routes)
	buses := api.Group("/buses")
	{
		buses.POST("", busesController.CreateBus)
		buses.GET("", busesController.ListBuses)
		buses.GET("/:id", busesController.GetBus)
		buses.PUT("/:id", busesController.UpdateBus)
		buses.DELETE("/:id", busesController.DeleteBus)
		buses.GET("/:id/routes", busesController.ListBusRoutes)
	}

	routesController := NewRoutesController(cfg.Facade.Routes)
	routes := api.Group("/routes")
	{
		routes.POST("", routesController.CreateRoute)
		routes.GET("", routesController.ListRoutes)
		routes.GET("/:id", routesController.GetRoute)
		routes.PUT("/:id", routesController.UpdateRoute)
		routes.DELETE("/:id", routesController.DeleteRoute)
	}

	if cfg.AuditService != nil {
		auditController := NewAuditController(cfg.AuditService)
		api.GET("/audit", auditController.GetAuditEvents)
		api.GET("/audit/:entity/:id", auditController.GetEntityHistory)
	}

	if cfg.TaskClient != nil {
		tasksController := NewTasksController(cfg.TaskClient, cfg.AuditRetentionDays)
		api.GET("/tasks/types", tasksController.ListTaskTypes)
		api.GET("/tasks/:id", tasksController.GetTaskStatus)
		api.POST("/tasks/:type/run", tasksController.RunTask)
	}

	return router
}
