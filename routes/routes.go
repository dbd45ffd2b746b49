package routes

import (
	"github.com/labstack/echo/v4"
	"go.uber.org/zap"

	"github.com/estiakahmed98/islami-dawa-production-sub001/config"
	"github.com/estiakahmed98/islami-dawa-production-sub001/handlers"
	"github.com/estiakahmed98/islami-dawa-production-sub001/metrics"
	"github.com/estiakahmed98/islami-dawa-production-sub001/middlewares"
	"github.com/estiakahmed98/islami-dawa-production-sub001/models"
)

// Register wires all HTTP routes.
//
// Echo matches static segments before params, so the literal groups
// (/api/leaves, /api/todo, ...) coexist with the per-category /api/:category
// routes; an unknown slug falls through to the report handler's 404.
func Register(e *echo.Echo, cfg *config.Config, log *zap.Logger) {
	auth := handlers.NewAuthHandler(cfg.JWTSecret, log)
	users := handlers.NewUserHandler(log)
	reports := handlers.NewReportHandler(log)
	tally := handlers.NewTallyHandler(log)
	exports := handlers.NewExportHandler(tally, log)
	leaves := handlers.NewLeaveRequestHandler(log)
	edits := handlers.NewEditRequestHandler(log)
	todos := handlers.NewTodoHandler(log)
	tasks := handlers.NewTaskHandler(log)
	notes := handlers.NewNotificationHandler(log)
	markaz := handlers.NewMarkazHandler(log)
	dash := handlers.NewDashboardHandler(log)

	// ===== Public =====
	e.GET("/healthz", handlers.Health)
	e.GET("/metrics", echo.WrapHandler(metrics.Handler()))

	e.POST("/auth/register", auth.Register)
	e.POST("/auth/login", auth.Login)
	e.GET("/auth/check-email", auth.CheckEmail)

	// ===== Authenticated =====
	authMW := middlewares.RequireAuth(cfg.JWTSecret)
	api := e.Group("/api", authMW)

	// Directory (admins only)
	adminOnly := middlewares.RequireAdmin()
	api.GET("/usershow", users.List, adminOnly)
	api.PUT("/usershow/:id", users.Update, adminOnly)
	api.POST("/usershow/:id/ban", users.Ban, adminOnly)
	// Hard delete is irreversible, so only the central admin gets it; the
	// ban flag is the tool for everyone else.
	api.DELETE("/usershow/:id", users.Delete, middlewares.RequireRole(models.RoleCentralAdmin))

	// Dashboard and tallies
	api.GET("/dashboard", dash.Summary)
	api.GET("/tally/:category", tally.Tally)
	api.GET("/export/:category/csv", exports.CSV)
	api.GET("/export/:category/xlsx", exports.Excel)

	// Leave requests
	api.POST("/leaves", leaves.Create)
	api.GET("/leaves", leaves.List)
	api.GET("/leaves/pending-count", leaves.PendingCount, adminOnly)
	api.PUT("/leaves/:id", leaves.Decide, adminOnly)

	// Profile edit requests
	api.POST("/edit-requests", edits.Create)
	api.GET("/edit-requests", edits.List, adminOnly)
	api.PUT("/edit-requests/:id", edits.Decide, adminOnly)

	// Weekly planner
	api.GET("/todo", todos.List)
	api.POST("/todo", todos.Create)
	api.PUT("/todo/:id", todos.Update)
	api.DELETE("/todo/:id", todos.Delete)

	// Calendar items
	api.GET("/tasks", tasks.List)
	api.POST("/tasks", tasks.Create)
	api.PUT("/tasks/:id", tasks.Update)
	api.DELETE("/tasks/:id", tasks.Delete)

	// Notifications
	api.GET("/notification", notes.List)
	api.POST("/notification", notes.Create, adminOnly)
	api.PUT("/notification/:id/read", notes.MarkRead)
	api.DELETE("/notification/:id", notes.Delete)

	// Markaz directory
	api.GET("/markaz-masjid", markaz.List)
	api.POST("/markaz-masjid", markaz.Create, adminOnly)
	api.PUT("/markaz-masjid/:id", markaz.Update, adminOnly)
	api.DELETE("/markaz-masjid/:id", markaz.Delete, adminOnly)

	// Category report records (dawati, moktob, amoli, ...). Last so every
	// literal route above takes precedence.
	api.POST("/:category", reports.Create)
	api.GET("/:category", reports.List)
	api.PUT("/:category/:id", reports.Update)
}
