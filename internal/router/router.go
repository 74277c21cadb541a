package router

import (
	"net/http"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/redis/go-redis/v9"
	"github.com/sihs-edu/campus-backend/internal/config"
	"github.com/sihs-edu/campus-backend/internal/handler"
	"github.com/sihs-edu/campus-backend/internal/middleware"
	"github.com/sihs-edu/campus-backend/internal/model"
	"github.com/sihs-edu/campus-backend/internal/response"
	"github.com/sihs-edu/campus-backend/internal/service"
)

// Handlers groups all handler instances for route setup.
type Handlers struct {
	Auth         *handler.AuthHandler
	Admin        *handler.AdminHandler
	Department   *handler.DepartmentHandler
	Faculty      *handler.FacultyHandler
	NewsEvent    *handler.NewsEventHandler
	Notification *handler.NotificationHandler
	Download     *handler.DownloadHandler
	Research     *handler.ResearchHandler
	Slider       *handler.SliderHandler
	Setting      *handler.SettingHandler
	Media        *handler.MediaHandler
	WS           *handler.WSHandler
}

// SetupRouter configures all Gin route groups with appropriate middlewares.
func SetupRouter(
	authService *service.AuthService,
	accounts middleware.AccountResolver,
	handlers *Handlers,
	cfg *config.Config,
	pool *pgxpool.Pool,
	rdb *redis.Client,
) *gin.Engine {
	gin.SetMode(cfg.GinMode)
	router := gin.Default()

	// ─── CORS ──────────────────────────────────────────────────────────
	// If AllowedOrigins is set in config, restrict to that list;
	// otherwise allow all (*) so dev works without extra config.
	corsConfig := cors.DefaultConfig()
	if len(cfg.AllowedOrigins) > 0 {
		corsConfig.AllowOrigins = cfg.AllowedOrigins
	} else {
		corsConfig.AllowAllOrigins = true
	}
	corsConfig.AllowMethods = []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"}
	corsConfig.AllowHeaders = []string{"Origin", "Content-Type", "Authorization", "X-Request-ID"}
	corsConfig.ExposeHeaders = []string{"X-Request-ID"}
	corsConfig.MaxAge = 12 * time.Hour
	router.Use(cors.New(corsConfig))

	// Apply request ID middleware globally so every response includes metadata.
	router.Use(response.RequestIDMiddleware())

	// Apply brotli middleware globally.
	router.Use(middleware.Brotli())

	// Serve uploaded media files statically with aggressive caching (1 year).
	uploadsGroup := router.Group("/uploads")
	uploadsGroup.Use(middleware.CacheControl(31536000))
	{
		uploadsGroup.Static("/", cfg.UploadDir)
	}

	// Health check with dependency pings.
	router.GET("/health", func(c *gin.Context) {
		ctx := c.Request.Context()
		status := http.StatusOK
		checks := gin.H{"database": "ok", "redis": "ok"}
		if err := pool.Ping(ctx); err != nil {
			checks["database"] = "unreachable"
			status = http.StatusServiceUnavailable
		}
		if err := rdb.Ping(ctx).Err(); err != nil {
			checks["redis"] = "unreachable"
			status = http.StatusServiceUnavailable
		}
		c.JSON(status, gin.H{"status": checks})
	})

	requireAdmin := middleware.RequireAdmin(authService, accounts)

	// Rate limiter for credential endpoints, matching the account lockout
	// window so IP-level and account-level limits agree.
	authLimiter := middleware.NewRateLimiter(cfg.LockoutThreshold, cfg.LockoutDuration)

	// ─── 1. Auth Group ─────────────────────────────────────────────────
	auth := router.Group("/api/v1/auth")
	{
		auth.POST("/register", authLimiter.Middleware(), handlers.Auth.Register)
		auth.POST("/login", authLimiter.Middleware(), handlers.Auth.Login)

		auth.GET("/me", requireAdmin, handlers.Auth.GetProfile)
		auth.PUT("/profile", requireAdmin, handlers.Auth.UpdateProfile)
		auth.PUT("/change-password", requireAdmin, handlers.Auth.ChangePassword)
		auth.POST("/logout", requireAdmin, handlers.Auth.Logout)
	}

	// ─── 2. Public Content Group (No Auth) ─────────────────────────────
	publicAPI := router.Group("/api/v1")
	{
		publicAPI.GET("/departments", handlers.Department.ListDepartments)
		publicAPI.GET("/departments/:id", handlers.Department.GetDepartment)
		publicAPI.GET("/departments/by-path/:slug", handlers.Department.GetDepartmentByPath)

		publicAPI.GET("/faculty", handlers.Faculty.ListFaculty)
		publicAPI.GET("/faculty/:id", handlers.Faculty.GetFaculty)

		publicAPI.GET("/news-events", handlers.NewsEvent.ListNewsEvents)
		publicAPI.GET("/news-events/:id", handlers.NewsEvent.GetNewsEvent)

		publicAPI.GET("/notifications", handlers.Notification.ListNotifications)
		publicAPI.GET("/notifications/:id", handlers.Notification.GetNotification)

		publicAPI.GET("/downloads", handlers.Download.ListDownloads)
		publicAPI.GET("/downloads/:id", handlers.Download.GetDownload)
		publicAPI.POST("/downloads/:id/track", handlers.Download.TrackDownload)

		publicAPI.GET("/research", handlers.Research.ListResearch)
		publicAPI.GET("/research/:id", handlers.Research.GetResearch)
		publicAPI.POST("/research/:id/track-download", handlers.Research.TrackResearchDownload)

		publicAPI.GET("/sliders", handlers.Slider.ListSliders)
		publicAPI.GET("/sliders/:id", handlers.Slider.GetSlider)

		publicAPI.GET("/settings", handlers.Setting.GetSettings)
	}

	// ─── 3. WebSocket Group (Admin WS Auth) ────────────────────────────
	ws := router.Group("/ws/v1")
	ws.Use(requireAdmin)
	{
		ws.GET("/notifications/stream", handlers.WS.NotificationStream)
	}

	// ─── 4. Admin Group (JWT + RBAC) ───────────────────────────────────
	adminAPI := router.Group("/api/v1/admin")
	adminAPI.Use(requireAdmin)
	{
		// Media upload
		adminAPI.POST("/media/images", handlers.Media.UploadImage)
		adminAPI.POST("/media/documents",
			middleware.RequirePermission(model.PermissionManageDownloads),
			handlers.Media.UploadDocument,
		)

		// Department management
		adminAPI.POST("/departments",
			middleware.RequirePermission(model.PermissionManageDepartments),
			handlers.Department.CreateDepartment,
		)
		adminAPI.PUT("/departments/:id",
			middleware.RequirePermission(model.PermissionManageDepartments),
			handlers.Department.UpdateDepartment,
		)
		adminAPI.DELETE("/departments/:id",
			middleware.RequirePermission(model.PermissionManageDepartments),
			handlers.Department.DeleteDepartment,
		)

		// Faculty management
		adminAPI.POST("/faculty",
			middleware.RequirePermission(model.PermissionManageFaculty),
			handlers.Faculty.CreateFaculty,
		)
		adminAPI.PUT("/faculty/:id",
			middleware.RequirePermission(model.PermissionManageFaculty),
			handlers.Faculty.UpdateFaculty,
		)
		adminAPI.DELETE("/faculty/:id",
			middleware.RequirePermission(model.PermissionManageFaculty),
			handlers.Faculty.DeleteFaculty,
		)

		// News and events
		adminAPI.POST("/news-events",
			middleware.RequirePermission(model.PermissionManageNews),
			handlers.NewsEvent.CreateNewsEvent,
		)
		adminAPI.PUT("/news-events/:id",
			middleware.RequirePermission(model.PermissionManageNews),
			handlers.NewsEvent.UpdateNewsEvent,
		)
		adminAPI.DELETE("/news-events/:id",
			middleware.RequirePermission(model.PermissionManageNews),
			handlers.NewsEvent.DeleteNewsEvent,
		)

		// Notifications
		adminAPI.GET("/notifications",
			middleware.RequirePermission(model.PermissionManageNotifications),
			handlers.Notification.ListAllNotifications,
		)
		adminAPI.POST("/notifications",
			middleware.RequirePermission(model.PermissionManageNotifications),
			handlers.Notification.CreateNotification,
		)
		adminAPI.PUT("/notifications/:id",
			middleware.RequirePermission(model.PermissionManageNotifications),
			handlers.Notification.UpdateNotification,
		)
		adminAPI.DELETE("/notifications/:id",
			middleware.RequirePermission(model.PermissionManageNotifications),
			handlers.Notification.DeleteNotification,
		)

		// Downloads catalog
		adminAPI.POST("/downloads",
			middleware.RequirePermission(model.PermissionManageDownloads),
			handlers.Download.CreateDownload,
		)
		adminAPI.PUT("/downloads/:id",
			middleware.RequirePermission(model.PermissionManageDownloads),
			handlers.Download.UpdateDownload,
		)
		adminAPI.DELETE("/downloads/:id",
			middleware.RequirePermission(model.PermissionManageDownloads),
			handlers.Download.DeleteDownload,
		)

		// Research entries
		adminAPI.POST("/research",
			middleware.RequirePermission(model.PermissionManageResearch),
			handlers.Research.CreateResearch,
		)
		adminAPI.PUT("/research/:id",
			middleware.RequirePermission(model.PermissionManageResearch),
			handlers.Research.UpdateResearch,
		)
		adminAPI.DELETE("/research/:id",
			middleware.RequirePermission(model.PermissionManageResearch),
			handlers.Research.DeleteResearch,
		)

		// Sliders
		adminAPI.POST("/sliders",
			middleware.RequirePermission(model.PermissionManageSliders),
			handlers.Slider.CreateSlider,
		)
		adminAPI.PUT("/sliders/:id",
			middleware.RequirePermission(model.PermissionManageSliders),
			handlers.Slider.UpdateSlider,
		)
		adminAPI.DELETE("/sliders/:id",
			middleware.RequirePermission(model.PermissionManageSliders),
			handlers.Slider.DeleteSlider,
		)

		// Site settings
		adminAPI.PUT("/settings",
			middleware.RequirePermission(model.PermissionManageSettings),
			handlers.Setting.UpdateSettings,
		)

		// Admin account management (super admin only)
		adminMgmt := adminAPI.Group("/admins")
		adminMgmt.Use(middleware.RequireRole(model.RoleSuperAdmin))
		{
			adminMgmt.GET("", handlers.Admin.ListAdmins)
			adminMgmt.POST("", handlers.Admin.CreateAdmin)
			adminMgmt.PUT("/:id", handlers.Admin.UpdateAdmin)
			adminMgmt.DELETE("/:id", handlers.Admin.DeleteAdmin)
		}
	}

	return router
}
