package router

import (
	"time"

	"github.com/coursehub/coursehub-backend/internal/config"
	"github.com/coursehub/coursehub-backend/internal/handler"
	"github.com/coursehub/coursehub-backend/internal/middleware"
	"github.com/coursehub/coursehub-backend/internal/model"
	"github.com/coursehub/coursehub-backend/internal/response"
	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"
)

// Handlers groups all handler instances for route setup.
type Handlers struct {
	Auth         *handler.AuthHandler
	Course       *handler.CourseHandler
	Enrollment   *handler.EnrollmentHandler
	ExamResult   *handler.ExamResultHandler
	ResultStream *handler.ResultStreamHandler
	System       *handler.SystemHandler
}

// SetupRouter configures all Gin route groups with appropriate middlewares.
// loginLimiter may be nil, in which case login is not rate limited.
func SetupRouter(
	auth middleware.TokenValidator,
	handlers *Handlers,
	cfg *config.Config,
	loginLimiter *middleware.RateLimiter,
	log zerolog.Logger,
) *gin.Engine {
	gin.SetMode(cfg.GinMode)
	router := gin.New()
	router.Use(gin.Recovery())

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
	corsConfig.ExposeHeaders = []string{"X-Request-ID", "Content-Disposition"}
	corsConfig.MaxAge = 12 * time.Hour
	router.Use(cors.New(corsConfig))

	// Request ID first so the logger and every envelope can use it.
	router.Use(response.RequestIDMiddleware())
	router.Use(middleware.RequestLogger(log))
	router.Use(middleware.Brotli())

	// Health check.
	router.GET("/health", handlers.System.Health)

	// ─── 1. Auth Group (Public, Rate Limited) ──────────────────────────
	authAPI := router.Group("/api/v1/auth")
	{
		login := []gin.HandlerFunc{handlers.Auth.Login}
		if loginLimiter != nil {
			login = append([]gin.HandlerFunc{loginLimiter.Middleware()}, login...)
		}
		authAPI.POST("/login", login...)
		authAPI.GET("/me", middleware.RequireStaffJWT(auth), handlers.Auth.Me)
	}

	// ─── 2. Course Administration (Student Service, JWT + RBAC) ────────
	api := router.Group("/api/v1")
	api.Use(middleware.RequireStaffJWT(auth))
	{
		courses := api.Group("/courses")
		{
			courses.GET("", middleware.RequirePermission(model.PermissionCoursesRead), handlers.Course.ListCourses)
			courses.POST("", middleware.RequirePermission(model.PermissionCoursesWrite), handlers.Course.CreateCourse)
			courses.GET("/:id", middleware.RequirePermission(model.PermissionCoursesRead), handlers.Course.GetCourse)
			courses.PUT("/:id", middleware.RequirePermission(model.PermissionCoursesWrite), handlers.Course.UpdateCourse)
			courses.DELETE("/:id", middleware.RequirePermission(model.PermissionCoursesWrite), handlers.Course.DeleteCourse)

			courses.GET("/:id/enrollments",
				middleware.RequireAnyPermission(model.PermissionCoursesRead, model.PermissionEnrollmentsWrite),
				handlers.Enrollment.ListEnrollments,
			)
			courses.POST("/:id/enrollments",
				middleware.RequirePermission(model.PermissionEnrollmentsWrite),
				handlers.Enrollment.Enroll,
			)
			courses.GET("/:id/exams",
				middleware.RequireAnyPermission(model.PermissionCoursesRead, model.PermissionExamsWrite),
				handlers.Enrollment.ListExams,
			)
			courses.POST("/:id/exams",
				middleware.RequirePermission(model.PermissionExamsWrite),
				handlers.Enrollment.CreateExam,
			)
		}

		api.GET("/teachers/options",
			middleware.RequirePermission(model.PermissionCoursesWrite),
			handlers.Course.TeacherOptions,
		)
	}

	// ─── 3. Teacher Group (JWT + Teacher role) ─────────────────────────
	teacherAPI := router.Group("/api/v1/teacher")
	teacherAPI.Use(
		middleware.RequireStaffJWT(auth),
		middleware.RequireRole(model.RoleTeacher),
	)
	{
		teacherAPI.GET("/courses/:id/status",
			middleware.RequirePermission(model.PermissionCourseStatusRead),
			handlers.Course.CourseStatus,
		)
		teacherAPI.GET("/courses/:id/status/export",
			middleware.RequirePermission(model.PermissionCourseStatusRead),
			middleware.NoStore(),
			handlers.Course.ExportCourseStatus,
		)
		teacherAPI.POST("/results",
			middleware.RequirePermission(model.PermissionResultsWrite),
			handlers.ExamResult.RecordResult,
		)
		teacherAPI.PATCH("/results/:id",
			middleware.RequirePermission(model.PermissionResultsWrite),
			handlers.ExamResult.UpdateResult,
		)
	}

	// ─── 4. WebSocket Group (Teacher WS Auth) ──────────────────────────
	ws := router.Group("/ws/v1")
	ws.Use(
		middleware.RequireStaffWSAuth(auth),
		middleware.RequireRole(model.RoleTeacher),
	)
	{
		ws.GET("/teacher/courses/:id/results", handlers.ResultStream.StreamResults)
	}

	return router
}
