package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"sync"
	"syscall"
	"time"

	"github.com/coursehub/coursehub-backend/internal/config"
	"github.com/coursehub/coursehub-backend/internal/database"
	"github.com/coursehub/coursehub-backend/internal/grading"
	"github.com/coursehub/coursehub-backend/internal/handler"
	"github.com/coursehub/coursehub-backend/internal/logger"
	"github.com/coursehub/coursehub-backend/internal/middleware"
	"github.com/coursehub/coursehub-backend/internal/notification"
	"github.com/coursehub/coursehub-backend/internal/repository"
	"github.com/coursehub/coursehub-backend/internal/router"
	"github.com/coursehub/coursehub-backend/internal/service"
	"github.com/coursehub/coursehub-backend/internal/validator"
	"github.com/coursehub/coursehub-backend/internal/worker"
	"github.com/rs/zerolog"
)

func main() {
	// ─── Load Configuration ────────────────────────────────────────────
	cfg := config.Load()

	// ─── Initialize Logger ─────────────────────────────────────────────
	log := logger.Setup(cfg.LogLevel, cfg.LogFormat)
	log.Info().
		Str("port", cfg.ServerPort).
		Str("mode", cfg.GinMode).
		Str("log_level", cfg.LogLevel).
		Float64("passing_threshold", cfg.PassingThreshold).
		Msg("Starting CourseHub Backend")

	// ─── Initialize Validator ──────────────────────────────────────────
	validator.Setup()

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	// ─── Connect to PostgreSQL ─────────────────────────────────────────
	pool, err := database.NewPostgresPool(ctx, cfg, log)
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to connect to PostgreSQL")
	}
	defer pool.Close()

	// ─── Connect to Redis ──────────────────────────────────────────────
	rdb, err := database.NewRedisClient(ctx, cfg, log)
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to connect to Redis")
	}
	defer rdb.Close()

	// ─── Initialize Repositories ───────────────────────────────────────
	userRepo := repository.NewUserRepository(pool)
	courseRepo := repository.NewCourseRepository(pool)
	studentRepo := repository.NewStudentRepository(pool)
	enrollmentRepo := repository.NewEnrollmentRepository(pool)
	examRepo := repository.NewExamRepository(pool)
	resultRepo := repository.NewExamResultRepository(pool)
	alertRepo := repository.NewAlertRepository(pool)

	// ─── Initialize Services ──────────────────────────────────────────
	evaluator := grading.NewEvaluator(cfg.PassingThreshold)

	var observer notification.Observer = notification.NewQueueObserver(rdb)
	if !cfg.ResultAlerts {
		observer = notification.NewLogObserver(log)
		log.Warn().Msg("Result alerts disabled, recorded results are only logged")
	}

	authService := service.NewAuthService(cfg, userRepo)
	aggregator := service.NewEnrollmentAggregator(courseRepo, enrollmentRepo, examRepo, resultRepo, evaluator)
	courseService := service.NewCourseService(courseRepo, userRepo, enrollmentRepo, aggregator, log)
	enrollmentService := service.NewEnrollmentService(courseRepo, studentRepo, enrollmentRepo, log)
	examService := service.NewExamService(courseRepo, examRepo, log)
	resultService := service.NewExamResultService(resultRepo, enrollmentRepo, examRepo, courseRepo, evaluator, observer, log)

	// ─── Initialize Handlers ──────────────────────────────────────────
	handlers := &router.Handlers{
		Auth:         handler.NewAuthHandler(authService),
		Course:       handler.NewCourseHandler(courseService),
		Enrollment:   handler.NewEnrollmentHandler(enrollmentService, examService),
		ExamResult:   handler.NewExamResultHandler(resultService),
		ResultStream: handler.NewResultStreamHandler(courseService, alertRepo, rdb, log, cfg.AllowedOrigins),
		System:       handler.NewSystemHandler(pool, rdb, log),
	}

	// ─── Start Background Workers ─────────────────────────────────────
	workerCtx, workerCancel := context.WithCancel(context.Background())
	var workers sync.WaitGroup

	alertWorker := worker.NewResultAlertWorker(alertRepo, rdb, log)
	workers.Add(1)
	go func() {
		defer workers.Done()
		alertWorker.Start(workerCtx)
	}()

	// ─── Setup Router ──────────────────────────────────────────────────
	loginLimiter := middleware.NewRateLimiter(rdb, cfg.LoginRateLimit, time.Minute, log)
	r := router.SetupRouter(authService, handlers, cfg, loginLimiter, log)

	// ─── Create HTTP Server ────────────────────────────────────────────
	srv := &http.Server{
		Addr:              ":" + cfg.ServerPort,
		Handler:           r,
		ReadHeaderTimeout: 10 * time.Second,
	}

	// ─── Start Server in Goroutine ─────────────────────────────────────
	go func() {
		log.Info().Str("addr", ":"+cfg.ServerPort).Msg("Server listening")
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatal().Err(err).Msg("Server error")
		}
	}()

	// ─── Graceful Shutdown ─────────────────────────────────────────────
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	sig := <-quit

	log.Info().Str("signal", sig.String()).Msg("Shutting down gracefully...")

	// 1. Stop accepting new HTTP requests (5s timeout).
	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer shutdownCancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Error().Err(err).Msg("HTTP server shutdown error")
	}

	// 2. Stop the alert worker and wait for its final flush.
	workerCancel()
	drained := make(chan struct{})
	go func() {
		workers.Wait()
		close(drained)
	}()
	select {
	case <-drained:
	case <-time.After(5 * time.Second):
		log.Warn().Msg("Alert worker did not finish in time")
	}

	log.Info().Msg("Shutdown complete")
}

// init sets zerolog global defaults before main runs.
func init() {
	zerolog.TimeFieldFormat = time.RFC3339
}
