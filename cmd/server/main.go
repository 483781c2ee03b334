package main

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	identityapp "github.com/marwan-sadiq/deptapp/internal/application/identity"
	ledgerapp "github.com/marwan-sadiq/deptapp/internal/application/ledger"
	planningapp "github.com/marwan-sadiq/deptapp/internal/application/planning"
	"github.com/marwan-sadiq/deptapp/internal/domain/planning"
	"github.com/marwan-sadiq/deptapp/internal/infrastructure/auth"
	"github.com/marwan-sadiq/deptapp/internal/infrastructure/config"
	"github.com/marwan-sadiq/deptapp/internal/infrastructure/logger"
	"github.com/marwan-sadiq/deptapp/internal/infrastructure/persistence"
	"github.com/marwan-sadiq/deptapp/internal/interfaces/http/handler"
	"github.com/marwan-sadiq/deptapp/internal/interfaces/http/middleware"
	"github.com/marwan-sadiq/deptapp/internal/interfaces/http/router"
	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		panic("Failed to load configuration: " + err.Error())
	}

	log, err := logger.New(&logger.Config{
		Level:  cfg.Log.Level,
		Format: cfg.Log.Format,
		Output: cfg.Log.Output,
	})
	if err != nil {
		panic("Failed to initialize logger: " + err.Error())
	}
	defer func() {
		_ = log.Sync()
	}()

	log.Info("Starting deptapp backend",
		zap.String("app", cfg.App.Name),
		zap.String("env", cfg.App.Env),
		zap.String("port", cfg.App.Port),
	)

	// Database connection with GORM logging routed through zap
	gormLog := logger.NewGormLogger(log, logger.MapGormLogLevel(cfg.Log.Level))
	db, err := persistence.NewDatabaseWithLogger(&cfg.Database, gormLog)
	if err != nil {
		log.Fatal("Failed to connect to database", zap.Error(err))
	}
	defer func() {
		if err := db.Close(); err != nil {
			log.Error("Error closing database", zap.Error(err))
		}
	}()
	log.Info("Database connected")

	// Repositories
	customerRepo := persistence.NewGormCustomerRepository(db.DB)
	companyRepo := persistence.NewGormCompanyRepository(db.DB)
	debtRepo := persistence.NewGormDebtRepository(db.DB)
	activityRepo := persistence.NewGormActivityRepository(db.DB)
	auditLogRepo := persistence.NewGormAuditLogRepository(db.DB)
	userRepo := persistence.NewGormUserRepository(db.DB)
	planRepo := persistence.NewGormPlanRepository(db.DB)
	scheduleRepo := persistence.NewGormScheduleRepository(db.DB)
	balanceRepo := persistence.NewGormDailyBalanceRepository(db.DB)

	// Token blacklist: Redis when reachable, in-memory otherwise
	blacklist := newTokenBlacklist(cfg, log)

	// Application services
	jwtService := auth.NewJWTService(cfg.JWT)
	authService := identityapp.NewAuthService(userRepo, jwtService, blacklist, cfg.Auth, log)
	customerService := ledgerapp.NewCustomerService(customerRepo, debtRepo, activityRepo, auditLogRepo, log)
	companyService := ledgerapp.NewCompanyService(companyRepo, debtRepo, activityRepo, auditLogRepo, log)
	debtService := ledgerapp.NewDebtService(debtRepo, customerRepo, companyRepo, activityRepo, auditLogRepo, log)
	activityService := ledgerapp.NewActivityService(activityRepo, auditLogRepo)

	scorer := planning.NewPriorityScorerWithOptions(planning.ScorerOptions{
		OverdueBoost:    cfg.Planning.OverdueBoost,
		CompletionBoost: cfg.Planning.CompletionBoost,
	})
	directory := persistence.NewGormPartyDirectory(companyRepo, customerRepo)
	planner := planning.NewPlanner(scorer, directory)
	planningService := planningapp.NewPlanningService(planner, planRepo, scheduleRepo, balanceRepo, log)
	planningService.SetConsolidationEnabled(cfg.Planning.ConsolidationEnabled)

	// HTTP handlers
	healthHandler := handler.NewHealthHandler(db, cfg.App.Name)
	authHandler := handler.NewAuthHandler(authService)
	customerHandler := handler.NewCustomerHandler(customerService)
	companyHandler := handler.NewCompanyHandler(companyService)
	debtHandler := handler.NewDebtHandler(debtService)
	activityHandler := handler.NewActivityHandler(activityService)
	planningHandler := handler.NewPlanningHandler(planningService)

	if cfg.App.Env == "production" {
		gin.SetMode(gin.ReleaseMode)
	}

	middleware.SetupValidator()

	engine := gin.New()
	if len(cfg.HTTP.TrustedProxies) > 0 {
		if err := engine.SetTrustedProxies(cfg.HTTP.TrustedProxies); err != nil {
			log.Warn("Failed to set trusted proxies", zap.Error(err))
		}
	}

	// Middleware order: request ID first so everything downstream can log it
	engine.Use(middleware.RequestID())
	engine.Use(logger.Recovery(log))
	engine.Use(logger.GinMiddleware(log))
	engine.Use(middleware.Secure())
	engine.Use(middleware.CORSWithConfig(middleware.CORSConfig{
		AllowOrigins:     cfg.HTTP.CORSAllowOrigins,
		AllowMethods:     cfg.HTTP.CORSAllowMethods,
		AllowHeaders:     cfg.HTTP.CORSAllowHeaders,
		ExposeHeaders:    []string{"X-Request-ID", "X-RateLimit-Limit", "X-RateLimit-Remaining"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}))
	engine.Use(middleware.BodyLimit(cfg.HTTP.MaxBodySize))

	if cfg.HTTP.RateLimitEnabled {
		rateLimiter := middleware.NewRateLimiter(cfg.HTTP.RateLimitRequests, cfg.HTTP.RateLimitWindow)
		engine.Use(middleware.RateLimit(rateLimiter))
		log.Info("Rate limiting enabled",
			zap.Int("requests", cfg.HTTP.RateLimitRequests),
			zap.Duration("window", cfg.HTTP.RateLimitWindow),
		)
	}

	jwtConfig := middleware.DefaultJWTConfig(jwtService)
	jwtConfig.TokenBlacklist = blacklist
	jwtConfig.Logger = log
	engine.Use(middleware.JWTAuthMiddlewareWithConfig(jwtConfig))

	r := router.NewRouter(engine, router.WithAPIVersion("v1"))
	r.RegisterRoot(healthHandler)
	r.Register(healthHandler).
		Register(authHandler).
		Register(customerHandler).
		Register(companyHandler).
		Register(debtHandler).
		Register(activityHandler).
		Register(planningHandler)
	r.Setup()

	srv := &http.Server{
		Addr:           ":" + cfg.App.Port,
		Handler:        engine,
		ReadTimeout:    cfg.HTTP.ReadTimeout,
		WriteTimeout:   cfg.HTTP.WriteTimeout,
		IdleTimeout:    cfg.HTTP.IdleTimeout,
		MaxHeaderBytes: cfg.HTTP.MaxHeaderBytes,
	}

	go func() {
		log.Info("Server starting", zap.String("addr", srv.Addr))
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatal("Failed to start server", zap.Error(err))
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	log.Info("Shutting down server...")

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		log.Fatal("Server forced to shutdown", zap.Error(err))
	}

	log.Info("Server exited gracefully")
}

// newTokenBlacklist prefers Redis so revocations survive restarts and
// are shared across instances. If Redis is unreachable at startup the
// in-memory fallback keeps auth working on a single instance.
func newTokenBlacklist(cfg *config.Config, log *zap.Logger) auth.TokenBlacklist {
	addr := fmt.Sprintf("%s:%d", cfg.Redis.Host, cfg.Redis.Port)
	client := redis.NewClient(&redis.Options{
		Addr:     addr,
		Password: cfg.Redis.Password,
		DB:       cfg.Redis.DB,
	})

	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	defer cancel()

	if err := client.Ping(ctx).Err(); err != nil {
		log.Warn("Redis unreachable, using in-memory token blacklist", zap.String("addr", addr), zap.Error(err))
		_ = client.Close()
		return auth.NewInMemoryTokenBlacklist()
	}

	log.Info("Token blacklist backed by Redis", zap.String("addr", addr))
	return auth.NewRedisTokenBlacklistWithClient(client)
}
