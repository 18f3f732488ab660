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
	"go.uber.org/zap"

	billingapp "github.com/finvoice/backend/internal/application/billing"
	catalogapp "github.com/finvoice/backend/internal/application/catalog"
	identityapp "github.com/finvoice/backend/internal/application/identity"
	reportapp "github.com/finvoice/backend/internal/application/report"
	"github.com/finvoice/backend/internal/infrastructure/auth"
	"github.com/finvoice/backend/internal/infrastructure/config"
	"github.com/finvoice/backend/internal/infrastructure/logger"
	"github.com/finvoice/backend/internal/infrastructure/mail"
	"github.com/finvoice/backend/internal/infrastructure/persistence"
	"github.com/finvoice/backend/internal/interfaces/http/handler"
	"github.com/finvoice/backend/internal/interfaces/http/middleware"
	"github.com/finvoice/backend/internal/interfaces/http/router"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to load config: %v\n", err)
		os.Exit(1)
	}

	log, err := logger.New(&logger.Config{
		Level:      cfg.Log.Level,
		Format:     cfg.Log.Format,
		Output:     cfg.Log.Output,
		TimeFormat: "2006-01-02T15:04:05.000Z07:00",
	})
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to initialize logger: %v\n", err)
		os.Exit(1)
	}
	defer logger.Sync(log)

	log.Info("Starting server",
		zap.String("app", cfg.App.Name),
		zap.String("env", cfg.App.Env),
		zap.String("port", cfg.App.Port),
	)

	gormLog := logger.NewGormLogger(log, logger.MapGormLogLevel(cfg.Log.Level))
	database, err := persistence.NewDatabaseWithLogger(&cfg.Database, gormLog)
	if err != nil {
		log.Fatal("Failed to connect to database", zap.Error(err))
	}
	defer database.Close()

	var blacklist auth.TokenBlacklist
	redisBlacklist, err := auth.NewRedisTokenBlacklist(auth.RedisTokenBlacklistConfig{
		Addr:     cfg.Redis.Addr(),
		Password: cfg.Redis.Password,
		DB:       cfg.Redis.DB,
	})
	if err != nil {
		if cfg.App.IsProduction() {
			log.Fatal("Failed to connect to Redis", zap.Error(err))
		}
		log.Warn("Redis unavailable, using in-memory token blacklist", zap.Error(err))
		blacklist = auth.NewInMemoryTokenBlacklist()
	} else {
		blacklist = redisBlacklist
		defer redisBlacklist.Close()
	}

	jwtService := auth.NewJWTService(cfg.JWT)
	mailer := mail.NewSMTPSender(cfg.SMTP, log)

	companyRepo := persistence.NewGormCompanyRepository(database.DB)
	employeeRepo := persistence.NewGormEmployeeRepository(database.DB)
	categoryRepo := persistence.NewGormCategoryRepository(database.DB)
	productRepo := persistence.NewGormProductRepository(database.DB)
	organizationRepo := persistence.NewGormOrganizationRepository(database.DB)
	invoiceRepo := persistence.NewGormInvoiceRepository(database.DB)
	reportRepo := persistence.NewGormInvoiceReportRepository(database.DB)

	authService := identityapp.NewAuthService(companyRepo, employeeRepo, jwtService, blacklist, mailer)
	companyService := identityapp.NewCompanyService(companyRepo)
	employeeService := identityapp.NewEmployeeService(employeeRepo)
	categoryService := catalogapp.NewCategoryService(categoryRepo)
	productService := catalogapp.NewProductService(productRepo, categoryRepo)
	organizationService := billingapp.NewOrganizationService(organizationRepo)
	invoiceService := billingapp.NewInvoiceService(invoiceRepo, organizationRepo, employeeRepo, companyRepo, productRepo, mailer)
	reportService := reportapp.NewReportService(reportRepo)

	if cfg.App.IsProduction() {
		gin.SetMode(gin.ReleaseMode)
	}
	middleware.SetupValidator()
	corsConfig := middleware.DefaultCORSConfig()
	corsConfig.AllowOrigins = cfg.HTTP.CORSAllowOrigins
	corsConfig.AllowMethods = cfg.HTTP.CORSAllowMethods
	corsConfig.AllowHeaders = cfg.HTTP.CORSAllowHeaders

	engine := gin.New()
	engine.Use(
		middleware.RequestID(),
		logger.Recovery(log),
		logger.GinMiddleware(log),
		logger.ContextMiddleware(log),
		middleware.Secure(),
		middleware.CORSWithConfig(corsConfig),
	)

	healthHandler := handler.NewHealthHandler(database.DB)
	engine.GET("/health", healthHandler.Health)

	jwtConfig := middleware.DefaultJWTConfig(jwtService)
	jwtConfig.TokenBlacklist = blacklist
	jwtConfig.Logger = log

	router.NewRouter(engine, router.WithAPIVersion("v1")).
		Use(middleware.JWTAuthMiddlewareWithConfig(jwtConfig)).
		Register(healthHandler).
		Register(handler.NewAuthHandler(authService, employeeService)).
		Register(handler.NewCompanyHandler(companyService)).
		Register(handler.NewEmployeeHandler(employeeService, authService)).
		Register(handler.NewCategoryHandler(categoryService)).
		Register(handler.NewProductHandler(productService)).
		Register(handler.NewOrganizationHandler(organizationService)).
		Register(handler.NewInvoiceHandler(invoiceService)).
		Register(handler.NewReportHandler(reportService)).
		Setup()

	srv := &http.Server{
		Addr:           ":" + cfg.App.Port,
		Handler:        engine,
		ReadTimeout:    cfg.HTTP.ReadTimeout,
		WriteTimeout:   cfg.HTTP.WriteTimeout,
		IdleTimeout:    cfg.HTTP.IdleTimeout,
		MaxHeaderBytes: cfg.HTTP.MaxHeaderBytes,
	}

	go func() {
		log.Info("HTTP server listening", zap.String("addr", srv.Addr))
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatal("HTTP server error", zap.Error(err))
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info("Shutting down server")
	ctx, cancel := context.WithTimeout(context.Background(), 15*time.Second)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		log.Error("Forced shutdown", zap.Error(err))
	}
	log.Info("Server stopped")
}
