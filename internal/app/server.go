package app

import (
	"context"
	"fmt"
	"net/http"
	"time"

	"vos-erp-service/internal/config"
	"vos-erp-service/internal/db"
	authHandler "vos-erp-service/internal/handlers/auth"
	customerHandler "vos-erp-service/internal/handlers/customer"
	lookupHandler "vos-erp-service/internal/handlers/lookup"
	supplierHandler "vos-erp-service/internal/handlers/supplier"
	userHandler "vos-erp-service/internal/handlers/user"
	"vos-erp-service/internal/middleware"
	"vos-erp-service/internal/pkg/session"
	"vos-erp-service/internal/pkg/token"
	"vos-erp-service/internal/repository/postgres"
	authUsecase "vos-erp-service/internal/service/auth"
	customerUsecase "vos-erp-service/internal/service/customer"
	lookupUsecase "vos-erp-service/internal/service/lookup"
	supplierUsecase "vos-erp-service/internal/service/supplier"
	userUsecase "vos-erp-service/internal/service/user"

	"github.com/gin-gonic/gin"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"
)

type Server struct {
	cfg    config.AppConfig
	engine *gin.Engine
	logger *zap.Logger
	http   *http.Server

	pool        *pgxpool.Pool
	redisClient *redis.Client
}

func NewServer() *Server {
	cfg := config.Load()
	if cfg.Production {
		gin.SetMode(gin.ReleaseMode)
	}
	return &Server{cfg: cfg, engine: gin.New()}
}

func (s *Server) Start() error {
	ctx := context.Background()

	// ----- Logger -----
	var logger *zap.Logger
	var err error
	if s.cfg.Production {
		logger, err = zap.NewProduction()
	} else {
		logger, err = zap.NewDevelopment()
	}
	if err != nil {
		return fmt.Errorf("failed to build logger: %w", err)
	}
	s.logger = logger

	// ----- PostgreSQL -----
	pool, err := db.ConnectDB(ctx, s.cfg.DatabaseURL)
	if err != nil {
		return fmt.Errorf("failed to connect to PostgreSQL: %w", err)
	}
	s.pool = pool

	// ----- Redis -----
	// The gate cache and the login rate limiter degrade gracefully without
	// Redis, so a connection failure is logged rather than fatal.
	redisClient, err := db.NewRedisClient(db.RedisConfig{
		Addr:     s.cfg.RedisAddr,
		Password: s.cfg.RedisPass,
		DB:       0,
		PoolSize: 10,
	})
	if err != nil {
		logger.Warn("redis unavailable, gate cache and rate limiting disabled", zap.Error(err))
		redisClient = nil
	}
	s.redisClient = redisClient

	// ----- Token manager -----
	tokenManager, err := token.NewManager(s.cfg.Token)
	if err != nil {
		return fmt.Errorf("failed to build token manager: %w", err)
	}

	// ----- Session cache & rate limiter -----
	sessionCache := session.NewCache(redisClient, s.cfg.GateCacheTTL)
	rateLimiter := session.NewRateLimiter(redisClient)

	// ----- Repositories -----
	userRepo := postgres.NewUserRepository(pool)
	customerRepo := postgres.NewCustomerRepository(pool)
	supplierRepo := postgres.NewSupplierRepository(pool)
	lookupRepo := postgres.NewLookupRepository(pool)

	// ----- Services -----
	authService := authUsecase.NewService(userRepo, tokenManager, sessionCache, rateLimiter, logger)
	userService := userUsecase.NewUserService(userRepo, logger)
	customerService := customerUsecase.NewCustomerService(customerRepo, logger)
	supplierService := supplierUsecase.NewSupplierService(supplierRepo, logger)
	lookupService := lookupUsecase.NewLookupService(lookupRepo, logger)

	// ----- Handlers -----
	cookies := &authHandler.CookieWriter{
		AccessName:  s.cfg.AccessCookie,
		RefreshName: s.cfg.RefreshCookie,
		AccessTTL:   s.cfg.Token.AccessTTL,
		RefreshTTL:  s.cfg.Token.RefreshTTL,
		Secure:      s.cfg.Production,
	}
	authHandlerInst := authHandler.NewAuthHandler(authService, cookies, logger)
	userHandlerInst := userHandler.NewUserHandler(userService, logger)
	customerHandlerInst := customerHandler.NewCustomerHandler(customerService, logger)
	supplierHandlerInst := supplierHandler.NewSupplierHandler(supplierService, logger)
	lookupHandlerInst := lookupHandler.NewLookupHandler(lookupService, logger)

	// ----- Middlewares -----
	authMiddleware := middleware.NewAuthMiddleware(authService, authService, s.cfg.AccessCookie)
	gate := middleware.NewRequestGate(
		authService,
		authService,
		cookies,
		s.cfg.ProtectedPrefixes,
		s.cfg.LoginPath,
		s.cfg.AccessCookie,
		logger,
	)

	s.engine.Use(
		middleware.RecoveryMiddleware(logger),
		middleware.LoggingMiddleware(logger),
		middleware.CORSMiddleware(s.cfg.CORSOrigins),
		gate.Handle(),
	)

	// ----- Router -----
	handlers := &Handlers{
		AuthHandler:     authHandlerInst,
		UserHandler:     userHandlerInst,
		CustomerHandler: customerHandlerInst,
		SupplierHandler: supplierHandlerInst,
		LookupHandler:   lookupHandlerInst,
		AuthMiddleware:  authMiddleware,
	}
	SetupRouter(s.engine, handlers)

	s.http = &http.Server{
		Addr:    s.cfg.HTTPAddr,
		Handler: s.engine,
	}

	logger.Info("server starting", zap.String("addr", s.cfg.HTTPAddr))
	if err := s.http.ListenAndServe(); err != nil && err != http.ErrServerClosed {
		return err
	}
	return nil
}

// Shutdown drains in-flight requests and closes the store connections.
func (s *Server) Shutdown(ctx context.Context) error {
	var err error
	if s.http != nil {
		shutdownCtx, cancel := context.WithTimeout(ctx, 10*time.Second)
		defer cancel()
		err = s.http.Shutdown(shutdownCtx)
	}

	if s.redisClient != nil {
		_ = s.redisClient.Close()
	}
	if s.pool != nil {
		s.pool.Close()
	}
	if s.logger != nil {
		_ = s.logger.Sync()
	}
	return err
}
