package main

import (
	"context"
	"errors"
	"net/http"
	"os/signal"
	"syscall"
	"time"

	_ "sellos/api/swagger" // swagger docs
	"sellos/internal/config"
	"sellos/internal/database"
	"sellos/internal/handler"
	"sellos/internal/logger"
	"sellos/internal/metrics"
	"sellos/internal/middleware"
	"sellos/internal/repository"
	"sellos/internal/service"
	"sellos/internal/websocket"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/rs/zerolog/log"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
)

// @title           Sellos API
// @version         1.0
// @description     Stamp-duty (sellado) liquidation and registration service.
// @host            localhost:8080
// @BasePath        /
// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatal().Err(err).Msg("failed to load config")
	}

	if err := logger.Setup(logger.LogConfig{
		Level:  cfg.Log.Level,
		Format: cfg.Log.Format,
		Output: cfg.Log.Output,
	}); err != nil {
		log.Fatal().Err(err).Msg("failed to set up logger")
	}

	if cfg.Server.Environment == "production" {
		gin.SetMode(gin.ReleaseMode)
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	db, err := database.NewConnection(cfg.DB.DSN(), database.PoolConfig{
		MaxOpen: cfg.DB.MaxOpen,
		MaxIdle: cfg.DB.MaxIdle,
	})
	if err != nil {
		log.Fatal().Err(err).Msg("failed to connect to database")
	}

	reg := prometheus.NewRegistry()
	reg.MustRegister(collectors.NewGoCollector(), collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}))
	m := metrics.New(reg)

	wsHub := websocket.NewHub()
	go wsHub.Run(ctx)

	verifier := middleware.NewTokenVerifier(cfg.JWT.Secret, cfg.JWT.Issuer)

	// Repositories
	txManager := repository.NewTransactionManager(db)
	catalogRepo := repository.NewCatalogRepository(db)
	clientRepo := repository.NewClientRepository(db)
	recordRepo := repository.NewStampRecordRepository(db)
	auditRepo := repository.NewAuditRepository(db)

	// Services
	auditService := service.NewAuditService(auditRepo)
	catalogService := service.NewCatalogService(catalogRepo, clientRepo, auditService)
	partyService := service.NewPartyService(clientRepo)
	stampService := service.NewStampService(
		txManager, recordRepo, clientRepo,
		catalogService, partyService, auditService,
		wsHub, m,
		service.StampServiceConfig{Location: cfg.Form.Location()},
	)

	if err := catalogService.EnsureDefaults(ctx); err != nil {
		log.Fatal().Err(err).Msg("failed to seed catalog defaults")
	}

	// Handlers
	catalogHandler := handler.NewCatalogHandler(catalogService, verifier)
	partyHandler := handler.NewPartyHandler(partyService, verifier)
	stampHandler := handler.NewStampHandler(stampService, verifier)
	auditHandler := handler.NewAuditHandler(auditService, verifier)

	router := gin.New()
	router.Use(gin.Recovery(), middleware.RequestID(), middleware.Logger(), middleware.Metrics(m))

	corsConfig := cors.DefaultConfig()
	corsConfig.AllowOrigins = cfg.CORS.AllowedOrigins
	corsConfig.AllowHeaders = []string{"Origin", "Content-Length", "Content-Type", "Authorization", "X-Request-ID"}
	corsConfig.AllowMethods = []string{"GET", "POST", "OPTIONS"}
	corsConfig.ExposeHeaders = []string{"Content-Disposition", "X-Request-ID"}
	router.Use(cors.New(corsConfig))

	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
	router.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "OK"})
	})
	router.GET("/metrics", gin.WrapH(m.Handler()))
	router.GET("/ws", func(c *gin.Context) {
		websocket.ServeWs(wsHub, verifier, c)
	})

	api := router.Group("")
	catalogHandler.RegisterRoutes(api)
	partyHandler.RegisterRoutes(api)
	stampHandler.RegisterRoutes(api)
	auditHandler.RegisterRoutes(api)

	srv := &http.Server{
		Addr:         cfg.Server.Port,
		Handler:      router,
		ReadTimeout:  cfg.Server.ReadTimeout,
		WriteTimeout: cfg.Server.WriteTimeout,
	}

	go func() {
		log.Info().Str("addr", srv.Addr).Msg("server starting")
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatal().Err(err).Msg("failed to run server")
		}
	}()

	<-ctx.Done()
	log.Info().Msg("shutting down")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Error().Err(err).Msg("graceful shutdown failed")
	}
}
