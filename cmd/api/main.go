package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	_ "contracting-cms/api/swagger" // swagger docs
	"contracting-cms/internal/config"
	"contracting-cms/internal/database"
	"contracting-cms/internal/handler"
	"contracting-cms/internal/logger"
	"contracting-cms/internal/middleware"
	"contracting-cms/internal/permission"
	"contracting-cms/internal/repository"
	"contracting-cms/internal/seed"
	"contracting-cms/internal/service"
	"contracting-cms/internal/websocket"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
	"go.uber.org/zap"
)

// @title           Contracting CMS API
// @version         1.0
// @description     Bilingual (English/Arabic) content API for a construction and contracting company website.
// @host            localhost:8080
// @BasePath        /
// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
func main() {
	cfg, err := config.Load("configs/.env")
	if err != nil {
		panic(err)
	}

	log, err := logger.New(cfg.LogLevel, cfg.LogFormat)
	if err != nil {
		panic(err)
	}
	defer func() { _ = log.Sync() }()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	db, err := database.NewConnection(cfg.DSN(), log)
	if err != nil {
		log.Fatal("database connection failed", zap.Error(err))
	}
	log.Info("connected to PostgreSQL")

	if cfg.SeedOnStart {
		if err := seed.New(db, log).Run(ctx); err != nil {
			log.Fatal("seeding failed", zap.Error(err))
		}
	}

	// Set up WebSocket hub, relayed through Redis when several instances run
	hub := websocket.NewHub(log)
	go hub.Run(ctx)
	if cfg.RedisAddr != "" {
		rdb := redis.NewClient(&redis.Options{Addr: cfg.RedisAddr, Password: cfg.RedisPassword, DB: cfg.RedisDB})
		defer rdb.Close()
		relay := websocket.NewRelay(rdb, websocket.DefaultChannel, hub, log)
		hub.UseRelay(relay)
		go relay.Run(ctx)
	}

	// Repository -> Service -> Handler
	auditService := service.NewAuditService(repository.NewAuditRepository(db))
	deps := service.Deps{
		DB:       db,
		Tx:       repository.NewTransactionManager(db),
		Audit:    auditService,
		Notifier: hub,
		Log:      log,
	}
	gate := permission.NewGate(repository.NewRoleRepository(db))
	services := handler.Services{
		Catalog:  service.NewCatalog(deps),
		Roles:    service.NewRoleService(deps),
		Accounts: service.NewAccountService(deps),
		Search:   service.NewSearchService(repository.NewSearchRepository(db), log),
		Audit:    auditService,
		Stats:    service.NewStatisticsService(repository.NewStatisticsRepository(db)),
	}

	gin.SetMode(cfg.GinMode)
	router := gin.New()
	router.Use(logger.GinLogger(log), gin.Recovery())

	corsConfig := cors.DefaultConfig()
	corsConfig.AllowOrigins = cfg.Origins()
	corsConfig.AllowCredentials = true
	corsConfig.AllowHeaders = []string{"Origin", "Content-Length", "Content-Type", "Authorization", "Accept"}
	corsConfig.AllowMethods = []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"}
	router.Use(cors.New(corsConfig))

	router.Use(middleware.Authenticate([]byte(cfg.AuthJWTSecret), repository.NewAccountRepository(db), log))

	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
	router.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "OK"})
	})
	router.GET("/ws", func(c *gin.Context) {
		websocket.ServeWs(hub, c)
	})

	handler.Register(router.Group(""), services, gate)

	srv := &http.Server{
		Addr:              ":" + cfg.Port,
		Handler:           router,
		ReadHeaderTimeout: 10 * time.Second,
	}
	go func() {
		log.Info("server listening", zap.String("port", cfg.Port))
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatal("server failed", zap.Error(err))
		}
	}()

	<-ctx.Done()
	log.Info("shutting down")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Error("graceful shutdown failed", zap.Error(err))
	}
}
