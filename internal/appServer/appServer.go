package appServer

import (
	"context"
	"crypto/tls"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"

	"github.com/scxttalex/areabooker/config"
	repository "github.com/scxttalex/areabooker/internal/database/postgres"
	rediscache "github.com/scxttalex/areabooker/internal/database/redis"
	"github.com/scxttalex/areabooker/internal/service"
	"github.com/scxttalex/areabooker/internal/transport"
	"github.com/scxttalex/areabooker/internal/worker"
	"github.com/scxttalex/areabooker/pkg/postgres"
	"github.com/scxttalex/areabooker/pkg/redis"
)

type Server struct {
	httpServer *http.Server
}

func (s *Server) Run(cfg *config.Config, handler http.Handler) error {
	s.httpServer = &http.Server{
		Addr:              ":" + cfg.Server.Port,
		Handler:           handler,
		MaxHeaderBytes:    1 << 20,
		ReadTimeout:       10 * time.Second,
		WriteTimeout:      cfg.Server.Timeout,
		IdleTimeout:       cfg.Server.IdleTimeout,
		ReadHeaderTimeout: 3 * time.Second,
		TLSConfig:         &tls.Config{MinVersion: tls.VersionTLS12},
		ErrorLog:          log.New(os.Stderr, "SERVER ERROR: ", log.LstdFlags),
	}
	return s.httpServer.ListenAndServe()
}

func (s *Server) Shutdown(ctx context.Context) error {
	return s.httpServer.Shutdown(ctx)
}

func NewServer(cfg *config.Config) {
	logrus.SetFormatter(&logrus.JSONFormatter{})
	logrus.SetOutput(os.Stdout)
	logrus.SetLevel(logrus.InfoLevel)

	db, err := postgres.NewPostgresDB(&cfg.Database)
	if err != nil {
		logrus.Fatalf("Failed to initialize database: %v", err)
	}
	defer db.Close()

	if err := postgres.RunMigrations(db); err != nil {
		logrus.Fatalf("Failed to run migrations: %v", err)
	}

	areaRepo := repository.NewAreaRepository(db)
	addonRepo := repository.NewAddonRepository(db)
	userRepo := repository.NewUserRepository(db)
	bookingRepo := repository.NewBookingRepository(db)

	var cache *rediscache.CacheRepository
	if cfg.Redis.Enabled {
		redisClient := redis.NewRedisClient(&cfg.Redis)
		defer redisClient.Close()
		cache = rediscache.NewCacheRepository(redisClient, cfg.Analytics.CacheTTL)
		logrus.Info("Dashboard cache enabled")
	} else {
		logrus.Warn("Redis disabled, dashboards recomputed per request")
	}

	// The concrete *CacheRepository must not leak into the services as a
	// typed-nil interface when Redis is off.
	var invalidator service.DashboardInvalidator
	if cache != nil {
		invalidator = cache
	}

	bookingService := service.NewBookingService(bookingRepo, areaRepo, addonRepo, userRepo, invalidator)
	areaService := service.NewAreaService(areaRepo, invalidator)
	addonService := service.NewAddonService(addonRepo)
	userService := service.NewUserService(userRepo)
	calendarService := service.NewCalendarService(bookingRepo)
	analyticsService := service.NewAnalyticsService(
		bookingRepo, areaRepo, addonRepo, userRepo, cache, cfg.Analytics.PageSize)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	if cache != nil {
		refreshWorker := worker.NewDashboardRefreshWorker(analyticsService, cfg.Worker.RefreshInterval)
		go refreshWorker.Start(ctx)
		logrus.Info("Dashboard refresh worker started")
	}

	handlers := transport.Handlers{
		Booking:   transport.NewBookingHandler(bookingService),
		Area:      transport.NewAreaHandler(areaService, bookingService),
		Addon:     transport.NewAddonHandler(addonService),
		User:      transport.NewUserHandler(userService),
		Calendar:  transport.NewCalendarHandler(calendarService),
		Analytics: transport.NewAnalyticsHandler(analyticsService),
	}

	if cfg.Server.Mode == "release" || cfg.Server.Env == "production" {
		gin.SetMode(gin.ReleaseMode)
	}

	srv := new(Server)
	go func() {
		if err := srv.Run(cfg, transport.InitRoutes(handlers)); err != nil && err != http.ErrServerClosed {
			logrus.Fatalf("error occured while running http server: %s", err.Error())
		}
	}()

	logrus.Print("App Started")

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGTERM, syscall.SIGINT)
	<-quit

	logrus.Print("App Shutting Down")

	if err := srv.Shutdown(context.Background()); err != nil {
		logrus.Errorf("error occured on server shutting down: %s", err.Error())
	}
}
