package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"hoteladmin/config"
	"hoteladmin/database"
	guestRepo "hoteladmin/database/repository/guest"
	paymentRepo "hoteladmin/database/repository/payment"
	roomRepo "hoteladmin/database/repository/room"
	"hoteladmin/handlers"
	"hoteladmin/middleware"
	"hoteladmin/routes"
	"hoteladmin/services/booking"
	"hoteladmin/services/guest"
	"hoteladmin/services/identity"
	"hoteladmin/services/room"
	"hoteladmin/services/session"
	"hoteladmin/templates"
	"hoteladmin/utils"

	firebase "firebase.google.com/go/v4"
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

func main() {
	config.LoadConfig()
	utils.InitializeLogger()
	logger := utils.GetLogger()
	cfg := config.AppConfig

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	var app *firebase.App
	if cfg.StoreDriver == config.StoreFirestore || cfg.AuthDriver == config.AuthFirebase {
		var err error
		app, err = utils.FirebaseInit(ctx, cfg)
		if err != nil {
			logger.Fatal("main: failed to initialize firebase", zap.Error(err))
		}
	}

	store, err := database.InitDB(ctx, cfg, app, logger)
	if err != nil {
		logger.Fatal("main: failed to open document store", zap.Error(err))
	}

	redisClient, err := utils.InitSessionCache(cfg)
	if err != nil {
		logger.Fatal("main: failed to connect session cache", zap.Error(err))
	}
	var sessionCache session.Cache
	if redisClient != nil {
		sessionCache = session.NewRedisCache(redisClient)
	}

	provider, err := newIdentityProvider(ctx, cfg, app, logger)
	if err != nil {
		logger.Fatal("main: failed to initialize identity provider", zap.Error(err))
	}
	gate := session.NewGate(provider, sessionCache, logger)

	images, err := utils.ImageStore(cfg)
	if err != nil {
		logger.Fatal("main: failed to initialize image storage", zap.Error(err))
	}

	// repositories.
	payments := paymentRepo.NewPaymentRepo(store, logger)
	rooms := roomRepo.NewRoomRepo(store, logger)
	guests := guestRepo.NewGuestRepo(store, logger)

	// services.
	bookings := booking.NewManager(payments, logger, booking.WithStrictDateOrder(cfg.BookingsStrictDateOrder))
	if err := bookings.LoadAll(ctx); err != nil {
		logger.Warn("main: initial booking load failed, the booked page will retry", zap.Error(err))
	}
	go bookings.Run(ctx, cfg.BookingsResyncInterval)

	roomService := room.NewRoomService(rooms, images, logger)
	guestService := guest.NewGuestService(guests, images, logger)

	checks := map[string]utils.HealthCheck{"store": store.Ping}
	if redisClient != nil {
		checks["redis"] = func(ctx context.Context) error { return redisClient.Ping(ctx).Err() }
	}
	utils.StartHealthMonitor(ctx, cfg.HealthCheckInterval, checks)

	tmpl, err := templates.Load()
	if err != nil {
		logger.Fatal("main: failed to parse templates", zap.Error(err))
	}

	if config.IsProduction() {
		gin.SetMode(gin.ReleaseMode)
	}
	router := gin.New()
	if err := router.SetTrustedProxies(cfg.TrustedProxies); err != nil {
		logger.Fatal("main: invalid TRUSTED_PROXIES", zap.Strings("proxies", cfg.TrustedProxies), zap.Error(err))
	}
	router.SetHTMLTemplate(tmpl)
	router.Use(utils.ErrorHandler())
	router.Use(middleware.RequestLogger(logger))
	router.Use(middleware.RateLimitMiddleware(cfg.MaxRequestsPerMin))
	router.Use(middleware.SessionMiddleware(gate, cfg.SessionCookieName, config.IsProduction()))

	handlerBundle := handlers.NewHandlerBundle(gate, bookings, roomService, guestService, handlers.CookieConfig{
		Name:   cfg.SessionCookieName,
		TTL:    cfg.SessionTTL,
		Secure: config.IsProduction(),
	})
	routes.RegisterRoutes(router, handlerBundle, routes.Options{
		LoginAttemptsPerMin: cfg.MaxLoginAttemptsPerMin,
		AllowedOrigins:      cfg.CORSAllowedOrigins,
	})

	port := cfg.AppPort
	if port == "" {
		port = "8080"
	}
	srv := &http.Server{
		Addr:              "0.0.0.0:" + port,
		Handler:           router,
		ReadHeaderTimeout: 10 * time.Second,
	}

	logger.Sugar().Infof("Starting server on %s...", srv.Addr)
	go func() {
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Sugar().Fatalf("main: server failed to start: %v", err)
		}
	}()

	// Wait for an OS signal to gracefully shutdown.
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	logger.Info("main: server is shutting down...")

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer shutdownCancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		logger.Error("main: server forced to shutdown", zap.Error(err))
	}

	cancel()
	gate.Close()
	if redisClient != nil {
		if err := redisClient.Close(); err != nil {
			logger.Warn("main: closing redis", zap.Error(err))
		}
	}
	if err := store.Close(shutdownCtx); err != nil {
		logger.Warn("main: closing document store", zap.Error(err))
	}

	logger.Info("main: server stopped gracefully")
	_ = logger.Sync()
}

func newIdentityProvider(ctx context.Context, cfg config.Config, app *firebase.App, logger *zap.Logger) (identity.Provider, error) {
	switch cfg.AuthDriver {
	case config.AuthFirebase:
		if cfg.FirebaseAPIKey == "" {
			return nil, errors.New("FIREBASE_API_KEY is required by the firebase auth driver")
		}
		return identity.NewFirebaseProvider(ctx, app, cfg.FirebaseAPIKey, cfg.SessionTTL, logger)
	case config.AuthLocal:
		if cfg.LocalAdminPassword == "" {
			return nil, errors.New("LOCAL_ADMIN_PASSWORD is required by the local auth driver")
		}
		p := identity.NewLocalProvider(cfg.SessionTTL, logger)
		p.AddAccount(cfg.LocalAdminEmail, cfg.LocalAdminPassword)
		logger.Warn("Using local staff accounts", zap.String("email", cfg.LocalAdminEmail))
		return p, nil
	default:
		return nil, fmt.Errorf("unknown AUTH_DRIVER %q", cfg.AuthDriver)
	}
}
