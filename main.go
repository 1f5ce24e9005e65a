package main

import (
	"log"
	"net/http"

	"github.com/labstack/echo/v5"
	"github.com/pocketbase/pocketbase"
	"github.com/pocketbase/pocketbase/apis"
	"github.com/pocketbase/pocketbase/core"
	"github.com/pocketbase/pocketbase/plugins/migratecmd"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	pubnub "github.com/pubnub/go"
	"github.com/redis/go-redis/v9"

	"eventdesk/config"
	"eventdesk/handlers"
	_ "eventdesk/migrations"
	"eventdesk/monitoring"
	"eventdesk/security"
	"eventdesk/services"
	"eventdesk/utils"
)

func main() {
	app := pocketbase.New()

	// Load configuration
	cfg := config.LoadConfig()

	// Initialize Redis (optional; login throttling degrades gracefully
	// without it)
	var redisClient *redis.Client
	var limiter *security.RateLimiter
	if cfg.RedisURL != "" {
		redisClient = utils.NewRedisClient(cfg.RedisURL)
		defer redisClient.Close()
		limiter = security.NewRateLimiter(redisClient, cfg.LoginAttemptLimit, cfg.LoginAttemptWindow)
	}

	// Initialize PubNub (optional; notifications still persist without it)
	var pn *pubnub.PubNub
	if cfg.PubNubPublishKey != "" && cfg.PubNubSubscribeKey != "" {
		pnConfig := pubnub.NewConfig()
		pnConfig.PublishKey = cfg.PubNubPublishKey
		pnConfig.SubscribeKey = cfg.PubNubSubscribeKey
		pnConfig.SecretKey = cfg.PubNubSecretKey
		pn = pubnub.NewPubNub(pnConfig)
	}

	var monitor *monitoring.Monitor
	if cfg.EnableMetrics {
		monitor = monitoring.NewMonitor()
		go serveMetrics(cfg.MetricsPort)
	}

	// Initialize services
	eventService := services.NewEventService(app, monitor)
	venueService := services.NewVenueService(app, monitor)
	authService := services.NewAuthService(app, cfg.PublicBaseURL, monitor)
	userService := services.NewUserService(app, authService, cfg.PublicBaseURL, monitor)
	notificationService := services.NewNotificationService(app, pn, monitor)
	reportService := services.NewReportService(app, eventService)

	// Initialize handlers
	authHandler := handlers.NewAuthHandler(authService, limiter)
	eventHandler := handlers.NewEventHandler(eventService)
	venueHandler := handlers.NewVenueHandler(venueService)
	userHandler := handlers.NewUserHandler(userService)
	notificationHandler := handlers.NewNotificationHandler(notificationService)
	reportHandler := handlers.NewReportHandler(reportService)

	migratecmd.MustRegister(app, app.RootCmd, migratecmd.Config{
		Automigrate: cfg.Environment == "development",
	})

	app.OnServe().BindFunc(func(se *core.ServeEvent) error {
		if limiter != nil {
			se.Router.BindFunc(func(e *core.RequestEvent) error {
				if limiter.IsSuspiciousUserAgent(e.Request.UserAgent()) {
					return e.JSON(http.StatusForbidden, map[string]string{"error": "Access denied"})
				}
				return e.Next()
			})
		}

		se.Router.GET("/health", func(e *core.RequestEvent) error {
			health := map[string]string{"status": "ok"}
			if redisClient != nil {
				if err := utils.RedisHealthCheck(redisClient); err != nil {
					health["status"] = "degraded"
					health["redis"] = err.Error()
				} else {
					health["redis"] = "ok"
				}
			}
			return e.JSON(http.StatusOK, health)
		})

		auth := apis.RequireAuth()

		se.Router.POST("/api/v1/auth/login", authHandler.Login)
		se.Router.POST("/api/v1/auth/register", authHandler.Register)
		se.Router.POST("/api/v1/auth/logout", authHandler.Logout).Bind(auth)
		se.Router.GET("/api/v1/auth/me", authHandler.Me).Bind(auth)
		se.Router.GET("/api/v1/auth/session", authHandler.Session)
		se.Router.POST("/api/v1/auth/avatar", authHandler.UploadAvatar).Bind(auth)
		se.Router.POST("/api/v1/auth/password", authHandler.ChangePassword).Bind(auth)

		se.Router.GET("/api/v1/events", eventHandler.List)
		se.Router.GET("/api/v1/events/{id}", eventHandler.Get)
		se.Router.POST("/api/v1/events", eventHandler.Create).Bind(auth)
		se.Router.PATCH("/api/v1/events/{id}", eventHandler.Update).Bind(auth)
		se.Router.DELETE("/api/v1/events/{id}", eventHandler.Delete).Bind(auth)

		se.Router.GET("/api/v1/venues", venueHandler.List)
		se.Router.GET("/api/v1/venues/{id}", venueHandler.Get)
		se.Router.POST("/api/v1/venues", venueHandler.Create).Bind(auth)
		se.Router.PATCH("/api/v1/venues/{id}", venueHandler.Update).Bind(auth)
		se.Router.DELETE("/api/v1/venues/{id}", venueHandler.Delete).Bind(auth)

		se.Router.GET("/api/v1/organizers", userHandler.Organizers)
		se.Router.GET("/api/v1/attendees", userHandler.Attendees)
		se.Router.GET("/api/v1/users/{id}", userHandler.Get).Bind(auth)
		se.Router.POST("/api/v1/users", userHandler.Create).Bind(auth)
		se.Router.PATCH("/api/v1/users/{id}", userHandler.Update).Bind(auth)
		se.Router.DELETE("/api/v1/users/{id}", userHandler.Delete).Bind(auth)

		se.Router.GET("/api/v1/notifications", notificationHandler.List).Bind(auth)
		se.Router.POST("/api/v1/notifications", notificationHandler.Create).Bind(auth)
		se.Router.PATCH("/api/v1/notifications/{id}/read", notificationHandler.MarkRead).Bind(auth)
		se.Router.POST("/api/v1/notifications/read-all", notificationHandler.MarkAllRead).Bind(auth)
		se.Router.DELETE("/api/v1/notifications/{id}", notificationHandler.Delete).Bind(auth)
		se.Router.DELETE("/api/v1/notifications", notificationHandler.ClearAll).Bind(auth)

		se.Router.GET("/api/v1/dashboard/summary", reportHandler.Dashboard).Bind(auth)
		se.Router.GET("/api/v1/reports/analytics", reportHandler.Analytics).Bind(auth)

		return se.Next()
	})

	if err := app.Start(); err != nil {
		log.Fatal(err)
	}
}

// serveMetrics exposes the Prometheus registry on a side listener so
// scrapes never contend with client traffic.
func serveMetrics(port string) {
	e := echo.New()
	e.GET("/metrics", echo.WrapHandler(promhttp.Handler()))
	e.GET("/health", func(c echo.Context) error {
		return c.JSON(http.StatusOK, map[string]string{"status": "ok"})
	})
	server := &http.Server{Addr: ":" + port, Handler: e}
	if err := server.ListenAndServe(); err != nil {
		log.Printf("metrics listener stopped: %v", err)
	}
}
