package server

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"community-events-api/core/cache"
	"community-events-api/core/config"
	"community-events-api/core/constants"
	"community-events-api/core/database"
	"community-events-api/core/logger"
	"community-events-api/core/middleware"
	"community-events-api/core/taskqueue"
	"community-events-api/core/validation"
	"community-events-api/modules/engagement"
	"community-events-api/modules/event"
	"community-events-api/modules/moderation"
	"community-events-api/modules/registration"

	"github.com/labstack/echo/v4"
	echoMiddleware "github.com/labstack/echo/v4/middleware"
)

// Run wires configuration, storage, cache, queue and all modules, then serves
// until interrupted.
func Run() error {
	config.Load()
	logger.Init(config.Get("LOG_LEVEL"), config.GetBool("LOG_PRETTY"))

	db, err := database.InitDB(database.DatabaseConfig{
		Host:          config.Get("DB_HOST"),
		Port:          config.GetInt("DB_PORT"),
		User:          config.Get("DB_USER"),
		Password:      config.Get("DB_PASSWORD"),
		DBName:        config.Get("DB_NAME"),
		SSLMode:       config.Get("DB_SSLMODE"),
		MigrationsDir: config.Get("MIGRATIONS_DIR"),
	})
	if err != nil {
		return err
	}

	if err := cache.InitCache(cache.CacheConfig{
		Addr:     config.Get("REDIS_ADDR"),
		Password: config.Get("REDIS_PASSWORD"),
		DB:       config.GetInt("REDIS_DB"),
	}); err != nil {
		logger.Warn("Running without redis cache", "error", err)
	}
	defer cache.Close()

	tasks := taskqueue.NewClient(config.Get("REDIS_ADDR"), config.Get("REDIS_PASSWORD"), config.GetInt("REDIS_DB"))
	defer tasks.Close()

	e := echo.New()
	e.HideBanner = true
	e.Validator = validation.New()

	e.Use(echoMiddleware.Recover())
	e.Use(echoMiddleware.RequestID())
	e.Use(echoMiddleware.CORS())
	e.Use(echoMiddleware.TimeoutWithConfig(echoMiddleware.TimeoutConfig{
		Timeout: constants.DefaultRequestTimeout,
	}))

	e.GET("/healthz", func(c echo.Context) error {
		return c.JSON(http.StatusOK, map[string]string{"status": "ok"})
	})

	mw := middleware.NewMiddleware()

	event.Init(e, &db, mw, tasks)
	moderation.Init(e, &db, mw, tasks)
	registration.Init(e, &db, mw)
	engagement.Init(e, &db, mw)

	go func() {
		addr := ":" + config.Get("SERVER_PORT")
		if err := e.Start(addr); err != nil && err != http.ErrServerClosed {
			logger.Fatal("Server stopped unexpectedly", "error", err)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	logger.Info("Shutting down server...")
	ctx, cancel := context.WithTimeout(context.Background(), constants.ShutdownTimeout)
	defer cancel()
	return e.Shutdown(ctx)
}
