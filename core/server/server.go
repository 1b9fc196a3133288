package server

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"github.com/darkr4m/actually-star-k9/core/cache"
	"github.com/darkr4m/actually-star-k9/core/config"
	"github.com/darkr4m/actually-star-k9/core/constants"
	"github.com/darkr4m/actually-star-k9/core/database"
	"github.com/darkr4m/actually-star-k9/core/logger"
	"github.com/darkr4m/actually-star-k9/core/middleware"
	"github.com/darkr4m/actually-star-k9/core/storage"
	"github.com/darkr4m/actually-star-k9/core/tasks"
	"github.com/darkr4m/actually-star-k9/core/utils"
	"github.com/darkr4m/actually-star-k9/modules/calendar"
	"github.com/darkr4m/actually-star-k9/modules/clients"
	"github.com/darkr4m/actually-star-k9/modules/dogs"
	"github.com/darkr4m/actually-star-k9/modules/googleauth"
	"github.com/darkr4m/actually-star-k9/modules/users"

	"github.com/labstack/echo/v4"
	echomw "github.com/labstack/echo/v4/middleware"
)

// Run wires every component together and serves until SIGINT/SIGTERM.
func Run() error {
	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}

	db, err := database.InitDB(cfg.Database)
	if err != nil {
		return err
	}
	defer db.Close()

	if err := database.RunMigrations(db); err != nil {
		return err
	}

	redisCache := cache.NewRedisCache(cfg.Redis)
	defer redisCache.Close()

	store := storage.NewS3Store(cfg.S3)
	tokens := utils.NewTokenManager(cfg.JWT.Secret)
	mw := middleware.NewMiddleware(tokens, redisCache)

	e := echo.New()
	e.HideBanner = true
	e.Server.ReadHeaderTimeout = constants.DefaultTimeout
	e.Use(echomw.Recover())
	e.Use(echomw.CORS())

	users.Init(e, &db, redisCache, tokens, mw)
	clients.Init(e, &db, mw)
	dogs.Init(e, &db, store, mw)
	googleauth.Init(e, &db, cfg.GoogleAPI, mw)
	calendar.Init(e, &db, mw)

	runner := tasks.NewRunner(cfg.Redis, googleauth.GetRepository(&db))
	defer runner.Shutdown()

	go func() {
		addr := fmt.Sprintf(":%d", cfg.Server.Port)
		if err := e.Start(addr); err != nil && err != http.ErrServerClosed {
			logger.Error("Server:Start:Error", "error", err)
		}
	}()
	logger.Info("Server:Start:Success", "port", cfg.Server.Port)

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	logger.Info("Server:Shutdown:Begin")

	ctx, cancel := context.WithTimeout(context.Background(), constants.ServerShutdownTimeout)
	defer cancel()
	if err := e.Shutdown(ctx); err != nil {
		logger.Error("Server:Shutdown:Error", "error", err)
		return err
	}

	logger.Info("Server:Shutdown:Success")
	return nil
}
