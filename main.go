package main

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/leadflowbr/leadflow_end/config"
	"github.com/leadflowbr/leadflow_end/controllers"
	"github.com/leadflowbr/leadflow_end/middleware"
	"github.com/leadflowbr/leadflow_end/repository"
	"github.com/leadflowbr/leadflow_end/routes"
	"github.com/leadflowbr/leadflow_end/service"
	"github.com/leadflowbr/leadflow_end/utils"

	"github.com/gin-gonic/gin"
)

func main() {
	utils.InitLogger()

	cfg := config.LoadConfig()

	if cfg.Debug {
		gin.SetMode(gin.DebugMode)
	} else {
		gin.SetMode(gin.ReleaseMode)
	}

	limits, err := config.LoadPlanLimits(cfg.PlansFile)
	if err != nil {
		utils.Logger.Fatal().Err(err).Msg("failed to load plan limits")
	}

	if err := repository.InitMongoDB(cfg.MongoURI, cfg.MongoDB); err != nil {
		utils.Logger.Fatal().Err(err).Msg("failed to connect to MongoDB")
	}
	defer repository.CloseMongoDB()

	controllers.Init(cfg, limits)

	router := gin.New()

	router.Use(middleware.Logger())
	router.Use(middleware.Recovery())
	router.Use(middleware.CORS())
	router.Use(middleware.ErrorHandler())
	router.Use(middleware.OperationLoggerMiddleware())

	routes.RegisterRoutes(router)

	utils.Logger.Info().Msg("initializing collections...")
	if err := repository.InitializeCollections(); err != nil {
		utils.Logger.Error().Err(err).Msg("collection initialization failed")
	}

	// nightly maintenance: expired trials fall back to the free plan
	mailer := service.NewMailer(cfg.SMTPHost, cfg.SMTPPort, cfg.SMTPUser, cfg.SMTPPass, cfg.MailFrom)
	service.ScheduleDailyTaskAt(3, 0, 0, func() {
		service.ProcessExpiredTrials(limits, mailer)
	})

	srv := &http.Server{
		Addr:        fmt.Sprintf(":%d", cfg.Port),
		Handler:     router,
		ReadTimeout: 15 * time.Second,
		// no write timeout: /api/leads/stream holds long-lived SSE connections
		WriteTimeout: 0,
		IdleTimeout:  60 * time.Second,
	}

	go func() {
		utils.Logger.Info().Msgf("server listening on port %d", cfg.Port)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			utils.Logger.Fatal().Err(err).Msg("server failed to start")
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	utils.Logger.Info().Msg("shutting down server...")

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		utils.Logger.Fatal().Err(err).Msg("server shutdown failed")
	}

	utils.Logger.Info().Msg("server stopped")
}
