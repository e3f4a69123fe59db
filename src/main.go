package main

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"strconv"
	"syscall"
	"time"

	"catshop-backend-go/src/configs"
	"catshop-backend-go/src/core/utils"
	"catshop-backend-go/src/detector"
	"catshop-backend-go/src/vision"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
	"golang.org/x/sync/errgroup"
)

func LoadConfigAndLogger() (*configs.Config, *utils.Logger, error) {
	// Load configuration, preferring .config.yaml
	config, configPath, err := configs.LoadConfig()
	if err != nil {
		return nil, nil, err
	}

	logger, err := utils.NewLogger(config)
	if err != nil {
		return nil, nil, err
	}
	logger.Info(fmt.Sprintf("Logging initialised, config file: %s", configPath))

	return config, logger, nil
}

func StartHttpServer(config *configs.Config, logger *utils.Logger, g *errgroup.Group, groupCtx context.Context) (*http.Server, error) {
	if config.Log.LogLevel == "debug" {
		gin.SetMode(gin.DebugMode)
	} else {
		gin.SetMode(gin.ReleaseMode)
	}
	router := gin.Default()
	router.SetTrustedProxies([]string{"0.0.0.0"})

	// All API routes mount under the /api prefix
	apiGroup := router.Group("/api")

	det := detector.NewRemoteDetector(&config.Detector, logger)
	visionService, err := vision.NewDefaultVisionService(config, logger, det)
	if err != nil {
		logger.Error(fmt.Sprintf("Vision service init failed: %v", err))
		return nil, err
	}
	if err := visionService.Start(groupCtx, router, apiGroup); err != nil {
		logger.Error(fmt.Sprintf("Vision service start failed: %v", err))
		return nil, err
	}

	// HTTP server with graceful shutdown
	httpServer := &http.Server{
		Addr:    ":" + strconv.Itoa(config.Web.Port),
		Handler: router,
	}

	g.Go(func() error {
		logger.Info(fmt.Sprintf("Gin server started at http://0.0.0.0:%d", config.Web.Port))

		go func() {
			<-groupCtx.Done()
			logger.Info("Shutdown signal received, stopping HTTP server...")

			shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
			defer cancel()

			if err := httpServer.Shutdown(shutdownCtx); err != nil {
				logger.Error(fmt.Sprintf("HTTP server shutdown failed: %v", err))
			} else {
				logger.Info("HTTP server shut down cleanly")
			}
		}()

		// ErrServerClosed means a clean shutdown
		if err := httpServer.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Error(fmt.Sprintf("HTTP server failed: %v", err))
			return err
		}
		return nil
	})

	return httpServer, nil
}

func GracefulShutdown(cancel context.CancelFunc, logger *utils.Logger, g *errgroup.Group) {
	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, syscall.SIGINT, syscall.SIGTERM)
	defer signal.Stop(sigChan)

	sig := <-sigChan
	logger.Info(fmt.Sprintf("Received signal %v, starting graceful shutdown", sig))

	// Cancel the context so every service begins shutting down
	cancel()

	done := make(chan error, 1)
	go func() {
		done <- g.Wait()
	}()

	select {
	case err := <-done:
		if err != nil {
			logger.Error(fmt.Sprintf("Error during shutdown: %v", err))
			os.Exit(1)
		}
		logger.Info("All services shut down cleanly")
	case <-time.After(15 * time.Second):
		logger.Error("Shutdown timed out, forcing exit")
		os.Exit(1)
	}
}

func main() {
	config, logger, err := LoadConfigAndLogger()
	if err != nil {
		fmt.Println("Failed to load config or initialise logging:", err)
		os.Exit(1)
	}

	if err := godotenv.Load(); err != nil {
		logger.Warn("No .env file found, using system environment")
	}

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	g, groupCtx := errgroup.WithContext(ctx)

	if _, err := StartHttpServer(config, logger, g, groupCtx); err != nil {
		logger.Error(fmt.Sprintf("Failed to start services: %v", err))
		cancel()
		os.Exit(1)
	}

	GracefulShutdown(cancel, logger, g)

	logger.Info("Process exited")
}
