package main

import (
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
	"github.com/panjf2000/ants/v2"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/rs/zerolog/log"

	"animate-frames-lambda/application/ports/outbound"
	"animate-frames-lambda/application/services"
	"animate-frames-lambda/config"
	"animate-frames-lambda/infrastructure/adapters"
	"animate-frames-lambda/infrastructure/gin_interface/controllers"
	"animate-frames-lambda/middleware"
)

func main() {
	if err := godotenv.Load(); err != nil {
		log.Debug().Msg("No .env file found")
	}

	serverConfig, err := config.GetServerConfig()
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to get server config")
	}

	fetcherConfig, err := config.GetFetcherConfig()
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to get fetcher config")
	}

	encoderConfig, err := config.GetEncoderConfig()
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to get encoder config")
	}

	publisherConfig, err := config.GetPublisherConfig()
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to get publisher config")
	}

	zeroLogger := adapters.NewZerologWrapper()

	panicHandler := func(p interface{}) {
		zeroLogger.Error(fmt.Errorf("%v", p), "Panic in worker pool")
	}

	workerPool, err := ants.NewPool(serverConfig.PoolSize, ants.WithPanicHandler(panicHandler))
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to create worker pool")
	}
	defer workerPool.Release()

	metrics := adapters.NewPrometheusMetrics()

	contentFetcher := adapters.NewContentFetcher(&http.Client{Timeout: fetcherConfig.DownloadTimeout}, zeroLogger)

	urlValidator := adapters.NewHeadURLValidator(fetcherConfig, zeroLogger)
	frameFetcher := adapters.NewHTTPFrameFetcher(contentFetcher, zeroLogger)
	mediaEncoder := adapters.NewFFmpegMediaEncoder(encoderConfig, zeroLogger)
	archiveBuilder := adapters.NewZipArchiveBuilder(zeroLogger)
	workspace := adapters.NewScratchWorkspace(zeroLogger)

	var mediaPublisher outbound.MediaPublisherPort
	if publisherConfig != nil {
		mediaPublisher = adapters.NewS3MediaPublisher(zeroLogger, publisherConfig)
	}

	frameCollector := services.NewFrameCollector(zeroLogger, workerPool, urlValidator, frameFetcher, metrics)

	animationPipeline := services.NewAnimationPipeline(zeroLogger, frameCollector, mediaEncoder,
		archiveBuilder, workspace, mediaPublisher, metrics)

	animationController := controllers.NewAnimationController(zeroLogger, animationPipeline, serverConfig.OutputBaseDir)

	router := gin.Default()

	if err := router.SetTrustedProxies(nil); err != nil {
		log.Fatal().Err(err).Msg("Failed to set trusted proxies!")
	}

	router.Use(middleware.RequestLogger(zeroLogger))

	router.GET("/healthz", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})
	router.GET("/metrics", gin.WrapH(promhttp.Handler()))

	animationController.RegisterRoutes(router)

	if err := router.Run(":" + serverConfig.Port); err != nil {
		log.Fatal().Err(err).Msg("Failed to start server!")
	}
}
