package main

import (
	"context"
	"flag"
	"fmt"
	"net/http"
	"os"
	"strings"

	"github.com/joho/godotenv"
	"github.com/panjf2000/ants/v2"
	"github.com/rs/zerolog/log"

	"animate-frames-lambda/application/ports/inbound"
	"animate-frames-lambda/application/services"
	"animate-frames-lambda/config"
	"animate-frames-lambda/infrastructure/adapters"
)

func main() {
	if err := godotenv.Load(); err != nil {
		log.Debug().Msg("No .env file found")
	}

	urls := flag.String("urls", "", "Comma separated list of image URLs, in frame order")
	mp4 := flag.Bool("mp4", false, "Produce an mp4 video instead of a looping gif")
	fps := flag.Float64("fps", 4, "Frames per second of the output")
	zipInputs := flag.Bool("zip", false, "Also archive the downloaded inputs")
	outDir := flag.String("out", ".", "Directory the artifacts are written to")
	flag.Parse()

	if *urls == "" {
		fmt.Println("Usage: animate-cli -urls <url,url,...> [-mp4] [-fps <n>] [-zip] [-out <dir>]")
		os.Exit(1)
	}

	fetcherConfig, err := config.GetFetcherConfig()
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to get fetcher config")
	}

	encoderConfig, err := config.GetEncoderConfig()
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to get encoder config")
	}

	zeroLogger := adapters.NewZerologWrapper()

	workerPool, err := ants.NewPool(32)
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to create worker pool")
	}
	defer workerPool.Release()

	metrics := adapters.NewNoopMetrics()

	contentFetcher := adapters.NewContentFetcher(&http.Client{Timeout: fetcherConfig.DownloadTimeout}, zeroLogger)

	frameCollector := services.NewFrameCollector(zeroLogger, workerPool,
		adapters.NewHeadURLValidator(fetcherConfig, zeroLogger),
		adapters.NewHTTPFrameFetcher(contentFetcher, zeroLogger), metrics)

	pipeline := services.NewAnimationPipeline(zeroLogger, frameCollector,
		adapters.NewFFmpegMediaEncoder(encoderConfig, zeroLogger),
		adapters.NewZipArchiveBuilder(zeroLogger),
		adapters.NewScratchWorkspace(zeroLogger), nil, metrics)

	result, err := pipeline.StartPipeline(context.Background(), inbound.StartPipelineParams{
		URLs:          strings.Split(*urls, ","),
		VideoMode:     *mp4,
		FrameRate:     *fps,
		ArchiveInputs: *zipInputs,
		OutputDir:     *outDir,
	})
	if err != nil {
		log.Fatal().Err(err).Msg("Pipeline failed")
	}

	fmt.Println("\n=== Animation Summary ===")
	fmt.Printf("Frames:  %d\n", result.FrameCount)
	fmt.Printf("Media:   %s\n", result.MediaFileName)
	if result.ArchiveFileName != "" {
		fmt.Printf("Archive: %s\n", result.ArchiveFileName)
	}
}
