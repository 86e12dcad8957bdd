package main

import (
	"fmt"
	"os"

	"github.com/ThoughtFull-World/tf-dreams/application/services"
	"github.com/ThoughtFull-World/tf-dreams/config"
	"github.com/ThoughtFull-World/tf-dreams/infrastructure/adapters"
	"github.com/ThoughtFull-World/tf-dreams/infrastructure/gin_interface/controllers"
	"github.com/ThoughtFull-World/tf-dreams/middleware"
	"github.com/gin-gonic/gin"
	"github.com/panjf2000/ants/v2"
	"github.com/rs/zerolog/log"
)

func main() {
	openAIConfig, err := config.GetOpenAIConfig()
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to get openai config")
	}

	elevenLabsConfig, err := config.GetElevenLabsConfig()
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to get eleven labs config")
	}

	falConfig, err := config.GetFalConfig()
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to get fal config")
	}

	r2Config, err := config.GetR2Config()
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to get r2 config")
	}

	mysqlConfig, err := config.GetMySQLConfig()
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to get mysql config")
	}

	mem0Config := config.GetMem0Config()
	renderConfig := config.GetRenderConfig()

	jwksUrl := os.Getenv("JWKS_URL")
	if jwksUrl == "" {
		log.Fatal().Msg("JWKS_URL is not set!")
	}

	zeroLogger := adapters.NewZerologWrapper()

	panicHandler := func(p interface{}) {
		zeroLogger.Error(fmt.Errorf("%v", p), "Panic in worker pool")
	}

	workerPool, err := ants.NewPool(120, ants.WithPanicHandler(panicHandler))
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to create worker pool")
	}
	defer workerPool.Release()

	db, err := adapters.NewMySQLConnection(mysqlConfig)
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to connect to mysql")
	}
	defer func() {
		_ = db.Close()
	}()

	contentFetcher := adapters.NewContentFetcher(zeroLogger)

	transcriber := adapters.NewElevenLabsTranscriber(contentFetcher, elevenLabsConfig, zeroLogger)
	storyGenerator := adapters.NewOpenAIStoryGenerator(openAIConfig, zeroLogger)
	memory := adapters.NewMem0Memory(contentFetcher, mem0Config, zeroLogger)
	videoGenerator := adapters.NewFalVideoGenerator(contentFetcher, falConfig, zeroLogger)
	mediaStore := adapters.NewR2MediaStore(r2Config, zeroLogger)
	dreamStore := adapters.NewMySQLDreamStore(db, zeroLogger)

	storyService := services.NewContextStoryService(zeroLogger, memory, dreamStore, storyGenerator)

	renderService, err := services.NewVideoRenderService(zeroLogger, workerPool, dreamStore, videoGenerator, mediaStore, renderConfig)
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to start render service")
	}

	statusService := services.NewVideoStatusService(dreamStore)

	pipeline := services.NewDreamPipelineOrchestrator(zeroLogger, workerPool, transcriber, storyService, dreamStore, mediaStore, renderService)

	dreamController := controllers.NewDreamController(zeroLogger, pipeline)
	videoController := controllers.NewVideoController(zeroLogger, renderService, statusService, dreamStore)

	router := gin.Default()

	err = router.SetTrustedProxies(nil)
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to set trusted proxies!")
	}

	authHandler, err := middleware.NewAuthHandler(jwksUrl)
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to create auth handler!")
	}

	router.Use(middleware.CORSMiddleware())
	router.Use(authHandler.AuthMiddleware())

	router.GET("/health", func(c *gin.Context) {
		c.JSON(200, gin.H{"status": "ok"})
	})

	dreamController.RegisterRoutes(router)
	videoController.RegisterRoutes(router)

	err = router.Run(":8080")
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to start server!")
	}
}
