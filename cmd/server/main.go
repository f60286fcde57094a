package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"

	"homematch/internal/config"
	"homematch/internal/handler"
	"homematch/internal/index"
	"homematch/internal/service"
	"homematch/internal/store"
)

var (
	Version   = "dev"
	BuildTime = "unknown"
	GitCommit = "unknown"
)

func main() {
	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "failed to load configuration: %v\n", err)
		os.Exit(1)
	}

	log := newLogger(cfg.Logging)
	log.Info().
		Str("version", Version).
		Str("build_time", BuildTime).
		Str("git_commit", GitCommit).
		Msg("HomeMatch starting")

	// Set Gin mode
	gin.SetMode(cfg.Server.GinMode)

	// Initialize OpenAI client
	var aiClient *service.OpenAIClient
	if cfg.OpenAI.Enabled {
		aiClient = service.NewOpenAIClient(&cfg.OpenAI, log)
		log.Info().
			Str("api_base", cfg.OpenAI.APIBase).
			Str("chat_model", cfg.OpenAI.ChatModel).
			Str("embedding_model", cfg.OpenAI.EmbeddingModel).
			Msg("OpenAI client initialized")
	} else {
		log.Warn().Msg("OpenAI is disabled - generation and semantic retrieval will fall back to built-in data")
		log.Warn().Msg("set OPENAI_API_KEY environment variable to enable AI features")
	}

	// Listing store, seeded so matching works before any generation run
	listingStore := store.NewSeeded()

	// Vector index: pgvector when a DSN is configured, in-memory otherwise.
	// Without an embedder the index stays unbuilt and semantic retrieval
	// degrades to empty results.
	var idx index.Index
	if aiClient != nil {
		if cfg.PostgreSQL.DSN != "" {
			pgIdx, err := index.NewPgIndex(
				cfg.PostgreSQL.DSN,
				cfg.PostgreSQL.MaxConnections,
				cfg.PostgreSQL.MaxIdleConnections,
				cfg.OpenAI.EmbeddingDimensions,
				aiClient,
			)
			if err != nil {
				log.Fatal().Err(err).Msg("failed to connect to pgvector index")
			}
			defer pgIdx.Close()
			idx = pgIdx
			log.Info().Msg("connected to PostgreSQL pgvector index")
		} else {
			idx = index.NewMemoryIndex(aiClient)
			log.Info().Msg("using in-memory vector index")
		}

		buildCtx, cancel := context.WithTimeout(context.Background(), 2*time.Minute)
		if err := idx.Build(buildCtx, service.IndexEntries(listingStore.All())); err != nil {
			log.Warn().Err(err).Msg("initial index build failed, semantic retrieval unavailable until regenerate")
		}
		cancel()
	}

	// Initialize services
	var textGen service.TextGenerator
	if aiClient != nil && aiClient.IsEnabled() {
		textGen = aiClient
	}
	scorer := service.NewScorer(cfg.Match)
	retriever := service.NewRetriever(idx, listingStore, log)
	prefBuilder := service.NewPreferenceBuilder(textGen, log)
	generator := service.NewListingGenerator(textGen, cfg.Generation, log)
	matcher := service.NewMatcher(
		listingStore, scorer, retriever, prefBuilder, textGen,
		cfg.Match, cfg.Generation.InterCallDelay, log,
	)

	log.Info().Int("listings", listingStore.Len()).Msg("services initialized")

	// Initialize handlers
	matchHandler := handler.NewMatchHandler(matcher, cfg.Match.ResultLimit, cfg.Match.MaxResultLimit)
	listingHandler := handler.NewListingHandler(listingStore, generator, prefBuilder, scorer, idx, cfg.Generation.NumListings, log)

	// Setup Gin router
	router := gin.Default()

	// CORS configuration
	corsConfig := cors.DefaultConfig()
	corsConfig.AllowOrigins = []string{cfg.Server.AllowedOrigins}
	corsConfig.AllowMethods = []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"}
	corsConfig.AllowHeaders = []string{"Content-Type", "Authorization"}
	router.Use(cors.New(corsConfig))

	// Health check endpoint
	router.GET("/health", func(c *gin.Context) {
		c.JSON(200, gin.H{
			"status":     "healthy",
			"service":    "homematch",
			"version":    Version,
			"build_time": BuildTime,
			"git_commit": GitCommit,
		})
	})

	// API routes
	apiV1 := router.Group("/api/v1")
	{
		apiV1.POST("/match", matchHandler.Match)
		apiV1.POST("/match/report", matchHandler.MatchReport)

		apiV1.GET("/listings", listingHandler.List)
		apiV1.GET("/listings/:id", listingHandler.Get)
		apiV1.POST("/listings/rank", listingHandler.Rank)
		apiV1.POST("/listings/generate", listingHandler.Generate)
	}

	// Start server
	addr := fmt.Sprintf("%s:%d", cfg.Server.Host, cfg.Server.Port)
	log.Info().Str("addr", addr).Msg("starting server")

	go func() {
		if err := router.Run(addr); err != nil {
			log.Fatal().Err(err).Msg("failed to start server")
		}
	}()

	// Wait for interrupt signal
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info().Msg("server stopped")
}

func newLogger(cfg config.LoggingConfig) zerolog.Logger {
	level, err := zerolog.ParseLevel(cfg.Level)
	if err != nil {
		level = zerolog.InfoLevel
	}

	var log zerolog.Logger
	if cfg.Format == "console" {
		log = zerolog.New(zerolog.ConsoleWriter{Out: os.Stderr, TimeFormat: time.RFC3339})
	} else {
		log = zerolog.New(os.Stderr)
	}
	return log.Level(level).With().Timestamp().Logger()
}
