package routes

import (
	"context"
	"fmt"
	"log"
	"strconv"

	_ "claim_triage/docs" // generated by swag init
	"claim_triage/internal/adapter/http/handlers"
	"claim_triage/internal/adapter/persistence/repository"
	"claim_triage/internal/config"
	"claim_triage/internal/domain/entities"
	"claim_triage/internal/domain/triage"
	"claim_triage/internal/infrastructure/ai"
	"claim_triage/internal/infrastructure/cache"
	"claim_triage/internal/infrastructure/database"
	"claim_triage/internal/usecase"
	"claim_triage/internal/usecase/interfaces"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
)

// Run will start the server
func Run(cfg config.Config) {
	router, cleanup, err := NewRouter(context.Background(), cfg)
	if err != nil {
		log.Fatalf("Failed to startup the application: %v", err)
	}
	defer cleanup()

	log.Printf("[server] listening port=%d store=%s ai=%s", cfg.Server.Port, cfg.Store.Backend, cfg.AI.Provider)
	if err := router.Run(":" + strconv.Itoa(cfg.Server.Port)); err != nil {
		log.Fatalf("Failed to startup the application: %v", err.Error())
	}
}

// NewRouter builds the engine with every collaborator selected by cfg.
// The returned cleanup releases the cache.
func NewRouter(ctx context.Context, cfg config.Config) (*gin.Engine, func(), error) {
	if !cfg.Debug {
		gin.SetMode(gin.ReleaseMode)
	}
	router := gin.New()
	setMiddlewares(router)

	// Swagger documentation endpoint
	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	repo, err := newClaimRepository(ctx, cfg.Store)
	if err != nil {
		return nil, nil, err
	}
	vision, language, err := newAnalyzers(cfg.AI)
	if err != nil {
		return nil, nil, err
	}
	assessmentCache, err := cache.NewAssessmentCache(cfg.Cache.MaxSizeMB)
	if err != nil {
		return nil, nil, fmt.Errorf("assessment cache: %w", err)
	}

	region := entities.RegionInfo{
		Name:           cfg.Region.Name,
		LaborRate:      cfg.Region.LaborRate,
		CostMultiplier: cfg.Region.CostMultiplier,
	}

	claimUseCase := usecase.NewClaimUseCase(repo, triage.DefaultThresholds())
	reviewUseCase := usecase.NewReviewUseCase(repo)
	assessmentUseCase := usecase.NewAssessmentUseCase(vision, language, assessmentCache, claimUseCase, region, cfg.Cache.TTL)

	claimHandler := handlers.NewClaimHandler(claimUseCase, assessmentUseCase, cfg.Server.MaxUploadBytes)
	reviewHandler := handlers.NewReviewHandler(reviewUseCase)

	v1 := router.Group("/v1")
	addPingRoutes(v1)
	addClaimRoutes(v1, claimHandler, reviewHandler)

	return router, assessmentCache.Close, nil
}

func newClaimRepository(ctx context.Context, cfg config.Store) (interfaces.IClaimRepository, error) {
	switch cfg.Backend {
	case config.StoreSQLite:
		db, err := database.OpenSQLite(cfg.SQLitePath, &repository.ClaimRecord{})
		if err != nil {
			return nil, fmt.Errorf("sqlite store: %w", err)
		}
		return repository.NewClaimSQLiteRepository(db), nil
	case config.StoreDynamoDB:
		ddb, err := database.ConnectDynamoDB(ctx)
		if err != nil {
			return nil, fmt.Errorf("dynamodb store: %w", err)
		}
		return repository.NewClaimDynamoRepository(ddb, cfg.DynamoDBTable), nil
	default:
		log.Printf("[claims][memory] store ready")
		return repository.NewClaimMemoryRepository(), nil
	}
}

func newAnalyzers(cfg config.AI) (interfaces.IVisionAnalyzer, interfaces.ILanguageModel, error) {
	if cfg.Provider == config.ProviderAnthropic {
		client, err := ai.NewClaudeClient(cfg.AnthropicAPIKey, cfg.AnthropicModel, cfg.MaxTokens, cfg.Timeout)
		if err != nil {
			return nil, nil, fmt.Errorf("anthropic client: %w", err)
		}
		return client, client, nil
	}
	mock := ai.NewMockAnalyzer()
	return mock, mock, nil
}

func setMiddlewares(router *gin.Engine) {
	router.Use(gin.Logger())
	router.Use(gin.CustomRecovery(func(c *gin.Context, recovered any) {
		log.Printf("Recovered from panic: %v", recovered)
		c.AbortWithStatus(500)
	}))
}
