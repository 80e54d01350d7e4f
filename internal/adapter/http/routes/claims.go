package routes

import (
	"claim_triage/internal/adapter/http/handlers"

	"github.com/gin-gonic/gin"
)

const (
	PathClaims   = "/claims"
	PathReviews  = "/reviews"
	PathPipeline = "/pipeline"
)

func addClaimRoutes(rg *gin.RouterGroup, claimHandler *handlers.ClaimHandler, reviewHandler *handlers.ReviewHandler) {
	claims := rg.Group(PathClaims)
	{
		claims.POST("", claimHandler.CreateClaim)
		claims.POST("/assess", claimHandler.AssessClaim)
		claims.GET("", claimHandler.ListClaims)
		claims.GET("/stats", claimHandler.GetStats)
		claims.GET("/:id", claimHandler.GetClaim)
		claims.POST("/:id/reviews", reviewHandler.StartReview)
	}

	reviews := rg.Group(PathReviews)
	{
		reviews.GET("/:session_id", reviewHandler.GetReview)
		reviews.POST("/:session_id/steps", reviewHandler.CompleteStep)
		reviews.PATCH("/:session_id/costs/:index", reviewHandler.EditCost)
		reviews.DELETE("/:session_id", reviewHandler.CancelReview)
	}

	rg.GET(PathPipeline+"/stages", claimHandler.GetStages)
}
