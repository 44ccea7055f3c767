package routes

import (
	"fmt"

	coreport "github.com/amirhossein-jamali/fanattics-portal/internal/domain/port/core"
	"github.com/amirhossein-jamali/fanattics-portal/internal/domain/port/usecase"
	"github.com/amirhossein-jamali/fanattics-portal/internal/infrastructure/adapter/api/handler"
	"github.com/amirhossein-jamali/fanattics-portal/internal/infrastructure/adapter/api/middleware"
	"github.com/gin-gonic/gin"
	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"
	"github.com/go-playground/validator/v10/non-standard/validators"
)

// Handlers groups the HTTP handlers mounted by SetupRoutes
type Handlers struct {
	Health    *handler.HealthHandler
	User      *handler.UserHandler
	Community *handler.CommunityHandler
	GiftShop  *handler.GiftShopHandler
}

// Security configures authentication of the /api group
type Security struct {
	Verifier    middleware.TokenVerifier
	Users       usecase.UserUseCase
	CookieName  string
	AdminEmails []string
}

// SetupRoutes configures all the routes for the API
func SetupRoutes(router *gin.Engine, h Handlers, sec Security, logger coreport.Logger) {
	router.GET("/healthz", h.Health.Health)

	api := router.Group("/api")
	api.Use(middleware.Auth(sec.Verifier, sec.Users, sec.CookieName, logger))
	{
		api.GET("/me", h.User.GetMe)
		api.PATCH("/me", h.User.UpdateMe)
		api.GET("/me/points", h.User.MyPoints)
		api.GET("/me/stats", h.User.MyStats)
		api.GET("/users/:userId/points", h.User.UserPoints)

		api.GET("/leaderboard", h.Community.Leaderboard)
		api.GET("/directory", h.Community.Directory)
		api.GET("/challenges", h.Community.ListChallenges)
		api.GET("/challenges/:slug", h.Community.GetChallenge)

		api.GET("/discussions", h.Community.ListPosts)
		api.GET("/discussions/:postId/comments", h.Community.ListComments)
		api.POST("/discussions/:postId/comments", h.Community.AddComment)
	}

	giftshop := api.Group("/giftshop")
	{
		giftshop.GET("/products", h.GiftShop.ListProducts)
		giftshop.POST("/products/:productId/redeem", h.GiftShop.Redeem)
		giftshop.GET("/transactions", h.GiftShop.ListTransactions)
		giftshop.PUT("/transactions/:id/shipping", h.GiftShop.SetShipping)
	}

	admin := api.Group("/admin")
	admin.Use(middleware.RequireAdmin(sec.AdminEmails))
	{
		admin.POST("/users/:userId/points", h.User.AwardPoints)
		admin.POST("/challenges/:challengeId/completions", h.Community.CompleteChallenge)
		admin.PATCH("/comments/:commentId", h.Community.ModerateComment)
		admin.PATCH("/giftshop/transactions/:id", h.GiftShop.UpdateStatus)
	}
}

// SetupMiddlewares configures global middlewares for the API
func SetupMiddlewares(router *gin.Engine, logger coreport.Logger, timeProvider coreport.TimeProvider, allowedOrigins []string) {
	router.Use(middleware.ErrorHandler(logger))
	router.Use(middleware.RequestID())
	router.Use(middleware.Logger(logger, timeProvider))
	router.Use(middleware.CORS(allowedOrigins))
}

// RegisterValidators adds the custom tags used by the request DTOs to gin's validator
func RegisterValidators() error {
	engine, ok := binding.Validator.Engine().(*validator.Validate)
	if !ok {
		return fmt.Errorf("unexpected binding engine %T", binding.Validator.Engine())
	}
	return engine.RegisterValidation("notblank", validators.NotBlank)
}
