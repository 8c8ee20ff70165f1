package main

import (
	"context"
	"log"
	"os"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
	"go.uber.org/fx"

	"memberclub/cmd/fx/analytics_fx"
	"memberclub/cmd/fx/catalog_fx"
	"memberclub/cmd/fx/controllers_fx"
	"memberclub/cmd/fx/db_fx"
	"memberclub/cmd/fx/logger_fx"
	"memberclub/cmd/fx/subscriptions_fx"
	"memberclub/cmd/fx/users_fx"
	"memberclub/internal/api/controllers"
	"memberclub/internal/services"
	"memberclub/pkg/middleware"
	"memberclub/pkg/utils"
)

func main() {
	_ = godotenv.Load()
	utils.RegisterCustomValidators()

	app := fx.New(
		logger_fx.Module,
		db_fx.Module,
		users_fx.Module,
		catalog_fx.Module,
		subscriptions_fx.Module,
		analytics_fx.Module,
		controllers_fx.Module,

		fx.Invoke(SeedCatalog),
		fx.Provide(ProvideRouter),
		fx.Invoke(StartServer),
	)

	app.Run()
}

// SeedCatalog runs the idempotent startup seeding: 3 tiers, 9 plans, and
// optionally the demo users.
func SeedCatalog(catalogService services.CatalogServiceInterface, userService services.UserServiceInterface) error {
	ctx := context.Background()

	if err := catalogService.InitializeDefaultData(ctx); err != nil {
		return err
	}

	if os.Getenv("SEED_DEMO_USERS") == "true" {
		return userService.SeedDemoUsers(ctx)
	}
	return nil
}

func StartServer(lc fx.Lifecycle, engine *gin.Engine) {
	lc.Append(fx.Hook{
		OnStart: func(ctx context.Context) error {
			go func() {
				port := os.Getenv("PORT")
				if port == "" {
					port = "8080"
				}
				log.Printf("Starting HTTP server at :%s", port)
				if err := engine.Run(":" + port); err != nil {
					log.Fatalf("Failed to start server: %v", err)
				}
			}()
			return nil
		},
		OnStop: func(ctx context.Context) error {
			log.Println("Stopping HTTP server")
			return nil
		},
	})
}

func ProvideRouter(
	userController *controllers.UserController,
	membershipController *controllers.MembershipController,
	subscriptionController *controllers.SubscriptionController,
	analyticsController *controllers.AnalyticsController) *gin.Engine {

	r := gin.Default()
	r.Use(gin.Recovery())
	r.Use(middleware.TraceIDMiddleware())
	r.Use(middleware.CORSMiddleware())

	RegisterRoutes(r, userController, membershipController, subscriptionController, analyticsController)

	return r
}

func RegisterRoutes(r *gin.Engine,
	userController *controllers.UserController,
	membershipController *controllers.MembershipController,
	subscriptionController *controllers.SubscriptionController,
	analyticsController *controllers.AnalyticsController) {

	v1 := r.Group("/api/v1")

	usersGroup := v1.Group("/users")
	usersGroup.POST("", userController.CreateUser)
	usersGroup.GET("", userController.GetAllUsers)
	usersGroup.GET("/:id", userController.GetUserByID)
	usersGroup.GET("/email/:email", userController.GetUserByEmail)
	usersGroup.PUT("/:id", userController.UpdateUser)
	usersGroup.DELETE("/:id", userController.DeleteUser)

	membershipGroup := v1.Group("/membership")
	membershipGroup.GET("/tiers", membershipController.GetAllTiers)
	membershipGroup.GET("/tiers/:name", membershipController.GetTierByName)
	membershipGroup.GET("/analytics", analyticsController.GetAnalytics)
	membershipGroup.GET("/health", analyticsController.GetHealth)

	plansGroup := v1.Group("/plans")
	plansGroup.GET("", membershipController.GetAllPlans)
	plansGroup.GET("/active", membershipController.GetActivePlans)
	plansGroup.GET("/grouped", membershipController.GetGroupedPlans)
	plansGroup.GET("/compare", membershipController.ComparePlans)
	plansGroup.GET("/tier/:tierName", membershipController.GetPlansByTier)
	plansGroup.GET("/type/:type", membershipController.GetPlansByType)
	plansGroup.GET("/:id", membershipController.GetPlanByID)

	subsGroup := v1.Group("/subscriptions")
	subsGroup.POST("", subscriptionController.CreateSubscription)
	subsGroup.GET("", subscriptionController.GetAllSubscriptions)
	subsGroup.GET("/:id", subscriptionController.GetSubscriptionByID)
	subsGroup.PUT("/:id", subscriptionController.UpdateSubscription)
	subsGroup.POST("/:id/cancel", subscriptionController.CancelSubscription)
	subsGroup.POST("/:id/renew", subscriptionController.RenewSubscription)
	subsGroup.POST("/:id/upgrade", subscriptionController.UpgradeSubscription)
	subsGroup.POST("/:id/downgrade", subscriptionController.DowngradeSubscription)
	subsGroup.GET("/user/:userId", subscriptionController.GetUserSubscriptions)
	subsGroup.GET("/user/:userId/active", subscriptionController.GetActiveSubscription)
	subsGroup.POST("/process-expired", subscriptionController.ProcessExpired)
	subsGroup.POST("/process-renewals", subscriptionController.ProcessRenewals)
}
