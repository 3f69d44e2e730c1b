package config

import (
	"os"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/log"
	"github.com/gofiber/fiber/v2/middleware/limiter"
	"github.com/gofiber/fiber/v2/middleware/logger"
	"github.com/tmc/langchaingo/llms"
	"gorm.io/gorm"

	"platefinder/internal/api/handlers"
	"platefinder/internal/api/routes"
	"platefinder/internal/middleware"
	"platefinder/internal/utils"
	"platefinder/pkg/location"
	"platefinder/pkg/order"
	"platefinder/pkg/profile"
	"platefinder/pkg/recommendation"
	"platefinder/pkg/restaurant"
	"platefinder/pkg/store"
)

func NewApp(db *gorm.DB, model llms.Model) (*fiber.App, error) {
	utils.InitValidator()
	app := fiber.New(fiber.Config{
		EnablePrintRoutes: true,
	})
	middlewares := middleware.NewMiddleware()
	validator := utils.Validate

	// setting up logging and limiter
	err := os.MkdirAll("./logs", os.ModePerm)
	if err != nil {
		log.Fatalf("error creating logs directory: %v", err)
	}
	file, err := os.OpenFile(
		"./logs/app.log",
		os.O_RDWR|os.O_CREATE|os.O_APPEND,
		0666,
	)
	if err != nil {
		log.Fatalf("error opening file: %v", err)
	}
	app.Use(logger.New(logger.Config{
		TimeFormat: "2006-01-02 15:04:05",
		Output:     file,
	}))

	app.Use(limiter.New(limiter.Config{
		Max:        10,
		Expiration: 1 * time.Second,
	}))

	// Store
	slotStore := store.NewSlotStore(db)

	// Service
	confirmDelay := time.Duration(utils.GetConfigInt("ORDER_CONFIRM_DELAY_MS", 1000)) * time.Millisecond
	locationService := location.NewLocationService()
	restaurantService := restaurant.NewRestaurantService(locationService)
	profileService := profile.NewProfileService(slotStore)
	orderService := order.NewOrderService(slotStore, confirmDelay)
	recommendationService := recommendation.NewRecommendationService(model, profileService, orderService)

	// Handler
	locationHandler := handlers.NewLocationHandler(locationService, validator)
	restaurantHandler := handlers.NewRestaurantHandler(restaurantService, validator)
	recommendationHandler := handlers.NewRecommendationHandler(recommendationService, validator)
	orderHandler := handlers.NewOrderHandler(orderService, validator)
	profileHandler := handlers.NewProfileHandler(profileService, validator)

	// routes
	routesConfig := routes.Config{
		App:                   app,
		LocationHandler:       locationHandler,
		RestaurantHandler:     restaurantHandler,
		RecommendationHandler: recommendationHandler,
		OrderHandler:          orderHandler,
		ProfileHandler:        profileHandler,
		Middleware:            middlewares,
	}
	routesConfig.Setup()
	return app, nil
}
