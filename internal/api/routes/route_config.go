package routes

import (
	"github.com/gofiber/fiber/v2"

	"platefinder/internal/api/handlers"
	"platefinder/internal/middleware"
)

type Config struct {
	App                   *fiber.App
	LocationHandler       handlers.LocationHandler
	RestaurantHandler     handlers.RestaurantHandler
	RecommendationHandler handlers.RecommendationHandler
	OrderHandler          handlers.OrderHandler
	ProfileHandler        handlers.ProfileHandler
	Middleware            middleware.Middleware
}

func (c *Config) Setup() {
	c.App.Use(c.Middleware.CORSMiddleware())
	c.Location()
	c.Restaurants()
	c.Recommendations()
	c.Orders()
	c.Profile()
	c.GuestRoute()
}

func (c *Config) Location() {
	location := c.App.Group("/api/v1/location")
	{
		location.Post("/detect", c.LocationHandler.DetectLocation)
	}
}

func (c *Config) Restaurants() {
	restaurants := c.App.Group("/api/v1/restaurants")
	{
		restaurants.Get("/nearby", c.RestaurantHandler.GetNearbyRestaurants)
		restaurants.Get("/:id", c.RestaurantHandler.GetRestaurantDetails)
		restaurants.Get("/:id/menu", c.RestaurantHandler.GetRestaurantMenu)
	}
}

func (c *Config) Recommendations() {
	recommendations := c.App.Group("/api/v1/recommendations")
	{
		recommendations.Post("", c.RecommendationHandler.GetRecommendations)
	}
}

func (c *Config) Orders() {
	orders := c.App.Group("/api/v1/orders")
	{
		orders.Post("", c.OrderHandler.PlaceOrder)
		orders.Get("/history", c.OrderHandler.GetOrderHistory)
		orders.Get("/favorites", c.OrderHandler.GetFavorites)
	}
}

func (c *Config) Profile() {
	profile := c.App.Group("/api/v1/profile")
	{
		profile.Get("", c.ProfileHandler.GetProfile)
		profile.Patch("", c.ProfileHandler.UpdateProfile)
		profile.Delete("", c.ProfileHandler.ClearProfile)
		profile.Post("/visit", c.ProfileHandler.RecordVisit)
		profile.Post("/preferences", c.ProfileHandler.AddPreference)
		profile.Delete("/preferences/:value", c.ProfileHandler.RemovePreference)
		profile.Post("/favorites", c.ProfileHandler.AddFavorite)
		profile.Delete("/favorites/:value", c.ProfileHandler.RemoveFavorite)
	}
}

func (c *Config) GuestRoute() {
	c.App.Get("/api/ping", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"message": "pong"})
	})
}
