package routes

import (
	"GreenCompost-Backend/internal/api/handlers"
	"GreenCompost-Backend/internal/middleware"
	"GreenCompost-Backend/pkg/jwt"

	"github.com/gofiber/fiber/v2"
)

type Config struct {
	App             *fiber.App
	UserHandler     handlers.UserHandler
	FoodHandler     handlers.FoodHandler
	ServiceHandler  handlers.ServiceHandler
	EventHandler    handlers.EventHandler
	MatchingHandler handlers.MatchingHandler
	Middleware      middleware.Middleware
	JWTService      jwt.JWTService
}

func (c *Config) Setup() {
	c.App.Use(c.Middleware.CORSMiddleware())
	c.User()
	c.FoodItems()
	c.Services()
	c.Events()
	c.Matching()
	c.GuestRoute()
}

func (c *Config) User() {
	user := c.App.Group("/api/v1/users")
	{
		user.Post("/register", c.UserHandler.Register)
		user.Post("/login", c.UserHandler.Login)
		user.Get("/remembered", c.UserHandler.RememberedUser)
		user.Get("/me", c.Middleware.AuthMiddleware(c.JWTService), c.UserHandler.Me)
		user.Patch("/update", c.Middleware.AuthMiddleware(c.JWTService), c.UserHandler.UpdateUser)
		user.Post("/forget", c.UserHandler.ForgotPassword)
		user.Post("/reset", c.UserHandler.ResetPassword)
	}
}

func (c *Config) FoodItems() {
	foodItems := c.App.Group("/api/v1/food-items", c.Middleware.AuthMiddleware(c.JWTService))

	foodItems.Get("/stats", c.FoodHandler.GetStats)
	foodItems.Get("/expiring", c.FoodHandler.GetExpiringSoon)

	foodItems.Post("", c.FoodHandler.AddFoodItem)
	foodItems.Get("", c.FoodHandler.GetFoodItems)
	foodItems.Get("/:id", c.FoodHandler.GetFoodItemDetails)
	foodItems.Put("/:id", c.FoodHandler.UpdateFoodItem)
	foodItems.Delete("/:id", c.FoodHandler.DeleteFoodItem)
	foodItems.Patch("/:id/status", c.FoodHandler.UpdateItemStatus)
}

func (c *Config) Services() {
	services := c.App.Group("/api/v1/services", c.Middleware.AuthMiddleware(c.JWTService))

	services.Post("", c.ServiceHandler.SaveService)
	services.Get("", c.ServiceHandler.GetServices)
	services.Get("/:name", c.ServiceHandler.GetServiceByName)
	services.Delete("/:name", c.ServiceHandler.DeleteService)
}

func (c *Config) Events() {
	events := c.App.Group("/api/v1/events", c.Middleware.AuthMiddleware(c.JWTService))

	events.Post("", c.EventHandler.ScheduleEvent)
	events.Get("", c.EventHandler.GetEvents)
	events.Get("/upcoming", c.EventHandler.GetUpcomingEvents)
	events.Post("/:id/items", c.EventHandler.AddItem)
	events.Delete("/:id/items", c.EventHandler.RemoveItem)
	events.Delete("/:id/items/all", c.EventHandler.ClearItems)
	events.Post("/:id/complete", c.EventHandler.CompleteEvent)
	events.Post("/:id/cancel", c.EventHandler.CancelEvent)
}

func (c *Config) Matching() {
	matching := c.App.Group("/api/v1/matching", c.Middleware.AuthMiddleware(c.JWTService))

	matching.Get("/nearby", c.MatchingHandler.FindNearbyServices)
	matching.Post("/recommend", c.MatchingHandler.RecommendBestService)
	matching.Get("/donation", c.MatchingHandler.FindDonationServices)
	matching.Get("/nearby-users", c.MatchingHandler.FindNearbyUsers)
}

func (c *Config) GuestRoute() {
	c.App.Get("/api/ping", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"message": "pong"})
	})
}
