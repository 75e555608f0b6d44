package config

import (
	"GreenCompost-Backend/internal/api/handlers"
	"GreenCompost-Backend/internal/api/routes"
	"GreenCompost-Backend/internal/middleware"
	"GreenCompost-Backend/internal/utils"
	"GreenCompost-Backend/pkg/event"
	"GreenCompost-Backend/pkg/food"
	"GreenCompost-Backend/pkg/jwt"
	"GreenCompost-Backend/pkg/matching"
	"GreenCompost-Backend/pkg/service"
	"GreenCompost-Backend/pkg/user"
	"context"
	"os"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/log"
	"github.com/gofiber/fiber/v2/middleware/limiter"
	"github.com/gofiber/fiber/v2/middleware/logger"
	"gorm.io/gorm"
)

func NewApp(db *gorm.DB) (*fiber.App, error) {
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
		TimeZone:   "Europe/Dublin",
		Output:     file,
	}))

	app.Use(limiter.New(limiter.Config{
		Max:        10,
		Expiration: 1 * time.Second,
	}))

	// Repository
	userRepository := user.NewUserRepository(db)
	foodRepository := food.NewFoodRepository(db)
	serviceRepository := service.NewServiceRepository(db)
	eventRepository := event.NewEventRepository(db)

	// Service
	jwtService := jwt.NewJWTService()
	userService := user.NewUserService(userRepository, jwtService, validator)
	foodService := food.NewFoodService(foodRepository, userRepository)
	serviceCatalog := service.NewServiceCatalog(serviceRepository)
	serviceService := service.NewServiceService(serviceCatalog)
	eventService := event.NewEventService(eventRepository, foodRepository, userRepository, serviceCatalog)
	matchingService := matching.NewMatchingService(serviceCatalog, userRepository, utils.GetConfig("DEFAULT_CITY"))

	// The catalog and the event registry are the in-memory working sets;
	// load them once before the first request.
	ctx := context.Background()
	if err := serviceCatalog.Rehydrate(ctx); err != nil {
		return nil, err
	}
	if err := eventService.Rehydrate(ctx); err != nil {
		return nil, err
	}

	app.Hooks().OnShutdown(func() error {
		return serviceCatalog.Flush(context.Background())
	})

	// Handler
	userHandler := handlers.NewUserHandler(userService, validator)
	foodHandler := handlers.NewFoodHandler(foodService, validator)
	serviceHandler := handlers.NewServiceHandler(serviceService, validator)
	eventHandler := handlers.NewEventHandler(eventService, validator)
	matchingHandler := handlers.NewMatchingHandler(matchingService, validator)

	// routes
	routesConfig := routes.Config{
		App:             app,
		UserHandler:     userHandler,
		FoodHandler:     foodHandler,
		ServiceHandler:  serviceHandler,
		EventHandler:    eventHandler,
		MatchingHandler: matchingHandler,
		Middleware:      middlewares,
		JWTService:      jwtService,
	}
	routesConfig.Setup()
	return app, nil
}
