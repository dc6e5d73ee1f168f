package api

import (
	"estatescout/docs"
	"estatescout/internal/api/handlers"
	"estatescout/pkg/middleware"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/logger"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/gofiber/swagger"
	"go.uber.org/zap"
)

func SetupRouter(
	propertyHandler *handlers.PropertyHandler,
	savedHandler *handlers.SavedPropertyHandler,
	appLogger *zap.Logger,
) *fiber.App {
	app := fiber.New(fiber.Config{
		ErrorHandler: func(c *fiber.Ctx, err error) error {
			code := fiber.StatusInternalServerError
			if e, ok := err.(*fiber.Error); ok {
				code = e.Code
			}
			return c.Status(code).JSON(fiber.Map{
				"success": false,
				"error":   err.Error(),
			})
		},
	})

	// Middleware
	app.Use(recover.New())
	app.Use(cors.New(cors.Config{
		AllowOrigins: "*",
		AllowMethods: "GET,POST,PUT,DELETE,OPTIONS",
		AllowHeaders: "Origin,Content-Type,Accept,Authorization",
	}))
	app.Use(logger.New())

	// Importing the docs package registers the generated documentation.
	_ = docs.SwaggerInfo
	app.Get("/swagger/*", swagger.HandlerDefault)

	api := app.Group("/api")
	api.Get("/health", propertyHandler.Health)

	properties := api.Group("/properties")
	properties.Get("", propertyHandler.List)
	properties.Get("/search", propertyHandler.SearchByQuery)
	properties.Post("/search", propertyHandler.Search)
	properties.Post("/analyze", propertyHandler.Analyze)
	properties.Post("/predict", propertyHandler.Predict)

	saved := api.Group("/saved-properties", middleware.ResolveUser())
	saved.Get("", savedHandler.List)
	saved.Post("", savedHandler.Create)
	saved.Delete("/:id", savedHandler.Delete)
	saved.Get("/check/:propertyId", savedHandler.Check)

	appLogger.Info("Router configured")

	return app
}
