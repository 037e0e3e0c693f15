package FiberConfig

import (
	"fmt"
	"os"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/compress"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"gorm.io/gorm"

	"Atlas/Controllers"
	"Atlas/Models"
	"Atlas/middleware"
)

func SetupRoutes(app *fiber.App, db *gorm.DB) {
	// Initialize handlers
	organisationController := Controllers.NewOrganisationController(db)
	locationController := Controllers.NewLocationController(db)

	// API group
	api := app.Group("/api")

	// Organisation routes
	organisations := api.Group("/organisations")
	organisations.Post("/create", organisationController.CreateOrganisation)
	organisations.Get("/", organisationController.GetOrganisations)

	// Location creation routes - place these BEFORE the ID routes to avoid conflicts
	organisations.Post("/create/locations", locationController.CreateLocation)
	organisations.Get("/create/location", locationController.CreateDefaultLocation)

	// ID-based routes
	organisations.Get("/:id", organisationController.GetOrganisation)
	organisations.Get("/:id/locations", locationController.GetOrganisationLocations)
}

func FiberConfig() {
	fmt.Println("Server Up...")
	app := fiber.New()
	app.Use(middleware.RequestLogger())
	app.Use(compress.New(compress.Config{
		Level: compress.LevelBestCompression, // 2
	}))
	app.Use(cors.New(cors.Config{
		AllowOrigins: "*",
		AllowMethods: "GET,POST,PUT,DELETE,OPTIONS,PATCH",
		AllowHeaders: "Origin, Content-Type, Accept, Authorization, X-Requested-With",
		MaxAge:       300, // Max age for preflight requests caching (5 minutes)
	}))

	SetupRoutes(app, Models.DB)

	port := os.Getenv("PORT")
	if port == "" {
		port = "3001"
	}
	app.Listen(":" + port)
}
