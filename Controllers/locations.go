package Controllers

import (
	"strconv"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"Atlas/Geo"
	"Atlas/Models"
)

// LocationController handles location-related API endpoints
type LocationController struct {
	DB *gorm.DB
}

// NewLocationController creates a new LocationController
func NewLocationController(db *gorm.DB) *LocationController {
	return &LocationController{DB: db}
}

// CreateLocation is a placeholder. There is no agreed contract for creating
// locations yet, so the endpoint answers 501 no matter what the payload is.
func (c *LocationController) CreateLocation(ctx *fiber.Ctx) error {
	return ctx.Status(fiber.StatusNotImplemented).JSON(fiber.Map{"error": "Location creation is not implemented"})
}

// GetOrganisationLocations lists an organisation's locations, optionally
// restricted to a bounding box given as minLon,minLat,maxLon,maxLat
// (all four bounds inclusive).
func (c *LocationController) GetOrganisationLocations(ctx *fiber.Ctx) error {
	id, err := strconv.Atoi(ctx.Params("id"))
	if err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid organisation ID"})
	}

	var organisation Models.Organisation
	if result := c.DB.First(&organisation, id); result.Error != nil {
		return ctx.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "Organisation not found"})
	}

	var box *Geo.BoundingBox
	if raw := ctx.Query("bounding_box"); raw != "" {
		parsed, err := Geo.ParseBoundingBox(raw)
		if err != nil {
			return ctx.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
		}
		box = &parsed
	}

	var locations []Models.Location
	if result := c.DB.Where("organisation_id = ?", id).Find(&locations); result.Error != nil {
		return ctx.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Failed to retrieve locations"})
	}

	responses := make([]Models.LocationResponse, 0, len(locations))
	for _, location := range locations {
		if box != nil && !box.Contains(location.Longitude, location.Latitude) {
			continue
		}
		responses = append(responses, location.ToResponse())
	}

	return ctx.JSON(responses)
}

// CreateDefaultLocation is the legacy fixed-value creation endpoint. It
// inserts the same record on every call, without checking that organisation 1
// exists, and is kept only because an existing caller still depends on it.
// TODO: remove once CreateLocation is implemented and the caller migrates.
func (c *LocationController) CreateDefaultLocation(ctx *fiber.Ctx) error {
	location := Models.Location{
		LocationName:   "Default Name",
		Longitude:      0.0,
		Latitude:       0.0,
		OrganisationID: 1,
	}
	if result := c.DB.Create(&location); result.Error != nil {
		return ctx.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Failed to create location"})
	}

	return ctx.JSON(fiber.Map{
		"message":  "Location created",
		"location": location,
	})
}
