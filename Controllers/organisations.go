package Controllers

import (
	"strconv"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"Atlas/Models"
)

// OrganisationController handles organisation-related API endpoints
type OrganisationController struct {
	DB *gorm.DB
}

// NewOrganisationController creates a new OrganisationController
func NewOrganisationController(db *gorm.DB) *OrganisationController {
	return &OrganisationController{DB: db}
}

// CreateOrganisation inserts a new organisation and returns the persisted
// record including its generated id
func (c *OrganisationController) CreateOrganisation(ctx *fiber.Ctx) error {
	var input Models.CreateOrganisationInput
	if err := ctx.BodyParser(&input); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
	}

	organisation := Models.Organisation{Name: input.Name}
	if result := c.DB.Create(&organisation); result.Error != nil {
		return ctx.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Failed to create organisation"})
	}

	return ctx.JSON(organisation)
}

// GetOrganisations retrieves all organisations
func (c *OrganisationController) GetOrganisations(ctx *fiber.Ctx) error {
	organisations := make([]Models.Organisation, 0)
	if result := c.DB.Find(&organisations); result.Error != nil {
		return ctx.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Failed to retrieve organisations"})
	}

	return ctx.JSON(organisations)
}

// GetOrganisation retrieves a single organisation by ID
func (c *OrganisationController) GetOrganisation(ctx *fiber.Ctx) error {
	id, err := strconv.Atoi(ctx.Params("id"))
	if err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid organisation ID"})
	}

	var organisation Models.Organisation
	if result := c.DB.First(&organisation, id); result.Error != nil {
		return ctx.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "Organisation not found"})
	}

	return ctx.JSON(organisation)
}
