package location

import (
	"context"
	"strconv"

	"hrm/inner/common"
	"hrm/inner/web"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
)

type Controller struct {
	server          *web.Server
	locationService Svc
	logger          *common.Logger
}

// интерфейс сервиса location.Service
type Svc interface {
	CreateRegion(ctx context.Context, request CreateRegionRequest) (RegionResponse, error)
	FindRegionById(ctx context.Context, id int64) (RegionResponse, error)
	FindAllRegions(ctx context.Context) ([]RegionResponse, error)
	DeleteRegion(ctx context.Context, id int64) error

	CreateCountry(ctx context.Context, request CreateCountryRequest) (CountryResponse, error)
	FindCountryById(ctx context.Context, id string) (CountryResponse, error)
	FindAllCountries(ctx context.Context) ([]CountryResponse, error)
	DeleteCountry(ctx context.Context, id string) error

	CreateLocation(ctx context.Context, request CreateRequest) (Response, error)
	FindById(ctx context.Context, id int64) (Response, error)
	FindAll(ctx context.Context) ([]Response, error)
	UpdateLocation(ctx context.Context, id int64, request CreateRequest) (Response, error)
	DeleteById(ctx context.Context, id int64) error
}

func NewController(server *web.Server, locationService Svc, logger *common.Logger) *Controller {
	return &Controller{
		server:          server,
		locationService: locationService,
		logger:          logger,
	}
}

func (c *Controller) RegisterRoutes() {
	api := c.server.GroupApiV1

	regions := api.Group("/regions")
	regions.Post("", c.CreateRegion)
	regions.Get("", c.FindAllRegions)
	regions.Get("/:id", c.GetRegion)
	regions.Delete("/:id", c.DeleteRegion)

	countries := api.Group("/countries")
	countries.Post("", c.CreateCountry)
	countries.Get("", c.FindAllCountries)
	countries.Get("/:id", c.GetCountry)
	countries.Delete("/:id", c.DeleteCountry)

	locations := api.Group("/locations")
	locations.Post("", c.CreateLocation)
	locations.Get("", c.FindAllLocations)
	locations.Get("/:id", c.GetLocation)
	locations.Put("/:id", c.UpdateLocation)
	locations.Delete("/:id", c.DeleteLocation)
}

func (c *Controller) fail(ctx *fiber.Ctx, err error) error {
	if common.ErrorStatus(err) == fiber.StatusInternalServerError {
		c.logger.ErrorCtx(ctx, "Location request failed", zap.String("path", ctx.Path()), zap.Error(err))
	}
	return common.ServiceErrResponse(ctx, err)
}

func parseId(ctx *fiber.Ctx) (int64, error) {
	return strconv.ParseInt(ctx.Params("id"), 10, 64)
}

// @Summary Create region
// @Tags locations
// @Accept json
// @Produce json
// @Param request body CreateRegionRequest true "Region"
// @Success 200 {object} common.Response[RegionResponse]
// @Router /regions [post]
func (c *Controller) CreateRegion(ctx *fiber.Ctx) error {
	var request CreateRegionRequest
	if err := ctx.BodyParser(&request); err != nil {
		return common.ErrResponse(ctx, fiber.StatusBadRequest, err.Error())
	}
	region, err := c.locationService.CreateRegion(ctx.UserContext(), request)
	if err != nil {
		return c.fail(ctx, err)
	}
	return common.OkResponse(ctx, region)
}

// @Summary List regions
// @Tags locations
// @Produce json
// @Router /regions [get]
func (c *Controller) FindAllRegions(ctx *fiber.Ctx) error {
	regions, err := c.locationService.FindAllRegions(ctx.UserContext())
	if err != nil {
		return c.fail(ctx, err)
	}
	return common.OkResponse(ctx, regions)
}

// @Summary Get region by id
// @Tags locations
// @Produce json
// @Param id path int true "Region ID"
// @Failure 400 {object} common.Response[any]
// @Failure 404 {object} common.Response[any]
// @Router /regions/{id} [get]
func (c *Controller) GetRegion(ctx *fiber.Ctx) error {
	id, err := parseId(ctx)
	if err != nil {
		return common.ErrResponse(ctx, fiber.StatusBadRequest, "Invalid region ID")
	}
	region, err := c.locationService.FindRegionById(ctx.UserContext(), id)
	if err != nil {
		return c.fail(ctx, err)
	}
	return common.OkResponse(ctx, region)
}

// @Summary Delete region
// @Tags locations
// @Produce json
// @Param id path int true "Region ID"
// @Failure 400 {object} common.Response[any]
// @Failure 404 {object} common.Response[any]
// @Router /regions/{id} [delete]
func (c *Controller) DeleteRegion(ctx *fiber.Ctx) error {
	id, err := parseId(ctx)
	if err != nil {
		return common.ErrResponse(ctx, fiber.StatusBadRequest, "Invalid region ID")
	}
	if err = c.locationService.DeleteRegion(ctx.UserContext(), id); err != nil {
		return c.fail(ctx, err)
	}
	return common.OkResponse(ctx, "Region deleted successfully")
}

// @Summary Create country
// @Tags locations
// @Accept json
// @Produce json
// @Param request body CreateCountryRequest true "Country"
// @Success 200 {object} common.Response[CountryResponse]
// @Router /countries [post]
func (c *Controller) CreateCountry(ctx *fiber.Ctx) error {
	var request CreateCountryRequest
	if err := ctx.BodyParser(&request); err != nil {
		return common.ErrResponse(ctx, fiber.StatusBadRequest, err.Error())
	}
	country, err := c.locationService.CreateCountry(ctx.UserContext(), request)
	if err != nil {
		return c.fail(ctx, err)
	}
	return common.OkResponse(ctx, country)
}

// @Summary List countries
// @Tags locations
// @Produce json
// @Router /countries [get]
func (c *Controller) FindAllCountries(ctx *fiber.Ctx) error {
	countries, err := c.locationService.FindAllCountries(ctx.UserContext())
	if err != nil {
		return c.fail(ctx, err)
	}
	return common.OkResponse(ctx, countries)
}

// @Summary Get country by code
// @Tags locations
// @Produce json
// @Param id path string true "Country code"
// @Failure 404 {object} common.Response[any]
// @Router /countries/{id} [get]
func (c *Controller) GetCountry(ctx *fiber.Ctx) error {
	country, err := c.locationService.FindCountryById(ctx.UserContext(), ctx.Params("id"))
	if err != nil {
		return c.fail(ctx, err)
	}
	return common.OkResponse(ctx, country)
}

// @Summary Delete country
// @Tags locations
// @Produce json
// @Param id path string true "Country code"
// @Failure 400 {object} common.Response[any]
// @Failure 404 {object} common.Response[any]
// @Router /countries/{id} [delete]
func (c *Controller) DeleteCountry(ctx *fiber.Ctx) error {
	if err := c.locationService.DeleteCountry(ctx.UserContext(), ctx.Params("id")); err != nil {
		return c.fail(ctx, err)
	}
	return common.OkResponse(ctx, "Country deleted successfully")
}

// @Summary Create location
// @Tags locations
// @Accept json
// @Produce json
// @Param request body CreateRequest true "Location"
// @Success 200 {object} common.Response[Response]
// @Router /locations [post]
func (c *Controller) CreateLocation(ctx *fiber.Ctx) error {
	var request CreateRequest
	if err := ctx.BodyParser(&request); err != nil {
		return common.ErrResponse(ctx, fiber.StatusBadRequest, err.Error())
	}
	location, err := c.locationService.CreateLocation(ctx.UserContext(), request)
	if err != nil {
		return c.fail(ctx, err)
	}
	return common.OkResponse(ctx, location)
}

// @Summary List locations
// @Tags locations
// @Produce json
// @Router /locations [get]
func (c *Controller) FindAllLocations(ctx *fiber.Ctx) error {
	locations, err := c.locationService.FindAll(ctx.UserContext())
	if err != nil {
		return c.fail(ctx, err)
	}
	return common.OkResponse(ctx, locations)
}

// @Summary Get location by id
// @Tags locations
// @Produce json
// @Param id path int true "Location ID"
// @Failure 400 {object} common.Response[any]
// @Failure 404 {object} common.Response[any]
// @Router /locations/{id} [get]
func (c *Controller) GetLocation(ctx *fiber.Ctx) error {
	id, err := parseId(ctx)
	if err != nil {
		return common.ErrResponse(ctx, fiber.StatusBadRequest, "Invalid location ID")
	}
	location, err := c.locationService.FindById(ctx.UserContext(), id)
	if err != nil {
		return c.fail(ctx, err)
	}
	return common.OkResponse(ctx, location)
}

// @Summary Update location
// @Tags locations
// @Accept json
// @Produce json
// @Param id path int true "Location ID"
// @Param request body CreateRequest true "Request"
// @Failure 400 {object} common.Response[any]
// @Failure 404 {object} common.Response[any]
// @Router /locations/{id} [put]
func (c *Controller) UpdateLocation(ctx *fiber.Ctx) error {
	id, err := parseId(ctx)
	if err != nil {
		return common.ErrResponse(ctx, fiber.StatusBadRequest, "Invalid location ID")
	}
	var request CreateRequest
	if err = ctx.BodyParser(&request); err != nil {
		return common.ErrResponse(ctx, fiber.StatusBadRequest, err.Error())
	}
	location, err := c.locationService.UpdateLocation(ctx.UserContext(), id, request)
	if err != nil {
		return c.fail(ctx, err)
	}
	return common.OkResponse(ctx, location)
}

// @Summary Delete location
// @Tags locations
// @Produce json
// @Param id path int true "Location ID"
// @Failure 400 {object} common.Response[any]
// @Failure 404 {object} common.Response[any]
// @Router /locations/{id} [delete]
func (c *Controller) DeleteLocation(ctx *fiber.Ctx) error {
	id, err := parseId(ctx)
	if err != nil {
		return common.ErrResponse(ctx, fiber.StatusBadRequest, "Invalid location ID")
	}
	if err = c.locationService.DeleteById(ctx.UserContext(), id); err != nil {
		return c.fail(ctx, err)
	}
	return common.OkResponse(ctx, "Location deleted successfully")
}
