package department

import (
	"context"
	"strconv"

	"hrm/inner/common"
	"hrm/inner/web"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
)

type Controller struct {
	server            *web.Server
	departmentService Svc
	logger            *common.Logger
}

// интерфейс сервиса department.Service
type Svc interface {
	CreateDepartment(ctx context.Context, request CreateRequest) (int64, error)
	FindById(ctx context.Context, id int64) (Response, error)
	FindAll(ctx context.Context) ([]Response, error)
	UpdateDepartment(ctx context.Context, id int64, request UpdateRequest) (Response, error)
	DeleteById(ctx context.Context, id int64) error
}

func NewController(server *web.Server, departmentService Svc, logger *common.Logger) *Controller {
	return &Controller{
		server:            server,
		departmentService: departmentService,
		logger:            logger,
	}
}

func (c *Controller) RegisterRoutes() {
	api := c.server.GroupApiV1
	api.Post("/departments", c.CreateDepartment)
	api.Get("/departments", c.FindAllDepartments)
	api.Get("/departments/:id", c.GetDepartment)
	api.Put("/departments/:id", c.UpdateDepartment)
	api.Delete("/departments/:id", c.DeleteDepartment)
}

// @Summary Create department
// @Tags departments
// @Accept json
// @Produce json
// @Param request body CreateRequest true "Department"
// @Router /departments [post]
func (c *Controller) CreateDepartment(ctx *fiber.Ctx) error {
	var request CreateRequest
	if err := ctx.BodyParser(&request); err != nil {
		return common.ErrResponse(ctx, fiber.StatusBadRequest, err.Error())
	}
	id, err := c.departmentService.CreateDepartment(ctx.UserContext(), request)
	if err != nil {
		return common.ServiceErrResponse(ctx, err)
	}
	return common.OkResponse(ctx, fiber.Map{"id": id})
}

// @Summary List departments
// @Tags departments
// @Produce json
// @Router /departments [get]
func (c *Controller) FindAllDepartments(ctx *fiber.Ctx) error {
	departments, err := c.departmentService.FindAll(ctx.UserContext())
	if err != nil {
		return common.ServiceErrResponse(ctx, err)
	}
	return common.OkResponse(ctx, departments)
}

// @Summary Get department by id
// @Tags departments
// @Produce json
// @Param id path int true "Department ID"
// @Failure 400 {object} common.Response[any]
// @Failure 404 {object} common.Response[any]
// @Router /departments/{id} [get]
func (c *Controller) GetDepartment(ctx *fiber.Ctx) error {
	id, err := strconv.ParseInt(ctx.Params("id"), 10, 64)
	if err != nil {
		return common.ErrResponse(ctx, fiber.StatusBadRequest, "Invalid department ID")
	}
	department, err := c.departmentService.FindById(ctx.UserContext(), id)
	if err != nil {
		return common.ServiceErrResponse(ctx, err)
	}
	return common.OkResponse(ctx, department)
}

// @Summary Update department
// @Tags departments
// @Accept json
// @Produce json
// @Param id path int true "Department ID"
// @Param request body UpdateRequest true "Request"
// @Failure 400 {object} common.Response[any]
// @Failure 404 {object} common.Response[any]
// @Failure 409 {object} common.Response[any]
// @Router /departments/{id} [put]
func (c *Controller) UpdateDepartment(ctx *fiber.Ctx) error {
	id, err := strconv.ParseInt(ctx.Params("id"), 10, 64)
	if err != nil {
		return common.ErrResponse(ctx, fiber.StatusBadRequest, "Invalid department ID")
	}
	var request UpdateRequest
	if err = ctx.BodyParser(&request); err != nil {
		return common.ErrResponse(ctx, fiber.StatusBadRequest, err.Error())
	}
	department, err := c.departmentService.UpdateDepartment(ctx.UserContext(), id, request)
	if err != nil {
		return common.ServiceErrResponse(ctx, err)
	}
	return common.OkResponse(ctx, department)
}

// @Summary Delete department
// @Tags departments
// @Produce json
// @Param id path int true "Department ID"
// @Failure 400 {object} common.Response[any]
// @Failure 404 {object} common.Response[any]
// @Router /departments/{id} [delete]
func (c *Controller) DeleteDepartment(ctx *fiber.Ctx) error {
	id, err := strconv.ParseInt(ctx.Params("id"), 10, 64)
	if err != nil {
		return common.ErrResponse(ctx, fiber.StatusBadRequest, "Invalid department ID")
	}
	if err = c.departmentService.DeleteById(ctx.UserContext(), id); err != nil {
		c.logger.WarnCtx(ctx, "Failed to delete department", zap.Int64("id", id), zap.Error(err))
		return common.ServiceErrResponse(ctx, err)
	}
	return common.OkResponse(ctx, "Department deleted successfully")
}
