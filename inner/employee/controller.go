package employee

import (
	"context"
	"strconv"
	"strings"

	"hrm/inner/common"
	"hrm/inner/web"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
)

type Controller struct {
	server          *web.Server
	employeeService Svc
	logger          *common.Logger
}

// интерфейс сервиса employee.Service
type Svc interface {
	FindById(ctx context.Context, id int64) (Response, error)
	CreateEmployee(ctx context.Context, request CreateRequest) (int64, error)
	UpdateEmployee(ctx context.Context, id int64, request UpdateRequest) (Response, error)
	DeleteById(ctx context.Context, id int64) error
	FindAll(ctx context.Context) ([]Response, error)
	FindByIds(ctx context.Context, ids []int64) ([]Response, error)
	FindSubordinates(ctx context.Context, managerId int64) ([]Response, error)
	DeleteByIds(ctx context.Context, ids []int64) error
	FindWithPagination(ctx context.Context, request PageRequest) (PageResponse, error)
}

func NewController(server *web.Server, employeeService Svc, logger *common.Logger) *Controller {
	return &Controller{
		server:          server,
		employeeService: employeeService,
		logger:          logger,
	}
}

// функция для регистрации маршрутов
func (c *Controller) RegisterRoutes() {
	// полный маршрут получится "/api/v1/employees"
	api := c.server.GroupApiV1
	api.Post("/employees", c.CreateEmployee)
	api.Get("/employees", c.FindAllEmployee)
	api.Delete("/employees", c.DeleteEmployeeByIds)
	api.Post("/employees/ids", c.FindEmployeeByIds)
	api.Get("/employees/page", c.FindEmployeesPage)
	api.Get("/employees/:id", c.GetEmployee)
	api.Put("/employees/:id", c.UpdateEmployee)
	api.Delete("/employees/:id", c.DeleteEmployee)
	api.Get("/employees/:id/subordinates", c.FindSubordinates)
}

func (c *Controller) errResponse(ctx *fiber.Ctx, msg string, err error) error {
	if common.ErrorStatus(err) == fiber.StatusInternalServerError {
		c.logger.ErrorCtx(ctx, msg, zap.Error(err))
	} else {
		c.logger.WarnCtx(ctx, msg, zap.Error(err))
	}
	return common.ServiceErrResponse(ctx, err)
}

// @Summary Create employee
// @Tags employees
// @Accept json
// @Produce json
// @Param request body CreateRequest true "Employee"
// @Success 200 {object} common.Response[int64]
// @Failure 400 {object} common.Response[any]
// @Failure 409 {object} common.Response[any]
// @Router /employees [post]
func (c *Controller) CreateEmployee(ctx *fiber.Ctx) error {
	// анмаршалим JSON body запроса в структуру CreateRequest
	var request CreateRequest
	if err := ctx.BodyParser(&request); err != nil {
		c.logger.WarnCtx(ctx, "Invalid employee create body", zap.Error(err))
		return common.ErrResponse(ctx, fiber.StatusBadRequest, err.Error())
	}

	var newEmployeeId, err = c.employeeService.CreateEmployee(ctx.UserContext(), request)
	if err != nil {
		return c.errResponse(ctx, "Failed to create employee", err)
	}
	return common.OkResponse(ctx, fiber.Map{"id": newEmployeeId})
}

// @Summary Get employee by id
// @Tags employees
// @Produce json
// @Param id path int true "Employee ID"
// @Success 200 {object} common.Response[Response]
// @Failure 404 {object} common.Response[any]
// @Router /employees/{id} [get]
func (c *Controller) GetEmployee(ctx *fiber.Ctx) error {
	id, err := strconv.ParseInt(ctx.Params("id"), 10, 64)
	if err != nil {
		return common.ErrResponse(ctx, fiber.StatusBadRequest, "Invalid employee ID")
	}

	employee, err := c.employeeService.FindById(ctx.UserContext(), id)
	if err != nil {
		return c.errResponse(ctx, "Failed to find employee", err)
	}
	return common.OkResponse(ctx, employee)
}

// @Summary Update employee
// @Tags employees
// @Accept json
// @Produce json
// @Param id path int true "Employee ID"
// @Param request body UpdateRequest true "Employee"
// @Router /employees/{id} [put]
func (c *Controller) UpdateEmployee(ctx *fiber.Ctx) error {
	id, err := strconv.ParseInt(ctx.Params("id"), 10, 64)
	if err != nil {
		return common.ErrResponse(ctx, fiber.StatusBadRequest, "Invalid employee ID")
	}
	var request UpdateRequest
	if err = ctx.BodyParser(&request); err != nil {
		return common.ErrResponse(ctx, fiber.StatusBadRequest, err.Error())
	}

	employee, err := c.employeeService.UpdateEmployee(ctx.UserContext(), id, request)
	if err != nil {
		return c.errResponse(ctx, "Failed to update employee", err)
	}
	return common.OkResponse(ctx, employee)
}

// @Summary Delete employee
// @Tags employees
// @Produce json
// @Param id path int true "Employee ID"
// @Failure 400 {object} common.Response[any]
// @Failure 404 {object} common.Response[any]
// @Router /employees/{id} [delete]
func (c *Controller) DeleteEmployee(ctx *fiber.Ctx) error {
	id, err := strconv.ParseInt(ctx.Params("id"), 10, 64)
	if err != nil {
		return common.ErrResponse(ctx, fiber.StatusBadRequest, "Invalid employee ID")
	}

	if err = c.employeeService.DeleteById(ctx.UserContext(), id); err != nil {
		return c.errResponse(ctx, "Failed to delete employee", err)
	}
	return common.OkResponse(ctx, "Employee deleted successfully")
}

// @Summary List employees
// @Tags employees
// @Produce json
// @Router /employees [get]
func (c *Controller) FindAllEmployee(ctx *fiber.Ctx) error {
	employees, err := c.employeeService.FindAll(ctx.UserContext())
	if err != nil {
		return c.errResponse(ctx, "Failed to find employees", err)
	}
	return common.OkResponse(ctx, employees)
}

// @Summary Employees page
// @Tags employees
// @Produce json
// @Param pageNumber query int true "Page number, from 1"
// @Param pageSize query int true "Page size, 1..100"
// @Success 200 {object} common.Response[PageResponse]
// @Router /employees/page [get]
func (c *Controller) FindEmployeesPage(ctx *fiber.Ctx) error {
	var request PageRequest
	if err := ctx.QueryParser(&request); err != nil {
		return common.ErrResponse(ctx, fiber.StatusBadRequest, "Invalid pagination parameters")
	}

	page, err := c.employeeService.FindWithPagination(ctx.UserContext(), request)
	if err != nil {
		return c.errResponse(ctx, "Failed to find employees page", err)
	}
	return common.OkResponse(ctx, page)
}

// @Summary Direct subordinates of a manager
// @Tags employees
// @Produce json
// @Param id path int true "Manager ID"
// @Failure 400 {object} common.Response[any]
// @Failure 404 {object} common.Response[any]
// @Router /employees/{id}/subordinates [get]
func (c *Controller) FindSubordinates(ctx *fiber.Ctx) error {
	id, err := strconv.ParseInt(ctx.Params("id"), 10, 64)
	if err != nil {
		return common.ErrResponse(ctx, fiber.StatusBadRequest, "Invalid employee ID")
	}

	employees, err := c.employeeService.FindSubordinates(ctx.UserContext(), id)
	if err != nil {
		return c.errResponse(ctx, "Failed to find subordinates", err)
	}
	return common.OkResponse(ctx, employees)
}

// @Summary Find employees by id list
// @Tags employees
// @Accept json
// @Produce json
// @Param request body IdsRequest true "Request"
// @Failure 400 {object} common.Response[any]
// @Router /employees/ids [post]
func (c *Controller) FindEmployeeByIds(ctx *fiber.Ctx) error {
	var request IdsRequest
	if err := ctx.BodyParser(&request); err != nil {
		return common.ErrResponse(ctx, fiber.StatusBadRequest, "Invalid request body")
	}

	employees, err := c.employeeService.FindByIds(ctx.UserContext(), request.Ids)
	if err != nil {
		return c.errResponse(ctx, "Failed to find employees by ids", err)
	}
	return common.OkResponse(ctx, employees)
}

// @Summary Delete employees by id list
// @Tags employees
// @Produce json
// @Param ids query string true "Comma-separated ids"
// @Failure 400 {object} common.Response[any]
// @Router /employees [delete]
func (c *Controller) DeleteEmployeeByIds(ctx *fiber.Ctx) error {
	idsParam := ctx.Query("ids")
	if idsParam == "" {
		return common.ErrResponse(ctx, fiber.StatusBadRequest, "Missing ids parameter")
	}

	var ids []int64
	for _, idStr := range strings.Split(idsParam, ",") {
		id, err := strconv.ParseInt(strings.TrimSpace(idStr), 10, 64)
		if err != nil {
			return common.ErrResponse(ctx, fiber.StatusBadRequest, "Invalid employee ID")
		}
		ids = append(ids, id)
	}

	if err := c.employeeService.DeleteByIds(ctx.UserContext(), ids); err != nil {
		return c.errResponse(ctx, "Failed to delete employees", err)
	}
	return common.OkResponse(ctx, "Employees deleted successfully")
}
