package jobhistory

import (
	"context"
	"strconv"

	"hrm/inner/common"
	"hrm/inner/web"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
)

type Controller struct {
	server         *web.Server
	historyService Svc
	logger         *common.Logger
}

// интерфейс сервиса jobhistory.Service
type Svc interface {
	CreateRecord(ctx context.Context, request CreateRequest) (Response, error)
	FindByEmployeeId(ctx context.Context, employeeId int64) ([]Response, error)
	DeleteRecord(ctx context.Context, employeeId int64, startDate string) error
}

func NewController(server *web.Server, historyService Svc, logger *common.Logger) *Controller {
	return &Controller{
		server:         server,
		historyService: historyService,
		logger:         logger,
	}
}

func (c *Controller) RegisterRoutes() {
	history := c.server.GroupApiV1.Group("/job-history")
	history.Post("", c.CreateRecord)
	history.Get("/employees/:employeeId", c.FindByEmployee)
	history.Delete("/employees/:employeeId", c.DeleteRecord)
}

// @Summary Add job history record
// @Tags job-history
// @Accept json
// @Produce json
// @Param request body CreateRequest true "Job history record"
// @Failure 409 {object} common.Response[any]
// @Router /job-history [post]
func (c *Controller) CreateRecord(ctx *fiber.Ctx) error {
	var request CreateRequest
	if err := ctx.BodyParser(&request); err != nil {
		return common.ErrResponse(ctx, fiber.StatusBadRequest, err.Error())
	}
	record, err := c.historyService.CreateRecord(ctx.UserContext(), request)
	if err != nil {
		c.logger.WarnCtx(ctx, "Job history record rejected",
			zap.Int64("employee_id", request.EmployeeId),
			zap.Error(err))
		return common.ServiceErrResponse(ctx, err)
	}
	return common.OkResponse(ctx, record)
}

// @Summary Job history of an employee
// @Tags job-history
// @Produce json
// @Param employeeId path int true "Employee ID"
// @Failure 400 {object} common.Response[any]
// @Router /job-history/employees/{employeeId} [get]
func (c *Controller) FindByEmployee(ctx *fiber.Ctx) error {
	employeeId, err := strconv.ParseInt(ctx.Params("employeeId"), 10, 64)
	if err != nil {
		return common.ErrResponse(ctx, fiber.StatusBadRequest, "Invalid employee ID")
	}
	history, err := c.historyService.FindByEmployeeId(ctx.UserContext(), employeeId)
	if err != nil {
		return common.ServiceErrResponse(ctx, err)
	}
	return common.OkResponse(ctx, history)
}

// @Summary Delete job history record
// @Tags job-history
// @Produce json
// @Param employeeId path int true "Employee ID"
// @Param startDate query string true "Start date, YYYY-MM-DD"
// @Failure 400 {object} common.Response[any]
// @Failure 404 {object} common.Response[any]
// @Router /job-history/employees/{employeeId} [delete]
func (c *Controller) DeleteRecord(ctx *fiber.Ctx) error {
	employeeId, err := strconv.ParseInt(ctx.Params("employeeId"), 10, 64)
	if err != nil {
		return common.ErrResponse(ctx, fiber.StatusBadRequest, "Invalid employee ID")
	}
	startDate := ctx.Query("startDate")
	if startDate == "" {
		return common.ErrResponse(ctx, fiber.StatusBadRequest, "Missing startDate parameter")
	}
	if err = c.historyService.DeleteRecord(ctx.UserContext(), employeeId, startDate); err != nil {
		return common.ServiceErrResponse(ctx, err)
	}
	return common.OkResponse(ctx, "Job history record deleted successfully")
}
