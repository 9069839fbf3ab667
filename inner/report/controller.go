package report

import (
	"context"
	"strconv"

	"hrm/inner/common"
	"hrm/inner/web"

	"github.com/gofiber/fiber/v2"
	"github.com/shopspring/decimal"
	"go.uber.org/zap"
)

const xlsxContentType = "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"

type Controller struct {
	server        *web.Server
	reportService Svc
	logger        *common.Logger
}

// интерфейс сервиса report.Service
type Svc interface {
	MaxSalaryByDepartment(ctx context.Context, departmentId int64) (map[string]*decimal.Decimal, error)
	MinSalaryByDepartment(ctx context.Context, departmentId int64) (map[string]*decimal.Decimal, error)
	EmployeeCountByDepartment(ctx context.Context, departmentId int64) (map[string]int64, error)
	TotalCommissionByDepartment(ctx context.Context, departmentId int64) (decimal.Decimal, error)
	CountEmployeesByLocation(ctx context.Context) (map[int64]int64, error)
	MaxSalaryForJobOfEmployee(ctx context.Context, employeeId int64) (JobSalary, error)
	TenureOfEmployee(ctx context.Context, employeeId int64) (Tenure, error)
}

func NewController(server *web.Server, reportService Svc, logger *common.Logger) *Controller {
	return &Controller{
		server:        server,
		reportService: reportService,
		logger:        logger,
	}
}

// функция для регистрации маршрутов
func (c *Controller) RegisterRoutes() {
	// полный маршрут получится "/api/v1/reports"
	reports := c.server.GroupApiV1.Group("/reports")
	reports.Get("/departments/:id/max-salary", c.MaxSalaryByDepartment)
	reports.Get("/departments/:id/min-salary", c.MinSalaryByDepartment)
	reports.Get("/departments/:id/employee-count", c.EmployeeCountByDepartment)
	reports.Get("/departments/:id/commission", c.TotalCommissionByDepartment)
	reports.Get("/locations/employee-count", c.CountEmployeesByLocation)
	reports.Get("/locations/employee-count/export", c.ExportEmployeesByLocation)
	reports.Get("/employees/:id/job-max-salary", c.MaxSalaryForJobOfEmployee)
	reports.Get("/employees/:id/tenure", c.TenureOfEmployee)
}

func (c *Controller) parseId(ctx *fiber.Ctx) (int64, bool) {
	id, err := strconv.ParseInt(ctx.Params("id"), 10, 64)
	if err != nil {
		c.logger.WarnCtx(ctx, "Invalid id in report request",
			zap.String("id_param", ctx.Params("id")),
			zap.String("path", ctx.Path()))
		return 0, false
	}
	return id, true
}

// respond отправляет результат отчёта либо ошибку сервиса
func respond[T any](c *Controller, ctx *fiber.Ctx, result T, err error) error {
	if err != nil {
		status := common.ErrorStatus(err)
		if status == fiber.StatusInternalServerError {
			c.logger.ErrorCtx(ctx, "Report failed", zap.String("path", ctx.Path()), zap.Error(err))
		}
		return common.ServiceErrResponse(ctx, err)
	}
	return common.OkResponse(ctx, result)
}

// @Summary Max salary in a department
// @Tags reports
// @Produce json
// @Param id path int true "Department ID"
// @Success 200 {object} common.Response[map[string]decimal.Decimal]
// @Router /reports/departments/{id}/max-salary [get]
func (c *Controller) MaxSalaryByDepartment(ctx *fiber.Ctx) error {
	id, ok := c.parseId(ctx)
	if !ok {
		return common.ErrResponse(ctx, fiber.StatusBadRequest, "Invalid department ID")
	}
	result, err := c.reportService.MaxSalaryByDepartment(ctx.UserContext(), id)
	return respond(c, ctx, result, err)
}

// @Summary Min salary in a department
// @Tags reports
// @Produce json
// @Param id path int true "Department ID"
// @Router /reports/departments/{id}/min-salary [get]
func (c *Controller) MinSalaryByDepartment(ctx *fiber.Ctx) error {
	id, ok := c.parseId(ctx)
	if !ok {
		return common.ErrResponse(ctx, fiber.StatusBadRequest, "Invalid department ID")
	}
	result, err := c.reportService.MinSalaryByDepartment(ctx.UserContext(), id)
	return respond(c, ctx, result, err)
}

// @Summary Employee count in a department
// @Tags reports
// @Produce json
// @Param id path int true "Department ID"
// @Failure 400 {object} common.Response[any]
// @Failure 404 {object} common.Response[any]
// @Router /reports/departments/{id}/employee-count [get]
func (c *Controller) EmployeeCountByDepartment(ctx *fiber.Ctx) error {
	id, ok := c.parseId(ctx)
	if !ok {
		return common.ErrResponse(ctx, fiber.StatusBadRequest, "Invalid department ID")
	}
	result, err := c.reportService.EmployeeCountByDepartment(ctx.UserContext(), id)
	return respond(c, ctx, result, err)
}

// @Summary Total commission in a department
// @Tags reports
// @Produce json
// @Param id path int true "Department ID"
// @Router /reports/departments/{id}/commission [get]
func (c *Controller) TotalCommissionByDepartment(ctx *fiber.Ctx) error {
	id, ok := c.parseId(ctx)
	if !ok {
		return common.ErrResponse(ctx, fiber.StatusBadRequest, "Invalid department ID")
	}
	result, err := c.reportService.TotalCommissionByDepartment(ctx.UserContext(), id)
	return respond(c, ctx, result, err)
}

// @Summary Employee count by location
// @Tags reports
// @Produce json
// @Router /reports/locations/employee-count [get]
func (c *Controller) CountEmployeesByLocation(ctx *fiber.Ctx) error {
	result, err := c.reportService.CountEmployeesByLocation(ctx.UserContext())
	return respond(c, ctx, result, err)
}

// @Summary Employee count by location as XLSX
// @Tags reports
// @Produce application/octet-stream
// @Router /reports/locations/employee-count/export [get]
func (c *Controller) ExportEmployeesByLocation(ctx *fiber.Ctx) error {
	counts, err := c.reportService.CountEmployeesByLocation(ctx.UserContext())
	if err != nil {
		c.logger.ErrorCtx(ctx, "Failed to count employees for export", zap.Error(err))
		return common.ServiceErrResponse(ctx, err)
	}
	buffer, err := ExportLocationCounts(counts)
	if err != nil {
		c.logger.ErrorCtx(ctx, "Failed to build xlsx export", zap.Error(err))
		return common.ErrResponse(ctx, fiber.StatusInternalServerError, err.Error())
	}
	ctx.Attachment("employees_by_location.xlsx")
	ctx.Set(fiber.HeaderContentType, xlsxContentType)
	return ctx.Send(buffer.Bytes())
}

// @Summary Max salary for the job of an employee
// @Tags reports
// @Produce json
// @Param id path int true "Employee ID"
// @Failure 400 {object} common.Response[any]
// @Failure 404 {object} common.Response[any]
// @Router /reports/employees/{id}/job-max-salary [get]
func (c *Controller) MaxSalaryForJobOfEmployee(ctx *fiber.Ctx) error {
	id, ok := c.parseId(ctx)
	if !ok {
		return common.ErrResponse(ctx, fiber.StatusBadRequest, "Invalid employee ID")
	}
	result, err := c.reportService.MaxSalaryForJobOfEmployee(ctx.UserContext(), id)
	return respond(c, ctx, result, err)
}

// @Summary Employee tenure from job history
// @Tags reports
// @Produce json
// @Param id path int true "Employee ID"
// @Router /reports/employees/{id}/tenure [get]
func (c *Controller) TenureOfEmployee(ctx *fiber.Ctx) error {
	id, ok := c.parseId(ctx)
	if !ok {
		return common.ErrResponse(ctx, fiber.StatusBadRequest, "Invalid employee ID")
	}
	result, err := c.reportService.TenureOfEmployee(ctx.UserContext(), id)
	return respond(c, ctx, result, err)
}
