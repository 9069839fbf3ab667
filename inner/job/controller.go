package job

import (
	"context"
	"strconv"

	"hrm/inner/common"
	"hrm/inner/web"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
)

type Controller struct {
	server     *web.Server
	jobService Svc
	logger     *common.Logger
}

// интерфейс сервиса job.Service
type Svc interface {
	CreateJob(ctx context.Context, request CreateRequest) (Response, error)
	FindById(ctx context.Context, id int64) (Response, error)
	FindAll(ctx context.Context) ([]Response, error)
	UpdateJob(ctx context.Context, id int64, request UpdateRequest) (Response, error)
	DeleteById(ctx context.Context, id int64) error
}

func NewController(server *web.Server, jobService Svc, logger *common.Logger) *Controller {
	return &Controller{
		server:     server,
		jobService: jobService,
		logger:     logger,
	}
}

func (c *Controller) RegisterRoutes() {
	// полный маршрут получится "/api/v1/jobs"
	jobs := c.server.GroupApiV1.Group("/jobs")
	jobs.Post("", c.CreateJob)
	jobs.Get("", c.FindAllJobs)
	jobs.Get("/:id", c.GetJob)
	jobs.Put("/:id", c.UpdateJob)
	jobs.Delete("/:id", c.DeleteJob)
}

func (c *Controller) fail(ctx *fiber.Ctx, err error) error {
	c.logger.WarnCtx(ctx, "Job request failed", zap.String("path", ctx.Path()), zap.Error(err))
	return common.ServiceErrResponse(ctx, err)
}

// @Summary Create job
// @Tags jobs
// @Accept json
// @Produce json
// @Param request body CreateRequest true "Job"
// @Success 200 {object} common.Response[Response]
// @Router /jobs [post]
func (c *Controller) CreateJob(ctx *fiber.Ctx) error {
	var request CreateRequest
	if err := ctx.BodyParser(&request); err != nil {
		return common.ErrResponse(ctx, fiber.StatusBadRequest, err.Error())
	}
	job, err := c.jobService.CreateJob(ctx.UserContext(), request)
	if err != nil {
		return c.fail(ctx, err)
	}
	return common.OkResponse(ctx, job)
}

// @Summary List jobs
// @Tags jobs
// @Produce json
// @Router /jobs [get]
func (c *Controller) FindAllJobs(ctx *fiber.Ctx) error {
	jobs, err := c.jobService.FindAll(ctx.UserContext())
	if err != nil {
		return c.fail(ctx, err)
	}
	return common.OkResponse(ctx, jobs)
}

// @Summary Get job by id
// @Tags jobs
// @Produce json
// @Param id path int true "Job ID"
// @Failure 400 {object} common.Response[any]
// @Failure 404 {object} common.Response[any]
// @Router /jobs/{id} [get]
func (c *Controller) GetJob(ctx *fiber.Ctx) error {
	id, err := strconv.ParseInt(ctx.Params("id"), 10, 64)
	if err != nil {
		return common.ErrResponse(ctx, fiber.StatusBadRequest, "Invalid job ID")
	}
	job, err := c.jobService.FindById(ctx.UserContext(), id)
	if err != nil {
		return c.fail(ctx, err)
	}
	return common.OkResponse(ctx, job)
}

// @Summary Update job
// @Tags jobs
// @Accept json
// @Produce json
// @Param id path int true "Job ID"
// @Param request body UpdateRequest true "Request"
// @Failure 400 {object} common.Response[any]
// @Failure 404 {object} common.Response[any]
// @Router /jobs/{id} [put]
func (c *Controller) UpdateJob(ctx *fiber.Ctx) error {
	id, err := strconv.ParseInt(ctx.Params("id"), 10, 64)
	if err != nil {
		return common.ErrResponse(ctx, fiber.StatusBadRequest, "Invalid job ID")
	}
	var request UpdateRequest
	if err = ctx.BodyParser(&request); err != nil {
		return common.ErrResponse(ctx, fiber.StatusBadRequest, err.Error())
	}
	job, err := c.jobService.UpdateJob(ctx.UserContext(), id, request)
	if err != nil {
		return c.fail(ctx, err)
	}
	return common.OkResponse(ctx, job)
}

// @Summary Delete job
// @Tags jobs
// @Produce json
// @Param id path int true "Job ID"
// @Failure 400 {object} common.Response[any]
// @Failure 404 {object} common.Response[any]
// @Router /jobs/{id} [delete]
func (c *Controller) DeleteJob(ctx *fiber.Ctx) error {
	id, err := strconv.ParseInt(ctx.Params("id"), 10, 64)
	if err != nil {
		return common.ErrResponse(ctx, fiber.StatusBadRequest, "Invalid job ID")
	}
	if err = c.jobService.DeleteById(ctx.UserContext(), id); err != nil {
		return c.fail(ctx, err)
	}
	return common.OkResponse(ctx, "Job deleted successfully")
}
