package user

import (
	"context"
	"strconv"

	"hrm/inner/common"
	"hrm/inner/web"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
)

type Controller struct {
	server      *web.Server
	userService Svc
	logger      *common.Logger
}

// интерфейс сервиса user.Service
type Svc interface {
	CreateUser(ctx context.Context, request CreateRequest) (Response, error)
	Login(ctx context.Context, request LoginRequest) (Response, error)
	FindById(ctx context.Context, id int64) (Response, error)
	FindAll(ctx context.Context) ([]Response, error)
	DeleteById(ctx context.Context, id int64) error
}

func NewController(server *web.Server, userService Svc, logger *common.Logger) *Controller {
	return &Controller{
		server:      server,
		userService: userService,
		logger:      logger,
	}
}

// функция для регистрации маршрутов
func (c *Controller) RegisterRoutes() {
	c.logger.Info("Registering user routes")
	// полный маршрут получится "/api/v1/users"
	api := c.server.GroupApiV1
	api.Post("/users", c.CreateUser)
	api.Post("/users/login", c.Login)
	api.Get("/users", c.FindAllUsers)
	api.Get("/users/:id", c.FindUserById)
	api.Delete("/users/:id", c.DeleteUserById)
	c.logger.Info("User routes registered successfully")
}

// @Summary Create user
// @Tags users
// @Accept json
// @Produce json
// @Param request body CreateRequest true "User"
// @Success 200 {object} common.Response[Response]
// @Failure 409 {object} common.Response[any]
// @Router /users [post]
func (c *Controller) CreateUser(ctx *fiber.Ctx) error {
	c.logger.InfoCtx(ctx, "Received create user request",
		zap.String("method", ctx.Method()),
		zap.String("path", ctx.Path()),
		zap.String("ip", ctx.IP()))

	var request CreateRequest
	if err := ctx.BodyParser(&request); err != nil {
		c.logger.ErrorCtx(ctx, "Failed to parse create user request body",
			zap.Error(err),
			zap.String("ip", ctx.IP()))
		return common.ErrResponse(ctx, fiber.StatusBadRequest, err.Error())
	}

	user, err := c.userService.CreateUser(ctx.UserContext(), request)
	if err != nil {
		if common.ErrorStatus(err) == fiber.StatusInternalServerError {
			c.logger.ErrorCtx(ctx, "create user internal error",
				zap.String("username", request.Username),
				zap.Error(err))
		} else {
			c.logger.WarnCtx(ctx, "Create user validation or conflict error",
				zap.String("username", request.Username),
				zap.Error(err))
		}
		return common.ServiceErrResponse(ctx, err)
	}

	c.logger.InfoCtx(ctx, "User created successfully",
		zap.String("username", user.Username),
		zap.Int64("id", user.Id))
	return common.OkResponse(ctx, user)
}

// @Summary Check user credentials
// @Tags users
// @Accept json
// @Produce json
// @Param request body LoginRequest true "Credentials"
// @Success 200 {object} common.Response[Response]
// @Failure 401 {object} common.Response[any]
// @Router /users/login [post]
func (c *Controller) Login(ctx *fiber.Ctx) error {
	var request LoginRequest
	if err := ctx.BodyParser(&request); err != nil {
		return common.ErrResponse(ctx, fiber.StatusBadRequest, err.Error())
	}

	user, err := c.userService.Login(ctx.UserContext(), request)
	if err != nil {
		c.logger.WarnCtx(ctx, "Login rejected",
			zap.String("username", request.Username),
			zap.String("ip", ctx.IP()),
			zap.Error(err))
		return common.ServiceErrResponse(ctx, err)
	}
	return common.OkResponse(ctx, user)
}

// @Summary Get user by id
// @Tags users
// @Produce json
// @Param id path int true "User ID"
// @Failure 400 {object} common.Response[any]
// @Failure 404 {object} common.Response[any]
// @Router /users/{id} [get]
func (c *Controller) FindUserById(ctx *fiber.Ctx) error {
	id, err := strconv.ParseInt(ctx.Params("id"), 10, 64)
	if err != nil {
		return common.ErrResponse(ctx, fiber.StatusBadRequest, "Invalid user ID")
	}

	user, err := c.userService.FindById(ctx.UserContext(), id)
	if err != nil {
		return common.ServiceErrResponse(ctx, err)
	}
	return common.OkResponse(ctx, user)
}

// @Summary List users
// @Tags users
// @Produce json
// @Router /users [get]
func (c *Controller) FindAllUsers(ctx *fiber.Ctx) error {
	users, err := c.userService.FindAll(ctx.UserContext())
	if err != nil {
		c.logger.ErrorCtx(ctx, "Failed to find all users", zap.Error(err))
		return common.ServiceErrResponse(ctx, err)
	}

	c.logger.DebugCtx(ctx, "All users retrieved successfully", zap.Int("count", len(users)))
	return common.OkResponse(ctx, users)
}

// @Summary Delete user
// @Tags users
// @Produce json
// @Param id path int true "User ID"
// @Failure 400 {object} common.Response[any]
// @Failure 404 {object} common.Response[any]
// @Router /users/{id} [delete]
func (c *Controller) DeleteUserById(ctx *fiber.Ctx) error {
	id, err := strconv.ParseInt(ctx.Params("id"), 10, 64)
	if err != nil {
		c.logger.ErrorCtx(ctx, "Invalid user ID in delete request",
			zap.String("id_param", ctx.Params("id")),
			zap.Error(err))
		return common.ErrResponse(ctx, fiber.StatusBadRequest, "Invalid user ID")
	}

	if err = c.userService.DeleteById(ctx.UserContext(), id); err != nil {
		return common.ServiceErrResponse(ctx, err)
	}

	c.logger.InfoCtx(ctx, "User deleted successfully", zap.Int64("id", id))
	return common.OkResponse(ctx, "User deleted successfully")
}
