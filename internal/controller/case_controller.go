package controller

import (
	"ai-medtutor-be/internal/dto"
	"ai-medtutor-be/internal/pkg/serverutils"
	"ai-medtutor-be/internal/service"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
)

type ICaseController interface {
	RegisterRoutes(r fiber.Router)
	GetAll(ctx *fiber.Ctx) error
	Start(ctx *fiber.Ctx) error
	Session(ctx *fiber.Ctx) error
	Answer(ctx *fiber.Ctx) error
	Advance(ctx *fiber.Ctx) error
	Retreat(ctx *fiber.Ctx) error
	Retry(ctx *fiber.Ctx) error
	Review(ctx *fiber.Ctx) error
	Completions(ctx *fiber.Ctx) error
}

type caseController struct {
	caseService service.ICaseService
}

func NewCaseController(caseService service.ICaseService) ICaseController {
	return &caseController{
		caseService: caseService,
	}
}

func (c *caseController) RegisterRoutes(r fiber.Router) {
	h := r.Group("/case/v1")
	h.Use(serverutils.JwtMiddleware)
	h.Get("", c.GetAll)
	h.Get("completions", c.Completions)
	h.Post(":id/start", c.Start)
	h.Post("answer", c.Answer)
	h.Post("advance", c.Advance)
	h.Post("retreat", c.Retreat)
	h.Post("retry", c.Retry)
	h.Get("session/:id", c.Session)
	h.Get("session/:id/review", c.Review)
}

func (c *caseController) userId(ctx *fiber.Ctx) uuid.UUID {
	userIdStr := ctx.Locals("user_id").(string)
	userId, _ := uuid.Parse(userIdStr)
	return userId
}

func (c *caseController) GetAll(ctx *fiber.Ctx) error {
	res, err := c.caseService.GetAll(ctx.Context())
	if err != nil {
		return err
	}

	return ctx.JSON(serverutils.SuccessResponse("Success get case studies", res))
}

func (c *caseController) Start(ctx *fiber.Ctx) error {
	caseId := ctx.Params("id")

	res, err := c.caseService.Start(ctx.Context(), c.userId(ctx), caseId)
	if err != nil {
		return err
	}

	return ctx.JSON(serverutils.SuccessResponse("Success start case", res))
}

func (c *caseController) Session(ctx *fiber.Ctx) error {
	sessionId := ctx.Params("id")

	res, err := c.caseService.Session(ctx.Context(), c.userId(ctx), sessionId)
	if err != nil {
		return err
	}

	return ctx.JSON(serverutils.SuccessResponse("Success get case session", res))
}

func (c *caseController) Answer(ctx *fiber.Ctx) error {
	var req dto.AnswerCaseRequest
	if err := ctx.BodyParser(&req); err != nil {
		return err
	}
	if err := serverutils.ValidateRequest(req); err != nil {
		return err
	}

	res, err := c.caseService.Answer(ctx.Context(), c.userId(ctx), &req)
	if err != nil {
		return err
	}

	return ctx.JSON(serverutils.SuccessResponse("Success answer question", res))
}

func (c *caseController) Advance(ctx *fiber.Ctx) error {
	var req dto.AdvanceCaseRequest
	if err := ctx.BodyParser(&req); err != nil {
		return err
	}
	if err := serverutils.ValidateRequest(req); err != nil {
		return err
	}

	res, err := c.caseService.Advance(ctx.Context(), c.userId(ctx), &req)
	if err != nil {
		return err
	}

	return ctx.JSON(serverutils.SuccessResponse("Success advance case", res))
}

func (c *caseController) Retreat(ctx *fiber.Ctx) error {
	var req dto.AdvanceCaseRequest
	if err := ctx.BodyParser(&req); err != nil {
		return err
	}
	if err := serverutils.ValidateRequest(req); err != nil {
		return err
	}

	res, err := c.caseService.Retreat(ctx.Context(), c.userId(ctx), &req)
	if err != nil {
		return err
	}

	return ctx.JSON(serverutils.SuccessResponse("Success retreat case", res))
}

func (c *caseController) Retry(ctx *fiber.Ctx) error {
	var req dto.AdvanceCaseRequest
	if err := ctx.BodyParser(&req); err != nil {
		return err
	}
	if err := serverutils.ValidateRequest(req); err != nil {
		return err
	}

	res, err := c.caseService.Retry(ctx.Context(), c.userId(ctx), &req)
	if err != nil {
		return err
	}

	return ctx.JSON(serverutils.SuccessResponse("Success retry case", res))
}

func (c *caseController) Review(ctx *fiber.Ctx) error {
	sessionId := ctx.Params("id")

	res, err := c.caseService.Review(ctx.Context(), c.userId(ctx), sessionId)
	if err != nil {
		return err
	}

	return ctx.JSON(serverutils.SuccessResponse("Success get case review", res))
}

func (c *caseController) Completions(ctx *fiber.Ctx) error {
	res, err := c.caseService.Completions(ctx.Context(), c.userId(ctx))
	if err != nil {
		return err
	}

	return ctx.JSON(serverutils.SuccessResponse("Success get case completions", res))
}
