package controller

import (
	"time"

	"ai-medtutor-be/internal/dto"
	"ai-medtutor-be/internal/pkg/serverutils"
	"ai-medtutor-be/internal/service"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
)

type IFlashcardController interface {
	RegisterRoutes(r fiber.Router)
	GetAll(ctx *fiber.Ctx) error
	Review(ctx *fiber.Ctx) error
	DueReviews(ctx *fiber.Ctx) error
}

type flashcardController struct {
	flashcardService service.IFlashcardService
}

func NewFlashcardController(flashcardService service.IFlashcardService) IFlashcardController {
	return &flashcardController{
		flashcardService: flashcardService,
	}
}

func (c *flashcardController) RegisterRoutes(r fiber.Router) {
	h := r.Group("/flashcard/v1")
	h.Use(serverutils.JwtMiddleware)
	h.Get("", c.GetAll)
	h.Get("reviews/due", c.DueReviews)
	h.Post(":id/review", c.Review)
}

func (c *flashcardController) GetAll(ctx *fiber.Ctx) error {
	res, err := c.flashcardService.GetAll(ctx.Context())
	if err != nil {
		return err
	}

	return ctx.JSON(serverutils.SuccessResponse("Success get flashcards", res))
}

func (c *flashcardController) Review(ctx *fiber.Ctx) error {
	userIdStr := ctx.Locals("user_id").(string)
	userId, _ := uuid.Parse(userIdStr)

	var req dto.ReviewFlashcardRequest
	if err := ctx.BodyParser(&req); err != nil {
		return err
	}
	req.Id = ctx.Params("id")

	if err := serverutils.ValidateRequest(req); err != nil {
		return err
	}

	res, err := c.flashcardService.Review(ctx.Context(), userId, &req)
	if err != nil {
		return err
	}

	return ctx.JSON(serverutils.SuccessResponse("Success review flashcard", res))
}

func (c *flashcardController) DueReviews(ctx *fiber.Ctx) error {
	userIdStr := ctx.Locals("user_id").(string)
	userId, _ := uuid.Parse(userIdStr)

	res, err := c.flashcardService.DueReviews(ctx.Context(), userId, time.Now())
	if err != nil {
		return err
	}

	return ctx.JSON(serverutils.SuccessResponse("Success get due reviews", res))
}
