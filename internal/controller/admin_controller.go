package controller

import (
	"ai-medtutor-be/internal/dto"
	"ai-medtutor-be/internal/pkg/serverutils"
	"ai-medtutor-be/internal/service"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
)

type IAdminController interface {
	RegisterRoutes(r fiber.Router)
}

// adminController exposes the content library and prompt template CRUD.
// Every route sits behind the JWT middleware plus the email allow-list.
type adminController struct {
	contentService service.IContentService
	promptService  service.IPromptService
	adminEmails    []string
}

func NewAdminController(
	contentService service.IContentService,
	promptService service.IPromptService,
	adminEmails []string,
) IAdminController {
	return &adminController{
		contentService: contentService,
		promptService:  promptService,
		adminEmails:    adminEmails,
	}
}

func (c *adminController) RegisterRoutes(r fiber.Router) {
	h := r.Group("/admin/v1")
	h.Use(serverutils.JwtMiddleware)
	h.Use(serverutils.AdminMiddleware(c.adminEmails))

	h.Get("content", c.GetAllContent)
	h.Get("content/:id", c.ShowContent)
	h.Post("content", c.CreateContent)
	h.Put("content/:id", c.UpdateContent)
	h.Delete("content/:id", c.DeleteContent)

	h.Get("prompt", c.GetAllPrompts)
	h.Post("prompt", c.CreatePrompt)
	h.Put("prompt/:id", c.UpdatePrompt)
	h.Delete("prompt/:id", c.DeletePrompt)
}

func (c *adminController) GetAllContent(ctx *fiber.Ctx) error {
	res, err := c.contentService.GetAll(ctx.Context())
	if err != nil {
		return err
	}
	return ctx.JSON(serverutils.SuccessResponse("Success get content items", res))
}

func (c *adminController) ShowContent(ctx *fiber.Ctx) error {
	res, err := c.contentService.Show(ctx.Context(), ctx.Params("id"))
	if err != nil {
		return err
	}
	return ctx.JSON(serverutils.SuccessResponse("Success show content item", res))
}

func (c *adminController) CreateContent(ctx *fiber.Ctx) error {
	var req dto.CreateContentRequest
	if err := ctx.BodyParser(&req); err != nil {
		return err
	}
	if err := serverutils.ValidateRequest(req); err != nil {
		return err
	}

	res, err := c.contentService.Create(ctx.Context(), &req)
	if err != nil {
		return err
	}
	return ctx.JSON(serverutils.SuccessResponse("Success create content item", res))
}

func (c *adminController) UpdateContent(ctx *fiber.Ctx) error {
	var req dto.UpdateContentRequest
	if err := ctx.BodyParser(&req); err != nil {
		return err
	}
	req.Id = ctx.Params("id")

	if err := serverutils.ValidateRequest(req); err != nil {
		return err
	}

	res, err := c.contentService.Update(ctx.Context(), &req)
	if err != nil {
		return err
	}
	return ctx.JSON(serverutils.SuccessResponse("Success update content item", res))
}

func (c *adminController) DeleteContent(ctx *fiber.Ctx) error {
	if err := c.contentService.Delete(ctx.Context(), ctx.Params("id")); err != nil {
		return err
	}
	return ctx.JSON(serverutils.SuccessResponse[any]("Success delete content item", nil))
}

func (c *adminController) GetAllPrompts(ctx *fiber.Ctx) error {
	res, err := c.promptService.GetAll(ctx.Context())
	if err != nil {
		return err
	}
	return ctx.JSON(serverutils.SuccessResponse("Success get prompts", res))
}

func (c *adminController) CreatePrompt(ctx *fiber.Ctx) error {
	var req dto.CreatePromptRequest
	if err := ctx.BodyParser(&req); err != nil {
		return err
	}
	if err := serverutils.ValidateRequest(req); err != nil {
		return err
	}

	res, err := c.promptService.Create(ctx.Context(), &req)
	if err != nil {
		return err
	}
	return ctx.JSON(serverutils.SuccessResponse("Success create prompt", res))
}

func (c *adminController) UpdatePrompt(ctx *fiber.Ctx) error {
	var req dto.UpdatePromptRequest
	if err := ctx.BodyParser(&req); err != nil {
		return err
	}

	id, err := uuid.Parse(ctx.Params("id"))
	if err != nil {
		return serverutils.NewApiError(fiber.StatusUnprocessableEntity, "Invalid prompt id")
	}
	req.Id = id

	if err := serverutils.ValidateRequest(req); err != nil {
		return err
	}

	res, err := c.promptService.Update(ctx.Context(), &req)
	if err != nil {
		return err
	}
	return ctx.JSON(serverutils.SuccessResponse("Success update prompt", res))
}

func (c *adminController) DeletePrompt(ctx *fiber.Ctx) error {
	id, err := uuid.Parse(ctx.Params("id"))
	if err != nil {
		return serverutils.NewApiError(fiber.StatusUnprocessableEntity, "Invalid prompt id")
	}

	if err := c.promptService.Delete(ctx.Context(), id); err != nil {
		return err
	}
	return ctx.JSON(serverutils.SuccessResponse[any]("Success delete prompt", nil))
}
