// FILE: internal/controller/assistant_controller.go
package controller

import (
	"gorlea-notes-be/internal/dto"
	"gorlea-notes-be/internal/pkg/serverutils"
	"gorlea-notes-be/internal/service"

	"github.com/gofiber/fiber/v2"
)

type IAssistantController interface {
	RegisterRoutes(r fiber.Router)
	Rewrite(ctx *fiber.Ctx) error
	Save(ctx *fiber.Ctx) error
	Create(ctx *fiber.Ctx) error
	Chat(ctx *fiber.Ctx) error
	Reset(ctx *fiber.Ctx) error
}

type assistantController struct {
	assistantService service.IAssistantService
}

func NewAssistantController(assistantService service.IAssistantService) IAssistantController {
	return &assistantController{
		assistantService: assistantService,
	}
}

func (c *assistantController) RegisterRoutes(r fiber.Router) {
	h := r.Group("/assistant/v1")
	h.Use(serverutils.JwtMiddleware)
	h.Post("/rewrite", c.Rewrite)
	h.Post("/save", c.Save)
	h.Post("/create", c.Create)
	h.Post("/chat", c.Chat)
	h.Post("/reset", c.Reset)
}

func (c *assistantController) Rewrite(ctx *fiber.Ctx) error {
	userId := currentUserId(ctx)

	var req dto.RewriteRequest
	if err := ctx.BodyParser(&req); err != nil {
		return err
	}
	if err := serverutils.ValidateRequest(req); err != nil {
		return err
	}

	res, err := c.assistantService.Rewrite(ctx.Context(), userId, &req)
	if err != nil {
		return err
	}
	return ctx.JSON(serverutils.SuccessResponse("Success rewrite note", res))
}

func (c *assistantController) Save(ctx *fiber.Ctx) error {
	userId := currentUserId(ctx)

	var req dto.SaveNoteRequest
	if err := ctx.BodyParser(&req); err != nil {
		return err
	}
	if err := serverutils.ValidateRequest(req); err != nil {
		return err
	}

	res, err := c.assistantService.SaveNote(ctx.Context(), userId, &req)
	if err != nil {
		return err
	}
	return ctx.JSON(serverutils.SuccessResponse("Success resolve save", res))
}

func (c *assistantController) Create(ctx *fiber.Ctx) error {
	userId := currentUserId(ctx)

	var req dto.CreateNoteRequest
	if err := ctx.BodyParser(&req); err != nil {
		return err
	}
	if err := serverutils.ValidateRequest(req); err != nil {
		return err
	}

	res, err := c.assistantService.CreateNote(ctx.Context(), userId, &req)
	if err != nil {
		return err
	}
	return ctx.JSON(serverutils.SuccessResponse("Success create document", res))
}

func (c *assistantController) Chat(ctx *fiber.Ctx) error {
	userId := currentUserId(ctx)

	var req dto.ChatTurnRequest
	if err := ctx.BodyParser(&req); err != nil {
		return err
	}
	if err := serverutils.ValidateRequest(req); err != nil {
		return err
	}

	res, err := c.assistantService.Chat(ctx.Context(), userId, &req)
	if err != nil {
		return err
	}
	return ctx.JSON(serverutils.SuccessResponse("Success chat turn", res))
}

func (c *assistantController) Reset(ctx *fiber.Ctx) error {
	userId := currentUserId(ctx)

	var req dto.ResetConversationRequest
	if err := ctx.BodyParser(&req); err != nil {
		return err
	}
	if err := serverutils.ValidateRequest(req); err != nil {
		return err
	}

	if err := c.assistantService.Reset(ctx.Context(), userId, &req); err != nil {
		return err
	}
	return ctx.JSON(serverutils.SuccessResponse("Conversation reset", nil))
}
