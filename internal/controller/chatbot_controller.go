package controller

import (
	"ai-litepaper-be/internal/dto"
	"ai-litepaper-be/internal/pkg/serverutils"
	"ai-litepaper-be/internal/service"

	"github.com/gofiber/fiber/v2"
)

type IChatbotController interface {
	RegisterRoutes(r fiber.Router)
	Message(ctx *fiber.Ctx) error
}

type chatbotController struct {
	chatbotService service.IChatbotService
}

func NewChatbotController(chatbotService service.IChatbotService) IChatbotController {
	return &chatbotController{
		chatbotService: chatbotService,
	}
}

func (c *chatbotController) RegisterRoutes(r fiber.Router) {
	h := r.Group("/chatbot")
	h.Post("/message", c.Message)
}

func (c *chatbotController) Message(ctx *fiber.Ctx) error {
	var req dto.ChatRequest
	if err := ctx.BodyParser(&req); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(serverutils.ErrorResponse(400, "Invalid request body"))
	}

	if err := serverutils.ValidateRequest(req); err != nil {
		return err
	}

	res, err := c.chatbotService.Chat(ctx.Context(), &req)
	if err != nil {
		// Keep the conversation alive: ship a courtesy reply alongside the
		// error so the client has something to render.
		return ctx.Status(fiber.StatusInternalServerError).JSON(serverutils.BaseResponse[dto.ChatResponse]{
			Success: false,
			Code:    500,
			Message: err.Error(),
			Data: dto.ChatResponse{
				Response: "I apologize, but I'm having trouble processing your request. Could you please describe your project again?",
			},
		})
	}

	return ctx.JSON(serverutils.SuccessResponse("Chat response", res))
}
