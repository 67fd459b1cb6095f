package controller

import (
	"errors"
	"fmt"

	"ai-litepaper-be/internal/constant"
	"ai-litepaper-be/internal/dto"
	"ai-litepaper-be/internal/pkg/serverutils"
	"ai-litepaper-be/internal/service"
	"ai-litepaper-be/pkg/document"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
)

type ILitepaperController interface {
	RegisterRoutes(r fiber.Router)
	Generate(ctx *fiber.Ctx) error
	Create(ctx *fiber.Ctx) error
	Recent(ctx *fiber.Ctx) error
	Download(ctx *fiber.Ctx) error
}

type litepaperController struct {
	litepaperService service.ILitepaperService
}

func NewLitepaperController(litepaperService service.ILitepaperService) ILitepaperController {
	return &litepaperController{
		litepaperService: litepaperService,
	}
}

func (c *litepaperController) RegisterRoutes(r fiber.Router) {
	h := r.Group("/litepapers")
	h.Post("/generate", c.Generate)
	h.Post("", c.Create)
	h.Get("/recent", c.Recent)
	h.Get("/:id/download", c.Download)
}

func (c *litepaperController) Generate(ctx *fiber.Ctx) error {
	var req dto.CreateLitepaperRequest
	if err := ctx.BodyParser(&req); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(serverutils.ErrorResponse(400, "Invalid request body"))
	}

	if err := serverutils.ValidateRequest(req); err != nil {
		return err
	}

	res, err := c.litepaperService.Generate(ctx.Context(), &req)
	if err != nil {
		return ctx.Status(fiber.StatusInternalServerError).JSON(serverutils.ErrorResponse(500, err.Error()))
	}

	return ctx.JSON(serverutils.SuccessResponse("Litepaper generated", res))
}

func (c *litepaperController) Create(ctx *fiber.Ctx) error {
	var req dto.CreateLitepaperRequest
	if err := ctx.BodyParser(&req); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(serverutils.ErrorResponse(400, "Invalid request body"))
	}

	if err := serverutils.ValidateRequest(req); err != nil {
		return err
	}

	res, err := c.litepaperService.Create(ctx.Context(), &req)
	if err != nil {
		return ctx.Status(fiber.StatusInternalServerError).JSON(serverutils.ErrorResponse(500, err.Error()))
	}

	return ctx.Status(fiber.StatusCreated).JSON(serverutils.SuccessResponse("Litepaper created", res))
}

func (c *litepaperController) Recent(ctx *fiber.Ctx) error {
	res, err := c.litepaperService.GetRecent(ctx.Context())
	if err != nil {
		return ctx.Status(fiber.StatusInternalServerError).JSON(serverutils.ErrorResponse(500, err.Error()))
	}

	return ctx.JSON(serverutils.SuccessResponse("Recent litepapers", res))
}

func (c *litepaperController) Download(ctx *fiber.Ctx) error {
	id, err := uuid.Parse(ctx.Params("id"))
	if err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(serverutils.ErrorResponse(400, "Invalid litepaper ID"))
	}

	format := ctx.Query("format", constant.OutputFormatPdf)

	res, err := c.litepaperService.Download(ctx.Context(), id, format)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrLitepaperNotFound):
			return ctx.Status(fiber.StatusNotFound).JSON(serverutils.ErrorResponse(404, "Litepaper not found"))
		case errors.Is(err, document.ErrUnsupportedFormat):
			return ctx.Status(fiber.StatusBadRequest).JSON(serverutils.ErrorResponse(400, "Unsupported format"))
		case errors.Is(err, document.ErrNoGeneratedContent):
			return ctx.Status(fiber.StatusBadRequest).JSON(serverutils.ErrorResponse(400, "Litepaper has no generated content"))
		}
		return ctx.Status(fiber.StatusInternalServerError).JSON(serverutils.ErrorResponse(500, err.Error()))
	}

	ctx.Set(fiber.HeaderContentType, res.ContentType)
	ctx.Set(fiber.HeaderContentDisposition, fmt.Sprintf("attachment; filename=%q", res.FileName))
	return ctx.Send(res.Data)
}
