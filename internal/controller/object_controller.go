package controller

import (
	"ai-litepaper-be/internal/dto"
	"ai-litepaper-be/internal/pkg/serverutils"
	"ai-litepaper-be/internal/service"

	"github.com/gofiber/fiber/v2"
)

type IObjectController interface {
	RegisterRoutes(r fiber.Router)
	UploadURL(ctx *fiber.Ctx) error
	SetLogoImage(ctx *fiber.Ctx) error
}

type objectController struct {
	objectService service.IObjectService
}

func NewObjectController(objectService service.IObjectService) IObjectController {
	return &objectController{
		objectService: objectService,
	}
}

func (c *objectController) RegisterRoutes(r fiber.Router) {
	r.Post("/objects/upload", c.UploadURL)
	r.Put("/logo-images", c.SetLogoImage)
}

func (c *objectController) UploadURL(ctx *fiber.Ctx) error {
	res, err := c.objectService.UploadURL(ctx.Context())
	if err != nil {
		return ctx.Status(fiber.StatusInternalServerError).JSON(serverutils.ErrorResponse(500, err.Error()))
	}

	return ctx.JSON(serverutils.SuccessResponse("Upload URL created", res))
}

func (c *objectController) SetLogoImage(ctx *fiber.Ctx) error {
	var req dto.SetLogoImageRequest
	if err := ctx.BodyParser(&req); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(serverutils.ErrorResponse(400, "Invalid request body"))
	}

	if err := serverutils.ValidateRequest(req); err != nil {
		return err
	}

	res, err := c.objectService.SetLogoImage(ctx.Context(), &req)
	if err != nil {
		return ctx.Status(fiber.StatusInternalServerError).JSON(serverutils.ErrorResponse(500, err.Error()))
	}

	return ctx.JSON(serverutils.SuccessResponse("Logo image set", res))
}
