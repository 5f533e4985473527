package controller

import (
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"

	"mock-interview-be/internal/pkg/serverutils"
	"mock-interview-be/internal/service"
)

type IReportController interface {
	RegisterRoutes(r fiber.Router)
	List(ctx *fiber.Ctx) error
	Show(ctx *fiber.Ctx) error
	Download(ctx *fiber.Ctx) error
}

type reportController struct {
	reportService service.IReportService
}

func NewReportController(reportService service.IReportService) IReportController {
	return &reportController{
		reportService: reportService,
	}
}

func (c *reportController) RegisterRoutes(r fiber.Router) {
	h := r.Group("/report/v1")
	h.Get("", c.List)
	h.Get(":id", c.Show)
	h.Get(":id/download", c.Download)
}

func (c *reportController) List(ctx *fiber.Ctx) error {
	userId := ctx.Query("user_id")
	if userId == "" {
		return serverutils.NewValidationError("user_id query parameter is required")
	}

	res, err := c.reportService.GetAllByUser(ctx.Context(), userId)
	if err != nil {
		return err
	}
	return ctx.JSON(serverutils.SuccessResponse("Success list reports", res))
}

func (c *reportController) Show(ctx *fiber.Ctx) error {
	id, err := uuid.Parse(ctx.Params("id"))
	if err != nil {
		return serverutils.NewValidationError("invalid report id")
	}

	res, err := c.reportService.Show(ctx.Context(), id)
	if err != nil {
		return err
	}
	return ctx.JSON(serverutils.SuccessResponse("Success show report", res))
}

func (c *reportController) Download(ctx *fiber.Ctx) error {
	id, err := uuid.Parse(ctx.Params("id"))
	if err != nil {
		return serverutils.NewValidationError("invalid report id")
	}

	text, err := c.reportService.Render(ctx.Context(), id)
	if err != nil {
		return err
	}

	ctx.Set(fiber.HeaderContentType, "text/plain; charset=utf-8")
	ctx.Set(fiber.HeaderContentDisposition, `attachment; filename="interview_report.txt"`)
	return ctx.SendString(text)
}
