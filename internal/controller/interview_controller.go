package controller

import (
	"io"

	"github.com/gofiber/fiber/v2"

	"mock-interview-be/internal/dto"
	"mock-interview-be/internal/pkg/serverutils"
	"mock-interview-be/internal/service"
)

type IInterviewController interface {
	RegisterRoutes(r fiber.Router)
	CreateSession(ctx *fiber.Ctx) error
	GetSession(ctx *fiber.Ctx) error
	UpdateProfile(ctx *fiber.Ctx) error
	StartInterview(ctx *fiber.Ctx) error
	GetQuestion(ctx *fiber.Ctx) error
	SubmitAnswer(ctx *fiber.Ctx) error
	GetSummary(ctx *fiber.Ctx) error
	Restart(ctx *fiber.Ctx) error
	GoHome(ctx *fiber.Ctx) error
}

type interviewController struct {
	interviewService service.IInterviewService
}

func NewInterviewController(interviewService service.IInterviewService) IInterviewController {
	return &interviewController{
		interviewService: interviewService,
	}
}

func (c *interviewController) RegisterRoutes(r fiber.Router) {
	h := r.Group("/interview/v1")
	h.Post("/session", c.CreateSession)
	h.Get("/session/:id", c.GetSession)
	h.Put("/session/:id/profile", c.UpdateProfile)
	h.Post("/session/:id/start", c.StartInterview)
	h.Get("/session/:id/question", c.GetQuestion)
	h.Post("/session/:id/answer", c.SubmitAnswer)
	h.Get("/session/:id/summary", c.GetSummary)
	h.Post("/session/:id/restart", c.Restart)
	h.Post("/session/:id/home", c.GoHome)
}

func (c *interviewController) CreateSession(ctx *fiber.Ctx) error {
	res, err := c.interviewService.CreateSession(ctx.Context())
	if err != nil {
		return err
	}
	return ctx.JSON(serverutils.SuccessResponse("Success create session", res))
}

func (c *interviewController) GetSession(ctx *fiber.Ctx) error {
	res, err := c.interviewService.GetSession(ctx.Context(), ctx.Params("id"))
	if err != nil {
		return err
	}
	return ctx.JSON(serverutils.SuccessResponse("Success show session", res))
}

func (c *interviewController) UpdateProfile(ctx *fiber.Ctx) error {
	var req dto.UpdateProfileRequest
	if err := ctx.BodyParser(&req); err != nil {
		return err
	}
	if err := serverutils.ValidateRequest(req); err != nil {
		return err
	}

	res, err := c.interviewService.UpdateProfile(ctx.Context(), ctx.Params("id"), &req)
	if err != nil {
		return err
	}
	return ctx.JSON(serverutils.SuccessResponse("Success update profile", res))
}

// StartInterview accepts multipart form data: a "domain" field plus
// optional "resume" and "job_description" files (PDF or plain text).
func (c *interviewController) StartInterview(ctx *fiber.Ctx) error {
	domainID := ctx.FormValue("domain")
	if domainID == "" {
		return serverutils.NewValidationError("domain is required")
	}

	resume, err := readFormFile(ctx, "resume")
	if err != nil {
		return err
	}
	jobDesc, err := readFormFile(ctx, "job_description")
	if err != nil {
		return err
	}

	res, err := c.interviewService.StartInterview(ctx.Context(), ctx.Params("id"), domainID, resume, jobDesc)
	if err != nil {
		return err
	}
	return ctx.JSON(serverutils.SuccessResponse("Success start interview", res))
}

func (c *interviewController) GetQuestion(ctx *fiber.Ctx) error {
	res, err := c.interviewService.GetQuestion(ctx.Context(), ctx.Params("id"))
	if err != nil {
		return err
	}
	return ctx.JSON(serverutils.SuccessResponse("Success show question", res))
}

func (c *interviewController) SubmitAnswer(ctx *fiber.Ctx) error {
	var req dto.SubmitAnswerRequest
	if err := ctx.BodyParser(&req); err != nil {
		return err
	}
	if err := serverutils.ValidateRequest(req); err != nil {
		return err
	}

	res, err := c.interviewService.SubmitAnswer(ctx.Context(), ctx.Params("id"), &req)
	if err != nil {
		return err
	}
	return ctx.JSON(serverutils.SuccessResponse("Success submit answer", res))
}

func (c *interviewController) GetSummary(ctx *fiber.Ctx) error {
	res, err := c.interviewService.GetSummary(ctx.Context(), ctx.Params("id"))
	if err != nil {
		return err
	}
	return ctx.JSON(serverutils.SuccessResponse("Success show summary", res))
}

func (c *interviewController) Restart(ctx *fiber.Ctx) error {
	res, err := c.interviewService.Restart(ctx.Context(), ctx.Params("id"))
	if err != nil {
		return err
	}
	return ctx.JSON(serverutils.SuccessResponse("Success restart interview", res))
}

func (c *interviewController) GoHome(ctx *fiber.Ctx) error {
	res, err := c.interviewService.GoHome(ctx.Context(), ctx.Params("id"))
	if err != nil {
		return err
	}
	return ctx.JSON(serverutils.SuccessResponse("Success return home", res))
}

// readFormFile returns nil when the field was not uploaded at all.
func readFormFile(ctx *fiber.Ctx, field string) (*service.FilePayload, error) {
	fileHeader, err := ctx.FormFile(field)
	if err != nil {
		return nil, nil
	}

	file, err := fileHeader.Open()
	if err != nil {
		return nil, serverutils.NewValidationError("could not read uploaded " + field)
	}
	defer file.Close()

	data, err := io.ReadAll(file)
	if err != nil {
		return nil, serverutils.NewValidationError("could not read uploaded " + field)
	}

	return &service.FilePayload{
		Data:     data,
		MimeType: fileHeader.Header.Get("Content-Type"),
	}, nil
}
