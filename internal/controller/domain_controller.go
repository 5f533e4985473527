package controller

import (
	"github.com/gofiber/fiber/v2"

	"mock-interview-be/internal/catalog"
	"mock-interview-be/internal/dto"
	"mock-interview-be/internal/pkg/serverutils"
)

type IDomainController interface {
	RegisterRoutes(r fiber.Router)
	List(ctx *fiber.Ctx) error
}

type domainController struct{}

func NewDomainController() IDomainController {
	return &domainController{}
}

func (c *domainController) RegisterRoutes(r fiber.Router) {
	h := r.Group("/domain/v1")
	h.Get("", c.List)
}

func (c *domainController) List(ctx *fiber.Ctx) error {
	domains := catalog.ListAll()
	res := make([]*dto.DomainResponse, len(domains))
	for i, d := range domains {
		res[i] = &dto.DomainResponse{
			Id:            d.ID,
			DisplayName:   d.DisplayName,
			QuestionCount: len(d.Questions),
		}
	}
	return ctx.JSON(serverutils.SuccessResponse("Success list domains", res))
}
