package controller

import (
	"cashbook-be/internal/dto"
	"cashbook-be/internal/pkg/serverutils"
	"cashbook-be/internal/service"
	"cashbook-be/pkg/ledger/pagination"

	"github.com/gofiber/fiber/v2"
)

type IBookController interface {
	RegisterRoutes(r fiber.Router)
	Create(ctx *fiber.Ctx) error
	List(ctx *fiber.Ctx) error
	Update(ctx *fiber.Ctx) error
	Delete(ctx *fiber.Ctx) error
}

type bookController struct {
	service service.IBookService
}

func NewBookController(service service.IBookService) IBookController {
	return &bookController{service: service}
}

// RegisterRoutes expects r to be the authenticated /books group.
func (c *bookController) RegisterRoutes(r fiber.Router) {
	r.Get("", c.List)
	r.Post("", c.Create)
	r.Put("/:bookId", c.Update)
	r.Delete("/:bookId", c.Delete)
}

func (c *bookController) Create(ctx *fiber.Ctx) error {
	var req dto.CreateBookRequest
	if err := serverutils.ParseBody(ctx, &req); err != nil {
		return err
	}
	if err := serverutils.ValidateRequest(req); err != nil {
		return err
	}

	res, err := c.service.Create(ctx.UserContext(), serverutils.UserID(ctx), &req)
	if err != nil {
		return err
	}

	return ctx.JSON(serverutils.SuccessResponse("Book created successfully", res))
}

func (c *bookController) List(ctx *fiber.Ctx) error {
	params := pagination.ParseParams(ctx.Query("page"), ctx.Query("limit"))

	res, err := c.service.List(ctx.UserContext(), serverutils.UserID(ctx), params)
	if err != nil {
		return err
	}

	return ctx.JSON(serverutils.SuccessResponse("Books retrieved successfully", res))
}

func (c *bookController) Update(ctx *fiber.Ctx) error {
	bookId, err := serverutils.ParseIDParam(ctx, "bookId", "Invalid book ID")
	if err != nil {
		return err
	}

	var req dto.UpdateBookRequest
	if err := serverutils.ParseBody(ctx, &req); err != nil {
		return err
	}
	if err := serverutils.ValidateRequest(req); err != nil {
		return err
	}
	req.Id = bookId

	res, err := c.service.Update(ctx.UserContext(), serverutils.UserID(ctx), &req)
	if err != nil {
		return err
	}

	return ctx.JSON(serverutils.SuccessResponse("Book updated successfully", res))
}

func (c *bookController) Delete(ctx *fiber.Ctx) error {
	bookId, err := serverutils.ParseIDParam(ctx, "bookId", "Invalid book ID")
	if err != nil {
		return err
	}

	if err := c.service.Delete(ctx.UserContext(), serverutils.UserID(ctx), bookId); err != nil {
		return err
	}

	return ctx.JSON(serverutils.SuccessResponse[any]("Book deleted successfully", nil))
}
