package controller

import (
	"cashbook-be/internal/dto"
	"cashbook-be/internal/pkg/serverutils"
	"cashbook-be/internal/service"

	"github.com/gofiber/fiber/v2"
)

type ICategoryController interface {
	RegisterRoutes(r fiber.Router)
	Create(ctx *fiber.Ctx) error
	List(ctx *fiber.Ctx) error
	Update(ctx *fiber.Ctx) error
	Delete(ctx *fiber.Ctx) error
}

type categoryController struct {
	service service.ICategoryService
}

func NewCategoryController(service service.ICategoryService) ICategoryController {
	return &categoryController{service: service}
}

func (c *categoryController) RegisterRoutes(r fiber.Router) {
	h := r.Group("/:bookId/categories")
	h.Get("", c.List)
	h.Post("", c.Create)
	h.Put("/:categoryId", c.Update)
	h.Delete("/:categoryId", c.Delete)
}

func (c *categoryController) Create(ctx *fiber.Ctx) error {
	bookId, err := serverutils.ParseIDParam(ctx, "bookId", "Invalid book ID")
	if err != nil {
		return err
	}

	var req dto.CreateCategoryRequest
	if err := serverutils.ParseBody(ctx, &req); err != nil {
		return err
	}
	if err := serverutils.ValidateRequest(req); err != nil {
		return err
	}

	res, err := c.service.Create(ctx.UserContext(), serverutils.UserID(ctx), bookId, &req)
	if err != nil {
		return err
	}

	return ctx.JSON(serverutils.SuccessResponse("Category created successfully", res))
}

func (c *categoryController) List(ctx *fiber.Ctx) error {
	bookId, err := serverutils.ParseIDParam(ctx, "bookId", "Invalid book ID")
	if err != nil {
		return err
	}

	res, err := c.service.List(ctx.UserContext(), serverutils.UserID(ctx), bookId)
	if err != nil {
		return err
	}

	return ctx.JSON(serverutils.SuccessResponse("Categories retrieved successfully", res))
}

func (c *categoryController) Update(ctx *fiber.Ctx) error {
	bookId, err := serverutils.ParseIDParam(ctx, "bookId", "Invalid book ID")
	if err != nil {
		return err
	}
	categoryId, err := serverutils.ParseIDParam(ctx, "categoryId", "Invalid category ID")
	if err != nil {
		return err
	}

	var req dto.UpdateCategoryRequest
	if err := serverutils.ParseBody(ctx, &req); err != nil {
		return err
	}
	if err := serverutils.ValidateRequest(req); err != nil {
		return err
	}
	req.Id = categoryId

	res, err := c.service.Update(ctx.UserContext(), serverutils.UserID(ctx), bookId, &req)
	if err != nil {
		return err
	}

	return ctx.JSON(serverutils.SuccessResponse("Category updated successfully", res))
}

func (c *categoryController) Delete(ctx *fiber.Ctx) error {
	bookId, err := serverutils.ParseIDParam(ctx, "bookId", "Invalid book ID")
	if err != nil {
		return err
	}
	categoryId, err := serverutils.ParseIDParam(ctx, "categoryId", "Invalid category ID")
	if err != nil {
		return err
	}

	if err := c.service.Delete(ctx.UserContext(), serverutils.UserID(ctx), bookId, categoryId); err != nil {
		return err
	}

	return ctx.JSON(serverutils.SuccessResponse[any]("Category deleted successfully", nil))
}
