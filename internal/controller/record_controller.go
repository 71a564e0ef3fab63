package controller

import (
	"cashbook-be/internal/dto"
	"cashbook-be/internal/pkg/apperror"
	"cashbook-be/internal/pkg/serverutils"
	"cashbook-be/internal/service"

	"github.com/gofiber/fiber/v2"
)

type IRecordController interface {
	RegisterRoutes(r fiber.Router)
	Add(ctx *fiber.Ctx) error
	List(ctx *fiber.Ctx) error
	Update(ctx *fiber.Ctx) error
	Delete(ctx *fiber.Ctx) error
}

type recordController struct {
	service service.IRecordService
}

func NewRecordController(service service.IRecordService) IRecordController {
	return &recordController{service: service}
}

func (c *recordController) RegisterRoutes(r fiber.Router) {
	h := r.Group("/:bookId/records")
	h.Get("", c.List)
	h.Post("", c.Add)
	h.Put("/:recordId", c.Update)
	h.Delete("/:recordId", c.Delete)
}

func (c *recordController) Add(ctx *fiber.Ctx) error {
	bookId, err := serverutils.ParseIDParam(ctx, "bookId", "Invalid book ID")
	if err != nil {
		return err
	}

	var req dto.CreateRecordRequest
	if err := serverutils.ParseBody(ctx, &req); err != nil {
		return err
	}

	res, err := c.service.Add(ctx.UserContext(), serverutils.UserID(ctx), bookId, &req)
	if err != nil {
		return err
	}

	return ctx.JSON(serverutils.SuccessResponse("Record added successfully", res))
}

func (c *recordController) List(ctx *fiber.Ctx) error {
	bookId, err := serverutils.ParseIDParam(ctx, "bookId", "Invalid book ID")
	if err != nil {
		return err
	}

	var req dto.ListRecordsRequest
	if err := ctx.QueryParser(&req); err != nil {
		return apperror.InvalidArgument("Invalid query parameters")
	}

	res, err := c.service.List(ctx.UserContext(), serverutils.UserID(ctx), bookId, &req)
	if err != nil {
		return err
	}

	return ctx.JSON(serverutils.SuccessResponse("Records retrieved successfully", res))
}

func (c *recordController) Update(ctx *fiber.Ctx) error {
	bookId, err := serverutils.ParseIDParam(ctx, "bookId", "Invalid book ID")
	if err != nil {
		return err
	}
	recordId, err := serverutils.ParseIDParam(ctx, "recordId", "Invalid record ID")
	if err != nil {
		return err
	}

	var req dto.UpdateRecordRequest
	if err := serverutils.ParseBody(ctx, &req); err != nil {
		return err
	}
	req.Id = recordId

	res, err := c.service.Update(ctx.UserContext(), serverutils.UserID(ctx), bookId, &req)
	if err != nil {
		return err
	}

	return ctx.JSON(serverutils.SuccessResponse("Record updated successfully", res))
}

func (c *recordController) Delete(ctx *fiber.Ctx) error {
	bookId, err := serverutils.ParseIDParam(ctx, "bookId", "Invalid book ID")
	if err != nil {
		return err
	}
	recordId, err := serverutils.ParseIDParam(ctx, "recordId", "Invalid record ID")
	if err != nil {
		return err
	}

	if err := c.service.Delete(ctx.UserContext(), serverutils.UserID(ctx), bookId, recordId); err != nil {
		return err
	}

	return ctx.JSON(serverutils.SuccessResponse[any]("Record deleted successfully", nil))
}
