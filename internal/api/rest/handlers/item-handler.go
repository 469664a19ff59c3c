package handlers

import (
	"errors"
	"strings"

	"github.com/gofiber/fiber/v2"
	"github.com/handmadefactory/backend/internal/domain"
	"github.com/handmadefactory/backend/internal/dto"
	"github.com/handmadefactory/backend/internal/helper/utils"
	"github.com/handmadefactory/backend/internal/services"
)

type ItemHandler struct {
	svc services.ItemService
}

func NewItemHandler(svc services.ItemService) *ItemHandler {
	return &ItemHandler{svc: svc}
}

func (h *ItemHandler) List(ctx *fiber.Ctx) error {
	items, err := h.svc.List()
	if err != nil {
		return utils.ResponseError(ctx, fiber.StatusInternalServerError, "internal error")
	}

	out := make([]dto.ItemResponse, 0, len(items))
	for _, item := range items {
		out = append(out, itemResponse(item))
	}
	return ctx.Status(fiber.StatusOK).JSON(out)
}

func (h *ItemHandler) Create(ctx *fiber.Ctx) error {
	var requestBody dto.ItemCreateRequest
	if err := ctx.BodyParser(&requestBody); err != nil {
		return utils.ResponseError(ctx, fiber.StatusBadRequest, "invalid request body")
	}
	// trim before validating so a whitespace-only name fails required
	requestBody.Name = strings.TrimSpace(requestBody.Name)
	if err := dto.Validate.Struct(requestBody); err != nil {
		return utils.ResponseError(ctx, fiber.StatusBadRequest, "name is required")
	}

	item, err := h.svc.Create(requestBody.Name, requestBody.Description)
	if err != nil {
		return utils.ResponseError(ctx, fiber.StatusInternalServerError, "internal error")
	}
	return ctx.Status(fiber.StatusOK).JSON(itemResponse(*item))
}

func (h *ItemHandler) Delete(ctx *fiber.Ctx) error {
	itemID, err := ctx.ParamsInt("id")
	if err != nil || itemID <= 0 {
		return utils.ResponseError(ctx, fiber.StatusNotFound, "not found")
	}

	if err := h.svc.Delete(uint(itemID)); err != nil {
		if errors.Is(err, services.ErrItemNotFound) {
			return utils.ResponseError(ctx, fiber.StatusNotFound, "not found")
		}
		return utils.ResponseError(ctx, fiber.StatusInternalServerError, "internal error")
	}

	return ctx.Status(fiber.StatusOK).JSON(dto.ItemDeleteResponse{Deleted: uint(itemID)})
}

func itemResponse(item domain.Item) dto.ItemResponse {
	return dto.ItemResponse{
		ID:          item.ID,
		Name:        item.Name,
		Description: item.Description,
	}
}
