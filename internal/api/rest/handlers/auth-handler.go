package handlers

import (
	"errors"

	"github.com/gofiber/fiber/v2"
	"github.com/handmadefactory/backend/internal/api/rest/middleware"
	"github.com/handmadefactory/backend/internal/dto"
	"github.com/handmadefactory/backend/internal/helper"
	"github.com/handmadefactory/backend/internal/helper/utils"
	"github.com/handmadefactory/backend/internal/services"
)

type AuthHandler struct {
	svc  services.AuthService
	auth helper.Auth
}

func NewAuthHandler(svc services.AuthService, auth helper.Auth) *AuthHandler {
	return &AuthHandler{svc: svc, auth: auth}
}

// Login returns a bearer token on success. Unknown email and wrong password
// produce the same response so the two cannot be told apart.
func (h *AuthHandler) Login(ctx *fiber.Ctx) error {
	var requestBody dto.LoginRequest
	if err := ctx.BodyParser(&requestBody); err != nil {
		return utils.ResponseError(ctx, fiber.StatusBadRequest, "email and password are required")
	}
	if err := dto.Validate.Struct(requestBody); err != nil {
		return utils.ResponseError(ctx, fiber.StatusBadRequest, "email and password are required")
	}

	user, err := h.svc.Login(requestBody.Email, requestBody.Password)
	if err != nil {
		if errors.Is(err, services.ErrInvalidCredentials) {
			return utils.ResponseError(ctx, fiber.StatusUnauthorized, "invalid credentials")
		}
		return utils.ResponseError(ctx, fiber.StatusInternalServerError, "internal error")
	}

	token, err := h.auth.GenerateToken(user.Email)
	if err != nil {
		return utils.ResponseError(ctx, fiber.StatusInternalServerError, "could not generate token")
	}

	return ctx.Status(fiber.StatusOK).JSON(dto.TokenResponse{
		AccessToken: token,
		TokenType:   "bearer",
	})
}

// Me returns the authenticated principal's profile and role names.
func (h *AuthHandler) Me(ctx *fiber.Ctx) error {
	user, ok := middleware.CurrentUser(ctx)
	if !ok {
		return utils.ResponseError(ctx, fiber.StatusUnauthorized, "unauthorized")
	}

	roles := middleware.CurrentRoles(ctx)
	if roles == nil {
		roles = []string{}
	}

	return ctx.Status(fiber.StatusOK).JSON(dto.MeResponse{
		ID:       user.ID,
		Email:    user.Email,
		FullName: user.FullName,
		Roles:    roles,
	})
}
