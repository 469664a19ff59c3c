package middleware

import (
	"errors"

	"github.com/gofiber/fiber/v2"
	"github.com/handmadefactory/backend/internal/domain"
	"github.com/handmadefactory/backend/internal/helper"
	"github.com/handmadefactory/backend/internal/helper/utils"
	"github.com/handmadefactory/backend/internal/services"
)

// Authenticate resolves the bearer token to an active user and stores the
// principal in Locals for the handlers and the role gate.
func Authenticate(auth helper.Auth, authSvc services.AuthService) fiber.Handler {
	return func(ctx *fiber.Ctx) error {
		subject, err := auth.VerifyToken(ctx.Get("Authorization"))
		if err != nil {
			return utils.ResponseError(ctx, fiber.StatusUnauthorized, "invalid token")
		}

		user, roles, err := authSvc.CurrentUser(subject)
		if err != nil {
			if errors.Is(err, services.ErrUnauthorized) {
				return utils.ResponseError(ctx, fiber.StatusUnauthorized, "inactive or missing user")
			}
			return utils.ResponseError(ctx, fiber.StatusInternalServerError, "internal error")
		}

		ctx.Locals("user", user)
		ctx.Locals("roles", roles)
		return ctx.Next()
	}
}

// RequireRoles passes when the principal holds at least one of the allowed
// roles. OR semantics: any intersection is sufficient.
func RequireRoles(allowed ...string) fiber.Handler {
	return func(ctx *fiber.Ctx) error {
		roles, ok := ctx.Locals("roles").([]string)
		if !ok {
			return utils.ResponseError(ctx, fiber.StatusUnauthorized, "unauthorized")
		}

		if err := services.Authorize(roles, allowed...); err != nil {
			return utils.ResponseError(ctx, fiber.StatusForbidden, "forbidden")
		}
		return ctx.Next()
	}
}

// CurrentUser reads the principal placed in Locals by Authenticate.
func CurrentUser(ctx *fiber.Ctx) (*domain.User, bool) {
	user, ok := ctx.Locals("user").(*domain.User)
	return user, ok
}

// CurrentRoles reads the principal's role names placed in Locals by
// Authenticate.
func CurrentRoles(ctx *fiber.Ctx) []string {
	roles, _ := ctx.Locals("roles").([]string)
	return roles
}
