package middleware

import (
	"strings"

	"github.com/gofiber/fiber/v2"
	"github.com/handmadefactory/backend/internal/services"
)

var mutatingMethods = map[string]struct{}{
	fiber.MethodPost:   {},
	fiber.MethodPut:    {},
	fiber.MethodPatch:  {},
	fiber.MethodDelete: {},
}

// Audit records mutating requests under the API prefix after the handler has
// produced its response. Reads and non-API paths are skipped on purpose to
// keep the trail down to actual mutations.
func Audit(auditSvc services.AuditService) fiber.Handler {
	return func(ctx *fiber.Ctx) error {
		if err := ctx.Next(); err != nil {
			return err
		}

		if _, ok := mutatingMethods[ctx.Method()]; !ok {
			return nil
		}
		if !strings.HasPrefix(ctx.Path(), "/api/") {
			return nil
		}

		var userID *uint
		if user, ok := CurrentUser(ctx); ok {
			id := user.ID
			userID = &id
		}

		ip := ctx.Get("X-Forwarded-For")
		if ip == "" {
			ip = ctx.IP()
		}

		auditSvc.Record(ctx.Method(), ctx.Path(), ctx.Response().StatusCode(), userID, ip)
		return nil
	}
}
