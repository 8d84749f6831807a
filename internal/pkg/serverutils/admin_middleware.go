package serverutils

import (
	"strings"

	"github.com/gofiber/fiber/v2"
)

// AdminMiddleware gates a route group behind a fixed email allow-list.
// Runs after JwtMiddleware, which stores the email claim in locals.
func AdminMiddleware(allowedEmails []string) fiber.Handler {
	allowed := make(map[string]struct{}, len(allowedEmails))
	for _, email := range allowedEmails {
		allowed[strings.ToLower(email)] = struct{}{}
	}

	return func(ctx *fiber.Ctx) error {
		email, ok := ctx.Locals("user_email").(string)
		if !ok || email == "" {
			return ctx.Status(fiber.StatusForbidden).JSON(fiber.Map{"message": "Admin access required"})
		}
		if _, found := allowed[strings.ToLower(email)]; !found {
			return ctx.Status(fiber.StatusForbidden).JSON(fiber.Map{"message": "Admin access required"})
		}
		return ctx.Next()
	}
}
