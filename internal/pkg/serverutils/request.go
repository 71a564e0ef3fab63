package serverutils

import (
	"cashbook-be/internal/pkg/apperror"

	"github.com/gofiber/fiber/v2"
)

// ParseBody decodes the JSON body into out. Malformed JSON, including a
// non-numeric amount, is the caller's fault.
func ParseBody(ctx *fiber.Ctx, out interface{}) error {
	if err := ctx.BodyParser(out); err != nil {
		return apperror.InvalidArgument("Invalid request body")
	}
	return nil
}
