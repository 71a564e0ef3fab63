// FILE: internal/pkg/serverutils/jwt_middleware.go
package serverutils

import (
	"context"

	"cashbook-be/internal/pkg/apperror"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
)

const localUserID = "user_id"

// Authenticator verifies a bearer token and yields the user it was issued to.
type Authenticator interface {
	Authenticate(ctx context.Context, token string) (uuid.UUID, error)
}

// JwtMiddleware rejects requests without a valid bearer token and stores the
// verified user id for the handlers.
func JwtMiddleware(auth Authenticator) fiber.Handler {
	return func(ctx *fiber.Ctx) error {
		tokenStr, ok := BearerToken(ctx)
		if !ok {
			return apperror.Unauthenticated("Missing token")
		}

		userId, err := auth.Authenticate(ctx.UserContext(), tokenStr)
		if err != nil {
			return err
		}

		ctx.Locals(localUserID, userId)
		return ctx.Next()
	}
}

func BearerToken(ctx *fiber.Ctx) (string, bool) {
	authHeader := ctx.Get("Authorization")
	if len(authHeader) < 7 || authHeader[:7] != "Bearer " {
		return "", false
	}
	return authHeader[7:], true
}

// UserID is only meaningful behind JwtMiddleware.
func UserID(ctx *fiber.Ctx) uuid.UUID {
	id, _ := ctx.Locals(localUserID).(uuid.UUID)
	return id
}

// ParseIDParam validates a path identifier before anything touches storage.
func ParseIDParam(ctx *fiber.Ctx, name, message string) (uuid.UUID, error) {
	id, err := uuid.Parse(ctx.Params(name))
	if err != nil {
		return uuid.Nil, apperror.InvalidArgument(message)
	}
	return id, nil
}
