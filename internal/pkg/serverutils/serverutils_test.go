package serverutils

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"cashbook-be/internal/pkg/apperror"
	"cashbook-be/internal/pkg/logger"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type stubAuthenticator struct {
	userId uuid.UUID
}

func (s stubAuthenticator) Authenticate(_ context.Context, token string) (uuid.UUID, error) {
	if token != "good" {
		return uuid.Nil, apperror.Unauthenticated("Invalid or expired token")
	}
	return s.userId, nil
}

func decode(t *testing.T, resp *http.Response) BaseResponse[json.RawMessage] {
	t.Helper()
	defer resp.Body.Close()
	var body BaseResponse[json.RawMessage]
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
	return body
}

func TestErrorHandlerMiddleware(t *testing.T) {
	app := fiber.New()
	app.Use(ErrorHandlerMiddleware(logger.NewNopLogger()))
	app.Get("/invalid", func(c *fiber.Ctx) error { return apperror.InvalidArgument("bad input") })
	app.Get("/missing", func(c *fiber.Ctx) error { return apperror.NotFound("Book not found") })
	app.Get("/conflict", func(c *fiber.Ctx) error { return apperror.Conflict("taken") })
	app.Get("/boom", func(c *fiber.Ctx) error { return errors.New("pq: connection refused") })
	app.Get("/fiber", func(c *fiber.Ctx) error { return fiber.NewError(fiber.StatusTeapot, "short and stout") })

	tests := []struct {
		path    string
		status  int
		message string
	}{
		{path: "/invalid", status: http.StatusBadRequest, message: "bad input"},
		{path: "/missing", status: http.StatusNotFound, message: "Book not found"},
		{path: "/conflict", status: http.StatusConflict, message: "taken"},
		{path: "/boom", status: http.StatusInternalServerError, message: "Internal server error"},
		{path: "/fiber", status: http.StatusTeapot, message: "short and stout"},
	}

	for _, tt := range tests {
		t.Run(tt.path, func(t *testing.T) {
			resp, err := app.Test(httptest.NewRequest(http.MethodGet, tt.path, nil))
			require.NoError(t, err)
			assert.Equal(t, tt.status, resp.StatusCode)

			body := decode(t, resp)
			assert.False(t, body.Success)
			assert.Equal(t, tt.status, body.Code)
			assert.Equal(t, tt.message, body.Message)
		})
	}
}

func TestJwtMiddleware(t *testing.T) {
	userId := uuid.New()
	app := fiber.New()
	app.Use(ErrorHandlerMiddleware(logger.NewNopLogger()))
	app.Get("/me", JwtMiddleware(stubAuthenticator{userId: userId}), func(c *fiber.Ctx) error {
		return c.JSON(SuccessResponse("ok", UserID(c).String()))
	})

	tests := []struct {
		name   string
		header string
		status int
	}{
		{name: "no header", header: "", status: http.StatusUnauthorized},
		{name: "wrong scheme", header: "Basic good", status: http.StatusUnauthorized},
		{name: "bad token", header: "Bearer bad", status: http.StatusUnauthorized},
		{name: "good token", header: "Bearer good", status: http.StatusOK},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodGet, "/me", nil)
			if tt.header != "" {
				req.Header.Set("Authorization", tt.header)
			}
			resp, err := app.Test(req)
			require.NoError(t, err)
			assert.Equal(t, tt.status, resp.StatusCode)

			body := decode(t, resp)
			if tt.status == http.StatusOK {
				assert.JSONEq(t, `"`+userId.String()+`"`, string(body.Data))
			}
		})
	}
}

func TestValidateRequest(t *testing.T) {
	type request struct {
		Name  string `validate:"required"`
		Email string `validate:"required,email"`
	}

	assert.NoError(t, ValidateRequest(request{Name: "a", Email: "a@b.co"}))

	err := ValidateRequest(request{Email: "nope"})
	require.Error(t, err)
	assert.True(t, apperror.Is(err, apperror.KindInvalidArgument))
	assert.Equal(t, "name is required; email must be a valid email", err.Error())
}
