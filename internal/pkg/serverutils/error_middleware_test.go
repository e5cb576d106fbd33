// FILE: internal/pkg/serverutils/error_middleware_test.go
package serverutils

import (
	"encoding/json"
	"net/http/httptest"
	"testing"

	"ai-character-admin-be/internal/pkg/apperrors"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
)

func newTestApp(handler fiber.Handler) *fiber.App {
	app := fiber.New()
	app.Use(ErrorHandlerMiddleware())
	app.Get("/probe", handler)
	return app
}

func probe(t *testing.T, app *fiber.App) (int, BaseResponse[any]) {
	t.Helper()
	resp, err := app.Test(httptest.NewRequest("GET", "/probe", nil), -1)
	if err != nil {
		t.Fatalf("app.Test: %v", err)
	}
	var body BaseResponse[any]
	if err := json.NewDecoder(resp.Body).Decode(&body); err != nil {
		t.Fatalf("decode body: %v", err)
	}
	return resp.StatusCode, body
}

func TestErrorHandler_ValidationErrorCarriesFields(t *testing.T) {
	app := newTestApp(func(c *fiber.Ctx) error {
		var errs apperrors.Collector
		errs.Add("char-1.message_limit", "must be non-negative, got -5")
		errs.Add("name", "must not be empty")
		return errs.Err()
	})

	status, body := probe(t, app)
	assert.Equal(t, fiber.StatusBadRequest, status)
	assert.False(t, body.Success)
	assert.Len(t, body.Errors, 2)
	assert.Equal(t, "char-1.message_limit", body.Errors[0].Field)
}

func TestErrorHandler_NotFound(t *testing.T) {
	app := newTestApp(func(c *fiber.Ctx) error {
		return apperrors.NewNotFoundError("plan", "p1")
	})

	status, body := probe(t, app)
	assert.Equal(t, fiber.StatusNotFound, status)
	assert.Equal(t, 404, body.Code)
}

func TestErrorHandler_Conflict(t *testing.T) {
	app := newTestApp(func(c *fiber.Ctx) error {
		return apperrors.NewConflictError("category '%s' still has features attached", "Media")
	})

	status, body := probe(t, app)
	assert.Equal(t, fiber.StatusConflict, status)
	assert.Contains(t, body.Message, "Media")
}

func TestErrorHandler_FiberErrorPassthrough(t *testing.T) {
	app := newTestApp(func(c *fiber.Ctx) error {
		return fiber.NewError(fiber.StatusServiceUnavailable, "No catalog syncer configured")
	})

	status, body := probe(t, app)
	assert.Equal(t, fiber.StatusServiceUnavailable, status)
	assert.Equal(t, "No catalog syncer configured", body.Message)
}

func TestErrorHandler_UnknownErrorIs500(t *testing.T) {
	app := newTestApp(func(c *fiber.Ctx) error {
		return apperrors.WrapPersistence("plan lookup", assert.AnError)
	})

	status, _ := probe(t, app)
	assert.Equal(t, fiber.StatusInternalServerError, status)
}

func TestErrorHandler_SuccessPassesThrough(t *testing.T) {
	app := newTestApp(func(c *fiber.Ctx) error {
		return c.JSON(SuccessResponse("ok", fiber.Map{"value": 1}))
	})

	status, body := probe(t, app)
	assert.Equal(t, fiber.StatusOK, status)
	assert.True(t, body.Success)
}

func TestValidateRequest_SnakeCaseFields(t *testing.T) {
	type req struct {
		PricingInput string `validate:"required"`
		Name         string `validate:"required,max=3"`
	}

	err := ValidateRequest(req{Name: "too long"})
	ve, ok := err.(*apperrors.ValidationError)
	if !ok {
		t.Fatalf("expected ValidationError, got %T", err)
	}

	fields := make(map[string]string, len(ve.Fields))
	for _, fe := range ve.Fields {
		fields[fe.Field] = fe.Reason
	}
	assert.Equal(t, "is required", fields["pricing_input"])
	assert.Equal(t, "must be at most 3 characters", fields["name"])
}
