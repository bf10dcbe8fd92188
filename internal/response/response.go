package response

import (
	"errors"

	"github.com/Rosanadeaibes/my-notes/internal/apperror"
	"github.com/gofiber/fiber/v2"
)

// Envelope is the uniform response shape: {statusCode, message, data?} on
// success and {statusCode, message} on failure. Message is a string, or a
// list of strings for multi-field validation failures.
type Envelope struct {
	StatusCode int `json:"statusCode"`
	Message    any `json:"message"`
	Data       any `json:"data,omitempty"`
}

func Success(c *fiber.Ctx, status int, message string, data any) error {
	return c.Status(status).JSON(Envelope{
		StatusCode: status,
		Message:    message,
		Data:       data,
	})
}

// ErrorHandler is installed as the Fiber error handler so every error path,
// expected or not, renders the same envelope. Unexpected errors are
// normalized to a 500 with the original message attached.
func ErrorHandler(c *fiber.Ctx, err error) error {
	var appErr *apperror.Error
	if errors.As(err, &appErr) {
		return c.Status(appErr.Code).JSON(Envelope{
			StatusCode: appErr.Code,
			Message:    appErr.MessagePayload(),
		})
	}

	var fiberErr *fiber.Error
	if errors.As(err, &fiberErr) {
		return c.Status(fiberErr.Code).JSON(Envelope{
			StatusCode: fiberErr.Code,
			Message:    fiberErr.Message,
		})
	}

	internal := apperror.Internal(err.Error())

	return c.Status(internal.Code).JSON(Envelope{
		StatusCode: internal.Code,
		Message:    internal.MessagePayload(),
	})
}
