package response

import (
	"errors"
	"time"

	"github.com/gofiber/fiber/v2"

	"BlogGolang/pkg/apperror"
)

// Envelope is the success shape every endpoint returns.
type Envelope struct {
	Success bool        `json:"success"`
	Data    interface{} `json:"data"`
	Message string      `json:"message"`
}

type errorEnvelope struct {
	Success bool      `json:"success"`
	Error   errorBody `json:"error"`
}

type errorBody struct {
	Message   string              `json:"message"`
	Code      string              `json:"code"`
	Status    int                 `json:"status"`
	Timestamp string              `json:"timestamp"`
	Errors    map[string][]string `json:"errors,omitempty"`
}

const flashErrorCookie = "flash_errors"

func Success(c *fiber.Ctx, status int, data interface{}, message string) error {
	return c.Status(status).JSON(Envelope{
		Success: true,
		Data:    data,
		Message: message,
	})
}

// RenderError converts any error into the uniform error envelope. Errors
// outside the taxonomy render as internal server errors so no failure ever
// produces an unstructured body.
func RenderError(c *fiber.Ctx, err error) error {
	appErr := toAppError(err)

	// Legacy form clients get bounced back with the message in a flash
	// cookie instead of a JSON body.
	if c.Accepts(fiber.MIMEApplicationJSON) == "" {
		if referer := c.Get(fiber.HeaderReferer); referer != "" {
			c.Cookie(&fiber.Cookie{
				Name:    flashErrorCookie,
				Value:   appErr.Message,
				Expires: time.Now().Add(time.Minute),
			})
			return c.Redirect(referer, fiber.StatusFound)
		}
	}

	return c.Status(appErr.Status).JSON(errorEnvelope{
		Success: false,
		Error: errorBody{
			Message:   appErr.Message,
			Code:      appErr.Code,
			Status:    appErr.Status,
			Timestamp: time.Now().UTC().Format(time.RFC3339),
			Errors:    appErr.Errors,
		},
	})
}

func toAppError(err error) *apperror.Error {
	if appErr, ok := apperror.As(err); ok {
		return appErr
	}

	// Fiber raises these from its router before any handler runs.
	var fiberErr *fiber.Error
	if errors.As(err, &fiberErr) {
		switch fiberErr.Code {
		case fiber.StatusMethodNotAllowed:
			return apperror.NewMethodNotAllowed()
		case fiber.StatusNotFound:
			return &apperror.Error{
				Status:  fiber.StatusNotFound,
				Code:    apperror.CodeNotFound,
				Message: fiberErr.Message,
			}
		}
	}

	return apperror.NewInternal("An unexpected error occurred", map[string]interface{}{
		"error": err.Error(),
	})
}
