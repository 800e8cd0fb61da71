package config

import (
	"github.com/gofiber/fiber/v2"
	jsoniter "github.com/json-iterator/go"
	"github.com/sirupsen/logrus"

	"BlogGolang/pkg/apperror"
	"BlogGolang/pkg/response"
)

func NewFiber(logger *logrus.Logger) *fiber.App {
	app := fiber.New(
		fiber.Config{
			AppName:           "Blog Backend",
			BodyLimit:         50 * 1024 * 1024,
			DisableKeepalive:  false,
			StrictRouting:     false,
			CaseSensitive:     true,
			EnablePrintRoutes: true,
			JSONEncoder:       jsoniter.Marshal,
			JSONDecoder:       jsoniter.Unmarshal,
			ErrorHandler:      newErrorHandler(logger),
		})

	return app
}

// newErrorHandler renders every error through the taxonomy and logs
// diagnostic details that never reach the caller.
func newErrorHandler(logger *logrus.Logger) fiber.ErrorHandler {
	return func(c *fiber.Ctx, err error) error {
		requestID, ok := c.Locals("X-Request-ID").(string)
		if !ok || requestID == "" {
			requestID = "unknown"
		}

		fields := logrus.Fields{
			"request_id": requestID,
			"path":       c.Path(),
			"method":     c.Method(),
			"error":      err.Error(),
		}

		if appErr, found := apperror.As(err); found {
			if appErr.Details != nil {
				fields["details"] = appErr.Details
			}
			if appErr.Status >= 500 {
				logger.WithFields(fields).Error("Request failed")
			} else {
				logger.WithFields(fields).Warn("Request failed")
			}
		} else {
			logger.WithFields(fields).Error("Unexpected error")
		}

		return response.RenderError(c, err)
	}
}
