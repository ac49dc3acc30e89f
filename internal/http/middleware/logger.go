package middleware

import (
	"errors"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/utils"

	"platelookup/internal/logger"
)

// Logger logs one structured line per HTTP request.
// Fields: request_id, method, path, status, latency_ms.
func Logger(log *logger.Logger) fiber.Handler {
	return func(c *fiber.Ctx) error {
		start := time.Now()

		err := c.Next()

		log.Info("http_request",
			"request_id", GetRequestID(c),
			"method", utils.CopyString(c.Method()),
			"path", utils.CopyString(c.Path()),
			"status", statusOf(c, err),
			"latency_ms", float64(time.Since(start).Microseconds())/1000,
		)

		return err
	}
}

// statusOf resolves the status the global ErrorHandler will send for err.
func statusOf(c *fiber.Ctx, err error) int {
	if err == nil {
		return c.Response().StatusCode()
	}
	var fe *fiber.Error
	if errors.As(err, &fe) {
		return fe.Code
	}
	return fiber.StatusInternalServerError
}
