package api

import (
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"

	constant "github.com/LerianStudio/payments-engine/constants"
	"github.com/LerianStudio/payments-engine/log"
)

// WithRequestID ensures every request carries an X-Request-Id, generating one
// when the client did not supply it. The id is echoed on the response.
func WithRequestID() fiber.Handler {
	return func(c *fiber.Ctx) error {
		requestID := c.Get(constant.HeaderID)
		if requestID == "" {
			requestID = uuid.New().String()
		}

		c.Locals(constant.HeaderID, requestID)
		c.Set(constant.HeaderID, requestID)

		return c.Next()
	}
}

// WithLogging emits one structured access log entry per request.
func WithLogging(logger log.Logger) fiber.Handler {
	if logger == nil {
		logger = log.NewNop()
	}

	return func(c *fiber.Ctx) error {
		start := time.Now()
		err := c.Next()

		requestID, _ := c.Locals(constant.HeaderID).(string)

		logger.Log(c.UserContext(), log.LevelInfo, "http request",
			log.String("request_id", requestID),
			log.String("method", c.Method()),
			log.String("path", c.Path()),
			log.Int("status", c.Response().StatusCode()),
			log.Any("duration", time.Since(start)),
		)

		return err
	}
}
