package http

import (
	"time"

	"github.com/gofiber/fiber/v2"

	"github.com/livo/contratos-api/pkg/logger"
)

// RequestLogger registra cada requisição com método, rota, status e
// duração. Erros de handler seguem para o ErrorHandler do Fiber.
func RequestLogger(log *logger.Logger) fiber.Handler {
	return func(c *fiber.Ctx) error {
		start := time.Now()
		err := c.Next()

		ev := log.Info()
		status := c.Response().StatusCode()
		if status >= 500 {
			ev = log.Error()
		} else if status >= 400 {
			ev = log.Warn()
		}
		ev.
			Str("method", c.Method()).
			Str("path", c.Path()).
			Int("status", status).
			Dur("duration", time.Since(start)).
			Str("ip", c.IP()).
			Msg("request")
		return err
	}
}
