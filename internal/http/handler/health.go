package handler

import (
	"github.com/gofiber/fiber/v2"
)

// HealthCheck reports readiness. Without an LLM credential every generation
// would only return a warning, so the service reports itself unavailable.
func HealthCheck(llmConfigured bool) fiber.Handler {
	return func(c *fiber.Ctx) error {
		if !llmConfigured {
			return writeError(c, fiber.StatusServiceUnavailable, CodeServiceUnavailable, "LLM credential not configured")
		}
		return c.Status(fiber.StatusOK).JSON(fiber.Map{"status": "healthy"})
	}
}

// LivenessProbe always answers 200 while the process is serving.
func LivenessProbe() fiber.Handler {
	return func(c *fiber.Ctx) error {
		return c.SendStatus(fiber.StatusOK)
	}
}
