package presenter

import "github.com/gofiber/fiber/v2"

type ErrorResponse struct {
	Message   string `json:"message"`
	RequestID string `json:"requestId,omitempty"`
}

// LocalRequestID is where the request logger stores the request id.
const LocalRequestID = "requestId"

func JSON(c *fiber.Ctx, status int, v any) error {
	return c.Status(status).JSON(v)
}

func Error(c *fiber.Ctx, status int, message string) error {
	rid, _ := c.Locals(LocalRequestID).(string)
	return JSON(c, status, ErrorResponse{Message: message, RequestID: rid})
}
