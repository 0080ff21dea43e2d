package presenter

import "github.com/gofiber/fiber/v2"

// ErrorResponse — единый формат ошибки для всех JSON-маршрутов.
type ErrorResponse struct {
	Message string `json:"message" example:"resume not found"`
}

// JSON пишет тело ответа с заданным статусом.
func JSON(c *fiber.Ctx, status int, v any) error {
	return c.Status(status).JSON(v)
}

// Error оборачивает сообщение в ErrorResponse.
func Error(c *fiber.Ctx, status int, message string) error {
	return JSON(c, status, ErrorResponse{Message: message})
}
