package api

import (
	"net/http"

	"github.com/gofiber/fiber/v2"
)

// Response represents a business error payload with code, title, and message.
type Response struct {
	Code    string `json:"code,omitempty"`
	Title   string `json:"title,omitempty"`
	Message string `json:"message,omitempty"`
}

// Error returns the response message.
func (e Response) Error() string {
	return e.Message
}

// OK sends an HTTP 200 OK response with a custom body.
func OK(c *fiber.Ctx, s any) error {
	return c.Status(http.StatusOK).JSON(s)
}

// BadRequest sends an HTTP 400 Bad Request response with a custom code, title and message.
func BadRequest(c *fiber.Ctx, code, title, message string) error {
	return c.Status(http.StatusBadRequest).JSON(Response{
		Code:    code,
		Title:   title,
		Message: message,
	})
}

// NotFound sends an HTTP 404 Not Found response with a custom code, title and message.
func NotFound(c *fiber.Ctx, code, title, message string) error {
	return c.Status(http.StatusNotFound).JSON(Response{
		Code:    code,
		Title:   title,
		Message: message,
	})
}
