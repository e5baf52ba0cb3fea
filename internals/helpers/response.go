package helper

import (
	"github.com/gofiber/fiber/v2"
)

// Envelope seragam untuk semua endpoint:
// {success: true, data} atau {success: false, error}

// ✅ Success Response tanpa custom code (default 200)
func Success(c *fiber.Ctx, data interface{}) error {
	return SuccessWithCode(c, fiber.StatusOK, data)
}

// ✅ Success Response dengan custom code (contoh 201 untuk created)
func SuccessWithCode(c *fiber.Ctx, code int, data interface{}) error {
	return c.Status(code).JSON(fiber.Map{
		"success": true,
		"data":    data,
	})
}

// ✅ Error Response sederhana
func Error(c *fiber.Ctx, code int, message string) error {
	return c.Status(code).JSON(fiber.Map{
		"success": false,
		"error":   message,
	})
}

func Unauthorized(c *fiber.Ctx) error {
	return Error(c, fiber.StatusUnauthorized, "Unauthorized")
}

func ValidationError(c *fiber.Ctx, message string) error {
	return Error(c, fiber.StatusUnprocessableEntity, message)
}

// HTTPStatusForCode memetakan kode Result ke status HTTP.
func HTTPStatusForCode(code string) int {
	switch code {
	case CodeValidationError:
		return fiber.StatusUnprocessableEntity
	case CodeNotFound:
		return fiber.StatusNotFound
	case CodeAuthError:
		return fiber.StatusUnauthorized
	case CodeDBError, CodeStorageError:
		return fiber.StatusBadRequest
	default:
		return fiber.StatusInternalServerError
	}
}

// FromResult merender Result apa adanya ke envelope.
func FromResult[T any](c *fiber.Ctx, r Result[T]) error {
	if r.IsErr() {
		return Error(c, HTTPStatusForCode(r.Code()), r.Message())
	}
	return Success(c, r.Data())
}

// FromResultWithCode seperti FromResult tapi dengan status sukses custom (mis. 201).
func FromResultWithCode[T any](c *fiber.Ctx, code int, r Result[T]) error {
	if r.IsErr() {
		return Error(c, HTTPStatusForCode(r.Code()), r.Message())
	}
	return SuccessWithCode(c, code, r.Data())
}
