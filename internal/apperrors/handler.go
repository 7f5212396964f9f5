package apperrors

import (
	"errors"
	"log"

	"github.com/gofiber/fiber/v2"
)

var kindStatus = map[Kind]int{
	KindValidation:     fiber.StatusBadRequest,
	KindNotFound:       fiber.StatusNotFound,
	KindAuthentication: fiber.StatusUnauthorized,
	KindAuthorization:  fiber.StatusForbidden,
	KindConflict:       fiber.StatusConflict,
}

// ErrorHandler converts application and fiber errors into the wire format
// {"error": <kind>, "detail": <message>}. Unknown errors become 500 without
// leaking internals.
func ErrorHandler(c *fiber.Ctx, err error) error {
	if appErr, ok := As(err); ok {
		return c.Status(kindStatus[appErr.Kind]).JSON(fiber.Map{
			"error":  string(appErr.Kind),
			"detail": appErr.Detail,
		})
	}

	var fiberErr *fiber.Error
	if errors.As(err, &fiberErr) {
		return c.Status(fiberErr.Code).JSON(fiber.Map{
			"error":  "error",
			"detail": fiberErr.Message,
		})
	}

	log.Printf("unhandled error: %v", err)
	return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
		"error":  "internal_error",
		"detail": "internal server error",
	})
}
