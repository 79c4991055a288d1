package response

import (
	"net/http"

	"github.com/labstack/echo/v4"
)

// BadRequest writes a 400 Bad Request response with the given error message.
func BadRequest(c echo.Context, message string) error {
	return c.JSON(http.StatusBadRequest, Failure(CodeInvalidRequest, message, nil))
}

// InvalidRequestBody writes a 400 Bad Request response for malformed request bodies.
func InvalidRequestBody(c echo.Context) error {
	return BadRequest(c, MsgInvalidRequestBody)
}

// ValidationError writes a 400 Bad Request response with per-field details.
func ValidationError(c echo.Context, details map[string]string) error {
	return c.JSON(http.StatusBadRequest, Failure(CodeValidationError, MsgValidationFailed, details))
}

// ValidationErrorWithMessage writes a 400 Bad Request response with a custom message.
func ValidationErrorWithMessage(c echo.Context, message string) error {
	return c.JSON(http.StatusBadRequest, Failure(CodeValidationError, message, nil))
}

// NotFound writes a 404 Not Found response.
func NotFound(c echo.Context, message string) error {
	return c.JSON(http.StatusNotFound, Failure(CodeNotFound, message, nil))
}

// InternalServerError writes a 500 Internal Server Error response.
// The message is generic so internal details are not leaked.
func InternalServerError(c echo.Context) error {
	return c.JSON(http.StatusInternalServerError, Failure(CodeInternalError, MsgInternalError, nil))
}
