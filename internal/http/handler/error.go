package handler

import (
	"errors"

	"github.com/gofiber/fiber/v2"

	"bridges/internal/bridge"
	"bridges/internal/http/middleware"
	"bridges/internal/service"
)

// errorPayload defines the standardized error response body.
type errorPayload struct {
	RequestID string        `json:"request_id"`
	Error     errorEnvelope `json:"error"`
}

type errorEnvelope struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

// requestIDFromCtx extracts request_id previously stored by middleware.RequestID.
func requestIDFromCtx(c *fiber.Ctx) string {
	if v := c.Locals(middleware.RequestIDLocalKey); v != nil {
		if s, ok := v.(string); ok {
			return s
		}
	}
	return ""
}

// writeError writes a standardized JSON error response without leaking internal errors.
//
// Parameters:
// - status: HTTP status code to return
// - code: machine-readable short error code (e.g., "INVALID_TAXID", "NOT_FOUND", "UPSTREAM_ERROR")
// - message: human-readable safe message (no internal details)
func writeError(c *fiber.Ctx, status int, code, message string) error {
	res := errorPayload{
		RequestID: requestIDFromCtx(c),
		Error: errorEnvelope{
			Code:    code,
			Message: message,
		},
	}
	return c.Status(status).JSON(res)
}

// writeFailure maps service and bridge errors onto the error payload.
// Remote and transport failures of a bridge are reported as 502 and name the
// bridge, never the underlying cause.
func writeFailure(c *fiber.Ctx, err error) error {
	var be *bridge.Error
	switch {
	case errors.Is(err, service.ErrNotFound), bridge.IsNotFound(err):
		return writeError(c, fiber.StatusNotFound, "NOT_FOUND", "resource not found")
	case errors.Is(err, service.ErrIDRequired), errors.Is(err, service.ErrOntologyRequired), errors.Is(err, service.ErrReaderNil):
		return writeError(c, fiber.StatusBadRequest, "BAD_REQUEST", err.Error())
	case errors.Is(err, service.ErrJobNotFinished):
		return writeError(c, fiber.StatusConflict, "JOB_NOT_FINISHED", "blast job has not finished")
	case errors.Is(err, service.ErrJobFailed):
		return writeError(c, fiber.StatusUnprocessableEntity, "JOB_FAILED", "blast job failed")
	case errors.As(err, &be):
		if be.Kind == bridge.KindInvalidInput {
			return writeError(c, fiber.StatusBadRequest, "INVALID_INPUT", "invalid input for "+be.Bridge)
		}
		return writeError(c, fiber.StatusBadGateway, "UPSTREAM_ERROR", be.Bridge+" service failed")
	default:
		return writeError(c, fiber.StatusInternalServerError, "INTERNAL_ERROR", "internal server error")
	}
}

// ErrorHandler returns a Fiber global error handler that standardizes error responses.
func ErrorHandler() fiber.ErrorHandler {
	return func(c *fiber.Ctx, err error) error {
		status := fiber.StatusInternalServerError
		if e, ok := err.(*fiber.Error); ok {
			status = e.Code
		}

		switch status {
		case fiber.StatusBadRequest:
			return writeError(c, status, "BAD_REQUEST", "bad request")
		case fiber.StatusNotFound:
			return writeError(c, status, "NOT_FOUND", "resource not found")
		case fiber.StatusMethodNotAllowed:
			return writeError(c, status, "METHOD_NOT_ALLOWED", "method not allowed")
		case fiber.StatusRequestEntityTooLarge:
			return writeError(c, status, "PAYLOAD_TOO_LARGE", "request body too large")
		default:
			return writeError(c, status, "INTERNAL_ERROR", "internal server error")
		}
	}
}
