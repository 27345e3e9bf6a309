package server

import (
	"errors"

	"github.com/gofiber/fiber/v2"

	"patrolscribe/internal/common"
)

type errorBody struct {
	Error errorInfo `json:"error"`
}

type errorInfo struct {
	Kind    string `json:"kind"`
	Message string `json:"message"`
}

// writeError maps the error taxonomy onto HTTP statuses. Responses carry
// the stable kind and message only; causes (remote payloads, local
// paths) stay in the log.
func (s *Server) writeError(c *fiber.Ctx, err error) error {
	var ae *common.AppError
	if !errors.As(err, &ae) {
		ae = common.NewAppError("internal_error", "internal error", err)
	}

	status := fiber.StatusInternalServerError
	switch ae.Kind {
	case common.KindValidation, common.KindConfiguration:
		status = fiber.StatusBadRequest
	case common.KindUpstream:
		status = fiber.StatusBadGateway
	case common.KindRender:
		status = fiber.StatusInternalServerError
	}

	s.log.Error("http.request_failed",
		"path", c.Path(),
		"status", status,
		"kind", ae.Kind,
		"error", ae,
	)
	return c.Status(status).JSON(errorBody{Error: errorInfo{Kind: ae.Kind, Message: ae.Message}})
}
