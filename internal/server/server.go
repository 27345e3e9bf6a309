// Package server exposes the report pipeline over HTTP. Handlers are
// thin: parse the form, call a gateway or renderer, translate errors.
package server

import (
	"log/slog"
	"os"

	"github.com/gofiber/fiber/v2"

	"patrolscribe/internal/llm"
)

type Server struct {
	generator   llm.ReportGenerator
	editor      llm.ReportEditor
	transcriber llm.Transcriber
	tempDir     string
	log         *slog.Logger
}

// New wires the injected gateways. Uploaded audio is staged under
// tempDir; pass "" for the OS default.
func New(gen llm.ReportGenerator, ed llm.ReportEditor, tr llm.Transcriber, logger *slog.Logger) *Server {
	if logger == nil {
		logger = slog.Default()
	}
	return &Server{
		generator:   gen,
		editor:      ed,
		transcriber: tr,
		tempDir:     os.TempDir(),
		log:         logger,
	}
}

// RegisterRoutes attaches all endpoints to the app.
func (s *Server) RegisterRoutes(app *fiber.App) {
	app.Get("/", s.handleIndex)
	app.Get("/healthz", s.handleHealth)
	app.Post("/transcribe", s.handleTranscribe)
	app.Post("/generate_report", s.handleGenerateReport)
	app.Post("/edit_report", s.handleEditReport)
	app.Post("/download_report", s.handleDownloadReport)
}
