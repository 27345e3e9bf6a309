package server

import (
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"

	"patrolscribe/constants"
	"patrolscribe/internal/common"
	"patrolscribe/internal/llm"
	"patrolscribe/internal/render"
	"patrolscribe/internal/report"
)

// handleIndex serves the UI shell data: the closed enumerations the
// client builds its selectors from.
func (s *Server) handleIndex(c *fiber.Ctx) error {
	return c.JSON(fiber.Map{
		"occurrence_types": constants.AllOccurrenceTypes(),
		"report_types":     constants.AllReportKinds(),
	})
}

func (s *Server) handleHealth(c *fiber.Ctx) error {
	return c.JSON(fiber.Map{"status": "ok"})
}

// handleTranscribe stages the uploaded audio under a per-request unique
// path and forwards it to the transcription gateway. The temp file is
// removed on every exit path.
func (s *Server) handleTranscribe(c *fiber.Ctx) error {
	fh, err := c.FormFile("file")
	if err != nil {
		return s.writeError(c, common.ValidationError("audio file is required"))
	}

	ext := filepath.Ext(fh.Filename)
	if ext == "" {
		ext = ".mp3"
	}
	tmpPath := filepath.Join(s.tempDir, "patrolscribe-"+uuid.New().String()+ext)
	if err := c.SaveFile(fh, tmpPath); err != nil {
		return s.writeError(c, common.ValidationError("could not read uploaded audio"))
	}
	defer s.removeTemp(tmpPath)

	audio, err := os.Open(tmpPath)
	if err != nil {
		return s.writeError(c, common.UpstreamError("transcription", err))
	}
	defer audio.Close()

	text, err := s.transcriber.Transcribe(c.Context(), audio, fh.Filename)
	if err != nil {
		return s.writeError(c, common.UpstreamError("transcription", err))
	}
	return c.JSON(fiber.Map{"transcription": text})
}

func (s *Server) handleGenerateReport(c *fiber.Ctx) error {
	occurrence := strings.TrimSpace(c.FormValue("occurrence_type"))
	reportType := strings.TrimSpace(c.FormValue("report_type"))
	transcription := strings.TrimSpace(c.FormValue("transcription"))

	if transcription == "" {
		return s.writeError(c, common.ValidationError("transcription is required"))
	}
	occurrenceType, ok := constants.ParseOccurrenceType(occurrence)
	if !ok {
		return s.writeError(c, common.ValidationError("unknown occurrence type "+strconv.Quote(occurrence)))
	}
	shape, err := report.ShapeFor(reportType)
	if err != nil {
		return s.writeError(c, err)
	}

	rec, _, err := s.generator.GenerateReport(c.Context(), llm.GenerateRequest{
		Kind:           shape.Kind,
		OccurrenceType: string(occurrenceType),
		Transcription:  transcription,
		Guideline:      shape.NarrativeGuideline,
	})
	if err != nil {
		return s.writeError(c, common.UpstreamError("generation", err))
	}
	return c.JSON(fiber.Map{"report": rec})
}

func (s *Server) handleEditReport(c *fiber.Ctx) error {
	flattened := c.FormValue("report")
	instructions := strings.TrimSpace(c.FormValue("instructions"))
	reportType := strings.TrimSpace(c.FormValue("report_type"))

	if strings.TrimSpace(flattened) == "" {
		return s.writeError(c, common.ValidationError("report is required"))
	}
	if instructions == "" {
		return s.writeError(c, common.ValidationError("instructions are required"))
	}
	shape, err := report.ShapeFor(reportType)
	if err != nil {
		return s.writeError(c, err)
	}

	rec, _, err := s.editor.EditReport(c.Context(), llm.EditRequest{
		Kind:         shape.Kind,
		Report:       flattened,
		Instructions: instructions,
	})
	if err != nil {
		return s.writeError(c, common.UpstreamError("editing", err))
	}
	return c.JSON(fiber.Map{"edited_report": rec})
}

// handleDownloadReport renders the flattened text and streams the
// document from memory; no staging file is left behind.
func (s *Server) handleDownloadReport(c *fiber.Ctx) error {
	content := c.FormValue("report_content")
	reportType := strings.TrimSpace(c.FormValue("report_type"))
	formatValue := strings.TrimSpace(c.FormValue("format"))

	format, ok := constants.ParseFormat(formatValue)
	if !ok {
		return s.writeError(c, common.ValidationError("unsupported format "+strconv.Quote(formatValue)))
	}
	shape, err := report.ShapeFor(reportType)
	if err != nil {
		return s.writeError(c, err)
	}
	if strings.TrimSpace(content) == "" {
		return s.writeError(c, common.ValidationError("report_content is required"))
	}

	data, err := render.Render(format, shape.Kind, content)
	if err != nil {
		return s.writeError(c, err)
	}

	name := render.FileName(shape.Kind, format)
	c.Set(fiber.HeaderContentType, format.MIME())
	c.Set(fiber.HeaderContentDisposition, `attachment; filename="`+name+`"`)
	return c.Send(data)
}

// removeTemp deletes a staged upload. Cleanup failures are logged and
// swallowed; they never change the request outcome.
func (s *Server) removeTemp(path string) {
	if err := os.Remove(path); err != nil && !os.IsNotExist(err) {
		s.log.Warn("temp audio cleanup failed", "error", err)
	}
}
