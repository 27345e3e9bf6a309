package llm

import (
	"context"
	"io"

	"patrolscribe/constants"
	"patrolscribe/internal/report"
)

// GenerateRequest carries everything the extraction service needs to
// turn a transcription into a structured record.
type GenerateRequest struct {
	Kind           constants.ReportKind
	OccurrenceType string
	Transcription  string
	Guideline      string // narrative policy for the kind
}

// EditRequest revises an existing report. The report travels as
// flattened text; the result replaces the record wholesale.
type EditRequest struct {
	Kind         constants.ReportKind
	Report       string // flattened text
	Instructions string
}

// ReportGenerator is the extraction gateway the HTTP layer depends on.
type ReportGenerator interface {
	GenerateReport(ctx context.Context, req GenerateRequest) (report.Record, []byte /*rawJSON*/, error)
}

// ReportEditor is the edit gateway.
type ReportEditor interface {
	EditReport(ctx context.Context, req EditRequest) (report.Record, []byte /*rawJSON*/, error)
}

// Transcriber is the speech-to-text gateway.
type Transcriber interface {
	Transcribe(ctx context.Context, audio io.Reader, filename string) (string, error)
}
