package llm

import (
	"strings"

	"patrolscribe/internal/report"
)

// BuildGenerateSystemPrompt composes the extraction instruction: report
// kind, occurrence type, the sentinel contract, the general writing
// standard, and the kind's narrative guideline.
func BuildGenerateSystemPrompt(req GenerateRequest) string {
	parts := []string{
		"Generate a " + string(req.Kind) + " for a " + req.OccurrenceType + " incident based on the following transcription.",
		"Format the output as a structured report according to the provided JSON Schema. Return ONLY JSON that matches it.",
		"If a field is not known, use '" + report.MissingInfo + "'.",
		"DO NOT imagine or make up any information. If any information is not in the transcript, set that field to \"" + report.MissingInfo + "\".",
		"Follow this report writing standard:\n" + report.WritingStandard,
		"For the narrative section, follow these guidelines:\n" + req.Guideline,
	}
	return strings.Join(parts, "\n")
}

// BuildGenerateUserPrompt is the transcription itself, untouched. The
// model sees exactly what the officer dictated.
func BuildGenerateUserPrompt(req GenerateRequest) string {
	return req.Transcription
}

// BuildEditSystemPrompt instructs a wholesale revision of the record.
func BuildEditSystemPrompt() string {
	return "You are a helpful assistant. Edit the given report according to the user's instructions. " +
		"Ensure the edited report adheres to the provided JSON Schema and return ONLY JSON that matches it. " +
		"Keep every field you were not asked to change exactly as it is. " +
		"If a field is not known, use '" + report.MissingInfo + "'."
}

// BuildEditUserPrompt packages the current flattened report with the
// caller's instruction.
func BuildEditUserPrompt(req EditRequest) string {
	var b strings.Builder
	b.WriteString("Report:\n\n")
	b.WriteString(req.Report)
	b.WriteString("\n\nInstructions:\n\n")
	b.WriteString(req.Instructions)
	return b.String()
}
