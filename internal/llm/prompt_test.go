package llm

import (
	"strings"
	"testing"

	"patrolscribe/constants"
	"patrolscribe/internal/report"
)

func TestBuildGenerateSystemPrompt(t *testing.T) {
	req := GenerateRequest{
		Kind:           constants.GeneralOccurrence,
		OccurrenceType: "Property Crime",
		Transcription:  "irrelevant here",
		Guideline:      report.GeneralOccurrenceGuideline,
	}
	prompt := BuildGenerateSystemPrompt(req)

	for _, want := range []string{
		"General Occurrence",
		"Property Crime",
		report.MissingInfo,
		"Begin with a brief overview of the incident",
	} {
		if !strings.Contains(prompt, want) {
			t.Fatalf("generate system prompt missing %q:\n%s", want, prompt)
		}
	}
}

func TestBuildEditPrompts(t *testing.T) {
	req := EditRequest{
		Kind:         constants.CrownBrief,
		Report:       "occurrence number: TB2026-004417",
		Instructions: "Change the involvement type to Witness.",
	}

	system := BuildEditSystemPrompt()
	if !strings.Contains(system, report.MissingInfo) {
		t.Fatalf("edit system prompt missing sentinel instruction:\n%s", system)
	}

	user := BuildEditUserPrompt(req)
	if !strings.Contains(user, req.Report) {
		t.Fatalf("edit user prompt missing report:\n%s", user)
	}
	if !strings.Contains(user, req.Instructions) {
		t.Fatalf("edit user prompt missing instructions:\n%s", user)
	}
	if strings.Index(user, req.Report) > strings.Index(user, req.Instructions) {
		t.Fatal("report should precede instructions in the edit prompt")
	}
}
