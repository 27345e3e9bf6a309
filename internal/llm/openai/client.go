package openai

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/google/uuid"

	"patrolscribe/internal/llm"
	"patrolscribe/internal/report"
)

// GenerateReport implements llm.ReportGenerator using text-only
// chat/completions with the report JSON Schema as a structured output
// constraint.
func (c *Client) GenerateReport(ctx context.Context, req llm.GenerateRequest) (report.Record, []byte, error) {
	rid := uuid.New().String()
	start := time.Now()

	c.log.Info("llm.generate.start",
		"req_id", rid,
		"model", c.cfg.GenerateModel,
		"report_kind", string(req.Kind),
		"occurrence_type", req.OccurrenceType,
		"text_len", len(req.Transcription),
	)

	messages := []map[string]any{
		{"role": "system", "content": llm.BuildGenerateSystemPrompt(req)},
		{"role": "user", "content": llm.BuildGenerateUserPrompt(req)},
		{"role": "system", "content": "JSON Schema:\n" + mustJSON(llm.BuildReportJSONSchema())},
	}

	rec, raw, err := c.completeRecord(ctx, rid, "llm.generate", c.cfg.GenerateModel, messages)
	if err != nil {
		return report.Record{}, raw, err
	}

	c.log.Info("llm.generate.ok",
		"req_id", rid,
		"occurrence_number", rec.OccurrenceNumber,
		"occurrence_type", rec.OccurrenceType,
		"narrative_len", len(rec.Narrative),
		"elapsed_ms", time.Since(start).Milliseconds(),
	)
	return rec, raw, nil
}

// EditReport implements llm.ReportEditor. The revised record replaces
// the previous one wholesale; nothing is merged locally.
func (c *Client) EditReport(ctx context.Context, req llm.EditRequest) (report.Record, []byte, error) {
	rid := uuid.New().String()
	start := time.Now()

	c.log.Info("llm.edit.start",
		"req_id", rid,
		"model", c.cfg.EditModel,
		"report_kind", string(req.Kind),
		"report_len", len(req.Report),
		"instructions_len", len(req.Instructions),
	)

	messages := []map[string]any{
		{"role": "system", "content": llm.BuildEditSystemPrompt()},
		{"role": "user", "content": llm.BuildEditUserPrompt(req)},
		{"role": "system", "content": "JSON Schema:\n" + mustJSON(llm.BuildReportJSONSchema())},
	}

	rec, raw, err := c.completeRecord(ctx, rid, "llm.edit", c.cfg.EditModel, messages)
	if err != nil {
		return report.Record{}, raw, err
	}

	c.log.Info("llm.edit.ok",
		"req_id", rid,
		"occurrence_number", rec.OccurrenceNumber,
		"elapsed_ms", time.Since(start).Milliseconds(),
	)
	return rec, raw, nil
}

// completeRecord runs one chat/completions round and turns the reply
// into a schema-valid record. Either the whole document validates or
// the call fails; partially typed results never escape.
func (c *Client) completeRecord(ctx context.Context, rid, event, model string, messages []map[string]any) (report.Record, []byte, error) {
	body := map[string]any{
		"model":           model,
		"temperature":     c.cfg.Temperature,
		"response_format": map[string]any{"type": "json_object"},
		"messages":        messages,
	}

	endpoint := strings.TrimRight(c.cfg.BaseURL, "/") + "/chat/completions"
	raw, err := c.post(ctx, endpoint, body)
	if err != nil {
		c.log.Error(event+".http_error", "req_id", rid, "error", err)
		return report.Record{}, nil, err
	}

	var cc struct {
		Choices []struct {
			Message struct {
				Content string `json:"content"`
			} `json:"message"`
		} `json:"choices"`
	}
	if err := json.Unmarshal(raw, &cc); err != nil {
		c.log.Error(event+".decode_error", "req_id", rid, "error", err, "raw_bytes", len(raw))
		return report.Record{}, raw, fmt.Errorf("decode openai response: %w", err)
	}
	if len(cc.Choices) == 0 {
		c.log.Error(event+".no_choices", "req_id", rid, "raw_bytes", len(raw))
		return report.Record{}, raw, fmt.Errorf("no choices in openai response")
	}
	content := []byte(strings.TrimSpace(cc.Choices[0].Message.Content))

	cleaned, filled, err := llm.SanitizeRecordJSON(content)
	if err != nil {
		c.log.Error(event+".sanitize_failed", "req_id", rid, "error", err)
		return report.Record{}, content, fmt.Errorf("sanitize failed: %w", err)
	}
	if len(filled) > 0 {
		c.log.Warn(event+".sentinel_filled", "req_id", rid, "fields", filled)
	}

	schema := llm.BuildReportJSONSchema()
	if err := llm.ValidateJSONAgainstSchema(schema, cleaned); err != nil {
		c.log.Error(event+".schema_validation_failed", "req_id", rid, "error", err)
		return report.Record{}, cleaned, fmt.Errorf("schema validation failed: %w", err)
	}

	var rec report.Record
	if err := json.Unmarshal(cleaned, &rec); err != nil {
		c.log.Error(event+".unmarshal_failed", "req_id", rid, "error", err)
		return report.Record{}, cleaned, fmt.Errorf("unmarshal record: %w", err)
	}
	return rec, cleaned, nil
}

func (c *Client) post(ctx context.Context, url string, body map[string]any) ([]byte, error) {
	b, err := json.Marshal(body)
	if err != nil {
		return nil, fmt.Errorf("marshal request: %w", err)
	}
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewReader(b))
	if err != nil {
		return nil, err
	}
	req.Header.Set("Authorization", "Bearer "+c.cfg.APIKey)
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("openai http error: %w", err)
	}
	defer func(body io.ReadCloser) {
		if err := body.Close(); err != nil {
			c.log.Warn("openai response body close error", "error", err)
		}
	}(resp.Body)

	raw, _ := io.ReadAll(resp.Body)
	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return nil, fmt.Errorf("openai status %d: %s", resp.StatusCode, string(raw))
	}
	return raw, nil
}

func mustJSON(v any) string {
	b, _ := json.MarshalIndent(v, "", "  ")
	return string(b)
}
