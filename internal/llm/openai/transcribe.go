package openai

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"mime/multipart"
	"net/http"
	"strings"
	"time"

	"github.com/google/uuid"
)

// Transcribe implements llm.Transcriber by posting the audio as a
// multipart body to the transcriptions endpoint. The caller owns the
// reader and its lifetime; the audio is buffered for the request only.
func (c *Client) Transcribe(ctx context.Context, audio io.Reader, filename string) (string, error) {
	rid := uuid.New().String()
	start := time.Now()

	c.log.Info("llm.transcribe.start",
		"req_id", rid,
		"model", c.cfg.TranscribeModel,
		"filename", filename,
	)

	var body bytes.Buffer
	w := multipart.NewWriter(&body)
	part, err := w.CreateFormFile("file", filename)
	if err != nil {
		return "", fmt.Errorf("build multipart body: %w", err)
	}
	if _, err := io.Copy(part, audio); err != nil {
		return "", fmt.Errorf("read audio: %w", err)
	}
	if err := w.WriteField("model", c.cfg.TranscribeModel); err != nil {
		return "", fmt.Errorf("build multipart body: %w", err)
	}
	if err := w.Close(); err != nil {
		return "", fmt.Errorf("build multipart body: %w", err)
	}

	endpoint := strings.TrimRight(c.cfg.BaseURL, "/") + "/audio/transcriptions"
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, endpoint, &body)
	if err != nil {
		return "", err
	}
	req.Header.Set("Authorization", "Bearer "+c.cfg.APIKey)
	req.Header.Set("Content-Type", w.FormDataContentType())

	resp, err := c.httpClient.Do(req)
	if err != nil {
		c.log.Error("llm.transcribe.http_error", "req_id", rid, "error", err,
			"elapsed_ms", time.Since(start).Milliseconds())
		return "", fmt.Errorf("openai http error: %w", err)
	}
	defer func(body io.ReadCloser) {
		if err := body.Close(); err != nil {
			c.log.Warn("openai response body close error", "error", err)
		}
	}(resp.Body)

	raw, _ := io.ReadAll(resp.Body)
	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		c.log.Error("llm.transcribe.status_error", "req_id", rid, "status", resp.StatusCode,
			"elapsed_ms", time.Since(start).Milliseconds())
		return "", fmt.Errorf("openai status %d: %s", resp.StatusCode, string(raw))
	}

	var out struct {
		Text string `json:"text"`
	}
	if err := json.Unmarshal(raw, &out); err != nil {
		c.log.Error("llm.transcribe.decode_error", "req_id", rid, "error", err)
		return "", fmt.Errorf("decode transcription response: %w", err)
	}

	c.log.Info("llm.transcribe.ok",
		"req_id", rid,
		"text_len", len(out.Text),
		"elapsed_ms", time.Since(start).Milliseconds(),
	)
	return out.Text, nil
}
