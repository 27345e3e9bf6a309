package server

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"io"
	"log/slog"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"sync"
	"testing"

	"github.com/gofiber/fiber/v2"

	"patrolscribe/internal/llm"
	"patrolscribe/internal/report"
)

type fakeGenerator struct {
	rec report.Record
	err error
}

func (f *fakeGenerator) GenerateReport(ctx context.Context, req llm.GenerateRequest) (report.Record, []byte, error) {
	return f.rec, nil, f.err
}

type fakeEditor struct {
	rec report.Record
	err error
}

func (f *fakeEditor) EditReport(ctx context.Context, req llm.EditRequest) (report.Record, []byte, error) {
	return f.rec, nil, f.err
}

// fakeTranscriber echoes the audio bytes back as the transcription so
// tests can tell which upload produced which response.
type fakeTranscriber struct {
	err error
}

func (f *fakeTranscriber) Transcribe(ctx context.Context, audio io.Reader, filename string) (string, error) {
	if f.err != nil {
		return "", f.err
	}
	b, err := io.ReadAll(audio)
	if err != nil {
		return "", err
	}
	return string(b), nil
}

func newTestApp(gen llm.ReportGenerator, ed llm.ReportEditor, tr llm.Transcriber) *fiber.App {
	app := fiber.New()
	srv := New(gen, ed, tr, slog.New(slog.NewTextHandler(io.Discard, nil)))
	srv.RegisterRoutes(app)
	return app
}

func postForm(t *testing.T, app *fiber.App, path string, form url.Values) *http.Response {
	t.Helper()
	req := httptest.NewRequest(http.MethodPost, path, strings.NewReader(form.Encode()))
	req.Header.Set(fiber.HeaderContentType, fiber.MIMEApplicationForm)
	resp, err := app.Test(req, -1)
	if err != nil {
		t.Fatalf("app.Test: %v", err)
	}
	return resp
}

func decodeJSON(t *testing.T, resp *http.Response) map[string]any {
	t.Helper()
	defer resp.Body.Close()
	var out map[string]any
	if err := json.NewDecoder(resp.Body).Decode(&out); err != nil {
		t.Fatalf("decode response body: %v", err)
	}
	return out
}

func errorKind(t *testing.T, resp *http.Response) string {
	t.Helper()
	body := decodeJSON(t, resp)
	errObj, ok := body["error"].(map[string]any)
	if !ok {
		t.Fatalf("response has no error object: %v", body)
	}
	kind, _ := errObj["kind"].(string)
	return kind
}

func sampleRecord() report.Record {
	rec := report.Record{
		OfficerFullNameAndBadgeNumber: "Constable Jane DOE #1024",
		OccurrenceNumber:              "TB2026-004417",
		ReportTime:                    "14:30",
		OccurrenceType:                "Property Crime",
		OccurrenceTime:                "13:50",
		InvolvementType:               "Suspect",
		Narrative:                     "The complainant reported a broken window.",
		EndOfReportBadgeNumber:        "1024",
	}
	rec.PersonsDetails.Surname = "SMITH"
	rec.PersonsDetails.Given1 = "John"
	rec.PersonsDetails.SexType = "Male"
	rec.PersonsDetails.DateOfBirth = report.MissingInfo
	rec.PersonsAddress.HouseOrBuildingNumber = "12"
	rec.PersonsAddress.StreetAddress = "Main St"
	rec.PersonsAddress.CityTown = "Thunder Bay"
	rec.PersonsAddress.TypeOfResidence = report.MissingInfo
	rec.ContactInfo.PhoneNumber = report.MissingInfo
	rec.ContactInfo.PhoneType = report.MissingInfo
	return rec
}

func TestIndexListsEnumerations(t *testing.T) {
	app := newTestApp(&fakeGenerator{}, &fakeEditor{}, &fakeTranscriber{})

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	resp, err := app.Test(req, -1)
	if err != nil {
		t.Fatalf("app.Test: %v", err)
	}
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("status = %d, want 200", resp.StatusCode)
	}
	body := decodeJSON(t, resp)

	occ, ok := body["occurrence_types"].([]any)
	if !ok || len(occ) != 12 {
		t.Fatalf("occurrence_types = %v, want 12 entries", body["occurrence_types"])
	}
	kinds, ok := body["report_types"].([]any)
	if !ok || len(kinds) != 2 {
		t.Fatalf("report_types = %v, want 2 entries", body["report_types"])
	}
}

func TestGenerateReport(t *testing.T) {
	t.Run("ok", func(t *testing.T) {
		app := newTestApp(&fakeGenerator{rec: sampleRecord()}, &fakeEditor{}, &fakeTranscriber{})
		resp := postForm(t, app, "/generate_report", url.Values{
			"transcription":   {"unit two responding to a break and enter"},
			"occurrence_type": {"Property Crime"},
			"report_type":     {"General Occurrence"},
		})
		if resp.StatusCode != http.StatusOK {
			t.Fatalf("status = %d, want 200", resp.StatusCode)
		}
		body := decodeJSON(t, resp)
		rec, ok := body["report"].(map[string]any)
		if !ok {
			t.Fatalf("missing report object: %v", body)
		}
		if rec["occurrence_number"] != "TB2026-004417" {
			t.Fatalf("occurrence_number = %v", rec["occurrence_number"])
		}
	})

	t.Run("missing transcription", func(t *testing.T) {
		app := newTestApp(&fakeGenerator{}, &fakeEditor{}, &fakeTranscriber{})
		resp := postForm(t, app, "/generate_report", url.Values{
			"occurrence_type": {"Property Crime"},
			"report_type":     {"General Occurrence"},
		})
		if resp.StatusCode != http.StatusBadRequest {
			t.Fatalf("status = %d, want 400", resp.StatusCode)
		}
		if kind := errorKind(t, resp); kind != "validation_error" {
			t.Fatalf("kind = %q", kind)
		}
	})

	t.Run("unknown occurrence type", func(t *testing.T) {
		app := newTestApp(&fakeGenerator{}, &fakeEditor{}, &fakeTranscriber{})
		resp := postForm(t, app, "/generate_report", url.Values{
			"transcription":   {"text"},
			"occurrence_type": {"Piracy"},
			"report_type":     {"General Occurrence"},
		})
		if resp.StatusCode != http.StatusBadRequest {
			t.Fatalf("status = %d, want 400", resp.StatusCode)
		}
		if kind := errorKind(t, resp); kind != "validation_error" {
			t.Fatalf("kind = %q", kind)
		}
	})

	t.Run("unknown report type", func(t *testing.T) {
		app := newTestApp(&fakeGenerator{}, &fakeEditor{}, &fakeTranscriber{})
		resp := postForm(t, app, "/generate_report", url.Values{
			"transcription":   {"text"},
			"occurrence_type": {"Property Crime"},
			"report_type":     {"Field Memo"},
		})
		if resp.StatusCode != http.StatusBadRequest {
			t.Fatalf("status = %d, want 400", resp.StatusCode)
		}
		if kind := errorKind(t, resp); kind != "configuration_error" {
			t.Fatalf("kind = %q", kind)
		}
	})

	t.Run("upstream failure", func(t *testing.T) {
		app := newTestApp(&fakeGenerator{err: errors.New("model unavailable")}, &fakeEditor{}, &fakeTranscriber{})
		resp := postForm(t, app, "/generate_report", url.Values{
			"transcription":   {"text"},
			"occurrence_type": {"Property Crime"},
			"report_type":     {"General Occurrence"},
		})
		if resp.StatusCode != http.StatusBadGateway {
			t.Fatalf("status = %d, want 502", resp.StatusCode)
		}
		if kind := errorKind(t, resp); kind != "upstream_service_error" {
			t.Fatalf("kind = %q", kind)
		}
	})
}

func TestEditReport(t *testing.T) {
	t.Run("ok", func(t *testing.T) {
		rec := sampleRecord()
		rec.InvolvementType = "Witness"
		app := newTestApp(&fakeGenerator{}, &fakeEditor{rec: rec}, &fakeTranscriber{})
		resp := postForm(t, app, "/edit_report", url.Values{
			"report":       {report.Flatten(sampleRecord())},
			"instructions": {"Change the involvement type to Witness."},
			"report_type":  {"Crown Brief"},
		})
		if resp.StatusCode != http.StatusOK {
			t.Fatalf("status = %d, want 200", resp.StatusCode)
		}
		body := decodeJSON(t, resp)
		edited, ok := body["edited_report"].(map[string]any)
		if !ok {
			t.Fatalf("missing edited_report object: %v", body)
		}
		if edited["involvement_type"] != "Witness" {
			t.Fatalf("involvement_type = %v", edited["involvement_type"])
		}
	})

	t.Run("missing instructions", func(t *testing.T) {
		app := newTestApp(&fakeGenerator{}, &fakeEditor{}, &fakeTranscriber{})
		resp := postForm(t, app, "/edit_report", url.Values{
			"report":      {"some flattened text"},
			"report_type": {"Crown Brief"},
		})
		if resp.StatusCode != http.StatusBadRequest {
			t.Fatalf("status = %d, want 400", resp.StatusCode)
		}
		if kind := errorKind(t, resp); kind != "validation_error" {
			t.Fatalf("kind = %q", kind)
		}
	})
}

func TestDownloadReport(t *testing.T) {
	content := report.Flatten(sampleRecord())

	t.Run("pdf", func(t *testing.T) {
		app := newTestApp(&fakeGenerator{}, &fakeEditor{}, &fakeTranscriber{})
		resp := postForm(t, app, "/download_report", url.Values{
			"report_content": {content},
			"report_type":    {"Crown Brief"},
			"format":         {"pdf"},
		})
		if resp.StatusCode != http.StatusOK {
			t.Fatalf("status = %d, want 200", resp.StatusCode)
		}
		if got := resp.Header.Get(fiber.HeaderContentType); got != "application/pdf" {
			t.Fatalf("Content-Type = %q", got)
		}
		if got := resp.Header.Get(fiber.HeaderContentDisposition); !strings.Contains(got, `filename="crown_brief_report.pdf"`) {
			t.Fatalf("Content-Disposition = %q", got)
		}
		defer resp.Body.Close()
		b, err := io.ReadAll(resp.Body)
		if err != nil {
			t.Fatalf("read body: %v", err)
		}
		if !bytes.HasPrefix(b, []byte("%PDF-")) {
			t.Fatal("body is not a PDF document")
		}
	})

	t.Run("unsupported format", func(t *testing.T) {
		app := newTestApp(&fakeGenerator{}, &fakeEditor{}, &fakeTranscriber{})
		resp := postForm(t, app, "/download_report", url.Values{
			"report_content": {content},
			"report_type":    {"Crown Brief"},
			"format":         {"xml"},
		})
		if resp.StatusCode != http.StatusBadRequest {
			t.Fatalf("status = %d, want 400", resp.StatusCode)
		}
		if kind := errorKind(t, resp); kind != "validation_error" {
			t.Fatalf("kind = %q", kind)
		}
	})

	t.Run("missing content", func(t *testing.T) {
		app := newTestApp(&fakeGenerator{}, &fakeEditor{}, &fakeTranscriber{})
		resp := postForm(t, app, "/download_report", url.Values{
			"report_type": {"Crown Brief"},
			"format":      {"pdf"},
		})
		if resp.StatusCode != http.StatusBadRequest {
			t.Fatalf("status = %d, want 400", resp.StatusCode)
		}
	})
}

func audioUpload(t *testing.T, payload, filename string) (*bytes.Buffer, string) {
	t.Helper()
	var buf bytes.Buffer
	mw := multipart.NewWriter(&buf)
	fw, err := mw.CreateFormFile("file", filename)
	if err != nil {
		t.Fatalf("CreateFormFile: %v", err)
	}
	if _, err := io.WriteString(fw, payload); err != nil {
		t.Fatalf("write payload: %v", err)
	}
	if err := mw.Close(); err != nil {
		t.Fatalf("close multipart writer: %v", err)
	}
	return &buf, mw.FormDataContentType()
}

func TestTranscribe(t *testing.T) {
	t.Run("ok", func(t *testing.T) {
		app := newTestApp(&fakeGenerator{}, &fakeEditor{}, &fakeTranscriber{})
		body, contentType := audioUpload(t, "fake audio bytes", "shift.mp3")
		req := httptest.NewRequest(http.MethodPost, "/transcribe", body)
		req.Header.Set(fiber.HeaderContentType, contentType)
		resp, err := app.Test(req, -1)
		if err != nil {
			t.Fatalf("app.Test: %v", err)
		}
		if resp.StatusCode != http.StatusOK {
			t.Fatalf("status = %d, want 200", resp.StatusCode)
		}
		out := decodeJSON(t, resp)
		if out["transcription"] != "fake audio bytes" {
			t.Fatalf("transcription = %v", out["transcription"])
		}
	})

	t.Run("missing file", func(t *testing.T) {
		app := newTestApp(&fakeGenerator{}, &fakeEditor{}, &fakeTranscriber{})
		resp := postForm(t, app, "/transcribe", url.Values{})
		if resp.StatusCode != http.StatusBadRequest {
			t.Fatalf("status = %d, want 400", resp.StatusCode)
		}
		if kind := errorKind(t, resp); kind != "validation_error" {
			t.Fatalf("kind = %q", kind)
		}
	})

	t.Run("upstream failure", func(t *testing.T) {
		app := newTestApp(&fakeGenerator{}, &fakeEditor{}, &fakeTranscriber{err: errors.New("whisper down")})
		body, contentType := audioUpload(t, "payload", "shift.wav")
		req := httptest.NewRequest(http.MethodPost, "/transcribe", body)
		req.Header.Set(fiber.HeaderContentType, contentType)
		resp, err := app.Test(req, -1)
		if err != nil {
			t.Fatalf("app.Test: %v", err)
		}
		if resp.StatusCode != http.StatusBadGateway {
			t.Fatalf("status = %d, want 502", resp.StatusCode)
		}
		if kind := errorKind(t, resp); kind != "upstream_service_error" {
			t.Fatalf("kind = %q", kind)
		}
	})
}

// Concurrent uploads must each see their own staged file, never a
// neighbour's bytes.
func TestTranscribeConcurrentUploadsStayIsolated(t *testing.T) {
	app := newTestApp(&fakeGenerator{}, &fakeEditor{}, &fakeTranscriber{})

	const workers = 8
	var wg sync.WaitGroup
	errs := make(chan error, workers)

	for i := 0; i < workers; i++ {
		payload := strings.Repeat("chunk-", i+1) + "end"
		wg.Add(1)
		go func(payload string) {
			defer wg.Done()
			var buf bytes.Buffer
			mw := multipart.NewWriter(&buf)
			fw, err := mw.CreateFormFile("file", "shift.mp3")
			if err != nil {
				errs <- err
				return
			}
			if _, err := io.WriteString(fw, payload); err != nil {
				errs <- err
				return
			}
			if err := mw.Close(); err != nil {
				errs <- err
				return
			}

			req := httptest.NewRequest(http.MethodPost, "/transcribe", &buf)
			req.Header.Set(fiber.HeaderContentType, mw.FormDataContentType())
			resp, err := app.Test(req, -1)
			if err != nil {
				errs <- err
				return
			}
			defer resp.Body.Close()
			var out struct {
				Transcription string `json:"transcription"`
			}
			if err := json.NewDecoder(resp.Body).Decode(&out); err != nil {
				errs <- err
				return
			}
			if out.Transcription != payload {
				errs <- errors.New("transcription does not match uploaded payload")
			}
		}(payload)
	}
	wg.Wait()
	close(errs)
	for err := range errs {
		t.Fatal(err)
	}
}
