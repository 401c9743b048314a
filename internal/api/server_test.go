package api_test

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"go.uber.org/zap"

	"github.com/dongycare/checker-backend/internal/api"
	analyzeapi "github.com/dongycare/checker-backend/internal/api/analyze"
	"github.com/dongycare/checker-backend/internal/config"
	"github.com/dongycare/checker-backend/internal/entity"
	"github.com/dongycare/checker-backend/internal/pkg/formatter"
	"github.com/dongycare/checker-backend/internal/pkg/validator"
)

type stubUsecase struct {
	raw json.RawMessage
	err error
}

func (s *stubUsecase) Analyze(_ context.Context, _ *entity.AnalyzeRequest) (json.RawMessage, error) {
	return s.raw, s.err
}

func newTestServer(t *testing.T, uc analyzeapi.AnalyzeUsecase) http.Handler {
	t.Helper()

	cfg := &config.Config{
		RateLimitCfg: config.RateLimitConfig{Rate: 1000, Capacity: 100000},
		UploadCfg:    config.UploadConfig{MaxImageSize: 5 * 1024 * 1024},
	}

	handler := analyzeapi.NewHandler(
		uc,
		validator.NewValidator(cfg.UploadCfg),
		formatter.NewFactory(),
		config.DefaultSymptomGroups(),
	)

	return api.SetupRouter(cfg, handler, zap.NewNop())
}

func validBody(t *testing.T) *bytes.Reader {
	t.Helper()

	body, err := json.Marshal(entity.AnalyzeRequest{
		SystemPrompt: "prompt",
		ContentParts: []entity.Part{{Text: "hello"}},
	})
	if err != nil {
		t.Fatal(err)
	}
	return bytes.NewReader(body)
}

func TestAnalyzeMethodNotAllowed(t *testing.T) {
	srv := newTestServer(t, &stubUsecase{})

	for _, method := range []string{http.MethodGet, http.MethodPut, http.MethodDelete} {
		req := httptest.NewRequest(method, "/api/analyze", nil)
		rec := httptest.NewRecorder()
		srv.ServeHTTP(rec, req)

		if rec.Code != http.StatusMethodNotAllowed {
			t.Errorf("%s: expected status 405, got %d", method, rec.Code)
		}

		var envelope map[string]string
		if err := json.Unmarshal(rec.Body.Bytes(), &envelope); err != nil {
			t.Fatalf("%s: invalid error body: %v", method, err)
		}
		if envelope["error"] != "Method Not Allowed" {
			t.Errorf("%s: expected error %q, got %q", method, "Method Not Allowed", envelope["error"])
		}
	}
}

func TestAnalyzePassthrough(t *testing.T) {
	raw := `{"results":{"ketLuan":"Thận Âm hư"},"analysis":{"combinedStatus":"x"}}`
	srv := newTestServer(t, &stubUsecase{raw: json.RawMessage(raw)})

	req := httptest.NewRequest(http.MethodPost, "/api/analyze", validBody(t))
	rec := httptest.NewRecorder()
	srv.ServeHTTP(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("expected status 200, got %d: %s", rec.Code, rec.Body.String())
	}
	if got := rec.Body.String(); got != raw {
		t.Errorf("body not passed through verbatim:\n got %s\nwant %s", got, raw)
	}
	if ct := rec.Header().Get("Content-Type"); ct != "application/json" {
		t.Errorf("expected application/json, got %q", ct)
	}
}

func TestAnalyzeMissingCredential(t *testing.T) {
	srv := newTestServer(t, &stubUsecase{err: entity.ErrMissingCredential})

	req := httptest.NewRequest(http.MethodPost, "/api/analyze", validBody(t))
	rec := httptest.NewRecorder()
	srv.ServeHTTP(rec, req)

	if rec.Code != http.StatusInternalServerError {
		t.Fatalf("expected status 500, got %d", rec.Code)
	}
	if !strings.Contains(rec.Body.String(), "API Key not configured.") {
		t.Errorf("unexpected body: %s", rec.Body.String())
	}
}

func TestAnalyzeProviderFailure(t *testing.T) {
	srv := newTestServer(t, &stubUsecase{err: errors.New("upstream exploded: secret detail")})

	req := httptest.NewRequest(http.MethodPost, "/api/analyze", validBody(t))
	rec := httptest.NewRecorder()
	srv.ServeHTTP(rec, req)

	if rec.Code != http.StatusInternalServerError {
		t.Fatalf("expected status 500, got %d", rec.Code)
	}
	if !strings.Contains(rec.Body.String(), "Internal Server Error during AI analysis.") {
		t.Errorf("unexpected body: %s", rec.Body.String())
	}
	if strings.Contains(rec.Body.String(), "secret detail") {
		t.Error("internal error detail leaked to the client")
	}
}

func TestAnalyzeValidation(t *testing.T) {
	srv := newTestServer(t, &stubUsecase{raw: json.RawMessage(`{}`)})

	tests := []struct {
		name string
		body string
	}{
		{"not json", `{{{`},
		{"missing prompt", `{"contentParts":[{"text":"x"}]}`},
		{"no parts", `{"systemPrompt":"p","contentParts":[]}`},
		{
			"two images",
			`{"systemPrompt":"p","contentParts":[
				{"inlineData":{"mimeType":"image/png","data":"aa"}},
				{"inlineData":{"mimeType":"image/png","data":"bb"}}
			]}`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodPost, "/api/analyze", strings.NewReader(tt.body))
			rec := httptest.NewRecorder()
			srv.ServeHTTP(rec, req)

			if rec.Code != http.StatusBadRequest {
				t.Errorf("expected status 400, got %d", rec.Code)
			}
		})
	}
}

func TestSymptomGroups(t *testing.T) {
	srv := newTestServer(t, &stubUsecase{})

	req := httptest.NewRequest(http.MethodGet, "/api/symptom-groups", nil)
	rec := httptest.NewRecorder()
	srv.ServeHTTP(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("expected status 200, got %d", rec.Code)
	}

	var groups []entity.SymptomGroup
	if err := json.Unmarshal(rec.Body.Bytes(), &groups); err != nil {
		t.Fatalf("invalid body: %v", err)
	}
	if len(groups) != 6 {
		t.Errorf("expected 6 groups, got %d", len(groups))
	}
	if groups[0].ID != "than_am_hu" {
		t.Errorf("unexpected first group: %s", groups[0].ID)
	}
}

func TestReportMarkdown(t *testing.T) {
	srv := newTestServer(t, &stubUsecase{})

	body := `{"results":{"ketLuan":"Thận Âm hư","trieuChung":["Nóng trong người"]}}`
	req := httptest.NewRequest(http.MethodPost, "/api/report", strings.NewReader(body))
	rec := httptest.NewRecorder()
	srv.ServeHTTP(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("expected status 200, got %d: %s", rec.Code, rec.Body.String())
	}
	if ct := rec.Header().Get("Content-Type"); !strings.Contains(ct, "markdown") {
		t.Errorf("unexpected content type %q", ct)
	}
	if !strings.Contains(rec.Body.String(), "Thận Âm hư") {
		t.Errorf("report does not carry the conclusion: %s", rec.Body.String())
	}
}

func TestReportUnknownFormat(t *testing.T) {
	srv := newTestServer(t, &stubUsecase{})

	req := httptest.NewRequest(http.MethodPost, "/api/report?format=docx", strings.NewReader(`{}`))
	rec := httptest.NewRecorder()
	srv.ServeHTTP(rec, req)

	if rec.Code != http.StatusBadRequest {
		t.Errorf("expected status 400, got %d", rec.Code)
	}
}

func TestHealth(t *testing.T) {
	srv := newTestServer(t, &stubUsecase{})

	req := httptest.NewRequest(http.MethodGet, "/health", nil)
	rec := httptest.NewRecorder()
	srv.ServeHTTP(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("expected status 200, got %d", rec.Code)
	}
}
