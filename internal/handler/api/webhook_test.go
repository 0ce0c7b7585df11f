package api

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/skundu42/doom-backend/internal/port"
)

type mockWebhookApplier struct {
	err    error
	called bool
	in     port.WebhookInput
}

func (m *mockWebhookApplier) ApplyWebhook(ctx context.Context, in port.WebhookInput) error {
	m.called = true
	m.in = in
	return m.err
}

func TestStreamWebhookHandler(t *testing.T) {
	tests := []struct {
		name       string
		secret     string
		signature  string
		body       string
		svcErr     error
		wantStatus int
		wantCalled bool
	}{
		{
			name:       "happy path",
			secret:     "s3cret",
			signature:  "s3cret",
			body:       `{"uid":"vid42","readyToStream":true,"duration":42.4,"status":"ready"}`,
			wantStatus: http.StatusOK,
			wantCalled: true,
		},
		{
			name:       "bad signature",
			secret:     "s3cret",
			signature:  "wrong",
			body:       `{"uid":"vid42"}`,
			wantStatus: http.StatusUnauthorized,
		},
		{
			name:       "missing signature",
			secret:     "s3cret",
			body:       `{"uid":"vid42"}`,
			wantStatus: http.StatusUnauthorized,
		},
		{
			name:       "no secret configured skips the check",
			body:       `{"uid":"vid42"}`,
			wantStatus: http.StatusOK,
			wantCalled: true,
		},
		{
			name:       "invalid JSON",
			body:       `{"uid":`,
			wantStatus: http.StatusBadRequest,
		},
		{
			name:       "missing uid",
			body:       `{"status":"ready"}`,
			wantStatus: http.StatusBadRequest,
		},
		{
			name:       "infrastructure failure propagates so the provider retries",
			body:       `{"uid":"vid42"}`,
			svcErr:     errors.New("db down"),
			wantStatus: http.StatusInternalServerError,
			wantCalled: true,
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			svc := &mockWebhookApplier{err: tc.svcErr}
			h := StreamWebhookHandler(svc, tc.secret)

			req := httptest.NewRequest(http.MethodPost, "/webhooks/stream", strings.NewReader(tc.body))
			if tc.signature != "" {
				req.Header.Set(WebhookSignatureHeader, tc.signature)
			}
			rec := httptest.NewRecorder()
			h.ServeHTTP(rec, req)

			if rec.Code != tc.wantStatus {
				t.Errorf("status %d, want %d", rec.Code, tc.wantStatus)
			}
			if svc.called != tc.wantCalled {
				t.Errorf("service called = %v, want %v", svc.called, tc.wantCalled)
			}
		})
	}
}

func TestStreamWebhookHandler_ForwardsPayload(t *testing.T) {
	svc := &mockWebhookApplier{}
	h := StreamWebhookHandler(svc, "")

	body := `{"uid":"vid42","readyToStream":true,"duration":181.2,"status":"ready"}`
	req := httptest.NewRequest(http.MethodPost, "/webhooks/stream", strings.NewReader(body))
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)

	if svc.in.UID != "vid42" {
		t.Errorf("uid %q, want vid42", svc.in.UID)
	}
	if svc.in.ReadyToStream == nil || !*svc.in.ReadyToStream {
		t.Error("readyToStream not forwarded")
	}
	if svc.in.DurationSeconds == nil || *svc.in.DurationSeconds != 181.2 {
		t.Error("duration not forwarded")
	}
	if svc.in.State == nil || *svc.in.State != "ready" {
		t.Error("status not forwarded")
	}
	if !strings.Contains(rec.Body.String(), `"ok":true`) {
		t.Errorf("unexpected ack body %q", rec.Body.String())
	}
}
