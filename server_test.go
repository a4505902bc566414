package main

import (
	"encoding/json"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"i4.energy/across/espwifi/esp"
)

type fakeBridge struct {
	queued [][]byte
	err    error
	status Status
}

func (b *fakeBridge) Enqueue(payload []byte) error {
	if b.err != nil {
		return b.err
	}
	b.queued = append(b.queued, payload)
	return nil
}

func (b *fakeBridge) Status() Status { return b.status }

func newTestServer(b *fakeBridge) *Server {
	return &Server{Logger: slog.New(slog.DiscardHandler), Bridge: b}
}

func TestServerSend(t *testing.T) {
	tests := []struct {
		name     string
		body     string
		err      error
		status   int
		expected string
	}{
		{name: "Text payload", body: `{"payload":"hello"}`, status: http.StatusAccepted, expected: "hello"},
		{name: "Base64 payload", body: `{"payload":"AAEC","encoding":"base64"}`, status: http.StatusAccepted, expected: "\x00\x01\x02"},
		{name: "Invalid JSON", body: `{`, status: http.StatusBadRequest},
		{name: "Missing payload", body: `{}`, status: http.StatusBadRequest},
		{name: "Bad base64", body: `{"payload":"!!","encoding":"base64"}`, status: http.StatusBadRequest},
		{name: "Unknown encoding", body: `{"payload":"x","encoding":"hex"}`, status: http.StatusBadRequest},
		{name: "Payload too large", body: `{"payload":"x"}`, err: esp.ErrPayloadTooLarge, status: http.StatusBadRequest},
		{name: "Outbox full", body: `{"payload":"x"}`, err: ErrOutboxFull, status: http.StatusServiceUnavailable},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			b := &fakeBridge{err: tt.err}
			rec := httptest.NewRecorder()
			req := httptest.NewRequest(http.MethodPost, "/send", strings.NewReader(tt.body))

			newTestServer(b).ServeHTTP(rec, req)

			if rec.Code != tt.status {
				t.Fatalf("expected status %d, got %d: %s", tt.status, rec.Code, rec.Body)
			}
			if tt.expected == "" {
				if len(b.queued) != 0 {
					t.Error("nothing should be queued")
				}
				return
			}
			if len(b.queued) != 1 || string(b.queued[0]) != tt.expected {
				t.Errorf("expected %q queued, got %q", tt.expected, b.queued)
			}
		})
	}

	t.Run("GET is not allowed", func(t *testing.T) {
		rec := httptest.NewRecorder()
		newTestServer(&fakeBridge{}).ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/send", nil))
		if rec.Code != http.StatusMethodNotAllowed {
			t.Errorf("expected 405, got %d", rec.Code)
		}
	})
}

func TestServerStatus(t *testing.T) {
	b := &fakeBridge{status: Status{Phase: "ready", StationIP: "192.168.1.100", LinkUp: true, Sent: 4}}
	rec := httptest.NewRecorder()

	newTestServer(b).ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/status", nil))

	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}
	if ct := rec.Header().Get("Content-Type"); ct != "application/json" {
		t.Errorf("unexpected content type %q", ct)
	}
	var got Status
	if err := json.NewDecoder(rec.Body).Decode(&got); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if got != b.status {
		t.Errorf("expected %+v, got %+v", b.status, got)
	}
}
