package http

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"
)

func TestAPIError(t *testing.T) {
	tests := []struct {
		name         string
		err          *APIError
		wantMessage  string
		wantSentinel error
	}{
		{
			name: "not found",
			err: &APIError{
				Service:    "review-api",
				StatusCode: 404,
				Message:    "manager not found",
				Endpoint:   "/overlooker-data",
			},
			wantMessage:  "review-api API error (404) at /overlooker-data: manager not found",
			wantSentinel: ErrNotFound,
		},
		{
			name: "bad request",
			err: &APIError{
				Service:    "review-api",
				StatusCode: 422,
				Message:    "invalid params",
				Endpoint:   "/transcription",
			},
			wantMessage:  "review-api API error (422) at /transcription: invalid params",
			wantSentinel: ErrBadRequest,
		},
		{
			name: "server error",
			err: &APIError{
				Service:    "review-api",
				StatusCode: 503,
				Message:    "overloaded",
				Endpoint:   "/transcription-data",
			},
			wantMessage:  "review-api API error (503) at /transcription-data: overloaded",
			wantSentinel: ErrServerError,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.err.Error(); got != tt.wantMessage {
				t.Errorf("Error() = %q, want %q", got, tt.wantMessage)
			}
			if !errors.Is(tt.err, tt.wantSentinel) {
				t.Errorf("errors.Is(%v, %v) = false, want true", tt.err, tt.wantSentinel)
			}
		})
	}
}

func TestDetail(t *testing.T) {
	apiErr := &APIError{Service: "review-api", StatusCode: 400, Message: "limit must be -1 or positive"}

	if got := Detail(apiErr); got != "limit must be -1 or positive" {
		t.Errorf("Detail() = %q", got)
	}
	if got := Detail(fmt.Errorf("wrapped: %w", apiErr)); got != "limit must be -1 or positive" {
		t.Errorf("Detail() on wrapped error = %q", got)
	}
	if got := Detail(errors.New("plain")); got != "" {
		t.Errorf("Detail() on plain error = %q, want empty", got)
	}
}

func TestIsNotFound(t *testing.T) {
	if !IsNotFound(&APIError{StatusCode: 404}) {
		t.Error("IsNotFound() = false for 404")
	}
	if IsNotFound(&APIError{StatusCode: 500}) {
		t.Error("IsNotFound() = true for 500")
	}
}

func TestClientGet(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodGet {
			t.Errorf("method = %s, want GET", r.Method)
		}
		if r.URL.Path != "/items" {
			t.Errorf("path = %s, want /items", r.URL.Path)
		}
		if got := r.Header.Get("Accept"); got != "application/json" {
			t.Errorf("Accept = %q", got)
		}
		fmt.Fprint(w, `{"value":"ok"}`)
	}))
	defer server.Close()

	client := NewClient(ClientConfig{BaseURL: server.URL, ServiceName: "test-api"})

	var result struct {
		Value string `json:"value"`
	}
	if err := client.Get(context.Background(), "/items", &result); err != nil {
		t.Fatalf("Get() error: %v", err)
	}
	if result.Value != "ok" {
		t.Errorf("result.Value = %q, want ok", result.Value)
	}
}

func TestClientPost(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if got := r.Header.Get("Content-Type"); got != "application/json" {
			t.Errorf("Content-Type = %q", got)
		}
		var body map[string]string
		if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
			t.Fatalf("decode request body: %v", err)
		}
		if body["name"] != "closing" {
			t.Errorf("body = %v", body)
		}
		fmt.Fprint(w, `{"accepted":true}`)
	}))
	defer server.Close()

	client := NewClient(ClientConfig{BaseURL: server.URL, ServiceName: "test-api"})

	var result struct {
		Accepted bool `json:"accepted"`
	}
	err := client.Post(context.Background(), "/submit", map[string]string{"name": "closing"}, &result)
	if err != nil {
		t.Fatalf("Post() error: %v", err)
	}
	if !result.Accepted {
		t.Error("result.Accepted = false")
	}
}

func TestClientErrorDetail(t *testing.T) {
	tests := []struct {
		name       string
		statusCode int
		body       string
		wantDetail string
	}{
		{
			name:       "string detail",
			statusCode: 400,
			body:       `{"detail":"origin container not found"}`,
			wantDetail: "origin container not found",
		},
		{
			name:       "structured detail kept raw",
			statusCode: 422,
			body:       `{"detail":[{"loc":["body","limit"]}]}`,
			wantDetail: `[{"loc":["body","limit"]}]`,
		},
		{
			name:       "message field",
			statusCode: 400,
			body:       `{"message":"bad input"}`,
			wantDetail: "bad input",
		},
		{
			name:       "error field",
			statusCode: 400,
			body:       `{"error":"rejected"}`,
			wantDetail: "rejected",
		},
		{
			name:       "no body falls back to status text",
			statusCode: 500,
			body:       "",
			wantDetail: "Internal Server Error",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				w.WriteHeader(tt.statusCode)
				fmt.Fprint(w, tt.body)
			}))
			defer server.Close()

			client := NewClient(ClientConfig{BaseURL: server.URL, ServiceName: "test-api"})

			err := client.Get(context.Background(), "/fail", nil)
			if err == nil {
				t.Fatal("Get() returned nil error for failure status")
			}

			var apiErr *APIError
			if !errors.As(err, &apiErr) {
				t.Fatalf("error is %T, want *APIError", err)
			}
			if apiErr.StatusCode != tt.statusCode {
				t.Errorf("StatusCode = %d, want %d", apiErr.StatusCode, tt.statusCode)
			}
			if apiErr.Message != tt.wantDetail {
				t.Errorf("Message = %q, want %q", apiErr.Message, tt.wantDetail)
			}
		})
	}
}

func TestClientDoesNotRetry(t *testing.T) {
	var attempts atomic.Int32
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		attempts.Add(1)
		w.WriteHeader(http.StatusInternalServerError)
	}))
	defer server.Close()

	client := NewClient(ClientConfig{BaseURL: server.URL, ServiceName: "test-api"})

	err := client.Get(context.Background(), "/flaky", nil)
	if !errors.Is(err, ErrServerError) {
		t.Fatalf("Get() error = %v, want server error", err)
	}
	if got := attempts.Load(); got != 1 {
		t.Errorf("server saw %d attempts, want exactly 1", got)
	}
}

func TestClientGetBinary(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "audio/mpeg; charset=binary")
		w.Write([]byte{0x49, 0x44, 0x33})
	}))
	defer server.Close()

	client := NewClient(ClientConfig{BaseURL: server.URL, ServiceName: "test-api"})

	data, mime, err := client.GetBinary(context.Background(), "/stream-audio")
	if err != nil {
		t.Fatalf("GetBinary() error: %v", err)
	}
	if mime != "audio/mpeg" {
		t.Errorf("mime = %q, want audio/mpeg without parameters", mime)
	}
	if len(data) != 3 || data[0] != 0x49 {
		t.Errorf("data = %v", data)
	}
}

func TestClientBaseURLTrimming(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/items" {
			t.Errorf("path = %q, want /items", r.URL.Path)
		}
		fmt.Fprint(w, `{}`)
	}))
	defer server.Close()

	client := NewClient(ClientConfig{BaseURL: server.URL + "/", ServiceName: "test-api"})
	if err := client.Get(context.Background(), "/items", nil); err != nil {
		t.Fatalf("Get() error: %v", err)
	}
}

func TestClientBeforeRequest(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if got := r.Header.Get("X-Session"); got != "abc123" {
			t.Errorf("X-Session = %q, want abc123", got)
		}
		fmt.Fprint(w, `{}`)
	}))
	defer server.Close()

	client := NewClient(ClientConfig{
		BaseURL:     server.URL,
		ServiceName: "test-api",
		BeforeRequest: func(req *http.Request) {
			req.Header.Set("X-Session", "abc123")
		},
	})

	if err := client.Get(context.Background(), "/items", nil); err != nil {
		t.Fatalf("Get() error: %v", err)
	}
}
