// Package api provides the typed client for the review backend: people and
// transcription queries, evaluation retrieval, single-shot prompt evaluation,
// transcription improvement, audio download, and job submission.
//
// Every call is a single request/response round trip. Failures are returned
// to the caller, never retried; an empty result set is a valid response.
package api

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"net/url"

	"go.uber.org/zap"

	"github.com/ferreirab/reviewdesk"
	devhttp "github.com/ferreirab/reviewdesk/http"
)

const serviceName = "review-api"

// Client provides access to the review backend API.
type Client struct {
	http   *devhttp.Client
	logger *zap.Logger
}

// Config holds configuration for Client.
type Config struct {
	// BaseURL is the backend root, e.g. "http://localhost:8000".
	BaseURL string

	// HTTPClient overrides the default HTTP client (for timeouts).
	HTTPClient *http.Client

	// Logger defaults to a no-op logger.
	Logger *zap.Logger
}

// NewClient creates a new review backend client.
func NewClient(cfg Config) (*Client, error) {
	if cfg.BaseURL == "" {
		return nil, fmt.Errorf("api: base URL is required")
	}

	logger := cfg.Logger
	if logger == nil {
		logger = zap.NewNop()
	}

	return &Client{
		http: devhttp.NewClient(devhttp.ClientConfig{
			Client:      cfg.HTTPClient,
			BaseURL:     cfg.BaseURL,
			ServiceName: serviceName,
		}),
		logger: logger,
	}, nil
}

// Manager fetches a manager's record, including the specialists under them.
// Managers are fetched on demand and not cached.
func (c *Client) Manager(ctx context.Context, name string) (reviewdesk.Manager, error) {
	path := "/overlooker-data?manager=" + url.QueryEscape(name)

	var envelope managerEnvelope
	if err := c.http.Get(ctx, path, &envelope); err != nil {
		return reviewdesk.Manager{}, err
	}

	manager, ok := envelope.Result[name]
	if !ok {
		return reviewdesk.Manager{}, fmt.Errorf("manager %q: %w", name, devhttp.ErrNotFound)
	}

	return manager, nil
}

// Transcriptions fetches the transcription list for a specialist. An empty
// list is a valid response, not an error.
func (c *Client) Transcriptions(ctx context.Context, specialist string) ([]reviewdesk.Transcription, error) {
	path := "/transcription-data?specialist=" + url.QueryEscape(specialist)

	var envelope transcriptionEnvelope
	if err := c.http.Get(ctx, path, &envelope); err != nil {
		return nil, err
	}

	c.logger.Debug("transcriptions fetched",
		zap.String("specialist", specialist),
		zap.Int("count", len(envelope.Result)))

	return envelope.Result, nil
}

// Evaluations fetches all evaluation records for a transcription. The fetch
// is idempotent and has no side effects on session state; zero records means
// the transcription has not been evaluated yet.
func (c *Client) Evaluations(ctx context.Context, transcriptionID string) ([]reviewdesk.EvaluationRecord, error) {
	path := "/specialist-evaluation?transcription_id=" + url.QueryEscape(transcriptionID)

	var envelope evaluationEnvelope
	if err := c.http.Get(ctx, path, &envelope); err != nil {
		return nil, err
	}

	records := make([]reviewdesk.EvaluationRecord, 0, len(envelope.Result))
	for _, entry := range envelope.Result {
		records = append(records, entry.Evaluation.Evaluation)
	}

	return records, nil
}

// PromptRequest is the input for a single-shot prompt evaluation.
type PromptRequest struct {
	Topic         string `json:"tipo"`
	Prompt        string `json:"prompt"`
	Transcription string `json:"transcription"`
}

// EvaluatePrompt submits a free-text prompt together with the transcription's
// raw content and returns the evaluator's single-shot result. The result is
// displayed on its own and never merged into the cached batch evaluations.
func (c *Client) EvaluatePrompt(ctx context.Context, req PromptRequest) (reviewdesk.PromptEvaluation, error) {
	var result reviewdesk.PromptEvaluation
	if err := c.http.Post(ctx, "/unitary-evaluation", req, &result); err != nil {
		return reviewdesk.PromptEvaluation{}, err
	}
	return result, nil
}

// ImproveTranscription submits the raw content and returns the improved text.
func (c *Client) ImproveTranscription(ctx context.Context, content string) (string, error) {
	body := improvementRequest{TranscriptionData: content}

	var improved string
	if err := c.http.Post(ctx, "/transcription-improvement", body, &improved); err != nil {
		return "", err
	}
	return improved, nil
}

// SubmitBatchJob submits a bulk transcribe-and-evaluate job. A nil error
// means the job was accepted, not that it completed; the backend reports no
// further progress.
func (c *Client) SubmitBatchJob(ctx context.Context, params reviewdesk.BatchParams) error {
	return c.http.Post(ctx, "/transcription", params, nil)
}

// UploadAudio submits a single-file ingest-and-transcribe job as a multipart
// payload: the binary file part plus a JSON-encoded parameters part. A nil
// error means the upload was accepted for processing.
func (c *Client) UploadAudio(ctx context.Context, params reviewdesk.IngestParams, filename string, file io.Reader) error {
	body, contentType, err := buildUploadBody(params, filename, file)
	if err != nil {
		return err
	}

	return c.http.PostRaw(ctx, "/audio-upload", body, contentType, nil)
}
