// Package jobs implements the submission workflow for backend processing
// jobs: single-file ingest-and-transcribe and bulk transcribe-and-evaluate.
//
// A job is a request/acknowledgment exchange, not a tracked task. One HTTP
// round trip is the whole lifecycle from the client's perspective: a
// 200-class response means the job was accepted, never that it completed.
// No job identity or progress is retained and nothing is retried; every
// submission resolves to either a success or a failure status string.
package jobs

import (
	"context"
	"errors"
	"io"
	"sync"

	nanoid "github.com/matoous/go-nanoid/v2"
	"go.uber.org/zap"

	"github.com/ferreirab/reviewdesk"
	devhttp "github.com/ferreirab/reviewdesk/http"
)

// Submission errors
var (
	// ErrMissingFile indicates an ingest submission without a selected file.
	ErrMissingFile = errors.New("a file is required for ingest")
)

// State is the stage of one job submission.
type State string

// Submission states. There is no polling or running state: Succeeded means
// the backend accepted the job.
const (
	StateIdle       State = "idle"
	StateSubmitting State = "submitting"
	StateSucceeded  State = "succeeded"
	StateFailed     State = "failed"
)

// User-visible status strings.
const (
	msgBatchAccepted  = "Transcription job accepted."
	msgIngestAccepted = "File accepted for processing."
	msgBatchFailed    = "Could not start the transcription job"
	msgIngestFailed   = "Could not upload the file"
)

// Backend submits jobs to the processing pipeline. api.Client satisfies this.
type Backend interface {
	SubmitBatchJob(ctx context.Context, params reviewdesk.BatchParams) error
	UploadAudio(ctx context.Context, params reviewdesk.IngestParams, filename string, file io.Reader) error
}

// Result is the terminal outcome of one submission.
type Result struct {
	State   State
	Message string

	// Detail carries the server-provided failure detail, when available.
	Detail string
}

// Submitter runs job submissions and keeps the latest status for display.
type Submitter struct {
	backend Backend
	logger  *zap.Logger

	mu     sync.Mutex
	state  State
	status string
}

// SubmitterOption configures a Submitter.
type SubmitterOption func(*Submitter)

// WithLogger sets the submitter logger. Defaults to a no-op logger.
func WithLogger(logger *zap.Logger) SubmitterOption {
	return func(s *Submitter) {
		s.logger = logger
	}
}

// NewSubmitter creates a submitter over the given backend.
func NewSubmitter(backend Backend, opts ...SubmitterOption) *Submitter {
	s := &Submitter{
		backend: backend,
		logger:  zap.NewNop(),
		state:   StateIdle,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// State returns the current submission state.
func (s *Submitter) State() State {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.state
}

// Status returns the latest user-visible status string.
func (s *Submitter) Status() string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.status
}

// SubmitBatch submits a bulk transcribe-and-evaluate job.
func (s *Submitter) SubmitBatch(ctx context.Context, params reviewdesk.BatchParams) Result {
	params.Normalize()

	submissionID := newSubmissionID()
	s.transition(StateSubmitting, "Submitting transcription job...")
	s.logger.Info("submitting batch job",
		zap.String("submission_id", submissionID),
		zap.String("origin", params.OriginContainer),
		zap.String("destination", params.DestinationContainer),
		zap.Int("limit", params.Limit))

	if err := s.backend.SubmitBatchJob(ctx, params); err != nil {
		return s.fail(msgBatchFailed, submissionID, err)
	}

	return s.succeed(msgBatchAccepted, submissionID)
}

// SubmitIngest submits a single-file ingest-and-transcribe job. The file and
// a valid parameter set are required before any network call is made.
func (s *Submitter) SubmitIngest(ctx context.Context, params reviewdesk.IngestParams, filename string, file io.Reader) Result {
	submissionID := newSubmissionID()

	if file == nil || filename == "" {
		return s.fail(msgIngestFailed, submissionID, ErrMissingFile)
	}
	if err := params.Validate(); err != nil {
		return s.fail(msgIngestFailed, submissionID, err)
	}

	s.transition(StateSubmitting, "Uploading file...")
	s.logger.Info("submitting ingest job",
		zap.String("submission_id", submissionID),
		zap.String("filename", filename),
		zap.String("destination", params.DestinationContainer))

	if err := s.backend.UploadAudio(ctx, params, filename, file); err != nil {
		return s.fail(msgIngestFailed, submissionID, err)
	}

	return s.succeed(msgIngestAccepted, submissionID)
}

func (s *Submitter) transition(state State, status string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.state = state
	s.status = status
}

func (s *Submitter) succeed(message, submissionID string) Result {
	s.transition(StateSucceeded, message)
	s.logger.Info("job accepted", zap.String("submission_id", submissionID))
	return Result{State: StateSucceeded, Message: message}
}

func (s *Submitter) fail(message, submissionID string, err error) Result {
	detail := devhttp.Detail(err)
	if detail == "" {
		detail = err.Error()
	}

	status := message + ": " + detail
	s.transition(StateFailed, status)
	s.logger.Warn("job submission failed",
		zap.String("submission_id", submissionID),
		zap.Error(err))

	return Result{State: StateFailed, Message: status, Detail: detail}
}

// newSubmissionID generates a correlation ID for logging. The backend keeps
// no client-visible job identity; this never implies tracking.
func newSubmissionID() string {
	id, err := nanoid.New()
	if err != nil {
		return "unknown"
	}
	return id
}
