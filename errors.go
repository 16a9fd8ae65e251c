package reviewdesk

import "errors"

// Session state errors
var (
	// ErrNoSelection indicates no transcription is currently selected.
	ErrNoSelection = errors.New("no transcription selected")
)

// Job parameter errors
var (
	// ErrMissingDestination indicates the destination container is empty.
	ErrMissingDestination = errors.New("destination container is required")

	// ErrEvaluationWithoutTranscription indicates the evaluation flow was
	// requested for an upload that skips transcription.
	ErrEvaluationWithoutTranscription = errors.New("evaluation flow requires transcription to run")
)
