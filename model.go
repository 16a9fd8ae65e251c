package reviewdesk

import (
	"fmt"
	"regexp"
)

// =============================================================================
// People
// =============================================================================

// Manager represents a team manager and the specialists under review.
// Fetched on demand; never cached.
type Manager struct {
	Name           string       `json:"name"`
	Role           string       `json:"role"`
	Transcriptions int          `json:"transcriptions"`
	Performance    float64      `json:"performance"`
	Specialists    []Specialist `json:"specialists"`
}

// Specialist represents an individual whose calls are transcribed and scored.
// Name is the identity key: unique, and URL-safe once encoded.
type Specialist struct {
	Name           string  `json:"name"`
	Role           string  `json:"role"`
	Transcriptions int     `json:"transcriptions"`
	Performance    float64 `json:"performance"`
}

// =============================================================================
// Transcriptions and Scoring
// =============================================================================

// Transcription is one recorded call's text plus machine-derived
// classification and summary. ID is unique within a specialist's list.
type Transcription struct {
	ID                    string      `json:"id"`
	Filename              string      `json:"filename"`
	Content               string      `json:"content"`
	Classification        string      `json:"classification"`
	SuccessfulCall        string      `json:"successfulCall"`
	IdentifiedClient      string      `json:"identifiedClient"`
	SummaryData           []Criterion `json:"summaryData"`
	ImprovementSuggestion string      `json:"improvementSuggestion"`
}

// Criterion is one row of machine-generated evaluation. The hierarchy is two
// levels deep at most: a criterion may own sub-criteria, which may not.
type Criterion struct {
	Item        string         `json:"item"`
	SubItem     string         `json:"sub_item,omitempty"`
	Description string         `json:"description"`
	Score       float64        `json:"score"`
	Rationale   string         `json:"rationale"`
	SubCriteria []SubCriterion `json:"sub_criteria,omitempty"`
}

// SubCriterion is a finer-grained evaluation row under a Criterion.
type SubCriterion struct {
	Name        string  `json:"name"`
	Description string  `json:"description"`
	Score       float64 `json:"score"`
	Rationale   string  `json:"rationale"`
}

// EvaluationRecord is one evaluator pass over a transcription. A transcription
// may carry several records; all are rendered, attributed by ordinal.
type EvaluationRecord struct {
	Classification        string      `json:"classification"`
	OverallScore          float64     `json:"overall_score"`
	ImprovementSuggestion string      `json:"improvement_suggestion"`
	Criteria              []Criterion `json:"criteria"`
}

// PromptEvaluation is the result of a single-shot, user-triggered evaluation
// against a free-text prompt. Independent of batch evaluation records.
type PromptEvaluation struct {
	Item        string         `json:"item"`
	Description string         `json:"description"`
	Score       float64        `json:"score"`
	Rationale   string         `json:"rationale"`
	SubItems    []SubCriterion `json:"sub_items,omitempty"`
}

// =============================================================================
// Job Parameters
// =============================================================================

// IngestParams configures a single-file ingest-and-transcribe job.
// The request is fire-and-forget: acceptance, not completion.
type IngestParams struct {
	DestinationContainer string `json:"destination_container"`
	RunTranscription     bool   `json:"run_transcription"`
	RunEvaluationFlow    bool   `json:"run_evaluation_flow"`
}

// NewIngestParams returns ingest parameters with the backend defaults.
func NewIngestParams() IngestParams {
	return IngestParams{
		DestinationContainer: "audio-files",
		RunTranscription:     true,
		RunEvaluationFlow:    true,
	}
}

// Validate checks client-side constraints: a destination is required, and the
// evaluation flow only makes sense when transcription runs.
func (p IngestParams) Validate() error {
	if p.DestinationContainer == "" {
		return ErrMissingDestination
	}
	if p.RunEvaluationFlow && !p.RunTranscription {
		return ErrEvaluationWithoutTranscription
	}
	return nil
}

// BatchParams configures a bulk transcribe-and-evaluate job over stored audio.
// Manager and specialist names narrow the scope; empty means everyone.
type BatchParams struct {
	OriginContainer      string `json:"origin_container"`
	DestinationContainer string `json:"destination_container"`
	ManagerName          string `json:"manager_name"`
	SpecialistName       string `json:"specialist_name"`
	Limit                int    `json:"limit"`
	OnlyFailed           bool   `json:"only_failed"`
	UseCache             bool   `json:"use_cache"`
	RunEvaluationFlow    bool   `json:"run_evaluation_flow"`
}

// NewBatchParams returns batch parameters with the backend defaults:
// Limit -1 means unbounded; any positive value caps the items processed.
func NewBatchParams() BatchParams {
	return BatchParams{
		OriginContainer:      "audio-files",
		DestinationContainer: "transcripts",
		Limit:                -1,
		OnlyFailed:           true,
		RunEvaluationFlow:    true,
	}
}

// Normalize maps the zero Limit to -1 so an unset field keeps the
// "unbounded" meaning. No boolean combination is forbidden.
func (p *BatchParams) Normalize() {
	if p.Limit == 0 {
		p.Limit = -1
	}
}

// =============================================================================
// Display Helpers
// =============================================================================

// Call-recording filenames embed the capture date in one of two layouts
// produced by the telephony export.
var (
	filenameDatePrimary  = regexp.MustCompile(`C\d{4}(\d{4})(\d{2})(\d{2})\d{6}\.`)
	filenameDateFallback = regexp.MustCompile(`/\d{5}(\d{4})(\d{2})(\d{2})\d{9}\.`)
)

// ProcessedDate extracts a DD/MM/YYYY display date from a call-recording
// filename. Unrecognized filenames are returned unchanged.
func ProcessedDate(filename string) string {
	match := filenameDatePrimary.FindStringSubmatch(filename)
	if match == nil {
		match = filenameDateFallback.FindStringSubmatch(filename)
	}
	if match == nil {
		return filename
	}
	return fmt.Sprintf("%s/%s/%s", match[3], match[2], match[1])
}
