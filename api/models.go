package api

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"mime/multipart"

	"github.com/ferreirab/reviewdesk"
)

// The backend wraps every query response in a "result" envelope.

type managerEnvelope struct {
	Result map[string]reviewdesk.Manager `json:"result"`
}

type transcriptionEnvelope struct {
	Result []reviewdesk.Transcription `json:"result"`
}

// The evaluation endpoint nests each record twice under "evaluation".
// The envelope is flattened before records reach callers.

type evaluationEnvelope struct {
	Result []evaluationEntry `json:"result"`
}

type evaluationEntry struct {
	Evaluation struct {
		Evaluation reviewdesk.EvaluationRecord `json:"evaluation"`
	} `json:"evaluation"`
}

type improvementRequest struct {
	TranscriptionData string `json:"transcription_data"`
}

// buildUploadBody assembles the multipart payload for an audio upload:
// a "file" part with the binary content and a "params" part holding the
// JSON-encoded job parameters.
func buildUploadBody(params reviewdesk.IngestParams, filename string, file io.Reader) (io.Reader, string, error) {
	encoded, err := json.Marshal(params)
	if err != nil {
		return nil, "", fmt.Errorf("marshal upload params: %w", err)
	}

	var buf bytes.Buffer
	writer := multipart.NewWriter(&buf)

	part, err := writer.CreateFormFile("file", filename)
	if err != nil {
		return nil, "", fmt.Errorf("create file part: %w", err)
	}
	if _, err := io.Copy(part, file); err != nil {
		return nil, "", fmt.Errorf("copy file content: %w", err)
	}

	if err := writer.WriteField("params", string(encoded)); err != nil {
		return nil, "", fmt.Errorf("write params part: %w", err)
	}

	if err := writer.Close(); err != nil {
		return nil, "", fmt.Errorf("finalize multipart body: %w", err)
	}

	return &buf, writer.FormDataContentType(), nil
}
