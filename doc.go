// Package reviewdesk provides the session state core for a call-review console.
//
// Supervisors browse call transcriptions produced by an external
// transcription/evaluation pipeline, inspect machine-generated scoring,
// override scores with their own judgment, and kick off bulk processing jobs.
// This package holds the state containers and merge logic; the subpackages
// cover the surrounding concerns:
//
//   - api: typed client for the review backend endpoints
//   - jobs: submission workflow for ingest and batch processing jobs
//   - view: plain-text renderers for list, detail, and evaluation states
//   - prompt: evaluation prompt presets
//   - config: configuration resolution (defaults, yaml, environment)
//   - context: service dependency injection
//   - http: shared HTTP client utilities
//   - logging: structured logger construction
//
// # Quick Start
//
//	client, _ := api.NewClient(api.Config{BaseURL: cfg.APIURL})
//	session := reviewdesk.NewSession(client)
//
//	list, err := session.Transcriptions(ctx, "Maria Souza")
//	session.Select(list[0])
//
//	records, _ := client.Evaluations(ctx, list[0].ID)
//	views := reviewdesk.MergeRecords(list[0], records, session.Scores())
//
// All state lives for a single session. Nothing is persisted and no failed
// call is retried; errors are surfaced to the caller as display states.
package reviewdesk
