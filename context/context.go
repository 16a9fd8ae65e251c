// Package context injects review console services into context.Context so
// consumers receive explicit state containers instead of reaching for
// ambient globals.
package context

import (
	"context"

	"github.com/ferreirab/reviewdesk"
	"github.com/ferreirab/reviewdesk/api"
	"github.com/ferreirab/reviewdesk/jobs"
)

// serviceContextKey is a private type for context keys to avoid collisions.
type serviceContextKey string

const (
	sessionServiceKey   serviceContextKey = "reviewdesk.session"
	apiServiceKey       serviceContextKey = "reviewdesk.api"
	submitterServiceKey serviceContextKey = "reviewdesk.submitter"
)

// WithSession adds a review session to the context.
func WithSession(ctx context.Context, session *reviewdesk.Session) context.Context {
	return context.WithValue(ctx, sessionServiceKey, session)
}

// Session extracts the review session from context.
// Returns nil if no session is configured.
func Session(ctx context.Context) *reviewdesk.Session {
	if session, ok := ctx.Value(sessionServiceKey).(*reviewdesk.Session); ok {
		return session
	}
	return nil
}

// MustSession extracts the review session or panics.
func MustSession(ctx context.Context) *reviewdesk.Session {
	session := Session(ctx)
	if session == nil {
		panic("reviewdesk/context: Session not found in context")
	}
	return session
}

// WithAPI adds a backend client to the context.
func WithAPI(ctx context.Context, client *api.Client) context.Context {
	return context.WithValue(ctx, apiServiceKey, client)
}

// API extracts the backend client from context.
func API(ctx context.Context) *api.Client {
	if client, ok := ctx.Value(apiServiceKey).(*api.Client); ok {
		return client
	}
	return nil
}

// MustAPI extracts the backend client or panics.
func MustAPI(ctx context.Context) *api.Client {
	client := API(ctx)
	if client == nil {
		panic("reviewdesk/context: api.Client not found in context")
	}
	return client
}

// WithSubmitter adds a job submitter to the context.
func WithSubmitter(ctx context.Context, submitter *jobs.Submitter) context.Context {
	return context.WithValue(ctx, submitterServiceKey, submitter)
}

// Submitter extracts the job submitter from context.
func Submitter(ctx context.Context) *jobs.Submitter {
	if submitter, ok := ctx.Value(submitterServiceKey).(*jobs.Submitter); ok {
		return submitter
	}
	return nil
}

// MustSubmitter extracts the job submitter or panics.
func MustSubmitter(ctx context.Context) *jobs.Submitter {
	submitter := Submitter(ctx)
	if submitter == nil {
		panic("reviewdesk/context: jobs.Submitter not found in context")
	}
	return submitter
}
