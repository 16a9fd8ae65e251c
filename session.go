package reviewdesk

import (
	"context"
	"fmt"

	"go.uber.org/zap"
)

// TranscriptionFetcher retrieves a specialist's transcription list from the
// backend. api.Client satisfies this.
type TranscriptionFetcher interface {
	Transcriptions(ctx context.Context, specialist string) ([]Transcription, error)
}

// Session bundles the state containers for one review session: the keyed
// transcription cache, the shared selection slot, and the reviewer score
// store. It is passed explicitly to the components that need it rather than
// living as an ambient global.
type Session struct {
	cache   *TranscriptionCache
	scores  *HumanEvalStore
	fetcher TranscriptionFetcher
	logger  *zap.Logger
}

// SessionOption configures a Session.
type SessionOption func(*Session)

// WithLogger sets the session logger. Defaults to a no-op logger.
func WithLogger(logger *zap.Logger) SessionOption {
	return func(s *Session) {
		s.logger = logger
	}
}

// NewSession creates a session around the given fetcher.
func NewSession(fetcher TranscriptionFetcher, opts ...SessionOption) *Session {
	s := &Session{
		cache:   NewTranscriptionCache(),
		scores:  NewHumanEvalStore(),
		fetcher: fetcher,
		logger:  zap.NewNop(),
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Transcriptions returns the specialist's list, serving the cache when it
// holds a non-empty entry (zero network calls) and issuing exactly one fetch
// otherwise. A failed fetch leaves the cache untouched and is returned to the
// caller; the empty-result case is cached but, being empty, re-fetched on the
// next visit.
func (s *Session) Transcriptions(ctx context.Context, specialistKey string) ([]Transcription, error) {
	if cached := s.cache.Get(specialistKey); len(cached) > 0 {
		return cached, nil
	}

	list, err := s.fetcher.Transcriptions(ctx, specialistKey)
	if err != nil {
		s.logger.Warn("transcription fetch failed",
			zap.String("specialist", specialistKey),
			zap.Error(err))
		return nil, fmt.Errorf("fetch transcriptions for %s: %w", specialistKey, err)
	}

	// Keyed write: the result lands in the slot the fetch was issued for,
	// even if the user has navigated elsewhere meanwhile.
	s.cache.Set(specialistKey, list)
	s.logger.Debug("transcriptions cached",
		zap.String("specialist", specialistKey),
		zap.Int("count", len(list)))

	return s.cache.Get(specialistKey), nil
}

// Select stores the transcription in the shared selection slot.
func (s *Session) Select(t Transcription) {
	s.cache.Select(t)
}

// Selected returns the currently selected transcription.
func (s *Session) Selected() (Transcription, bool) {
	return s.cache.Selected()
}

// RequireSelection returns the selected transcription, or ErrNoSelection when
// the selection slot is empty. Detail operations call this before fetching
// evaluations or audio for the selection.
func (s *Session) RequireSelection() (Transcription, error) {
	t, ok := s.cache.Selected()
	if !ok {
		return Transcription{}, ErrNoSelection
	}
	return t, nil
}

// ClearSelection empties the selection slot.
func (s *Session) ClearSelection() {
	s.cache.ClearSelection()
}

// Scores returns the session's reviewer score store.
func (s *Session) Scores() *HumanEvalStore {
	return s.scores
}

// Cache returns the session's transcription cache.
func (s *Session) Cache() *TranscriptionCache {
	return s.cache
}
