package reviewdesk

import "sync"

// ImprovementSession holds the locally-edited "improved transcription" text
// shown in the improvement dialog. Applying a server response replaces the
// text; closing the dialog resets it to the original content. Nothing is
// persisted.
type ImprovementSession struct {
	mu       sync.Mutex
	original string
	text     string
}

// NewImprovementSession starts an improvement session over the original
// transcription content.
func NewImprovementSession(content string) *ImprovementSession {
	return &ImprovementSession{
		original: content,
		text:     content,
	}
}

// Text returns the text currently on display.
func (s *ImprovementSession) Text() string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.text
}

// Apply replaces the displayed text with an improved version.
func (s *ImprovementSession) Apply(improved string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.text = improved
}

// Reset restores the original content. Called when the view closes.
func (s *ImprovementSession) Reset() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.text = s.original
}

// Improved reports whether the displayed text differs from the original.
func (s *ImprovementSession) Improved() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.text != s.original
}
