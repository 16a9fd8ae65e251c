package reviewdesk

import "sync"

// ScoreKey identifies one reviewer judgment: an evaluation item on a specific
// transcription. Keys are namespaced by transcription so a score entered for
// "Closing" on one call never pre-fills "Closing" on another.
type ScoreKey struct {
	TranscriptionID string
	Item            string
}

// HumanEvalStore holds reviewer-entered scores for the whole session.
// Scores are accepted as entered: no clamping, no validation. Switching
// transcriptions does not clear the store.
type HumanEvalStore struct {
	mu     sync.RWMutex
	scores map[ScoreKey]float64
}

// NewHumanEvalStore creates an empty score store.
func NewHumanEvalStore() *HumanEvalStore {
	return &HumanEvalStore{
		scores: make(map[ScoreKey]float64),
	}
}

// Get returns the reviewer's score for an item on a transcription.
func (s *HumanEvalStore) Get(transcriptionID, item string) (float64, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	score, ok := s.scores[ScoreKey{transcriptionID, item}]
	return score, ok
}

// Update overwrites the score unconditionally. Last write wins.
func (s *HumanEvalStore) Update(transcriptionID, item string, score float64) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.scores[ScoreKey{transcriptionID, item}] = score
}

// ForTranscription returns all item scores recorded for one transcription.
func (s *HumanEvalStore) ForTranscription(transcriptionID string) map[string]float64 {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make(map[string]float64)
	for key, score := range s.scores {
		if key.TranscriptionID == transcriptionID {
			out[key.Item] = score
		}
	}
	return out
}

// Len returns the number of recorded scores.
func (s *HumanEvalStore) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.scores)
}
