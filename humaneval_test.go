package reviewdesk

import "testing"

func TestHumanEvalStore(t *testing.T) {
	t.Run("update then get", func(t *testing.T) {
		store := NewHumanEvalStore()
		store.Update("t1", "Closing", 8)

		got, ok := store.Get("t1", "Closing")
		if !ok {
			t.Fatal("Get() found nothing after Update")
		}
		if got != 8 {
			t.Errorf("Get() = %v, want 8", got)
		}
	})

	t.Run("last write wins", func(t *testing.T) {
		store := NewHumanEvalStore()
		store.Update("t1", "Closing", 8)
		store.Update("t1", "Closing", 3.5)

		if got, _ := store.Get("t1", "Closing"); got != 3.5 {
			t.Errorf("Get() = %v, want 3.5", got)
		}
		if store.Len() != 1 {
			t.Errorf("Len() = %d, want 1", store.Len())
		}
	})

	t.Run("keys are namespaced by transcription", func(t *testing.T) {
		store := NewHumanEvalStore()
		store.Update("t1", "Closing", 9)

		// The same item name on another transcription stays empty.
		if _, ok := store.Get("t2", "Closing"); ok {
			t.Error("score for t1 leaked into t2")
		}

		store.Update("t2", "Closing", 2)
		if got, _ := store.Get("t1", "Closing"); got != 9 {
			t.Errorf("t1 score = %v after writing t2, want 9", got)
		}
	})

	t.Run("out of range accepted as entered", func(t *testing.T) {
		store := NewHumanEvalStore()
		store.Update("t1", "Greeting", 42)

		if got, _ := store.Get("t1", "Greeting"); got != 42 {
			t.Errorf("Get() = %v, want 42 (no clamping)", got)
		}
	})
}

func TestHumanEvalStoreForTranscription(t *testing.T) {
	store := NewHumanEvalStore()
	store.Update("t1", "Closing", 7)
	store.Update("t1", "Greeting", 5)
	store.Update("t2", "Closing", 1)

	got := store.ForTranscription("t1")
	if len(got) != 2 {
		t.Fatalf("ForTranscription() returned %d entries, want 2", len(got))
	}
	if got["Closing"] != 7 || got["Greeting"] != 5 {
		t.Errorf("ForTranscription() = %v", got)
	}
}
