package context

import (
	"context"
	"testing"

	"github.com/ferreirab/reviewdesk"
)

func TestSessionRoundTrip(t *testing.T) {
	session := reviewdesk.NewSession(nil)
	ctx := WithSession(context.Background(), session)

	if got := Session(ctx); got != session {
		t.Errorf("Session() = %p, want %p", got, session)
	}
	if got := MustSession(ctx); got != session {
		t.Errorf("MustSession() = %p, want %p", got, session)
	}
}

func TestSessionMissing(t *testing.T) {
	if got := Session(context.Background()); got != nil {
		t.Errorf("Session() = %v on empty context, want nil", got)
	}

	defer func() {
		if recover() == nil {
			t.Error("MustSession() did not panic on empty context")
		}
	}()
	MustSession(context.Background())
}

func TestAPIMissing(t *testing.T) {
	if got := API(context.Background()); got != nil {
		t.Errorf("API() = %v on empty context, want nil", got)
	}
}

func TestSubmitterMissing(t *testing.T) {
	if got := Submitter(context.Background()); got != nil {
		t.Errorf("Submitter() = %v on empty context, want nil", got)
	}
}
