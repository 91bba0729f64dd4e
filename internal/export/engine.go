package export

import (
	"context"
	"fmt"
)

// EngineError covers headless-session launch, content-load, and export
// failures, including deadline expiry. The originating cause is carried
// as a message only; the pipeline treats every engine failure the same
// way.
type EngineError struct {
	Stage string
	Cause error
}

func (e *EngineError) Error() string {
	return fmt.Sprintf("rendering engine %s: %v", e.Stage, e.Cause)
}

func (e *EngineError) Unwrap() error { return e.Cause }

// Engine launches isolated rendering sessions.
type Engine interface {
	NewSession(ctx context.Context) (Session, error)
}

// Session is one exclusive headless-browser instance. It must never be
// shared between requests, and Close must run on success and failure
// paths alike or a browser process leaks per failed request.
type Session interface {
	// Export loads markup as the session's document content and
	// returns the paginated PDF bytes.
	Export(markup string) ([]byte, error)
	Close() error
}
