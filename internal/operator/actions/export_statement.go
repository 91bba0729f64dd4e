package actions

import (
	"context"

	"github.com/carson-networks/statement-server/internal/export"
)

// ExportStatement turns rendered statement markup into PDF bytes using
// the session the worker hands it.
type ExportStatement struct {
	Markup string
	IAction
}

func (a *ExportStatement) Perform(ctx context.Context, session export.Session) ([]byte, error) {
	if err := ctx.Err(); err != nil {
		return nil, &export.EngineError{Stage: "export", Cause: err}
	}

	return session.Export(a.Markup)
}
