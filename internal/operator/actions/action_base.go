package actions

import (
	"context"

	"github.com/carson-networks/statement-server/internal/export"
)

type IAction interface {
	Perform(ctx context.Context, session export.Session) ([]byte, error)
}
