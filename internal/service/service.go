package service

import (
	"time"

	"github.com/carson-networks/statement-server/internal/config"
	"github.com/carson-networks/statement-server/internal/operator"
	"github.com/carson-networks/statement-server/internal/render"
	"github.com/carson-networks/statement-server/internal/storage"
)

// Service holds all business logic services.
type Service struct {
	Statement *StatementService
}

// NewService creates a new Service wired to the renderer, export pool,
// and artifact store.
func NewService(renderer *render.Renderer, exporter *operator.OperatorDelegator, store *storage.ArtifactStore, env *config.Config) *Service {
	return &Service{
		Statement: NewStatementService(
			renderer,
			exporter,
			store,
			time.Duration(env.RenderTimeoutSeconds)*time.Second,
			env.CurrencySymbol,
		),
	}
}
