package operator

import (
	"context"

	"github.com/carson-networks/statement-server/internal/export"
	"github.com/carson-networks/statement-server/internal/operator/actions"
)

// Operator is the worker that processes export jobs from the queue.
type Operator struct {
	engine export.Engine
	queue  chan ActionItem
}

func NewOperator(engine export.Engine, queue chan ActionItem) *Operator {
	return &Operator{
		engine: engine,
		queue:  queue,
	}
}

// Run listens to the queue and processes items. Exits when the queue is closed.
func (o *Operator) Run() {
	for item := range o.queue {
		o.processItem(item)
	}
}

func (o *Operator) processItem(item ActionItem) {
	session, err := o.engine.NewSession(item.ctx)
	if err != nil {
		item.response <- ActionItemResponse{err: err}
		return
	}

	// The session is released before the response goes out, on success
	// and failure alike; a leaked session is a leaked browser process.
	pdf, err := func() ([]byte, error) {
		defer session.Close()
		return item.action.Perform(item.ctx, session)
	}()

	item.response <- ActionItemResponse{pdf: pdf, err: err}
}

type ActionItem struct {
	ctx      context.Context
	action   actions.IAction
	response chan ActionItemResponse
}

type ActionItemResponse struct {
	pdf []byte
	err error
}
