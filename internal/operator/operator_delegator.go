package operator

import (
	"context"
	"sync"

	"github.com/carson-networks/statement-server/internal/export"
	"github.com/carson-networks/statement-server/internal/operator/actions"
)

// OperatorDelegator manages the queue, starts/stops Operators (workers),
// and enqueues export jobs. The worker count is the hard ceiling on how
// many rendering-engine sessions exist at once; each job still gets its
// own fresh session.
type OperatorDelegator struct {
	engine     export.Engine
	queue      chan ActionItem
	numWorkers int
	wg         sync.WaitGroup
	stopOnce   sync.Once
}

func NewOperatorDelegator(engine export.Engine, numWorkers int) *OperatorDelegator {
	if numWorkers < 1 {
		numWorkers = 1
	}
	return &OperatorDelegator{
		engine:     engine,
		queue:      make(chan ActionItem, 1000),
		numWorkers: numWorkers,
	}
}

func (d *OperatorDelegator) Start() {
	for i := 0; i < d.numWorkers; i++ {
		d.wg.Add(1)
		op := NewOperator(d.engine, d.queue)
		go func() {
			defer d.wg.Done()
			op.Run()
		}()
	}
}

func (d *OperatorDelegator) Stop() {
	d.stopOnce.Do(func() {
		close(d.queue)
		d.wg.Wait()
	})
}

// Process enqueues an action and waits for its PDF bytes.
func (d *OperatorDelegator) Process(ctx context.Context, action actions.IAction) ([]byte, error) {
	respCh := make(chan ActionItemResponse, 1)
	item := ActionItem{
		ctx:      ctx,
		action:   action,
		response: respCh,
	}

	d.queue <- item

	select {
	case resp := <-respCh:
		return resp.pdf, resp.err
	case <-ctx.Done():
		return nil, ctx.Err()
	}
}
