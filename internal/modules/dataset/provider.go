// README: Single-initialization dataset provider; memoizes the one-time load.
package dataset

import (
	"context"
	"sync"

	"go.uber.org/zap"
)

// Loader is the data-loading collaborator. Implementations must hand back
// fully type-coerced tables; the store trusts everything except references.
type Loader interface {
	Load(ctx context.Context) (Tables, error)
}

// Provider guards the one-time dataset load. Concurrent callers share a
// single load; a failed load is also memoized so the process surfaces the
// same error instead of hammering the source.
type Provider struct {
	loader Loader
	logger *zap.Logger

	once  sync.Once
	store *Store
	err   error
}

func NewProvider(loader Loader, logger *zap.Logger) *Provider {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Provider{loader: loader, logger: logger}
}

// Store returns the indexed dataset, loading it on first use.
func (p *Provider) Store(ctx context.Context) (*Store, error) {
	p.once.Do(func() {
		tables, err := p.loader.Load(ctx)
		if err != nil {
			p.err = err
			p.logger.Error("dataset load failed", zap.Error(err))
			return
		}
		p.store = NewStore(tables, p.logger)
	})
	return p.store, p.err
}

// StaticLoader serves a fixed set of tables; used by tests and the demo.
type StaticLoader struct {
	Tables Tables
}

func (l StaticLoader) Load(context.Context) (Tables, error) {
	return l.Tables, nil
}
