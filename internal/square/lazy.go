package square

import (
	"context"
	"sync"

	"menuboard/internal/config"
)

// Lazy defers client construction to first use. The process can start and
// serve mock data without Square credentials; the credential check fires the
// first time a handler actually needs the live API.
type Lazy struct {
	cfg  config.SquareConfig
	opts []Option

	once   sync.Once
	client *Client
	err    error
}

func NewLazy(cfg config.SquareConfig, opts ...Option) *Lazy {
	return &Lazy{cfg: cfg, opts: opts}
}

func (l *Lazy) get() (*Client, error) {
	l.once.Do(func() {
		l.client, l.err = NewClient(l.cfg, l.opts...)
	})
	return l.client, l.err
}

func (l *Lazy) SearchCatalog(ctx context.Context, cursor string) (*CatalogPage, error) {
	client, err := l.get()
	if err != nil {
		return nil, err
	}
	return client.SearchCatalog(ctx, cursor)
}

func (l *Lazy) ListLocations(ctx context.Context) ([]Location, error) {
	client, err := l.get()
	if err != nil {
		return nil, err
	}
	return client.ListLocations(ctx)
}
