package usecase

import (
	"context"
	"fmt"
	"sort"
	"sync"

	"github.com/fastygo/dayplanner/domain"
)

// QueryHandler answers a named query. Payload types are agreed between the
// registering package and its callers.
type QueryHandler func(ctx context.Context, params interface{}) (interface{}, error)

type Dispatcher struct {
	qryHandlers map[string]QueryHandler
	mu          sync.RWMutex
}

func NewDispatcher() *Dispatcher {
	return &Dispatcher{
		qryHandlers: make(map[string]QueryHandler),
	}
}

func (d *Dispatcher) RegisterQuery(name string, handler QueryHandler) {
	d.mu.Lock()
	defer d.mu.Unlock()
	d.qryHandlers[name] = handler
}

func (d *Dispatcher) ExecuteQuery(ctx context.Context, name string, params interface{}) (interface{}, error) {
	d.mu.RLock()
	handler, ok := d.qryHandlers[name]
	d.mu.RUnlock()
	if !ok {
		return nil, domain.NewError(domain.ErrCodeNotFound, fmt.Sprintf("query handler %s not registered", name))
	}
	return handler(ctx, params)
}

// Queries lists registered names in lexical order.
func (d *Dispatcher) Queries() []string {
	d.mu.RLock()
	defer d.mu.RUnlock()
	names := make([]string, 0, len(d.qryHandlers))
	for name := range d.qryHandlers {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
