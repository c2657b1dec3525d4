package memory

import (
	"context"
	"sync"
)

// PropertyStore is an in-process ports.PropertyStore.
type PropertyStore struct {
	mu    sync.RWMutex
	props map[string]any
}

// NewPropertyStore copies initial so later changes do not leak back to the caller.
func NewPropertyStore(initial map[string]any) *PropertyStore {
	props := make(map[string]any, len(initial))
	for k, v := range initial {
		props[k] = v
	}
	return &PropertyStore{props: props}
}

func (p *PropertyStore) ContainsKey(_ context.Context, key string) (bool, error) {
	p.mu.RLock()
	defer p.mu.RUnlock()
	_, ok := p.props[key]
	return ok, nil
}

func (p *PropertyStore) GetProperty(_ context.Context, key string) (any, error) {
	p.mu.RLock()
	defer p.mu.RUnlock()
	return p.props[key], nil
}

func (p *PropertyStore) RemoveProperty(_ context.Context, key string) error {
	p.mu.Lock()
	delete(p.props, key)
	p.mu.Unlock()
	return nil
}

// Snapshot returns a copy of the current properties.
func (p *PropertyStore) Snapshot() map[string]any {
	p.mu.RLock()
	defer p.mu.RUnlock()
	out := make(map[string]any, len(p.props))
	for k, v := range p.props {
		out[k] = v
	}
	return out
}
