package config

import (
	"strings"
	"sync"

	"github.com/miruken-go/mixin"
)

// Registry maps strategy names to strategies.
// Names are case-insensitive.
type Registry struct {
	lock       sync.RWMutex
	strategies map[string]mixin.Strategy
}

// NewRegistry creates a Registry of the standard strategies.
func NewRegistry() *Registry {
	return (&Registry{}).
		Register("override", mixin.Override).
		Register("callable", mixin.Callable).
		Register("parallel", mixin.Parallel).
		Register("pipe", mixin.Pipe).
		Register("compose", mixin.Compose).
		Register("async.override", mixin.Async.Override).
		Register("async.callable", mixin.Async.Callable).
		Register("async.parallel", mixin.Async.Parallel).
		Register("async.pipe", mixin.Async.Pipe).
		Register("async.compose", mixin.Async.Compose).
		Register("sync.override", mixin.Sync.Override).
		Register("sync.callable", mixin.Sync.Callable).
		Register("sync.sequence", mixin.Sync.Sequence).
		Register("sync.parallel", mixin.Sync.Parallel).
		Register("sync.pipe", mixin.Sync.Pipe).
		Register("sync.compose", mixin.Sync.Compose)
}

func (r *Registry) Register(name string, strategy mixin.Strategy) *Registry {
	if strategy == nil {
		panic("strategy cannot be nil")
	}
	r.lock.Lock()
	defer r.lock.Unlock()
	if r.strategies == nil {
		r.strategies = make(map[string]mixin.Strategy)
	}
	r.strategies[strings.ToLower(name)] = strategy
	return r
}

func (r *Registry) Lookup(name string) (mixin.Strategy, bool) {
	r.lock.RLock()
	defer r.lock.RUnlock()
	strategy, ok := r.strategies[strings.ToLower(strings.TrimSpace(name))]
	return strategy, ok
}
