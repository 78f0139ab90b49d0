// Package registry is a lazy, concurrency-safe cache of named schemas. The
// first Load of a name runs the loader; concurrent callers for the same name
// block on that single in-flight load and share its outcome, success or
// failure. Outcomes stick for the lifetime of the registry; to retry failed
// loads, build a fresh registry.
package registry

import (
	"errors"
	"sync"

	"github.com/goliatone/go-formcode/pkg/schema"
)

// Loader resolves a schema by name.
type Loader func(name string) (schema.Node, error)

type entry struct {
	done chan struct{}
	node schema.Node
	err  error
}

// Registry caches loader outcomes per name.
type Registry struct {
	loader  Loader
	mu      sync.Mutex
	entries map[string]*entry
}

// New builds a registry around the loader.
func New(loader Loader) *Registry {
	return &Registry{
		loader:  loader,
		entries: make(map[string]*entry),
	}
}

// Load returns the schema for name, running the loader at most once per name.
func (r *Registry) Load(name string) (schema.Node, error) {
	if r == nil || r.loader == nil {
		return nil, errors.New("registry: no loader configured")
	}

	r.mu.Lock()
	if e, ok := r.entries[name]; ok {
		r.mu.Unlock()
		<-e.done
		return e.node, e.err
	}
	e := &entry{done: make(chan struct{})}
	r.entries[name] = e
	r.mu.Unlock()

	e.node, e.err = r.loader(name)
	close(e.done)
	return e.node, e.err
}

// Loaded reports whether a completed outcome exists for name.
func (r *Registry) Loaded(name string) bool {
	r.mu.Lock()
	e, ok := r.entries[name]
	r.mu.Unlock()
	if !ok {
		return false
	}
	select {
	case <-e.done:
		return true
	default:
		return false
	}
}
