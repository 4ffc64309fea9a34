// FILE: framelog/src/internal/provider/composite.go
package provider

import (
	"fmt"
	"sync"
)

// Composite aggregates named sub-providers into a single Provider whose
// snapshot is a map keyed by sub-provider name. A sub-provider that panics
// degrades to an error marker string for its own key only; the remaining
// sub-providers still contribute.
type Composite struct {
	name string

	mu   sync.RWMutex
	subs map[string]Provider
}

// NewComposite creates an empty aggregator.
func NewComposite(name string) *Composite {
	return &Composite{
		name: name,
		subs: make(map[string]Provider),
	}
}

// Attach registers a sub-provider under its own name, replacing any
// previous registration for that name.
func (c *Composite) Attach(p Provider) {
	c.mu.Lock()
	c.subs[p.Name()] = p
	c.mu.Unlock()
}

// Detach removes the sub-provider registered under name, if any.
func (c *Composite) Detach(name string) {
	c.mu.Lock()
	delete(c.subs, name)
	c.mu.Unlock()
}

// Len returns the number of attached sub-providers.
func (c *Composite) Len() int {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return len(c.subs)
}

func (c *Composite) Name() string { return c.name }

// Snapshot captures every sub-provider. Failures are isolated per key.
func (c *Composite) Snapshot() any {
	c.mu.RLock()
	subs := make(map[string]Provider, len(c.subs))
	for k, v := range c.subs {
		subs[k] = v
	}
	c.mu.RUnlock()

	out := make(map[string]any, len(subs))
	for name, p := range subs {
		out[name] = capture(p)
	}
	return out
}

func capture(p Provider) (result any) {
	defer func() {
		if r := recover(); r != nil {
			result = fmt.Sprintf("snapshot failed: %v", r)
		}
	}()
	return p.Snapshot()
}
