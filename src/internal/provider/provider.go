// FILE: framelog/src/internal/provider/provider.go
package provider

// Provider is an external component able to produce a synchronous,
// side-effect-free snapshot of its own state for inclusion in log entries.
// The pipeline holds at most one provider; aggregate multiple sources with
// Composite.
//
// Providers must not log: the pipeline does not guard against reentrant
// calls from inside Snapshot.
type Provider interface {
	Name() string
	Snapshot() any
}

type funcProvider struct {
	name string
	fn   func() any
}

// Func adapts a closure into a Provider.
func Func(name string, fn func() any) Provider {
	return &funcProvider{name: name, fn: fn}
}

func (p *funcProvider) Name() string { return p.name }

func (p *funcProvider) Snapshot() any { return p.fn() }
