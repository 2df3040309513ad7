package productgroup

import (
	"context"
	"errors"
	"fmt"
	"sync"
)

var ErrNoProvider = errors.New("product group read outside of a provider")

// Observer is called synchronously after every committed group change,
// including the initial one.
type Observer func(ProductGroup)

// Provider owns the current product group for one view tree (one request in
// the HTTP server) and keeps it in sync with navigation.
//
// An update cycle (commit plus all observer calls) finishes before the next
// one starts. Observers may read the provider but must not call Navigate,
// SetGroup or Subscribe.
type Provider struct {
	cycle sync.Mutex

	mu        sync.RWMutex
	path      string
	group     ProductGroup
	observers []Observer
}

func NewProvider(path string, observers ...Observer) *Provider {
	p := &Provider{
		path:      path,
		group:     Detect(path),
		observers: append([]Observer(nil), observers...),
	}
	p.cycle.Lock()
	defer p.cycle.Unlock()
	notify(p.observers, p.group)
	return p
}

func (p *Provider) Group() ProductGroup {
	p.mu.RLock()
	defer p.mu.RUnlock()
	return p.group
}

func (p *Provider) Path() string {
	p.mu.RLock()
	defer p.mu.RUnlock()
	return p.path
}

// Navigate reclassifies the provider for a new path. Observers run only if
// the group actually changed. It reports whether it did.
func (p *Provider) Navigate(path string) bool {
	p.cycle.Lock()
	defer p.cycle.Unlock()

	next := Detect(path)

	p.mu.Lock()
	p.path = path
	changed, observers := p.commitLocked(next)
	p.mu.Unlock()

	if changed {
		notify(observers, next)
	}
	return changed
}

// SetGroup forces the group regardless of the current path, e.g. for pages
// that always present a donor theme.
func (p *Provider) SetGroup(g ProductGroup) error {
	if !g.Valid() {
		return fmt.Errorf("%w: %q", ErrUnknownProductGroup, string(g))
	}

	p.cycle.Lock()
	defer p.cycle.Unlock()

	p.mu.Lock()
	changed, observers := p.commitLocked(g)
	p.mu.Unlock()

	if changed {
		notify(observers, g)
	}
	return nil
}

// Subscribe registers obs and calls it once with the current group.
func (p *Provider) Subscribe(obs Observer) {
	p.cycle.Lock()
	defer p.cycle.Unlock()

	p.mu.Lock()
	p.observers = append(p.observers, obs)
	g := p.group
	p.mu.Unlock()

	obs(g)
}

func (p *Provider) commitLocked(next ProductGroup) (bool, []Observer) {
	if next == p.group {
		return false, nil
	}
	p.group = next
	return true, append([]Observer(nil), p.observers...)
}

func notify(observers []Observer, g ProductGroup) {
	for _, obs := range observers {
		obs(g)
	}
}

type providerKey struct{}

func WithProvider(ctx context.Context, p *Provider) context.Context {
	return context.WithValue(ctx, providerKey{}, p)
}

// FromContext returns the provider attached to ctx. There is no default
// group: callers outside a provider get ErrNoProvider.
func FromContext(ctx context.Context) (*Provider, error) {
	if ctx != nil {
		if p, ok := ctx.Value(providerKey{}).(*Provider); ok && p != nil {
			return p, nil
		}
	}
	return nil, ErrNoProvider
}

func MustFromContext(ctx context.Context) *Provider {
	p, err := FromContext(ctx)
	if err != nil {
		panic(err)
	}
	return p
}
