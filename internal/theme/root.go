package theme

import (
	"fmt"
	"sort"
	"strings"
	"sync"

	"family_shapes/internal/productgroup"
)

const (
	VarPrimary           = "--primary-dynamic"
	VarPrimaryForeground = "--primary-foreground-dynamic"
	VarAccent            = "--accent-dynamic"
	VarAccentForeground  = "--accent-foreground-dynamic"
)

// Root stands in for the document root element: a bag of named style
// variables that pages inline into their <style> block.
type Root struct {
	mu    sync.RWMutex
	props map[string]string
}

func NewRoot() *Root {
	return &Root{props: map[string]string{}}
}

func (r *Root) SetProperty(name, value string) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.props[name] = value
}

func (r *Root) Property(name string) (string, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	v, ok := r.props[name]
	return v, ok
}

// Properties returns a copy of the variables.
func (r *Root) Properties() map[string]string {
	r.mu.RLock()
	defer r.mu.RUnlock()
	out := make(map[string]string, len(r.props))
	for k, v := range r.props {
		out[k] = v
	}
	return out
}

func (r *Root) Len() int {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return len(r.props)
}

// CSS renders the variables as a :root rule, sorted by name.
func (r *Root) CSS() string {
	props := r.Properties()
	names := make([]string, 0, len(props))
	for name := range props {
		names = append(names, name)
	}
	sort.Strings(names)

	var b strings.Builder
	b.WriteString(":root{")
	for _, name := range names {
		fmt.Fprintf(&b, "%s:%s;", name, props[name])
	}
	b.WriteString("}")
	return b.String()
}

// Apply returns the observer that keeps root's dynamic variables in line with
// the provider's group.
func Apply(root *Root) productgroup.Observer {
	return func(g productgroup.ProductGroup) {
		root.SetProperty(VarPrimary, ref(productgroup.PrimaryToken(g)))
		root.SetProperty(VarPrimaryForeground, ref(productgroup.PrimaryForegroundToken(g)))
		root.SetProperty(VarAccent, ref(productgroup.AccentToken(g)))
		root.SetProperty(VarAccentForeground, ref(productgroup.AccentForegroundToken(g)))
	}
}

func ref(t productgroup.Token) string {
	return "var(--" + t.String() + ")"
}

// Variables resolves the four dynamic variables for g without touching a Root.
func Variables(g productgroup.ProductGroup) map[string]string {
	r := NewRoot()
	Apply(r)(g)
	return r.Properties()
}
