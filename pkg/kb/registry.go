package kb

import (
	"strings"
	"sync"
)

// Registry holds the four catalogs as read-after-init maps, guarded by an
// RWMutex so registration races are safe even though production callers
// only ever register at start-up. Generalized from the teacher's single
// operator map (pkg/operators/registry.go) to four parallel catalogs.
type Registry struct {
	mu         sync.RWMutex
	codecs     map[string]Codec
	aliases    map[string]string // alias -> canonical codec name
	containers map[string]Container
	extByName  map[string]string // extension -> container name
	filters    map[string]Filter
	extensions map[string][]StreamKind
}

// NewRegistry builds a Registry pre-populated with the curated default
// tables (§6, §9); additional entries may be registered afterward.
func NewRegistry() *Registry {
	r := &Registry{
		codecs:     make(map[string]Codec),
		aliases:    make(map[string]string),
		containers: make(map[string]Container),
		extByName:  make(map[string]string),
		filters:    make(map[string]Filter),
		extensions: make(map[string][]StreamKind),
	}
	for _, c := range defaultCodecs() {
		r.RegisterCodec(c)
	}
	for _, c := range defaultContainers() {
		r.RegisterContainer(c)
	}
	for _, f := range defaultFilters() {
		r.RegisterFilter(f)
	}
	for ext, kinds := range defaultExtensions() {
		r.RegisterExtension(ext, kinds)
	}
	return r
}

// RegisterCodec adds or replaces a codec catalog entry.
func (r *Registry) RegisterCodec(c Codec) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.codecs[c.Name] = c
	for _, a := range c.Aliases {
		r.aliases[a] = c.Name
	}
}

// Codec resolves name (canonical or alias) to its catalog entry.
func (r *Registry) Codec(name string) (Codec, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	if c, ok := r.codecs[name]; ok {
		return c, true
	}
	if canon, ok := r.aliases[name]; ok {
		c := r.codecs[canon]
		return c, true
	}
	return Codec{}, false
}

// RegisterContainer adds or replaces a container catalog entry.
func (r *Registry) RegisterContainer(c Container) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.containers[c.Name] = c
	for _, ext := range c.Extensions {
		r.extByName[strings.ToLower(ext)] = c.Name
	}
}

// Container looks up a container by its canonical name.
func (r *Registry) Container(name string) (Container, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	c, ok := r.containers[name]
	return c, ok
}

// ContainerByExtension resolves a bare (dot-less) file extension to its
// container; the lookup is case-insensitive.
func (r *Registry) ContainerByExtension(ext string) (Container, bool) {
	r.mu.RLock()
	name, ok := r.extByName[strings.ToLower(ext)]
	r.mu.RUnlock()
	if !ok {
		return Container{}, false
	}
	return r.Container(name)
}

// RegisterFilter adds or replaces a filter catalog entry.
func (r *Registry) RegisterFilter(f Filter) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.filters[f.Name] = f
}

// Filter looks up a filter by name.
func (r *Registry) Filter(name string) (Filter, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	f, ok := r.filters[name]
	return f, ok
}

// FilterNames lists the catalog's filter names that accept the given
// stream kind, used to render a filter-catalog hint alongside E502.
func (r *Registry) FilterNames(kind StreamKind) []string {
	r.mu.RLock()
	defer r.mu.RUnlock()
	names := make([]string, 0, len(r.filters))
	for name, f := range r.filters {
		if f.Accepts == kind {
			names = append(names, name)
		}
	}
	return names
}

// RegisterExtension adds or replaces an extension's default stream set.
func (r *Registry) RegisterExtension(ext string, kinds []StreamKind) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.extensions[strings.ToLower(ext)] = kinds
}

// ExtensionKinds looks up the default stream set for a bare extension.
func (r *Registry) ExtensionKinds(ext string) ([]StreamKind, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	kinds, ok := r.extensions[strings.ToLower(ext)]
	return kinds, ok
}

// global is the process-wide default registry, built once at package init
// and treated as read-only thereafter so concurrent analyze() calls never
// race (§5, §9).
var global = NewRegistry()

// Default returns the shared, read-only default Registry.
func Default() *Registry {
	return global
}
