package network

import (
	"sort"

	"github.com/Dicklesworthstone/sysmoni/internal/model"
)

// Registry maps interface names to trackers. Entries are only removed by
// Remove or Reset; an interface missing from a snapshot keeps its last values.
type Registry struct {
	ifaces map[string]*Tracker
}

// NewRegistry returns an empty registry.
func NewRegistry() *Registry {
	return &Registry{ifaces: make(map[string]*Tracker)}
}

// Refresh merges one snapshot. Unknown names are inserted with a zero
// baseline, so their first LastInterval equals the total and is not a rate.
// A name repeated within the snapshot is updated once per record. It returns
// the names that were inserted.
func (r *Registry) Refresh(snapshot []model.RawInterface) (added []string) {
	for _, raw := range snapshot {
		t, ok := r.ifaces[raw.Name]
		if !ok {
			t = NewTracker(raw.Name)
			r.ifaces[raw.Name] = t
			added = append(added, raw.Name)
		}
		t.Update(raw)
	}
	return added
}

// Remove drops one interface and reports whether it was present.
func (r *Registry) Remove(name string) bool {
	if _, ok := r.ifaces[name]; !ok {
		return false
	}
	delete(r.ifaces, name)
	return true
}

// Reset drops every interface.
func (r *Registry) Reset() {
	r.ifaces = make(map[string]*Tracker)
}

// Len is the number of tracked interfaces.
func (r *Registry) Len() int { return len(r.ifaces) }

// Get returns the view of one interface.
func (r *Registry) Get(name string) (model.Interface, bool) {
	t, ok := r.ifaces[name]
	if !ok {
		return model.Interface{}, false
	}
	return t.View(), true
}

// Names returns tracked interface names in sorted order.
func (r *Registry) Names() []string {
	names := make([]string, 0, len(r.ifaces))
	for name := range r.ifaces {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Views returns all interfaces sorted by name.
func (r *Registry) Views() []model.Interface {
	out := make([]model.Interface, 0, len(r.ifaces))
	for _, name := range r.Names() {
		out = append(out, r.ifaces[name].View())
	}
	return out
}
