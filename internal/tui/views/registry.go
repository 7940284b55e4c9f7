package views

import (
	"github.com/sahilm/fuzzy"
)

// ExampleInfo holds sidebar metadata for an example.
type ExampleInfo struct {
	Example Example
	Icon    string
}

// Match is an example matched by a filter query.
type Match struct {
	ExampleInfo
	// MatchedIndexes are byte offsets into the example's title.
	MatchedIndexes []int
}

// Registry holds all registered examples in display order.
type Registry struct {
	examples map[string]ExampleInfo
	order    []string
}

// NewRegistry creates a new empty registry.
func NewRegistry() *Registry {
	return &Registry{
		examples: make(map[string]ExampleInfo),
	}
}

// Register adds an example. Registering a name twice replaces the example
// but keeps its position.
func (r *Registry) Register(example Example, icon string) {
	name := example.Name()
	if _, ok := r.examples[name]; !ok {
		r.order = append(r.order, name)
	}
	r.examples[name] = ExampleInfo{Example: example, Icon: icon}
}

// Get returns an example by name.
func (r *Registry) Get(name string) (Example, bool) {
	info, ok := r.examples[name]
	return info.Example, ok
}

// Examples returns every example in display order.
func (r *Registry) Examples() []ExampleInfo {
	infos := make([]ExampleInfo, 0, len(r.order))
	for _, name := range r.order {
		infos = append(infos, r.examples[name])
	}
	return infos
}

// Filter returns the examples whose title fuzzy-matches query, best match
// first. An empty query matches everything in display order.
func (r *Registry) Filter(query string) []Match {
	infos := r.Examples()
	if query == "" {
		matches := make([]Match, len(infos))
		for i, info := range infos {
			matches[i] = Match{ExampleInfo: info}
		}
		return matches
	}

	titles := make([]string, len(infos))
	for i, info := range infos {
		titles[i] = info.Example.Title()
	}
	found := fuzzy.Find(query, titles)
	matches := make([]Match, 0, len(found))
	for _, m := range found {
		matches = append(matches, Match{ExampleInfo: infos[m.Index], MatchedIndexes: m.MatchedIndexes})
	}
	return matches
}

// DefaultRegistry creates a registry with every gallery example.
func DefaultRegistry(ctx *Context) *Registry {
	r := NewRegistry()
	r.Register(NewDayOfTimeView(ctx), "🌅")
	r.Register(NewDynamicLabelsView(ctx), "🔤")
	r.Register(NewLongLabelView(ctx), "📏")
	r.Register(NewScrollableView(ctx), "↔")
	r.Register(NewAlignView(ctx), "⚖")
	r.Register(NewInitialSetView(ctx), "🥤")
	r.Register(NewInspectorView(ctx), "🔍")
	return r
}
