package i3blocks

import (
	"github.com/gobwas/glob"
)

// NameKey is the reserved property holding the section's header text.
// It is set when the section is created and may be overwritten by an
// explicit `name = ...` property like any other key.
const NameKey = "name"

// Section is one finalized block: the properties declared inside a
// `[name]` section, layered on top of the global defaults that were in
// effect when the header was read.
//
// A Section is handed to the Handler exactly once and is owned by the
// handler from that point on. The loader keeps no reference to it.
type Section map[string]string

// Name returns the section's header text.
func (s Section) Name() string {
	return s[NameKey]
}

// Get returns the value of the key.
func (s Section) Get(key string) (string, bool) {
	v, found := s[key]

	return v, found
}

// IsSet returns true if the key is present, even with an empty value.
func (s Section) IsSet(key string) bool {
	_, present := s[key]

	return present
}

// Handler consumes finalized sections, in declaration order, exactly once
// each. dir is the directory containing the configuration file the section
// was read from; handlers should resolve relative resource paths against it.
//
// A non-nil error aborts the remainder of the load (and, for directory
// loads, the whole pass) and is returned unchanged to the caller.
type Handler interface {
	HandleSection(s Section, dir string) error
}

// HandlerFunc adapts a plain function to the Handler interface.
type HandlerFunc func(s Section, dir string) error

// HandleSection calls f(s, dir).
func (f HandlerFunc) HandleSection(s Section, dir string) error {
	return f(s, dir)
}

type filterHandler struct {
	g    glob.Glob
	next Handler
}

func (f *filterHandler) HandleSection(s Section, dir string) error {
	if !f.g.Match(s.Name()) {
		return nil
	}

	return f.next.HandleSection(s, dir)
}

// FilterHandler wraps next so that only sections whose name matches the
// glob pattern are forwarded. Non-matching sections are dropped silently;
// errors from next still abort the load.
func FilterHandler(pattern string, next Handler) (Handler, error) {
	g, err := glob.Compile(pattern)
	if err != nil {
		return nil, err
	}

	return &filterHandler{g: g, next: next}, nil
}
