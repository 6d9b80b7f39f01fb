package i3blocks

import (
	"maps"

	"github.com/gopasspw/gopass/pkg/debug"
)

// merger folds the tokenizer's event stream into finalized sections.
//
// Properties seen before the first header accumulate in global; a header
// snapshots global into a fresh section record, which collects properties
// until the next header or the end of the stream finalizes it. A finalized
// section is handed to the handler once and the merger drops its reference,
// so later global changes never reach it.
type merger struct {
	global  Section
	section Section
	handler Handler
	dir     string
}

// finalize delivers the active section, if any, and retires it. The
// reference is dropped before the handler runs so the record can never be
// mutated or delivered again, even if the handler fails.
func (m *merger) finalize() error {
	if m.section == nil {
		return nil
	}

	s := m.section
	m.section = nil

	if m.handler == nil {
		return nil
	}

	return m.handler.HandleSection(s, m.dir)
}

// beginSection finalizes the previous section and opens a new one seeded
// with a copy of the current global defaults and the reserved name key.
func (m *merger) beginSection(name string) error {
	if err := m.finalize(); err != nil {
		return err
	}

	s := make(Section, len(m.global)+1)
	maps.Copy(s, m.global)
	s[NameKey] = name
	m.section = s

	debug.V(2).Log("section [%s] opened with %d inherited properties", name, len(m.global))

	return nil
}

// setProperty records a key=value pair on the active section, or on the
// global defaults when no section is open yet.
func (m *merger) setProperty(key, value string) {
	if m.section != nil {
		m.section[key] = value

		return
	}

	if m.global == nil {
		m.global = make(Section, 8)
	}
	m.global[key] = value
}

// finish signals the end of the event stream, finalizing a still-open
// section. A stream with properties but no header finalizes nothing.
func (m *merger) finish() error {
	return m.finalize()
}

// resetGlobal discards the global defaults pool. Called after a standalone
// file so its defaults cannot leak into another candidate, and once at the
// end of a directory pass.
func (m *merger) resetGlobal() {
	m.global = nil
}
