// Package i3blocks implements a pure Go loader for i3blocks-style block
// configuration: an INI-like dialect where `[name]` headers declare blocks,
// `key = value` lines declare properties, and properties before the first
// header are global defaults inherited by every subsequent block.
//
// # Usage
//
// Use Load to process the usual configuration locations in order (the first
// one that exists wins, i.e. there is no merging across locations):
//
//   - `$XDG_CONFIG_HOME/i3blocks/config` or `~/.config/i3blocks/config`
//   - `~/.i3blocks.conf`
//   - `$XDG_CONFIG_DIRS/i3blocks/config` or `/etc/xdg/i3blocks/config`
//   - `/etc/i3blocks.conf`
//
// Passing a non-empty path to Load disables the chain and loads exactly
// that file. Use LoadDir to load a drop-in directory instead: every entry
// is read in byte-wise lexicographic name order as one logical
// configuration sharing a single global-defaults pool.
//
// Finalized sections are delivered to a Handler exactly once each, in
// declaration order, together with the directory of the file they came
// from so relative resource paths can be resolved without changing the
// process working directory:
//
//	l := i3blocks.New("i3blocks", i3blocks.HandlerFunc(func(s i3blocks.Section, dir string) error {
//		fmt.Println(s.Name(), s["command"])
//		return nil
//	}))
//	if err := l.Load(""); err != nil {
//		...
//	}
//
// # Customization
//
// Other applications can reuse the loader by adjusting the exported fields
// of Loader before loading:
//
//   - Name - application name used in candidate paths
//   - SystemPrefix - prefix for system-wide candidates (default /etc)
//   - Quiet - suppress the stderr diagnostic for an unlistable directory
//
// # Error handling
//
// A missing candidate moves resolution on to the next one; every other
// failure (I/O, a malformed line, a handler rejecting a section) ends the
// load immediately and is returned to the caller unchanged. Use errors.Is
// with fs.ErrNotExist and ErrParse to classify:
//
//	if err := l.Load(path); err != nil {
//		if errors.Is(err, fs.ErrNotExist) {
//			// no configuration present
//		}
//	}
//
// # Known limitations
//
// * Loading does not persist or write configuration
// * Values have no quoting or escape processing
// * A Loader must not run two load operations concurrently
package i3blocks
