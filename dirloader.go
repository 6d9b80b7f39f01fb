package i3blocks

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/gopasspw/gopass/pkg/debug"
	"github.com/gopasspw/gopass/pkg/set"
)

// LoadDir loads every entry of a directory as one logical configuration.
//
// Entries are visited in byte-wise lexicographic name order; this is a
// user-visible contract, so "10-a.conf" loads before "2-b.conf". Every
// entry is a fragment, with no name or extension filtering. The global
// defaults pool is shared across the whole pass: a later fragment's
// pre-section properties override earlier defaults for sections finalized
// afterwards, while already-finalized sections are unaffected.
//
// The pass is fail-fast: the first fragment that fails aborts the rest and
// its error is returned. An unlistable directory is reported on stderr
// unless Quiet is set; the error is returned either way.
func (l *Loader) LoadDir(path string) error {
	m := &merger{handler: l.Handler}
	defer m.resetGlobal()

	dh, err := os.Open(path)
	if err != nil {
		if !l.Quiet {
			fmt.Fprintf(os.Stderr, "%s: %v\n", path, err)
		}

		return fmt.Errorf("failed to list %s: %w", path, err)
	}
	defer dh.Close() //nolint:errcheck

	entries, err := dh.ReadDir(-1)
	if err != nil {
		if !l.Quiet {
			fmt.Fprintf(os.Stderr, "%s: %v\n", path, err)
		}

		return fmt.Errorf("failed to list %s: %w", path, err)
	}

	names := make([]string, 0, len(entries))
	for _, e := range entries {
		names = append(names, e.Name())
	}

	for _, fname := range set.Sorted(names) {
		debug.Log("reading config file %s", fname)

		if err := l.loadFile(m, filepath.Join(path, fname), false); err != nil {
			debug.Log("failed to load config file %s: %v", fname, err)

			return err
		}
	}

	return nil
}
