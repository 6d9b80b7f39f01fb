package i3blocks

import (
	"errors"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/gopasspw/gopass/pkg/debug"
)

var (
	// name is the default application name used to form candidate paths.
	name = "i3blocks"
	// systemPrefix is the default prefix for system-wide candidate paths.
	systemPrefix = "/etc"
)

// Loader loads block configuration and delivers finalized sections to a
// Handler.
//
// Fields:
//   - Name: application name used in candidate paths (e.g. "i3blocks")
//   - SystemPrefix: prefix for system-wide candidates (default "/etc")
//   - Handler: the section consumer; may be nil to parse without delivery
//   - Quiet: suppress the stderr diagnostic for an unlistable directory
//
// Note: Loader is not thread-safe. A single load operation owns the global
// defaults pool and the base-directory context; callers must not run two
// loads on the same Loader concurrently.
type Loader struct {
	Name         string
	SystemPrefix string
	Handler      Handler
	Quiet        bool
}

// New creates a Loader for the given application name. The name can be
// empty, in which case the package default is used.
func New(appName string, h Handler) *Loader {
	if appName == "" {
		appName = name
	}

	return &Loader{
		Name:    appName,
		Handler: h,
	}
}

// Load loads a single logical configuration.
//
// If path is non-empty it is the only location tried; a missing file is
// reported as an error wrapping fs.ErrNotExist with no fallback. If path is
// empty the candidate chain is tried in order and only "not found" moves on
// to the next candidate: the first candidate that opens is the one and only
// file loaded, and any error past open (parse failure, handler failure)
// ends the load immediately.
func (l *Loader) Load(path string) error {
	m := &merger{handler: l.Handler}

	if path != "" {
		return l.loadFile(m, path, true)
	}

	var err error
	for _, candidate := range l.candidates() {
		err = l.loadFile(m, candidate, true)
		if !errors.Is(err, fs.ErrNotExist) {
			return err
		}
	}

	// every candidate was missing; report the last one's error
	return err
}

// loadFile loads one physical file into the merger.
//
// The file's own directory becomes the merger's base-directory context
// before any section can finalize, so every handler invocation triggered by
// this file sees it. In single mode the global defaults pool is discarded
// when the file completes, success or not, so it cannot leak into another
// independently resolved candidate.
func (l *Loader) loadFile(m *merger, path string, single bool) error {
	debug.Log("try file %s", path)

	fh, err := os.Open(path)
	if err != nil {
		return err
	}
	defer fh.Close() //nolint:errcheck

	m.dir = filepath.Dir(path)
	debug.V(1).Log("base directory %s", m.dir)

	err = scanConfig(fh, m.beginSection, func(k, v string) error {
		m.setProperty(k, v)

		return nil
	})
	if err == nil {
		err = m.finish()
	}

	if single {
		m.resetGlobal()
	}

	return err
}
