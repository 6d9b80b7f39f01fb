package i3blocks

import (
	"os"
	"path/filepath"
)

// candidates returns the ordered list of locations tried when no explicit
// path is given. The chain follows the XDG base directory convention:
//
//  1. $XDG_CONFIG_HOME/<name>/config, or $HOME/.config/<name>/config
//  2. $HOME/.<name>.conf
//  3. $XDG_CONFIG_DIRS/<name>/config, or <prefix>/xdg/<name>/config
//  4. <prefix>/<name>.conf
//
// Candidates gated on an unset environment variable are omitted entirely.
// The system entries are always present, so the list is never empty.
func (l *Loader) candidates() []string {
	home := os.Getenv("HOME")

	out := make([]string, 0, 4)

	if xdgHome := os.Getenv("XDG_CONFIG_HOME"); xdgHome != "" {
		out = append(out, filepath.Join(xdgHome, l.Name, "config"))
	} else if home != "" {
		out = append(out, filepath.Join(home, ".config", l.Name, "config"))
	}

	if home != "" {
		out = append(out, filepath.Join(home, "."+l.Name+".conf"))
	}

	if xdgDirs := os.Getenv("XDG_CONFIG_DIRS"); xdgDirs != "" {
		out = append(out, filepath.Join(xdgDirs, l.Name, "config"))
	} else {
		out = append(out, filepath.Join(l.systemPrefix(), "xdg", l.Name, "config"))
	}

	out = append(out, filepath.Join(l.systemPrefix(), l.Name+".conf"))

	return out
}

func (l *Loader) systemPrefix() string {
	if l.SystemPrefix != "" {
		return l.SystemPrefix
	}

	return systemPrefix
}
