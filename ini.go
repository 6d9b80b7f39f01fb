package i3blocks

import (
	"bufio"
	"fmt"
	"io"
	"strings"
)

// scanConfig tokenizes the INI-like block configuration dialect: `[name]`
// headers, `key = value` properties, `#`/`;` comments and blank lines. It
// emits events in input order through the two callbacks; a callback error
// aborts the scan and is returned unchanged. A missing trailing newline on
// the last line is not an error.
func scanConfig(r io.Reader, onSection func(name string) error, onProperty func(key, value string) error) error {
	s := bufio.NewScanner(r)

	lineno := 0
	for s.Scan() {
		lineno++

		line := strings.TrimSpace(s.Text())
		if line == "" {
			continue
		}
		if strings.HasPrefix(line, "#") || strings.HasPrefix(line, ";") {
			continue
		}

		if strings.HasPrefix(line, "[") {
			name, ok := parseSectionHeader(line)
			if !ok {
				return fmt.Errorf("%w: line %d: malformed section header %q", ErrParse, lineno, line)
			}

			if err := onSection(name); err != nil {
				return err
			}

			continue
		}

		k, v, found := strings.Cut(line, "=")
		if !found {
			return fmt.Errorf("%w: line %d: expected key=value, got %q", ErrParse, lineno, line)
		}

		if err := onProperty(strings.TrimSpace(k), strings.TrimSpace(v)); err != nil {
			return err
		}
	}

	return s.Err()
}

func parseSectionHeader(line string) (string, bool) {
	if !strings.HasSuffix(line, "]") {
		return "", false
	}

	name := strings.TrimSpace(line[1 : len(line)-1])
	if name == "" {
		return "", false
	}

	return name, true
}
