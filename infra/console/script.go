package console

import "io"

// Script replays a fixed list of input lines. It is used for scripted
// scenarios and tests.
type Script struct {
	lines []string
	pos   int
}

// NewScript returns a Script replaying lines in order.
func NewScript(lines ...string) *Script {
	return &Script{lines: append([]string(nil), lines...)}
}

// ReadLine implements console.Input.
func (s *Script) ReadLine() (string, error) {
	if s.pos >= len(s.lines) {
		return "", io.EOF
	}
	line := s.lines[s.pos]
	s.pos++
	return line, nil
}

// ReadKey implements console.Input. A scripted run has nobody to wait for.
func (s *Script) ReadKey() error { return nil }

// Remaining reports how many lines have not been consumed.
func (s *Script) Remaining() int { return len(s.lines) - s.pos }
