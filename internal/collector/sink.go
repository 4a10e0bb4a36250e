package collector

import (
	"strings"

	"github.com/spf13/afero"
)

// sink receives matched lines. Write is called once per match, in
// discovery order; Close flushes and releases the destination and must
// be called exactly once on every exit path.
type sink interface {
	Write(line string) error
	Close() error
}

// discardSink counts-only mode: matched lines are not retained.
type discardSink struct{}

func (discardSink) Write(string) error { return nil }
func (discardSink) Close() error       { return nil }

// memorySink accumulates matches in memory and writes the destination
// in a single truncating pass on Close. Lines are joined by a newline
// with no trailing newline after the last one.
type memorySink struct {
	fs    afero.Fs
	path  string
	lines []string
}

func (s *memorySink) Write(line string) error {
	s.lines = append(s.lines, line)
	return nil
}

func (s *memorySink) Close() error {
	content := strings.Join(s.lines, "\n")
	return afero.WriteFile(s.fs, s.path, []byte(content), 0644)
}

// streamSink writes each match immediately, followed by a newline. The
// destination is opened once, truncated, and owned for the whole run.
type streamSink struct {
	f afero.File
}

func newStreamSink(fs afero.Fs, path string) (*streamSink, error) {
	f, err := fs.Create(path)
	if err != nil {
		return nil, err
	}
	return &streamSink{f: f}, nil
}

func (s *streamSink) Write(line string) error {
	_, err := s.f.WriteString(line + "\n")
	return err
}

func (s *streamSink) Close() error {
	return s.f.Close()
}
