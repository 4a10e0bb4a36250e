// Package reader produces the line sequence of a file under one of two
// strategies: buffered (whole file at once) or streaming (line by line).
package reader

import (
	"bufio"
	"fmt"
	"strings"
	"unicode/utf8"

	"github.com/spf13/afero"

	"github.com/searchcloud/searchcloud/internal/utils"
)

// Line is one element of a file's line sequence. When Failed is set
// the file could not be read or decoded; it is the terminal element of
// the sequence and Text is empty.
type Line struct {
	Text   string
	Failed bool
	Err    error
}

// Source yields the lines of a file, in order, to emit. Each call
// produces a fresh, independent pass over the file. A read failure is
// reported in-band as a single Line{Failed: true} and ends the
// sequence; it is never fatal to the caller.
type Source interface {
	Lines(path string, emit func(Line))
}

// Scanner buffer sizing, same as a generous grep: lines beyond the max
// trigger the failure path for that file.
const (
	initialBuf = 64 * 1024
	maxLineBuf = 1024 * 1024
)

// Buffered reads the entire file into memory before splitting it into
// lines. Lines keep their interior and edge whitespace; only the line
// terminator is stripped.
type Buffered struct {
	fs  afero.Fs
	log *utils.Logger
}

// NewBuffered creates a buffered Source over the given filesystem.
func NewBuffered(fs afero.Fs, log *utils.Logger) *Buffered {
	return &Buffered{fs: fs, log: log}
}

func (b *Buffered) Lines(path string, emit func(Line)) {
	b.log.Infof("Lendo arquivo: %s", path)

	data, err := afero.ReadFile(b.fs, path)
	if err != nil {
		b.log.Warnf("Erro lendo o arquivo: %v", err)
		emit(Line{Failed: true, Err: err})
		return
	}
	if !utf8.Valid(data) {
		err := fmt.Errorf("file %s is not valid UTF-8", path)
		b.log.Warnf("Erro lendo o arquivo: %v", err)
		emit(Line{Failed: true, Err: err})
		return
	}

	for _, text := range splitLines(string(data)) {
		b.log.Debugf("Leitura da linha: %s", text)
		emit(Line{Text: text})
	}
}

// splitLines splits content on line boundaries, stripping terminators.
// A trailing newline does not produce a final empty line, and an empty
// file produces no lines at all.
func splitLines(content string) []string {
	content = strings.TrimSuffix(content, "\n")
	if content == "" {
		return nil
	}
	lines := strings.Split(content, "\n")
	for i, line := range lines {
		lines[i] = strings.TrimSuffix(line, "\r")
	}
	return lines
}

// Streaming reads the file line by line without loading it whole.
// Every yielded line has leading and trailing whitespace trimmed, not
// just the terminator. This trimming asymmetry with Buffered is a
// long-observed behavior that callers depend on; do not unify it here
// without revisiting the save-mode output contract.
type Streaming struct {
	fs  afero.Fs
	log *utils.Logger
}

// NewStreaming creates a streaming Source over the given filesystem.
func NewStreaming(fs afero.Fs, log *utils.Logger) *Streaming {
	return &Streaming{fs: fs, log: log}
}

func (s *Streaming) Lines(path string, emit func(Line)) {
	s.log.Infof("Lendo arquivo: %s", path)

	f, err := s.fs.Open(path)
	if err != nil {
		s.log.Warnf("Erro lendo o arquivo: %v", err)
		emit(Line{Failed: true, Err: err})
		return
	}
	defer f.Close()

	sc := bufio.NewScanner(f)
	sc.Buffer(make([]byte, 0, initialBuf), maxLineBuf)
	for sc.Scan() {
		raw := sc.Bytes()
		if !utf8.Valid(raw) {
			err := fmt.Errorf("file %s is not valid UTF-8", path)
			s.log.Warnf("Erro lendo o arquivo: %v", err)
			emit(Line{Failed: true, Err: err})
			return
		}
		text := strings.TrimSpace(string(raw))
		s.log.Debugf("Leitura da linha: %s", text)
		emit(Line{Text: text})
	}
	if err := sc.Err(); err != nil {
		s.log.Warnf("Erro lendo o arquivo: %v", err)
		emit(Line{Failed: true, Err: err})
	}
}
