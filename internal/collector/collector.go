// Package collector drives the per-file, per-line search pipeline and
// accumulates the results.
package collector

import (
	"fmt"
	"time"

	"github.com/spf13/afero"

	"github.com/searchcloud/searchcloud/internal/pattern"
	"github.com/searchcloud/searchcloud/internal/reader"
	"github.com/searchcloud/searchcloud/internal/utils"
)

// Options selects the output policy for a run. They are fixed at
// startup; the collector never re-reads global state.
type Options struct {
	// SavePath is the destination file for matched lines. Empty means
	// report a count only.
	SavePath string
	// Buffered selects the in-memory save policy: all matches are
	// collected first and written in a single pass. When false, save
	// mode streams each match to the destination as it is found.
	Buffered bool
}

// Report summarizes a completed run.
type Report struct {
	Total        int           // Matched lines across all files
	FilesScanned int           // Files visited
	FilesSkipped int           // Files skipped after a read failure
	SavedTo      string        // Destination path, empty when counting only
	Elapsed      time.Duration // Wall-clock duration of the run
}

// Saved reports whether matched lines were written to a destination.
func (r *Report) Saved() bool {
	return r.SavedTo != ""
}

// Collector applies a compiled matcher to every line produced by a
// Source and forwards matches to the configured sink.
type Collector struct {
	fs      afero.Fs
	matcher *pattern.Matcher
	source  reader.Source
	opts    Options
	log     *utils.Logger
}

// New creates a Collector. The source strategy and options must agree:
// pass Buffered: true together with a reader.Buffered source.
func New(fs afero.Fs, m *pattern.Matcher, src reader.Source, opts Options, log *utils.Logger) *Collector {
	return &Collector{
		fs:      fs,
		matcher: m,
		source:  src,
		opts:    opts,
		log:     log,
	}
}

// Run scans every file in order and returns the final report. A file
// whose source reports a failure contributes zero matches and is
// counted in FilesSkipped; the run continues with the next file. A
// destination open or write failure aborts the run with an error and
// no report.
func (c *Collector) Run(files []string) (*Report, error) {
	start := time.Now()

	snk, err := c.openSink()
	if err != nil {
		return nil, fmt.Errorf("failed to open destination %s: %w", c.opts.SavePath, err)
	}

	report := &Report{SavedTo: c.opts.SavePath}
	var sinkErr error

	for _, path := range files {
		failed := false
		c.source.Lines(path, func(ln reader.Line) {
			if ln.Failed {
				failed = true
				return
			}
			if sinkErr != nil || !c.matcher.Match(ln.Text) {
				return
			}
			c.log.Debugf("Encontrado na linha: %s", ln.Text)
			report.Total++
			if err := snk.Write(ln.Text); err != nil {
				sinkErr = err
			}
		})
		report.FilesScanned++
		if failed {
			report.FilesSkipped++
			c.log.Debugf("Arquivo ignorado por falha de leitura: %s", path)
		}
	}

	if err := snk.Close(); err != nil && sinkErr == nil {
		sinkErr = err
	}
	if sinkErr != nil {
		return nil, fmt.Errorf("failed to write destination %s: %w", c.opts.SavePath, sinkErr)
	}

	report.Elapsed = time.Since(start)
	return report, nil
}

// openSink builds the sink for the configured output policy.
func (c *Collector) openSink() (sink, error) {
	if c.opts.SavePath == "" {
		return discardSink{}, nil
	}
	if c.opts.Buffered {
		return &memorySink{fs: c.fs, path: c.opts.SavePath}, nil
	}
	return newStreamSink(c.fs, c.opts.SavePath)
}
