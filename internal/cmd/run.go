package cmd

import (
	"fmt"
	"io"

	"github.com/common-nighthawk/go-figure"
	"github.com/spf13/afero"

	"github.com/searchcloud/searchcloud/internal/collector"
	"github.com/searchcloud/searchcloud/internal/pattern"
	"github.com/searchcloud/searchcloud/internal/reader"
	"github.com/searchcloud/searchcloud/internal/scanner"
	"github.com/searchcloud/searchcloud/internal/utils"
)

// Config is the full per-run configuration, built once from the CLI
// surface and passed into every component.
type Config struct {
	Term       string // Search text or pattern
	Regex      bool   // Interpret Term as a regular expression
	IgnoreCase bool   // Case-insensitive matching
	Dir        string // Root file or directory to scan
	Extension  string // Target extension, without leading dot
	SavePath   string // Destination for matched lines; empty = count only
	Buffered   bool   // Whole-file reading and one-pass saving
	Verbose    bool   // Extra diagnostic output
}

// Run executes a complete search: compile the pattern, enumerate the
// files, scan them and render the report.
func Run(cfg Config, fs afero.Fs, out, errOut io.Writer) error {
	fmt.Fprintln(out, bannerStyle.Render(figure.NewFigure("SearchCloud", "", true).String()))

	log := utils.NewLogger(out, errOut, cfg.Verbose)

	matcher, err := pattern.Compile(pattern.Term{
		Raw:        cfg.Term,
		Regex:      cfg.Regex,
		IgnoreCase: cfg.IgnoreCase,
	})
	if err != nil {
		return err
	}

	files, err := scanner.NewScanner(fs, log).Enumerate(cfg.Dir, cfg.Extension)
	if err != nil {
		return err
	}
	if len(files) == 0 {
		return nil
	}

	var src reader.Source
	if cfg.Buffered {
		src = reader.NewBuffered(fs, log)
	} else {
		src = reader.NewStreaming(fs, log)
	}

	col := collector.New(fs, matcher, src, collector.Options{
		SavePath: cfg.SavePath,
		Buffered: cfg.Buffered,
	}, log)

	report, err := col.Run(files)
	if err != nil {
		return err
	}

	renderReport(report, log)
	return nil
}

// renderReport prints the final summary of a run.
func renderReport(report *collector.Report, log *utils.Logger) {
	if report.FilesSkipped > 0 {
		log.Warnf("Arquivos ignorados por falha de leitura: %d", report.FilesSkipped)
	}
	if report.Saved() {
		log.Infof("%s", summaryStyle.Render(fmt.Sprintf("Resultados salvos em: %s", report.SavedTo)))
	}
	log.Infof("%s", summaryStyle.Render(fmt.Sprintf("Total de linhas encontradas: %d", report.Total)))
	log.Debugf("Tempo decorrido: %s", report.Elapsed.Round(timePrecision))
}
