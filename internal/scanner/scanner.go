// Package scanner handles discovery of the files a search will visit.
package scanner

import (
	"fmt"
	"os"
	"strings"

	"github.com/spf13/afero"

	"github.com/searchcloud/searchcloud/internal/utils"
)

// Scanner enumerates candidate files for a search run.
type Scanner struct {
	fs  afero.Fs
	log *utils.Logger
}

// NewScanner creates a Scanner over the given filesystem.
func NewScanner(fs afero.Fs, log *utils.Logger) *Scanner {
	return &Scanner{
		fs:  fs,
		log: log,
	}
}

// NormalizeExtension strips a leading dot from an extension argument,
// so ".txt" and "txt" are equivalent on the command line.
func NormalizeExtension(ext string) string {
	return strings.TrimPrefix(ext, ".")
}

// Enumerate returns every file the search should visit.
//
// A missing root yields an empty list rather than an error. A root
// that is itself a regular file is returned as a singleton, bypassing
// the extension filter: the caller pointed at it deliberately. A
// directory root is walked recursively and every regular file whose
// name ends with "."+extension is included, in afero.Walk's lexical
// order. Unreadable entries are warned about and skipped.
func (s *Scanner) Enumerate(root, extension string) ([]string, error) {
	info, err := s.fs.Stat(root)
	if os.IsNotExist(err) {
		s.log.Infof("Total de arquivos encontrados: 0")
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to access path %s: %w", root, err)
	}

	if !info.IsDir() {
		s.log.Infof("Total de arquivos encontrados: 1")
		return []string{root}, nil
	}

	s.log.Infof("Buscando por arquivos com extensão .%s no diretório: %s", extension, root)

	suffix := "." + extension
	var files []string
	err = afero.Walk(s.fs, root, func(path string, info os.FileInfo, err error) error {
		if err != nil {
			s.log.Warnf("Aviso: falha ao acessar %s: %v", path, err)
			return nil
		}
		if !info.Mode().IsRegular() {
			return nil
		}
		if strings.HasSuffix(info.Name(), suffix) {
			files = append(files, path)
		}
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("failed to scan directory %s: %w", root, err)
	}

	s.log.Infof("Total de arquivos encontrados: %d", len(files))
	if s.log.Verbose() && len(files) > 0 {
		s.log.Debugf("Lista de arquivos encontrados:")
		for _, f := range files {
			s.log.Debugf("%s", f)
		}
	}

	return files, nil
}
