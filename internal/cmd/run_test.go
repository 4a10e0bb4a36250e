package cmd

import (
	"bytes"
	"errors"
	"testing"

	"github.com/spf13/afero"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/searchcloud/searchcloud/internal/pattern"
)

func searchFs(t *testing.T) afero.Fs {
	t.Helper()
	fs := afero.NewMemMapFs()
	require.NoError(t, afero.WriteFile(fs, "/data/fruits.txt",
		[]byte("apple\nbanana\nApple pie\n"), 0644))
	return fs
}

func TestRunEndToEnd(t *testing.T) {
	t.Run("count only", func(t *testing.T) {
		var out, errOut bytes.Buffer
		cfg := Config{Term: "apple", Dir: "/data", Extension: "txt"}

		require.NoError(t, Run(cfg, searchFs(t), &out, &errOut))

		assert.Contains(t, out.String(), "Total de arquivos encontrados: 1")
		assert.Contains(t, out.String(), "Total de linhas encontradas: 1")
	})

	t.Run("ignore case finds more", func(t *testing.T) {
		var out, errOut bytes.Buffer
		cfg := Config{Term: "apple", IgnoreCase: true, Dir: "/data", Extension: "txt"}

		require.NoError(t, Run(cfg, searchFs(t), &out, &errOut))

		assert.Contains(t, out.String(), "Total de linhas encontradas: 2")
	})

	t.Run("save to destination", func(t *testing.T) {
		var out, errOut bytes.Buffer
		fs := searchFs(t)
		cfg := Config{Term: "banana", Dir: "/data", Extension: "txt", SavePath: "/results.txt"}

		require.NoError(t, Run(cfg, fs, &out, &errOut))

		assert.Contains(t, out.String(), "Resultados salvos em: /results.txt")
		content, err := afero.ReadFile(fs, "/results.txt")
		require.NoError(t, err)
		assert.Equal(t, "banana\n", string(content))
	})

	t.Run("buffered save joins without trailing newline", func(t *testing.T) {
		var out, errOut bytes.Buffer
		fs := searchFs(t)
		cfg := Config{
			Term: "apple", IgnoreCase: true, Buffered: true,
			Dir: "/data", Extension: "txt", SavePath: "/results.txt",
		}

		require.NoError(t, Run(cfg, fs, &out, &errOut))

		content, err := afero.ReadFile(fs, "/results.txt")
		require.NoError(t, err)
		assert.Equal(t, "apple\nApple pie", string(content))
	})
}

func TestRunZeroFilesEndsEarly(t *testing.T) {
	var out, errOut bytes.Buffer
	cfg := Config{Term: "apple", Dir: "/nowhere", Extension: "txt"}

	require.NoError(t, Run(cfg, afero.NewMemMapFs(), &out, &errOut))

	assert.Contains(t, out.String(), "Total de arquivos encontrados: 0")
	assert.NotContains(t, out.String(), "Total de linhas encontradas")
}

func TestRunInvalidPatternAborts(t *testing.T) {
	var out, errOut bytes.Buffer
	cfg := Config{Term: "foo[bar", Regex: true, Dir: "/data", Extension: "txt"}

	err := Run(cfg, searchFs(t), &out, &errOut)
	require.Error(t, err)

	var perr *pattern.InvalidPatternError
	assert.True(t, errors.As(err, &perr))
	// Aborted before any file enumeration output.
	assert.NotContains(t, out.String(), "Total de arquivos encontrados")
}
