package main_test

import (
	"bytes"
	"context"
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/pagesift/pagesift"
	main "github.com/pagesift/pagesift/cmd/pagesift"
	"github.com/pagesift/pagesift/mock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMarkdownCmd_Run(t *testing.T) {
	t.Parallel()

	t.Run("chains extraction and conversion", func(t *testing.T) {
		t.Parallel()

		dir := t.TempDir()
		path := filepath.Join(dir, "article.html")
		require.NoError(t, os.WriteFile(path, []byte(`<html><body><main><p>body text</p></main></body></html>`), 0644))

		extractor := &mock.Extractor{
			ExtractFn: func(html string) (*pagesift.ExtractResult, error) {
				return &pagesift.ExtractResult{
					Title:       "The Article",
					ContentHTML: "<p>body text</p>",
				}, nil
			},
		}
		converter := &mock.Converter{
			ConvertFn: func(html string) (string, error) {
				assert.Equal(t, "<p>body text</p>", html)
				return "body text", nil
			},
		}

		stdout := &bytes.Buffer{}
		deps := &main.Dependencies{
			Ctx:       context.Background(),
			Stdout:    stdout,
			Stderr:    &bytes.Buffer{},
			Extractor: extractor,
			Converter: converter,
		}

		cmd := &main.MarkdownCmd{Input: path}

		err := cmd.Run(deps)

		require.NoError(t, err)
		output := stdout.String()
		assert.Contains(t, output, "# The Article")
		assert.Contains(t, output, "body text")
	})

	t.Run("returns error when extraction fails", func(t *testing.T) {
		t.Parallel()

		dir := t.TempDir()
		path := filepath.Join(dir, "bad.html")
		require.NoError(t, os.WriteFile(path, []byte(`<p>x</p>`), 0644))

		extractErr := errors.New("extraction failed")
		extractor := &mock.Extractor{
			ExtractFn: func(html string) (*pagesift.ExtractResult, error) {
				return nil, extractErr
			},
		}

		stderr := &bytes.Buffer{}
		deps := &main.Dependencies{
			Ctx:       context.Background(),
			Stdout:    &bytes.Buffer{},
			Stderr:    stderr,
			Extractor: extractor,
		}

		cmd := &main.MarkdownCmd{Input: path}

		err := cmd.Run(deps)

		require.Error(t, err)
		assert.Equal(t, extractErr, err)
		assert.Contains(t, stderr.String(), "error:")
	})
}
