package slog_test

import (
	"bytes"
	"log/slog"
	"testing"

	"github.com/pagesift/pagesift"
	"github.com/pagesift/pagesift/mock"
	pslog "github.com/pagesift/pagesift/slog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoggingParser(t *testing.T) {
	t.Parallel()

	t.Run("logs structured parse with size and duration", func(t *testing.T) {
		t.Parallel()

		var buf bytes.Buffer
		logger := slog.New(slog.NewTextHandler(&buf, nil))
		inner := &mock.Parser{
			ParseStructuredFn: func(html string, opts *pagesift.ParseOptions) *pagesift.StructuredResult {
				return &pagesift.StructuredResult{
					Content: &pagesift.ParsedElement{Tag: "body", Selector: "body", Children: []*pagesift.ParsedElement{}},
				}
			},
		}

		p := pslog.NewLoggingParser(inner, logger)
		result := p.ParseStructured("<p>hi</p>", nil)

		require.NotNil(t, result)
		output := buf.String()
		assert.Contains(t, output, "parse structured")
		assert.Contains(t, output, "bytes=9")
		assert.Contains(t, output, "duration=")
	})

	t.Run("logs envelope error message", func(t *testing.T) {
		t.Parallel()

		var buf bytes.Buffer
		logger := slog.New(slog.NewTextHandler(&buf, nil))
		inner := &mock.Parser{
			ParseStructuredFn: func(html string, opts *pagesift.ParseOptions) *pagesift.StructuredResult {
				return &pagesift.StructuredResult{
					Content: &pagesift.ParsedElement{Tag: "body", Selector: "body", Children: []*pagesift.ParsedElement{}},
					Error:   "HTML input must contain at least one tag",
				}
			},
		}

		p := pslog.NewLoggingParser(inner, logger)
		p.ParseStructured("plain text", nil)

		assert.Contains(t, buf.String(), "err=\"HTML input must contain at least one tag\"")
	})

	t.Run("logs interactable scope and count", func(t *testing.T) {
		t.Parallel()

		var buf bytes.Buffer
		logger := slog.New(slog.NewTextHandler(&buf, nil))
		inner := &mock.Parser{
			ParseInteractablesFn: func(html string, scope string, opts *pagesift.InteractableOptions) *pagesift.InteractablesResult {
				return &pagesift.InteractablesResult{
					Elements: []pagesift.InteractableElement{
						{Selector: "button:nth-of-type(1)", Type: pagesift.TypeButton},
					},
				}
			},
		}

		p := pslog.NewLoggingParser(inner, logger)
		result := p.ParseInteractables("<button>Go</button>", "#form", nil)

		require.Len(t, result.Elements, 1)
		output := buf.String()
		assert.Contains(t, output, "parse interactables")
		assert.Contains(t, output, "scope=#form")
		assert.Contains(t, output, "count=1")
	})

	t.Run("logs metadata title", func(t *testing.T) {
		t.Parallel()

		var buf bytes.Buffer
		logger := slog.New(slog.NewTextHandler(&buf, nil))
		inner := &mock.Parser{
			MetadataFn: func(html string) pagesift.PageMetadata {
				return pagesift.PageMetadata{Title: "Example"}
			},
		}

		p := pslog.NewLoggingParser(inner, logger)
		md := p.Metadata("<title>Example</title>")

		assert.Equal(t, "Example", md.Title)
		output := buf.String()
		assert.Contains(t, output, "extract metadata")
		assert.Contains(t, output, "title=Example")
	})
}
