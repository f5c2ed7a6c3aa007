package slog_test

import (
	"bytes"
	"log/slog"
	"testing"

	"github.com/fwojciec/navdir"
	"github.com/fwojciec/navdir/mock"
	navslog "github.com/fwojciec/navdir/slog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoggingExtractor_Extract(t *testing.T) {
	t.Parallel()

	t.Run("logs category and site counts", func(t *testing.T) {
		t.Parallel()

		var buf bytes.Buffer
		logger := slog.New(slog.NewTextHandler(&buf, nil))
		inner := &mock.Extractor{
			ExtractFn: func(html string) (*navdir.Catalog, error) {
				return &navdir.Catalog{Categories: []navdir.Category{
					{ID: "a", Name: "A", Sites: []navdir.Site{{Name: "x", URL: "https://x"}, {Name: "y", URL: "https://y"}}},
				}}, nil
			},
		}

		c, err := navslog.NewLoggingExtractor(inner, logger).Extract("<html></html>")

		require.NoError(t, err)
		assert.Len(t, c.Categories, 1)
		output := buf.String()
		assert.Contains(t, output, "extract")
		assert.Contains(t, output, "categories=1")
		assert.Contains(t, output, "sites=2")
	})

	t.Run("logs error on failure", func(t *testing.T) {
		t.Parallel()

		var buf bytes.Buffer
		logger := slog.New(slog.NewTextHandler(&buf, nil))
		inner := &mock.Extractor{
			ExtractFn: func(html string) (*navdir.Catalog, error) {
				return nil, navdir.Errorf(navdir.EPARSE, "bad markup")
			},
		}

		_, err := navslog.NewLoggingExtractor(inner, logger).Extract("<")

		require.Error(t, err)
		assert.Equal(t, navdir.EPARSE, navdir.ErrorCode(err))
		assert.Contains(t, buf.String(), "level=ERROR")
	})
}
