package slog

import (
	"log/slog"
	"time"

	"github.com/fwojciec/navdir"
)

// Ensure LoggingExtractor implements navdir.CatalogExtractor.
var _ navdir.CatalogExtractor = (*LoggingExtractor)(nil)

// LoggingExtractor wraps a CatalogExtractor and logs extraction results.
type LoggingExtractor struct {
	next   navdir.CatalogExtractor
	logger *slog.Logger
}

// NewLoggingExtractor creates a new LoggingExtractor.
func NewLoggingExtractor(next navdir.CatalogExtractor, logger *slog.Logger) *LoggingExtractor {
	return &LoggingExtractor{next: next, logger: logger}
}

// Extract delegates to the wrapped extractor and logs category and site counts.
func (e *LoggingExtractor) Extract(html string) (*navdir.Catalog, error) {
	begin := time.Now()
	c, err := e.next.Extract(html)
	if err != nil {
		e.logger.Error("extract",
			"duration", time.Since(begin),
			"err", err,
		)
		return nil, err
	}
	e.logger.Info("extract",
		"categories", len(c.Categories),
		"sites", c.SiteCount(),
		"duration", time.Since(begin),
	)
	return c, nil
}
