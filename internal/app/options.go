package service

import (
	"github.com/okian/startlist/internal/adapters/sheet"
	"github.com/okian/startlist/pkg/logger"
	"github.com/okian/startlist/pkg/metrics"
)

// Option applies a configuration option to the Service.
type Option func(*Service)

// WithLogger sets a custom logger for the service.
func WithLogger(l logger.Logger) Option {
	return func(s *Service) {
		if l != nil {
			s.logger = l
		}
	}
}

// WithMetrics sets the metrics manager runs are recorded on.
func WithMetrics(m *metrics.Manager) Option {
	return func(s *Service) {
		if m != nil {
			s.metrics = m
		}
	}
}

// WithStartBib sets the bib of the first team.
func WithStartBib(start int) Option {
	return func(s *Service) {
		if start >= 0 {
			s.startBib = start
		}
	}
}

// WithColumns sets the roster header names.
func WithColumns(c sheet.Columns) Option {
	return func(s *Service) {
		s.columns = c
	}
}

// WithSheet selects the worksheet of Excel rosters.
func WithSheet(name string) Option {
	return func(s *Service) {
		s.sheet = name
	}
}

// WithDelimiter sets the start list column separator.
func WithDelimiter(r rune) Option {
	return func(s *Service) {
		if r != 0 {
			s.delimiter = r
		}
	}
}
