// Package service runs roster to start list conversions.
package service

import (
	"context"
	"fmt"
	"io"
	"time"

	"github.com/google/uuid"

	"github.com/okian/startlist/internal/adapters/sheet"
	"github.com/okian/startlist/internal/adapters/startlist"
	"github.com/okian/startlist/internal/domain/model"
	"github.com/okian/startlist/internal/domain/roster"
	"github.com/okian/startlist/pkg/logger"
	"github.com/okian/startlist/pkg/metrics"
)

// Service converts registration rosters into team start lists.
type Service struct {
	logger    logger.Logger
	metrics   *metrics.Manager
	startBib  int
	columns   sheet.Columns
	sheet     string
	delimiter rune
}

// Report summarizes one conversion.
type Report struct {
	RunID      string
	Input      string
	Output     string
	Athletes   int
	Teams      int
	FirstBib   int
	LastBib    int
	ByCategory map[string]int
	ByGender   map[string]int
	Duration   time.Duration
}

// New constructs a Service with default configuration.
func New(opts ...Option) *Service {
	s := &Service{
		startBib:  1,
		columns:   sheet.DefaultColumns(),
		delimiter: ',',
	}
	for _, opt := range opts {
		opt(s)
	}
	if s.logger == nil {
		s.logger = logger.Get()
	}
	if s.metrics == nil {
		s.metrics = metrics.Default()
	}
	return s
}

// Convert reads the roster at in and writes the start list to the file out.
// Nothing is written when any team is rejected.
func (s *Service) Convert(ctx context.Context, in, out string) (Report, error) {
	return s.run(ctx, in, out, func(teams []model.Team) error {
		return startlist.WriteFile(ctx, out, teams, startlist.WithDelimiter(s.delimiter))
	})
}

// ConvertTo is Convert writing the start list to w.
func (s *Service) ConvertTo(ctx context.Context, in string, w io.Writer) (Report, error) {
	return s.run(ctx, in, "-", func(teams []model.Team) error {
		return startlist.Write(ctx, w, teams, startlist.WithDelimiter(s.delimiter))
	})
}

func (s *Service) run(ctx context.Context, in, out string, write func([]model.Team) error) (Report, error) {
	started := time.Now()
	rep := Report{RunID: uuid.NewString(), Input: in, Output: out}
	log := s.logger.With(logger.String("run_id", rep.RunID))
	defer func() { s.metrics.RecordDuration(time.Since(started)) }()

	log.Info(ctx, "reading roster", logger.String("input", in))
	athletes, err := sheet.Read(ctx, in, sheet.WithColumns(s.columns), sheet.WithSheet(s.sheet))
	if err != nil {
		return rep, s.fail(ctx, log, metrics.StageRead, fmt.Errorf("read %s: %w", in, err))
	}
	rep.Athletes = len(athletes)
	s.metrics.RecordAthletesRead(len(athletes))
	log.Debug(ctx, "roster read", logger.Int("athletes", len(athletes)))

	teams, err := roster.New(roster.WithStartBib(s.startBib)).Build(ctx, athletes)
	if err != nil {
		return rep, s.fail(ctx, log, metrics.StageBuild, fmt.Errorf("build teams: %w", err))
	}

	if err := write(teams); err != nil {
		return rep, s.fail(ctx, log, metrics.StageWrite, fmt.Errorf("write %s: %w", out, err))
	}

	summarize(&rep, teams)
	rep.Duration = time.Since(started)
	s.metrics.RecordSuccess(rep.Teams, rep.LastBib, rep.ByCategory, rep.ByGender)
	log.Info(ctx, "start list written",
		logger.String("output", out),
		logger.Int("athletes", rep.Athletes),
		logger.Int("teams", rep.Teams),
		logger.Int("first_bib", rep.FirstBib),
		logger.Int("last_bib", rep.LastBib),
		logger.Duration("duration", rep.Duration),
	)
	return rep, nil
}

func (s *Service) fail(ctx context.Context, log logger.Logger, stage string, err error) error {
	s.metrics.RecordError(stage)
	log.Error(ctx, "conversion failed", logger.String("stage", stage), logger.Error(err))
	return err
}

func summarize(rep *Report, teams []model.Team) {
	rep.Teams = len(teams)
	rep.ByCategory = make(map[string]int)
	rep.ByGender = make(map[string]int)
	for i, t := range teams {
		if i == 0 {
			rep.FirstBib = t.Bib
		}
		rep.LastBib = t.Bib
		rep.ByCategory[t.TeamCategory]++
		rep.ByGender[t.TeamGender]++
	}
}
