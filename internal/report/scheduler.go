package report

import (
	"errors"
	"fmt"

	"github.com/GoSim-25-26J-441/project-dashboard/internal/portfolio/domain"

	"github.com/robfig/cron/v3"
	"go.uber.org/zap"
)

var ErrAlreadyStarted = errors.New("report scheduler already started")

// SummarySource yields the current portfolio aggregate.
type SummarySource interface {
	Summary() domain.PortfolioSummary
}

type Scheduler struct {
	source SummarySource
	logger *zap.Logger
	cron   *cron.Cron
}

func NewScheduler(source SummarySource, logger *zap.Logger) *Scheduler {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Scheduler{source: source, logger: logger.Named("report")}
}

// Start registers the report job on a six-field cron spec and starts the
// runner. An empty spec leaves the scheduler disabled. Start fails with
// ErrAlreadyStarted until Stop is called.
func (s *Scheduler) Start(spec string) error {
	if s.cron != nil {
		return ErrAlreadyStarted
	}
	if spec == "" {
		s.logger.Info("portfolio report disabled")
		return nil
	}

	c := cron.New(cron.WithSeconds())
	if _, err := c.AddFunc(spec, s.Run); err != nil {
		return fmt.Errorf("schedule portfolio report %q: %w", spec, err)
	}

	s.cron = c
	c.Start()
	s.logger.Info("portfolio report scheduled", zap.String("schedule", spec))
	return nil
}

// Run logs one portfolio report.
func (s *Scheduler) Run() {
	sum := s.source.Summary()
	s.logger.Info("portfolio report",
		zap.Int("companies", sum.Companies),
		zap.Int("projects", sum.Projects),
		zap.Int("active", sum.ByStatus[domain.StatusActive]),
		zap.Int("late", sum.ByStatus[domain.StatusLate]),
		zap.Int("done", sum.ByStatus[domain.StatusDone]),
		zap.Int("average_completion", sum.AverageCompletion),
	)
}

// Stop halts the runner and waits for a running report to finish.
func (s *Scheduler) Stop() {
	if s.cron == nil {
		return
	}
	<-s.cron.Stop().Done()
	s.cron = nil
}
