package report_test

import (
	"sync/atomic"
	"testing"
	"time"

	"github.com/GoSim-25-26J-441/project-dashboard/internal/portfolio/domain"
	"github.com/GoSim-25-26J-441/project-dashboard/internal/report"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/goleak"
	"go.uber.org/zap"
	"go.uber.org/zap/zaptest/observer"
)

func TestMain(m *testing.M) {
	goleak.VerifyTestMain(m)
}

type fixedSource struct {
	calls atomic.Int32
}

func (f *fixedSource) Summary() domain.PortfolioSummary {
	f.calls.Add(1)
	return domain.PortfolioSummary{
		Companies: 2,
		Projects:  3,
		ByStatus: map[domain.Status]int{
			domain.StatusActive: 1,
			domain.StatusLate:   0,
			domain.StatusDone:   2,
		},
		AverageCompletion: 71,
	}
}

func TestRun_LogsSummary(t *testing.T) {
	core, logs := observer.New(zap.InfoLevel)
	s := report.NewScheduler(&fixedSource{}, zap.New(core))

	s.Run()

	entries := logs.FilterMessage("portfolio report").All()
	require.Len(t, entries, 1)
	fields := entries[0].ContextMap()
	assert.EqualValues(t, 2, fields["companies"])
	assert.EqualValues(t, 3, fields["projects"])
	assert.EqualValues(t, 2, fields["done"])
	assert.EqualValues(t, 71, fields["average_completion"])
}

func TestStart_EmptySpecDisables(t *testing.T) {
	core, logs := observer.New(zap.InfoLevel)
	s := report.NewScheduler(&fixedSource{}, zap.New(core))

	require.NoError(t, s.Start(""))
	s.Stop()
	assert.Equal(t, 1, logs.FilterMessage("portfolio report disabled").Len())
}

func TestStart_InvalidSpec(t *testing.T) {
	s := report.NewScheduler(&fixedSource{}, nil)
	assert.Error(t, s.Start("every tuesday"))
	s.Stop()
}

func TestStart_RunsOnSchedule(t *testing.T) {
	src := &fixedSource{}
	s := report.NewScheduler(src, nil)

	require.NoError(t, s.Start("* * * * * *"))
	assert.Eventually(t, func() bool { return src.calls.Load() > 0 }, 3*time.Second, 50*time.Millisecond)
	s.Stop()
}

func TestStart_Twice(t *testing.T) {
	src := &fixedSource{}
	s := report.NewScheduler(src, nil)

	require.NoError(t, s.Start("* * * * * *"))
	assert.ErrorIs(t, s.Start("*/2 * * * * *"), report.ErrAlreadyStarted)
	s.Stop()

	require.NoError(t, s.Start("* * * * * *"), "restart after stop")
	s.Stop()
}
