package domain

import (
	"fmt"
	"time"
)

const (
	DefaultManager     = "Ayrton Senna"
	DefaultDescription = "This project aims to innovate the industry."

	maxStartOffsetDays = 365
	maxDurationDays    = 180
)

// Factory builds project records. It never fails: inputs are trusted and a
// missing series is generated from the injected random source.
type Factory struct {
	rng Rand
	now func() time.Time
}

func NewFactory(rng Rand, now func() time.Time) *Factory {
	if now == nil {
		now = time.Now
	}
	return &Factory{rng: rng, now: now}
}

// Build creates a user-submitted project. Status defaults to active.
func (f *Factory) Build(id int, in NewProjectInput) Project {
	var series []ProgressPoint
	if len(in.Progress) > 0 {
		series = append([]ProgressPoint(nil), in.Progress...)
	} else {
		series = GenerateSeries(f.rng)
	}

	status := in.Status
	if status == "" {
		status = StatusActive
	}

	return Project{
		ID:          id,
		Name:        in.Name,
		Progress:    series,
		StartDate:   in.StartDate,
		EndDate:     in.EndDate,
		Manager:     in.Manager,
		Description: in.Description,
		Detail: ProjectDetail{
			Status:               status,
			CompletionPercentage: CompletionPercentage(series),
		},
	}
}

// Random creates a seeded project. index is its zero-based position in the
// owning company and only affects the name.
func (f *Factory) Random(id, index int) Project {
	series := GenerateSeries(f.rng)

	start := Today(f.now()).AddDate(0, 0, -f.rng.IntN(maxStartOffsetDays))
	end := start.AddDate(0, 0, f.rng.IntN(maxDurationDays))

	return Project{
		ID:          id,
		Name:        fmt.Sprintf("Project %d", index+1),
		Progress:    series,
		StartDate:   start,
		EndDate:     end,
		Manager:     DefaultManager,
		Description: DefaultDescription,
		Detail: ProjectDetail{
			Status:               Statuses[f.rng.IntN(len(Statuses))],
			CompletionPercentage: CompletionPercentage(series),
		},
	}
}

// Today truncates t to its calendar date at UTC midnight.
func Today(t time.Time) time.Time {
	y, m, d := t.UTC().Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}
