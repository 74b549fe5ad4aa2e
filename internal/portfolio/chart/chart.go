package chart

import (
	"github.com/GoSim-25-26J-441/project-dashboard/internal/portfolio/domain"
	"github.com/GoSim-25-26J-441/project-dashboard/internal/portfolio/locale"
	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

const (
	SeriesKey   = "desktop"
	SeriesColor = "hsl(var(--chart-1))"
	Layout      = "vertical"
	tickLength  = 3
)

// Config describes the single plotted series.
type Config struct {
	Key   string `json:"key"`
	Label string `json:"label"`
	Color string `json:"color"`
}

// Bar is one month of the project card's bar chart. Value is the primary
// metric, Secondary is only shown in the tooltip.
type Bar struct {
	Month     string `json:"month"`
	Tick      string `json:"tick"`
	Value     int    `json:"desktop"`
	Secondary int    `json:"mobile"`
}

type Chart struct {
	ProjectID  int    `json:"project_id"`
	Title      string `json:"title"`
	Layout     string `json:"layout"`
	Config     Config `json:"config"`
	Bars       []Bar  `json:"bars"`
	Completion int    `json:"completion_percentage"`
}

// ForProject turns a project's progress series into the card chart.
func ForProject(p domain.Project, tag language.Tag) Chart {
	caser := cases.Title(language.Und)

	bars := make([]Bar, 0, len(p.Progress))
	for _, pt := range p.Progress {
		bars = append(bars, Bar{
			Month:     pt.Month,
			Tick:      caser.String(Tick(pt.Month)),
			Value:     pt.Primary,
			Secondary: pt.Secondary,
		})
	}

	return Chart{
		ProjectID:  p.ID,
		Title:      p.Name,
		Layout:     Layout,
		Config:     Config{Key: SeriesKey, Label: Label(tag), Color: SeriesColor},
		Bars:       bars,
		Completion: p.Detail.CompletionPercentage,
	}
}

// Tick shortens a month label to its first three letters.
func Tick(month string) string {
	r := []rune(month)
	if len(r) > tickLength {
		r = r[:tickLength]
	}
	return string(r)
}

// Label is the legend text of the progress series.
func Label(tag language.Tag) string {
	if locale.IsEnglish(tag) {
		return "Monthly progress (%)"
	}
	return "Progresso do mês (%)"
}
