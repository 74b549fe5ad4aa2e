package export_test

import (
	"bytes"
	"image/png"
	"testing"
	"time"

	"github.com/GoSim-25-26J-441/project-dashboard/internal/portfolio/domain"
	"github.com/GoSim-25-26J-441/project-dashboard/internal/portfolio/export"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"
	"golang.org/x/text/language"
)

func sampleCompany() domain.Company {
	series := make([]domain.ProgressPoint, domain.SeriesLength)
	for i, m := range domain.MonthNames() {
		series[i] = domain.ProgressPoint{Month: m, Primary: 40, Secondary: 60}
	}
	start := time.Date(2024, 1, 10, 0, 0, 0, 0, time.UTC)

	return domain.Company{
		ID:   2,
		Name: "Company 2",
		Projects: []domain.Project{
			{
				ID: 5, Name: "Migração", Progress: series,
				StartDate: start, EndDate: start.AddDate(0, 2, 0),
				Manager:     "Ayrton Senna",
				Description: "This project aims to innovate the industry.",
				Detail:      domain.ProjectDetail{Status: domain.StatusDone, CompletionPercentage: 50},
			},
			{
				ID: 6, Name: "Project 2", Progress: series,
				StartDate: start, EndDate: start,
				Manager: "Elon Musk",
				Detail:  domain.ProjectDetail{Status: domain.StatusLate, CompletionPercentage: 50},
			},
		},
	}
}

func TestWriteCompanyWorkbook(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, export.WriteCompanyWorkbook(&buf, sampleCompany(), language.BrazilianPortuguese))

	f, err := excelize.OpenReader(&buf)
	require.NoError(t, err)
	defer f.Close()

	assert.Equal(t, []string{export.SummarySheet, export.ProjectsSheet, export.ProgressSheet}, f.GetSheetList())

	name, err := f.GetCellValue(export.SummarySheet, "B1")
	require.NoError(t, err)
	assert.Equal(t, "Company 2", name)

	count, err := f.GetCellValue(export.SummarySheet, "B3")
	require.NoError(t, err)
	assert.Equal(t, "2", count)

	rows, err := f.GetRows(export.ProjectsSheet)
	require.NoError(t, err)
	require.Len(t, rows, 3)
	assert.Equal(t, "ID", rows[0][0])
	assert.Equal(t, []string{"5", "Migração", "Ayrton Senna", "Concluído", "2024-01-10", "2024-03-10", "50"}, rows[1][:7])
	assert.Equal(t, "Atrasado", rows[2][3])

	progress, err := f.GetRows(export.ProgressSheet)
	require.NoError(t, err)
	assert.Len(t, progress, 1+2*domain.SeriesLength)
	assert.Equal(t, []string{"5", "Migração", "January", "40", "60"}, progress[1])
}

func TestWriteCompanyWorkbook_NoProjects(t *testing.T) {
	var buf bytes.Buffer
	c := domain.Company{ID: 1, Name: "Company 1"}
	require.NoError(t, export.WriteCompanyWorkbook(&buf, c, language.English))

	f, err := excelize.OpenReader(&buf)
	require.NoError(t, err)
	defer f.Close()

	rows, err := f.GetRows(export.ProjectsSheet)
	require.NoError(t, err)
	assert.Len(t, rows, 1)
}

func TestWriteProjectReport(t *testing.T) {
	c := sampleCompany()

	var buf bytes.Buffer
	err := export.WriteProjectReport(&buf, export.ReportInput{
		Company:   c,
		Project:   c.Projects[0],
		ShareLink: export.ShareLink("http://localhost:3000/", c.ID),
		Locale:    language.BrazilianPortuguese,
	})
	require.NoError(t, err)

	assert.True(t, bytes.HasPrefix(buf.Bytes(), []byte("%PDF-")))
	assert.Greater(t, buf.Len(), 1000)
}

func TestWriteProjectReport_UnknownStatus(t *testing.T) {
	c := sampleCompany()
	p := c.Projects[1]
	p.Detail.Status = "paused"

	var buf bytes.Buffer
	require.NoError(t, export.WriteProjectReport(&buf, export.ReportInput{Company: c, Project: p, Locale: language.English}))
	assert.True(t, bytes.HasPrefix(buf.Bytes(), []byte("%PDF-")))
}

func TestQRCode(t *testing.T) {
	data, err := export.QRCode("http://localhost:3000/admin/project/2", 128)
	require.NoError(t, err)

	img, err := png.Decode(bytes.NewReader(data))
	require.NoError(t, err)
	assert.Equal(t, 128, img.Bounds().Dx())

	data, err = export.QRCode("x", 0)
	require.NoError(t, err)
	img, err = png.Decode(bytes.NewReader(data))
	require.NoError(t, err)
	assert.Equal(t, export.DefaultQRSize, img.Bounds().Dx())
}

func TestShareLink(t *testing.T) {
	assert.Equal(t, "http://localhost:3000/admin/project/7", export.ShareLink("http://localhost:3000/", 7))
	assert.Equal(t, "/admin/project/7", export.ShareLink("", 7))
}
