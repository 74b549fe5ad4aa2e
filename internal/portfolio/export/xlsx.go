package export

import (
	"fmt"
	"io"

	"github.com/GoSim-25-26J-441/project-dashboard/internal/portfolio/domain"
	"github.com/GoSim-25-26J-441/project-dashboard/internal/portfolio/status"
	"github.com/xuri/excelize/v2"
	"golang.org/x/text/language"
)

const (
	SummarySheet  = "Summary"
	ProjectsSheet = "Projects"
	ProgressSheet = "Progress"

	dateLayout = "2006-01-02"
)

var projectHeaders = []string{"ID", "Name", "Manager", "Status", "Start", "End", "Completion (%)", "Description"}

var progressHeaders = []string{"Project ID", "Project", "Month", "Primary", "Secondary"}

// WriteCompanyWorkbook writes a three-sheet workbook describing the company.
func WriteCompanyWorkbook(w io.Writer, c domain.Company, tag language.Tag) error {
	f, err := CompanyWorkbook(c, tag)
	if err != nil {
		return err
	}
	defer f.Close()

	if err := f.Write(w); err != nil {
		return fmt.Errorf("write workbook: %w", err)
	}
	return nil
}

// CompanyWorkbook builds the workbook in memory. The caller closes it.
func CompanyWorkbook(c domain.Company, tag language.Tag) (*excelize.File, error) {
	f := excelize.NewFile()

	index, err := f.NewSheet(SummarySheet)
	if err != nil {
		f.Close()
		return nil, fmt.Errorf("create summary sheet: %w", err)
	}
	f.SetActiveSheet(index)
	if err := f.DeleteSheet("Sheet1"); err != nil {
		f.Close()
		return nil, fmt.Errorf("drop default sheet: %w", err)
	}

	if err := writeSummary(f, c); err != nil {
		f.Close()
		return nil, err
	}
	if err := writeProjects(f, c.Projects, tag); err != nil {
		f.Close()
		return nil, err
	}
	if err := writeProgress(f, c.Projects); err != nil {
		f.Close()
		return nil, err
	}
	return f, nil
}

func writeSummary(f *excelize.File, c domain.Company) error {
	s := domain.SummarizeCompany(c)
	rows := [][]any{
		{"Company", s.Name},
		{"Company ID", s.ID},
		{"Projects", s.ProjectCount},
		{"Average completion (%)", s.AverageCompletion},
	}
	for i, row := range rows {
		if err := setRow(f, SummarySheet, i+1, row); err != nil {
			return err
		}
	}
	return nil
}

func writeProjects(f *excelize.File, projects []domain.Project, tag language.Tag) error {
	if _, err := f.NewSheet(ProjectsSheet); err != nil {
		return fmt.Errorf("create projects sheet: %w", err)
	}
	if err := setRow(f, ProjectsSheet, 1, toRow(projectHeaders)); err != nil {
		return err
	}

	for i, p := range projects {
		label := string(p.Detail.Status)
		if b, err := status.For(p.Detail.Status, tag); err == nil {
			label = b.Label
		}
		row := []any{
			p.ID,
			p.Name,
			p.Manager,
			label,
			p.StartDate.Format(dateLayout),
			p.EndDate.Format(dateLayout),
			p.Detail.CompletionPercentage,
			p.Description,
		}
		if err := setRow(f, ProjectsSheet, i+2, row); err != nil {
			return err
		}
	}
	return nil
}

func writeProgress(f *excelize.File, projects []domain.Project) error {
	if _, err := f.NewSheet(ProgressSheet); err != nil {
		return fmt.Errorf("create progress sheet: %w", err)
	}
	if err := setRow(f, ProgressSheet, 1, toRow(progressHeaders)); err != nil {
		return err
	}

	row := 2
	for _, p := range projects {
		for _, pt := range p.Progress {
			if err := setRow(f, ProgressSheet, row, []any{p.ID, p.Name, pt.Month, pt.Primary, pt.Secondary}); err != nil {
				return err
			}
			row++
		}
	}
	return nil
}

func setRow(f *excelize.File, sheet string, row int, values []any) error {
	cell, err := excelize.CoordinatesToCellName(1, row)
	if err != nil {
		return err
	}
	if err := f.SetSheetRow(sheet, cell, &values); err != nil {
		return fmt.Errorf("write %s row %d: %w", sheet, row, err)
	}
	return nil
}

func toRow(headers []string) []any {
	out := make([]any, len(headers))
	for i, h := range headers {
		out[i] = h
	}
	return out
}
