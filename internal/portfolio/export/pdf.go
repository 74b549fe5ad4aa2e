package export

import (
	"bytes"
	"fmt"
	"io"

	"github.com/GoSim-25-26J-441/project-dashboard/internal/portfolio/chart"
	"github.com/GoSim-25-26J-441/project-dashboard/internal/portfolio/domain"
	"github.com/GoSim-25-26J-441/project-dashboard/internal/portfolio/status"
	"github.com/jung-kurt/gofpdf"
	"golang.org/x/text/language"
)

// ReportInput is everything printed on a project report.
type ReportInput struct {
	Company   domain.Company
	Project   domain.Project
	ShareLink string
	Locale    language.Tag
}

// WriteProjectReport renders a one-page A4 report with the project card, its
// monthly progress table and a QR code pointing at ShareLink.
func WriteProjectReport(w io.Writer, in ReportInput) error {
	p := in.Project

	pdf := gofpdf.New("P", "mm", "A4", "")
	tr := pdf.UnicodeTranslatorFromDescriptor("")
	pdf.SetTitle(tr(p.Name), false)
	pdf.AddPage()
	pdf.SetMargins(10, 10, 10)

	// --- Header ---
	pdf.SetFont("Arial", "B", 18)
	pdf.Cell(150, 10, tr(p.Name))
	pdf.Ln(10)
	pdf.SetFont("Arial", "", 11)
	pdf.Cell(150, 6, tr(in.Company.Name))
	pdf.Ln(10)

	// --- Details ---
	var label string
	if b, err := status.For(p.Detail.Status, in.Locale); err == nil {
		label = b.Label
	} else {
		label = status.InvalidMessage(in.Locale)
	}

	details := [][2]string{
		{"Manager", p.Manager},
		{"Status", label},
		{"Start", p.StartDate.Format(dateLayout)},
		{"End", p.EndDate.Format(dateLayout)},
		{"Completion", fmt.Sprintf("%d%%", p.Detail.CompletionPercentage)},
	}
	for _, d := range details {
		pdf.SetFont("Arial", "B", 10)
		pdf.Cell(35, 6, tr(d[0]))
		pdf.SetFont("Arial", "", 10)
		pdf.Cell(100, 6, tr(d[1]))
		pdf.Ln(6)
	}
	pdf.Ln(2)
	pdf.MultiCell(130, 5, tr(p.Description), "", "", false)
	pdf.Ln(6)

	// --- Progress table ---
	pdf.SetFont("Arial", "B", 11)
	pdf.Cell(150, 8, tr(chart.Label(in.Locale)))
	pdf.Ln(8)

	pdf.SetFillColor(240, 240, 240)
	pdf.CellFormat(50, 7, "Month", "1", 0, "L", true, 0, "")
	pdf.CellFormat(35, 7, "Primary", "1", 0, "C", true, 0, "")
	pdf.CellFormat(35, 7, "Secondary", "1", 1, "C", true, 0, "")

	pdf.SetFont("Arial", "", 10)
	for _, pt := range p.Progress {
		pdf.CellFormat(50, 7, tr(pt.Month), "1", 0, "L", false, 0, "")
		pdf.CellFormat(35, 7, fmt.Sprintf("%d", pt.Primary), "1", 0, "C", false, 0, "")
		pdf.CellFormat(35, 7, fmt.Sprintf("%d", pt.Secondary), "1", 1, "C", false, 0, "")
	}

	// --- QR code ---
	if in.ShareLink != "" {
		png, err := QRCode(in.ShareLink, DefaultQRSize)
		if err != nil {
			return err
		}
		opts := gofpdf.ImageOptions{ImageType: "PNG", ReadDpi: false}
		pdf.RegisterImageOptionsReader("share-qr", opts, bytes.NewReader(png))
		pdf.ImageOptions("share-qr", 160, 12, 38, 38, false, opts, 0, in.ShareLink)
	}

	if err := pdf.Output(w); err != nil {
		return fmt.Errorf("render project report: %w", err)
	}
	return nil
}
