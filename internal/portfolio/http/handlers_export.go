package http

import (
	"bytes"
	"fmt"
	"net/http"

	"github.com/GoSim-25-26J-441/project-dashboard/internal/logging"
	"github.com/GoSim-25-26J-441/project-dashboard/internal/portfolio/export"
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

const xlsxContentType = "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"

func (h *Handler) exportWorkbook(c *gin.Context) {
	id, ok := intParam(c, "id")
	if !ok {
		return
	}
	company, err := h.svc.GetCompany(id)
	if err != nil {
		h.writeError(c, err)
		return
	}

	var buf bytes.Buffer
	if err := export.WriteCompanyWorkbook(&buf, company, requestLocale(c)); err != nil {
		h.exportFailed(c, "workbook", err)
		return
	}

	c.Header("Content-Disposition", fmt.Sprintf(`attachment; filename="company-%d.xlsx"`, id))
	c.Data(http.StatusOK, xlsxContentType, buf.Bytes())
}

func (h *Handler) projectReport(c *gin.Context) {
	p, ok := h.lookupProject(c)
	if !ok {
		return
	}
	companyID, _ := intParam(c, "id")
	company, err := h.svc.GetCompany(companyID)
	if err != nil {
		h.writeError(c, err)
		return
	}

	var buf bytes.Buffer
	err = export.WriteProjectReport(&buf, export.ReportInput{
		Company:   company,
		Project:   p,
		ShareLink: export.ShareLink(h.publicURL, companyID),
		Locale:    requestLocale(c),
	})
	if err != nil {
		h.exportFailed(c, "report", err)
		return
	}

	c.Header("Content-Disposition", fmt.Sprintf(`inline; filename="project-%d.pdf"`, p.ID))
	c.Data(http.StatusOK, "application/pdf", buf.Bytes())
}

func (h *Handler) projectQR(c *gin.Context) {
	p, ok := h.lookupProject(c)
	if !ok {
		return
	}
	companyID, _ := intParam(c, "id")

	png, err := export.QRCode(export.ShareLink(h.publicURL, companyID), export.DefaultQRSize)
	if err != nil {
		h.exportFailed(c, "qr code", err)
		return
	}

	c.Header("Content-Disposition", fmt.Sprintf(`inline; filename="project-%d-qr.png"`, p.ID))
	c.Data(http.StatusOK, "image/png", png)
}

func (h *Handler) exportFailed(c *gin.Context, what string, err error) {
	logging.FromContext(c.Request.Context(), h.logger).Error("export failed", zap.String("kind", what), zap.Error(err))
	c.JSON(http.StatusInternalServerError, gin.H{"ok": false, "error": "failed to generate " + what})
}
