package http

import (
	"slices"

	"github.com/gin-gonic/gin"
)

// Register attaches dashboard routes to the given router group. guards run
// before project creation, typically session then admin role checks.
func (h *Handler) Register(rg *gin.RouterGroup, guards ...gin.HandlerFunc) {
	rg.GET("/summary", h.summary)
	rg.GET("/statuses", h.listStatuses)
	rg.GET("/statuses/:status", h.getStatus)

	companies := rg.Group("/companies")
	companies.GET("", h.listCompanies)
	companies.GET("/:id", h.getCompany)
	companies.GET("/:id/notifications", h.notifications)
	companies.GET("/:id/export.xlsx", h.exportWorkbook)

	companies.GET("/:id/projects", h.listProjects)
	companies.POST("/:id/projects", slices.Concat(guards, []gin.HandlerFunc{h.createProject})...)
	companies.GET("/:id/projects/:project_id", h.getProject)
	companies.GET("/:id/projects/:project_id/chart", h.projectChart)
	companies.GET("/:id/projects/:project_id/report.pdf", h.projectReport)
	companies.GET("/:id/projects/:project_id/qr.png", h.projectQR)
}
