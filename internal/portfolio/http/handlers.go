package http

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/GoSim-25-26J-441/project-dashboard/internal/auth"
	"github.com/GoSim-25-26J-441/project-dashboard/internal/logging"
	"github.com/GoSim-25-26J-441/project-dashboard/internal/portfolio/chart"
	"github.com/GoSim-25-26J-441/project-dashboard/internal/portfolio/domain"
	"github.com/GoSim-25-26J-441/project-dashboard/internal/portfolio/locale"
	"github.com/GoSim-25-26J-441/project-dashboard/internal/portfolio/status"
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
	"golang.org/x/text/language"
)

func (h *Handler) listCompanies(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"ok": true, "companies": h.svc.CompanySummaries()})
}

func (h *Handler) getCompany(c *gin.Context) {
	id, ok := intParam(c, "id")
	if !ok {
		return
	}

	company, err := h.svc.GetCompany(id)
	if err != nil {
		h.writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{
		"ok":      true,
		"company": company,
		"summary": domain.SummarizeCompany(company),
	})
}

func (h *Handler) listProjects(c *gin.Context) {
	id, ok := intParam(c, "id")
	if !ok {
		return
	}

	projects, err := h.svc.ProjectsForCompany(id)
	if err != nil {
		h.writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"ok": true, "count": len(projects), "projects": projects})
}

func (h *Handler) getProject(c *gin.Context) {
	p, ok := h.lookupProject(c)
	if !ok {
		return
	}

	resp := gin.H{"ok": true, "project": p}
	if b, err := status.For(p.Detail.Status, requestLocale(c)); err == nil {
		resp["badge"] = b
	}
	c.JSON(http.StatusOK, resp)
}

func (h *Handler) createProject(c *gin.Context) {
	id, ok := intParam(c, "id")
	if !ok {
		return
	}

	var req createProjectReq
	if err := c.ShouldBindJSON(&req); err != nil {
		if fields, ok := translate(err); ok {
			c.JSON(http.StatusBadRequest, gin.H{"ok": false, "error": "validation failed", "fields": fields})
			return
		}
		c.JSON(http.StatusBadRequest, gin.H{"ok": false, "error": "invalid body"})
		return
	}

	in, fields := req.toInput()
	if fields != nil {
		c.JSON(http.StatusBadRequest, gin.H{"ok": false, "error": "validation failed", "fields": fields})
		return
	}

	ctx := logging.WithContext(c.Request.Context(),
		logging.FromContext(c.Request.Context(), h.logger).With(zap.String("user_id", auth.UserID(c))))

	p, toast, err := h.svc.AddProject(ctx, id, in)
	if err != nil {
		h.writeError(c, err)
		return
	}

	c.JSON(http.StatusCreated, gin.H{"ok": true, "project": p, "toast": toast})
}

func (h *Handler) projectChart(c *gin.Context) {
	p, ok := h.lookupProject(c)
	if !ok {
		return
	}
	c.JSON(http.StatusOK, gin.H{"ok": true, "chart": chart.ForProject(p, requestLocale(c))})
}

func (h *Handler) listStatuses(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"ok": true, "statuses": status.All(requestLocale(c))})
}

func (h *Handler) getStatus(c *gin.Context) {
	tag := requestLocale(c)
	b, err := status.For(domain.Status(c.Param("status")), tag)
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{"ok": false, "error": status.InvalidMessage(tag)})
		return
	}
	c.JSON(http.StatusOK, gin.H{"ok": true, "badge": b})
}

func (h *Handler) summary(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"ok": true, "summary": h.svc.Summary()})
}

func (h *Handler) notifications(c *gin.Context) {
	id, ok := intParam(c, "id")
	if !ok {
		return
	}

	items, err := h.svc.Notifications(c.Request.Context(), id)
	if err != nil {
		h.writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"ok": true, "notifications": items})
}

func (h *Handler) lookupProject(c *gin.Context) (domain.Project, bool) {
	companyID, ok := intParam(c, "id")
	if !ok {
		return domain.Project{}, false
	}
	projectID, ok := intParam(c, "project_id")
	if !ok {
		return domain.Project{}, false
	}

	p, err := h.svc.GetProject(companyID, projectID)
	if err != nil {
		h.writeError(c, err)
		return domain.Project{}, false
	}
	return p, true
}

func (h *Handler) writeError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, domain.ErrCompanyNotFound):
		c.JSON(http.StatusNotFound, gin.H{"ok": false, "error": "company not found"})
	case errors.Is(err, domain.ErrProjectNotFound):
		c.JSON(http.StatusNotFound, gin.H{"ok": false, "error": "project not found"})
	case errors.Is(err, domain.ErrInvalidSeries):
		c.JSON(http.StatusBadRequest, gin.H{"ok": false, "error": err.Error()})
	default:
		logging.FromContext(c.Request.Context(), h.logger).Error("request failed", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"ok": false, "error": "internal error"})
	}
}

func intParam(c *gin.Context, name string) (int, bool) {
	v, err := strconv.Atoi(c.Param(name))
	if err != nil || v <= 0 {
		c.JSON(http.StatusBadRequest, gin.H{"ok": false, "error": "invalid " + name})
		return 0, false
	}
	return v, true
}

func requestLocale(c *gin.Context) language.Tag {
	return locale.Match(c.GetHeader("Accept-Language"))
}
