package report

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"bunkmeter-backend/internal/platform/apierr"
)

type Handler struct{ svc *Service }

func RegisterRoutes(r *gin.RouterGroup, svc *Service, admin ...gin.HandlerFunc) {
	h := &Handler{svc: svc}

	r.GET("/classes/:class_id/students/:roll/report", h.GetStudentReport)
	r.GET("/classes/:class_id/students/:roll/calendar", h.GetStudentCalendar)
	r.POST("/classes/:class_id/students/:roll/bunk-effect", h.PlanBunks)

	a := r.Group("/classes/:class_id", admin...)
	a.GET("/report", h.GetClassReport)
}

// GetStudentReport godoc
// @Summary  Per-subject attendance and bunk projection for one student
// @Tags     reports
// @Produce  json
// @Param    class_id path string true "class id"
// @Param    roll path int true "roll number"
// @Success  200 {object} StudentReport
// @Failure  404 {object} apierr.APIError
// @Router   /classes/{class_id}/students/{roll}/report [get]
func (h *Handler) GetStudentReport(c *gin.Context) {
	roll, ok := rollParam(c)
	if !ok {
		return
	}
	res, err := h.svc.StudentReport(c.Request.Context(), c.Param("class_id"), roll)
	if err != nil {
		c.JSON(apierr.ToHTTPStatus(err), apierr.BodyFrom(err))
		return
	}
	c.JSON(http.StatusOK, res)
}

// GET /classes/:class_id/report
func (h *Handler) GetClassReport(c *gin.Context) {
	res, err := h.svc.ClassReport(c.Request.Context(), c.Param("class_id"))
	if err != nil {
		c.JSON(apierr.ToHTTPStatus(err), apierr.BodyFrom(err))
		return
	}
	c.JSON(http.StatusOK, res)
}

// GET /classes/:class_id/students/:roll/calendar?from=&to=
func (h *Handler) GetStudentCalendar(c *gin.Context) {
	roll, ok := rollParam(c)
	if !ok {
		return
	}
	res, err := h.svc.StudentCalendar(c.Request.Context(), c.Param("class_id"), roll, c.Query("from"), c.Query("to"))
	if err != nil {
		c.JSON(apierr.ToHTTPStatus(err), apierr.BodyFrom(err))
		return
	}
	c.JSON(http.StatusOK, res)
}

// PlanBunks godoc
// @Summary  Project attendance after skipping the given future dates
// @Tags     reports
// @Accept   json
// @Produce  json
// @Param    class_id path string true "class id"
// @Param    roll path int true "roll number"
// @Param    body body BunkEffectRequest true "dates to skip"
// @Success  200 {object} BunkEffect
// @Failure  400 {object} apierr.APIError
// @Router   /classes/{class_id}/students/{roll}/bunk-effect [post]
func (h *Handler) PlanBunks(c *gin.Context) {
	roll, ok := rollParam(c)
	if !ok {
		return
	}
	var req BunkEffectRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, apierr.Body(apierr.CodeInvalidArgument, "invalid json or missing dates"))
		return
	}
	res, err := h.svc.BunkEffect(c.Request.Context(), c.Param("class_id"), roll, req.Dates)
	if err != nil {
		c.JSON(apierr.ToHTTPStatus(err), apierr.BodyFrom(err))
		return
	}
	c.JSON(http.StatusOK, res)
}

func rollParam(c *gin.Context) (int, bool) {
	roll, err := strconv.Atoi(c.Param("roll"))
	if err != nil {
		c.JSON(http.StatusBadRequest, apierr.Body(apierr.CodeInvalidArgument, "roll must be an integer"))
		return 0, false
	}
	return roll, true
}
