package attendance

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"bunkmeter-backend/internal/platform/apierr"
)

type Handler struct{ svc *Service }

func RegisterRoutes(r *gin.RouterGroup, svc *Service, admin ...gin.HandlerFunc) {
	h := &Handler{svc: svc}

	r.GET("/classes/:class_id/attendance", h.ListDates)
	r.GET("/classes/:class_id/attendance/:date", h.GetSubmission)

	a := r.Group("/classes/:class_id/attendance", admin...)
	a.PUT("/:date", h.MarkAttendance)
}

// MarkAttendance godoc
// @Summary  Record (or replace) a day's attendance
// @Tags     attendance
// @Accept   json
// @Produce  json
// @Param    class_id path string true "class id"
// @Param    date path string true "YYYY-MM-DD or today"
// @Param    body body MarkAttendanceRequest true "periods with absentees"
// @Success  200 {object} SubmissionResponse
// @Success  201 {object} SubmissionResponse
// @Security BearerAuth
// @Router   /classes/{class_id}/attendance/{date} [put]
func (h *Handler) MarkAttendance(c *gin.Context) {
	var req MarkAttendanceRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, apierr.Body(apierr.CodeInvalidArgument, "invalid json or missing periods"))
		return
	}
	res, created, err := h.svc.Mark(c.Request.Context(), c.Param("class_id"), c.Param("date"), req)
	if err != nil {
		c.JSON(apierr.ToHTTPStatus(err), apierr.BodyFrom(err))
		return
	}
	if created {
		c.JSON(http.StatusCreated, res)
		return
	}
	c.JSON(http.StatusOK, res)
}

// GET /classes/:class_id/attendance/:date
func (h *Handler) GetSubmission(c *gin.Context) {
	res, err := h.svc.Get(c.Request.Context(), c.Param("class_id"), c.Param("date"))
	if err != nil {
		c.JSON(apierr.ToHTTPStatus(err), apierr.BodyFrom(err))
		return
	}
	c.JSON(http.StatusOK, res)
}

// GET /classes/:class_id/attendance?from=&to=
func (h *Handler) ListDates(c *gin.Context) {
	q := DatesQuery{From: c.Query("from"), To: c.Query("to")}
	res, err := h.svc.ListDates(c.Request.Context(), c.Param("class_id"), q)
	if err != nil {
		c.JSON(apierr.ToHTTPStatus(err), apierr.BodyFrom(err))
		return
	}
	c.JSON(http.StatusOK, res)
}
