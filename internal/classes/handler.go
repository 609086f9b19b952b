package classes

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"bunkmeter-backend/internal/platform/apierr"
	"bunkmeter-backend/internal/timetable"
)

type Handler struct{ svc *Service }

// RegisterRoutes mounts the class routes; admin guards the mutating ones.
func RegisterRoutes(r *gin.RouterGroup, svc *Service, admin ...gin.HandlerFunc) {
	h := &Handler{svc: svc}

	r.POST("/classes", h.CreateClass)
	r.GET("/classes/lookup", h.LookupClass)
	r.POST("/classes/login", h.Login)
	r.GET("/classes/:class_id", h.GetClass)
	r.GET("/classes/:class_id/subjects", h.ListSubjects)
	r.GET("/classes/:class_id/timetable", h.GetTimetable)
	r.GET("/classes/:class_id/special-dates", h.GetSpecialDates)

	a := r.Group("/classes/:class_id", admin...)
	a.POST("/subjects", h.AddSubject)
	a.PUT("/subjects/:subject_id", h.RenameSubject)
	a.PUT("/timetable", h.UpdateTimetable)
	a.POST("/timetable/:weekday/periods", h.AddPeriod)
	a.DELETE("/timetable/:weekday/periods/:period", h.RemovePeriod)
	a.PUT("/special-dates", h.UpdateSpecialDates)
}

// CreateClass godoc
// @Summary  Create a class with its subjects and a blank timetable
// @Tags     classes
// @Accept   json
// @Produce  json
// @Param    body body CreateClassRequest true "class"
// @Success  201 {object} CreateClassResponse
// @Router   /classes [post]
func (h *Handler) CreateClass(c *gin.Context) {
	var req CreateClassRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, apierr.Body(apierr.CodeInvalidArgument, "invalid json or missing required fields"))
		return
	}
	res, err := h.svc.CreateClass(c.Request.Context(), req)
	if err != nil {
		c.JSON(apierr.ToHTTPStatus(err), apierr.BodyFrom(err))
		return
	}
	c.Header("Location", "/classes/"+res.ClassID)
	c.JSON(http.StatusCreated, res)
}

// GET /classes/lookup?name=
func (h *Handler) LookupClass(c *gin.Context) {
	res, err := h.svc.LookupByName(c.Request.Context(), c.Query("name"))
	if err != nil {
		c.JSON(apierr.ToHTTPStatus(err), apierr.BodyFrom(err))
		return
	}
	c.JSON(http.StatusOK, res)
}

// POST /classes/login
func (h *Handler) Login(c *gin.Context) {
	var req LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, apierr.Body(apierr.CodeInvalidArgument, "invalid json"))
		return
	}
	res, err := h.svc.Login(c.Request.Context(), req)
	if err != nil {
		c.JSON(apierr.ToHTTPStatus(err), apierr.BodyFrom(err))
		return
	}
	c.JSON(http.StatusOK, res)
}

func (h *Handler) GetClass(c *gin.Context) {
	res, err := h.svc.GetClass(c.Request.Context(), c.Param("class_id"))
	if err != nil {
		c.JSON(apierr.ToHTTPStatus(err), apierr.BodyFrom(err))
		return
	}
	c.JSON(http.StatusOK, res)
}

func (h *Handler) ListSubjects(c *gin.Context) {
	subjects, err := h.svc.ListSubjects(c.Request.Context(), c.Param("class_id"))
	if err != nil {
		c.JSON(apierr.ToHTTPStatus(err), apierr.BodyFrom(err))
		return
	}
	out := make([]SubjectResponse, 0, len(subjects))
	for _, s := range subjects {
		out = append(out, SubjectResponse(s))
	}
	c.JSON(http.StatusOK, gin.H{"items": out})
}

func (h *Handler) AddSubject(c *gin.Context) {
	var req CreateSubjectRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, apierr.Body(apierr.CodeInvalidArgument, "invalid json"))
		return
	}
	res, err := h.svc.AddSubject(c.Request.Context(), c.Param("class_id"), req.Name)
	if err != nil {
		c.JSON(apierr.ToHTTPStatus(err), apierr.BodyFrom(err))
		return
	}
	c.JSON(http.StatusCreated, gin.H{"subject": res})
}

func (h *Handler) RenameSubject(c *gin.Context) {
	var req RenameSubjectRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, apierr.Body(apierr.CodeInvalidArgument, "invalid json"))
		return
	}
	res, err := h.svc.RenameSubject(c.Request.Context(), c.Param("class_id"), c.Param("subject_id"), req.Name)
	if err != nil {
		c.JSON(apierr.ToHTTPStatus(err), apierr.BodyFrom(err))
		return
	}
	c.JSON(http.StatusOK, gin.H{"subject": res})
}

func (h *Handler) GetTimetable(c *gin.Context) {
	tmpl, err := h.svc.GetTimetable(c.Request.Context(), c.Param("class_id"))
	if err != nil {
		c.JSON(apierr.ToHTTPStatus(err), apierr.BodyFrom(err))
		return
	}
	c.JSON(http.StatusOK, gin.H{"timetable": tmpl})
}

// UpdateTimetable godoc
// @Summary  Replace the weekly timetable
// @Tags     classes
// @Accept   json
// @Produce  json
// @Param    class_id path string true "class id"
// @Param    body body UpdateTimetableRequest true "full weekly template"
// @Security BearerAuth
// @Router   /classes/{class_id}/timetable [put]
func (h *Handler) UpdateTimetable(c *gin.Context) {
	var req UpdateTimetableRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, apierr.Body(apierr.CodeInvalidArgument, "invalid timetable: "+err.Error()))
		return
	}
	tmpl, err := h.svc.UpdateTimetable(c.Request.Context(), c.Param("class_id"), *req.Timetable)
	if err != nil {
		c.JSON(apierr.ToHTTPStatus(err), apierr.BodyFrom(err))
		return
	}
	c.JSON(http.StatusOK, gin.H{"timetable": tmpl})
}

func (h *Handler) AddPeriod(c *gin.Context) {
	day, err := timetable.ParseWeekday(c.Param("weekday"))
	if err != nil {
		c.JSON(apierr.ToHTTPStatus(err), apierr.BodyFrom(err))
		return
	}
	var req AddPeriodRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, apierr.Body(apierr.CodeInvalidArgument, "invalid json"))
		return
	}
	slot, err := h.svc.AddPeriod(c.Request.Context(), c.Param("class_id"), day, req.SubjectID)
	if err != nil {
		c.JSON(apierr.ToHTTPStatus(err), apierr.BodyFrom(err))
		return
	}
	c.JSON(http.StatusCreated, slot)
}

func (h *Handler) RemovePeriod(c *gin.Context) {
	day, err := timetable.ParseWeekday(c.Param("weekday"))
	if err != nil {
		c.JSON(apierr.ToHTTPStatus(err), apierr.BodyFrom(err))
		return
	}
	period, err := strconv.Atoi(c.Param("period"))
	if err != nil {
		c.JSON(http.StatusBadRequest, apierr.Body(apierr.CodeInvalidArgument, "period must be a number"))
		return
	}
	if err := h.svc.RemovePeriod(c.Request.Context(), c.Param("class_id"), day, period); err != nil {
		c.JSON(apierr.ToHTTPStatus(err), apierr.BodyFrom(err))
		return
	}
	c.Status(http.StatusNoContent)
}

func (h *Handler) GetSpecialDates(c *gin.Context) {
	res, err := h.svc.GetSpecialDates(c.Request.Context(), c.Param("class_id"))
	if err != nil {
		c.JSON(apierr.ToHTTPStatus(err), apierr.BodyFrom(err))
		return
	}
	c.JSON(http.StatusOK, res)
}

// UpdateSpecialDates godoc
// @Summary  Replace the exam and holiday dates of a class
// @Tags     classes
// @Accept   json
// @Produce  json
// @Param    class_id path string true "class id"
// @Param    body body SpecialDatesRequest true "exam and holiday dates"
// @Success  200 {object} SpecialDates
// @Security BearerAuth
// @Router   /classes/{class_id}/special-dates [put]
func (h *Handler) UpdateSpecialDates(c *gin.Context) {
	var req SpecialDatesRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, apierr.Body(apierr.CodeInvalidArgument, "invalid json"))
		return
	}
	res, err := h.svc.UpdateSpecialDates(c.Request.Context(), c.Param("class_id"), req)
	if err != nil {
		c.JSON(apierr.ToHTTPStatus(err), apierr.BodyFrom(err))
		return
	}
	c.JSON(http.StatusOK, res)
}
