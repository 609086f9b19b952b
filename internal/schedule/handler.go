package schedule

import (
	"errors"
	"io"
	"net/http"
	"strconv"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"

	"bunkmeter-backend/internal/platform/apierr"
	"bunkmeter-backend/internal/platform/auth"
	"bunkmeter-backend/internal/timetable"
)

type Handler struct {
	resolver *Resolver
	sessions *Registry
}

// RegisterRoutes mounts the public schedule lookup and the session routes.
// admin guards every session route.
func RegisterRoutes(r *gin.RouterGroup, resolver *Resolver, sessions *Registry, admin ...gin.HandlerFunc) {
	registerValidators()
	h := &Handler{resolver: resolver, sessions: sessions}

	r.GET("/classes/:class_id/schedule", h.ResolveSchedule)

	s := r.Group("/sessions", admin...)
	s.POST("", h.OpenSession)
	s.GET("/:session_id", h.GetSession)
	s.DELETE("/:session_id", h.CloseSession)
	s.PUT("/:session_id/mode", h.SetMode)
	s.POST("/:session_id/periods", h.AddPeriod)
	s.PUT("/:session_id/periods/:period", h.SetSubject)
	s.DELETE("/:session_id/periods/:period", h.RemovePeriod)
	s.POST("/:session_id/periods/:period/absent/:roll", h.ToggleAbsent)
	s.POST("/:session_id/submit", h.Submit)
	s.POST("/:session_id/reset", h.Reset)
}

func registerValidators() {
	if v, ok := binding.Validator.Engine().(*validator.Validate); ok {
		_ = v.RegisterValidation("weekday", func(fl validator.FieldLevel) bool {
			_, err := timetable.ParseWeekday(fl.Field().String())
			return err == nil
		})
	}
}

// ResolveSchedule godoc
// @Summary  Effective periods for a date
// @Tags     schedule
// @Produce  json
// @Param    class_id path string true "class id"
// @Param    date query string false "YYYY-MM-DD or today (default)"
// @Param    borrow query string false "weekday whose template to use"
// @Success  200 {object} EffectiveSchedule
// @Router   /classes/{class_id}/schedule [get]
func (h *Handler) ResolveSchedule(c *gin.Context) {
	date := c.DefaultQuery("date", "today")
	mode := Default()
	if b := strings.TrimSpace(c.Query("borrow")); b != "" {
		d, err := timetable.ParseWeekday(b)
		if err != nil {
			writeErr(c, err)
			return
		}
		mode = Borrow(d)
	}
	res, err := h.resolver.Resolve(c.Request.Context(), c.Param("class_id"), date, mode)
	if err != nil {
		writeErr(c, err)
		return
	}
	c.JSON(http.StatusOK, res)
}

// OpenSession godoc
// @Summary  Start an attendance session
// @Tags     sessions
// @Accept   json
// @Produce  json
// @Param    body body OpenSessionRequest true "class and date"
// @Success  201 {object} SessionView
// @Security BearerAuth
// @Router   /sessions [post]
func (h *Handler) OpenSession(c *gin.Context) {
	var req OpenSessionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, apierr.Body(apierr.CodeInvalidArgument, "class_id and date are required"))
		return
	}
	if req.ClassID != auth.ClassID(c) {
		c.JSON(http.StatusForbidden, apierr.Body(apierr.CodeForbidden, "token is not valid for this class"))
		return
	}
	res, err := h.sessions.Open(c.Request.Context(), req.ClassID, req.Date)
	if err != nil {
		writeErr(c, err)
		return
	}
	c.JSON(http.StatusCreated, res)
}

// GET /sessions/:session_id
func (h *Handler) GetSession(c *gin.Context) {
	res, err := h.sessions.Get(c.Request.Context(), c.Param("session_id"), auth.ClassID(c))
	respond(c, res, err)
}

// DELETE /sessions/:session_id
func (h *Handler) CloseSession(c *gin.Context) {
	if err := h.sessions.Close(c.Param("session_id"), auth.ClassID(c)); err != nil {
		writeErr(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

// SetMode godoc
// @Summary  Switch between default, borrowed and custom periods
// @Tags     sessions
// @Accept   json
// @Produce  json
// @Param    session_id path string true "session id"
// @Param    body body ModeRequest true "mode"
// @Success  200 {object} SessionView
// @Security BearerAuth
// @Router   /sessions/{session_id}/mode [put]
func (h *Handler) SetMode(c *gin.Context) {
	var req ModeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, apierr.Body(apierr.CodeInvalidArgument, "mode must be default, borrowed (with weekday) or custom"))
		return
	}
	ctx, id, classID := c.Request.Context(), c.Param("session_id"), auth.ClassID(c)

	var (
		res SessionView
		err error
	)
	switch req.Mode {
	case "borrowed":
		d, perr := timetable.ParseWeekday(req.Weekday)
		if perr != nil {
			writeErr(c, apierr.ErrInvalid("weekday is required when borrowing"))
			return
		}
		res, err = h.sessions.Borrow(ctx, id, classID, d)
	case "custom":
		res, err = h.sessions.Customize(ctx, id, classID)
	default:
		res, err = h.sessions.UseDefault(ctx, id, classID)
	}
	respond(c, res, err)
}

// POST /sessions/:session_id/periods
func (h *Handler) AddPeriod(c *gin.Context) {
	// The body is optional; chunked requests report no length.
	var req AddPeriodRequest
	if c.Request.Body != nil && c.Request.Body != http.NoBody {
		if err := c.ShouldBindJSON(&req); err != nil && !errors.Is(err, io.EOF) {
			c.JSON(http.StatusBadRequest, apierr.Body(apierr.CodeInvalidArgument, "invalid json"))
			return
		}
	}
	res, err := h.sessions.AddPeriod(c.Request.Context(), c.Param("session_id"), auth.ClassID(c), req.SubjectID)
	if err != nil {
		writeErr(c, err)
		return
	}
	c.JSON(http.StatusCreated, res)
}

// PUT /sessions/:session_id/periods/:period
func (h *Handler) SetSubject(c *gin.Context) {
	period, ok := intParam(c, "period")
	if !ok {
		return
	}
	var req SetSubjectRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, apierr.Body(apierr.CodeInvalidArgument, "subject_id is required"))
		return
	}
	res, err := h.sessions.SetSubject(c.Request.Context(), c.Param("session_id"), auth.ClassID(c), period, req.SubjectID)
	respond(c, res, err)
}

// DELETE /sessions/:session_id/periods/:period
func (h *Handler) RemovePeriod(c *gin.Context) {
	period, ok := intParam(c, "period")
	if !ok {
		return
	}
	res, err := h.sessions.RemovePeriod(c.Request.Context(), c.Param("session_id"), auth.ClassID(c), period)
	respond(c, res, err)
}

// POST /sessions/:session_id/periods/:period/absent/:roll
func (h *Handler) ToggleAbsent(c *gin.Context) {
	period, ok := intParam(c, "period")
	if !ok {
		return
	}
	roll, ok := intParam(c, "roll")
	if !ok {
		return
	}
	res, err := h.sessions.ToggleAbsent(c.Request.Context(), c.Param("session_id"), auth.ClassID(c), period, roll)
	respond(c, res, err)
}

// Submit godoc
// @Summary  Record the session's attendance
// @Tags     sessions
// @Produce  json
// @Param    session_id path string true "session id"
// @Success  200 {object} SubmitResponse
// @Success  201 {object} SubmitResponse
// @Security BearerAuth
// @Router   /sessions/{session_id}/submit [post]
func (h *Handler) Submit(c *gin.Context) {
	res, created, err := h.sessions.Submit(c.Request.Context(), c.Param("session_id"), auth.ClassID(c))
	if err != nil {
		writeErr(c, err)
		return
	}
	status := http.StatusOK
	if created {
		status = http.StatusCreated
	}
	c.JSON(status, SubmitResponse{Session: res, Created: created})
}

// POST /sessions/:session_id/reset
func (h *Handler) Reset(c *gin.Context) {
	res, err := h.sessions.Reset(c.Request.Context(), c.Param("session_id"), auth.ClassID(c))
	respond(c, res, err)
}

func respond(c *gin.Context, res SessionView, err error) {
	if err != nil {
		writeErr(c, err)
		return
	}
	c.JSON(http.StatusOK, res)
}

func writeErr(c *gin.Context, err error) {
	c.JSON(apierr.ToHTTPStatus(err), apierr.BodyFrom(err))
}

func intParam(c *gin.Context, name string) (int, bool) {
	n, err := strconv.Atoi(c.Param(name))
	if err != nil {
		c.JSON(http.StatusBadRequest, apierr.Body(apierr.CodeInvalidArgument, name+" must be an integer"))
		return 0, false
	}
	return n, true
}
