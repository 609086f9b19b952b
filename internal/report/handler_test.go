package report

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"

	"bunkmeter-backend/internal/attendance"
	"bunkmeter-backend/internal/platform/auth"
)

func TestHandlerReports(t *testing.T) {
	gin.SetMode(gin.TestMode)
	s := newStack(t)
	c := setupCSE3A(t, s)
	_, _, err := s.attendance.Mark(context.Background(), c.ID, "2024-01-01", attendance.MarkAttendanceRequest{
		Periods: []attendance.MarkPeriod{{Period: 1, SubjectID: c.Subjects[0].ID, Absent: []int{5}}},
	})
	if err != nil {
		t.Fatal(err)
	}

	issuer := auth.NewIssuer("test-secret", time.Hour)
	r := gin.New()
	RegisterRoutes(r.Group("/api/v1"), s.report, auth.RequireAuth(issuer.Secret()), auth.RequireClassAdmin("class_id"))

	do := func(path, token string) *httptest.ResponseRecorder {
		req := httptest.NewRequest(http.MethodGet, path, nil)
		if token != "" {
			req.Header.Set("Authorization", "Bearer "+token)
		}
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)
		return w
	}

	w := do("/api/v1/classes/"+c.ID+"/students/5/report", "")
	if w.Code != http.StatusOK {
		t.Fatalf("student report: %d %s", w.Code, w.Body.String())
	}
	var sr StudentReport
	if err := json.Unmarshal(w.Body.Bytes(), &sr); err != nil {
		t.Fatal(err)
	}
	if sr.RollNumber != 5 || len(sr.Subjects) != 3 || sr.Subjects[0].Status != StatusAtRisk {
		t.Errorf("report = %+v", sr)
	}

	if w := do("/api/v1/classes/"+c.ID+"/students/abc/report", ""); w.Code != http.StatusBadRequest {
		t.Errorf("bad roll: %d", w.Code)
	}
	if w := do("/api/v1/classes/"+c.ID+"/students/99/report", ""); w.Code != http.StatusNotFound {
		t.Errorf("unknown roll: %d", w.Code)
	}

	if w := do("/api/v1/classes/"+c.ID+"/report", ""); w.Code != http.StatusUnauthorized {
		t.Errorf("class report without token: %d", w.Code)
	}
	token, _ := issuer.Issue(c.ID)
	if w := do("/api/v1/classes/"+c.ID+"/report", token); w.Code != http.StatusOK {
		t.Errorf("class report: %d %s", w.Code, w.Body.String())
	}
}

func TestHandlerCalendarAndBunkEffect(t *testing.T) {
	gin.SetMode(gin.TestMode)
	s := newStack(t)
	c := setupCSE3A(t, s)
	s.report.clock = func() time.Time { return time.Date(2024, 1, 1, 10, 0, 0, 0, time.Local) }
	_, _, err := s.attendance.Mark(context.Background(), c.ID, "2024-01-01", attendance.MarkAttendanceRequest{
		Periods: []attendance.MarkPeriod{{Period: 1, SubjectID: c.Subjects[0].ID, Absent: []int{5}}},
	})
	if err != nil {
		t.Fatal(err)
	}

	r := gin.New()
	RegisterRoutes(r.Group("/api/v1"), s.report)
	base := "/api/v1/classes/" + c.ID + "/students/5"

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, base+"/calendar?from=2024-01-01", nil))
	if w.Code != http.StatusOK {
		t.Fatalf("calendar: %d %s", w.Code, w.Body.String())
	}
	var cal StudentCalendar
	if err := json.Unmarshal(w.Body.Bytes(), &cal); err != nil {
		t.Fatal(err)
	}
	if len(cal.Days) != 1 || cal.Days[0].Missed != 1 {
		t.Errorf("calendar = %+v", cal)
	}

	post := func(body string) *httptest.ResponseRecorder {
		req := httptest.NewRequest(http.MethodPost, base+"/bunk-effect", bytes.NewBufferString(body))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)
		return w
	}
	w = post(`{"dates":["2024-01-08"]}`)
	if w.Code != http.StatusOK {
		t.Fatalf("bunk effect: %d %s", w.Code, w.Body.String())
	}
	var eff BunkEffect
	if err := json.Unmarshal(w.Body.Bytes(), &eff); err != nil {
		t.Fatal(err)
	}
	if len(eff.Planned) != 1 || eff.Subjects[0].Missed != 1 || eff.Subjects[0].After.Total != 2 {
		t.Errorf("bunk effect = %+v", eff)
	}
	if w := post(`{"dates":[]}`); w.Code != http.StatusBadRequest {
		t.Errorf("empty dates: %d", w.Code)
	}
	if w := post(`{"dates":["2023-01-01"]}`); w.Code != http.StatusBadRequest {
		t.Errorf("past date: %d", w.Code)
	}
}
