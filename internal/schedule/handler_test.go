package schedule

import (
	"bytes"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gin-gonic/gin"

	"bunkmeter-backend/internal/platform/auth"
)

func newTestRouter(t *testing.T) (*gin.Engine, *auth.Issuer) {
	t.Helper()
	gin.SetMode(gin.TestMode)
	f := newFixture(t)
	issuer := auth.NewIssuer("test-secret", time.Hour)

	r := gin.New()
	RegisterRoutes(r.Group("/api/v1"), NewResolver(f.classes), f.reg,
		auth.RequireAuth(issuer.Secret()), auth.RequireClassAdmin("class_id"))
	return r, issuer
}

func call(r http.Handler, method, path, token string, body any) *httptest.ResponseRecorder {
	var buf bytes.Buffer
	if body != nil {
		_ = json.NewEncoder(&buf).Encode(body)
	}
	req := httptest.NewRequest(method, path, &buf)
	req.Header.Set("Content-Type", "application/json")
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func TestHandlerResolveSchedule(t *testing.T) {
	r, _ := newTestRouter(t)

	w := call(r, http.MethodGet, "/api/v1/classes/cse3a/schedule?date=2024-01-01", "", nil)
	if w.Code != http.StatusOK {
		t.Fatalf("status %d: %s", w.Code, w.Body.String())
	}
	var got EffectiveSchedule
	if err := json.Unmarshal(w.Body.Bytes(), &got); err != nil {
		t.Fatal(err)
	}
	if got.Origin != "default" || len(got.Periods) != 2 {
		t.Errorf("schedule = %+v", got)
	}

	w = call(r, http.MethodGet, "/api/v1/classes/cse3a/schedule?date=2024-01-01&borrow=wed", "", nil)
	if err := json.Unmarshal(w.Body.Bytes(), &got); err != nil {
		t.Fatal(err)
	}
	if got.Origin != "borrowed" || len(got.Periods) != 1 {
		t.Errorf("borrowed = %+v", got)
	}

	if w := call(r, http.MethodGet, "/api/v1/classes/cse3a/schedule?borrow=someday", "", nil); w.Code != http.StatusBadRequest {
		t.Errorf("bad weekday: %d", w.Code)
	}
}

func TestHandlerSessionFlow(t *testing.T) {
	r, issuer := newTestRouter(t)
	token, err := issuer.Issue("cse3a")
	if err != nil {
		t.Fatal(err)
	}

	if w := call(r, http.MethodPost, "/api/v1/sessions", "", map[string]string{"class_id": "cse3a", "date": "2024-01-01"}); w.Code != http.StatusUnauthorized {
		t.Errorf("no token: %d", w.Code)
	}
	other, _ := issuer.Issue("other")
	if w := call(r, http.MethodPost, "/api/v1/sessions", other, map[string]string{"class_id": "cse3a", "date": "2024-01-01"}); w.Code != http.StatusForbidden {
		t.Errorf("other class: %d", w.Code)
	}

	w := call(r, http.MethodPost, "/api/v1/sessions", token, map[string]string{"class_id": "cse3a", "date": "2024-01-01"})
	if w.Code != http.StatusCreated {
		t.Fatalf("open: %d %s", w.Code, w.Body.String())
	}
	var v SessionView
	if err := json.Unmarshal(w.Body.Bytes(), &v); err != nil {
		t.Fatal(err)
	}
	base := "/api/v1/sessions/" + v.SessionID

	if w := call(r, http.MethodPut, base+"/mode", token, map[string]string{"mode": "borrowed"}); w.Code != http.StatusBadRequest {
		t.Errorf("borrow without weekday: %d", w.Code)
	}
	if w := call(r, http.MethodPut, base+"/mode", token, map[string]string{"mode": "weekly"}); w.Code != http.StatusBadRequest {
		t.Errorf("unknown mode: %d", w.Code)
	}
	if w := call(r, http.MethodPut, base+"/mode", token, map[string]string{"mode": "borrowed", "weekday": "Funday"}); w.Code != http.StatusBadRequest {
		t.Errorf("bad weekday: %d", w.Code)
	}
	if w := call(r, http.MethodPut, base+"/mode", token, map[string]string{"mode": "default"}); w.Code != http.StatusOK {
		t.Fatalf("default mode: %d %s", w.Code, w.Body.String())
	}
	if w := call(r, http.MethodPost, base+"/periods/1/absent/5", token, nil); w.Code != http.StatusOK {
		t.Fatalf("toggle: %d %s", w.Code, w.Body.String())
	}
	if w := call(r, http.MethodPost, base+"/periods/1/absent/x", token, nil); w.Code != http.StatusBadRequest {
		t.Errorf("non numeric roll: %d", w.Code)
	}

	w = call(r, http.MethodPost, base+"/submit", token, nil)
	if w.Code != http.StatusCreated {
		t.Fatalf("submit: %d %s", w.Code, w.Body.String())
	}
	var sr SubmitResponse
	if err := json.Unmarshal(w.Body.Bytes(), &sr); err != nil {
		t.Fatal(err)
	}
	if !sr.Created || sr.Session.Submission == nil || len(sr.Session.Submission.Periods) != 2 {
		t.Errorf("submit = %+v", sr)
	}

	if w := call(r, http.MethodPost, base+"/periods/1/absent/5", token, nil); w.Code != http.StatusBadRequest {
		t.Errorf("toggle after submit: %d", w.Code)
	}
	if w := call(r, http.MethodPost, base+"/reset", token, nil); w.Code != http.StatusOK {
		t.Errorf("reset: %d", w.Code)
	}
	if w := call(r, http.MethodDelete, base, token, nil); w.Code != http.StatusNoContent {
		t.Errorf("close: %d", w.Code)
	}
	if w := call(r, http.MethodGet, base, token, nil); w.Code != http.StatusNotFound {
		t.Errorf("get after close: %d", w.Code)
	}
}

func TestHandlerCustomPeriods(t *testing.T) {
	r, issuer := newTestRouter(t)
	token, _ := issuer.Issue("cse3a")

	w := call(r, http.MethodPost, "/api/v1/sessions", token, map[string]string{"class_id": "cse3a", "date": "2024-01-07"})
	var v SessionView
	if err := json.Unmarshal(w.Body.Bytes(), &v); err != nil {
		t.Fatal(err)
	}
	base := "/api/v1/sessions/" + v.SessionID

	if w := call(r, http.MethodPut, base+"/mode", token, map[string]string{"mode": "custom"}); w.Code != http.StatusOK {
		t.Fatalf("custom: %d", w.Code)
	}
	if w := call(r, http.MethodPost, base+"/periods", token, nil); w.Code != http.StatusCreated {
		t.Fatalf("add empty: %d %s", w.Code, w.Body.String())
	}
	if w := call(r, http.MethodPut, base+"/periods/1", token, map[string]string{"subject_id": "math"}); w.Code != http.StatusOK {
		t.Fatalf("set subject: %d %s", w.Code, w.Body.String())
	}
	if w := call(r, http.MethodPost, base+"/periods", token, map[string]string{"subject_id": "eng"}); w.Code != http.StatusCreated {
		t.Fatalf("add with subject: %d", w.Code)
	}
	w = call(r, http.MethodDelete, base+"/periods/2", token, nil)
	if w.Code != http.StatusOK {
		t.Fatalf("remove: %d", w.Code)
	}
	if err := json.Unmarshal(w.Body.Bytes(), &v); err != nil {
		t.Fatal(err)
	}
	if len(v.Schedule.Periods) != 1 || v.Schedule.Periods[0].SubjectName != "Math" {
		t.Errorf("schedule = %+v", v.Schedule)
	}
}

func TestHandlerAddPeriodChunkedBody(t *testing.T) {
	r, issuer := newTestRouter(t)
	token, _ := issuer.Issue("cse3a")

	w := call(r, http.MethodPost, "/api/v1/sessions", token, map[string]string{"class_id": "cse3a", "date": "2024-01-07"})
	var v SessionView
	if err := json.Unmarshal(w.Body.Bytes(), &v); err != nil {
		t.Fatal(err)
	}
	base := "/api/v1/sessions/" + v.SessionID
	if w := call(r, http.MethodPut, base+"/mode", token, map[string]string{"mode": "custom"}); w.Code != http.StatusOK {
		t.Fatalf("custom: %d", w.Code)
	}

	post := func(body io.Reader) *httptest.ResponseRecorder {
		req := httptest.NewRequest(http.MethodPost, base+"/periods", body)
		req.Header.Set("Content-Type", "application/json")
		req.Header.Set("Authorization", "Bearer "+token)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)
		return w
	}

	// No known length, as with Transfer-Encoding: chunked.
	w = post(io.NopCloser(strings.NewReader(`{"subject_id":"math"}`)))
	if w.Code != http.StatusCreated {
		t.Fatalf("chunked add: %d %s", w.Code, w.Body.String())
	}
	if err := json.Unmarshal(w.Body.Bytes(), &v); err != nil {
		t.Fatal(err)
	}
	if len(v.Schedule.Periods) != 1 || v.Schedule.Periods[0].SubjectID != "math" {
		t.Errorf("schedule = %+v", v.Schedule)
	}

	if w := post(nil); w.Code != http.StatusCreated {
		t.Errorf("no body: %d %s", w.Code, w.Body.String())
	}
	if w := post(io.NopCloser(strings.NewReader(`{"subject_id":`))); w.Code != http.StatusBadRequest {
		t.Errorf("broken json: %d", w.Code)
	}
}
