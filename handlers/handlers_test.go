package handlers

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/Sampreeth-sv/smart-attendance-new/auth"
	"github.com/Sampreeth-sv/smart-attendance-new/models"
	"github.com/Sampreeth-sv/smart-attendance-new/sessions"
)

const testSecret = "test-secret"

func newTestRouter(t *testing.T) (*gin.Engine, *sessions.Registry) {
	t.Helper()
	gin.SetMode(gin.TestMode)

	registry := sessions.NewRegistry()
	api := NewAPI(registry, []string{"http://localhost:3000"})

	router := gin.New()
	teacherOnly := router.Group("/", auth.Middleware(testSecret), auth.RequireRole(auth.RoleTeacher))
	teacherOnly.POST("/qr/generate", api.CreateSession)
	teacherOnly.POST("/qr/stop", api.StopSession)
	teacherOnly.GET("/qr/image/:sessionID", api.QRImage)
	teacherOnly.GET("/attendance/session/:sessionID", api.Roster)

	studentOnly := router.Group("/", auth.Middleware(testSecret), auth.RequireRole(auth.RoleStudent))
	studentOnly.POST("/attendance/mark", api.SubmitCheckIn)

	router.GET("/qr/active-session", api.ActiveSession)
	router.GET("/qr/verify/:sessionID", api.VerifySession)

	return router, registry
}

func mintToken(t *testing.T, identity, role string) string {
	t.Helper()
	tokenString, err := auth.Mint(identity, "", role, testSecret, time.Hour)
	if err != nil {
		t.Fatalf("mint token: %v", err)
	}
	return tokenString
}

func doJSON(t *testing.T, router *gin.Engine, method, path, bearer string, body interface{}) *httptest.ResponseRecorder {
	t.Helper()
	var reader *bytes.Buffer
	if body != nil {
		data, err := json.Marshal(body)
		if err != nil {
			t.Fatalf("marshal request: %v", err)
		}
		reader = bytes.NewBuffer(data)
	} else {
		reader = bytes.NewBuffer(nil)
	}

	req := httptest.NewRequest(method, path, reader)
	req.Header.Set("Content-Type", "application/json")
	if bearer != "" {
		req.Header.Set("Authorization", "Bearer "+bearer)
	}
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	return w
}

func decodeErrorCode(t *testing.T, w *httptest.ResponseRecorder) string {
	t.Helper()
	var resp models.ErrorResponse
	if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
		t.Fatalf("decode error response: %v (body %s)", err, w.Body.String())
	}
	return resp.Error
}

// The full happy path: teacher starts a session, a student checks in, the
// roster shows them, the teacher stops, and late check-ins bounce.
func TestAttendanceScenario(t *testing.T) {
	router, _ := newTestRouter(t)
	teacher := mintToken(t, "T042", auth.RoleTeacher)
	student := mintToken(t, "USN001", auth.RoleStudent)

	// start
	w := doJSON(t, router, http.MethodPost, "/qr/generate", teacher,
		models.CreateSessionRequest{Subject: "Computer Networks"})
	if w.Code != http.StatusOK {
		t.Fatalf("create session: status %d, body %s", w.Code, w.Body.String())
	}
	var created models.CreateSessionResponse
	if err := json.Unmarshal(w.Body.Bytes(), &created); err != nil {
		t.Fatalf("decode create response: %v", err)
	}
	if created.SessionID == "" || created.Subject != "Computer Networks" {
		t.Fatalf("unexpected create response: %+v", created)
	}

	// the public verify endpoint sees it
	w = doJSON(t, router, http.MethodGet, "/qr/verify/"+created.SessionID, "", nil)
	if w.Code != http.StatusOK {
		t.Fatalf("verify: status %d", w.Code)
	}

	// QR image renders
	w = doJSON(t, router, http.MethodGet, "/qr/image/"+created.SessionID, teacher, nil)
	if w.Code != http.StatusOK {
		t.Fatalf("qr image: status %d", w.Code)
	}
	if ct := w.Header().Get("Content-Type"); ct != "image/png" {
		t.Fatalf("qr image content type: %s", ct)
	}

	// student checks in
	w = doJSON(t, router, http.MethodPost, "/attendance/mark", student,
		models.SubmitCheckInRequest{SessionID: created.SessionID, StudentID: "USN001"})
	if w.Code != http.StatusOK {
		t.Fatalf("check-in: status %d, body %s", w.Code, w.Body.String())
	}

	// duplicate rejected
	w = doJSON(t, router, http.MethodPost, "/attendance/mark", student,
		models.SubmitCheckInRequest{SessionID: created.SessionID, StudentID: "USN001"})
	if w.Code != http.StatusConflict {
		t.Fatalf("duplicate check-in: status %d", w.Code)
	}
	if code := decodeErrorCode(t, w); code != sessions.CodeDuplicateCheckIn {
		t.Fatalf("duplicate check-in code: %s", code)
	}

	// roster shows exactly one record
	w = doJSON(t, router, http.MethodGet, "/attendance/session/"+created.SessionID, teacher, nil)
	if w.Code != http.StatusOK {
		t.Fatalf("roster: status %d", w.Code)
	}
	var roster models.RosterResponse
	if err := json.Unmarshal(w.Body.Bytes(), &roster); err != nil {
		t.Fatalf("decode roster: %v", err)
	}
	if roster.PresentCount != 1 || len(roster.Records) != 1 || roster.Records[0].StudentID != "USN001" {
		t.Fatalf("unexpected roster: %+v", roster)
	}

	// stop
	w = doJSON(t, router, http.MethodPost, "/qr/stop", teacher,
		models.StopSessionRequest{SessionID: created.SessionID})
	if w.Code != http.StatusOK {
		t.Fatalf("stop: status %d", w.Code)
	}

	// late check-in bounces with the registry's verdict
	w = doJSON(t, router, http.MethodPost, "/attendance/mark", student,
		models.SubmitCheckInRequest{SessionID: created.SessionID, StudentID: "USN001"})
	if w.Code != http.StatusGone {
		t.Fatalf("late check-in: status %d", w.Code)
	}
	if code := decodeErrorCode(t, w); code != sessions.CodeSessionClosed {
		t.Fatalf("late check-in code: %s", code)
	}

	// roster still readable just after stop
	w = doJSON(t, router, http.MethodGet, "/attendance/session/"+created.SessionID, teacher, nil)
	if w.Code != http.StatusOK {
		t.Fatalf("roster after stop: status %d", w.Code)
	}
}

func TestAuthorizationGuards(t *testing.T) {
	router, _ := newTestRouter(t)
	teacher := mintToken(t, "T042", auth.RoleTeacher)
	student := mintToken(t, "USN001", auth.RoleStudent)

	tests := []struct {
		name   string
		method string
		path   string
		bearer string
		body   interface{}
	}{
		{name: "create without credential", method: http.MethodPost, path: "/qr/generate", bearer: "",
			body: models.CreateSessionRequest{Subject: "Computer Networks"}},
		{name: "create with student credential", method: http.MethodPost, path: "/qr/generate", bearer: student,
			body: models.CreateSessionRequest{Subject: "Computer Networks"}},
		{name: "mark with teacher credential", method: http.MethodPost, path: "/attendance/mark", bearer: teacher,
			body: models.SubmitCheckInRequest{SessionID: "S1", StudentID: "USN001"}},
		{name: "mark with garbage token", method: http.MethodPost, path: "/attendance/mark", bearer: "nonsense",
			body: models.SubmitCheckInRequest{SessionID: "S1", StudentID: "USN001"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w := doJSON(t, router, tt.method, tt.path, tt.bearer, tt.body)
			if w.Code != http.StatusUnauthorized {
				t.Fatalf("expected 401, got %d", w.Code)
			}
			if code := decodeErrorCode(t, w); code != sessions.CodeUnauthorized {
				t.Fatalf("expected unauthorized code, got %s", code)
			}
		})
	}
}

func TestCreateSessionInputErrors(t *testing.T) {
	router, _ := newTestRouter(t)
	teacher := mintToken(t, "T042", auth.RoleTeacher)

	// missing subject
	w := doJSON(t, router, http.MethodPost, "/qr/generate", teacher, map[string]string{})
	if w.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d", w.Code)
	}
	if code := decodeErrorCode(t, w); code != sessions.CodeInvalidInput {
		t.Fatalf("expected invalid_input, got %s", code)
	}

	// subject outside the catalog
	w = doJSON(t, router, http.MethodPost, "/qr/generate", teacher,
		models.CreateSessionRequest{Subject: "Basket Weaving"})
	if w.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d", w.Code)
	}

	// second session while one is active
	if w = doJSON(t, router, http.MethodPost, "/qr/generate", teacher,
		models.CreateSessionRequest{Subject: "Computer Networks"}); w.Code != http.StatusOK {
		t.Fatalf("create: status %d", w.Code)
	}
	w = doJSON(t, router, http.MethodPost, "/qr/generate", teacher,
		models.CreateSessionRequest{Subject: "Theory of Computation"})
	if w.Code != http.StatusConflict {
		t.Fatalf("expected 409 for double start, got %d", w.Code)
	}
	if code := decodeErrorCode(t, w); code != sessions.CodeInvalidState {
		t.Fatalf("expected invalid_state, got %s", code)
	}
}

func TestSubmitCheckInMalformedPayload(t *testing.T) {
	router, _ := newTestRouter(t)
	student := mintToken(t, "USN001", auth.RoleStudent)

	w := doJSON(t, router, http.MethodPost, "/attendance/mark", student,
		map[string]string{"student_id": "USN001"}) // no session_id
	if w.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d", w.Code)
	}
	if code := decodeErrorCode(t, w); code != sessions.CodeMalformedToken {
		t.Fatalf("expected malformed_token, got %s", code)
	}
}

func TestActiveSessionDiscovery(t *testing.T) {
	router, registry := newTestRouter(t)
	teacher := mintToken(t, "T042", auth.RoleTeacher)

	w := doJSON(t, router, http.MethodGet, "/qr/active-session", "", nil)
	if w.Code != http.StatusOK {
		t.Fatalf("active-session: status %d", w.Code)
	}
	var idle struct {
		Active bool `json:"active"`
	}
	if err := json.Unmarshal(w.Body.Bytes(), &idle); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if idle.Active {
		t.Fatal("expected no active session yet")
	}

	w = doJSON(t, router, http.MethodPost, "/qr/generate", teacher,
		models.CreateSessionRequest{Subject: "Computer Networks"})
	if w.Code != http.StatusOK {
		t.Fatalf("create: status %d", w.Code)
	}

	w = doJSON(t, router, http.MethodGet, "/qr/active-session", "", nil)
	var found struct {
		Active    bool   `json:"active"`
		SessionID string `json:"session_id"`
		Subject   string `json:"subject"`
	}
	if err := json.Unmarshal(w.Body.Bytes(), &found); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if !found.Active || found.Subject != "Computer Networks" {
		t.Fatalf("unexpected discovery response: %+v", found)
	}
	if _, err := registry.Verify(found.SessionID); err != nil {
		t.Fatalf("discovered session should verify: %v", err)
	}
}

func TestVerifyUnknownAndStopped(t *testing.T) {
	router, registry := newTestRouter(t)

	w := doJSON(t, router, http.MethodGet, "/qr/verify/no-such-session", "", nil)
	if w.Code != http.StatusNotFound {
		t.Fatalf("expected 404, got %d", w.Code)
	}

	session, err := registry.Create("Computer Networks", "T042")
	if err != nil {
		t.Fatalf("create: %v", err)
	}
	if err := registry.Stop(session.ID); err != nil {
		t.Fatalf("stop: %v", err)
	}

	w = doJSON(t, router, http.MethodGet, "/qr/verify/"+session.ID, "", nil)
	if w.Code != http.StatusGone {
		t.Fatalf("expected 410 for stopped session, got %d", w.Code)
	}
	if code := decodeErrorCode(t, w); code != sessions.CodeSessionClosed {
		t.Fatalf("expected session_closed, got %s", code)
	}
}
