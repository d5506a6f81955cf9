package http

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"volunteerhub-backend/internal/security"
)

func newTestSessions() security.SessionManager {
	return security.NewSessionManager("0123456789abcdef0123456789abcdef", time.Hour, false)
}

func okHandler(t *testing.T, sawSession *bool) http.HandlerFunc {
	t.Helper()
	return func(w http.ResponseWriter, r *http.Request) {
		*sawSession = volunteerSession(r) != nil
		w.WriteHeader(http.StatusOK)
	}
}

func TestRequireVolunteerWithoutCookie(t *testing.T) {
	mw := NewMiddleware(newTestSessions())

	var sawSession bool
	rec := httptest.NewRecorder()
	r := httptest.NewRequest(http.MethodGet, "/api/volunteer/me", nil)
	mw.RequireVolunteer(okHandler(t, &sawSession))(rec, r)

	assert.Equal(t, http.StatusUnauthorized, rec.Code)
	assert.False(t, sawSession)
	assert.Contains(t, rec.Body.String(), "ログインが必要です")
}

func TestRequireVolunteerWithValidCookie(t *testing.T) {
	sessions := newTestSessions()
	mw := NewMiddleware(sessions)

	issue := httptest.NewRecorder()
	require.NoError(t, sessions.IssueVolunteer(issue, 15))
	cookie := issue.Result().Cookies()[0]

	var sawSession bool
	rec := httptest.NewRecorder()
	r := httptest.NewRequest(http.MethodGet, "/api/volunteer/me", nil)
	r.AddCookie(cookie)
	mw.RequireVolunteer(okHandler(t, &sawSession))(rec, r)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.True(t, sawSession)
}

func TestRequireVolunteerPageRedirectsWithNext(t *testing.T) {
	mw := NewMiddleware(newTestSessions())

	rec := httptest.NewRecorder()
	r := httptest.NewRequest(http.MethodGet, "/api/volunteer/certificates/7?recruitment_id=42", nil)
	handler := mw.RequireVolunteerPage(func(w http.ResponseWriter, r *http.Request) {
		t.Fatal("handler must not run without a session")
	})
	handler(rec, r)

	assert.Equal(t, http.StatusFound, rec.Code)
	assert.Equal(t,
		"/volunteer/login?next=%2Fapi%2Fvolunteer%2Fcertificates%2F7%3Frecruitment_id%3D42",
		rec.Header().Get("Location"))
}

func TestRequireStaffRejectsVolunteerCookie(t *testing.T) {
	sessions := newTestSessions()
	mw := NewMiddleware(sessions)

	issue := httptest.NewRecorder()
	require.NoError(t, sessions.IssueVolunteer(issue, 15))
	cookie := issue.Result().Cookies()[0]

	rec := httptest.NewRecorder()
	r := httptest.NewRequest(http.MethodGet, "/api/staff/context", nil)
	r.AddCookie(cookie)
	mw.RequireStaff(func(w http.ResponseWriter, r *http.Request) {
		t.Fatal("volunteer session must not satisfy a staff route")
	})(rec, r)

	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestSafeNext(t *testing.T) {
	assert.Equal(t, "/mypage", safeNext("", "/mypage"))
	assert.Equal(t, "/opportunity/5", safeNext("/opportunity/5", "/mypage"))
	assert.Equal(t, "/mypage", safeNext("https://evil.example", "/mypage"))
	assert.Equal(t, "/mypage", safeNext("//evil.example", "/mypage"))
}
