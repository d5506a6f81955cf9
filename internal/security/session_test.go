package security_test

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"volunteerhub-backend/internal/security"
)

const testSecret = "0123456789abcdef0123456789abcdef"

func issueAndCapture(t *testing.T, issue func(w http.ResponseWriter) error) *http.Cookie {
	t.Helper()
	rec := httptest.NewRecorder()
	require.NoError(t, issue(rec))
	cookies := rec.Result().Cookies()
	require.Len(t, cookies, 1)
	return cookies[0]
}

func requestWith(cookie *http.Cookie) *http.Request {
	r := httptest.NewRequest(http.MethodGet, "/api/volunteer/me", nil)
	r.AddCookie(cookie)
	return r
}

func TestSessionManagerVolunteerRoundTrip(t *testing.T) {
	m := security.NewSessionManager(testSecret, time.Hour, false)

	cookie := issueAndCapture(t, func(w http.ResponseWriter) error {
		return m.IssueVolunteer(w, 42)
	})
	assert.Equal(t, security.CookieVolunteer, cookie.Name)
	assert.True(t, cookie.HttpOnly)
	assert.Equal(t, "/", cookie.Path)

	claims, err := m.Read(requestWith(cookie), security.SessionKindVolunteer)
	require.NoError(t, err)
	assert.Equal(t, int32(42), claims.UserID)
	assert.Equal(t, security.SessionKindVolunteer, claims.Kind)
}

func TestSessionManagerStaffClaims(t *testing.T) {
	m := security.NewSessionManager(testSecret, time.Hour, false)

	cookie := issueAndCapture(t, func(w http.ResponseWriter) error {
		return m.IssueStaff(w, 7, 3, "tama_admin", "OrgAdmin")
	})
	assert.Equal(t, security.CookieStaff, cookie.Name)

	claims, err := m.Read(requestWith(cookie), security.SessionKindStaff)
	require.NoError(t, err)
	assert.Equal(t, int32(7), claims.UserID)
	assert.Equal(t, int32(3), claims.OrganizationID)
	assert.Equal(t, "tama_admin", claims.Username)
	assert.Equal(t, "OrgAdmin", claims.Role)
}

func TestSessionManagerWrongKind(t *testing.T) {
	m := security.NewSessionManager(testSecret, time.Hour, false)

	cookie := issueAndCapture(t, func(w http.ResponseWriter) error {
		return m.IssueVolunteer(w, 42)
	})

	// A volunteer cookie presented where a staff session is required
	// fails even though the name differs; simulate a renamed cookie.
	cookie.Name = security.CookieStaff
	_, err := m.Read(requestWith(cookie), security.SessionKindStaff)
	assert.ErrorIs(t, err, security.ErrWrongSession)
}

func TestSessionManagerMissingCookie(t *testing.T) {
	m := security.NewSessionManager(testSecret, time.Hour, false)

	r := httptest.NewRequest(http.MethodGet, "/api/volunteer/me", nil)
	_, err := m.Read(r, security.SessionKindVolunteer)
	assert.ErrorIs(t, err, security.ErrInvalidSession)
}

func TestSessionManagerExpired(t *testing.T) {
	m := security.NewSessionManager(testSecret, -time.Minute, false)

	cookie := issueAndCapture(t, func(w http.ResponseWriter) error {
		return m.IssueVolunteer(w, 42)
	})

	_, err := m.Read(requestWith(cookie), security.SessionKindVolunteer)
	assert.ErrorIs(t, err, security.ErrExpiredSession)
}

func TestSessionManagerTamperedSignature(t *testing.T) {
	m := security.NewSessionManager(testSecret, time.Hour, false)
	other := security.NewSessionManager("another-secret-that-is-32-chars!", time.Hour, false)

	cookie := issueAndCapture(t, func(w http.ResponseWriter) error {
		return m.IssueVolunteer(w, 42)
	})

	_, err := other.Read(requestWith(cookie), security.SessionKindVolunteer)
	assert.ErrorIs(t, err, security.ErrInvalidSession)
}

func TestSessionManagerClear(t *testing.T) {
	m := security.NewSessionManager(testSecret, time.Hour, false)

	rec := httptest.NewRecorder()
	m.Clear(rec, security.SessionKindVolunteer)
	cookies := rec.Result().Cookies()
	require.Len(t, cookies, 1)
	assert.Equal(t, security.CookieVolunteer, cookies[0].Name)
	assert.Equal(t, -1, cookies[0].MaxAge)
	assert.Empty(t, cookies[0].Value)
}
