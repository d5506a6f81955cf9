package http

import (
	"context"
	"net/http"
	"net/url"
	"strings"

	"volunteerhub-backend/internal/security"
)

type contextKey string

const (
	ctxVolunteer  contextKey = "volunteer_session"
	ctxStaff      contextKey = "staff_session"
	ctxSuperAdmin contextKey = "superadmin_session"
)

const (
	volunteerLoginPath  = "/volunteer/login"
	staffLoginPath      = "/staff/login"
	superAdminLoginPath = "/admin/login"
)

// Middleware guards routes with the session cookies. API variants
// answer 401 JSON; Page variants redirect browsers to the matching
// login page carrying the original path as next.
type Middleware struct {
	sessions security.SessionManager
}

func NewMiddleware(sessions security.SessionManager) *Middleware {
	return &Middleware{sessions: sessions}
}

func (m *Middleware) RequireVolunteer(next http.HandlerFunc) http.HandlerFunc {
	return m.require(next, security.SessionKindVolunteer, ctxVolunteer, "")
}

func (m *Middleware) RequireStaff(next http.HandlerFunc) http.HandlerFunc {
	return m.require(next, security.SessionKindStaff, ctxStaff, "")
}

func (m *Middleware) RequireSuperAdmin(next http.HandlerFunc) http.HandlerFunc {
	return m.require(next, security.SessionKindSuperAdmin, ctxSuperAdmin, "")
}

func (m *Middleware) RequireVolunteerPage(next http.HandlerFunc) http.HandlerFunc {
	return m.require(next, security.SessionKindVolunteer, ctxVolunteer, volunteerLoginPath)
}

func (m *Middleware) RequireStaffPage(next http.HandlerFunc) http.HandlerFunc {
	return m.require(next, security.SessionKindStaff, ctxStaff, staffLoginPath)
}

func (m *Middleware) RequireSuperAdminPage(next http.HandlerFunc) http.HandlerFunc {
	return m.require(next, security.SessionKindSuperAdmin, ctxSuperAdmin, superAdminLoginPath)
}

func (m *Middleware) require(next http.HandlerFunc, kind security.SessionKind, key contextKey, loginPath string) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		claims, err := m.sessions.Read(r, kind)
		if err != nil {
			if loginPath != "" {
				target := loginPath + "?next=" + url.QueryEscape(r.URL.RequestURI())
				http.Redirect(w, r, target, http.StatusFound)
				return
			}
			writeError(w, http.StatusUnauthorized, "ログインが必要です")
			return
		}
		ctx := context.WithValue(r.Context(), key, claims)
		next(w, r.WithContext(ctx))
	}
}

func volunteerSession(r *http.Request) *security.SessionClaims {
	claims, _ := r.Context().Value(ctxVolunteer).(*security.SessionClaims)
	return claims
}

func staffSession(r *http.Request) *security.SessionClaims {
	claims, _ := r.Context().Value(ctxStaff).(*security.SessionClaims)
	return claims
}

func superAdminSession(r *http.Request) *security.SessionClaims {
	claims, _ := r.Context().Value(ctxSuperAdmin).(*security.SessionClaims)
	return claims
}

// safeNext accepts a post-login redirect target only when it points
// inside the site. Anything else falls back to the class default.
func safeNext(next, fallback string) string {
	if strings.HasPrefix(next, "/") && !strings.HasPrefix(next, "//") {
		return next
	}
	return fallback
}
