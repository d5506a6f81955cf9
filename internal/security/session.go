package security

import (
	"errors"
	"net/http"
	"strconv"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

var (
	ErrInvalidSession = errors.New("invalid session")
	ErrExpiredSession = errors.New("session has expired")
	ErrWrongSession   = errors.New("wrong session type for this endpoint")
)

// SessionKind discriminates the three independent login namespaces.
// Each kind lives in its own cookie, so a browser can hold a volunteer
// and a staff session at the same time without one clobbering the
// other.
type SessionKind string

const (
	SessionKindVolunteer  SessionKind = "volunteer"
	SessionKindStaff      SessionKind = "staff"
	SessionKindSuperAdmin SessionKind = "superadmin"
)

const (
	CookieVolunteer  = "vh_volunteer"
	CookieStaff      = "vh_staff"
	CookieSuperAdmin = "vh_admin"
)

func cookieName(kind SessionKind) string {
	switch kind {
	case SessionKindStaff:
		return CookieStaff
	case SessionKindSuperAdmin:
		return CookieSuperAdmin
	default:
		return CookieVolunteer
	}
}

// SessionClaims is the signed payload of a session cookie. UserID is
// the principal's id in its own table; the staff fields are populated
// only for staff sessions.
type SessionClaims struct {
	UserID         int32       `json:"user_id"`
	Kind           SessionKind `json:"kind"`
	Username       string      `json:"username,omitempty"`
	OrganizationID int32       `json:"organization_id,omitempty"`
	Role           string      `json:"role,omitempty"`
	jwt.RegisteredClaims
}

type SessionManager interface {
	IssueVolunteer(w http.ResponseWriter, volunteerID int32) error
	IssueStaff(w http.ResponseWriter, adminID, orgID int32, username, role string) error
	IssueSuperAdmin(w http.ResponseWriter, superAdminID int32, username string) error
	Read(r *http.Request, kind SessionKind) (*SessionClaims, error)
	Clear(w http.ResponseWriter, kind SessionKind)
}

type sessionManager struct {
	secret []byte
	ttl    time.Duration
	secure bool
}

func NewSessionManager(secret string, ttl time.Duration, secure bool) SessionManager {
	return &sessionManager{
		secret: []byte(secret),
		ttl:    ttl,
		secure: secure,
	}
}

func (m *sessionManager) IssueVolunteer(w http.ResponseWriter, volunteerID int32) error {
	return m.issue(w, SessionClaims{UserID: volunteerID, Kind: SessionKindVolunteer})
}

func (m *sessionManager) IssueStaff(w http.ResponseWriter, adminID, orgID int32, username, role string) error {
	return m.issue(w, SessionClaims{
		UserID:         adminID,
		Kind:           SessionKindStaff,
		Username:       username,
		OrganizationID: orgID,
		Role:           role,
	})
}

func (m *sessionManager) IssueSuperAdmin(w http.ResponseWriter, superAdminID int32, username string) error {
	return m.issue(w, SessionClaims{UserID: superAdminID, Kind: SessionKindSuperAdmin, Username: username})
}

func (m *sessionManager) issue(w http.ResponseWriter, claims SessionClaims) error {
	now := time.Now()
	claims.RegisteredClaims = jwt.RegisteredClaims{
		Subject:   strconv.Itoa(int(claims.UserID)),
		ExpiresAt: jwt.NewNumericDate(now.Add(m.ttl)),
		IssuedAt:  jwt.NewNumericDate(now),
		Issuer:    "volunteerhub",
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := token.SignedString(m.secret)
	if err != nil {
		return err
	}
	http.SetCookie(w, &http.Cookie{
		Name:     cookieName(claims.Kind),
		Value:    signed,
		Path:     "/",
		MaxAge:   int(m.ttl.Seconds()),
		HttpOnly: true,
		Secure:   m.secure,
		SameSite: http.SameSiteLaxMode,
	})
	return nil
}

func (m *sessionManager) Read(r *http.Request, kind SessionKind) (*SessionClaims, error) {
	cookie, err := r.Cookie(cookieName(kind))
	if err != nil {
		return nil, ErrInvalidSession
	}

	token, err := jwt.ParseWithClaims(cookie.Value, &SessionClaims{}, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, ErrInvalidSession
		}
		return m.secret, nil
	})
	if err != nil {
		if errors.Is(err, jwt.ErrTokenExpired) {
			return nil, ErrExpiredSession
		}
		return nil, ErrInvalidSession
	}

	claims, ok := token.Claims.(*SessionClaims)
	if !ok || !token.Valid {
		return nil, ErrInvalidSession
	}
	if claims.Kind != kind {
		return nil, ErrWrongSession
	}
	return claims, nil
}

func (m *sessionManager) Clear(w http.ResponseWriter, kind SessionKind) {
	http.SetCookie(w, &http.Cookie{
		Name:     cookieName(kind),
		Value:    "",
		Path:     "/",
		MaxAge:   -1,
		HttpOnly: true,
		Secure:   m.secure,
		SameSite: http.SameSiteLaxMode,
	})
}
