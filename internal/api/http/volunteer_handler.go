package http

import (
	"fmt"
	"net/http"

	"volunteerhub-backend/internal/security"
	"volunteerhub-backend/internal/service"
)

type VolunteerHandler struct {
	auth         service.AuthService
	volunteers   service.VolunteerService
	applications service.ApplicationService
	certificates service.CertificateService
	inquiries    service.InquiryService
	sessions     security.SessionManager
	publicOrgID  int32
}

func NewVolunteerHandler(auth service.AuthService, volunteers service.VolunteerService, applications service.ApplicationService, certificates service.CertificateService, inquiries service.InquiryService, sessions security.SessionManager, publicOrgID int32) *VolunteerHandler {
	return &VolunteerHandler{
		auth:         auth,
		volunteers:   volunteers,
		applications: applications,
		certificates: certificates,
		inquiries:    inquiries,
		sessions:     sessions,
		publicOrgID:  publicOrgID,
	}
}

func (h *VolunteerHandler) Register(w http.ResponseWriter, r *http.Request) {
	var in service.VolunteerInput
	if err := decodeBody(r, &in); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}
	v, err := h.volunteers.Register(r.Context(), in, h.publicOrgID)
	if err != nil {
		writeServiceError(w, err)
		return
	}
	writeJSON(w, http.StatusCreated, map[string]any{"id": v.ID, "message": "登録が完了しました"})
}

func (h *VolunteerHandler) Login(w http.ResponseWriter, r *http.Request) {
	var in struct {
		Email    string `json:"email"`
		Password string `json:"password"`
		Next     string `json:"next"`
	}
	if err := decodeBody(r, &in); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}
	v, err := h.auth.VolunteerLogin(r.Context(), in.Email, in.Password)
	if err != nil {
		writeServiceError(w, err)
		return
	}
	if err := h.sessions.IssueVolunteer(w, v.ID); err != nil {
		writeServiceError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]any{
		"id":        v.ID,
		"full_name": v.FullName,
		"redirect":  safeNext(in.Next, "/mypage"),
	})
}

func (h *VolunteerHandler) Logout(w http.ResponseWriter, r *http.Request) {
	h.sessions.Clear(w, security.SessionKindVolunteer)
	writeJSON(w, http.StatusOK, map[string]string{"message": "ログアウトしました"})
}

func (h *VolunteerHandler) Me(w http.ResponseWriter, r *http.Request) {
	sess := volunteerSession(r)
	v, err := h.volunteers.Get(r.Context(), sess.UserID)
	if err != nil {
		writeServiceError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, v)
}

func (h *VolunteerHandler) UpdateProfile(w http.ResponseWriter, r *http.Request) {
	sess := volunteerSession(r)
	var in service.ProfileUpdateInput
	if err := decodeBody(r, &in); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}
	if err := h.volunteers.UpdateProfile(r.Context(), sess.UserID, in); err != nil {
		writeServiceError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]string{"message": "プロフィールを更新しました"})
}

func (h *VolunteerHandler) ListInterests(w http.ResponseWriter, r *http.Request) {
	sess := volunteerSession(r)
	ids, err := h.volunteers.ListInterests(r.Context(), sess.UserID)
	if err != nil {
		writeServiceError(w, err)
		return
	}
	if ids == nil {
		ids = []int32{}
	}
	writeJSON(w, http.StatusOK, map[string][]int32{"category_ids": ids})
}

func (h *VolunteerHandler) SetInterests(w http.ResponseWriter, r *http.Request) {
	sess := volunteerSession(r)
	var in struct {
		CategoryIDs []int32 `json:"category_ids"`
	}
	if err := decodeBody(r, &in); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}
	if err := h.volunteers.SetInterests(r.Context(), sess.UserID, in.CategoryIDs); err != nil {
		writeServiceError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]string{"message": "関心分野を更新しました"})
}

func (h *VolunteerHandler) ListFavorites(w http.ResponseWriter, r *http.Request) {
	sess := volunteerSession(r)
	ids, err := h.volunteers.ListFavorites(r.Context(), sess.UserID)
	if err != nil {
		writeServiceError(w, err)
		return
	}
	if ids == nil {
		ids = []int32{}
	}
	writeJSON(w, http.StatusOK, map[string][]int32{"organization_ids": ids})
}

func (h *VolunteerHandler) SetFavorites(w http.ResponseWriter, r *http.Request) {
	sess := volunteerSession(r)
	var in struct {
		OrganizationIDs []int32 `json:"organization_ids"`
	}
	if err := decodeBody(r, &in); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}
	if err := h.volunteers.SetFavorites(r.Context(), sess.UserID, in.OrganizationIDs); err != nil {
		writeServiceError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]string{"message": "お気に入りを更新しました"})
}

func (h *VolunteerHandler) ListActivities(w http.ResponseWriter, r *http.Request) {
	sess := volunteerSession(r)
	acts, err := h.volunteers.ListActivities(r.Context(), sess.UserID)
	if err != nil {
		writeServiceError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, acts)
}

func (h *VolunteerHandler) Apply(w http.ResponseWriter, r *http.Request) {
	sess := volunteerSession(r)
	recruitmentID, err := pathID(r, "id")
	if err != nil {
		writeError(w, http.StatusBadRequest, "invalid recruitment id")
		return
	}
	if err := h.applications.Apply(r.Context(), recruitmentID, sess.UserID); err != nil {
		writeServiceError(w, err)
		return
	}
	writeJSON(w, http.StatusCreated, map[string]string{"message": "応募しました"})
}

// Certificate streams the participation certificate PDF; it is
// rendered per request and never stored.
func (h *VolunteerHandler) Certificate(w http.ResponseWriter, r *http.Request) {
	sess := volunteerSession(r)
	applicationID, err := pathID(r, "application_id")
	if err != nil {
		writeError(w, http.StatusBadRequest, "invalid application id")
		return
	}
	recruitmentID := queryInt32(r, "recruitment_id")

	data, filename, err := h.certificates.Generate(r.Context(), applicationID, recruitmentID, sess.UserID)
	if err != nil {
		writeServiceError(w, err)
		return
	}
	w.Header().Set("Content-Type", "application/pdf")
	w.Header().Set("Content-Disposition", fmt.Sprintf(`attachment; filename="%s"`, filename))
	w.WriteHeader(http.StatusOK)
	w.Write(data)
}

// SubmitInquiry takes a per-recruitment question; the volunteer
// session is optional and only used to attribute the inquiry.
func (h *VolunteerHandler) SubmitInquiry(w http.ResponseWriter, r *http.Request) {
	recruitmentID, err := pathID(r, "id")
	if err != nil {
		writeError(w, http.StatusBadRequest, "invalid recruitment id")
		return
	}
	var in struct {
		Text string `json:"inquiry_text"`
	}
	if err := decodeBody(r, &in); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	var volunteerID *int32
	if claims, err := h.sessions.Read(r, security.SessionKindVolunteer); err == nil {
		volunteerID = &claims.UserID
	}
	if err := h.inquiries.SubmitRecruitmentInquiry(r.Context(), recruitmentID, volunteerID, in.Text); err != nil {
		writeServiceError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]string{"message": "お問い合わせを送信しました"})
}
