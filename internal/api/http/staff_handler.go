package http

import (
	"net/http"

	"volunteerhub-backend/internal/domain"
	"volunteerhub-backend/internal/security"
	"volunteerhub-backend/internal/service"
)

type StaffHandler struct {
	auth         service.AuthService
	catalog      service.CatalogService
	applications service.ApplicationService
	bulkImport   service.BulkImportService
	staff        service.StaffService
	sessions     security.SessionManager
}

func NewStaffHandler(auth service.AuthService, catalog service.CatalogService, applications service.ApplicationService, bulkImport service.BulkImportService, staff service.StaffService, sessions security.SessionManager) *StaffHandler {
	return &StaffHandler{
		auth:         auth,
		catalog:      catalog,
		applications: applications,
		bulkImport:   bulkImport,
		staff:        staff,
		sessions:     sessions,
	}
}

func (h *StaffHandler) Login(w http.ResponseWriter, r *http.Request) {
	var in struct {
		Username string `json:"username"`
		Password string `json:"password"`
		Next     string `json:"next"`
	}
	if err := decodeBody(r, &in); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}
	a, err := h.auth.StaffLogin(r.Context(), in.Username, in.Password)
	if err != nil {
		writeServiceError(w, err)
		return
	}
	if err := h.sessions.IssueStaff(w, a.ID, a.OrganizationID, a.Username, string(a.Role)); err != nil {
		writeServiceError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]any{
		"username": a.Username,
		"role":     a.Role,
		"redirect": safeNext(in.Next, "/staff/menu"),
	})
}

func (h *StaffHandler) Logout(w http.ResponseWriter, r *http.Request) {
	h.sessions.Clear(w, security.SessionKindStaff)
	writeJSON(w, http.StatusOK, map[string]string{"message": "ログアウトしました"})
}

// Context returns the session's org context for the staff menu.
func (h *StaffHandler) Context(w http.ResponseWriter, r *http.Request) {
	sess := staffSession(r)
	orgName, err := h.staff.OrgName(r.Context(), sess.OrganizationID)
	if err != nil {
		writeServiceError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]any{
		"username":          sess.Username,
		"role":              sess.Role,
		"organization_id":   sess.OrganizationID,
		"organization_name": orgName,
	})
}

func (h *StaffHandler) ListRecruitments(w http.ResponseWriter, r *http.Request) {
	sess := staffSession(r)
	list, err := h.catalog.ListByOrg(r.Context(), sess.OrganizationID)
	if err != nil {
		writeServiceError(w, err)
		return
	}
	if list == nil {
		list = []domain.StaffRecruitmentSummary{}
	}
	writeJSON(w, http.StatusOK, list)
}

func (h *StaffHandler) GetRecruitment(w http.ResponseWriter, r *http.Request) {
	sess := staffSession(r)
	id, err := pathID(r, "id")
	if err != nil {
		writeError(w, http.StatusBadRequest, "invalid recruitment id")
		return
	}
	detail, err := h.catalog.GetStaffDetail(r.Context(), id, sess.OrganizationID)
	if err != nil {
		writeServiceError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, detail)
}

func (h *StaffHandler) CreateRecruitment(w http.ResponseWriter, r *http.Request) {
	sess := staffSession(r)
	var in service.RecruitmentInput
	if err := decodeBody(r, &in); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}
	id, err := h.catalog.Create(r.Context(), sess.OrganizationID, in)
	if err != nil {
		writeServiceError(w, err)
		return
	}
	writeJSON(w, http.StatusCreated, map[string]any{"id": id, "message": "募集を作成しました"})
}

func (h *StaffHandler) UpdateRecruitment(w http.ResponseWriter, r *http.Request) {
	sess := staffSession(r)
	id, err := pathID(r, "id")
	if err != nil {
		writeError(w, http.StatusBadRequest, "invalid recruitment id")
		return
	}
	var in service.RecruitmentInput
	if err := decodeBody(r, &in); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}
	if err := h.catalog.Update(r.Context(), id, sess.OrganizationID, in); err != nil {
		writeServiceError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]string{"message": "募集を更新しました"})
}

// BulkImport takes a multipart CSV upload and reports per-row results;
// a bad row never aborts the file.
func (h *StaffHandler) BulkImport(w http.ResponseWriter, r *http.Request) {
	sess := staffSession(r)
	if err := r.ParseMultipartForm(10 << 20); err != nil {
		writeError(w, http.StatusBadRequest, "invalid multipart form")
		return
	}
	file, _, err := r.FormFile("file")
	if err != nil {
		writeError(w, http.StatusBadRequest, "csv file is required")
		return
	}
	defer file.Close()

	publish := r.FormValue("publish") == "true"
	report, err := h.bulkImport.Import(r.Context(), sess.OrganizationID, file, publish)
	if err != nil {
		writeServiceError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, report)
}

func (h *StaffHandler) ListRecruitmentApplicants(w http.ResponseWriter, r *http.Request) {
	sess := staffSession(r)
	recruitmentID, err := pathID(r, "id")
	if err != nil {
		writeError(w, http.StatusBadRequest, "invalid recruitment id")
		return
	}
	applicants, err := h.applications.ListByRecruitment(r.Context(), recruitmentID, sess.OrganizationID)
	if err != nil {
		writeServiceError(w, err)
		return
	}
	if applicants == nil {
		applicants = []domain.Applicant{}
	}
	writeJSON(w, http.StatusOK, applicants)
}

func (h *StaffHandler) ListApplications(w http.ResponseWriter, r *http.Request) {
	sess := staffSession(r)
	sortBy := r.URL.Query().Get("sort_by")
	sortOrder := r.URL.Query().Get("sort_order")
	apps, err := h.applications.ListByOrg(r.Context(), sess.OrganizationID, sortBy, sortOrder)
	if err != nil {
		writeServiceError(w, err)
		return
	}
	if apps == nil {
		apps = []domain.OrgApplication{}
	}
	writeJSON(w, http.StatusOK, apps)
}

func (h *StaffHandler) GetApplication(w http.ResponseWriter, r *http.Request) {
	sess := staffSession(r)
	id, err := pathID(r, "id")
	if err != nil {
		writeError(w, http.StatusBadRequest, "invalid application id")
		return
	}
	detail, err := h.applications.GetDetail(r.Context(), id, sess.OrganizationID)
	if err != nil {
		writeServiceError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, detail)
}

func (h *StaffHandler) UpdateApplicationStatus(w http.ResponseWriter, r *http.Request) {
	sess := staffSession(r)
	id, err := pathID(r, "id")
	if err != nil {
		writeError(w, http.StatusBadRequest, "invalid application id")
		return
	}
	var in struct {
		Status string `json:"status"`
	}
	if err := decodeBody(r, &in); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}
	if err := h.applications.UpdateStatus(r.Context(), id, sess.OrganizationID, in.Status); err != nil {
		writeServiceError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]string{"message": "ステータスを更新しました"})
}

func (h *StaffHandler) BatchApprove(w http.ResponseWriter, r *http.Request) {
	sess := staffSession(r)
	var in struct {
		ApplicationIDs []int32 `json:"application_ids"`
	}
	if err := decodeBody(r, &in); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}
	updated, err := h.applications.BatchApprove(r.Context(), sess.OrganizationID, in.ApplicationIDs)
	if err != nil {
		writeServiceError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]any{"updated_count": updated})
}

func (h *StaffHandler) ListVolunteers(w http.ResponseWriter, r *http.Request) {
	sess := staffSession(r)
	vols, err := h.staff.ListVolunteers(r.Context(), sess.OrganizationID)
	if err != nil {
		writeServiceError(w, err)
		return
	}
	if vols == nil {
		vols = []domain.Volunteer{}
	}
	writeJSON(w, http.StatusOK, vols)
}

func (h *StaffHandler) GetVolunteer(w http.ResponseWriter, r *http.Request) {
	sess := staffSession(r)
	id, err := pathID(r, "id")
	if err != nil {
		writeError(w, http.StatusBadRequest, "invalid volunteer id")
		return
	}
	v, err := h.staff.GetVolunteer(r.Context(), id, sess.OrganizationID)
	if err != nil {
		writeServiceError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, v)
}

func (h *StaffHandler) CreateVolunteer(w http.ResponseWriter, r *http.Request) {
	sess := staffSession(r)
	var in service.VolunteerInput
	if err := decodeBody(r, &in); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}
	v, err := h.staff.CreateVolunteer(r.Context(), sess.OrganizationID, in)
	if err != nil {
		writeServiceError(w, err)
		return
	}
	writeJSON(w, http.StatusCreated, map[string]any{"id": v.ID, "message": "ボランティアを登録しました"})
}

func (h *StaffHandler) UpdateVolunteer(w http.ResponseWriter, r *http.Request) {
	sess := staffSession(r)
	id, err := pathID(r, "id")
	if err != nil {
		writeError(w, http.StatusBadRequest, "invalid volunteer id")
		return
	}
	var in service.VolunteerInput
	if err := decodeBody(r, &in); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}
	if err := h.staff.UpdateVolunteer(r.Context(), id, sess.OrganizationID, in); err != nil {
		writeServiceError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]string{"message": "ボランティア情報を更新しました"})
}

func (h *StaffHandler) DeleteVolunteer(w http.ResponseWriter, r *http.Request) {
	sess := staffSession(r)
	id, err := pathID(r, "id")
	if err != nil {
		writeError(w, http.StatusBadRequest, "invalid volunteer id")
		return
	}
	if err := h.staff.DeleteVolunteer(r.Context(), id, sess.OrganizationID); err != nil {
		writeServiceError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]string{"message": "ボランティアを削除しました"})
}

func (h *StaffHandler) InviteVolunteer(w http.ResponseWriter, r *http.Request) {
	sess := staffSession(r)
	var in service.VolunteerInput
	if err := decodeBody(r, &in); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}
	v, err := h.staff.InviteVolunteer(r.Context(), sess.OrganizationID, in)
	if err != nil {
		writeServiceError(w, err)
		return
	}
	writeJSON(w, http.StatusCreated, map[string]any{"id": v.ID, "message": "招待メールを送信しました"})
}

func (h *StaffHandler) ListStaffAccounts(w http.ResponseWriter, r *http.Request) {
	sess := staffSession(r)
	accounts, err := h.staff.ListStaffAccounts(r.Context(), sess.OrganizationID)
	if err != nil {
		writeServiceError(w, err)
		return
	}
	if accounts == nil {
		accounts = []domain.AdminUser{}
	}
	writeJSON(w, http.StatusOK, accounts)
}

func (h *StaffHandler) CreateStaffAccount(w http.ResponseWriter, r *http.Request) {
	sess := staffSession(r)
	var in struct {
		Username string `json:"username"`
		Password string `json:"password"`
	}
	if err := decodeBody(r, &in); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}
	if err := h.staff.CreateStaffAccount(r.Context(), sess.OrganizationID, in.Username, in.Password); err != nil {
		writeServiceError(w, err)
		return
	}
	writeJSON(w, http.StatusCreated, map[string]string{"message": "スタッフアカウントを作成しました"})
}
