package http

import (
	"net/http"

	"github.com/gorilla/mux"

	"volunteerhub-backend/internal/domain"
	"volunteerhub-backend/internal/security"
	"volunteerhub-backend/internal/service"
)

// AdminHandler is the platform superadmin surface.
type AdminHandler struct {
	auth     service.AuthService
	admin    service.AdminService
	sessions security.SessionManager
}

func NewAdminHandler(auth service.AuthService, admin service.AdminService, sessions security.SessionManager) *AdminHandler {
	return &AdminHandler{
		auth:     auth,
		admin:    admin,
		sessions: sessions,
	}
}

func (h *AdminHandler) Login(w http.ResponseWriter, r *http.Request) {
	var in struct {
		Username string `json:"username"`
		Password string `json:"password"`
	}
	if err := decodeBody(r, &in); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}
	sa, err := h.auth.SuperAdminLogin(r.Context(), in.Username, in.Password)
	if err != nil {
		writeServiceError(w, err)
		return
	}
	if err := h.sessions.IssueSuperAdmin(w, sa.ID, sa.Username); err != nil {
		writeServiceError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]string{"username": sa.Username, "redirect": "/admin/menu"})
}

func (h *AdminHandler) Logout(w http.ResponseWriter, r *http.Request) {
	h.sessions.Clear(w, security.SessionKindSuperAdmin)
	writeJSON(w, http.StatusOK, map[string]string{"message": "ログアウトしました"})
}

func (h *AdminHandler) RegisterOrganization(w http.ResponseWriter, r *http.Request) {
	var in struct {
		PrefectureName   string `json:"prefecture_name"`
		OrganizationName string `json:"organization_name"`
		ApplicationDate  string `json:"application_date"`
	}
	if err := decodeBody(r, &in); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}
	org, err := h.admin.RegisterOrganization(r.Context(), in.PrefectureName, in.OrganizationName, in.ApplicationDate)
	if err != nil {
		writeServiceError(w, err)
		return
	}
	writeJSON(w, http.StatusCreated, map[string]any{"organization_id": org.ID, "message": "自治体を登録しました"})
}

func (h *AdminHandler) DeactivateOrganization(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r, "id")
	if err != nil {
		writeError(w, http.StatusBadRequest, "invalid organization id")
		return
	}
	if err := h.admin.DeactivateOrganization(r.Context(), id); err != nil {
		writeServiceError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]string{"message": "自治体を無効化しました"})
}

func (h *AdminHandler) ListRegions(w http.ResponseWriter, r *http.Request) {
	regions, err := h.admin.ListRegions(r.Context(), r.URL.Query().Get("prefecture"))
	if err != nil {
		writeServiceError(w, err)
		return
	}
	if regions == nil {
		regions = []domain.RegisteredRegion{}
	}
	writeJSON(w, http.StatusOK, regions)
}

func (h *AdminHandler) AddPrefecture(w http.ResponseWriter, r *http.Request) {
	var in struct {
		Name string `json:"name"`
	}
	if err := decodeBody(r, &in); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}
	p, err := h.admin.AddPrefecture(r.Context(), in.Name)
	if err != nil {
		writeServiceError(w, err)
		return
	}
	writeJSON(w, http.StatusCreated, p)
}

func (h *AdminHandler) CreateAdminUser(w http.ResponseWriter, r *http.Request) {
	var in struct {
		OrganizationID int32  `json:"organization_id"`
		Username       string `json:"username"`
		Password       string `json:"password"`
		Role           string `json:"role"`
	}
	if err := decodeBody(r, &in); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}
	if err := h.admin.CreateAdminUser(r.Context(), in.OrganizationID, in.Username, in.Password, domain.AdminRole(in.Role)); err != nil {
		writeServiceError(w, err)
		return
	}
	writeJSON(w, http.StatusCreated, map[string]string{"message": "管理者アカウントを作成しました"})
}

func (h *AdminHandler) UpdateAdminUser(w http.ResponseWriter, r *http.Request) {
	username := mux.Vars(r)["username"]
	var in struct {
		OrganizationID int32  `json:"organization_id"`
		Role           string `json:"role"`
		NewPassword    string `json:"new_password"`
	}
	if err := decodeBody(r, &in); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}
	if err := h.admin.UpdateAdminUser(r.Context(), username, in.OrganizationID, domain.AdminRole(in.Role), in.NewPassword); err != nil {
		writeServiceError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]string{"message": "管理者アカウントを更新しました"})
}

func (h *AdminHandler) DeleteAdminUser(w http.ResponseWriter, r *http.Request) {
	username := mux.Vars(r)["username"]
	if err := h.admin.DeleteAdminUser(r.Context(), username); err != nil {
		writeServiceError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]string{"message": "管理者アカウントを削除しました"})
}

func (h *AdminHandler) ListAdminUsers(w http.ResponseWriter, r *http.Request) {
	users, err := h.admin.ListAdminUsers(r.Context())
	if err != nil {
		writeServiceError(w, err)
		return
	}
	if users == nil {
		users = []domain.AdminUser{}
	}
	writeJSON(w, http.StatusOK, users)
}

func (h *AdminHandler) CreateCategory(w http.ResponseWriter, r *http.Request) {
	var in struct {
		Name string `json:"category_name"`
	}
	if err := decodeBody(r, &in); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}
	c, err := h.admin.CreateCategory(r.Context(), in.Name)
	if err != nil {
		writeServiceError(w, err)
		return
	}
	writeJSON(w, http.StatusCreated, c)
}

func (h *AdminHandler) UpdateCategory(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r, "id")
	if err != nil {
		writeError(w, http.StatusBadRequest, "invalid category id")
		return
	}
	var in struct {
		Name string `json:"category_name"`
	}
	if err := decodeBody(r, &in); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}
	if err := h.admin.UpdateCategory(r.Context(), id, in.Name); err != nil {
		writeServiceError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]string{"message": "カテゴリを更新しました"})
}

func (h *AdminHandler) DeleteCategory(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r, "id")
	if err != nil {
		writeError(w, http.StatusBadRequest, "invalid category id")
		return
	}
	if err := h.admin.DeleteCategory(r.Context(), id); err != nil {
		writeServiceError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]string{"message": "カテゴリを削除しました"})
}

func (h *AdminHandler) CreateSuperAdmin(w http.ResponseWriter, r *http.Request) {
	var in struct {
		Username        string `json:"username"`
		Password        string `json:"password"`
		ConfirmPassword string `json:"confirm_password"`
	}
	if err := decodeBody(r, &in); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}
	if in.Password != in.ConfirmPassword {
		writeError(w, http.StatusBadRequest, "パスワードが一致しません")
		return
	}
	if err := h.admin.CreateSuperAdmin(r.Context(), in.Username, in.Password); err != nil {
		writeServiceError(w, err)
		return
	}
	writeJSON(w, http.StatusCreated, map[string]string{"message": "スーパー管理者を作成しました"})
}

func (h *AdminHandler) ListSuperAdmins(w http.ResponseWriter, r *http.Request) {
	admins, err := h.admin.ListSuperAdmins(r.Context())
	if err != nil {
		writeServiceError(w, err)
		return
	}
	if admins == nil {
		admins = []domain.SuperAdmin{}
	}
	writeJSON(w, http.StatusOK, admins)
}

func (h *AdminHandler) DeleteSuperAdmin(w http.ResponseWriter, r *http.Request) {
	sess := superAdminSession(r)
	username := mux.Vars(r)["username"]
	if err := h.admin.DeleteSuperAdmin(r.Context(), sess.Username, username); err != nil {
		writeServiceError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]string{"message": "スーパー管理者を削除しました"})
}
