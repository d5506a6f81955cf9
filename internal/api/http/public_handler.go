package http

import (
	"net/http"

	"volunteerhub-backend/internal/domain"
	"volunteerhub-backend/internal/service"
)

// PublicHandler serves everything reachable without a session: the
// recruitment catalog, reference data and the contact form.
type PublicHandler struct {
	catalog   service.CatalogService
	admin     service.AdminService
	inquiries service.InquiryService
}

func NewPublicHandler(catalog service.CatalogService, admin service.AdminService, inquiries service.InquiryService) *PublicHandler {
	return &PublicHandler{
		catalog:   catalog,
		admin:     admin,
		inquiries: inquiries,
	}
}

func (h *PublicHandler) ListRecruitments(w http.ResponseWriter, r *http.Request) {
	orgID := queryInt32(r, "organization_id")
	prefectureID := queryInt32(r, "prefecture_id")
	category := r.URL.Query().Get("category")

	list, err := h.catalog.ListPublic(r.Context(), orgID, prefectureID, category)
	if err != nil {
		writeServiceError(w, err)
		return
	}
	if list == nil {
		list = []domain.PublicRecruitment{}
	}
	writeJSON(w, http.StatusOK, list)
}

func (h *PublicHandler) GetRecruitment(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r, "id")
	if err != nil {
		writeError(w, http.StatusBadRequest, "invalid recruitment id")
		return
	}
	detail, err := h.catalog.GetPublicDetail(r.Context(), id)
	if err != nil {
		writeServiceError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, detail)
}

func (h *PublicHandler) ListCategories(w http.ResponseWriter, r *http.Request) {
	cats, err := h.catalog.ListCategories(r.Context())
	if err != nil {
		writeServiceError(w, err)
		return
	}
	if cats == nil {
		cats = []domain.Category{}
	}
	writeJSON(w, http.StatusOK, cats)
}

func (h *PublicHandler) ListOrganizations(w http.ResponseWriter, r *http.Request) {
	orgs, err := h.admin.ListOrganizations(r.Context())
	if err != nil {
		writeServiceError(w, err)
		return
	}
	if orgs == nil {
		orgs = []domain.Organization{}
	}
	writeJSON(w, http.StatusOK, orgs)
}

func (h *PublicHandler) ListPrefectures(w http.ResponseWriter, r *http.Request) {
	prefs, err := h.admin.ListPrefectures(r.Context())
	if err != nil {
		writeServiceError(w, err)
		return
	}
	if prefs == nil {
		prefs = []domain.Prefecture{}
	}
	writeJSON(w, http.StatusOK, prefs)
}

// ListMunicipalities returns the active organizations of one
// prefecture; the parameter is mandatory.
func (h *PublicHandler) ListMunicipalities(w http.ResponseWriter, r *http.Request) {
	prefectureID := queryInt32(r, "prefecture_id")
	if prefectureID == 0 {
		writeError(w, http.StatusBadRequest, "prefecture_id is required")
		return
	}
	orgs, err := h.admin.ListOrganizationsByPrefecture(r.Context(), prefectureID)
	if err != nil {
		writeServiceError(w, err)
		return
	}
	if orgs == nil {
		orgs = []domain.Organization{}
	}
	writeJSON(w, http.StatusOK, orgs)
}

func (h *PublicHandler) SubmitContactInquiry(w http.ResponseWriter, r *http.Request) {
	var in domain.ContactInquiry
	if err := decodeBody(r, &in); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}
	if err := h.inquiries.SubmitContactInquiry(r.Context(), in); err != nil {
		writeServiceError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]string{"message": "お問い合わせを受け付けました"})
}
