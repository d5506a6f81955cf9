package http

import (
	"net/http"

	"github.com/gorilla/mux"
)

// Handlers bundles everything the router needs.
type Handlers struct {
	Public    *PublicHandler
	Volunteer *VolunteerHandler
	Staff     *StaffHandler
	Admin     *AdminHandler
	Assets    *AssetHandler
}

// NewRouter wires the three surfaces: public, volunteer/staff
// self-service and the superadmin back-office.
func NewRouter(h Handlers, mw *Middleware) *mux.Router {
	r := mux.NewRouter()

	// Public catalog and reference data.
	r.HandleFunc("/api/recruitments", h.Public.ListRecruitments).Methods(http.MethodGet)
	r.HandleFunc("/api/recruitments/{id:[0-9]+}", h.Public.GetRecruitment).Methods(http.MethodGet)
	r.HandleFunc("/api/categories", h.Public.ListCategories).Methods(http.MethodGet)
	r.HandleFunc("/api/organizations", h.Public.ListOrganizations).Methods(http.MethodGet)
	r.HandleFunc("/api/prefectures", h.Public.ListPrefectures).Methods(http.MethodGet)
	r.HandleFunc("/api/municipalities", h.Public.ListMunicipalities).Methods(http.MethodGet)
	r.HandleFunc("/api/contact", h.Public.SubmitContactInquiry).Methods(http.MethodPost)
	r.HandleFunc("/api/recruitments/{id:[0-9]+}/inquiries", h.Volunteer.SubmitInquiry).Methods(http.MethodPost)

	// Volunteer self-service.
	r.HandleFunc("/api/volunteer/register", h.Volunteer.Register).Methods(http.MethodPost)
	r.HandleFunc("/api/volunteer/login", h.Volunteer.Login).Methods(http.MethodPost)
	r.HandleFunc("/api/volunteer/logout", h.Volunteer.Logout).Methods(http.MethodPost)
	r.HandleFunc("/api/volunteer/me", mw.RequireVolunteer(h.Volunteer.Me)).Methods(http.MethodGet)
	r.HandleFunc("/api/volunteer/profile", mw.RequireVolunteer(h.Volunteer.UpdateProfile)).Methods(http.MethodPut)
	r.HandleFunc("/api/volunteer/interests", mw.RequireVolunteer(h.Volunteer.ListInterests)).Methods(http.MethodGet)
	r.HandleFunc("/api/volunteer/interests", mw.RequireVolunteer(h.Volunteer.SetInterests)).Methods(http.MethodPost)
	r.HandleFunc("/api/volunteer/favorites", mw.RequireVolunteer(h.Volunteer.ListFavorites)).Methods(http.MethodGet)
	r.HandleFunc("/api/volunteer/favorites", mw.RequireVolunteer(h.Volunteer.SetFavorites)).Methods(http.MethodPost)
	r.HandleFunc("/api/volunteer/activities", mw.RequireVolunteer(h.Volunteer.ListActivities)).Methods(http.MethodGet)
	r.HandleFunc("/api/recruitments/{id:[0-9]+}/apply", mw.RequireVolunteer(h.Volunteer.Apply)).Methods(http.MethodPost)
	r.HandleFunc("/api/volunteer/certificates/{application_id:[0-9]+}", mw.RequireVolunteerPage(h.Volunteer.Certificate)).Methods(http.MethodGet)

	// Staff back-office.
	r.HandleFunc("/api/staff/login", h.Staff.Login).Methods(http.MethodPost)
	r.HandleFunc("/api/staff/logout", h.Staff.Logout).Methods(http.MethodPost)
	r.HandleFunc("/api/staff/context", mw.RequireStaff(h.Staff.Context)).Methods(http.MethodGet)
	r.HandleFunc("/api/staff/recruitments", mw.RequireStaff(h.Staff.ListRecruitments)).Methods(http.MethodGet)
	r.HandleFunc("/api/staff/recruitments", mw.RequireStaff(h.Staff.CreateRecruitment)).Methods(http.MethodPost)
	r.HandleFunc("/api/staff/recruitments/import", mw.RequireStaff(h.Staff.BulkImport)).Methods(http.MethodPost)
	r.HandleFunc("/api/staff/recruitments/import/template", mw.RequireStaffPage(h.Assets.DownloadImportTemplate)).Methods(http.MethodGet)
	r.HandleFunc("/api/staff/recruitments/{id:[0-9]+}", mw.RequireStaff(h.Staff.GetRecruitment)).Methods(http.MethodGet)
	r.HandleFunc("/api/staff/recruitments/{id:[0-9]+}", mw.RequireStaff(h.Staff.UpdateRecruitment)).Methods(http.MethodPut)
	r.HandleFunc("/api/staff/recruitments/{id:[0-9]+}/applicants", mw.RequireStaff(h.Staff.ListRecruitmentApplicants)).Methods(http.MethodGet)
	r.HandleFunc("/api/staff/applications", mw.RequireStaff(h.Staff.ListApplications)).Methods(http.MethodGet)
	r.HandleFunc("/api/staff/applications/approve", mw.RequireStaff(h.Staff.BatchApprove)).Methods(http.MethodPost)
	r.HandleFunc("/api/staff/applications/{id:[0-9]+}", mw.RequireStaff(h.Staff.GetApplication)).Methods(http.MethodGet)
	r.HandleFunc("/api/staff/applications/{id:[0-9]+}/status", mw.RequireStaff(h.Staff.UpdateApplicationStatus)).Methods(http.MethodPut)
	r.HandleFunc("/api/staff/volunteers", mw.RequireStaff(h.Staff.ListVolunteers)).Methods(http.MethodGet)
	r.HandleFunc("/api/staff/volunteers", mw.RequireStaff(h.Staff.CreateVolunteer)).Methods(http.MethodPost)
	r.HandleFunc("/api/staff/volunteers/invite", mw.RequireStaff(h.Staff.InviteVolunteer)).Methods(http.MethodPost)
	r.HandleFunc("/api/staff/volunteers/{id:[0-9]+}", mw.RequireStaff(h.Staff.GetVolunteer)).Methods(http.MethodGet)
	r.HandleFunc("/api/staff/volunteers/{id:[0-9]+}", mw.RequireStaff(h.Staff.UpdateVolunteer)).Methods(http.MethodPut)
	r.HandleFunc("/api/staff/volunteers/{id:[0-9]+}", mw.RequireStaff(h.Staff.DeleteVolunteer)).Methods(http.MethodDelete)
	r.HandleFunc("/api/staff/accounts", mw.RequireStaff(h.Staff.ListStaffAccounts)).Methods(http.MethodGet)
	r.HandleFunc("/api/staff/accounts", mw.RequireStaff(h.Staff.CreateStaffAccount)).Methods(http.MethodPost)

	// Platform superadmin.
	r.HandleFunc("/api/admin/login", h.Admin.Login).Methods(http.MethodPost)
	r.HandleFunc("/api/admin/logout", h.Admin.Logout).Methods(http.MethodPost)
	r.HandleFunc("/api/admin/organizations", mw.RequireSuperAdmin(h.Admin.RegisterOrganization)).Methods(http.MethodPost)
	r.HandleFunc("/api/admin/organizations/{id:[0-9]+}", mw.RequireSuperAdmin(h.Admin.DeactivateOrganization)).Methods(http.MethodDelete)
	r.HandleFunc("/api/admin/regions", mw.RequireSuperAdmin(h.Admin.ListRegions)).Methods(http.MethodGet)
	r.HandleFunc("/api/admin/prefectures", mw.RequireSuperAdmin(h.Admin.AddPrefecture)).Methods(http.MethodPost)
	r.HandleFunc("/api/admin/users", mw.RequireSuperAdmin(h.Admin.ListAdminUsers)).Methods(http.MethodGet)
	r.HandleFunc("/api/admin/users", mw.RequireSuperAdmin(h.Admin.CreateAdminUser)).Methods(http.MethodPost)
	r.HandleFunc("/api/admin/users/{username}", mw.RequireSuperAdmin(h.Admin.UpdateAdminUser)).Methods(http.MethodPut)
	r.HandleFunc("/api/admin/users/{username}", mw.RequireSuperAdmin(h.Admin.DeleteAdminUser)).Methods(http.MethodDelete)
	r.HandleFunc("/api/admin/categories", mw.RequireSuperAdmin(h.Admin.CreateCategory)).Methods(http.MethodPost)
	r.HandleFunc("/api/admin/categories/{id:[0-9]+}", mw.RequireSuperAdmin(h.Admin.UpdateCategory)).Methods(http.MethodPut)
	r.HandleFunc("/api/admin/categories/{id:[0-9]+}", mw.RequireSuperAdmin(h.Admin.DeleteCategory)).Methods(http.MethodDelete)
	r.HandleFunc("/api/admin/superadmins", mw.RequireSuperAdmin(h.Admin.ListSuperAdmins)).Methods(http.MethodGet)
	r.HandleFunc("/api/admin/superadmins", mw.RequireSuperAdmin(h.Admin.CreateSuperAdmin)).Methods(http.MethodPost)
	r.HandleFunc("/api/admin/superadmins/{username}", mw.RequireSuperAdmin(h.Admin.DeleteSuperAdmin)).Methods(http.MethodDelete)

	return r
}
