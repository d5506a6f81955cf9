package domain

type AdminRole string

const (
	AdminRoleOrgAdmin AdminRole = "OrgAdmin"
	AdminRoleStaff    AdminRole = "Staff"
)

// AdminUser is a municipal staff account, scoped to exactly one
// organization. The username doubles as the contact email address.
type AdminUser struct {
	ID               int32     `json:"admin_id"`
	OrganizationID   int32     `json:"organization_id"`
	OrganizationName string    `json:"organization_name,omitempty"`
	Username         string    `json:"username"`
	PasswordHash     string    `json:"-"`
	Role             AdminRole `json:"role"`
}

// SuperAdmin is a platform-level operator, not organization-scoped.
type SuperAdmin struct {
	ID           int32  `json:"super_admin_id"`
	Username     string `json:"username"`
	PasswordHash string `json:"-"`
}
