package domain

type ApplicationStatus string

const (
	ApplicationStatusPending  ApplicationStatus = "Pending"
	ApplicationStatusApproved ApplicationStatus = "Approved"
	ApplicationStatusRejected ApplicationStatus = "Rejected"
)

func (s ApplicationStatus) Valid() bool {
	switch s {
	case ApplicationStatusPending, ApplicationStatusApproved, ApplicationStatusRejected:
		return true
	}
	return false
}

type Application struct {
	ID              int32             `json:"application_id"`
	RecruitmentID   int32             `json:"recruitment_id"`
	VolunteerID     int32             `json:"volunteer_id"`
	ApplicationDate string            `json:"application_date"`
	Status          ApplicationStatus `json:"status"`
}

// Applicant is one row of the per-recruitment applicant listing.
type Applicant struct {
	ID     int32             `json:"id"`
	Name   string            `json:"name"`
	Email  string            `json:"email"`
	Status ApplicationStatus `json:"status"`
}

// OrgApplication is one row of the org-wide application listing.
type OrgApplication struct {
	ApplicationID     int32             `json:"application_id"`
	ApplicationDate   string            `json:"application_date"`
	Status            ApplicationStatus `json:"application_status"`
	ApplicantName     string            `json:"applicant_name"`
	ApplicantUsername string            `json:"applicant_username"`
	OpportunityTitle  string            `json:"opportunity_title"`
}

// ApplicationDetail joins the application with the volunteer, the
// recruitment and the owning organization's admin contact.
type ApplicationDetail struct {
	ApplicationID    int32             `json:"application_id"`
	ApplicationDate  string            `json:"application_date"`
	Status           ApplicationStatus `json:"application_status"`
	VolunteerID      int32             `json:"volunteer_id"`
	ApplicantName    string            `json:"applicant_name"`
	ApplicantEmail   string            `json:"applicant_email"`
	ApplicantPhone   string            `json:"applicant_phone"`
	RecruitmentID    int32             `json:"recruitment_id"`
	RecruitmentTitle string            `json:"recruitment_title"`
	Description      string            `json:"recruitment_description"`
	StartDate        string            `json:"start_date"`
	EndDate          string            `json:"end_date"`
	OrganizationName string            `json:"organization_name"`
	ManagerName      string            `json:"manager_name"`
}

// Activity is one row of a volunteer's own application history.
type Activity struct {
	ApplicationID   int32             `json:"application_id"`
	RecruitmentID   int32             `json:"recruitment_id"`
	Title           string            `json:"title"`
	Description     string            `json:"description"`
	StartDate       string            `json:"start_date"`
	EndDate         string            `json:"end_date"`
	ApplicationDate string            `json:"application_date"`
	Status          ApplicationStatus `json:"application_status"`
}

// CertificateData is the consistent (application, recruitment,
// volunteer) triple the certificate renderer works from.
type CertificateData struct {
	VolunteerName string
	Title         string
	Description   string
	StartDate     string
	EndDate       string
}
