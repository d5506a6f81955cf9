package domain

type RecruitmentStatus string

const (
	RecruitmentStatusDraft  RecruitmentStatus = "Draft"
	RecruitmentStatusOpen   RecruitmentStatus = "Open"
	RecruitmentStatusClosed RecruitmentStatus = "Closed"
)

// PublicStatus maps the internal status onto the vocabulary the
// front-end uses ('published', 'draft', 'closed').
func (s RecruitmentStatus) PublicStatus() string {
	switch s {
	case RecruitmentStatusOpen:
		return "published"
	case RecruitmentStatusClosed:
		return "closed"
	default:
		return "draft"
	}
}

// ParsePublicStatus converts the front-end vocabulary back.
// Unrecognized values land on Draft.
func ParsePublicStatus(s string) RecruitmentStatus {
	switch s {
	case "published":
		return RecruitmentStatusOpen
	case "closed":
		return RecruitmentStatusClosed
	default:
		return RecruitmentStatusDraft
	}
}

type Recruitment struct {
	ID             int32             `json:"id"`
	OrganizationID int32             `json:"organization_id"`
	Title          string            `json:"title"`
	Description    string            `json:"description"`
	StartDate      string            `json:"start_date"`
	EndDate        string            `json:"end_date"`
	ContactPhone   string            `json:"contact_phone_number"`
	ContactEmail   string            `json:"contact_email"`
	Status         RecruitmentStatus `json:"status"`
}

type Category struct {
	ID   int32  `json:"category_id"`
	Name string `json:"category_name"`
}

// PublicRecruitment is the public listing shape consumed by the
// front-end: organization name and the concatenated category string
// stand in for the join tables.
type PublicRecruitment struct {
	ID               int32  `json:"recruitment_id"`
	Title            string `json:"title"`
	Description      string `json:"description"`
	OrganizationName string `json:"organization_name"`
	Category         string `json:"category"`
}

type PublicRecruitmentDetail struct {
	ID           int32  `json:"recruitment_id"`
	Title        string `json:"title"`
	Description  string `json:"description"`
	StartDate    string `json:"start_date"`
	EndDate      string `json:"end_date"`
	ContactPhone string `json:"contact_phone_number"`
	ContactEmail string `json:"contact_email"`
	Category     string `json:"category"`
}

// StaffRecruitmentSummary is one row of the staff opportunity list.
type StaffRecruitmentSummary struct {
	ID           int32  `json:"id"`
	Title        string `json:"title"`
	Date         string `json:"date"`
	Deadline     string `json:"deadline"`
	Status       string `json:"status"`
	AppliedCount int32  `json:"applied_count"`
}

// StaffRecruitmentDetail carries the editable fields plus the fixed
// placeholder attributes older front-end code still expects.
type StaffRecruitmentDetail struct {
	ID             int32   `json:"id"`
	Title          string  `json:"title"`
	Description    string  `json:"description"`
	ActivityDate   string  `json:"activity_date"`
	Deadline       string  `json:"deadline"`
	PhoneNumber    string  `json:"phone_number"`
	Email          string  `json:"email"`
	Status         string  `json:"status"`
	AppliedCount   int32   `json:"applied_count"`
	Categories     []int32 `json:"categories"`
	TimeFrame      string  `json:"time_frame"`
	RequiredCount  int32   `json:"required_count"`
	Location       string  `json:"location"`
	RequiredSkills string  `json:"required_skills"`
}
