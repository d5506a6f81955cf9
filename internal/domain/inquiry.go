package domain

// Inquiry is a per-recruitment question. VolunteerID is nil when the
// sender is not logged in; the record is write-only and the real
// delivery happens over email.
type Inquiry struct {
	ID            int32  `json:"inquiry_id"`
	RecruitmentID int32  `json:"recruitment_id"`
	VolunteerID   *int32 `json:"volunteer_id"`
	Text          string `json:"inquiry_text"`
	InquiryDate   string `json:"inquiry_date"`
}

// ContactInquiry is the public onboarding/contact form payload,
// relayed to the platform operator without persistence.
type ContactInquiry struct {
	MunicipalityName  string `json:"municipality_name"`
	ContactPersonName string `json:"contact_person_name"`
	ReplyEmail        string `json:"reply_email"`
	PhoneNumber       string `json:"phone_number"`
	Content           string `json:"inquiry_content"`
	InquiryType       string `json:"inquiry_type"`
}
