package domain

type Volunteer struct {
	ID             int32  `json:"id"`
	OrganizationID int32  `json:"organization_id"`
	Username       string `json:"username"`
	PasswordHash   string `json:"-"`
	FullName       string `json:"full_name"`
	NationalID     string `json:"mynumber"`
	Email          string `json:"email"`
	PhoneNumber    string `json:"phone_number"`
	BirthYear      *int32 `json:"birth_year"`
	Gender         string `json:"gender"`
	PostalCode     string `json:"postal_code"`
	Address        string `json:"address"`
	RegisteredOn   string `json:"registration_date"`
}

// VolunteerContact is the slice of a volunteer the notification
// dispatcher needs: who to address and where.
type VolunteerContact struct {
	FullName string `json:"full_name"`
	Email    string `json:"email"`
}
