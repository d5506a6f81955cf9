package domain

type Organization struct {
	ID              int32  `json:"organization_id"`
	PrefectureID    int32  `json:"prefecture_id"`
	Name            string `json:"name"`
	IsActive        bool   `json:"is_active"`
	ApplicationDate string `json:"application_date"`
}

type Prefecture struct {
	ID   int32  `json:"prefecture_id"`
	Name string `json:"name"`
}

// RegisteredRegion pairs a prefecture with one of its active
// municipalities, for the superadmin regions listing.
type RegisteredRegion struct {
	PrefectureName   string `json:"prefecture_name"`
	OrganizationName string `json:"organization_name"`
	OrganizationID   int32  `json:"organization_id"`
}
