package report

// MissingInfo is the placeholder the extraction service is instructed to
// use for any field it cannot source from the transcript. It is also
// enforced locally: empty string fields are filled with it before a
// record is handed back to callers.
const MissingInfo = "information missing from transcript"

// PersonDetails identifies the involved person.
type PersonDetails struct {
	Surname     string `json:"surname"`
	Given1      string `json:"given_1"`
	Given2      string `json:"given_2,omitempty"`
	SexType     string `json:"sex_type"`
	DateOfBirth string `json:"date_of_birth"`
}

// PersonAddress is the involved person's residence.
type PersonAddress struct {
	HouseOrBuildingNumber string `json:"house_or_building_number"`
	StreetAddress         string `json:"street_address"`
	ApartmentOrRoomNumber string `json:"apartment_or_room_number,omitempty"`
	CityTown              string `json:"city_town"`
	TypeOfResidence       string `json:"type_of_residence"`
}

// ContactInfo is how the involved person can be reached.
type ContactInfo struct {
	PhoneNumber       string `json:"phone_number"`
	PhoneType         string `json:"phone_type"`
	SocialMediaType   string `json:"social_media_type,omitempty"`
	SocialMediaHandle string `json:"social_media_handle,omitempty"`
	EmailAddress      string `json:"email_address,omitempty"`
}

// Record is the structured shape every report must carry, independent of
// report kind. Timestamps are free-form text; no parsing is applied.
type Record struct {
	OfficerFullNameAndBadgeNumber string        `json:"officer_full_name_and_badge_number"`
	OccurrenceNumber              string        `json:"occurrence_number"`
	OccurrenceType                string        `json:"occurrence_type"`
	ReportTime                    string        `json:"report_time"`
	OccurrenceTime                string        `json:"occurrence_time"`
	PersonsDetails                PersonDetails `json:"persons_details"`
	PersonsAddress                PersonAddress `json:"persons_address"`
	ContactInfo                   ContactInfo   `json:"contact_info"`
	InvolvementType               string        `json:"involvement_type"`
	Narrative                     string        `json:"narrative"`
	EndOfReportBadgeNumber        string        `json:"end_of_report_badge_number"`
}
