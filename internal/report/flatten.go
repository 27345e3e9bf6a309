package report

import "strings"

// Flatten serializes a record into the line-oriented interchange text
// consumed by the edit and render stages: top-level fields first as
// "key: value" lines, then each nested group under an upper-case
// "GROUP NAME:" header with two-space indented sub-fields, one blank
// line between groups. Empty values are written as the sentinel so the
// rendered document never shows a hole.
func Flatten(r Record) string {
	var b strings.Builder

	writeField(&b, "officer_full_name_and_badge_number", r.OfficerFullNameAndBadgeNumber)
	writeField(&b, "occurrence_number", r.OccurrenceNumber)
	writeField(&b, "occurrence_type", r.OccurrenceType)
	writeField(&b, "report_time", r.ReportTime)
	writeField(&b, "occurrence_time", r.OccurrenceTime)
	b.WriteString("\n")

	writeGroup(&b, "persons_details", []kv{
		{"surname", r.PersonsDetails.Surname},
		{"given_1", r.PersonsDetails.Given1},
		{"given_2", r.PersonsDetails.Given2},
		{"sex_type", r.PersonsDetails.SexType},
		{"date_of_birth", r.PersonsDetails.DateOfBirth},
	})
	writeGroup(&b, "persons_address", []kv{
		{"house_or_building_number", r.PersonsAddress.HouseOrBuildingNumber},
		{"street_address", r.PersonsAddress.StreetAddress},
		{"apartment_or_room_number", r.PersonsAddress.ApartmentOrRoomNumber},
		{"city_town", r.PersonsAddress.CityTown},
		{"type_of_residence", r.PersonsAddress.TypeOfResidence},
	})
	writeGroup(&b, "contact_info", []kv{
		{"phone_number", r.ContactInfo.PhoneNumber},
		{"phone_type", r.ContactInfo.PhoneType},
		{"social_media_type", r.ContactInfo.SocialMediaType},
		{"social_media_handle", r.ContactInfo.SocialMediaHandle},
		{"email_address", r.ContactInfo.EmailAddress},
	})

	writeField(&b, "involvement_type", r.InvolvementType)
	b.WriteString("\n")
	writeField(&b, "narrative", r.Narrative)
	b.WriteString("\n")
	writeField(&b, "end_of_report_badge_number", r.EndOfReportBadgeNumber)

	return strings.TrimSpace(b.String())
}

type kv struct {
	key   string
	value string
}

func writeField(b *strings.Builder, name, value string) {
	b.WriteString(label(name))
	b.WriteString(": ")
	b.WriteString(orMissing(value))
	b.WriteString("\n")
}

func writeGroup(b *strings.Builder, name string, fields []kv) {
	b.WriteString(strings.ToUpper(label(name)))
	b.WriteString(":\n")
	for _, f := range fields {
		b.WriteString("  ")
		b.WriteString(label(f.key))
		b.WriteString(": ")
		b.WriteString(orMissing(f.value))
		b.WriteString("\n")
	}
	b.WriteString("\n")
}

func label(name string) string {
	return strings.ReplaceAll(name, "_", " ")
}

func orMissing(v string) string {
	if strings.TrimSpace(v) == "" {
		return MissingInfo
	}
	return v
}
