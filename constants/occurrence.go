package constants

import "strings"

// OccurrenceType is the canonical category of an incident. The set is
// closed: selections outside it must be rejected by callers, not mapped
// to "Other" silently.
type OccurrenceType string

const (
	DomesticDispute     OccurrenceType = "Domestic Dispute"
	ImpairedDriving     OccurrenceType = "Impaired Driving"
	PropertyCrime       OccurrenceType = "Property Crime"
	TrafficIncident     OccurrenceType = "Traffic Incident"
	DrugRelated         OccurrenceType = "Drug Related"
	InformationalReport OccurrenceType = "Informational Report"
	PublicDisorder      OccurrenceType = "Public Disorder"
	ViolentCrime        OccurrenceType = "Violent Crime"
	FraudAndFinancial   OccurrenceType = "Fraud and Financial"
	MissingPerson       OccurrenceType = "Missing Person"
	SexualOffense       OccurrenceType = "Sexual Offense"
	OtherOccurrence     OccurrenceType = "Other"
)

var allOccurrenceTypes = []OccurrenceType{
	DomesticDispute,
	ImpairedDriving,
	PropertyCrime,
	TrafficIncident,
	DrugRelated,
	InformationalReport,
	PublicDisorder,
	ViolentCrime,
	FraudAndFinancial,
	MissingPerson,
	SexualOffense,
	OtherOccurrence,
}

// AllOccurrenceTypes returns the categories in declaration order.
func AllOccurrenceTypes() []string {
	out := make([]string, 0, len(allOccurrenceTypes))
	for _, t := range allOccurrenceTypes {
		out = append(out, string(t))
	}
	return out
}

// ParseOccurrenceType matches case-insensitively against the closed set.
func ParseOccurrenceType(s string) (OccurrenceType, bool) {
	needle := strings.TrimSpace(s)
	for _, t := range allOccurrenceTypes {
		if strings.EqualFold(needle, string(t)) {
			return t, true
		}
	}
	return "", false
}
