package llm

import (
	"encoding/json"
	"testing"

	"patrolscribe/internal/report"
)

func TestSanitizeRecordJSON(t *testing.T) {
	raw := []byte(`{
		"officer_full_name_and_badge_number": "  Constable Jane DOE #1024  ",
		"occurrence_number": "TB2026-004417",
		"occurrence_type": "Property Crime",
		"report_time": null,
		"occurrence_time": "14:30",
		"persons_details": {
			"surname": "SMITH",
			"given_1": "John",
			"sex_type": "Male",
			"date_of_birth": "1990-03-14"
		},
		"persons_address": {
			"house_or_building_number": "230",
			"street_address": "Amelia Street West",
			"city_town": "Thunder Bay",
			"type_of_residence": "Apartment"
		},
		"contact_info": {
			"phone_number": "807-555-0199",
			"phone_type": "Mobile",
			"email_address": ""
		},
		"involvement_type": "Complainant",
		"narrative": "Short narrative.",
		"end_of_report_badge_number": 1024,
		"confidence": 0.9
	}`)

	cleaned, filled, err := SanitizeRecordJSON(raw)
	if err != nil {
		t.Fatalf("SanitizeRecordJSON: %v", err)
	}

	var rec report.Record
	if err := json.Unmarshal(cleaned, &rec); err != nil {
		t.Fatalf("unmarshal cleaned: %v", err)
	}

	if rec.OfficerFullNameAndBadgeNumber != "Constable Jane DOE #1024" {
		t.Fatalf("officer field not trimmed: %q", rec.OfficerFullNameAndBadgeNumber)
	}
	if rec.ReportTime != report.MissingInfo {
		t.Fatalf("null report_time = %q, want sentinel", rec.ReportTime)
	}
	if rec.ContactInfo.EmailAddress != report.MissingInfo {
		t.Fatalf("empty email_address = %q, want sentinel", rec.ContactInfo.EmailAddress)
	}
	if rec.PersonsDetails.Given2 != report.MissingInfo {
		t.Fatalf("absent given_2 = %q, want sentinel", rec.PersonsDetails.Given2)
	}
	if rec.EndOfReportBadgeNumber != report.MissingInfo {
		t.Fatalf("non-string badge number = %q, want sentinel", rec.EndOfReportBadgeNumber)
	}
	if rec.OccurrenceTime != "14:30" {
		t.Fatalf("occurrence_time = %q, want 14:30", rec.OccurrenceTime)
	}

	wantFilled := map[string]bool{
		"report_time":                true,
		"contact_info.email_address": true,
		"persons_details.given_2":    true,
		"end_of_report_badge_number": true,
	}
	for _, path := range filled {
		delete(wantFilled, path)
	}
	for path := range wantFilled {
		t.Errorf("expected %s in filled paths, got %v", path, filled)
	}

	// Unknown keys are dropped so strict validation can pass.
	var m map[string]any
	if err := json.Unmarshal(cleaned, &m); err != nil {
		t.Fatalf("unmarshal cleaned map: %v", err)
	}
	if _, ok := m["confidence"]; ok {
		t.Fatal("unknown key survived sanitize")
	}

	if err := ValidateJSONAgainstSchema(BuildReportJSONSchema(), cleaned); err != nil {
		t.Fatalf("sanitized document failed schema validation: %v", err)
	}
}

func TestSanitizeRecordJSONRejectsMalformed(t *testing.T) {
	if _, _, err := SanitizeRecordJSON([]byte(`not json`)); err == nil {
		t.Fatal("malformed input did not error")
	}
}
