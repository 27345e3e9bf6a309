package llm

import (
	"encoding/json"
	"fmt"
	"strings"

	"patrolscribe/internal/report"
)

var topLevelFields = []string{
	"officer_full_name_and_badge_number",
	"occurrence_number",
	"occurrence_type",
	"report_time",
	"occurrence_time",
	"involvement_type",
	"narrative",
	"end_of_report_badge_number",
}

var groupFields = map[string][]string{
	"persons_details": {"surname", "given_1", "given_2", "sex_type", "date_of_birth"},
	"persons_address": {"house_or_building_number", "street_address", "apartment_or_room_number", "city_town", "type_of_residence"},
	"contact_info":    {"phone_number", "phone_type", "social_media_type", "social_media_handle", "email_address"},
}

// SanitizeRecordJSON normalizes a raw model document before unmarshal:
// - trims string leaves
// - replaces null / empty / absent / non-string leaves with the sentinel
// - removes unknown keys (strict additionalProperties = false friendliness)
// It returns the list of touched paths for logging.
func SanitizeRecordJSON(raw []byte) ([]byte, []string, error) {
	var m map[string]any
	if err := json.Unmarshal(raw, &m); err != nil {
		return nil, nil, fmt.Errorf("sanitize: decode: %w", err)
	}

	var filled []string

	clean := make(map[string]any, len(topLevelFields)+len(groupFields))
	for _, k := range topLevelFields {
		v, touched := sanitizeLeaf(m[k])
		clean[k] = v
		if touched {
			filled = append(filled, k)
		}
	}
	for group, subs := range groupFields {
		nested, _ := m[group].(map[string]any)
		cleanGroup := make(map[string]any, len(subs))
		for _, k := range subs {
			v, touched := sanitizeLeaf(nested[k])
			cleanGroup[k] = v
			if touched {
				filled = append(filled, group+"."+k)
			}
		}
		clean[group] = cleanGroup
	}

	b, err := json.Marshal(clean)
	if err != nil {
		return nil, nil, fmt.Errorf("sanitize: encode: %w", err)
	}
	return b, filled, nil
}

// sanitizeLeaf coerces one leaf to a usable string and reports whether
// the sentinel had to be substituted.
func sanitizeLeaf(v any) (string, bool) {
	s, ok := v.(string)
	if !ok {
		return report.MissingInfo, true
	}
	s = strings.TrimSpace(s)
	if s == "" || strings.EqualFold(s, "null") {
		return report.MissingInfo, true
	}
	return s, false
}
