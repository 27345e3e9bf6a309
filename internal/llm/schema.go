package llm

// BuildReportJSONSchema returns a JSON-Schema (draft 2020-12 subset) as a
// generic map. We pass this to the model as a structured output constraint
// and also use it locally to validate the returned document.
func BuildReportJSONSchema() map[string]any {
	personsDetails := objectProp(map[string]any{
		"surname":       textProp(),
		"given_1":       textProp(),
		"given_2":       textProp(),
		"sex_type":      textProp(),
		"date_of_birth": textProp(),
	}, []string{"surname", "given_1", "sex_type", "date_of_birth"})

	personsAddress := objectProp(map[string]any{
		"house_or_building_number": textProp(),
		"street_address":           textProp(),
		"apartment_or_room_number": textProp(),
		"city_town":                textProp(),
		"type_of_residence":        textProp(),
	}, []string{"house_or_building_number", "street_address", "city_town", "type_of_residence"})

	contactInfo := objectProp(map[string]any{
		"phone_number":        textProp(),
		"phone_type":          textProp(),
		"social_media_type":   textProp(),
		"social_media_handle": textProp(),
		"email_address":       textProp(),
	}, []string{"phone_number", "phone_type"})

	return objectProp(map[string]any{
		"officer_full_name_and_badge_number": textProp(),
		"occurrence_number":                  textProp(),
		"occurrence_type":                    textProp(),
		"report_time":                        textProp(),
		"occurrence_time":                    textProp(),
		"persons_details":                    personsDetails,
		"persons_address":                    personsAddress,
		"contact_info":                       contactInfo,
		"involvement_type":                   textProp(),
		"narrative":                          textProp(),
		"end_of_report_badge_number":         textProp(),
	}, []string{
		"officer_full_name_and_badge_number",
		"occurrence_number",
		"occurrence_type",
		"report_time",
		"occurrence_time",
		"persons_details",
		"persons_address",
		"contact_info",
		"involvement_type",
		"narrative",
		"end_of_report_badge_number",
	})
}

func textProp() map[string]any {
	return map[string]any{"type": "string", "minLength": 1}
}

func objectProp(props map[string]any, required []string) map[string]any {
	return map[string]any{
		"type":                 "object",
		"additionalProperties": false,
		"properties":           props,
		"required":             required,
	}
}
