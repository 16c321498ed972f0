package api

import (
	"regexp"
	"time"

	"officina/internal/entities"
)

var startDatePattern = regexp.MustCompile(`^\d{4}-\d{2}-\d{2}$`)

// ValidateAvailabilityRequest checks a decoded JSON body against the request
// contract: services and repairs must be arrays of strings (non-string
// elements are filtered out), at least one entry must remain across both,
// and startDate, when present, must be a real YYYY-MM-DD calendar date.
func ValidateAvailabilityRequest(body any) (entities.AvailabilityRequest, []FieldError) {
	obj, ok := body.(map[string]any)
	if !ok {
		return entities.AvailabilityRequest{}, []FieldError{{Field: "body", Message: "Request body must be a JSON object"}}
	}

	var errs []FieldError

	services, ok := stringSlice(obj["services"])
	if !ok {
		errs = append(errs, FieldError{Field: "services", Message: "services must be an array of strings"})
	}
	repairs, ok := stringSlice(obj["repairs"])
	if !ok {
		errs = append(errs, FieldError{Field: "repairs", Message: "repairs must be an array of strings"})
	}

	if len(services) == 0 && len(repairs) == 0 {
		errs = append(errs, FieldError{Field: "request", Message: "At least one service or repair must be requested"})
	}

	var startDate string
	if raw, present := obj["startDate"]; present && raw != nil {
		s, isString := raw.(string)
		switch {
		case !isString:
			errs = append(errs, FieldError{Field: "startDate", Message: "startDate must be a string (YYYY-MM-DD)"})
		case !startDatePattern.MatchString(s):
			errs = append(errs, FieldError{Field: "startDate", Message: "startDate must be YYYY-MM-DD"})
		default:
			if _, err := time.ParseInLocation("2006-01-02", s, time.UTC); err != nil {
				errs = append(errs, FieldError{Field: "startDate", Message: "startDate must be a valid date"})
			} else {
				startDate = s
			}
		}
	}

	if len(errs) > 0 {
		return entities.AvailabilityRequest{}, errs
	}
	return entities.AvailabilityRequest{
		Services:  services,
		Repairs:   repairs,
		StartDate: startDate,
	}, nil
}

// stringSlice extracts the string elements of a decoded JSON array, dropping
// anything else. A missing or non-array value reports false with an empty
// slice so validation can both flag the field and keep going.
func stringSlice(raw any) ([]string, bool) {
	arr, ok := raw.([]any)
	if !ok {
		return []string{}, false
	}
	out := make([]string, 0, len(arr))
	for _, v := range arr {
		if s, isString := v.(string); isString {
			out = append(out, s)
		}
	}
	return out, true
}
