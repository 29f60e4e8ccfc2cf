package validation

import "strings"

// ContactRequest mirrors the fields needed for contact form validation.
type ContactRequest struct {
	Name    string
	Email   string
	Message string
}

// ValidateContactRequest checks the required contact form fields in order.
// A field that is absent, empty or whitespace-only counts as missing.
func ValidateContactRequest(req ContactRequest) []FieldError {
	var errs []FieldError

	required := []struct {
		field string
		value string
	}{
		{"name", req.Name},
		{"email", req.Email},
		{"message", req.Message},
	}

	for _, f := range required {
		if strings.TrimSpace(f.value) == "" {
			errs = append(errs, FieldError{Field: f.field, Message: f.field + " is required"})
		}
	}

	return errs
}
