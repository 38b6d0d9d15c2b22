package contact

import (
	"regexp"
	"slices"
	"strings"
	"unicode/utf8"
)

// Error codes produced by Validate.
const (
	CodeRequired      = "required"
	CodeInvalidFormat = "invalid format"
	CodeMustSelect    = "must select one"
	CodeTooShort      = "too short"
)

// MinMessageLength is the shortest accepted message, in characters, after trimming.
const MinMessageLength = 10

// local@domain.tld where no part holds whitespace or '@'.
var emailPattern = regexp.MustCompile(`^[^\s\v\p{Z}\x{FEFF}@]+@[^\s\v\p{Z}\x{FEFF}@]+\.[^\s\v\p{Z}\x{FEFF}@]+$`)

// Validate checks every field independently and never fails; the result
// carries one code per field, empty when the field is valid.
func Validate(form Form) Errors {
	var errs Errors

	if strings.TrimSpace(form.Name) == "" {
		errs.Name = CodeRequired
	}

	// The shape check runs on the raw value, so padded addresses are rejected.
	if strings.TrimSpace(form.Email) == "" {
		errs.Email = CodeRequired
	} else if !emailPattern.MatchString(form.Email) {
		errs.Email = CodeInvalidFormat
	}

	if strings.TrimSpace(form.Company) == "" {
		errs.Company = CodeRequired
	}

	if !slices.Contains(LicenseTypes(), form.LicenseType) {
		errs.LicenseType = CodeMustSelect
	}

	message := strings.TrimSpace(form.Message)
	if message == "" {
		errs.Message = CodeRequired
	} else if utf8.RuneCountInString(message) < MinMessageLength {
		errs.Message = CodeTooShort
	}

	return errs
}

var fieldLabels = map[string]string{
	FieldName:    "Name",
	FieldEmail:   "Email",
	FieldCompany: "Company",
	FieldMessage: "Message",
}

// Describe turns a field error code into user-facing text. An empty code
// yields an empty string.
func Describe(field, code string) string {
	switch {
	case code == "":
		return ""
	case code == CodeRequired:
		if label, ok := fieldLabels[field]; ok {
			return label + " is required"
		}
		return "This field is required"
	case code == CodeInvalidFormat && field == FieldEmail:
		return "Please enter a valid email"
	case code == CodeMustSelect && field == FieldLicenseType:
		return "Please select a license type"
	case code == CodeTooShort && field == FieldMessage:
		return "Message must be at least 10 characters"
	}
	return code
}
