package contact

import "strings"

// Field names, matching the JSON keys of Form and Errors.
const (
	FieldName        = "name"
	FieldEmail       = "email"
	FieldCompany     = "company"
	FieldLicenseType = "licenseType"
	FieldMessage     = "message"
)

// Fields lists every form field in display order.
func Fields() []string {
	return []string{FieldName, FieldEmail, FieldCompany, FieldLicenseType, FieldMessage}
}

// Form is the contact form as typed by the visitor.
type Form struct {
	Name        string `json:"name"`
	Email       string `json:"email"`
	Company     string `json:"company"`
	LicenseType string `json:"licenseType"`
	Message     string `json:"message"`
}

// Trimmed returns a copy with surrounding whitespace removed from every field.
func (f Form) Trimmed() Form {
	return Form{
		Name:        strings.TrimSpace(f.Name),
		Email:       strings.TrimSpace(f.Email),
		Company:     strings.TrimSpace(f.Company),
		LicenseType: strings.TrimSpace(f.LicenseType),
		Message:     strings.TrimSpace(f.Message),
	}
}

// Errors parallels Form: one entry per field, empty meaning valid.
type Errors struct {
	Name        string `json:"name"`
	Email       string `json:"email"`
	Company     string `json:"company"`
	LicenseType string `json:"licenseType"`
	Message     string `json:"message"`
}

// Valid reports whether every field passed.
func (e Errors) Valid() bool {
	return e == Errors{}
}

// Get returns the error for a field name.
func (e Errors) Get(field string) string {
	switch field {
	case FieldName:
		return e.Name
	case FieldEmail:
		return e.Email
	case FieldCompany:
		return e.Company
	case FieldLicenseType:
		return e.LicenseType
	case FieldMessage:
		return e.Message
	}
	return ""
}

// Messages renders each error code as the text shown under the field.
func (e Errors) Messages() Errors {
	return Errors{
		Name:        Describe(FieldName, e.Name),
		Email:       Describe(FieldEmail, e.Email),
		Company:     Describe(FieldCompany, e.Company),
		LicenseType: Describe(FieldLicenseType, e.LicenseType),
		Message:     Describe(FieldMessage, e.Message),
	}
}

// LicenseTypes returns the selectable license categories.
func LicenseTypes() []string {
	return []string{
		"Enterprise Software",
		"Cloud Services",
		"Development Tools",
		"Security Solutions",
		"Database Licenses",
		"Other",
	}
}
