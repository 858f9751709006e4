// Package canon maps heterogeneous input rows onto the single internal
// detainee record shape and validates field-level constraints
package canon

// Gender is the closed canonical gender set
type Gender string

// Canonical gender values. Unrecognized input coerces to GenderUnknown,
// it is never left empty
const (
	GenderMale    Gender = "male"
	GenderFemale  Gender = "female"
	GenderUnknown Gender = "unknown"
)

// Status is the closed canonical detention status set
type Status string

// Canonical status values. Unrecognized input coerces to StatusUnknown
const (
	StatusDetained    Status = "detained"
	StatusReleased    Status = "released"
	StatusDeceased    Status = "deceased"
	StatusDisappeared Status = "disappeared"
	StatusUnknown     Status = "unknown"
)

// Canonical field names used in aliases and validation errors
const (
	FieldFullName         = "full_name"
	FieldOriginalName     = "original_name"
	FieldDetentionDate    = "detention_date"
	FieldLastSeenLocation = "last_seen_location"
	FieldFacility         = "facility"
	FieldDescription      = "description"
	FieldAge              = "age"
	FieldGender           = "gender"
	FieldStatus           = "status"
	FieldContactInfo      = "contact_info"
	FieldOrganization     = "organization"
	FieldNotes            = "notes"
)

// Validation error codes
const (
	CodeMissingRequired = "missing_required"
	CodeInvalidAge      = "invalid_age"
	CodeInvalidDate     = "invalid_date"
	CodeUnknownEnum     = "unknown_enum"
)

// FieldError is one field-level validation failure. It never aborts a row
// on its own; a row accumulates every failure it has
type FieldError struct {
	Field string `json:"field"`
	Code  string `json:"code"`
	Raw   string `json:"raw,omitempty"`
}

// Record is a detainee entry in canonical shape. Raw text is preserved as
// received; the Normalized* shadows exist only for matching and are derived,
// never edited directly
type Record struct {
	FullName         string `json:"full_name"`
	OriginalName     string `json:"original_name,omitempty"`
	DetentionDate    string `json:"detention_date"` // canonical 2006-01-02, raw when unparseable
	LastSeenLocation string `json:"last_seen_location"`
	Facility         string `json:"facility,omitempty"`
	Description      string `json:"description,omitempty"`
	Age              int    `json:"age"`
	Gender           Gender `json:"gender"`
	Status           Status `json:"status"`
	ContactInfo      string `json:"contact_info"`
	Organization     string `json:"organization,omitempty"`
	Notes            string `json:"notes,omitempty"`

	NormalizedName     string `json:"-"`
	NormalizedLocation string `json:"-"`
}
