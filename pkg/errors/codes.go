package errors

type Code string

const (
	CodeUnknown          Code = "UNKNOWN"
	CodeInvalidReference Code = "INVALID_REFERENCE"
	CodeNotFound         Code = "NOT_FOUND"
	CodeConsentRequired  Code = "CONSENT_REQUIRED"
	CodeValidation       Code = "VALIDATION_ERROR"
	CodeConflictRace     Code = "CONFLICT_RACE"
	CodeInternal         Code = "INTERNAL"
)
