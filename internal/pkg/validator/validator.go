package validator

import (
	"regexp"
	"strings"
	"time"
)

const dateLayout = "2006-01-02"

type ValidationError struct {
	Field   string
	Message string
}

type ValidationErrors []ValidationError

func (v ValidationErrors) Error() string {
	var msgs []string
	for _, err := range v {
		msgs = append(msgs, err.Field+": "+err.Message)
	}
	return strings.Join(msgs, "; ")
}

func (v ValidationErrors) ToMap() map[string]string {
	result := make(map[string]string)
	for _, err := range v {
		result[err.Field] = err.Message
	}
	return result
}

// IsEmpty checks if a string is empty after trimming whitespace.
func IsEmpty(s string) bool {
	return strings.TrimSpace(s) == ""
}

// UUIDv7 regex: version 7 (the 15th character must be '7'), all lowercase hex digits.
var uuidv7Regex = regexp.MustCompile(`^[0-9a-f]{8}-[0-9a-f]{4}-7[0-9a-f]{3}-[89ab][0-9a-f]{3}-[0-9a-f]{12}$`)

// UUIDv7 validation
func IsValidUUID(uuid string) bool {
	return uuidv7Regex.MatchString(strings.ToLower(uuid))
}

// Numeric validation
var numericRegex = regexp.MustCompile(`^[0-9]+$`)

func IsNumeric(s string) bool {
	return numericRegex.MatchString(s)
}

// Date validation
func IsValidDate(dateStr string) (time.Time, bool) {
	date, err := time.Parse(dateLayout, dateStr)
	return date, err == nil
}

// Slice contains check
func IsInSlice(value string, slice []string) bool {
	for _, item := range slice {
		if item == value {
			return true
		}
	}
	return false
}

// ValidateDateRange checks a pair of inclusive YYYY-MM-DD bounds named from/to.
func ValidateDateRange(from, to string) ValidationErrors {
	var errs ValidationErrors

	fromDate, fromOK := IsValidDate(from)
	if !fromOK {
		errs = append(errs, ValidationError{
			Field:   "from",
			Message: "from must be in YYYY-MM-DD format",
		})
	}

	toDate, toOK := IsValidDate(to)
	if !toOK {
		errs = append(errs, ValidationError{
			Field:   "to",
			Message: "to must be in YYYY-MM-DD format",
		})
	}

	if fromOK && toOK && fromDate.After(toDate) {
		errs = append(errs, ValidationError{
			Field:   "to",
			Message: "to must not be before from",
		})
	}

	return errs
}
