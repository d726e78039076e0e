package calendar

import (
	"fmt"
	"strings"

	"github.com/username/calendar-pdf-service/pkg/dateutil"
)

const (
	// MinYear and MaxYear bound the accepted year range
	MinYear = 1900
	MaxYear = 2100
)

// ValidationError reports a bad generation request. The message names the
// violated rule so the caller can correct the request.
type ValidationError struct {
	Message string
}

func (e *ValidationError) Error() string {
	return e.Message
}

func validationErrorf(format string, args ...interface{}) *ValidationError {
	return &ValidationError{Message: fmt.Sprintf(format, args...)}
}

// ValidateRequest checks a generation request before any rendering happens.
// Checks run in a fixed order and the first failure short-circuits:
// required fields, year/month range, overlay shape, day range, overlay type.
func ValidateRequest(req *Request) error {
	if req.Year == 0 || req.Month == 0 || req.Overlay == nil {
		return &ValidationError{Message: "Missing required fields: year, month, overlay"}
	}

	if req.Year < MinYear || req.Year > MaxYear || req.Month < 1 || req.Month > 12 {
		return &ValidationError{Message: "Invalid year or month"}
	}

	for _, spec := range req.Overlay {
		if len(spec.Days) == 0 || spec.Type == "" {
			return &ValidationError{Message: "Invalid overlay format"}
		}
	}

	daysInMonth := dateutil.DaysInMonth(req.Year, req.Month)
	for _, spec := range req.Overlay {
		for _, day := range spec.Days {
			if day < 1 || day > daysInMonth {
				return validationErrorf("Invalid day: must be between 1 and %d", daysInMonth)
			}
		}
	}

	for _, spec := range req.Overlay {
		if !spec.Type.IsValid() {
			return validationErrorf("Invalid overlay type: must be one of %s", allowedTypeList())
		}
	}

	return nil
}

func allowedTypeList() string {
	names := make([]string, len(ValidOverlayTypes))
	for i, t := range ValidOverlayTypes {
		names[i] = string(t)
	}
	return strings.Join(names, ", ")
}
