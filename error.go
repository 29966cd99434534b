package flixsearch

import (
	"errors"
	"fmt"
)

// Application error codes.
const (
	ECONFLICT    = "conflict"
	EINTERNAL    = "internal"
	EINVALID     = "invalid"
	ENOTFOUND    = "not_found"
	EUNAVAILABLE = "unavailable"

	// ENOCOUNTRIES is returned by searches when the user has not activated
	// any country. It is distinct from an empty result set.
	ENOCOUNTRIES = "no_countries"
)

// Error represents an application-specific error.
type Error struct {
	Code    string
	Message string
}

// Error implements the error interface.
func (e *Error) Error() string {
	return e.Message
}

// Errorf is a helper function to return an Error with a given code and
// formatted message.
func Errorf(code string, format string, args ...any) *Error {
	return &Error{
		Code:    code,
		Message: fmt.Sprintf(format, args...),
	}
}

// ErrorCode unwraps an application error and returns its code.
// Fetch failures map to EUNAVAILABLE. Non-application errors always
// return EINTERNAL.
func ErrorCode(err error) string {
	if err == nil {
		return ""
	}
	var e *Error
	if errors.As(err, &e) {
		return e.Code
	}
	var fe *FetchError
	if errors.As(err, &fe) {
		return EUNAVAILABLE
	}
	return EINTERNAL
}

// ErrorMessage unwraps an application error and returns its message.
// Non-application errors always return "Internal error.".
func ErrorMessage(err error) string {
	if err == nil {
		return ""
	}
	var e *Error
	if errors.As(err, &e) {
		return e.Message
	}
	var fe *FetchError
	if errors.As(err, &fe) {
		return "could not reach search provider"
	}
	return "Internal error."
}

// FetchErrorKind classifies a FetchError.
type FetchErrorKind int

const (
	// FetchTransport covers network, DNS and timeout failures.
	FetchTransport FetchErrorKind = iota
	// FetchHTTPStatus means the provider answered with a non-2xx status.
	FetchHTTPStatus
)

// FetchError reports a failure to retrieve a search-results page.
type FetchError struct {
	Kind       FetchErrorKind
	StatusCode int
	URL        string
	Err        error
}

func (e *FetchError) Error() string {
	switch e.Kind {
	case FetchHTTPStatus:
		return fmt.Sprintf("HTTP %d for %s", e.StatusCode, e.URL)
	default:
		if e.Err == nil {
			return fmt.Sprintf("transport error for %s", e.URL)
		}
		return fmt.Sprintf("transport error for %s: %v", e.URL, e.Err)
	}
}

func (e *FetchError) Unwrap() error {
	return e.Err
}
