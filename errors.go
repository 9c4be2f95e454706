package valuedomain

import (
	"fmt"

	"github.com/pkg/errors"
)

var (
	// ErrDomainNotFound is returned when the vendor responds with DNS
	// configuration for a domain other than the one requested.
	ErrDomainNotFound = errors.New("domain not found")

	// ErrInvalidArguments is returned by UpdateRecord when type, name and
	// content are not all provided.
	ErrInvalidArguments = errors.New("type, name and content must be specified")
)

// MalformedZoneLineError indicates a zone line that could not be split into
// the vendor's `type name content` triplet.
type MalformedZoneLineError struct {
	// Number is the 1-based line number within the zone blob.
	Number int
	// Line is the offending line verbatim.
	Line string
}

func (e MalformedZoneLineError) Error() string {
	return fmt.Sprintf("malformed zone line %d: %q", e.Number, e.Line)
}

// RequestError is a non-success response from the Value-Domain API,
// carrying the error_msg field from the response body when present.
type RequestError struct {
	StatusCode int
	Message    string
}

func (e RequestError) Error() string {
	if e.Message == "" {
		return fmt.Sprintf("unexpected status code %d", e.StatusCode)
	}

	return fmt.Sprintf("status code %d: %s", e.StatusCode, e.Message)
}
