package searcher

import (
	"errors"
	"fmt"
)

const (
	KindContentType = "content_type"
	KindDecode      = "decode"
	KindTransport   = "transport"
	KindTimeout     = "timeout"
	KindUnknown     = "unknown"
)

// UnexpectedContentTypeError is returned when the upstream service answers
// with something other than JSON, typically an HTML error or rate-limit page.
type UnexpectedContentTypeError struct {
	ContentType string
	Body        string
}

func (e *UnexpectedContentTypeError) Error() string {
	return fmt.Sprintf("unexpected content type %q: %s", e.ContentType, e.Body)
}

// DecodeError is returned when a JSON payload does not match the result shape.
type DecodeError struct {
	StatusCode int
	Err        error
}

func (e *DecodeError) Error() string {
	return fmt.Sprintf("decode failed (status %d): %v", e.StatusCode, e.Err)
}

func (e *DecodeError) Unwrap() error {
	return e.Err
}

// TransportError is returned when the request never produced a response.
type TransportError struct {
	Err error

	timeout bool
}

func NewTransportError(err error, timeout bool) *TransportError {
	return &TransportError{
		Err: err,

		timeout: timeout,
	}
}

func (e *TransportError) Error() string {
	if e.timeout {
		return "transport timeout: " + e.Err.Error()
	}

	return "transport failed: " + e.Err.Error()
}

func (e *TransportError) Unwrap() error {
	return e.Err
}

func (e *TransportError) Timeout() bool {
	return e.timeout
}

// Kind returns a short stable label for err, suitable for log and metric attributes.
func Kind(err error) string {
	var contentTypeErr *UnexpectedContentTypeError
	var decodeErr *DecodeError
	var transportErr *TransportError

	switch {
	case errors.As(err, &contentTypeErr):
		return KindContentType

	case errors.As(err, &decodeErr):
		return KindDecode

	case errors.As(err, &transportErr):
		if transportErr.Timeout() {
			return KindTimeout
		}

		return KindTransport
	}

	return KindUnknown
}

// UserMessage returns the text shown to end users for err. Diagnostics such as
// raw bodies and causes stay in the logs.
func UserMessage(err error) string {
	switch Kind(err) {
	case KindContentType:
		var contentTypeErr *UnexpectedContentTypeError
		errors.As(err, &contentTypeErr)

		if contentTypeErr.ContentType == "" {
			return "The search service returned an unexpected response."
		}

		return fmt.Sprintf("The search service returned an unexpected response (%s).", contentTypeErr.ContentType)

	case KindDecode:
		return "The search service response could not be understood."

	case KindTimeout:
		return "The search service did not respond in time."

	case KindTransport:
		return "The search service could not be reached."
	}

	return "Something went wrong while searching."
}
