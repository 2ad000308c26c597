// Package fault defines the failure taxonomy shared by every component that
// talks to the upstream blockchain API.
//
// Each failure is reported as an error wrapping exactly one of the sentinel
// errors below, so callers can branch with errors.Is or collapse the error into
// a Kind with Classify.
package fault

import "errors"

var (
	// ErrNetwork indicates the request never produced a response
	// (connection refused, DNS failure, timeout, canceled context).
	ErrNetwork = errors.New("network error")

	// ErrResponse indicates the server answered with a non-2xx status.
	ErrResponse = errors.New("unexpected response status")

	// ErrParse indicates the response body is not valid JSON.
	ErrParse = errors.New("malformed response body")

	// ErrSchema indicates a well-formed payload that lacks an expected field or
	// index, or carries a field of the wrong type.
	ErrSchema = errors.New("unexpected response schema")
)

// Kind is the coarse classification of an error produced by this module.
type Kind int

const (
	KindNone Kind = iota
	KindNetwork
	KindResponse
	KindParse
	KindSchema
	KindUnknown
)

// String returns the lowercase name of the kind, suitable for logs and metric attributes.
func (k Kind) String() string {
	switch k {
	case KindNone:
		return "none"
	case KindNetwork:
		return "network"
	case KindResponse:
		return "response"
	case KindParse:
		return "parse"
	case KindSchema:
		return "schema"
	default:
		return "unknown"
	}
}

// Classify maps err to its Kind. A nil error is KindNone and an error that
// wraps none of the sentinels is KindUnknown.
func Classify(err error) Kind {
	switch {
	case err == nil:
		return KindNone
	case errors.Is(err, ErrNetwork):
		return KindNetwork
	case errors.Is(err, ErrResponse):
		return KindResponse
	case errors.Is(err, ErrParse):
		return KindParse
	case errors.Is(err, ErrSchema):
		return KindSchema
	default:
		return KindUnknown
	}
}
