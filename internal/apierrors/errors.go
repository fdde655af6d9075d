// Package apierrors provides shared error types for the Kegweb client.
package apierrors

import (
	"errors"
	"fmt"
)

// Sentinel errors for errors.Is() checks
var (
	// ErrNotFound is returned when the requested object does not exist.
	ErrNotFound = errors.New("object not found")

	// ErrServerError is returned when the server fails to fulfill a request.
	ErrServerError = errors.New("server error")

	// ErrBadRequest is returned when the server rejects a malformed request.
	ErrBadRequest = errors.New("bad request")

	// ErrNoAuthToken is returned when the server requires an api_key.
	ErrNoAuthToken = errors.New("api_key required")

	// ErrBadAPIKey is returned when the configured api_key is invalid.
	ErrBadAPIKey = errors.New("invalid api_key")

	// ErrPermissionDenied is returned when the api_key lacks permission.
	ErrPermissionDenied = errors.New("permission denied")

	// ErrInvalidResponse is returned when a response body is valid JSON
	// but carries neither a result nor an error.
	ErrInvalidResponse = errors.New("invalid response from server: missing result or error")
)

// ErrorKind identifies one of the error kinds the Kegweb API reports.
// The kind values are the wire codes the server uses in error envelopes.
type ErrorKind string

const (
	// KindError is the generic kind used for unrecognized codes.
	KindError ErrorKind = "Error"
	// KindNotFound indicates the requested object does not exist.
	KindNotFound ErrorKind = "NotFoundError"
	// KindServerError indicates a server-side failure.
	KindServerError ErrorKind = "ServerError"
	// KindBadRequest indicates an incomplete or malformed request.
	KindBadRequest ErrorKind = "BadRequestError"
	// KindNoAuthToken indicates a request that required an api_key.
	KindNoAuthToken ErrorKind = "NoAuthTokenError"
	// KindBadAPIKey indicates the supplied api_key is invalid.
	KindBadAPIKey ErrorKind = "BadApiKeyError"
	// KindPermissionDenied indicates the api_key lacks permission.
	KindPermissionDenied ErrorKind = "PermissionDeniedError"
)

// kindInfo carries the per-kind defaults used when the server omits a
// message, or when callers need the status conventionally paired with
// a kind.
type kindInfo struct {
	status  int
	summary string
}

var kindTable = map[ErrorKind]kindInfo{
	KindError:            {400, "An error occurred."},
	KindNotFound:         {404, "The requested object could not be found."},
	KindServerError:      {500, "The server had a problem fulfilling your request."},
	KindBadRequest:       {401, "The request was incompleted or malformed."},
	KindNoAuthToken:      {401, "An api_key is required."},
	KindBadAPIKey:        {401, "The api_key given is invalid."},
	KindPermissionDenied: {401, "The api_key given does not have permission for this resource."},
}

// KindForCode maps a server-reported error code to its kind. Unrecognized
// codes, including the stringified HTTP status used as a fallback when the
// server omits the code, map to KindError.
func KindForCode(code string) ErrorKind {
	kind := ErrorKind(code)
	if _, ok := kindTable[kind]; ok {
		return kind
	}
	return KindError
}

// HTTPStatus returns the HTTP status conventionally paired with the kind.
func (k ErrorKind) HTTPStatus() int {
	if info, ok := kindTable[k]; ok {
		return info.status
	}
	return kindTable[KindError].status
}

// DefaultSummary returns the human-readable message used when the server
// does not supply one.
func (k ErrorKind) DefaultSummary() string {
	if info, ok := kindTable[k]; ok {
		return info.summary
	}
	return kindTable[KindError].summary
}

// RemoteError represents an error envelope reported by the Kegweb server.
type RemoteError struct {
	Kind    ErrorKind
	Code    string // code as sent by the server, or the stringified status
	Message string // server-supplied message, may be empty
}

// NewRemoteError builds a RemoteError from a wire code and optional message.
func NewRemoteError(code, message string) *RemoteError {
	return &RemoteError{
		Kind:    KindForCode(code),
		Code:    code,
		Message: message,
	}
}

// Summary returns the server's message, or the kind's default summary
// when the server did not supply one.
func (e *RemoteError) Summary() string {
	if e.Message != "" {
		return e.Message
	}
	return e.Kind.DefaultSummary()
}

func (e *RemoteError) Error() string {
	return fmt.Sprintf("%s: %s", e.Kind, e.Summary())
}

// Is implements errors.Is for sentinel error matching.
func (e *RemoteError) Is(target error) bool {
	switch e.Kind {
	case KindNotFound:
		return target == ErrNotFound
	case KindServerError:
		return target == ErrServerError
	case KindBadRequest:
		return target == ErrBadRequest
	case KindNoAuthToken:
		return target == ErrNoAuthToken
	case KindBadAPIKey:
		return target == ErrBadAPIKey
	case KindPermissionDenied:
		return target == ErrPermissionDenied
	}
	return false
}

// NetworkError represents a network-level failure: DNS resolution,
// connection refused, or a connect timeout. Network failures are never
// mapped through the error kind taxonomy.
type NetworkError struct {
	Err error
	URL string
}

func (e *NetworkError) Error() string {
	return fmt.Sprintf("network error: %v", e.Err)
}

// Unwrap returns the underlying error.
func (e *NetworkError) Unwrap() error {
	return e.Err
}

// DecodeError represents a response body that could not be decoded as a
// JSON envelope. Like network failures, decode failures are distinct from
// the taxonomy of server-reported errors.
type DecodeError struct {
	Err error
}

func (e *DecodeError) Error() string {
	return fmt.Sprintf("decode response: %v", e.Err)
}

// Unwrap returns the underlying error.
func (e *DecodeError) Unwrap() error {
	return e.Err
}
