package kegbot

import "github.com/kegbot/client-go/internal/apierrors"

// Sentinel errors for errors.Is() checks against server-reported failures.
var (
	// ErrNotFound matches NotFoundError responses.
	ErrNotFound = apierrors.ErrNotFound

	// ErrServerError matches ServerError responses.
	ErrServerError = apierrors.ErrServerError

	// ErrBadRequest matches BadRequestError responses.
	ErrBadRequest = apierrors.ErrBadRequest

	// ErrNoAuthToken matches NoAuthTokenError responses.
	ErrNoAuthToken = apierrors.ErrNoAuthToken

	// ErrBadAPIKey matches BadApiKeyError responses.
	ErrBadAPIKey = apierrors.ErrBadAPIKey

	// ErrPermissionDenied matches PermissionDeniedError responses.
	ErrPermissionDenied = apierrors.ErrPermissionDenied

	// ErrInvalidResponse is returned when a response body is valid JSON
	// but matches neither the success nor the error envelope shape.
	ErrInvalidResponse = apierrors.ErrInvalidResponse
)

// ErrorKind identifies one of the error kinds the Kegweb API reports.
type ErrorKind = apierrors.ErrorKind

// Error kinds, one per server-side error code. KindError doubles as the
// fallback for unrecognized codes.
const (
	KindError            = apierrors.KindError
	KindNotFound         = apierrors.KindNotFound
	KindServerError      = apierrors.KindServerError
	KindBadRequest       = apierrors.KindBadRequest
	KindNoAuthToken      = apierrors.KindNoAuthToken
	KindBadAPIKey        = apierrors.KindBadAPIKey
	KindPermissionDenied = apierrors.KindPermissionDenied
)

// RemoteError is an error envelope reported by the server, carrying its
// mapped kind and the server's message (or the kind's default summary).
type RemoteError = apierrors.RemoteError

// NetworkError is a connection-level failure: DNS, refused connection,
// or connect timeout. Never part of the server error taxonomy.
type NetworkError = apierrors.NetworkError

// DecodeError is a response body that could not be decoded as a JSON
// envelope.
type DecodeError = apierrors.DecodeError
