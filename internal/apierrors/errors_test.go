package apierrors

import (
	"errors"
	"testing"
)

func TestKindTable(t *testing.T) {
	tests := []struct {
		kind    ErrorKind
		status  int
		summary string
	}{
		{KindError, 400, "An error occurred."},
		{KindNotFound, 404, "The requested object could not be found."},
		{KindServerError, 500, "The server had a problem fulfilling your request."},
		{KindBadRequest, 401, "The request was incompleted or malformed."},
		{KindNoAuthToken, 401, "An api_key is required."},
		{KindBadAPIKey, 401, "The api_key given is invalid."},
		{KindPermissionDenied, 401, "The api_key given does not have permission for this resource."},
	}

	for _, tt := range tests {
		t.Run(string(tt.kind), func(t *testing.T) {
			if got := tt.kind.HTTPStatus(); got != tt.status {
				t.Errorf("HTTPStatus() = %d, want %d", got, tt.status)
			}
			if got := tt.kind.DefaultSummary(); got != tt.summary {
				t.Errorf("DefaultSummary() = %q, want %q", got, tt.summary)
			}
		})
	}
}

func TestKindForCode(t *testing.T) {
	tests := []struct {
		code string
		want ErrorKind
	}{
		{"NotFoundError", KindNotFound},
		{"ServerError", KindServerError},
		{"BadRequestError", KindBadRequest},
		{"NoAuthTokenError", KindNoAuthToken},
		{"BadApiKeyError", KindBadAPIKey},
		{"PermissionDeniedError", KindPermissionDenied},
		{"Error", KindError},
		{"UnknownThing", KindError},
		{"", KindError},
		// Stringified HTTP statuses never match a wire code.
		{"404", KindError},
		{"500", KindError},
	}

	for _, tt := range tests {
		t.Run(tt.code, func(t *testing.T) {
			if got := KindForCode(tt.code); got != tt.want {
				t.Errorf("KindForCode(%q) = %v, want %v", tt.code, got, tt.want)
			}
		})
	}
}

func TestRemoteError_Summary(t *testing.T) {
	withMessage := NewRemoteError("NotFoundError", "gone")
	if withMessage.Summary() != "gone" {
		t.Errorf("Summary() = %q, want %q", withMessage.Summary(), "gone")
	}

	withoutMessage := NewRemoteError("NotFoundError", "")
	if withoutMessage.Summary() != "The requested object could not be found." {
		t.Errorf("Summary() = %q, want default summary", withoutMessage.Summary())
	}
}

func TestRemoteError_Error(t *testing.T) {
	err := NewRemoteError("BadApiKeyError", "")
	want := "BadApiKeyError: The api_key given is invalid."
	if err.Error() != want {
		t.Errorf("Error() = %q, want %q", err.Error(), want)
	}
}

func TestRemoteError_Is(t *testing.T) {
	tests := []struct {
		name     string
		kind     ErrorKind
		target   error
		expected bool
	}{
		{"not found matches ErrNotFound", KindNotFound, ErrNotFound, true},
		{"server error matches ErrServerError", KindServerError, ErrServerError, true},
		{"bad request matches ErrBadRequest", KindBadRequest, ErrBadRequest, true},
		{"no auth token matches ErrNoAuthToken", KindNoAuthToken, ErrNoAuthToken, true},
		{"bad api key matches ErrBadAPIKey", KindBadAPIKey, ErrBadAPIKey, true},
		{"permission denied matches ErrPermissionDenied", KindPermissionDenied, ErrPermissionDenied, true},
		{"generic matches nothing", KindError, ErrNotFound, false},
		{"not found does not match ErrServerError", KindNotFound, ErrServerError, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := &RemoteError{Kind: tt.kind}
			if got := errors.Is(err, tt.target); got != tt.expected {
				t.Errorf("errors.Is() = %v, want %v", got, tt.expected)
			}
		})
	}
}

func TestNetworkError_Unwrap(t *testing.T) {
	underlying := errors.New("connection refused")
	err := &NetworkError{Err: underlying, URL: "http://localhost:8000/api/taps"}

	if !errors.Is(err, underlying) {
		t.Error("errors.Is() did not match the underlying error")
	}
	if err.Error() != "network error: connection refused" {
		t.Errorf("Error() = %q", err.Error())
	}
}

func TestDecodeError_Unwrap(t *testing.T) {
	underlying := errors.New("unexpected end of JSON input")
	err := &DecodeError{Err: underlying}

	if !errors.Is(err, underlying) {
		t.Error("errors.Is() did not match the underlying error")
	}
}
