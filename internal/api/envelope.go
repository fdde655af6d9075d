package api

import (
	"encoding/json"
	"strconv"

	"github.com/kegbot/client-go/internal/apierrors"
)

// Envelope is the decoded top-level JSON object of a successful Kegweb
// response. Both success keys are preserved as raw JSON so the typed
// endpoint methods can project whichever one they expect.
type Envelope struct {
	Object  json.RawMessage
	Objects json.RawMessage
}

// wireError is the payload of an error envelope. Code and Message are
// both optional on the wire.
type wireError struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

// DecodeResponse turns a status code and response body into a decoded
// envelope or an error.
//
// The object, objects, and error keys are matched by presence, not value,
// so an explicit null still selects its branch. Malformed JSON yields a
// *apierrors.DecodeError; a body with none of the three keys yields
// apierrors.ErrInvalidResponse; an error envelope yields a
// *apierrors.RemoteError mapped through the kind taxonomy.
func DecodeResponse(statusCode int, body []byte) (*Envelope, error) {
	var fields map[string]json.RawMessage
	if err := json.Unmarshal(body, &fields); err != nil {
		return nil, &apierrors.DecodeError{Err: err}
	}

	if raw, ok := fields["error"]; ok {
		var we wireError
		if err := json.Unmarshal(raw, &we); err != nil {
			return nil, &apierrors.DecodeError{Err: err}
		}
		code := we.Code
		if code == "" {
			// The server omitted the code; fall back to the HTTP status.
			code = strconv.Itoa(statusCode)
		}
		return nil, apierrors.NewRemoteError(code, we.Message)
	}

	object, hasObject := fields["object"]
	objects, hasObjects := fields["objects"]
	if !hasObject && !hasObjects {
		return nil, apierrors.ErrInvalidResponse
	}

	return &Envelope{Object: object, Objects: objects}, nil
}

// DecodeObject unmarshals the singular result into v. It is an error to
// call this on an envelope that carried no "object" key.
func (e *Envelope) DecodeObject(v any) error {
	if e.Object == nil {
		return apierrors.ErrInvalidResponse
	}
	if err := json.Unmarshal(e.Object, v); err != nil {
		return &apierrors.DecodeError{Err: err}
	}
	return nil
}

// DecodeObjects unmarshals the plural result into v. It is an error to
// call this on an envelope that carried no "objects" key.
func (e *Envelope) DecodeObjects(v any) error {
	if e.Objects == nil {
		return apierrors.ErrInvalidResponse
	}
	if err := json.Unmarshal(e.Objects, v); err != nil {
		return &apierrors.DecodeError{Err: err}
	}
	return nil
}
