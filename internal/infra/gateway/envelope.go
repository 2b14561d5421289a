package gateway

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"

	"payref-console/internal/pkg/errs"
)

// APIError is the single normalized failure shape for upstream responses:
// a human-readable message (preferring the server-supplied one) plus the
// original status code.
type APIError struct {
	StatusCode int
	Message    string
}

func (e *APIError) Error() string {
	return fmt.Sprintf("upstream error (status %d): %s", e.StatusCode, e.Message)
}

const fallbackErrorMessage = "The server returned an unexpected error. Please try again later."

// AsAPIError digs the normalized upstream error out of a wrapped chain, or
// nil when the failure never reached the remote API.
func AsAPIError(err error) *APIError {
	var apiErr *APIError
	if errors.As(err, &apiErr) {
		return apiErr
	}
	return nil
}

// errorBody covers the two message fields observed across upstream error
// envelopes.
type errorBody struct {
	Message         string `json:"message"`
	ResponseMessage string `json:"responseMessage"`
}

func normalizeError(status int, raw []byte) error {
	msg := fallbackErrorMessage
	var body errorBody
	if err := json.Unmarshal(raw, &body); err == nil {
		switch {
		case body.Message != "":
			msg = body.Message
		case body.ResponseMessage != "":
			msg = body.ResponseMessage
		}
	}

	apiErr := &APIError{StatusCode: status, Message: msg}
	switch {
	case status >= http.StatusInternalServerError:
		return errs.Mark(apiErr, errs.ErrTransientUpstream)
	case status == http.StatusUnauthorized:
		return errs.Mark(apiErr, errs.ErrAuthenticationFailed)
	case status == http.StatusNotFound:
		return errs.Mark(apiErr, errs.ErrPaymentNotFound)
	default:
		return apiErr
	}
}

// envelope matches the `{"data": ...}` wrapper most endpoints use. Responses
// without the wrapper are passed through untouched; this is the single
// normalization point for both shapes.
type envelope struct {
	Data json.RawMessage `json:"data"`
}

func unwrapEnvelope(raw []byte) []byte {
	var env envelope
	if err := json.Unmarshal(raw, &env); err != nil {
		return raw
	}
	if len(env.Data) == 0 || string(env.Data) == "null" {
		return raw
	}
	return env.Data
}

func marshalBody(body any) ([]byte, error) {
	payload, err := json.Marshal(body)
	if err != nil {
		return nil, errs.Wrap(err, "failed to serialize request body")
	}
	return payload, nil
}
