package service

import (
	"encoding/json"
	"errors"
	"log/slog"

	"connectrpc.com/connect"

	"github.com/mmynk/loofinder/internal/toilets"
)

// FieldErrorsHeader carries field-level validation messages as a JSON object
// in the error metadata of InvalidArgument responses.
const FieldErrorsHeader = "Field-Errors"

var (
	errNotLoggedIn     = errors.New("log in to continue")
	errSessionMismatch = errors.New("token does not belong to the current session")
)

// invalidArgument builds an InvalidArgument error with per-field messages.
func invalidArgument(fields map[string]string) *connect.Error {
	err := connect.NewError(connect.CodeInvalidArgument, &toilets.ValidationError{Fields: fields})
	if data, jerr := json.Marshal(fields); jerr == nil {
		err.Meta().Set(FieldErrorsHeader, string(data))
	}
	return err
}

// toConnectError maps store errors onto Connect codes.
func toConnectError(err error) error {
	switch {
	case errors.Is(err, toilets.ErrNotFound):
		return connect.NewError(connect.CodeNotFound, err)
	case errors.Is(err, toilets.ErrInvalidInput):
		if fields := toilets.FieldErrors(err); fields != nil {
			return invalidArgument(fields)
		}
		return connect.NewError(connect.CodeInvalidArgument, err)
	default:
		slog.Error("Unexpected store error", "error", err)
		return connect.NewError(connect.CodeInternal, err)
	}
}

// FieldErrors decodes the field messages attached to an InvalidArgument error.
func FieldErrors(err error) map[string]string {
	var connectErr *connect.Error
	if !errors.As(err, &connectErr) {
		return nil
	}
	raw := connectErr.Meta().Get(FieldErrorsHeader)
	if raw == "" {
		return nil
	}
	var fields map[string]string
	if json.Unmarshal([]byte(raw), &fields) != nil {
		return nil
	}
	return fields
}
