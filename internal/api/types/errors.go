package types

import appErr "github.com/portfolio-studio/backend/pkg/errors"

// FromAppError converts an error into the wire representation. Internal
// causes are withheld; only code and message reach the client.
func FromAppError(err error) *APIError {
	if err == nil {
		return nil
	}
	if e, ok := err.(*appErr.AppError); ok {
		return &APIError{Code: string(e.Code), Message: e.Message, Fields: e.Fields}
	}
	return &APIError{Code: string(appErr.CodeUnknown), Message: "unexpected error"}
}
