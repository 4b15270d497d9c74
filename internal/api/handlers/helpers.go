package handlers

import (
	"encoding/json"
	"errors"
	"net/http"

	"go.uber.org/zap"

	"github.com/portfolio-studio/backend/internal/api/types"
	"github.com/portfolio-studio/backend/internal/api/validators"
	appErr "github.com/portfolio-studio/backend/pkg/errors"
	"github.com/portfolio-studio/backend/pkg/logger"
)

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

// writeError is the single boundary mapping from the error taxonomy to HTTP.
// Internal causes are logged here and withheld from the response.
func writeError(w http.ResponseWriter, err error) {
	status := appErr.HTTPStatus(err)
	if status >= http.StatusInternalServerError {
		logger.L().Error("request failed", zap.Error(err))
		var ae *appErr.AppError
		if !errors.As(err, &ae) {
			err = appErr.New(appErr.CodeInternal, "internal error")
		} else {
			err = appErr.New(ae.Code, ae.Message)
		}
	}
	writeJSON(w, status, types.APIResponse{Success: false, Error: types.FromAppError(err)})
}

// decodeAndValidate decodes the JSON body into dst and runs struct
// validation, returning an invalid AppError that lists every failing field.
func decodeAndValidate(r *http.Request, dst any) error {
	if err := json.NewDecoder(r.Body).Decode(dst); err != nil {
		return appErr.Wrap(err, appErr.CodeInvalid, "invalid json")
	}
	return validators.Struct(dst)
}
