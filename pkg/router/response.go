package router

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"

	"github.com/inkwell-lab/backend/pkg/errorx"
	"github.com/inkwell-lab/backend/pkg/xcontext"
)

type response struct {
	Code   int64             `json:"code"`
	Error  string            `json:"error,omitempty"`
	Fields map[string]string `json:"fields,omitempty"`
	Data   any               `json:"data,omitempty"`
}

func writeResponse(ctx context.Context, w http.ResponseWriter, req *http.Request) {
	if err := Error(ctx); err != nil {
		var errx errorx.Error
		if !errors.As(err, &errx) {
			errx = errorx.Unknown
		}

		// Web flows send anonymous users to the login page instead of an
		// error body.
		loginURL := xcontext.Configs(ctx).ApiServer.LoginURL
		if errx.Code == errorx.Unauthenticated && loginURL != "" {
			http.Redirect(w, req, loginURL, http.StatusFound)
			return
		}

		writeJSON(w, httpStatus(errx.Code), response{
			Code:   int64(errx.Code),
			Error:  errx.Message,
			Fields: errx.Fields,
		})
		return
	}

	if resp := Response(ctx); resp != nil {
		writeJSON(w, http.StatusOK, response{Code: 0, Data: resp})
	}
}

func httpStatus(code errorx.Code) int {
	switch code {
	case errorx.BadRequest, errorx.ValidationFailure:
		return http.StatusBadRequest
	case errorx.Unauthenticated:
		return http.StatusUnauthorized
	case errorx.PermissionDenied:
		return http.StatusForbidden
	case errorx.NotFound:
		return http.StatusNotFound
	case errorx.AlreadyExists:
		return http.StatusConflict
	default:
		return http.StatusInternalServerError
	}
}

func writeNotFound(w http.ResponseWriter) {
	writeJSON(w, http.StatusNotFound, response{
		Code:  int64(errorx.NotFound),
		Error: "Page not found",
	})
}

func writeJSON(w http.ResponseWriter, status int, resp response) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(resp); err != nil {
		// The status line is already out; nothing more we can do here.
		return
	}
}
