// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

// Package respond writes every JSON response of the API.
//
// Handlers, the login filter, the entry point and the access-denied handler
// all go through [Error], so a 401 from the pipeline and a 404 from a handler
// share one body shape: {status, message, fieldErrors?}.
package respond

import (
	"encoding/json"
	"log/slog"
	"net/http"

	"github.com/taibuivan/memberauth/internal/platform/apperr"
	"github.com/taibuivan/memberauth/internal/platform/ctxutil"
	"github.com/taibuivan/memberauth/pkg/pagination"
)

// SuccessEnvelope wraps a single resource.
type SuccessEnvelope struct {
	Data any `json:"data"`
}

// PaginatedEnvelope wraps one page of a list.
type PaginatedEnvelope struct {
	Data     any                 `json:"data"`
	PageInfo pagination.PageInfo `json:"pageInfo"`
}

// ErrorBody is the body of every non-2xx response.
type ErrorBody struct {
	Status      int                 `json:"status"`
	Message     string              `json:"message"`
	FieldErrors []apperr.FieldError `json:"fieldErrors,omitempty"`
}

// JSON marshals payload before touching the writer, so an encoding failure
// still produces a clean 500 instead of a truncated body.
func JSON(writer http.ResponseWriter, statusCode int, payload any) {
	body, err := json.Marshal(payload)
	if err != nil {
		slog.Default().Error("response_encode_failed", slog.Any("error", err))
		http.Error(writer, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
		return
	}

	writer.Header().Set("Content-Type", "application/json")
	writer.WriteHeader(statusCode)
	_, _ = writer.Write(body)
}

func OK(writer http.ResponseWriter, data any) {
	JSON(writer, http.StatusOK, SuccessEnvelope{Data: data})
}

func Created(writer http.ResponseWriter, data any) {
	JSON(writer, http.StatusCreated, SuccessEnvelope{Data: data})
}

func Paginated(writer http.ResponseWriter, data any, pageInfo pagination.PageInfo) {
	JSON(writer, http.StatusOK, PaginatedEnvelope{Data: data, PageInfo: pageInfo})
}

func NoContent(writer http.ResponseWriter) {
	writer.WriteHeader(http.StatusNoContent)
}

// Error writes err as an [ErrorBody]. An error that is not an [*apperr.AppError]
// becomes a generic 500; its text and any 5xx cause are logged, never sent.
func Error(writer http.ResponseWriter, request *http.Request, err error) {
	appError := apperr.As(err)
	if appError == nil {
		appError = apperr.Internal(err)
	}

	if appError.HTTPStatus >= http.StatusInternalServerError {
		ctxutil.GetLogger(request.Context()).ErrorContext(request.Context(), "api_server_error",
			slog.String("code", string(appError.Code)),
			slog.Any("cause", appError.Cause),
		)
	}

	JSON(writer, appError.HTTPStatus, ErrorBody{
		Status:      appError.HTTPStatus,
		Message:     appError.Message,
		FieldErrors: appError.Details,
	})
}
