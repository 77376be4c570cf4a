// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

// Package requestutil reads the parts of an incoming request that handlers and
// the login filter need, so neither depends on chi or encoding/json directly.
package requestutil

import (
	"encoding/json"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/taibuivan/memberauth/internal/platform/validate"
)

// maxBodyBytes caps a JSON body at 1 MiB. Login and member payloads are tiny.
const maxBodyBytes = 1 << 20

// DecodeJSON fills target from the request body. Any failure, including an
// empty or oversized body, collapses to [validate.ErrInvalidJSON].
func DecodeJSON(writer http.ResponseWriter, request *http.Request, target any) error {
	decoder := json.NewDecoder(http.MaxBytesReader(writer, request.Body, maxBodyBytes))
	if decoder.Decode(target) != nil {
		return validate.ErrInvalidJSON
	}
	return nil
}

// Param returns the chi route parameter called name, or "".
func Param(request *http.Request, name string) string {
	return chi.URLParam(request, name)
}
