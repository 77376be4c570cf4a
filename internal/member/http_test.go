// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package member_test

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/taibuivan/memberauth/internal/member"
)

func newRouter(t *testing.T) http.Handler {
	t.Helper()
	service, _ := newService(t)
	router := chi.NewRouter()
	router.Mount("/v11/members", member.NewHandler(service).Routes())
	return router
}

func do(router http.Handler, method, path, body string) *httptest.ResponseRecorder {
	request := httptest.NewRequest(method, path, strings.NewReader(body))
	request.Header.Set("Content-Type", "application/json")
	recorder := httptest.NewRecorder()
	router.ServeHTTP(recorder, request)
	return recorder
}

func TestHandler_Lifecycle(t *testing.T) {
	router := newRouter(t)

	created := do(router, http.MethodPost, "/v11/members",
		`{"email":"alice@example.com","password":"correct-pw","name":"Alice","phone":"010-1234-5678"}`)
	require.Equal(t, http.StatusCreated, created.Code)
	assert.NotContains(t, created.Body.String(), "password")

	var envelope struct {
		Data member.Response `json:"data"`
	}
	require.NoError(t, json.Unmarshal(created.Body.Bytes(), &envelope))
	id := envelope.Data.MemberID
	require.NotEmpty(t, id)

	patched := do(router, http.MethodPatch, "/v11/members/"+id, `{"name":"Alice Kim","memberStatus":"MEMBER_SLEEP"}`)
	require.Equal(t, http.StatusOK, patched.Code)
	assert.Contains(t, patched.Body.String(), `"memberStatus":"MEMBER_SLEEP"`)

	fetched := do(router, http.MethodGet, "/v11/members/"+id, "")
	require.Equal(t, http.StatusOK, fetched.Code)
	assert.Contains(t, fetched.Body.String(), `"name":"Alice Kim"`)

	listed := do(router, http.MethodGet, "/v11/members?page=1&size=5", "")
	require.Equal(t, http.StatusOK, listed.Code)
	assert.Contains(t, listed.Body.String(), `"totalElements":1`)

	deleted := do(router, http.MethodDelete, "/v11/members/"+id, "")
	assert.Equal(t, http.StatusNoContent, deleted.Code)
}

func TestHandler_CreateValidation(t *testing.T) {
	router := newRouter(t)

	recorder := do(router, http.MethodPost, "/v11/members", `{"email":"not-an-email","password":"","name":"A","phone":"02-123-4567"}`)

	require.Equal(t, http.StatusBadRequest, recorder.Code)
	body := recorder.Body.String()
	assert.Contains(t, body, `"field":"email"`)
	assert.Contains(t, body, `"field":"password"`)
	assert.Contains(t, body, `"field":"phone"`)
}

func TestHandler_CreateConflict(t *testing.T) {
	router := newRouter(t)
	payload := `{"email":"alice@example.com","password":"pw","name":"Alice","phone":"010-1234-5678"}`

	require.Equal(t, http.StatusCreated, do(router, http.MethodPost, "/v11/members", payload).Code)
	assert.Equal(t, http.StatusConflict, do(router, http.MethodPost, "/v11/members", payload).Code)
}

func TestHandler_PatchRejectsBlankAndUnknownStatus(t *testing.T) {
	router := newRouter(t)

	recorder := do(router, http.MethodPatch, "/v11/members/anything", `{"name":"   ","memberStatus":"MEMBER_BANNED"}`)

	require.Equal(t, http.StatusBadRequest, recorder.Code)
	assert.Contains(t, recorder.Body.String(), `"field":"name"`)
	assert.Contains(t, recorder.Body.String(), `"field":"memberStatus"`)
}

func TestHandler_GetMissing(t *testing.T) {
	router := newRouter(t)

	recorder := do(router, http.MethodGet, "/v11/members/missing", "")

	assert.Equal(t, http.StatusNotFound, recorder.Code)
}

func TestHandler_InvalidJSON(t *testing.T) {
	router := newRouter(t)

	recorder := do(router, http.MethodPost, "/v11/members", `{"email":`)

	assert.Equal(t, http.StatusBadRequest, recorder.Code)
}
