// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package pagination_test

import (
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/taibuivan/memberauth/pkg/pagination"
)

func TestFromRequest(t *testing.T) {
	tests := []struct {
		name  string
		query string
		want  pagination.Params
	}{
		{"defaults", "", pagination.Params{Page: 1, Size: 10}},
		{"explicit", "?page=3&size=25", pagination.Params{Page: 3, Size: 25}},
		{"negative_page", "?page=-1", pagination.Params{Page: 1, Size: 10}},
		{"oversized", "?size=1000", pagination.Params{Page: 1, Size: 10}},
		{"garbage", "?page=abc&size=x", pagination.Params{Page: 1, Size: 10}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			request := httptest.NewRequest("GET", "/v11/members"+tt.query, nil)
			assert.Equal(t, tt.want, pagination.FromRequest(request))
		})
	}
}

func TestNewPageInfo(t *testing.T) {
	params := pagination.Params{Page: 2, Size: 10}

	info := pagination.NewPageInfo(params, 21)

	assert.Equal(t, 3, info.TotalPages)
	assert.Equal(t, 21, info.TotalElements)
	assert.Equal(t, 10, params.Offset())
}
