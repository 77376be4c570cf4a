// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

// Package pagination provides shared types and helpers for API list endpoints.
//
// # Overview
//
// Pages are requested with 1-indexed "page" and "size" query parameters and
// described in the response by a [PageInfo] block.
package pagination

import (
	"net/http"
	"strconv"
)

const (
	// DefaultSize is the number of items per page if not specified.
	DefaultSize = 10
	// MaxSize is the upper bound for items per page to prevent system abuse.
	MaxSize = 100
	// DefaultPage is the starting page (1-indexed).
	DefaultPage = 1
)

// Params holds the parsed page and size from a request's query string.
type Params struct {
	Page int
	Size int
}

// Offset returns the number of items preceding the requested page.
func (p Params) Offset() int {
	if p.Page <= 1 {
		return 0
	}
	return (p.Page - 1) * p.Size
}

// PageInfo is the pagination metadata included in API list responses.
type PageInfo struct {
	Page          int `json:"page"`
	Size          int `json:"size"`
	TotalElements int `json:"totalElements"`
	TotalPages    int `json:"totalPages"`
}

// NewPageInfo constructs pagination metadata, deriving TotalPages from the total count.
func NewPageInfo(params Params, totalElements int) PageInfo {
	totalPages := 0
	if params.Size > 0 {
		totalPages = (totalElements + params.Size - 1) / params.Size
	}

	return PageInfo{
		Page:          params.Page,
		Size:          params.Size,
		TotalElements: totalElements,
		TotalPages:    totalPages,
	}
}

// FromRequest parses "page" and "size" query parameters from an HTTP request.
//
// Invalid, negative, or excessive values fall back to [DefaultPage] and [DefaultSize].
func FromRequest(r *http.Request) Params {
	page := parseIntParam(r, "page", DefaultPage)
	size := parseIntParam(r, "size", DefaultSize)

	if page < 1 {
		page = DefaultPage
	}

	if size < 1 || size > MaxSize {
		size = DefaultSize
	}

	return Params{Page: page, Size: size}
}

func parseIntParam(r *http.Request, key string, defaultVal int) int {
	raw := r.URL.Query().Get(key)
	if raw == "" {
		return defaultVal
	}

	n, err := strconv.Atoi(raw)
	if err != nil {
		return defaultVal
	}

	return n
}
