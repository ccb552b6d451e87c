package utils

import (
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestBuildPaginationRequest(t *testing.T) {
	tests := []struct {
		name        string
		url         string
		wantPage    int
		wantPerPage int
	}{
		{name: "defaults", url: "/properties", wantPage: 1, wantPerPage: 10},
		{name: "explicit values", url: "/properties?page=3&per_page=25", wantPage: 3, wantPerPage: 25},
		{name: "garbage falls back", url: "/properties?page=abc&per_page=-5", wantPage: 1, wantPerPage: 10},
		{name: "zero falls back", url: "/properties?page=0", wantPage: 1, wantPerPage: 10},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r := httptest.NewRequest("GET", tt.url, nil)
			pagination := BuildPaginationRequest(r)
			assert.Equal(t, tt.wantPage, pagination.Page)
			assert.Equal(t, tt.wantPerPage, pagination.PerPage)
		})
	}
}

func TestPaginationOffset(t *testing.T) {
	r := httptest.NewRequest("GET", "/properties?page=4&per_page=15", nil)
	pagination := BuildPaginationRequest(r)
	assert.Equal(t, 45, pagination.Offset())
}
