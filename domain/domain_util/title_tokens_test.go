package domain_util

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestTitleTokens(t *testing.T) {
	tests := []struct {
		title string
		want  []string
	}{
		{"Golden Hour", []string{"golden", "hour"}},
		{"  Sunset  Over The Hills ", []string{"sunset", "over", "the", "hills"}},
		{"beach BEACH Beach", []string{"beach"}},
		{"trip!", []string{"trip!"}},
		{"", []string{}},
		{"   ", []string{}},
	}

	for _, tt := range tests {
		got := TitleTokens(tt.title)
		assert.Equal(t, tt.want, got, "title %q", tt.title)
	}
}

func TestIntersectionSize(t *testing.T) {
	set := StringSet([]string{"sunset", "beach"})

	assert.Equal(t, 2, IntersectionSize(set, []string{"beach", "sunset", "city"}))
	assert.Equal(t, 1, IntersectionSize(set, []string{"beach", "beach"}))
	assert.Equal(t, 0, IntersectionSize(set, nil))
	assert.Equal(t, 0, IntersectionSize(StringSet(nil), []string{"beach"}))
}
