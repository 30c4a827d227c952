package company

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestExtractLocation(t *testing.T) {
	tests := []struct {
		text string
		want string
	}{
		{"Founded in 1999 in Chicago, Illinois", "Chicago"},
		{"Offices across Texas and beyond", "Texas"},
		{"We ship from Germany", "Germany"},
		{"We make widgets", ""},
		{"", ""},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, ExtractLocation(tt.text), tt.text)
	}
}

func TestExtractLocation_CityBeatsState(t *testing.T) {
	assert.Equal(t, "Austin", ExtractLocation("Headquartered in Texas, with our main office in Austin"))
}

func TestExtractFoundedYear(t *testing.T) {
	tests := []struct {
		text string
		want int
	}{
		{"Founded in 1999 in Chicago", 1999},
		{"Serving customers since 2004.", 2004},
		{"Established 1962", 1962},
		{"2015 - present", 2015},
		{"Started in 2020 by two engineers", 2020},
		{"Family run since 1875", 0},
		{"Established 3000", 0},
		{"no year here", 0},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, ExtractFoundedYear(tt.text), tt.text)
	}
}

func TestIndustryFromKeywords(t *testing.T) {
	tests := []struct {
		keywords string
		want     string
	}{
		{"manufacturing, industrial widgets", "Manufacturing"},
		{"online banking", "Finance"},
		{"hotel booking", "Travel"},
		{"Medical devices", "Healthcare"},
		{"", "Technology"},
		{"widgets", "Technology"},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, IndustryFromKeywords(tt.keywords), tt.keywords)
	}
}
