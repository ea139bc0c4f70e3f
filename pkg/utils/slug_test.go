package utils

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSlugify(t *testing.T) {
	cases := []struct {
		in   string
		want string
	}{
		{"Sunset Over The Bay", "sunset-over-the-bay"},
		{"  Hello   World  ", "hello-world"},
		{"Already-Slugged", "already-slugged"},
		{"Trip 2024!", "trip-2024"},
		{"C'est la vie", "c-est-la-vie"},
		{"___", ""},
		{"", ""},
		{"好看的图", ""},
		{"photo#1 (edited)", "photo-1-edited"},
	}
	for _, c := range cases {
		assert.Equal(t, c.want, Slugify(c.in), "Slugify(%q)", c.in)
	}
}
