package form

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestValidName(t *testing.T) {
	cases := []struct {
		in   string
		want bool
	}{
		{"Jo", true},
		{" Jo ", true},
		{"J", false},
		{"", false},
		{"  ", false},
		{"ዮሐ", true},
		{"ዮ", false},
		{"Doe Jr", true},
	}
	for _, tc := range cases {
		_, ok := ValidName(tc.in)
		assert.Equal(t, tc.want, ok, "%q", tc.in)
	}

	name, _ := ValidName("  Abebe  ")
	assert.Equal(t, "Abebe", name)
}

func TestParseChildCount(t *testing.T) {
	for in, want := range map[string]int{"1": 1, " 20 ": 20, "7": 7} {
		n, ok := ParseChildCount(in)
		assert.True(t, ok, in)
		assert.Equal(t, want, n)
	}
	for _, in := range []string{"0", "21", "-1", "two", "", "1.5"} {
		_, ok := ParseChildCount(in)
		assert.False(t, ok, in)
	}
}
