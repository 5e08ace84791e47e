package utils

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestParseID(t *testing.T) {
	cases := []struct {
		in     string
		wantId int64
		wantOk bool
	}{
		{"1", 1, true},
		{"9223372036854775807", 9223372036854775807, true},
		{"0", 0, false},
		{"-7", 0, false},
		{"", 0, false},
		{"abc", 0, false},
		{"12abc", 0, false},
		{"1.5", 0, false},
		{"9223372036854775808", 0, false},
	}
	for _, c := range cases {
		id, ok := ParseID(c.in)
		assert.Equal(t, c.wantOk, ok, "input %q", c.in)
		assert.Equal(t, c.wantId, id, "input %q", c.in)
	}
}

func TestValidID(t *testing.T) {
	assert.True(t, ValidID(1))
	assert.False(t, ValidID(0))
	assert.False(t, ValidID(-1))
}

func TestGenerateEntityIDUnique(t *testing.T) {
	seen := make(map[int64]bool)
	for i := 0; i < 10000; i++ {
		id := GenerateEntityID()
		assert.False(t, seen[id], "duplicate id %d", id)
		seen[id] = true
	}
}
