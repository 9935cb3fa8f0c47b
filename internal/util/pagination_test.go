package util

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCalculate(t *testing.T) {
	t.Parallel()

	cases := []struct {
		name     string
		page     int
		size     int
		wantFrom int
		wantSize int
	}{
		{"defaults", 0, 0, 0, 10},
		{"negative page", -3, 5, 0, 5},
		{"second page", 2, 10, 10, 10},
		{"size capped", 1, 1000, 0, 100},
		{"offset uses capped size", 3, 1000, 200, 100},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			from, size := Calculate(tc.page, tc.size)
			assert.Equal(t, tc.wantFrom, from)
			assert.Equal(t, tc.wantSize, size)
		})
	}
}
