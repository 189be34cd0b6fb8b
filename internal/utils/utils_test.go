package utils

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestFormatDuration(t *testing.T) {
	tests := []struct {
		in   time.Duration
		want string
	}{
		{250 * time.Microsecond, "250 µs"},
		{42 * time.Millisecond, "42 ms"},
		{1500 * time.Millisecond, "1.50 s"},
		{90 * time.Second, "1.50 min"},
		{3 * time.Hour, "3.00 h"},
	}
	for _, tc := range tests {
		assert.Equal(t, tc.want, FormatDuration(tc.in), tc.in.String())
	}
}

func TestNewRunID(t *testing.T) {
	a, b := NewRunID(), NewRunID()
	assert.Len(t, a, 8)
	assert.NotEqual(t, a, b)
}
