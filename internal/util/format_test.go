package util

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestFormatTTL(t *testing.T) {
	tests := []struct {
		in   time.Duration
		want string
	}{
		{-1, "none"},
		{-time.Second, "none"},
		{-2, "expired"},
		{-2 * time.Second, "expired"},
		{1500 * time.Microsecond, "1ms"},
		{29*time.Minute + 59*time.Second + 600*time.Millisecond, "30m0s"},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, FormatTTL(tt.in), tt.in.String())
	}
}
