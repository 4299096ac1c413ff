package codes

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestIsSuccess(t *testing.T) {
	tests := []struct {
		name     string
		exitCode int
		want     bool
	}{
		{
			name:     "exit code 0 is success",
			exitCode: Success,
			want:     true,
		},
		{
			name:     "aborted sweep is failure",
			exitCode: Failure,
			want:     false,
		},
		{
			name:     "unavailable resolver is failure",
			exitCode: Unavailable,
			want:     false,
		},
		{
			name:     "broken invariant is failure",
			exitCode: BrokenInvariant,
			want:     false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := IsSuccess(tt.exitCode)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestGetErrorMessage(t *testing.T) {
	tests := []struct {
		name     string
		exitCode int
		want     string
	}{
		{"success", Success, "Success"},
		{"failure", Failure, "Sweep aborted"},
		{"unavailable", Unavailable, "Cache path resolver unavailable"},
		{"broken invariant", BrokenInvariant, "Default cache directory missing after resolution"},
		{"unknown", 42, "Unknown error"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, GetErrorMessage(tt.exitCode))
		})
	}
}
