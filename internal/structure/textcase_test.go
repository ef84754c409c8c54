package structure

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestIsTitleCase(t *testing.T) {
	tests := []struct {
		input    string
		expected bool
	}{
		{"Hello World", true},
		{"Annual Report 2023", true},
		{"1. Introduction", true},
		{"Hello world", false},
		{"HELLO", false},
		{"They're Here", false},
		{"", false},
		{"2023", false},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			assert.Equal(t, tt.expected, isTitleCase(tt.input))
		})
	}
}

func TestIsUpperCase(t *testing.T) {
	tests := []struct {
		input    string
		expected bool
	}{
		{"HELLO", true},
		{"EXECUTIVE SUMMARY 2023", true},
		{"Hello", false},
		{"2023", false},
		{"", false},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			assert.Equal(t, tt.expected, isUpperCase(tt.input))
		})
	}
}
