package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestIsValidWord(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected bool
	}{
		{name: "simple word", input: "hello", expected: true},
		{name: "interior space", input: "au revoir", expected: true},
		{name: "accented", input: "Français", expected: true},
		{name: "arabic", input: "مرحبا", expected: true},
		{name: "vocalized arabic", input: "\u0645\u064e\u0631\u0652\u062d\u064e\u0628\u064b\u0627", expected: true},
		{name: "decomposed accent", input: "e\u0301cole", expected: true},
		{name: "lone combining mark after digit", input: "1\u0301", expected: false},
		{name: "control character", input: "hel\x00lo", expected: false},
		{name: "punctuation", input: "hello!", expected: false},
		{name: "digits", input: "123", expected: false},
		{name: "mixed digits", input: "abc1", expected: false},
		{name: "empty", input: "", expected: false},
		{name: "only whitespace", input: "   ", expected: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, IsValidWord(tt.input))
		})
	}
}

func TestCapitalize(t *testing.T) {
	tests := []struct {
		input    string
		expected string
	}{
		{input: "hello", expected: "Hello"},
		{input: "HELLO", expected: "Hello"},
		{input: "hELLO", expected: "Hello"},
		{input: "au REVOIR", expected: "Au revoir"},
		{input: "éCOLE", expected: "École"},
		{input: "e\u0301COLE", expected: "École"},
		{input: "مرحبا", expected: "مرحبا"},
		{input: "", expected: ""},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			assert.Equal(t, tt.expected, Capitalize(tt.input))
		})
	}
}
