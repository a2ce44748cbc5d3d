package main

import (
	"strings"
	"testing"
)

func TestReplace(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"launch nothing", "launch nothing"},
		{"launch :rocket: something", "launch 🚀 something"},
		{"? :unknown: emoji", "? :unknown: emoji"},
		{"::very:naughty::", "::very:naughty::"},
		{":maybe:rocket:", ":maybe🚀"},
		{":rocket::rocket:", "🚀🚀"},
	}
	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			var sb strings.Builder
			replace(tt.in, &sb, false)
			if got := sb.String(); got != tt.want {
				t.Errorf("replace(%q) = %q, want %q", tt.in, got, tt.want)
			}
		})
	}
}
