package url

import (
	"testing"
)

func TestNormalize(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  string
	}{
		{
			name:  "empty string",
			input: "",
			want:  "",
		},
		{
			name:  "http scheme unchanged",
			input: "http://example.com",
			want:  "http://example.com",
		},
		{
			name:  "https scheme unchanged",
			input: "https://example.com",
			want:  "https://example.com",
		},
		{
			name:  "file scheme unchanged",
			input: "file:///path/to/file.html",
			want:  "file:///path/to/file.html",
		},
		{
			name:  "about scheme unchanged",
			input: "about:blank",
			want:  "about:blank",
		},
		{
			name:  "domain gets https",
			input: "example.com",
			want:  "https://example.com",
		},
		{
			name:  "domain with path gets https",
			input: "example.com/docs",
			want:  "https://example.com/docs",
		},
		{
			name:  "free text unchanged",
			input: "not a url with spaces",
			want:  "not a url with spaces",
		},
		{
			name:  "dotted text with spaces unchanged",
			input: "see example.com now",
			want:  "see example.com now",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Normalize(tt.input); got != tt.want {
				t.Errorf("Normalize(%q) = %q, want %q", tt.input, got, tt.want)
			}
		})
	}
}

func TestLooksLikeURL(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  bool
	}{
		{name: "empty", input: "", want: false},
		{name: "https URL", input: "https://example.com", want: true},
		{name: "about URL", input: "about:blank", want: true},
		{name: "bare domain", input: "github.com", want: true},
		{name: "single word", input: "hello", want: false},
		{name: "sentence", input: "hello world.com please", want: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := LooksLikeURL(tt.input); got != tt.want {
				t.Errorf("LooksLikeURL(%q) = %v, want %v", tt.input, got, tt.want)
			}
		})
	}
}
