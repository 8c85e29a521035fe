package url

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParse_Accepts(t *testing.T) {
	tests := []struct {
		name   string
		input  string
		scheme string
		host   string
	}{
		{name: "http", input: "http://www.apple.com", scheme: "http", host: "www.apple.com"},
		{name: "https with path and query", input: "https://example.com/a/b?q=1&x=y#frag", scheme: "https", host: "example.com"},
		{name: "percent escape", input: "https://example.com/a%20b", scheme: "https", host: "example.com"},
		{name: "port", input: "http://localhost:8080/", scheme: "http", host: "localhost:8080"},
		{name: "ipv6 host", input: "http://[::1]:80/", scheme: "http", host: "[::1]:80"},
		{name: "about", input: "about:blank", scheme: "about", host: ""},
		{name: "reference without scheme", input: "example.com", scheme: "", host: ""},
		{name: "punycode host", input: "http://xn--r8jz45g.jp/", scheme: "http", host: "xn--r8jz45g.jp"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			u, err := Parse(tt.input)
			require.NoError(t, err)
			assert.Equal(t, tt.scheme, u.Scheme)
			assert.Equal(t, tt.host, u.Host)
			assert.Equal(t, tt.input, u.String())
		})
	}
}

func TestParse_Rejects(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		wantErr error
	}{
		{name: "empty", input: "", wantErr: ErrEmptyURL},
		{name: "spaces", input: "not a url with spaces", wantErr: ErrInvalidURL},
		{name: "leading space", input: " https://example.com", wantErr: ErrInvalidURL},
		{name: "tab", input: "https://exa\tmple.com", wantErr: ErrInvalidURL},
		{name: "truncated escape", input: "https://example.com/%2", wantErr: ErrInvalidURL},
		{name: "bad escape", input: "https://example.com/%zz", wantErr: ErrInvalidURL},
		{name: "angle brackets", input: "https://example.com/<script>", wantErr: ErrInvalidURL},
		{name: "non ascii", input: "https://exämple.com", wantErr: ErrInvalidURL},
		{name: "unicode host iri", input: "http://例え.jp/", wantErr: ErrInvalidURL},
		{name: "unicode path iri", input: "https://example.com/café", wantErr: ErrInvalidURL},
		{name: "unbalanced ipv6", input: "http://[::1", wantErr: ErrInvalidURL},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			u, err := Parse(tt.input)
			assert.Nil(t, u)
			assert.ErrorIs(t, err, tt.wantErr)
		})
	}
}
