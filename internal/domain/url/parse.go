package url

import (
	"errors"
	"fmt"
	neturl "net/url"
)

var (
	// ErrEmptyURL is returned when the submitted text is empty.
	ErrEmptyURL = errors.New("empty url")
	// ErrInvalidURL is returned when the submitted text is not a well-formed URL.
	ErrInvalidURL = errors.New("invalid url")
)

// Parse validates raw as a URL reference and returns the parsed form.
//
// Only RFC 3986 characters are accepted and every '%' must start a valid
// escape, so free text such as "not a url with spaces" is rejected instead
// of being percent-encoded. References without a scheme are accepted.
func Parse(raw string) (*neturl.URL, error) {
	if raw == "" {
		return nil, ErrEmptyURL
	}

	for i := 0; i < len(raw); i++ {
		ch := raw[i]
		if ch == '%' {
			if i+2 >= len(raw) || !isHex(raw[i+1]) || !isHex(raw[i+2]) {
				return nil, fmt.Errorf("%w: malformed escape at offset %d", ErrInvalidURL, i)
			}
			i += 2
			continue
		}
		if !isURLChar(ch) {
			return nil, fmt.Errorf("%w: character %q at offset %d", ErrInvalidURL, ch, i)
		}
	}

	u, err := neturl.Parse(raw)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidURL, err)
	}
	return u, nil
}

func isURLChar(ch byte) bool {
	switch {
	case 'a' <= ch && ch <= 'z', 'A' <= ch && ch <= 'Z', '0' <= ch && ch <= '9':
		return true
	}
	switch ch {
	// unreserved
	case '-', '.', '_', '~':
		return true
	// gen-delims
	case ':', '/', '?', '#', '[', ']', '@':
		return true
	// sub-delims
	case '!', '$', '&', '\'', '(', ')', '*', '+', ',', ';', '=':
		return true
	}
	return false
}

func isHex(ch byte) bool {
	switch {
	case '0' <= ch && ch <= '9':
		return true
	case 'a' <= ch && ch <= 'f':
		return true
	case 'A' <= ch && ch <= 'F':
		return true
	}
	return false
}
