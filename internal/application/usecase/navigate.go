package usecase

import (
	"context"
	"errors"
	"fmt"

	"github.com/bnema/gridbrowser/internal/application/port"
	domainurl "github.com/bnema/gridbrowser/internal/domain/url"
	"github.com/bnema/gridbrowser/internal/logging"
)

// logURLMaxLen is the max length for URLs in log messages.
const logURLMaxLen = 60

// ErrNoWebView is returned when a navigation targets no web view.
var ErrNoWebView = errors.New("no web view to navigate")

// HistoryDirection selects back or forward traversal.
type HistoryDirection string

const (
	HistoryBack    HistoryDirection = "back"
	HistoryForward HistoryDirection = "forward"
)

// NavigateUseCase turns address entry text into loads and drives history traversal.
type NavigateUseCase struct {
	normalizeInput bool
}

// NewNavigateUseCase creates a new navigation use case.
// With normalizeInput, bare domains such as "example.com" get an https:// prefix
// before parsing.
func NewNavigateUseCase(normalizeInput bool) *NavigateUseCase {
	return &NavigateUseCase{normalizeInput: normalizeInput}
}

// NavigateInput contains parameters for navigation.
type NavigateInput struct {
	Input   string
	WebView port.WebView
}

// NavigateOutput contains the result of navigation.
type NavigateOutput struct {
	URL string
}

// Execute parses the input and loads it in the web view.
// Parse failures wrap url.ErrInvalidURL or url.ErrEmptyURL and load nothing.
func (uc *NavigateUseCase) Execute(ctx context.Context, input NavigateInput) (*NavigateOutput, error) {
	if input.WebView == nil {
		return nil, ErrNoWebView
	}

	raw := input.Input
	if uc.normalizeInput {
		raw = domainurl.Normalize(raw)
	}

	parsed, err := domainurl.Parse(raw)
	if err != nil {
		return nil, fmt.Errorf("parse %q: %w", truncateURL(input.Input), err)
	}

	target := parsed.String()
	ctx = logging.WithURL(ctx, truncateURL(target))
	if err := input.WebView.LoadURI(ctx, target); err != nil {
		return nil, fmt.Errorf("failed to load URL: %w", err)
	}

	logging.FromContext(ctx).Debug().
		Uint64("webview_id", uint64(input.WebView.ID())).
		Msg("navigation initiated")

	return &NavigateOutput{URL: target}, nil
}

// TraverseInput contains parameters for a history traversal.
type TraverseInput struct {
	Direction HistoryDirection
	WebView   port.WebView
}

// Traverse goes back or forward in the web view's own history.
func (uc *NavigateUseCase) Traverse(ctx context.Context, input TraverseInput) error {
	if input.WebView == nil {
		return ErrNoWebView
	}

	var err error
	switch input.Direction {
	case HistoryBack:
		err = input.WebView.GoBack(ctx)
	case HistoryForward:
		err = input.WebView.GoForward(ctx)
	default:
		return fmt.Errorf("unknown history direction %q", input.Direction)
	}
	if err != nil {
		return fmt.Errorf("go %s: %w", input.Direction, err)
	}
	return nil
}

func truncateURL(u string) string {
	if len(u) <= logURLMaxLen {
		return u
	}
	return u[:logURLMaxLen] + "..."
}
