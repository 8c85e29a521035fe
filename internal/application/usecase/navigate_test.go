package usecase_test

import (
	"bytes"
	"context"
	"errors"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/bnema/gridbrowser/internal/application/port"
	"github.com/bnema/gridbrowser/internal/application/port/mocks"
	"github.com/bnema/gridbrowser/internal/application/usecase"
	domainurl "github.com/bnema/gridbrowser/internal/domain/url"
	"github.com/bnema/gridbrowser/internal/logging"
)

func TestNavigate_LoadsParsedURL(t *testing.T) {
	ctx := context.Background()
	wv := mocks.NewMockWebView(t)
	wv.EXPECT().LoadURI(mock.Anything, "https://example.com/docs").Return(nil).Once()
	wv.EXPECT().ID().Return(port.WebViewID(7)).Maybe()

	uc := usecase.NewNavigateUseCase(false)
	out, err := uc.Execute(ctx, usecase.NavigateInput{Input: "https://example.com/docs", WebView: wv})

	require.NoError(t, err)
	assert.Equal(t, "https://example.com/docs", out.URL)
}

func TestNavigate_LogsTargetURL(t *testing.T) {
	var buf bytes.Buffer
	ctx := logging.WithContext(context.Background(), zerolog.New(&buf).Level(zerolog.DebugLevel))
	wv := mocks.NewMockWebView(t)
	wv.EXPECT().LoadURI(mock.Anything, "https://go.dev/doc").Return(nil).Once()
	wv.EXPECT().ID().Return(port.WebViewID(3)).Once()

	uc := usecase.NewNavigateUseCase(false)
	_, err := uc.Execute(ctx, usecase.NavigateInput{Input: "https://go.dev/doc", WebView: wv})

	require.NoError(t, err)
	assert.Contains(t, buf.String(), `"url":"https://go.dev/doc"`)
	assert.Contains(t, buf.String(), "navigation initiated")
}

func TestNavigate_InvalidInputLoadsNothing(t *testing.T) {
	ctx := context.Background()
	wv := mocks.NewMockWebView(t)

	uc := usecase.NewNavigateUseCase(false)
	out, err := uc.Execute(ctx, usecase.NavigateInput{Input: "not a url with spaces", WebView: wv})

	assert.Nil(t, out)
	assert.ErrorIs(t, err, domainurl.ErrInvalidURL)
	wv.AssertNotCalled(t, "LoadURI", mock.Anything, mock.Anything)
}

func TestNavigate_EmptyInputLoadsNothing(t *testing.T) {
	wv := mocks.NewMockWebView(t)

	uc := usecase.NewNavigateUseCase(true)
	_, err := uc.Execute(context.Background(), usecase.NavigateInput{Input: "", WebView: wv})

	assert.ErrorIs(t, err, domainurl.ErrEmptyURL)
}

func TestNavigate_NormalizesBareDomainWhenEnabled(t *testing.T) {
	ctx := context.Background()
	wv := mocks.NewMockWebView(t)
	wv.EXPECT().LoadURI(mock.Anything, "https://example.com").Return(nil).Once()
	wv.EXPECT().ID().Return(port.WebViewID(1)).Maybe()

	uc := usecase.NewNavigateUseCase(true)
	out, err := uc.Execute(ctx, usecase.NavigateInput{Input: "example.com", WebView: wv})

	require.NoError(t, err)
	assert.Equal(t, "https://example.com", out.URL)
}

func TestNavigate_BareDomainPassesThroughWhenNormalizationDisabled(t *testing.T) {
	ctx := context.Background()
	wv := mocks.NewMockWebView(t)
	wv.EXPECT().LoadURI(mock.Anything, "example.com").Return(nil).Once()
	wv.EXPECT().ID().Return(port.WebViewID(1)).Maybe()

	uc := usecase.NewNavigateUseCase(false)
	_, err := uc.Execute(ctx, usecase.NavigateInput{Input: "example.com", WebView: wv})

	require.NoError(t, err)
}

func TestNavigate_WrapsLoadError(t *testing.T) {
	loadErr := errors.New("webview destroyed")
	wv := mocks.NewMockWebView(t)
	wv.EXPECT().LoadURI(mock.Anything, "http://www.apple.com").Return(loadErr).Once()

	uc := usecase.NewNavigateUseCase(false)
	_, err := uc.Execute(context.Background(), usecase.NavigateInput{Input: "http://www.apple.com", WebView: wv})

	assert.ErrorIs(t, err, loadErr)
}

func TestNavigate_NilWebView(t *testing.T) {
	uc := usecase.NewNavigateUseCase(false)

	_, err := uc.Execute(context.Background(), usecase.NavigateInput{Input: "http://www.apple.com"})
	assert.ErrorIs(t, err, usecase.ErrNoWebView)

	err = uc.Traverse(context.Background(), usecase.TraverseInput{Direction: usecase.HistoryBack})
	assert.ErrorIs(t, err, usecase.ErrNoWebView)
}

func TestNavigate_Traverse(t *testing.T) {
	t.Run("back", func(t *testing.T) {
		wv := mocks.NewMockWebView(t)
		wv.EXPECT().GoBack(mock.Anything).Return(nil).Once()

		err := usecase.NewNavigateUseCase(false).Traverse(context.Background(), usecase.TraverseInput{
			Direction: usecase.HistoryBack,
			WebView:   wv,
		})

		require.NoError(t, err)
	})

	t.Run("forward", func(t *testing.T) {
		wv := mocks.NewMockWebView(t)
		wv.EXPECT().GoForward(mock.Anything).Return(nil).Once()

		err := usecase.NewNavigateUseCase(false).Traverse(context.Background(), usecase.TraverseInput{
			Direction: usecase.HistoryForward,
			WebView:   wv,
		})

		require.NoError(t, err)
	})

	t.Run("unknown direction", func(t *testing.T) {
		wv := mocks.NewMockWebView(t)

		err := usecase.NewNavigateUseCase(false).Traverse(context.Background(), usecase.TraverseInput{
			Direction: usecase.HistoryDirection("sideways"),
			WebView:   wv,
		})

		assert.Error(t, err)
	})
}
