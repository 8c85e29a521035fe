package component

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/bnema/gridbrowser/internal/application/usecase"
)

type recordingHandler struct {
	submitted []string
	navigated []usecase.HistoryDirection
	rows      []usecase.AdjustOperation
	columns   []usecase.AdjustOperation
	err       error
}

func (h *recordingHandler) SubmitURL(_ context.Context, text string) {
	h.submitted = append(h.submitted, text)
}

func (h *recordingHandler) Navigate(_ context.Context, d usecase.HistoryDirection) {
	h.navigated = append(h.navigated, d)
}

func (h *recordingHandler) AdjustRows(_ context.Context, op usecase.AdjustOperation) error {
	h.rows = append(h.rows, op)
	return h.err
}

func (h *recordingHandler) AdjustColumns(_ context.Context, op usecase.AdjustOperation) error {
	h.columns = append(h.columns, op)
	return h.err
}

func TestToolbar_ForwardsSignals(t *testing.T) {
	h := &recordingHandler{}
	tb := &Toolbar{ctx: context.Background(), handler: h}

	tb.submit("https://go.dev")
	tb.navigate(usecase.HistoryBack)
	tb.navigate(usecase.HistoryForward)
	tb.adjust(usecase.AxisRows, usecase.AdjustAdd)
	tb.adjust(usecase.AxisColumns, usecase.AdjustRemove)

	assert.Equal(t, []string{"https://go.dev"}, h.submitted)
	assert.Equal(t, []usecase.HistoryDirection{usecase.HistoryBack, usecase.HistoryForward}, h.navigated)
	assert.Equal(t, []usecase.AdjustOperation{usecase.AdjustAdd}, h.rows)
	assert.Equal(t, []usecase.AdjustOperation{usecase.AdjustRemove}, h.columns)
}

func TestToolbar_AdjustErrorIsLogged(t *testing.T) {
	h := &recordingHandler{err: errors.New("engine unavailable")}
	tb := &Toolbar{ctx: context.Background(), handler: h}

	assert.NotPanics(t, func() {
		tb.adjust(usecase.AxisColumns, usecase.AdjustAdd)
	})
	assert.Len(t, h.columns, 1)
}

func TestToolbar_WithoutHandlerOrEntry(t *testing.T) {
	tb := &Toolbar{ctx: context.Background()}

	assert.NotPanics(t, func() {
		tb.submit("x")
		tb.navigate(usecase.HistoryBack)
		tb.adjust(usecase.AxisRows, usecase.AdjustAdd)
		tb.SetText("ignored")
	})
	assert.Empty(t, tb.Text())
}
