package layout_test

import (
	"fmt"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/bnema/gridbrowser/internal/domain/entity"
	"github.com/bnema/gridbrowser/internal/ui/layout"
	"github.com/bnema/gridbrowser/internal/ui/layout/mocks"
)

// fakeWidget only needs identity; unused Widget methods panic through the nil embed.
type fakeWidget struct {
	layout.Widget
	name string
}

// fakeBox records its children in order.
type fakeBox struct {
	layout.Widget
	orientation layout.Orientation
	homogeneous bool
	children    []layout.Widget
}

func (b *fakeBox) Append(child layout.Widget) { b.children = append(b.children, child) }
func (b *fakeBox) Remove(child layout.Widget) {
	for i, c := range b.children {
		if c == child {
			b.children = append(b.children[:i], b.children[i+1:]...)
			return
		}
	}
	panic(fmt.Sprintf("remove of widget that is not a child: %v", child))
}
func (b *fakeBox) SetHomogeneous(h bool)  { b.homogeneous = h }
func (*fakeBox) SetSpacing(int)           {}
func (*fakeBox) SetHexpand(bool)          {}
func (*fakeBox) SetVexpand(bool)          {}
func (*fakeBox) AddCssClass(string)       {}

type rendererFixture struct {
	renderer *layout.GridRenderer
	root     *fakeBox
	widgets  map[entity.PaneID]*fakeWidget
	grid     *entity.Grid
	mk       entity.PaneMaker
}

func newRendererFixture(t *testing.T) *rendererFixture {
	t.Helper()

	f := &rendererFixture{widgets: make(map[entity.PaneID]*fakeWidget), grid: entity.NewGrid()}
	n := 0
	f.mk = func() *entity.Pane {
		n++
		id := entity.PaneID(fmt.Sprintf("pane-%d", n))
		f.widgets[id] = &fakeWidget{name: string(id)}
		return entity.NewPane(id, entity.DefaultPaneURL)
	}

	factory := mocks.NewMockWidgetFactory(t)
	factory.EXPECT().NewBox(mock.Anything, 0).RunAndReturn(func(o layout.Orientation, _ int) layout.BoxWidget {
		return &fakeBox{orientation: o}
	}).Maybe()

	provider := mocks.NewMockPaneWidgetProvider(t)
	provider.EXPECT().PaneWidget(mock.Anything).RunAndReturn(func(id entity.PaneID) layout.Widget {
		w, ok := f.widgets[id]
		if !ok {
			return nil
		}
		return w
	}).Maybe()

	f.renderer = layout.NewGridRenderer(factory, provider, zerolog.Nop())
	root, ok := f.renderer.Root().(*fakeBox)
	require.True(t, ok)
	f.root = root
	return f
}

func (f *rendererFixture) seed(t *testing.T) {
	t.Helper()
	f.grid.AddRow(f.mk)
	f.grid.AddColumn(f.mk)
	require.NoError(t, f.renderer.Sync(f.grid))
}

// assertMirrors checks that the widget tree matches the grid exactly.
func (f *rendererFixture) assertMirrors(t *testing.T) {
	t.Helper()
	require.Len(t, f.root.children, f.grid.RowCount())
	for r := 0; r < f.grid.RowCount(); r++ {
		row, ok := f.root.children[r].(*fakeBox)
		require.True(t, ok)
		assert.Equal(t, layout.OrientationHorizontal, row.orientation)
		assert.True(t, row.homogeneous)

		panes := f.grid.Row(r)
		require.Len(t, row.children, len(panes), "row %d", r)
		for c, p := range panes {
			assert.Same(t, f.widgets[p.ID], row.children[c], "row %d col %d", r, c)
		}
	}
}

func TestNewGridRenderer_RootIsVerticalHomogeneous(t *testing.T) {
	f := newRendererFixture(t)

	assert.Equal(t, layout.OrientationVertical, f.root.orientation)
	assert.True(t, f.root.homogeneous)
	assert.Equal(t, 0, f.renderer.RowCount())
}

func TestSync_NilGrid(t *testing.T) {
	f := newRendererFixture(t)

	assert.ErrorIs(t, f.renderer.Sync(nil), layout.ErrNilGrid)
}

func TestSync_SeededSinglePane(t *testing.T) {
	f := newRendererFixture(t)

	f.seed(t)

	assert.Equal(t, 1, f.renderer.RowCount())
	assert.Equal(t, []entity.PaneID{"pane-1"}, f.renderer.Placed(0))
	f.assertMirrors(t)
}

func TestSync_AddColumnKeepsExistingWidgets(t *testing.T) {
	f := newRendererFixture(t)
	f.seed(t)
	row0 := f.root.children[0].(*fakeBox)
	first := row0.children[0]

	f.grid.AddColumn(f.mk)
	require.NoError(t, f.renderer.Sync(f.grid))

	assert.Same(t, row0, f.root.children[0])
	assert.Same(t, first, row0.children[0])
	f.assertMirrors(t)
}

func TestSync_AddAndRemoveRows(t *testing.T) {
	f := newRendererFixture(t)
	f.seed(t)
	f.grid.AddColumn(f.mk)
	f.grid.AddRow(f.mk)
	f.grid.AddRow(f.mk)
	require.NoError(t, f.renderer.Sync(f.grid))
	f.assertMirrors(t)
	require.Equal(t, 3, f.renderer.RowCount())

	dropped := f.root.children[2].(*fakeBox)
	_, err := f.grid.RemoveRow()
	require.NoError(t, err)
	require.NoError(t, f.renderer.Sync(f.grid))

	assert.Equal(t, 2, f.renderer.RowCount())
	assert.Empty(t, dropped.children)
	f.assertMirrors(t)
}

func TestSync_RemoveColumnDetachesLastPanes(t *testing.T) {
	f := newRendererFixture(t)
	f.seed(t)
	f.grid.AddColumn(f.mk)
	f.grid.AddColumn(f.mk)
	f.grid.AddRow(f.mk)
	require.NoError(t, f.renderer.Sync(f.grid))

	_, err := f.grid.RemoveColumn()
	require.NoError(t, err)
	require.NoError(t, f.renderer.Sync(f.grid))

	assert.Equal(t, []entity.PaneID{"pane-1", "pane-2"}, f.renderer.Placed(0))
	f.assertMirrors(t)
}

func TestSync_IsIdempotent(t *testing.T) {
	f := newRendererFixture(t)
	f.seed(t)
	f.grid.AddColumn(f.mk)
	f.grid.AddRow(f.mk)
	require.NoError(t, f.renderer.Sync(f.grid))

	require.NoError(t, f.renderer.Sync(f.grid))

	f.assertMirrors(t)
}

func TestSync_MissingPaneWidget(t *testing.T) {
	f := newRendererFixture(t)
	f.seed(t)
	added := f.grid.AddColumn(f.mk)
	delete(f.widgets, added[0].ID)

	err := f.renderer.Sync(f.grid)

	assert.ErrorIs(t, err, layout.ErrMissingPaneWidget)
}

func TestPlaced_OutOfRange(t *testing.T) {
	f := newRendererFixture(t)

	assert.Nil(t, f.renderer.Placed(0))
	assert.Nil(t, f.renderer.Placed(-1))
}
