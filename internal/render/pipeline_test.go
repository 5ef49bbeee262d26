package render

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"woz/internal/domain"
	"woz/internal/infrastructure/random"
	"woz/internal/testutil"
)

// recordingView records every call the pipeline makes.
type recordingView struct {
	rendered  []int
	clears    int
	loading   []bool
	noResults []bool

	RenderItemFunc func(card Card) error
}

func (v *recordingView) RenderItem(card Card) error {
	if v.RenderItemFunc != nil {
		if err := v.RenderItemFunc(card); err != nil {
			return err
		}
	}
	v.rendered = append(v.rendered, card.ID)
	return nil
}

func (v *recordingView) ClearList() {
	v.clears++
	v.rendered = nil
}

func (v *recordingView) SetLoadingVisible(visible bool) { v.loading = append(v.loading, visible) }

func (v *recordingView) SetNoResultsVisible(visible bool) {
	v.noResults = append(v.noResults, visible)
}

func (v *recordingView) UpdateDroppers(id, droppers int) {}

func (v *recordingView) lastLoading() bool { return v.loading[len(v.loading)-1] }

func (v *recordingView) lastNoResults() bool { return v.noResults[len(v.noResults)-1] }

func newTestPipeline(view View, pageSize int) *Pipeline {
	return NewPipeline(view, NewCardBuilder(nil, random.New(1), nil), pageSize, zap.NewNop())
}

func TestPipeline_PagesOf45(t *testing.T) {
	view := &recordingView{}
	p := newTestPipeline(view, 20)

	first := p.Reset(testutil.Products(45))
	assert.Equal(t, 20, first)
	assert.Equal(t, 20, p.Cursor())
	assert.True(t, view.lastLoading())

	counts := []int{first}
	cursors := []int{p.Cursor()}
	loading := []bool{view.lastLoading()}
	for p.HasMore() {
		n, cursor := p.Next()
		counts = append(counts, n)
		cursors = append(cursors, cursor)
		loading = append(loading, view.lastLoading())
	}

	assert.Equal(t, []int{20, 20, 5}, counts)
	assert.Equal(t, []int{20, 40, 45}, cursors)
	assert.Equal(t, []bool{true, true, false}, loading)
	assert.Equal(t, testutil.IDs(testutil.Products(45)), view.rendered)
}

func TestPipeline_EmptySetShowsNoResults(t *testing.T) {
	view := &recordingView{}
	p := newTestPipeline(view, 20)

	n := p.Reset([]domain.Product{})

	assert.Equal(t, 0, n)
	assert.Empty(t, view.rendered)
	assert.True(t, view.lastNoResults())
	assert.False(t, view.lastLoading())
	assert.Equal(t, 1, view.clears)
}

func TestPipeline_NoResultsTogglesOffOnNonEmptySet(t *testing.T) {
	view := &recordingView{}
	p := newTestPipeline(view, 20)

	p.Reset(nil)
	require.True(t, view.lastNoResults())

	p.Reset(testutil.Products(3))

	assert.False(t, view.lastNoResults())
	assert.False(t, view.lastLoading())
	assert.Equal(t, []int{1, 2, 3}, view.rendered)
}

func TestPipeline_NextAtExhaustionIsNoop(t *testing.T) {
	view := &recordingView{}
	p := newTestPipeline(view, 20)
	p.Reset(testutil.Products(5))

	n, cursor := p.Next()
	n2, cursor2 := p.Next()

	assert.Equal(t, 0, n)
	assert.Equal(t, 5, cursor)
	assert.Equal(t, 0, n2)
	assert.Equal(t, 5, cursor2)
	assert.Len(t, view.rendered, 5)
	assert.False(t, view.lastLoading())
}

func TestPipeline_ResetClearsPreviousOutput(t *testing.T) {
	view := &recordingView{}
	p := newTestPipeline(view, 2)
	p.Reset(testutil.Products(6))
	p.Next()

	p.Reset(testutil.Products(6)[3:])

	assert.Equal(t, 2, view.clears)
	assert.Equal(t, []int{4, 5}, view.rendered)
	assert.Equal(t, 2, p.Cursor())
}

func TestPipeline_FailingItemDoesNotAbortBatch(t *testing.T) {
	view := &recordingView{
		RenderItemFunc: func(card Card) error {
			if card.ID == 2 {
				return errors.New("template slot broken")
			}
			if card.ID == 4 {
				panic("boom")
			}
			return nil
		},
	}
	p := newTestPipeline(view, 20)

	n := p.Reset(testutil.Products(5))

	assert.Equal(t, 5, n)
	assert.Equal(t, 5, p.Cursor())
	assert.Equal(t, []int{1, 3, 5}, view.rendered)
}
