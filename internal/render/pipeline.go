package render

import (
	"fmt"

	"go.uber.org/zap"

	"woz/internal/domain"
)

// Pipeline renders a Visible Set into a View page by page. It is not safe
// for concurrent use; the owning session serialises access.
type Pipeline struct {
	view     View
	builder  *CardBuilder
	pageSize int
	logger   *zap.Logger

	visible []domain.Product
	cursor  int
}

func NewPipeline(view View, builder *CardBuilder, pageSize int, logger *zap.Logger) *Pipeline {
	if pageSize <= 0 {
		pageSize = DefaultPageSize
	}
	return &Pipeline{
		view:     view,
		builder:  builder,
		pageSize: pageSize,
		logger:   logger,
	}
}

// Reset replaces the Visible Set, clears the view and renders the first
// page. An empty set shows the no-results indicator instead.
func (p *Pipeline) Reset(visible []domain.Product) int {
	p.visible = visible
	p.cursor = 0
	p.view.ClearList()

	if len(visible) == 0 {
		p.view.SetNoResultsVisible(true)
		p.view.SetLoadingVisible(false)
		return 0
	}

	p.view.SetNoResultsVisible(false)
	rendered, _ := p.Next()
	return rendered
}

// Next renders the following page and returns how many items it covered
// and the new cursor. At exhaustion it only hides the loading indicator.
func (p *Pipeline) Next() (int, int) {
	page, next := Batch(p.visible, p.cursor, p.pageSize)
	if len(page) == 0 {
		p.view.SetLoadingVisible(false)
		return 0, p.cursor
	}

	for _, item := range page {
		p.renderOne(item)
	}
	p.cursor = next
	p.view.SetLoadingVisible(p.HasMore())
	return len(page), p.cursor
}

func (p *Pipeline) renderOne(item domain.Product) {
	defer func() {
		if r := recover(); r != nil {
			p.logger.Error("render item panicked", zap.Int("productId", item.ID), zap.String("panic", fmt.Sprint(r)))
		}
	}()

	if err := p.view.RenderItem(p.builder.Build(item)); err != nil {
		p.logger.Warn("render item failed", zap.Int("productId", item.ID), zap.Error(err))
	}
}

func (p *Pipeline) HasMore() bool {
	return p.cursor < len(p.visible)
}

func (p *Pipeline) Cursor() int {
	return p.cursor
}

func (p *Pipeline) Len() int {
	return len(p.visible)
}
