package session

import (
	"fmt"
	"html/template"
	"os"

	"go.uber.org/zap"

	"woz/internal/catalog"
	"woz/internal/config"
	"woz/internal/infrastructure/random"
	"woz/internal/product"
	"woz/internal/product/repository"
	"woz/internal/render"
)

// NewModule wires the session manager over the catalog store. The item
// template comes from cfg.Render.TemplateFile when set.
func NewModule(store *catalog.Store, rng random.Source, cfg *config.Config, logger *zap.Logger) (*Controller, *Manager, error) {
	tmpl, err := loadItemTemplate(cfg.Render.TemplateFile)
	if err != nil {
		return nil, nil, err
	}

	layout := render.FullLayout()
	if len(cfg.Render.Slots) > 0 {
		layout = render.ParseLayout(cfg.Render.Slots)
	}

	opts := Options{
		Service:         product.NewService(repository.NewMemoryRepository(store)),
		Template:        tmpl,
		Layout:          layout,
		Droppers:        store,
		Rng:             rng,
		PageSize:        cfg.Render.PageSize,
		ScrollProximity: cfg.Render.ScrollProximity,
		SearchDebounce:  cfg.Session.SearchDebounce,
	}

	manager := NewManager(opts, cfg.Session.Max, logger)
	return NewController(manager, store, logger), manager, nil
}

func loadItemTemplate(path string) (*template.Template, error) {
	if path == "" {
		return render.DefaultItemTemplate(), nil
	}

	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading item template: %w", err)
	}
	tmpl, err := render.NewItemTemplate(string(raw))
	if err != nil {
		return nil, fmt.Errorf("parsing item template: %w", err)
	}
	return tmpl, nil
}
