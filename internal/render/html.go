package render

import (
	"errors"
	"fmt"
	"html/template"
	"io"
)

var ErrMissingTemplate = errors.New("render: item template has no \"card\" definition")

const (
	cardTemplateName = "card"
	listTemplateName = "product-list"
)

const defaultCardTemplate = `{{define "card"}}<article class="product-card" data-id="{{.ID}}">
{{- with .Title}}<h3 class="title">{{.}}</h3>{{end}}
{{- with .Provider}}<span class="provider-name">{{.}}</span>{{end}}
{{- with .Verified}}<span class="verified"{{if not (truthy .)}} hidden{{end}}>Proveedor verificado</span>{{end}}
{{- with .PriceProvider}}<span class="price-provider">{{.}}</span>{{end}}
{{- with .PriceSuggested}}<span class="price-suggested">{{.}}</span>{{end}}
{{- with .Reviews}}<span class="reviews">{{.}}</span>{{end}}
{{- with .Stars}}<span class="stars">{{range repeat .Full}}<span class="star full"></span>{{end}}{{range repeat .Empty}}<span class="star empty"></span>{{end}}<span class="rating">{{.Label}}</span></span>{{end}}
{{- with .Droppers}}<span class="droppers-count">{{deref .}}</span>{{end}}
{{- with .Sold}}<span class="sold-count">{{.}}</span>{{end}}
{{- with .Profitability}}<span class="profitability {{.Class}}">{{.Label}}</span>{{end}}
</article>{{end}}`

const listTemplate = `{{define "product-list"}}<div id="productList">
{{- range .Cards}}{{template "card" .}}{{end -}}
</div>
<div id="noResultsMsg"{{if not .NoResults}} hidden{{end}}>No se encontraron productos con esos filtros.</div>
<div id="loading"{{if not .Loading}} hidden{{end}}>Cargando más productos…</div>{{end}}`

var templateFuncs = template.FuncMap{
	"truthy": func(b *bool) bool { return b != nil && *b },
	"deref":  func(n *int) int { return *n },
	"repeat": func(n int) []struct{} { return make([]struct{}, max(n, 0)) },
}

// NewItemTemplate parses a card template with the helper functions the
// default template uses.
func NewItemTemplate(text string) (*template.Template, error) {
	return template.New("items").Funcs(templateFuncs).Parse(text)
}

func DefaultItemTemplate() *template.Template {
	return template.Must(NewItemTemplate(defaultCardTemplate))
}

// HTMLView renders the snapshot state as an HTML fragment using a
// pluggable card template.
type HTMLView struct {
	*SnapshotView
	tmpl *template.Template
}

func NewHTMLView(items *template.Template) (*HTMLView, error) {
	if items == nil || items.Lookup(cardTemplateName) == nil {
		return nil, ErrMissingTemplate
	}

	tmpl, err := items.Clone()
	if err != nil {
		return nil, fmt.Errorf("cloning item template: %w", err)
	}
	if _, err := tmpl.Parse(listTemplate); err != nil {
		return nil, fmt.Errorf("parsing list template: %w", err)
	}

	return &HTMLView{SnapshotView: NewSnapshotView(), tmpl: tmpl}, nil
}

func (v *HTMLView) WriteHTML(w io.Writer) error {
	return v.tmpl.ExecuteTemplate(w, listTemplateName, v.State())
}
