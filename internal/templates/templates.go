package templates

import (
	"embed"
	"html/template"

	"github.com/shopspring/decimal"
)

//go:embed *.html
var files embed.FS

var funcs = template.FuncMap{
	"price": func(d decimal.Decimal) string { return d.StringFixed(2) },
}

// Load parse toutes les pages ; chaque page est nommée d'après son fichier
func Load() (*template.Template, error) {
	return template.New("").Funcs(funcs).ParseFS(files, "*.html")
}
