package render

import (
	"embed"
	"html/template"
	"io"
	"strings"
	"time"

	"github.com/pkg/errors"

	"github.com/nsxbet/datadict/pkg/types"
)

//go:embed templates/*.tmpl
var templateFS embed.FS

var htmlTemplate = template.Must(template.New("dictionary.html.tmpl").Funcs(template.FuncMap{
	"sensitivityClass": sensitivityClass,
	"yesNo":            yesNo,
	"timestamp":        timestamp,
}).ParseFS(templateFS, "templates/dictionary.html.tmpl"))

// HTML writes page as a standalone HTML document. Rows carry a
// sensitivity-<level> class.
func HTML(w io.Writer, page *Page) error {
	return errors.Wrap(htmlTemplate.Execute(w, page), "failed to render HTML")
}

func sensitivityClass(s types.Sensitivity) string {
	return strings.ToLower(s.String())
}

func yesNo(b bool) string {
	if b {
		return "Yes"
	}
	return "No"
}

func timestamp(t time.Time) string {
	return t.Format(time.RFC3339)
}
