// Package render проецирует содержимое резюме в печатное представление.
package render

import (
	"bytes"
	"embed"
	"html/template"

	"github.com/artem13815/cvforge/pkg/document"
	"github.com/artem13815/cvforge/pkg/i18n"
)

//go:embed templates/resume.html.tmpl
var templateFS embed.FS

var resumeTmpl = template.Must(template.ParseFS(templateFS, "templates/resume.html.tmpl"))

type view struct {
	Data document.Data
	L    *i18n.Bundle
}

// HTML — чистая проекция (data, locale) -> печатный HTML.
// Детерминирована: одинаковые аргументы дают одинаковый результат.
// Отсутствующие или пустые секции не рендерятся, ошибка не возникает.
// Безопасна для конкурентных вызовов: вход только читается.
func HTML(data document.Data, bundle *i18n.Bundle) (string, error) {
	var buf bytes.Buffer
	if err := resumeTmpl.Execute(&buf, view{Data: document.Normalize(data), L: bundle}); err != nil {
		return "", err
	}
	return buf.String(), nil
}
