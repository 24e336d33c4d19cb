// Package web renders dashboard pages as server-side HTML.
package web

import (
	"bytes"
	"embed"
	"fmt"
	"html/template"
	"io"
	"io/fs"
	"net/http"
	"net/url"
	"strings"

	"bizdash/internal/dashboard"
	"bizdash/internal/service"
)

var (
	//go:embed templates/*.html
	templatesFS embed.FS

	//go:embed static
	staticFS embed.FS
)

type Renderer struct {
	tmpl *template.Template
}

func New() (*Renderer, error) {
	const op = "web.New"

	r := &Renderer{}
	tmpl, err := template.New("page").Funcs(template.FuncMap{
		"card":    r.card,
		"percent": dashboard.Percent,
		"tone":    toneClass,
		"join":    joinFloats,
		"export":  exportURL,
	}).ParseFS(templatesFS, "templates/*.html")
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	r.tmpl = tmpl

	return r, nil
}

func (r *Renderer) Page(w io.Writer, p service.Page) error {
	const op = "web.Renderer.Page"

	// рендерим в буфер: при ошибке шаблона не отдаём половину страницы
	var buf bytes.Buffer
	if err := r.tmpl.ExecuteTemplate(&buf, "layout", p); err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}
	_, err := buf.WriteTo(w)
	return err
}

// card выполняет partial с data и оборачивает результат в рамку карточки.
func (r *Renderer) card(title, partial string, data any) (template.HTML, error) {
	var body bytes.Buffer
	if err := r.tmpl.ExecuteTemplate(&body, partial, data); err != nil {
		return "", err
	}

	var out bytes.Buffer
	err := r.tmpl.ExecuteTemplate(&out, "card", struct {
		Title string
		Body  template.HTML
	}{title, template.HTML(body.String())})
	if err != nil {
		return "", err
	}
	return template.HTML(out.String()), nil
}

// Static отдаёт css из бинарника под /static/.
func Static() http.Handler {
	sub, err := fs.Sub(staticFS, "static")
	if err != nil {
		panic(err)
	}
	return http.StripPrefix("/static/", http.FileServer(http.FS(sub)))
}

func toneClass(tone string) string {
	if tone == "" {
		return "badge badge-gray"
	}
	return "badge badge-" + tone
}

func joinFloats(vals []float64) string {
	parts := make([]string, len(vals))
	for i, v := range vals {
		parts[i] = fmt.Sprintf("%g", v)
	}
	return strings.Join(parts, ",")
}

// exportURL - ссылка на xlsx текущей вкладки с тем же фильтром.
func exportURL(path, search, status string) string {
	v := url.Values{}
	v.Set("path", path)
	if search != "" {
		v.Set("search", search)
	}
	if status != "" {
		v.Set("status", status)
	}
	return "/api/report/excel?" + v.Encode()
}
