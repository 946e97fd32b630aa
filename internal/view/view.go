// Package view renders the application's HTML pages. Templates are embedded
// in the binary and parsed once per page, with a shared func map.
package view

import (
	"bytes"
	"embed"
	"html/template"
	"net/http"
	"sync"
	"time"

	"github.com/fedesascensores/leads-app/internal/session"
)

//go:embed templates
var templatesFS embed.FS

var tplCache = struct {
	sync.RWMutex
	m map[string]*template.Template
}{m: map[string]*template.Template{}}

// Funcs returns the shared template helpers.
func Funcs() template.FuncMap {
	return template.FuncMap{
		"year": func() int { return time.Now().Year() },
	}
}

func lookup(name string) (*template.Template, error) {
	tplCache.RLock()
	t, ok := tplCache.m[name]
	tplCache.RUnlock()
	if ok {
		return t, nil
	}

	t, err := template.New(name).Funcs(Funcs()).ParseFS(templatesFS,
		"templates/"+name, "templates/partials/*.html")
	if err != nil {
		return nil, err
	}
	tplCache.Lock()
	tplCache.m[name] = t
	tplCache.Unlock()
	return t, nil
}

// Render executes the named page template. name is the filename, e.g.
// "login.html". The logged-in username is injected as Usuario unless the
// caller set it already.
func Render(w http.ResponseWriter, r *http.Request, name string, data map[string]any) error {
	if data == nil {
		data = map[string]any{}
	}
	if _, exists := data["Usuario"]; !exists {
		if u, ok := session.UsuarioFromContext(r.Context()); ok {
			data["Usuario"] = u
		}
	}

	t, err := lookup(name)
	if err != nil {
		return err
	}

	// Execute into a buffer so a template error never produces a half-written page.
	var buf bytes.Buffer
	if err := t.Execute(&buf, data); err != nil {
		return err
	}
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	_, err = buf.WriteTo(w)
	return err
}
