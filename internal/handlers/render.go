package handlers

import (
	"errors"
	"net/http"

	"github.com/fedesascensores/leads-app/internal/backend"
	"github.com/fedesascensores/leads-app/internal/view"
)

// renderTemplate uses the shared view.Render and degrades to a plain 500 on
// template errors.
func renderTemplate(w http.ResponseWriter, r *http.Request, name string, data map[string]any) {
	if err := view.Render(w, r, name, data); err != nil {
		w.WriteHeader(http.StatusInternalServerError)
		if _, werr := w.Write([]byte("template error")); werr != nil {
			_ = werr
		}
	}
}

// renderBackendError shows the inline diagnostic page for a failed data store
// call. The backend's raw response body is surfaced verbatim when available.
func renderBackendError(w http.ResponseWriter, r *http.Request, mensaje string, err error) {
	detalle := err.Error()
	var se *backend.StatusError
	if errors.As(err, &se) {
		detalle = se.Body
	}
	renderTemplate(w, r, "error.html", map[string]any{
		"Titulo":  mensaje,
		"Mensaje": mensaje,
		"Detalle": detalle,
	})
}
