package handlers

import (
	"net/http"
	"strconv"
	"strings"

	"github.com/fedesascensores/leads-app/internal/models"
	"github.com/fedesascensores/leads-app/internal/store"
	"github.com/fedesascensores/leads-app/internal/validation"
	"go.uber.org/zap"
)

// EquipoHandler serves the equipment intake flow.
type EquipoHandler struct {
	Store *store.Store
	Log   *zap.SugaredLogger
}

func NewEquipoHandler(st *store.Store, log *zap.SugaredLogger) *EquipoHandler {
	return &EquipoHandler{Store: st, Log: log}
}

// Form renders the equipment form. An optional cliente_id query parameter
// pre-selects the owning lead; a missing or unknown id just means no
// pre-filled context, never an error.
func (h *EquipoHandler) Form(w http.ResponseWriter, r *http.Request) {
	data := map[string]any{
		"Titulo":               "Introducir datos",
		"TiposEquipo":          models.TiposEquipo,
		"EmpresasMantenedoras": models.EmpresasMantenedoras,
	}
	if id := r.URL.Query().Get("cliente_id"); id != "" {
		if c, err := h.Store.GetCliente(r.Context(), id); err == nil {
			data["Cliente"] = c
		}
	}
	renderTemplate(w, r, "equipo_form.html", data)
}

// Create validates and inserts an equipment record, then renders the
// confirmation with the "add another" loop back into this flow.
func (h *EquipoHandler) Create(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseForm(); err != nil {
		http.Error(w, "Datos del equipo inválidos", http.StatusBadRequest)
		return
	}

	clienteID := strings.TrimSpace(r.FormValue("cliente_id"))
	tipoEquipo := r.FormValue("tipo_equipo")

	v := validation.Violations{}
	validation.Required("cliente_id", clienteID, v)
	validation.Required("tipo_equipo", tipoEquipo, v)
	if !v.Empty() {
		http.Error(w, "Datos del equipo inválidos", http.StatusBadRequest)
		return
	}
	id, err := strconv.Atoi(clienteID)
	if err != nil {
		http.Error(w, "Datos del equipo inválidos", http.StatusBadRequest)
		return
	}

	e := models.Equipo{
		ClienteID:                id,
		TipoEquipo:               tipoEquipo,
		EmpresaMantenedora:       r.FormValue("empresa_mantenedora"),
		Ubicacion:                strings.TrimSpace(r.FormValue("ubicacion")),
		Descripcion:              strings.TrimSpace(r.FormValue("descripcion")),
		FechaVencimientoContrato: r.FormValue("fecha_vencimiento_contrato"),
		RAE:                      strings.TrimSpace(r.FormValue("rae")),
		IPOProxima:               r.FormValue("ipo_proxima"),
	}

	if err := h.Store.CreateEquipo(r.Context(), e); err != nil {
		h.Log.Errorw("create equipo", "err", err)
		renderBackendError(w, r, "Error al registrar equipo", err)
		return
	}

	h.Log.Infow("equipo created", "cliente_id", id, "tipo", tipoEquipo)
	renderTemplate(w, r, "equipo_creado.html", map[string]any{
		"Titulo":    "Introducir datos",
		"ClienteID": id,
	})
}
