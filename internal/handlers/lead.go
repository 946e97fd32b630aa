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

// LeadHandler serves the lead intake flow.
type LeadHandler struct {
	Store *store.Store
	Log   *zap.SugaredLogger
}

func NewLeadHandler(st *store.Store, log *zap.SugaredLogger) *LeadHandler {
	return &LeadHandler{Store: st, Log: log}
}

// Form renders the empty lead form.
func (h *LeadHandler) Form(w http.ResponseWriter, r *http.Request) {
	renderTemplate(w, r, "lead_form.html", map[string]any{
		"Titulo":       "Introducir datos",
		"TiposCliente": models.TiposCliente,
		"Localidades":  models.Localidades,
	})
}

// Create validates and inserts a lead, then hands off to the equipment intake
// flow pre-selecting the new lead.
func (h *LeadHandler) Create(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseForm(); err != nil {
		http.Error(w, "Datos del lead inválidos", http.StatusBadRequest)
		return
	}

	c := models.Cliente{
		TipoCliente:     r.FormValue("tipo_lead"),
		Direccion:       strings.TrimSpace(r.FormValue("direccion")),
		NombreCliente:   strings.TrimSpace(r.FormValue("nombre_lead")),
		CodigoPostal:    strings.TrimSpace(r.FormValue("codigo_postal")),
		Localidad:       r.FormValue("localidad"),
		Zona:            strings.TrimSpace(r.FormValue("zona")),
		PersonaContacto: strings.TrimSpace(r.FormValue("persona_contacto")),
		Telefono:        strings.TrimSpace(r.FormValue("telefono")),
		Email:           strings.TrimSpace(r.FormValue("email")),
		Observaciones:   r.FormValue("observaciones"),
	}

	v := validation.Violations{}
	validation.Required("tipo_cliente", c.TipoCliente, v)
	validation.Required("direccion", c.Direccion, v)
	validation.Required("nombre_cliente", c.NombreCliente, v)
	validation.Required("localidad", c.Localidad, v)
	if !v.Empty() {
		http.Error(w, "Datos del lead inválidos", http.StatusBadRequest)
		return
	}

	created, err := h.Store.CreateCliente(r.Context(), c)
	if err != nil {
		h.Log.Errorw("create lead", "err", err)
		renderBackendError(w, r, "Error al registrar lead", err)
		return
	}

	h.Log.Infow("lead created", "id", created.ID, "localidad", created.Localidad)
	http.Redirect(w, r, "/nuevo_equipo?cliente_id="+strconv.Itoa(created.ID), http.StatusSeeOther)
}
