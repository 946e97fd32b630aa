package handlers

import (
	"net/http"
	"strconv"

	"github.com/fedesascensores/leads-app/internal/models"
	"github.com/fedesascensores/leads-app/internal/store"
	"go.uber.org/zap"
)

// ListingHandler serves the two read-only views: per-lead detail cards and
// the flattened dashboard table.
type ListingHandler struct {
	Store *store.Store
	Log   *zap.SugaredLogger
}

func NewListingHandler(st *store.Store, log *zap.SugaredLogger) *ListingHandler {
	return &ListingHandler{Store: st, Log: log}
}

// LeadConEquipos is a lead with its equipment set, for the detail view.
type LeadConEquipos struct {
	models.Cliente
	Equipos []models.Equipo
}

// Leads renders one card per lead with its nested equipment list. A failure
// fetching the leads aborts the page; a failure fetching one lead's equipment
// degrades that lead's list to empty.
func (h *ListingHandler) Leads(w http.ResponseWriter, r *http.Request) {
	clientes, err := h.Store.ListClientes(r.Context())
	if err != nil {
		h.Log.Errorw("list leads", "err", err)
		renderBackendError(w, r, "Error al obtener leads", err)
		return
	}

	leads := make([]LeadConEquipos, 0, len(clientes))
	for _, c := range clientes {
		equipos, err := h.Store.ListEquipos(r.Context(), c.ID)
		if err != nil {
			h.Log.Warnw("list equipos", "cliente_id", c.ID, "err", err)
			equipos = nil
		}
		leads = append(leads, LeadConEquipos{Cliente: c, Equipos: equipos})
	}

	renderTemplate(w, r, "leads.html", map[string]any{
		"Titulo": "Leads y Equipos",
		"Leads":  leads,
	})
}

// placeholder replaces blanked cells in the dashboard table.
const placeholder = "-"

// DashboardRow is one (lead, equipo) pair in the flattened dashboard.
type DashboardRow struct {
	ClienteID                int
	Direccion                string
	Localidad                string
	CodigoPostal             string
	TotalEquipos             string
	EmpresaMantenedora       string
	FechaVencimientoContrato string
	IPOProxima               string
}

// rowsForCliente flattens one lead into dashboard rows: N rows for N equipos,
// each repeating the lead's fields with the total count; exactly one
// placeholder row when the lead has no equipment; one fully blanked row when
// the equipment lookup failed.
func rowsForCliente(c models.Cliente, equipos []models.Equipo, lookupFailed bool) []DashboardRow {
	base := DashboardRow{
		ClienteID:    c.ID,
		Direccion:    c.Direccion,
		Localidad:    c.Localidad,
		CodigoPostal: c.CodigoPostal,
	}

	if lookupFailed {
		row := base
		row.TotalEquipos = placeholder
		row.EmpresaMantenedora = placeholder
		row.FechaVencimientoContrato = placeholder
		row.IPOProxima = placeholder
		return []DashboardRow{row}
	}
	if len(equipos) == 0 {
		row := base
		row.TotalEquipos = "0"
		row.EmpresaMantenedora = placeholder
		row.FechaVencimientoContrato = placeholder
		row.IPOProxima = placeholder
		return []DashboardRow{row}
	}

	rows := make([]DashboardRow, 0, len(equipos))
	for _, e := range equipos {
		row := base
		row.TotalEquipos = strconv.Itoa(len(equipos))
		row.EmpresaMantenedora = e.EmpresaMantenedora
		row.FechaVencimientoContrato = e.FechaVencimientoContrato
		row.IPOProxima = e.IPOProxima
		rows = append(rows, row)
	}
	return rows
}

// Dashboard renders the flattened aggregate table. Rows keep the backend's
// response order.
func (h *ListingHandler) Dashboard(w http.ResponseWriter, r *http.Request) {
	clientes, err := h.Store.ListClientes(r.Context())
	if err != nil {
		h.Log.Errorw("dashboard leads", "err", err)
		renderBackendError(w, r, "Error al obtener leads", err)
		return
	}

	var rows []DashboardRow
	for _, c := range clientes {
		equipos, err := h.Store.ListEquipos(r.Context(), c.ID)
		if err != nil {
			h.Log.Warnw("dashboard equipos", "cliente_id", c.ID, "err", err)
			rows = append(rows, rowsForCliente(c, nil, true)...)
			continue
		}
		rows = append(rows, rowsForCliente(c, equipos, false)...)
	}

	renderTemplate(w, r, "dashboard.html", map[string]any{
		"Titulo": "Leads Dashboard",
		"Rows":   rows,
	})
}
