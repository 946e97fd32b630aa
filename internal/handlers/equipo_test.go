package handlers

import (
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"sync/atomic"
	"testing"
)

func equipoForm() url.Values {
	return url.Values{
		"cliente_id":                 {"42"},
		"tipo_equipo":                {"Ascensor"},
		"empresa_mantenedora":        {"Fedes Ascensores"},
		"ubicacion":                  {"Portal A"},
		"descripcion":                {"6 paradas"},
		"fecha_vencimiento_contrato": {"2026-12-31"},
		"rae":                        {"RAE-1234"},
		"ipo_proxima":                {"2027-03-01"},
	}
}

func TestEquipoFormWithClienteContext(t *testing.T) {
	st := newTestStore(t, func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/rest/v1/clientes" || r.URL.Query().Get("id") != "eq.42" {
			t.Fatalf("unexpected request %s %s", r.URL.Path, r.URL.RawQuery)
		}
		_, _ = w.Write([]byte(`[{"id":42,"nombre_cliente":"Hotel Dunas","direccion":"Av. Italia 1","localidad":"Playa del Inglés"}]`))
	})
	h := NewEquipoHandler(st, testLogger())

	w := httptest.NewRecorder()
	h.Form(w, httptest.NewRequest(http.MethodGet, "/nuevo_equipo?cliente_id=42", nil))

	body := w.Body.String()
	if !strings.Contains(body, "Hotel Dunas") {
		t.Fatalf("expected lead context in form, got: %s", body)
	}
	if !strings.Contains(body, `name="cliente_id" value="42"`) {
		t.Fatalf("expected hidden cliente_id, got: %s", body)
	}
}

// A missing or unknown cliente_id yields a form without lead context, never
// an error.
func TestEquipoFormWithoutClienteContext(t *testing.T) {
	st := newTestStore(t, func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`[]`))
	})
	h := NewEquipoHandler(st, testLogger())

	for _, target := range []string{"/nuevo_equipo", "/nuevo_equipo?cliente_id=999"} {
		w := httptest.NewRecorder()
		h.Form(w, httptest.NewRequest(http.MethodGet, target, nil))
		if w.Code != http.StatusOK {
			t.Fatalf("%s: expected 200 got %d", target, w.Code)
		}
		if !strings.Contains(w.Body.String(), "Tipo de Equipo") {
			t.Fatalf("%s: expected equipment form", target)
		}
	}
}

func TestCrearEquipoMissingRequiredFields(t *testing.T) {
	for _, field := range []string{"cliente_id", "tipo_equipo"} {
		t.Run(field, func(t *testing.T) {
			var writes int64
			st := newTestStore(t, func(w http.ResponseWriter, r *http.Request) {
				atomic.AddInt64(&writes, 1)
			})
			h := NewEquipoHandler(st, testLogger())

			form := equipoForm()
			form.Set(field, "")
			w := httptest.NewRecorder()
			h.Create(w, formRequest("/nuevo_equipo", form))

			if w.Code != http.StatusBadRequest {
				t.Fatalf("expected 400 got %d", w.Code)
			}
			if !strings.Contains(w.Body.String(), "Datos del equipo inválidos") {
				t.Fatalf("expected diagnostic message, got: %s", w.Body.String())
			}
			if n := atomic.LoadInt64(&writes); n != 0 {
				t.Fatalf("expected zero backend writes, got %d", n)
			}
		})
	}
}

func TestCrearEquipoConfirmationLoopsBack(t *testing.T) {
	st := newTestStore(t, func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodPost || r.URL.Path != "/rest/v1/equipos" {
			t.Fatalf("unexpected request %s %s", r.Method, r.URL.Path)
		}
		w.WriteHeader(http.StatusCreated)
		_, _ = w.Write([]byte(`[{"id":5,"cliente_id":42,"tipo_equipo":"Ascensor"}]`))
	})
	h := NewEquipoHandler(st, testLogger())

	w := httptest.NewRecorder()
	h.Create(w, formRequest("/nuevo_equipo", equipoForm()))

	body := w.Body.String()
	if !strings.Contains(body, "Equipo registrado correctamente") {
		t.Fatalf("expected confirmation, got: %s", body)
	}
	if !strings.Contains(body, `href="/nuevo_equipo?cliente_id=42"`) {
		t.Fatalf("expected add-another link for the same lead, got: %s", body)
	}
	if !strings.Contains(body, `href="/home"`) {
		t.Fatalf("expected finish link, got: %s", body)
	}
}

func TestCrearEquipoBackendFailureShowsRawError(t *testing.T) {
	st := newTestStore(t, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadRequest)
		_, _ = w.Write([]byte(`{"message":"invalid input syntax for type date"}`))
	})
	h := NewEquipoHandler(st, testLogger())

	w := httptest.NewRecorder()
	h.Create(w, formRequest("/nuevo_equipo", equipoForm()))

	body := w.Body.String()
	if !strings.Contains(body, "Error al registrar equipo") {
		t.Fatalf("expected error heading, got: %s", body)
	}
	if !strings.Contains(body, "invalid input syntax for type date") {
		t.Fatalf("expected raw backend body, got: %s", body)
	}
}
