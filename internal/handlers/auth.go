package handlers

import (
	"net/http"
	"strings"

	"github.com/fedesascensores/leads-app/internal/auth"
	"github.com/fedesascensores/leads-app/internal/session"
	"go.uber.org/zap"
)

const (
	msgCamposRequeridos  = "Usuario y contraseña requeridos"
	msgCredencialesMalas = "Usuario o contraseña incorrectos"
	tituloLogin          = "Bienvenido"
)

// AuthHandler serves login and logout.
type AuthHandler struct {
	Sessions *session.Manager
	Verifier *auth.Verifier
	Log      *zap.SugaredLogger
}

func NewAuthHandler(sessions *session.Manager, verifier *auth.Verifier, log *zap.SugaredLogger) *AuthHandler {
	return &AuthHandler{Sessions: sessions, Verifier: verifier, Log: log}
}

// Login renders the login form on GET and processes credentials on POST.
// Every failure on POST re-renders the form: missing fields get their own
// message, all credential failures share one generic message.
func (h *AuthHandler) Login(w http.ResponseWriter, r *http.Request) {
	if r.Method == http.MethodGet {
		renderTemplate(w, r, "login.html", map[string]any{"Titulo": tituloLogin})
		return
	}

	if err := r.ParseForm(); err != nil {
		renderTemplate(w, r, "login.html", map[string]any{"Titulo": tituloLogin, "Error": msgCamposRequeridos})
		return
	}
	usuario := strings.TrimSpace(r.FormValue("usuario"))
	contrasena := r.FormValue("contrasena")
	if usuario == "" || contrasena == "" {
		renderTemplate(w, r, "login.html", map[string]any{"Titulo": tituloLogin, "Error": msgCamposRequeridos})
		return
	}

	if !h.Verifier.Verify(r.Context(), usuario, contrasena) {
		renderTemplate(w, r, "login.html", map[string]any{"Titulo": tituloLogin, "Error": msgCredencialesMalas})
		return
	}

	h.Log.Infow("login", "usuario", usuario)
	h.Sessions.Create(w, usuario)
	http.Redirect(w, r, "/home", http.StatusSeeOther)
}

// Logout destroys the session unconditionally.
func (h *AuthHandler) Logout(w http.ResponseWriter, r *http.Request) {
	h.Sessions.Clear(w)
	http.Redirect(w, r, "/", http.StatusSeeOther)
}

// Home renders the main menu.
func (h *AuthHandler) Home(w http.ResponseWriter, r *http.Request) {
	usuario, _ := session.UsuarioFromContext(r.Context())
	renderTemplate(w, r, "home.html", map[string]any{
		"Titulo": "Bienvenido, " + usuario,
	})
}
