package models

// Usuario is an application account. Accounts are provisioned directly in the
// data store; the app only reads them during login.
type Usuario struct {
	ID            int    `json:"id"`
	NombreUsuario string `json:"nombre_usuario"`
	// Contrasena holds the salted bcrypt hash, never a plaintext password.
	Contrasena string `json:"contrasena"`
}

// Cliente is a lead: a prospective client site where equipment is (or could
// be) installed. TipoCliente, Direccion, NombreCliente and Localidad are
// mandatory; the rest is contact/context data.
type Cliente struct {
	ID              int    `json:"id,omitempty"`
	TipoCliente     string `json:"tipo_cliente"`
	Direccion       string `json:"direccion"`
	NombreCliente   string `json:"nombre_cliente"`
	CodigoPostal    string `json:"codigo_postal"`
	Localidad       string `json:"localidad"`
	Zona            string `json:"zona"`
	PersonaContacto string `json:"persona_contacto"`
	Telefono        string `json:"telefono"`
	Email           string `json:"email"`
	Observaciones   string `json:"observaciones"`
}

// Equipo is a lift-class device installed at a lead's site. A Cliente owns
// zero or more Equipos; ClienteID and TipoEquipo are mandatory.
type Equipo struct {
	ID                 int    `json:"id,omitempty"`
	ClienteID          int    `json:"cliente_id"`
	TipoEquipo         string `json:"tipo_equipo"`
	EmpresaMantenedora string `json:"empresa_mantenedora"`
	Ubicacion          string `json:"ubicacion"`
	Descripcion        string `json:"descripcion"`
	// Dates travel as the raw form values; the data store owns the column types.
	FechaVencimientoContrato string `json:"fecha_vencimiento_contrato"`
	// RAE is the official registration code, only meaningful for ascensores.
	RAE        string `json:"rae"`
	IPOProxima string `json:"ipo_proxima"`
}
