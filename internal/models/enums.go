package models

// Option lists rendered as form selects. The sets are fixed by the business:
// new values are added here, not in the data store.

var TiposCliente = []string{
	"Comunidad",
	"Hotel/Apartamentos",
	"Empresa",
	"Otro",
}

var TiposEquipo = []string{
	"Ascensor",
	"Elevador",
	"Montaplatos",
	"Montacargas",
	"Plataforma Salvaescaleras",
	"Otro",
}

// EmpresasMantenedoras are the maintenance vendors operating in the island.
var EmpresasMantenedoras = []string{
	"FAIN Ascensores",
	"KONE",
	"Otis",
	"Schindler",
	"TKE",
	"Orona",
	"APlus Ascensores",
	"Ascensores Canarias",
	"Ascensores Domingo",
	"Ascensores Vulcano Canarias",
	"Elevadores Canarios",
	"Fedes Ascensores",
	"Gratecsa",
	"Lift Technology",
	"Omega Elevadores",
	"Q Ascensores",
}

// Localidades covers the municipios and barrios served in Gran Canaria.
var Localidades = []string{
	"Agaete",
	"Agüimes",
	"Arguineguín",
	"Arinaga",
	"Artenara",
	"Arucas",
	"Carrizal",
	"Cruce de Arinaga",
	"El Burrero",
	"El Tablero",
	"Gáldar",
	"Ingenio",
	"Jinámar",
	"La Aldea de San Nicolás",
	"La Pardilla",
	"Las Palmas de Gran Canaria",
	"Maspalomas",
	"Mogán",
	"Moya",
	"Playa de Mogán",
	"Playa del Inglés",
	"Puerto Rico",
	"San Bartolomé de Tirajana",
	"San Fernando",
	"San Mateo",
	"Santa Brígida",
	"Santa Lucía de Tirajana",
	"Santa María de Guía",
	"Tafira",
	"Tejeda",
	"Teror",
	"Valleseco",
	"Valsequillo",
	"Vecindario",
}
