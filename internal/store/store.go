// Package store provides typed operations over the backend data client for
// the three resources the app touches: usuarios, clientes and equipos.
package store

import (
	"context"
	"errors"
	"strconv"

	"github.com/fedesascensores/leads-app/internal/backend"
	"github.com/fedesascensores/leads-app/internal/models"
)

// ErrNoMatch is returned when a single-record lookup does not find exactly
// one row.
var ErrNoMatch = errors.New("store: no single match")

type Store struct {
	client *backend.Client
}

func New(client *backend.Client) *Store {
	return &Store{client: client}
}

// FindUsuario looks up a user by exact username. It fails closed: anything
// other than exactly one match is ErrNoMatch.
func (s *Store) FindUsuario(ctx context.Context, nombreUsuario string) (*models.Usuario, error) {
	var out []models.Usuario
	if err := s.client.Find(ctx, "usuarios", backend.Eq("nombre_usuario", nombreUsuario), &out); err != nil {
		return nil, err
	}
	if len(out) != 1 {
		return nil, ErrNoMatch
	}
	return &out[0], nil
}

// ListClientes fetches all leads in backend response order.
func (s *Store) ListClientes(ctx context.Context) ([]models.Cliente, error) {
	var out []models.Cliente
	if err := s.client.Find(ctx, "clientes", nil, &out); err != nil {
		return nil, err
	}
	return out, nil
}

// GetCliente fetches one lead by id. The id arrives as a raw query-string
// value and is passed through as the filter value.
func (s *Store) GetCliente(ctx context.Context, id string) (*models.Cliente, error) {
	var out []models.Cliente
	if err := s.client.Find(ctx, "clientes", backend.Eq("id", id), &out); err != nil {
		return nil, err
	}
	if len(out) != 1 {
		return nil, ErrNoMatch
	}
	return &out[0], nil
}

// ListEquipos fetches the equipment owned by one lead.
func (s *Store) ListEquipos(ctx context.Context, clienteID int) ([]models.Equipo, error) {
	var out []models.Equipo
	if err := s.client.Find(ctx, "equipos", backend.Eq("cliente_id", strconv.Itoa(clienteID)), &out); err != nil {
		return nil, err
	}
	return out, nil
}

// CreateCliente inserts a lead and returns the created record, including the
// server-assigned id.
func (s *Store) CreateCliente(ctx context.Context, c models.Cliente) (*models.Cliente, error) {
	var out []models.Cliente
	if err := s.client.Insert(ctx, "clientes", c, &out); err != nil {
		return nil, err
	}
	if len(out) != 1 {
		return nil, ErrNoMatch
	}
	return &out[0], nil
}

// CreateEquipo inserts an equipment record.
func (s *Store) CreateEquipo(ctx context.Context, e models.Equipo) error {
	return s.client.Insert(ctx, "equipos", e, nil)
}
