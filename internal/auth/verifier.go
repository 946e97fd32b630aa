// Package auth implements credential verification against the stored user
// records.
package auth

import (
	"context"

	"github.com/fedesascensores/leads-app/internal/store"
	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"
)

// Verifier checks a submitted username/password pair against the data store.
type Verifier struct {
	store *store.Store
	log   *zap.SugaredLogger
}

func NewVerifier(st *store.Store, log *zap.SugaredLogger) *Verifier {
	return &Verifier{store: st, log: log}
}

// Verify reports whether the credentials match the stored record. Unknown
// user, lookup failure and password mismatch all collapse into false: the
// caller cannot tell the causes apart, and neither can an attacker.
func (v *Verifier) Verify(ctx context.Context, usuario, contrasena string) bool {
	u, err := v.store.FindUsuario(ctx, usuario)
	if err != nil {
		if err != store.ErrNoMatch {
			v.log.Warnw("user lookup failed", "err", err)
		}
		return false
	}
	return bcrypt.CompareHashAndPassword([]byte(u.Contrasena), []byte(contrasena)) == nil
}
