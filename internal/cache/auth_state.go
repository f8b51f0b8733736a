package cache

import (
	"context"
	"fmt"
	"time"

	"github.com/lojaviva/lojaviva-api/internal/models"
)

const authStateCacheTTL = 10 * time.Minute

// UsuarioAuthState is the per-user snapshot kept in Redis so the auth
// middleware can skip a database lookup on every request.
type UsuarioAuthState struct {
	UsuarioID   uint   `json:"usuario_id"`
	Email       string `json:"email"`
	TipoUsuario string `json:"tipo_usuario"`
	UpdatedAt   int64  `json:"updated_at"`
}

func usuarioAuthStateKey(usuarioID uint) string {
	return fmt.Sprintf("auth:usuario:%d", usuarioID)
}

// BuildUsuarioAuthState builds the snapshot from the user model.
func BuildUsuarioAuthState(usuario *models.Usuario) *UsuarioAuthState {
	if usuario == nil {
		return nil
	}
	return &UsuarioAuthState{
		UsuarioID:   usuario.ID,
		Email:       usuario.Email,
		TipoUsuario: usuario.TipoUsuario,
		UpdatedAt:   time.Now().Unix(),
	}
}

// GetUsuarioAuthState reads the cached snapshot.
func GetUsuarioAuthState(ctx context.Context, usuarioID uint) (*UsuarioAuthState, bool, error) {
	if usuarioID == 0 {
		return nil, false, nil
	}
	var state UsuarioAuthState
	hit, err := GetJSON(ctx, usuarioAuthStateKey(usuarioID), &state)
	if err != nil || !hit {
		return nil, hit, err
	}
	return &state, true, nil
}

// SetUsuarioAuthState stores the snapshot.
func SetUsuarioAuthState(ctx context.Context, state *UsuarioAuthState) error {
	if state == nil || state.UsuarioID == 0 {
		return nil
	}
	return SetJSON(ctx, usuarioAuthStateKey(state.UsuarioID), state, authStateCacheTTL)
}

// DelUsuarioAuthState drops the snapshot, forcing the next request to
// re-read the user row.
func DelUsuarioAuthState(ctx context.Context, usuarioID uint) error {
	if usuarioID == 0 {
		return nil
	}
	return Del(ctx, usuarioAuthStateKey(usuarioID))
}
