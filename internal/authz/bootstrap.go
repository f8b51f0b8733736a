package authz

import (
	"fmt"

	"github.com/lojaviva/lojaviva-api/internal/constants"
)

// RoleSeed is a built-in role with its default policies.
type RoleSeed struct {
	Role     string
	Policies []Policy
}

// BuiltinRoleSeeds returns the default role matrix. Admins may do
// anything on the management surface; suppliers manage their own
// catalog; clients carry no elevated permissions.
func BuiltinRoleSeeds() []RoleSeed {
	return []RoleSeed{
		{
			Role: constants.TipoUsuarioAdmin,
			Policies: []Policy{
				{Object: "/*", Action: "*"},
			},
		},
		{
			Role: constants.TipoUsuarioFornecedor,
			Policies: []Policy{
				{Object: "/produtos", Action: "POST"},
				{Object: "/produtos/:id", Action: "PUT"},
				{Object: "/produtos/:id", Action: "DELETE"},
				{Object: "/variacoes", Action: "POST"},
				{Object: "/variacoes/:id", Action: "PUT"},
				{Object: "/variacoes/:id", Action: "DELETE"},
				{Object: "/colecoes", Action: "POST"},
				{Object: "/colecoes/:id", Action: "PUT"},
			},
		},
		{
			Role: constants.TipoUsuarioCliente,
		},
	}
}

// BootstrapBuiltinRoles seeds the role matrix. Existing rules are
// left untouched so operators can adjust policies at runtime.
func (s *Service) BootstrapBuiltinRoles() error {
	if s == nil || s.enforcer == nil {
		return fmt.Errorf("authz service unavailable")
	}

	for _, seed := range BuiltinRoleSeeds() {
		role, err := s.EnsureRole(seed.Role)
		if err != nil {
			return err
		}

		for _, policy := range seed.Policies {
			action := NormalizeAction(policy.Action)
			if action == "" {
				return fmt.Errorf("builtin policy action is required")
			}
			if _, err := s.enforcer.AddPolicy(role, NormalizeObject(policy.Object), action); err != nil {
				return fmt.Errorf("add builtin policy failed: %w", err)
			}
		}
	}
	return nil
}
