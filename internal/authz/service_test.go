package authz

import (
	"fmt"
	"strings"
	"testing"

	"github.com/glebarez/sqlite"
	"gorm.io/gorm"
)

func setupAuthzServiceTest(t *testing.T) *Service {
	t.Helper()
	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", strings.ReplaceAll(t.Name(), "/", "_"))
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{})
	if err != nil {
		t.Fatalf("open sqlite failed: %v", err)
	}
	svc, err := NewService(db)
	if err != nil {
		t.Fatalf("new authz service failed: %v", err)
	}
	return svc
}

func TestEnforceTipoWithRolePolicy(t *testing.T) {
	svc := setupAuthzServiceTest(t)
	if err := svc.GrantRolePolicy("fornecedor", "/produtos/:id", "PUT"); err != nil {
		t.Fatalf("grant role policy failed: %v", err)
	}

	allow, err := svc.EnforceTipo("Fornecedor", "/api/v1/produtos/42", "put")
	if err != nil {
		t.Fatalf("enforce allow failed: %v", err)
	}
	if !allow {
		t.Fatalf("expected allow=true")
	}

	allow, err = svc.EnforceTipo("Fornecedor", "/api/v1/produtos/42", "DELETE")
	if err != nil {
		t.Fatalf("enforce deny failed: %v", err)
	}
	if allow {
		t.Fatalf("expected allow=false")
	}
}

func TestRevokeRolePolicy(t *testing.T) {
	svc := setupAuthzServiceTest(t)
	if err := svc.GrantRolePolicy("fornecedor", "/colecoes", "POST"); err != nil {
		t.Fatalf("grant policy failed: %v", err)
	}

	allow, err := svc.EnforceTipo("fornecedor", "/colecoes", "POST")
	if err != nil {
		t.Fatalf("enforce granted failed: %v", err)
	}
	if !allow {
		t.Fatalf("expected allow before revoke")
	}

	if err := svc.RevokeRolePolicy("fornecedor", "/colecoes", "POST"); err != nil {
		t.Fatalf("revoke policy failed: %v", err)
	}

	allow, err = svc.EnforceTipo("fornecedor", "/colecoes", "POST")
	if err != nil {
		t.Fatalf("enforce revoked failed: %v", err)
	}
	if allow {
		t.Fatalf("expected deny after revoke")
	}
}

func TestNormalizeObject(t *testing.T) {
	cases := []struct {
		in   string
		want string
	}{
		{in: "/api/v1/produtos/:id", want: "/produtos/:id"},
		{in: "/produtos/:id", want: "/produtos/:id"},
		{in: "produtos", want: "/produtos"},
		{in: "/api/v1", want: "/"},
		{in: "", want: "/"},
	}
	for _, item := range cases {
		got := NormalizeObject(item.in)
		if got != item.want {
			t.Fatalf("normalize object failed, in=%q want=%q got=%q", item.in, item.want, got)
		}
	}
}

func TestBootstrapBuiltinRoles(t *testing.T) {
	svc := setupAuthzServiceTest(t)
	if err := svc.BootstrapBuiltinRoles(); err != nil {
		t.Fatalf("bootstrap builtin roles failed: %v", err)
	}

	roles, err := svc.ListRoles()
	if err != nil {
		t.Fatalf("list roles failed: %v", err)
	}
	wantRoles := map[string]bool{
		"role:admin":      true,
		"role:fornecedor": true,
		"role:cliente":    true,
	}
	for _, role := range roles {
		delete(wantRoles, role)
	}
	if len(wantRoles) != 0 {
		t.Fatalf("builtin roles missing: %v", wantRoles)
	}

	allow, err := svc.EnforceTipo("Admin", "/usuarios/7", "DELETE")
	if err != nil {
		t.Fatalf("enforce admin wildcard failed: %v", err)
	}
	if !allow {
		t.Fatalf("expected admin wildcard allow")
	}

	allow, err = svc.EnforceTipo("Fornecedor", "/produtos", "POST")
	if err != nil {
		t.Fatalf("enforce fornecedor create failed: %v", err)
	}
	if !allow {
		t.Fatalf("expected fornecedor create produto allow")
	}

	allow, err = svc.EnforceTipo("Cliente", "/produtos", "POST")
	if err != nil {
		t.Fatalf("enforce cliente create failed: %v", err)
	}
	if allow {
		t.Fatalf("expected cliente create produto deny")
	}

	allow, err = svc.EnforceTipo("Fornecedor", "/usuarios", "GET")
	if err != nil {
		t.Fatalf("enforce fornecedor list usuarios failed: %v", err)
	}
	if allow {
		t.Fatalf("expected fornecedor list usuarios deny")
	}
}

func TestBootstrapBuiltinRolesIdempotent(t *testing.T) {
	svc := setupAuthzServiceTest(t)
	if err := svc.BootstrapBuiltinRoles(); err != nil {
		t.Fatalf("first bootstrap failed: %v", err)
	}
	if err := svc.BootstrapBuiltinRoles(); err != nil {
		t.Fatalf("second bootstrap failed: %v", err)
	}

	policies, err := svc.GetRolePolicies("admin")
	if err != nil {
		t.Fatalf("get admin policies failed: %v", err)
	}
	if len(policies) != 1 {
		t.Fatalf("admin policies want 1, got=%d", len(policies))
	}
}
