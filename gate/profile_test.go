package gate_test

import (
	"context"
	"testing"

	"github.com/diewo77/go-invoices-client/gate"
	"github.com/diewo77/go-invoices-client/models"
)

func TestProfileFor_Roles(t *testing.T) {
	tests := []struct {
		role      models.Role
		requested gate.Permission
		want      bool
	}{
		{models.RoleAdmin, "admin:manage", true},
		{models.RoleAdmin, "user:manage", true},
		{models.RoleManager, "admin:view", true},
		{models.RoleManager, "admin:manage", false},
		{models.RoleManager, "invoice:delete", true},
		{models.RoleUser, "invoice:view", true},
		{models.RoleUser, "admin:view", false},
		{models.Role("ghost"), "invoice:view", false},
	}
	for _, tt := range tests {
		t.Run(string(tt.role)+" "+string(tt.requested), func(t *testing.T) {
			got := gate.ProfileFor(tt.role).HasPermission(tt.requested)
			if got != tt.want {
				t.Errorf("ProfileFor(%q).HasPermission(%q) = %v, want %v", tt.role, tt.requested, got, tt.want)
			}
		})
	}
}

func TestRolePolicy_NilUser(t *testing.T) {
	p := gate.NewRolePolicy("invoice")
	if p.Can(context.Background(), nil, gate.ActionView, nil) {
		t.Error("nil user should never be authorized")
	}
}

func TestRolePolicy_ByRole(t *testing.T) {
	p := gate.NewRolePolicy("admin")
	admin := &models.User{Role: models.RoleAdmin}
	manager := &models.User{Role: models.RoleManager}
	regular := &models.User{Role: models.RoleUser}

	if !p.Can(context.Background(), admin, gate.ActionManage, nil) {
		t.Error("admin denied admin:manage")
	}
	if p.Can(context.Background(), manager, gate.ActionManage, nil) {
		t.Error("manager allowed admin:manage")
	}
	if !p.Can(context.Background(), manager, gate.ActionView, nil) {
		t.Error("manager denied admin:view")
	}
	if p.Can(context.Background(), regular, gate.ActionView, nil) {
		t.Error("regular user allowed admin:view")
	}
}
