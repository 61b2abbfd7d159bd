package service

import (
	"testing"

	"Band_Plan/internal/model"
)

func TestCanManageAvailability(t *testing.T) {
	if !CanManageAvailability(model.RolePrincipal) {
		t.Error("principal in a shared group should manage peers' availability")
	}
	if CanManageAvailability(model.RoleSubstitute) {
		t.Error("substitute must not manage peers' availability")
	}
	if CanManageAvailability("") {
		t.Error("unknown role must not manage peers' availability")
	}
}
