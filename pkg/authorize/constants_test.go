package authorize

import (
	"testing"
)

func TestIsValidDomain(t *testing.T) {
	tests := []struct {
		name     string
		domain   Domain
		expected bool
	}{
		{"sys domain", DomainSys, true},
		{"wildcard domain", WildcardDomain, true},

		{"empty domain", Domain(""), false},
		{"random string", Domain("random"), false},
		{"legacy tenant domain", Domain("clinic:550e8400-e29b-41d4-a716-446655440000"), false},
		{"user domain", Domain("user:550e8400-e29b-41d4-a716-446655440000"), false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := IsValidDomain(tt.domain)
			if result != tt.expected {
				t.Errorf("IsValidDomain(%q) = %v, want %v", tt.domain, result, tt.expected)
			}
		})
	}
}

func TestKnownActions(t *testing.T) {
	// Verify all expected actions are in the known map
	expectedActions := []Action{
		ActionCreate, ActionRead, ActionUpdate, ActionDelete, ActionList,
		ActionManage,
		ActionConfirm, ActionCancel, ActionComplete,
		ActionGrant, ActionRevoke,
	}

	for _, action := range expectedActions {
		if _, ok := KnownActions[action]; !ok {
			t.Errorf("Expected action %q to be in KnownActions", action)
		}
	}
}

func TestKnownResources(t *testing.T) {
	// Verify all expected resources are in the known map
	expectedResources := []Resource{
		ResourceUser, ResourceAuthSession,
		ResourceAvailabilitySlot, ResourceTimeOff, ResourceAppointment, ResourceReschedule,
		ResourceRating,
		ResourceConversation, ResourceMessage, ResourceNotification,
		ResourceLabReport, ResourceMedicalHistory, ResourceMedication, ResourceMedicationProgress,
		ResourceCalendarCredential,
		ResourceSystem, ResourceAudit, ResourceRBAC,
	}

	for _, resource := range expectedResources {
		if _, ok := KnownResources[resource]; !ok {
			t.Errorf("Expected resource %q to be in KnownResources", resource)
		}
	}
}

func TestKnownRoles(t *testing.T) {
	// Verify all expected roles are in the known map
	expectedRoles := []Role{
		RoleAdmin, RoleDoctor, RolePatient,
	}

	for _, role := range expectedRoles {
		if _, ok := KnownRoles[role]; !ok {
			t.Errorf("Expected role %q to be in KnownRoles", role)
		}
	}
}

func TestUserRoleToRBACRole(t *testing.T) {
	tests := []struct {
		userRole string
		want     Role
	}{
		{UserRoleAdmin, RoleAdmin},
		{UserRoleDoctor, RoleDoctor},
		{UserRolePatient, RolePatient},
	}

	for _, tt := range tests {
		got, ok := UserRoleToRBACRole[tt.userRole]
		if !ok {
			t.Errorf("Expected user role %q to be mapped", tt.userRole)
			continue
		}
		if got != tt.want {
			t.Errorf("UserRoleToRBACRole[%q] = %q, want %q", tt.userRole, got, tt.want)
		}
	}

	if _, ok := UserRoleToRBACRole["superuser"]; ok {
		t.Error("unexpected mapping for unknown role")
	}
}
