package authorize

import (
	"context"
	"log/slog"
)

// SeedDefaultPolicies sets up the baseline RBAC policies for the system.
// Everything lives in the sys domain; ownership checks (is this MY
// appointment) happen in the service layer, Casbin only answers whether the
// role may touch the resource type at all.
func SeedDefaultPolicies(ctx context.Context, auth IAuthorization) error {
	logger := slog.Default()

	adminPolicies := []PermissionPolicy{
		// Admin: god mode
		{RoleAdmin, DomainSys, WildcardResource, WildcardAction, EffectAllow},
	}

	doctorPolicies := []PermissionPolicy{
		// Own schedule
		{RoleDoctor, DomainSys, ResourceAvailabilitySlot, ActionManage, EffectAllow},
		{RoleDoctor, DomainSys, ResourceTimeOff, ActionManage, EffectAllow},

		// Appointments: read, confirm, cancel, complete; approve reschedules
		{RoleDoctor, DomainSys, ResourceAppointment, ActionRead, EffectAllow},
		{RoleDoctor, DomainSys, ResourceAppointment, ActionList, EffectAllow},
		{RoleDoctor, DomainSys, ResourceAppointment, ActionConfirm, EffectAllow},
		{RoleDoctor, DomainSys, ResourceAppointment, ActionCancel, EffectAllow},
		{RoleDoctor, DomainSys, ResourceAppointment, ActionComplete, EffectAllow},
		{RoleDoctor, DomainSys, ResourceReschedule, ActionRead, EffectAllow},
		{RoleDoctor, DomainSys, ResourceReschedule, ActionUpdate, EffectAllow},

		// Messaging with own patients
		{RoleDoctor, DomainSys, ResourceConversation, ActionRead, EffectAllow},
		{RoleDoctor, DomainSys, ResourceConversation, ActionList, EffectAllow},
		{RoleDoctor, DomainSys, ResourceMessage, ActionManage, EffectAllow},

		// Medical records are doctor-authored; link checks happen in the service
		{RoleDoctor, DomainSys, ResourceLabReport, ActionManage, EffectAllow},
		{RoleDoctor, DomainSys, ResourceMedicalHistory, ActionManage, EffectAllow},
		{RoleDoctor, DomainSys, ResourceMedication, ActionManage, EffectAllow},
		{RoleDoctor, DomainSys, ResourceMedicationProgress, ActionManage, EffectAllow},
		{RoleDoctor, DomainSys, ResourcePrescription, ActionManage, EffectAllow},

		// Ratings about themselves are read-only
		{RoleDoctor, DomainSys, ResourceRating, ActionRead, EffectAllow},
		{RoleDoctor, DomainSys, ResourceRating, ActionList, EffectAllow},

		{RoleDoctor, DomainSys, ResourceNotification, ActionManage, EffectAllow},
		{RoleDoctor, DomainSys, ResourceCalendarCredential, ActionManage, EffectAllow},
		{RoleDoctor, DomainSys, ResourceUser, ActionRead, EffectAllow},
		{RoleDoctor, DomainSys, ResourceUser, ActionUpdate, EffectAllow},
		{RoleDoctor, DomainSys, ResourceAuthSession, ActionManage, EffectAllow},
	}

	patientPolicies := []PermissionPolicy{
		// Browse schedules, book and manage own appointments
		{RolePatient, DomainSys, ResourceAvailabilitySlot, ActionRead, EffectAllow},
		{RolePatient, DomainSys, ResourceAvailabilitySlot, ActionList, EffectAllow},
		{RolePatient, DomainSys, ResourceAppointment, ActionCreate, EffectAllow},
		{RolePatient, DomainSys, ResourceAppointment, ActionRead, EffectAllow},
		{RolePatient, DomainSys, ResourceAppointment, ActionList, EffectAllow},
		{RolePatient, DomainSys, ResourceAppointment, ActionCancel, EffectAllow},
		{RolePatient, DomainSys, ResourceReschedule, ActionCreate, EffectAllow},
		{RolePatient, DomainSys, ResourceReschedule, ActionRead, EffectAllow},

		// Rate completed visits
		{RolePatient, DomainSys, ResourceRating, ActionManage, EffectAllow},

		// Messaging with own doctors
		{RolePatient, DomainSys, ResourceConversation, ActionRead, EffectAllow},
		{RolePatient, DomainSys, ResourceConversation, ActionList, EffectAllow},
		{RolePatient, DomainSys, ResourceMessage, ActionManage, EffectAllow},

		// Own medical records are read-only for patients
		{RolePatient, DomainSys, ResourceLabReport, ActionRead, EffectAllow},
		{RolePatient, DomainSys, ResourceLabReport, ActionList, EffectAllow},
		{RolePatient, DomainSys, ResourceMedicalHistory, ActionRead, EffectAllow},
		{RolePatient, DomainSys, ResourceMedicalHistory, ActionList, EffectAllow},
		{RolePatient, DomainSys, ResourceMedication, ActionRead, EffectAllow},
		{RolePatient, DomainSys, ResourceMedication, ActionList, EffectAllow},
		{RolePatient, DomainSys, ResourceMedicationProgress, ActionRead, EffectAllow},
		{RolePatient, DomainSys, ResourceMedicationProgress, ActionList, EffectAllow},
		{RolePatient, DomainSys, ResourcePrescription, ActionRead, EffectAllow},
		{RolePatient, DomainSys, ResourcePrescription, ActionList, EffectAllow},

		{RolePatient, DomainSys, ResourceNotification, ActionManage, EffectAllow},
		{RolePatient, DomainSys, ResourceUser, ActionRead, EffectAllow},
		{RolePatient, DomainSys, ResourceUser, ActionUpdate, EffectAllow},
		{RolePatient, DomainSys, ResourceAuthSession, ActionManage, EffectAllow},
	}

	allPolicies := append(append(adminPolicies, doctorPolicies...), patientPolicies...)

	for _, p := range allPolicies {
		added, err := auth.AddPermission(ctx, p.Subject, p.Domain, p.Object, p.Action, p.Effect)
		if err != nil {
			logger.Error("failed to add policy", "policy", p, "error", err)
			return err
		}
		if added {
			logger.Debug("added policy", "role", p.Subject, "domain", p.Domain, "resource", p.Object, "action", p.Action)
		}
	}

	logger.Info("seeded default RBAC policies", "count", len(allPolicies))
	return nil
}

// AssignUserRole maps a users.role value to its Casbin role and assigns it
// in the sys domain. Call this when creating a new user.
func AssignUserRole(ctx context.Context, auth IAuthorization, userID, userRole string) error {
	role, ok := UserRoleToRBACRole[userRole]
	if !ok {
		return ErrInvalidArgs
	}
	_, err := auth.AddRoleForUserInDomain(ctx, GroupSubject(userID), role, DomainSys)
	return err
}

// RemoveUserRole removes a role assignment in the sys domain.
func RemoveUserRole(ctx context.Context, auth IAuthorization, userID, userRole string) error {
	role, ok := UserRoleToRBACRole[userRole]
	if !ok {
		return ErrInvalidArgs
	}
	_, err := auth.RemoveRoleForUserInDomain(ctx, GroupSubject(userID), role, DomainSys)
	return err
}
