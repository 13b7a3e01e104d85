package router

import (
	"github.com/gofiber/fiber/v3"

	"github.com/curaline/curaline_backend/internal/api/http/handler"
	"github.com/curaline/curaline_backend/pkg/authorize"
)

func (r *Router) registerRecordsRoutes(
	api fiber.Router,
	rh *handler.RecordsHandler,
	authRequired fiber.Handler,
	requirePerm func(authorize.Resource, authorize.Action) fiber.Handler,
) {
	patients := api.Group("/patients/:id", authRequired)

	patients.Post("/lab-reports", requirePerm(authorize.ResourceLabReport, authorize.ActionCreate), rh.CreateLabReport)
	patients.Get("/lab-reports", requirePerm(authorize.ResourceLabReport, authorize.ActionList), rh.ListLabReports)
	patients.Post("/medical-histories", requirePerm(authorize.ResourceMedicalHistory, authorize.ActionCreate), rh.CreateMedicalHistory)
	patients.Get("/medical-histories", requirePerm(authorize.ResourceMedicalHistory, authorize.ActionList), rh.ListMedicalHistories)
	patients.Post("/medications", requirePerm(authorize.ResourceMedication, authorize.ActionCreate), rh.CreateMedication)
	patients.Get("/medications", requirePerm(authorize.ResourceMedication, authorize.ActionList), rh.ListMedications)
	patients.Post("/prescriptions", requirePerm(authorize.ResourcePrescription, authorize.ActionCreate), rh.CreatePrescription)
	patients.Get("/prescriptions", requirePerm(authorize.ResourcePrescription, authorize.ActionList), rh.ListPrescriptions)

	labReports := api.Group("/lab-reports", authRequired)
	labReports.Get("/", requirePerm(authorize.ResourceLabReport, authorize.ActionList), rh.ListAuthoredLabReports)
	labReports.Patch("/:id", requirePerm(authorize.ResourceLabReport, authorize.ActionUpdate), rh.UpdateLabReport)
	labReports.Delete("/:id", requirePerm(authorize.ResourceLabReport, authorize.ActionDelete), rh.DeleteLabReport)

	histories := api.Group("/medical-histories", authRequired)
	histories.Get("/", requirePerm(authorize.ResourceMedicalHistory, authorize.ActionList), rh.ListAuthoredMedicalHistories)
	histories.Patch("/:id", requirePerm(authorize.ResourceMedicalHistory, authorize.ActionUpdate), rh.UpdateMedicalHistory)
	histories.Delete("/:id", requirePerm(authorize.ResourceMedicalHistory, authorize.ActionDelete), rh.DeleteMedicalHistory)

	medications := api.Group("/medications", authRequired)
	medications.Get("/", requirePerm(authorize.ResourceMedication, authorize.ActionList), rh.ListAuthoredMedications)
	medications.Patch("/:id", requirePerm(authorize.ResourceMedication, authorize.ActionUpdate), rh.UpdateMedication)
	medications.Delete("/:id", requirePerm(authorize.ResourceMedication, authorize.ActionDelete), rh.DeleteMedication)
	medications.Post("/:id/progress", requirePerm(authorize.ResourceMedicationProgress, authorize.ActionCreate), rh.AddProgressNote)
	medications.Get("/:id/progress", requirePerm(authorize.ResourceMedicationProgress, authorize.ActionList), rh.ListProgressNotes)

	prescriptions := api.Group("/prescriptions", authRequired)
	prescriptions.Get("/", requirePerm(authorize.ResourcePrescription, authorize.ActionList), rh.ListAuthoredPrescriptions)
	prescriptions.Delete("/:id", requirePerm(authorize.ResourcePrescription, authorize.ActionDelete), rh.DeletePrescription)

	progress := api.Group("/medication-progress", authRequired)
	progress.Delete("/:id", requirePerm(authorize.ResourceMedicationProgress, authorize.ActionDelete), rh.DeleteProgressNote)
}
