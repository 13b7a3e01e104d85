package handler

import (
	"errors"
	"time"

	"github.com/gofiber/fiber/v3"
	"github.com/google/uuid"

	"github.com/curaline/curaline_backend/internal/service/records"
)

type RecordsHandler struct {
	svc records.Service
}

func NewRecordsHandler(svc records.Service) *RecordsHandler {
	return &RecordsHandler{svc: svc}
}

func mapRecordsError(c fiber.Ctx, err error) error {
	switch {
	case errors.Is(err, records.ErrNotFound),
		errors.Is(err, records.ErrPatientNotFound):
		return notFound(c, err.Error())
	case errors.Is(err, records.ErrForbidden),
		errors.Is(err, records.ErrNotLinked):
		return forbidden(c)
	default:
		return internalError(c)
	}
}

// ---------------------------------------------------------------------------
// Lab reports
// ---------------------------------------------------------------------------

// POST /patients/:id/lab-reports
func (h *RecordsHandler) CreateLabReport(c fiber.Ctx) error {
	actor, found := actorFromCtx(c)
	if !found {
		return unauthorized(c)
	}

	patientID, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return badRequest(c, "invalid patient id")
	}

	var body struct {
		Title      string     `json:"title"`
		Result     *string    `json:"result"`
		FileURL    *string    `json:"file_url"`
		ReportedAt *time.Time `json:"reported_at"`
		Notes      *string    `json:"notes"`
	}
	if err := c.Bind().JSON(&body); err != nil {
		return badRequest(c, "invalid request body")
	}
	if body.Title == "" {
		return badRequest(c, "title is required")
	}

	report, err := h.svc.CreateLabReport(c.Context(), actor, records.CreateLabReportRequest{
		PatientID:  patientID,
		Title:      body.Title,
		Result:     body.Result,
		FileURL:    body.FileURL,
		ReportedAt: body.ReportedAt,
		Notes:      body.Notes,
	})
	if err != nil {
		return mapRecordsError(c, err)
	}
	return created(c, report)
}

// GET /patients/:id/lab-reports
func (h *RecordsHandler) ListLabReports(c fiber.Ctx) error {
	actor, found := actorFromCtx(c)
	if !found {
		return unauthorized(c)
	}

	patientID, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return badRequest(c, "invalid patient id")
	}

	reports, err := h.svc.ListLabReports(c.Context(), actor, patientID)
	if err != nil {
		return mapRecordsError(c, err)
	}
	return ok(c, reports)
}

// PATCH /lab-reports/:id
func (h *RecordsHandler) UpdateLabReport(c fiber.Ctx) error {
	actor, found := actorFromCtx(c)
	if !found {
		return unauthorized(c)
	}

	reportID, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return badRequest(c, "invalid lab report id")
	}

	var body struct {
		Title      *string    `json:"title"`
		Result     *string    `json:"result"`
		FileURL    *string    `json:"file_url"`
		ReportedAt *time.Time `json:"reported_at"`
		Notes      *string    `json:"notes"`
	}
	if err := c.Bind().JSON(&body); err != nil {
		return badRequest(c, "invalid request body")
	}

	report, err := h.svc.UpdateLabReport(c.Context(), actor, reportID, records.UpdateLabReportRequest{
		Title:      body.Title,
		Result:     body.Result,
		FileURL:    body.FileURL,
		ReportedAt: body.ReportedAt,
		Notes:      body.Notes,
	})
	if err != nil {
		return mapRecordsError(c, err)
	}
	return ok(c, report)
}

// DELETE /lab-reports/:id
func (h *RecordsHandler) DeleteLabReport(c fiber.Ctx) error {
	actor, found := actorFromCtx(c)
	if !found {
		return unauthorized(c)
	}

	reportID, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return badRequest(c, "invalid lab report id")
	}

	if err := h.svc.DeleteLabReport(c.Context(), actor, reportID); err != nil {
		return mapRecordsError(c, err)
	}
	return noContent(c)
}

// ---------------------------------------------------------------------------
// Medical histories
// ---------------------------------------------------------------------------

// POST /patients/:id/medical-histories
func (h *RecordsHandler) CreateMedicalHistory(c fiber.Ctx) error {
	actor, found := actorFromCtx(c)
	if !found {
		return unauthorized(c)
	}

	patientID, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return badRequest(c, "invalid patient id")
	}

	var body struct {
		Condition   string     `json:"condition"`
		Diagnosis   *string    `json:"diagnosis"`
		DiagnosedAt *time.Time `json:"diagnosed_at"`
		Notes       *string    `json:"notes"`
	}
	if err := c.Bind().JSON(&body); err != nil {
		return badRequest(c, "invalid request body")
	}
	if body.Condition == "" {
		return badRequest(c, "condition is required")
	}

	history, err := h.svc.CreateMedicalHistory(c.Context(), actor, records.CreateMedicalHistoryRequest{
		PatientID:   patientID,
		Condition:   body.Condition,
		Diagnosis:   body.Diagnosis,
		DiagnosedAt: body.DiagnosedAt,
		Notes:       body.Notes,
	})
	if err != nil {
		return mapRecordsError(c, err)
	}
	return created(c, history)
}

// GET /patients/:id/medical-histories
func (h *RecordsHandler) ListMedicalHistories(c fiber.Ctx) error {
	actor, found := actorFromCtx(c)
	if !found {
		return unauthorized(c)
	}

	patientID, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return badRequest(c, "invalid patient id")
	}

	histories, err := h.svc.ListMedicalHistories(c.Context(), actor, patientID)
	if err != nil {
		return mapRecordsError(c, err)
	}
	return ok(c, histories)
}

// PATCH /medical-histories/:id
func (h *RecordsHandler) UpdateMedicalHistory(c fiber.Ctx) error {
	actor, found := actorFromCtx(c)
	if !found {
		return unauthorized(c)
	}

	historyID, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return badRequest(c, "invalid medical history id")
	}

	var body struct {
		Condition   *string    `json:"condition"`
		Diagnosis   *string    `json:"diagnosis"`
		DiagnosedAt *time.Time `json:"diagnosed_at"`
		Notes       *string    `json:"notes"`
	}
	if err := c.Bind().JSON(&body); err != nil {
		return badRequest(c, "invalid request body")
	}

	history, err := h.svc.UpdateMedicalHistory(c.Context(), actor, historyID, records.UpdateMedicalHistoryRequest{
		Condition:   body.Condition,
		Diagnosis:   body.Diagnosis,
		DiagnosedAt: body.DiagnosedAt,
		Notes:       body.Notes,
	})
	if err != nil {
		return mapRecordsError(c, err)
	}
	return ok(c, history)
}

// DELETE /medical-histories/:id
func (h *RecordsHandler) DeleteMedicalHistory(c fiber.Ctx) error {
	actor, found := actorFromCtx(c)
	if !found {
		return unauthorized(c)
	}

	historyID, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return badRequest(c, "invalid medical history id")
	}

	if err := h.svc.DeleteMedicalHistory(c.Context(), actor, historyID); err != nil {
		return mapRecordsError(c, err)
	}
	return noContent(c)
}

// ---------------------------------------------------------------------------
// Medications
// ---------------------------------------------------------------------------

// POST /patients/:id/medications
func (h *RecordsHandler) CreateMedication(c fiber.Ctx) error {
	actor, found := actorFromCtx(c)
	if !found {
		return unauthorized(c)
	}

	patientID, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return badRequest(c, "invalid patient id")
	}

	var body struct {
		Name         string     `json:"name"`
		Dosage       *string    `json:"dosage"`
		Frequency    *string    `json:"frequency"`
		StartDate    *time.Time `json:"start_date"`
		EndDate      *time.Time `json:"end_date"`
		Instructions *string    `json:"instructions"`
	}
	if err := c.Bind().JSON(&body); err != nil {
		return badRequest(c, "invalid request body")
	}
	if body.Name == "" {
		return badRequest(c, "name is required")
	}

	med, err := h.svc.CreateMedication(c.Context(), actor, records.CreateMedicationRequest{
		PatientID:    patientID,
		Name:         body.Name,
		Dosage:       body.Dosage,
		Frequency:    body.Frequency,
		StartDate:    body.StartDate,
		EndDate:      body.EndDate,
		Instructions: body.Instructions,
	})
	if err != nil {
		return mapRecordsError(c, err)
	}
	return created(c, med)
}

// GET /patients/:id/medications
func (h *RecordsHandler) ListMedications(c fiber.Ctx) error {
	actor, found := actorFromCtx(c)
	if !found {
		return unauthorized(c)
	}

	patientID, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return badRequest(c, "invalid patient id")
	}

	meds, err := h.svc.ListMedications(c.Context(), actor, patientID)
	if err != nil {
		return mapRecordsError(c, err)
	}
	return ok(c, meds)
}

// PATCH /medications/:id
func (h *RecordsHandler) UpdateMedication(c fiber.Ctx) error {
	actor, found := actorFromCtx(c)
	if !found {
		return unauthorized(c)
	}

	medicationID, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return badRequest(c, "invalid medication id")
	}

	var body struct {
		Name         *string    `json:"name"`
		Dosage       *string    `json:"dosage"`
		Frequency    *string    `json:"frequency"`
		StartDate    *time.Time `json:"start_date"`
		EndDate      *time.Time `json:"end_date"`
		Instructions *string    `json:"instructions"`
	}
	if err := c.Bind().JSON(&body); err != nil {
		return badRequest(c, "invalid request body")
	}

	med, err := h.svc.UpdateMedication(c.Context(), actor, medicationID, records.UpdateMedicationRequest{
		Name:         body.Name,
		Dosage:       body.Dosage,
		Frequency:    body.Frequency,
		StartDate:    body.StartDate,
		EndDate:      body.EndDate,
		Instructions: body.Instructions,
	})
	if err != nil {
		return mapRecordsError(c, err)
	}
	return ok(c, med)
}

// DELETE /medications/:id
func (h *RecordsHandler) DeleteMedication(c fiber.Ctx) error {
	actor, found := actorFromCtx(c)
	if !found {
		return unauthorized(c)
	}

	medicationID, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return badRequest(c, "invalid medication id")
	}

	if err := h.svc.DeleteMedication(c.Context(), actor, medicationID); err != nil {
		return mapRecordsError(c, err)
	}
	return noContent(c)
}

// ---------------------------------------------------------------------------
// Prescriptions
// ---------------------------------------------------------------------------

// POST /patients/:id/prescriptions
func (h *RecordsHandler) CreatePrescription(c fiber.Ctx) error {
	actor, found := actorFromCtx(c)
	if !found {
		return unauthorized(c)
	}

	patientID, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return badRequest(c, "invalid patient id")
	}

	var body struct {
		Title          string     `json:"title"`
		Notes          *string    `json:"notes"`
		FileKey        *string    `json:"file_key"`
		FileName       *string    `json:"file_name"`
		PrescribedDate *time.Time `json:"prescribed_date"`
	}
	if err := c.Bind().JSON(&body); err != nil {
		return badRequest(c, "invalid request body")
	}
	if body.Title == "" {
		return badRequest(c, "title is required")
	}

	rx, err := h.svc.CreatePrescription(c.Context(), actor, records.CreatePrescriptionRequest{
		PatientID:      patientID,
		Title:          body.Title,
		Notes:          body.Notes,
		FileKey:        body.FileKey,
		FileName:       body.FileName,
		PrescribedDate: body.PrescribedDate,
	})
	if err != nil {
		return mapRecordsError(c, err)
	}
	return created(c, rx)
}

// GET /patients/:id/prescriptions
func (h *RecordsHandler) ListPrescriptions(c fiber.Ctx) error {
	actor, found := actorFromCtx(c)
	if !found {
		return unauthorized(c)
	}

	patientID, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return badRequest(c, "invalid patient id")
	}

	rxs, err := h.svc.ListPrescriptions(c.Context(), actor, patientID)
	if err != nil {
		return mapRecordsError(c, err)
	}
	return ok(c, rxs)
}

// DELETE /prescriptions/:id
func (h *RecordsHandler) DeletePrescription(c fiber.Ctx) error {
	actor, found := actorFromCtx(c)
	if !found {
		return unauthorized(c)
	}

	prescriptionID, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return badRequest(c, "invalid prescription id")
	}

	if err := h.svc.DeletePrescription(c.Context(), actor, prescriptionID); err != nil {
		return mapRecordsError(c, err)
	}
	return noContent(c)
}

// ---------------------------------------------------------------------------
// Medication progress notes
// ---------------------------------------------------------------------------

// POST /medications/:id/progress
func (h *RecordsHandler) AddProgressNote(c fiber.Ctx) error {
	actor, found := actorFromCtx(c)
	if !found {
		return unauthorized(c)
	}

	medicationID, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return badRequest(c, "invalid medication id")
	}

	var body struct {
		Note string `json:"note"`
	}
	if err := c.Bind().JSON(&body); err != nil {
		return badRequest(c, "invalid request body")
	}
	if body.Note == "" {
		return badRequest(c, "note is required")
	}

	note, err := h.svc.AddProgressNote(c.Context(), actor, medicationID, body.Note)
	if err != nil {
		return mapRecordsError(c, err)
	}
	return created(c, note)
}

// GET /medications/:id/progress
func (h *RecordsHandler) ListProgressNotes(c fiber.Ctx) error {
	actor, found := actorFromCtx(c)
	if !found {
		return unauthorized(c)
	}

	medicationID, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return badRequest(c, "invalid medication id")
	}

	notes, err := h.svc.ListProgressNotes(c.Context(), actor, medicationID)
	if err != nil {
		return mapRecordsError(c, err)
	}
	return ok(c, notes)
}

// DELETE /medication-progress/:id
func (h *RecordsHandler) DeleteProgressNote(c fiber.Ctx) error {
	actor, found := actorFromCtx(c)
	if !found {
		return unauthorized(c)
	}

	noteID, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return badRequest(c, "invalid progress note id")
	}

	if err := h.svc.DeleteProgressNote(c.Context(), actor, noteID); err != nil {
		return mapRecordsError(c, err)
	}
	return noContent(c)
}

// GET /lab-reports
func (h *RecordsHandler) ListAuthoredLabReports(c fiber.Ctx) error {
	actor, found := actorFromCtx(c)
	if !found {
		return unauthorized(c)
	}

	reports, err := h.svc.ListAuthoredLabReports(c.Context(), actor)
	if err != nil {
		return mapRecordsError(c, err)
	}
	return ok(c, reports)
}

// GET /medical-histories
func (h *RecordsHandler) ListAuthoredMedicalHistories(c fiber.Ctx) error {
	actor, found := actorFromCtx(c)
	if !found {
		return unauthorized(c)
	}

	histories, err := h.svc.ListAuthoredMedicalHistories(c.Context(), actor)
	if err != nil {
		return mapRecordsError(c, err)
	}
	return ok(c, histories)
}

// GET /medications
func (h *RecordsHandler) ListAuthoredMedications(c fiber.Ctx) error {
	actor, found := actorFromCtx(c)
	if !found {
		return unauthorized(c)
	}

	meds, err := h.svc.ListAuthoredMedications(c.Context(), actor)
	if err != nil {
		return mapRecordsError(c, err)
	}
	return ok(c, meds)
}

// GET /prescriptions
func (h *RecordsHandler) ListAuthoredPrescriptions(c fiber.Ctx) error {
	actor, found := actorFromCtx(c)
	if !found {
		return unauthorized(c)
	}

	rxs, err := h.svc.ListAuthoredPrescriptions(c.Context(), actor)
	if err != nil {
		return mapRecordsError(c, err)
	}
	return ok(c, rxs)
}
