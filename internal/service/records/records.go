package records

import (
	"context"
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql"
	"github.com/google/uuid"

	"github.com/curaline/curaline_backend/internal/repo"
	entlink "github.com/curaline/curaline_backend/internal/repo/doctorpatient"
	entlab "github.com/curaline/curaline_backend/internal/repo/labreport"
	enthistory "github.com/curaline/curaline_backend/internal/repo/medicalhistory"
	entmed "github.com/curaline/curaline_backend/internal/repo/medication"
	entprogress "github.com/curaline/curaline_backend/internal/repo/medicationprogress"
	entrx "github.com/curaline/curaline_backend/internal/repo/prescription"
	"github.com/curaline/curaline_backend/pkg/reqctx"
)

// ---------------------------------------------------------------------------
// DTOs
// ---------------------------------------------------------------------------

type CreateLabReportRequest struct {
	PatientID  uuid.UUID
	Title      string
	Result     *string
	FileURL    *string
	ReportedAt *time.Time
	Notes      *string
}

type UpdateLabReportRequest struct {
	Title      *string
	Result     *string
	FileURL    *string
	ReportedAt *time.Time
	Notes      *string
}

type CreateMedicalHistoryRequest struct {
	PatientID   uuid.UUID
	Condition   string
	Diagnosis   *string
	DiagnosedAt *time.Time
	Notes       *string
}

type UpdateMedicalHistoryRequest struct {
	Condition   *string
	Diagnosis   *string
	DiagnosedAt *time.Time
	Notes       *string
}

type CreateMedicationRequest struct {
	PatientID    uuid.UUID
	Name         string
	Dosage       *string
	Frequency    *string
	StartDate    *time.Time
	EndDate      *time.Time
	Instructions *string
}

type CreatePrescriptionRequest struct {
	PatientID      uuid.UUID
	Title          string
	Notes          *string
	FileKey        *string
	FileName       *string
	PrescribedDate *time.Time
}

type UpdateMedicationRequest struct {
	Name         *string
	Dosage       *string
	Frequency    *string
	StartDate    *time.Time
	EndDate      *time.Time
	Instructions *string
}

// ---------------------------------------------------------------------------
// Service interface
// ---------------------------------------------------------------------------

type Service interface {
	// Lab reports
	CreateLabReport(ctx context.Context, actor reqctx.Actor, req CreateLabReportRequest) (*repo.LabReport, error)
	ListLabReports(ctx context.Context, actor reqctx.Actor, patientID uuid.UUID) ([]*repo.LabReport, error)
	ListAuthoredLabReports(ctx context.Context, actor reqctx.Actor) ([]*repo.LabReport, error)
	UpdateLabReport(ctx context.Context, actor reqctx.Actor, reportID uuid.UUID, req UpdateLabReportRequest) (*repo.LabReport, error)
	DeleteLabReport(ctx context.Context, actor reqctx.Actor, reportID uuid.UUID) error

	// Medical histories
	CreateMedicalHistory(ctx context.Context, actor reqctx.Actor, req CreateMedicalHistoryRequest) (*repo.MedicalHistory, error)
	ListMedicalHistories(ctx context.Context, actor reqctx.Actor, patientID uuid.UUID) ([]*repo.MedicalHistory, error)
	ListAuthoredMedicalHistories(ctx context.Context, actor reqctx.Actor) ([]*repo.MedicalHistory, error)
	UpdateMedicalHistory(ctx context.Context, actor reqctx.Actor, historyID uuid.UUID, req UpdateMedicalHistoryRequest) (*repo.MedicalHistory, error)
	DeleteMedicalHistory(ctx context.Context, actor reqctx.Actor, historyID uuid.UUID) error

	// Medications
	CreateMedication(ctx context.Context, actor reqctx.Actor, req CreateMedicationRequest) (*repo.Medication, error)
	ListMedications(ctx context.Context, actor reqctx.Actor, patientID uuid.UUID) ([]*repo.Medication, error)
	ListAuthoredMedications(ctx context.Context, actor reqctx.Actor) ([]*repo.Medication, error)
	UpdateMedication(ctx context.Context, actor reqctx.Actor, medicationID uuid.UUID, req UpdateMedicationRequest) (*repo.Medication, error)
	DeleteMedication(ctx context.Context, actor reqctx.Actor, medicationID uuid.UUID) error

	// Prescriptions
	CreatePrescription(ctx context.Context, actor reqctx.Actor, req CreatePrescriptionRequest) (*repo.Prescription, error)
	ListPrescriptions(ctx context.Context, actor reqctx.Actor, patientID uuid.UUID) ([]*repo.Prescription, error)
	ListAuthoredPrescriptions(ctx context.Context, actor reqctx.Actor) ([]*repo.Prescription, error)
	DeletePrescription(ctx context.Context, actor reqctx.Actor, prescriptionID uuid.UUID) error

	// Medication progress notes
	AddProgressNote(ctx context.Context, actor reqctx.Actor, medicationID uuid.UUID, note string) (*repo.MedicationProgress, error)
	ListProgressNotes(ctx context.Context, actor reqctx.Actor, medicationID uuid.UUID) ([]*repo.MedicationProgress, error)
	DeleteProgressNote(ctx context.Context, actor reqctx.Actor, noteID uuid.UUID) error
}

// ---------------------------------------------------------------------------
// Implementation
// ---------------------------------------------------------------------------

type recordsService struct {
	db *repo.Client
}

func New(db *repo.Client) Service {
	return &recordsService{db: db}
}

// ensureWrite gates every mutation: only a doctor linked to the patient, or
// an admin, may author medical records.
func (s *recordsService) ensureWrite(ctx context.Context, actor reqctx.Actor, patientID uuid.UUID) error {
	if actor.IsAdmin() {
		return nil
	}
	if !actor.IsDoctor() {
		return ErrForbidden
	}
	linked, err := s.db.DoctorPatient.Query().
		Where(
			entlink.DoctorID(actor.UserID),
			entlink.PatientID(patientID),
		).
		Exist(ctx)
	if err != nil {
		return fmt.Errorf("check doctor-patient link: %w", err)
	}
	if !linked {
		return ErrNotLinked
	}
	return nil
}

// ensureRead gates listings: patients see their own records, linked doctors
// see their patients', admins see everything.
func (s *recordsService) ensureRead(ctx context.Context, actor reqctx.Actor, patientID uuid.UUID) error {
	if actor.IsPatient() {
		if !actor.Is(patientID) {
			return ErrForbidden
		}
		return nil
	}
	return s.ensureWrite(ctx, actor, patientID)
}

// ---------------------------------------------------------------------------
// Lab reports
// ---------------------------------------------------------------------------

func (s *recordsService) CreateLabReport(ctx context.Context, actor reqctx.Actor, req CreateLabReportRequest) (*repo.LabReport, error) {
	if err := s.ensureWrite(ctx, actor, req.PatientID); err != nil {
		return nil, err
	}

	c := s.db.LabReport.Create().
		SetDoctorID(actor.UserID).
		SetPatientID(req.PatientID).
		SetTitle(req.Title)
	if req.Result != nil {
		c = c.SetNillableResult(req.Result)
	}
	if req.FileURL != nil {
		c = c.SetNillableFileURL(req.FileURL)
	}
	if req.ReportedAt != nil {
		c = c.SetNillableReportedAt(req.ReportedAt)
	}
	if req.Notes != nil {
		c = c.SetNillableNotes(req.Notes)
	}

	report, err := c.Save(ctx)
	if err != nil {
		return nil, fmt.Errorf("create lab report: %w", err)
	}
	return report, nil
}

func (s *recordsService) ListLabReports(ctx context.Context, actor reqctx.Actor, patientID uuid.UUID) ([]*repo.LabReport, error) {
	if err := s.ensureRead(ctx, actor, patientID); err != nil {
		return nil, err
	}
	reports, err := s.db.LabReport.Query().
		Where(
			entlab.PatientID(patientID),
			entlab.DeletedAtIsNil(),
		).
		Order(entlab.ByCreatedAt(sql.OrderDesc())).
		All(ctx)
	if err != nil {
		return nil, fmt.Errorf("list lab reports: %w", err)
	}
	return reports, nil
}

// ListAuthoredLabReports returns reports the acting doctor wrote, across all
// of their patients. Admins see everything.
func (s *recordsService) ListAuthoredLabReports(ctx context.Context, actor reqctx.Actor) ([]*repo.LabReport, error) {
	q := s.db.LabReport.Query().Where(entlab.DeletedAtIsNil())
	switch {
	case actor.IsAdmin():
	case actor.IsDoctor():
		q = q.Where(entlab.DoctorID(actor.UserID))
	default:
		return nil, ErrForbidden
	}
	reports, err := q.Order(entlab.ByCreatedAt(sql.OrderDesc())).All(ctx)
	if err != nil {
		return nil, fmt.Errorf("list authored lab reports: %w", err)
	}
	return reports, nil
}

func (s *recordsService) UpdateLabReport(ctx context.Context, actor reqctx.Actor, reportID uuid.UUID, req UpdateLabReportRequest) (*repo.LabReport, error) {
	report, err := s.db.LabReport.Query().
		Where(entlab.ID(reportID), entlab.DeletedAtIsNil()).
		Only(ctx)
	if err != nil {
		if repo.IsNotFound(err) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("get lab report: %w", err)
	}
	if err := s.ensureWrite(ctx, actor, report.PatientID); err != nil {
		return nil, err
	}

	upd := s.db.LabReport.UpdateOne(report)
	if req.Title != nil {
		upd = upd.SetTitle(*req.Title)
	}
	if req.Result != nil {
		upd = upd.SetResult(*req.Result)
	}
	if req.FileURL != nil {
		upd = upd.SetFileURL(*req.FileURL)
	}
	if req.ReportedAt != nil {
		upd = upd.SetReportedAt(*req.ReportedAt)
	}
	if req.Notes != nil {
		upd = upd.SetNotes(*req.Notes)
	}

	updated, err := upd.Save(ctx)
	if err != nil {
		return nil, fmt.Errorf("update lab report: %w", err)
	}
	return updated, nil
}

func (s *recordsService) DeleteLabReport(ctx context.Context, actor reqctx.Actor, reportID uuid.UUID) error {
	report, err := s.db.LabReport.Query().
		Where(entlab.ID(reportID), entlab.DeletedAtIsNil()).
		Only(ctx)
	if err != nil {
		if repo.IsNotFound(err) {
			return ErrNotFound
		}
		return fmt.Errorf("get lab report: %w", err)
	}
	if err := s.ensureWrite(ctx, actor, report.PatientID); err != nil {
		return err
	}
	return s.db.LabReport.UpdateOne(report).
		SetDeletedAt(time.Now()).
		Exec(ctx)
}

// ---------------------------------------------------------------------------
// Medical histories
// ---------------------------------------------------------------------------

func (s *recordsService) CreateMedicalHistory(ctx context.Context, actor reqctx.Actor, req CreateMedicalHistoryRequest) (*repo.MedicalHistory, error) {
	if err := s.ensureWrite(ctx, actor, req.PatientID); err != nil {
		return nil, err
	}

	c := s.db.MedicalHistory.Create().
		SetDoctorID(actor.UserID).
		SetPatientID(req.PatientID).
		SetCondition(req.Condition)
	if req.Diagnosis != nil {
		c = c.SetNillableDiagnosis(req.Diagnosis)
	}
	if req.DiagnosedAt != nil {
		c = c.SetNillableDiagnosedAt(req.DiagnosedAt)
	}
	if req.Notes != nil {
		c = c.SetNillableNotes(req.Notes)
	}

	history, err := c.Save(ctx)
	if err != nil {
		return nil, fmt.Errorf("create medical history: %w", err)
	}
	return history, nil
}

func (s *recordsService) ListMedicalHistories(ctx context.Context, actor reqctx.Actor, patientID uuid.UUID) ([]*repo.MedicalHistory, error) {
	if err := s.ensureRead(ctx, actor, patientID); err != nil {
		return nil, err
	}
	histories, err := s.db.MedicalHistory.Query().
		Where(
			enthistory.PatientID(patientID),
			enthistory.DeletedAtIsNil(),
		).
		Order(enthistory.ByCreatedAt(sql.OrderDesc())).
		All(ctx)
	if err != nil {
		return nil, fmt.Errorf("list medical histories: %w", err)
	}
	return histories, nil
}

func (s *recordsService) ListAuthoredMedicalHistories(ctx context.Context, actor reqctx.Actor) ([]*repo.MedicalHistory, error) {
	q := s.db.MedicalHistory.Query().Where(enthistory.DeletedAtIsNil())
	switch {
	case actor.IsAdmin():
	case actor.IsDoctor():
		q = q.Where(enthistory.DoctorID(actor.UserID))
	default:
		return nil, ErrForbidden
	}
	histories, err := q.Order(enthistory.ByCreatedAt(sql.OrderDesc())).All(ctx)
	if err != nil {
		return nil, fmt.Errorf("list authored medical histories: %w", err)
	}
	return histories, nil
}

func (s *recordsService) UpdateMedicalHistory(ctx context.Context, actor reqctx.Actor, historyID uuid.UUID, req UpdateMedicalHistoryRequest) (*repo.MedicalHistory, error) {
	history, err := s.db.MedicalHistory.Query().
		Where(enthistory.ID(historyID), enthistory.DeletedAtIsNil()).
		Only(ctx)
	if err != nil {
		if repo.IsNotFound(err) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("get medical history: %w", err)
	}
	if err := s.ensureWrite(ctx, actor, history.PatientID); err != nil {
		return nil, err
	}

	upd := s.db.MedicalHistory.UpdateOne(history)
	if req.Condition != nil {
		upd = upd.SetCondition(*req.Condition)
	}
	if req.Diagnosis != nil {
		upd = upd.SetDiagnosis(*req.Diagnosis)
	}
	if req.DiagnosedAt != nil {
		upd = upd.SetDiagnosedAt(*req.DiagnosedAt)
	}
	if req.Notes != nil {
		upd = upd.SetNotes(*req.Notes)
	}

	updated, err := upd.Save(ctx)
	if err != nil {
		return nil, fmt.Errorf("update medical history: %w", err)
	}
	return updated, nil
}

func (s *recordsService) DeleteMedicalHistory(ctx context.Context, actor reqctx.Actor, historyID uuid.UUID) error {
	history, err := s.db.MedicalHistory.Query().
		Where(enthistory.ID(historyID), enthistory.DeletedAtIsNil()).
		Only(ctx)
	if err != nil {
		if repo.IsNotFound(err) {
			return ErrNotFound
		}
		return fmt.Errorf("get medical history: %w", err)
	}
	if err := s.ensureWrite(ctx, actor, history.PatientID); err != nil {
		return err
	}
	return s.db.MedicalHistory.UpdateOne(history).
		SetDeletedAt(time.Now()).
		Exec(ctx)
}

// ---------------------------------------------------------------------------
// Medications
// ---------------------------------------------------------------------------

func (s *recordsService) CreateMedication(ctx context.Context, actor reqctx.Actor, req CreateMedicationRequest) (*repo.Medication, error) {
	if err := s.ensureWrite(ctx, actor, req.PatientID); err != nil {
		return nil, err
	}

	c := s.db.Medication.Create().
		SetDoctorID(actor.UserID).
		SetPatientID(req.PatientID).
		SetName(req.Name)
	if req.Dosage != nil {
		c = c.SetNillableDosage(req.Dosage)
	}
	if req.Frequency != nil {
		c = c.SetNillableFrequency(req.Frequency)
	}
	if req.StartDate != nil {
		c = c.SetNillableStartDate(req.StartDate)
	}
	if req.EndDate != nil {
		c = c.SetNillableEndDate(req.EndDate)
	}
	if req.Instructions != nil {
		c = c.SetNillableInstructions(req.Instructions)
	}

	med, err := c.Save(ctx)
	if err != nil {
		return nil, fmt.Errorf("create medication: %w", err)
	}
	return med, nil
}

func (s *recordsService) ListMedications(ctx context.Context, actor reqctx.Actor, patientID uuid.UUID) ([]*repo.Medication, error) {
	if err := s.ensureRead(ctx, actor, patientID); err != nil {
		return nil, err
	}
	meds, err := s.db.Medication.Query().
		Where(
			entmed.PatientID(patientID),
			entmed.DeletedAtIsNil(),
		).
		Order(entmed.ByCreatedAt(sql.OrderDesc())).
		All(ctx)
	if err != nil {
		return nil, fmt.Errorf("list medications: %w", err)
	}
	return meds, nil
}

func (s *recordsService) ListAuthoredMedications(ctx context.Context, actor reqctx.Actor) ([]*repo.Medication, error) {
	q := s.db.Medication.Query().Where(entmed.DeletedAtIsNil())
	switch {
	case actor.IsAdmin():
	case actor.IsDoctor():
		q = q.Where(entmed.DoctorID(actor.UserID))
	default:
		return nil, ErrForbidden
	}
	meds, err := q.Order(entmed.ByCreatedAt(sql.OrderDesc())).All(ctx)
	if err != nil {
		return nil, fmt.Errorf("list authored medications: %w", err)
	}
	return meds, nil
}

func (s *recordsService) UpdateMedication(ctx context.Context, actor reqctx.Actor, medicationID uuid.UUID, req UpdateMedicationRequest) (*repo.Medication, error) {
	med, err := s.getMedication(ctx, medicationID)
	if err != nil {
		return nil, err
	}
	if err := s.ensureWrite(ctx, actor, med.PatientID); err != nil {
		return nil, err
	}

	upd := s.db.Medication.UpdateOne(med)
	if req.Name != nil {
		upd = upd.SetName(*req.Name)
	}
	if req.Dosage != nil {
		upd = upd.SetDosage(*req.Dosage)
	}
	if req.Frequency != nil {
		upd = upd.SetFrequency(*req.Frequency)
	}
	if req.StartDate != nil {
		upd = upd.SetStartDate(*req.StartDate)
	}
	if req.EndDate != nil {
		upd = upd.SetEndDate(*req.EndDate)
	}
	if req.Instructions != nil {
		upd = upd.SetInstructions(*req.Instructions)
	}

	updated, err := upd.Save(ctx)
	if err != nil {
		return nil, fmt.Errorf("update medication: %w", err)
	}
	return updated, nil
}

func (s *recordsService) DeleteMedication(ctx context.Context, actor reqctx.Actor, medicationID uuid.UUID) error {
	med, err := s.getMedication(ctx, medicationID)
	if err != nil {
		return err
	}
	if err := s.ensureWrite(ctx, actor, med.PatientID); err != nil {
		return err
	}
	return s.db.Medication.UpdateOne(med).
		SetDeletedAt(time.Now()).
		Exec(ctx)
}

// ---------------------------------------------------------------------------
// Prescriptions
// ---------------------------------------------------------------------------

func (s *recordsService) CreatePrescription(ctx context.Context, actor reqctx.Actor, req CreatePrescriptionRequest) (*repo.Prescription, error) {
	if err := s.ensureWrite(ctx, actor, req.PatientID); err != nil {
		return nil, err
	}

	c := s.db.Prescription.Create().
		SetDoctorID(actor.UserID).
		SetPatientID(req.PatientID).
		SetTitle(req.Title)
	if req.Notes != nil {
		c = c.SetNillableNotes(req.Notes)
	}
	if req.FileKey != nil {
		c = c.SetNillableFileKey(req.FileKey)
	}
	if req.FileName != nil {
		c = c.SetNillableFileName(req.FileName)
	}
	if req.PrescribedDate != nil {
		c = c.SetPrescribedDate(*req.PrescribedDate)
	}

	rx, err := c.Save(ctx)
	if err != nil {
		return nil, fmt.Errorf("create prescription: %w", err)
	}
	return rx, nil
}

func (s *recordsService) ListPrescriptions(ctx context.Context, actor reqctx.Actor, patientID uuid.UUID) ([]*repo.Prescription, error) {
	if err := s.ensureRead(ctx, actor, patientID); err != nil {
		return nil, err
	}
	rxs, err := s.db.Prescription.Query().
		Where(
			entrx.PatientID(patientID),
			entrx.DeletedAtIsNil(),
		).
		Order(entrx.ByPrescribedDate(sql.OrderDesc())).
		All(ctx)
	if err != nil {
		return nil, fmt.Errorf("list prescriptions: %w", err)
	}
	return rxs, nil
}

func (s *recordsService) ListAuthoredPrescriptions(ctx context.Context, actor reqctx.Actor) ([]*repo.Prescription, error) {
	q := s.db.Prescription.Query().Where(entrx.DeletedAtIsNil())
	switch {
	case actor.IsAdmin():
	case actor.IsDoctor():
		q = q.Where(entrx.DoctorID(actor.UserID))
	default:
		return nil, ErrForbidden
	}
	rxs, err := q.Order(entrx.ByPrescribedDate(sql.OrderDesc())).All(ctx)
	if err != nil {
		return nil, fmt.Errorf("list authored prescriptions: %w", err)
	}
	return rxs, nil
}

func (s *recordsService) DeletePrescription(ctx context.Context, actor reqctx.Actor, prescriptionID uuid.UUID) error {
	rx, err := s.db.Prescription.Query().
		Where(entrx.ID(prescriptionID), entrx.DeletedAtIsNil()).
		Only(ctx)
	if err != nil {
		if repo.IsNotFound(err) {
			return ErrNotFound
		}
		return fmt.Errorf("get prescription: %w", err)
	}
	if err := s.ensureWrite(ctx, actor, rx.PatientID); err != nil {
		return err
	}
	return s.db.Prescription.UpdateOne(rx).
		SetDeletedAt(time.Now()).
		Exec(ctx)
}

// ---------------------------------------------------------------------------
// Medication progress notes
// ---------------------------------------------------------------------------

func (s *recordsService) AddProgressNote(ctx context.Context, actor reqctx.Actor, medicationID uuid.UUID, note string) (*repo.MedicationProgress, error) {
	med, err := s.getMedication(ctx, medicationID)
	if err != nil {
		return nil, err
	}
	if err := s.ensureWrite(ctx, actor, med.PatientID); err != nil {
		return nil, err
	}

	progress, err := s.db.MedicationProgress.Create().
		SetMedicationID(medicationID).
		SetAuthorID(actor.UserID).
		SetNote(note).
		Save(ctx)
	if err != nil {
		return nil, fmt.Errorf("create progress note: %w", err)
	}
	return progress, nil
}

func (s *recordsService) ListProgressNotes(ctx context.Context, actor reqctx.Actor, medicationID uuid.UUID) ([]*repo.MedicationProgress, error) {
	med, err := s.getMedication(ctx, medicationID)
	if err != nil {
		return nil, err
	}
	if err := s.ensureRead(ctx, actor, med.PatientID); err != nil {
		return nil, err
	}

	notes, err := s.db.MedicationProgress.Query().
		Where(
			entprogress.MedicationID(medicationID),
			entprogress.DeletedAtIsNil(),
		).
		Order(entprogress.ByCreatedAt(sql.OrderAsc())).
		All(ctx)
	if err != nil {
		return nil, fmt.Errorf("list progress notes: %w", err)
	}
	return notes, nil
}

func (s *recordsService) DeleteProgressNote(ctx context.Context, actor reqctx.Actor, noteID uuid.UUID) error {
	note, err := s.db.MedicationProgress.Query().
		Where(entprogress.ID(noteID), entprogress.DeletedAtIsNil()).
		Only(ctx)
	if err != nil {
		if repo.IsNotFound(err) {
			return ErrNotFound
		}
		return fmt.Errorf("get progress note: %w", err)
	}

	med, err := s.getMedication(ctx, note.MedicationID)
	if err != nil {
		return err
	}
	if err := s.ensureWrite(ctx, actor, med.PatientID); err != nil {
		return err
	}
	return s.db.MedicationProgress.UpdateOne(note).
		SetDeletedAt(time.Now()).
		Exec(ctx)
}

func (s *recordsService) getMedication(ctx context.Context, medicationID uuid.UUID) (*repo.Medication, error) {
	med, err := s.db.Medication.Query().
		Where(entmed.ID(medicationID), entmed.DeletedAtIsNil()).
		Only(ctx)
	if err != nil {
		if repo.IsNotFound(err) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("get medication: %w", err)
	}
	return med, nil
}
