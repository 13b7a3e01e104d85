package availability

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/curaline/curaline_backend/internal/repo"
	entslot "github.com/curaline/curaline_backend/internal/repo/availabilityslot"
	enttimeoff "github.com/curaline/curaline_backend/internal/repo/timeoff"
	"github.com/curaline/curaline_backend/pkg/reqctx"
)

// ---------------------------------------------------------------------------
// DTOs
// ---------------------------------------------------------------------------

type CreateSlotRequest struct {
	StartTime time.Time
	EndTime   time.Time
}

type CreateTimeOffRequest struct {
	StartTime time.Time
	EndTime   time.Time
	Reason    *string
}

// PublicSlotFilters narrows the public slot listing.
type PublicSlotFilters struct {
	DoctorID *uuid.UUID
	IsBooked *bool
	From     *time.Time
	To       *time.Time
	Page     int
	PerPage  int
}

// PublicSlotPage is one page of publicly visible slots. Total counts the
// matching rows before time-off exclusion, so it can overstate what the
// items actually show.
type PublicSlotPage struct {
	Items   []*repo.AvailabilitySlot
	Total   int
	Page    int
	PerPage int
}

// ---------------------------------------------------------------------------
// Interface
// ---------------------------------------------------------------------------

type Service interface {
	// Slot management (doctor's own)
	CreateSlot(ctx context.Context, actor reqctx.Actor, req CreateSlotRequest) (*repo.AvailabilitySlot, error)
	ListSlots(ctx context.Context, actor reqctx.Actor, from, to time.Time) ([]*repo.AvailabilitySlot, error)
	DeleteSlot(ctx context.Context, actor reqctx.Actor, slotID uuid.UUID) error

	// Time off
	CreateTimeOff(ctx context.Context, actor reqctx.Actor, req CreateTimeOffRequest) (*repo.TimeOff, error)
	ListTimeOff(ctx context.Context, actor reqctx.Actor) ([]*repo.TimeOff, error)
	DeleteTimeOff(ctx context.Context, actor reqctx.Actor, timeOffID uuid.UUID) error

	// Public, any authenticated role
	ListPublic(ctx context.Context, filters PublicSlotFilters) (*PublicSlotPage, error)
}

// ---------------------------------------------------------------------------
// Implementation
// ---------------------------------------------------------------------------

type availabilityService struct {
	db *repo.Client
}

func New(db *repo.Client) Service {
	return &availabilityService{db: db}
}

// ---------------------------------------------------------------------------
// Slots
// ---------------------------------------------------------------------------

func (s *availabilityService) CreateSlot(ctx context.Context, actor reqctx.Actor, req CreateSlotRequest) (*repo.AvailabilitySlot, error) {
	if !req.EndTime.After(req.StartTime) {
		return nil, ErrInvalidTimeRange
	}

	slot, err := s.db.AvailabilitySlot.Create().
		SetDoctorID(actor.UserID).
		SetStartTime(req.StartTime).
		SetEndTime(req.EndTime).
		Save(ctx)
	if err != nil {
		return nil, fmt.Errorf("create slot: %w", err)
	}
	return slot, nil
}

func (s *availabilityService) ListSlots(ctx context.Context, actor reqctx.Actor, from, to time.Time) ([]*repo.AvailabilitySlot, error) {
	q := s.db.AvailabilitySlot.Query().
		Where(entslot.DoctorID(actor.UserID))

	if !from.IsZero() {
		q = q.Where(entslot.StartTimeGTE(from))
	}
	if !to.IsZero() {
		q = q.Where(entslot.StartTimeLT(to))
	}

	slots, err := q.Order(entslot.ByStartTime()).All(ctx)
	if err != nil {
		return nil, fmt.Errorf("list slots: %w", err)
	}
	return slots, nil
}

func (s *availabilityService) DeleteSlot(ctx context.Context, actor reqctx.Actor, slotID uuid.UUID) error {
	slot, err := s.db.AvailabilitySlot.Query().
		Where(entslot.ID(slotID), entslot.DoctorID(actor.UserID)).
		Only(ctx)
	if err != nil {
		if repo.IsNotFound(err) {
			return ErrSlotNotFound
		}
		return fmt.Errorf("get slot: %w", err)
	}
	return s.db.AvailabilitySlot.DeleteOne(slot).Exec(ctx)
}

// ---------------------------------------------------------------------------
// Time off
// ---------------------------------------------------------------------------

func (s *availabilityService) CreateTimeOff(ctx context.Context, actor reqctx.Actor, req CreateTimeOffRequest) (*repo.TimeOff, error) {
	if !req.EndTime.After(req.StartTime) {
		return nil, ErrInvalidTimeRange
	}

	c := s.db.TimeOff.Create().
		SetDoctorID(actor.UserID).
		SetStartTime(req.StartTime).
		SetEndTime(req.EndTime)

	if req.Reason != nil {
		c = c.SetReason(*req.Reason)
	}

	off, err := c.Save(ctx)
	if err != nil {
		return nil, fmt.Errorf("create time off: %w", err)
	}
	return off, nil
}

func (s *availabilityService) ListTimeOff(ctx context.Context, actor reqctx.Actor) ([]*repo.TimeOff, error) {
	offs, err := s.db.TimeOff.Query().
		Where(
			enttimeoff.DoctorID(actor.UserID),
			enttimeoff.EndTimeGT(time.Now()),
		).
		Order(enttimeoff.ByStartTime()).
		All(ctx)
	if err != nil {
		return nil, fmt.Errorf("list time off: %w", err)
	}
	return offs, nil
}

func (s *availabilityService) DeleteTimeOff(ctx context.Context, actor reqctx.Actor, timeOffID uuid.UUID) error {
	off, err := s.db.TimeOff.Query().
		Where(enttimeoff.ID(timeOffID), enttimeoff.DoctorID(actor.UserID)).
		Only(ctx)
	if err != nil {
		if repo.IsNotFound(err) {
			return ErrTimeOffNotFound
		}
		return fmt.Errorf("get time off: %w", err)
	}
	return s.db.TimeOff.DeleteOne(off).Exec(ctx)
}

// ---------------------------------------------------------------------------
// Public listing
// ---------------------------------------------------------------------------

func (s *availabilityService) ListPublic(ctx context.Context, filters PublicSlotFilters) (*PublicSlotPage, error) {
	page := filters.Page
	if page < 1 {
		page = 1
	}
	perPage := filters.PerPage
	if perPage < 1 || perPage > 100 {
		perPage = 20
	}

	q := s.db.AvailabilitySlot.Query()
	if filters.DoctorID != nil {
		q = q.Where(entslot.DoctorID(*filters.DoctorID))
	}
	if filters.IsBooked != nil {
		q = q.Where(entslot.IsBooked(*filters.IsBooked))
	}
	if filters.From != nil {
		q = q.Where(entslot.StartTimeGTE(*filters.From))
	}
	if filters.To != nil {
		q = q.Where(entslot.StartTimeLT(*filters.To))
	}

	// Total is counted before the time-off exclusion below, so pagination
	// totals can overstate the truly bookable slots.
	total, err := q.Clone().Count(ctx)
	if err != nil {
		return nil, fmt.Errorf("count public slots: %w", err)
	}

	slots, err := q.
		Order(entslot.ByStartTime()).
		Offset((page - 1) * perPage).
		Limit(perPage).
		All(ctx)
	if err != nil {
		return nil, fmt.Errorf("list public slots: %w", err)
	}

	visible, err := s.dropTimeOffOverlaps(ctx, slots)
	if err != nil {
		return nil, err
	}

	return &PublicSlotPage{
		Items:   visible,
		Total:   total,
		Page:    page,
		PerPage: perPage,
	}, nil
}

// dropTimeOffOverlaps removes slots whose interval intersects any of the
// owning doctor's time-off windows.
func (s *availabilityService) dropTimeOffOverlaps(ctx context.Context, slots []*repo.AvailabilitySlot) ([]*repo.AvailabilitySlot, error) {
	if len(slots) == 0 {
		return slots, nil
	}

	doctorIDs := make([]uuid.UUID, 0, len(slots))
	seen := make(map[uuid.UUID]struct{}, len(slots))
	for _, sl := range slots {
		if _, ok := seen[sl.DoctorID]; ok {
			continue
		}
		seen[sl.DoctorID] = struct{}{}
		doctorIDs = append(doctorIDs, sl.DoctorID)
	}

	offs, err := s.db.TimeOff.Query().
		Where(enttimeoff.DoctorIDIn(doctorIDs...)).
		All(ctx)
	if err != nil {
		return nil, fmt.Errorf("list time off windows: %w", err)
	}

	offsByDoctor := make(map[uuid.UUID][]*repo.TimeOff, len(doctorIDs))
	for _, off := range offs {
		offsByDoctor[off.DoctorID] = append(offsByDoctor[off.DoctorID], off)
	}

	visible := slots[:0]
	for _, sl := range slots {
		blocked := false
		for _, off := range offsByDoctor[sl.DoctorID] {
			if Overlaps(sl.StartTime, sl.EndTime, off.StartTime, off.EndTime) {
				blocked = true
				break
			}
		}
		if !blocked {
			visible = append(visible, sl)
		}
	}
	return visible, nil
}

// Overlaps reports whether the half-open intervals [aStart, aEnd) and
// [bStart, bEnd) intersect.
func Overlaps(aStart, aEnd, bStart, bEnd time.Time) bool {
	return aStart.Before(bEnd) && bStart.Before(aEnd)
}
