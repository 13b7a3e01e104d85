package rating

import (
	"context"
	"fmt"

	"entgo.io/ent/dialect/sql"
	"github.com/google/uuid"

	"github.com/curaline/curaline_backend/internal/repo"
	entrating "github.com/curaline/curaline_backend/internal/repo/doctorrating"
	entuser "github.com/curaline/curaline_backend/internal/repo/user"
	"github.com/curaline/curaline_backend/pkg/database"
	"github.com/curaline/curaline_backend/pkg/reqctx"
)

// ---------------------------------------------------------------------------
// DTOs
// ---------------------------------------------------------------------------

type CreateRequest struct {
	DoctorID uuid.UUID
	Rating   int
	Review   *string
}

type EditRequest struct {
	Rating *int
	Review *string
}

type Summary struct {
	Average float64
	Count   int
}

// ---------------------------------------------------------------------------
// Interface
// ---------------------------------------------------------------------------

type Service interface {
	Create(ctx context.Context, actor reqctx.Actor, req CreateRequest) (*repo.DoctorRating, error)
	List(ctx context.Context, doctorID uuid.UUID, page, perPage int) ([]*repo.DoctorRating, int, error)
	ListForPatient(ctx context.Context, actor reqctx.Actor) ([]*repo.DoctorRating, error)
	Average(ctx context.Context, doctorID uuid.UUID) (*Summary, error)
	Edit(ctx context.Context, actor reqctx.Actor, ratingID uuid.UUID, req EditRequest) (*repo.DoctorRating, error)
	Delete(ctx context.Context, actor reqctx.Actor, ratingID uuid.UUID) error
}

// ---------------------------------------------------------------------------
// Implementation
// ---------------------------------------------------------------------------

type ratingService struct {
	db *repo.Client
}

func New(db *repo.Client) Service {
	return &ratingService{db: db}
}

func (s *ratingService) Create(ctx context.Context, actor reqctx.Actor, req CreateRequest) (*repo.DoctorRating, error) {
	if req.Rating < 1 || req.Rating > 5 {
		return nil, ErrInvalidRating
	}

	doctorExists, err := s.db.User.Query().
		Where(entuser.ID(req.DoctorID), entuser.RoleEQ(entuser.RoleDoctor)).
		Exist(ctx)
	if err != nil {
		return nil, fmt.Errorf("check doctor: %w", err)
	}
	if !doctorExists {
		return nil, ErrDoctorNotFound
	}

	// One rating per patient per doctor.
	already, err := s.db.DoctorRating.Query().
		Where(
			entrating.DoctorID(req.DoctorID),
			entrating.PatientID(actor.UserID),
		).
		Exist(ctx)
	if err != nil {
		return nil, fmt.Errorf("check existing rating: %w", err)
	}
	if already {
		return nil, ErrAlreadyRated
	}

	var created *repo.DoctorRating
	err = database.WithTx(ctx, s.db, func(tx *repo.Tx) error {
		c := tx.DoctorRating.Create().
			SetDoctorID(req.DoctorID).
			SetPatientID(actor.UserID).
			SetRating(req.Rating)
		if req.Review != nil {
			c = c.SetNillableReview(req.Review)
		}
		created, err = c.Save(ctx)
		if err != nil {
			return fmt.Errorf("create rating: %w", err)
		}

		// Fold the new rating into the running mean without rescanning the
		// ratings table.
		if _, err := tx.ExecContext(ctx, `
			UPDATE users
			SET average_rating = (average_rating * rating_count + $1) / (rating_count + 1),
			    rating_count   = rating_count + 1
			WHERE id = $2`,
			float64(req.Rating), req.DoctorID,
		); err != nil {
			return fmt.Errorf("update doctor aggregate: %w", err)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return created, nil
}

func (s *ratingService) List(ctx context.Context, doctorID uuid.UUID, page, perPage int) ([]*repo.DoctorRating, int, error) {
	if page < 1 {
		page = 1
	}
	if perPage < 1 || perPage > 100 {
		perPage = 20
	}

	q := s.db.DoctorRating.Query().
		Where(entrating.DoctorID(doctorID))

	total, err := q.Clone().Count(ctx)
	if err != nil {
		return nil, 0, fmt.Errorf("count ratings: %w", err)
	}

	ratings, err := q.
		Order(entrating.ByCreatedAt(sql.OrderDesc())).
		Offset((page - 1) * perPage).
		Limit(perPage).
		All(ctx)
	if err != nil {
		return nil, 0, fmt.Errorf("list ratings: %w", err)
	}
	return ratings, total, nil
}

func (s *ratingService) ListForPatient(ctx context.Context, actor reqctx.Actor) ([]*repo.DoctorRating, error) {
	ratings, err := s.db.DoctorRating.Query().
		Where(entrating.PatientID(actor.UserID)).
		Order(entrating.ByCreatedAt(sql.OrderDesc())).
		All(ctx)
	if err != nil {
		return nil, fmt.Errorf("list patient ratings: %w", err)
	}
	return ratings, nil
}

func (s *ratingService) Average(ctx context.Context, doctorID uuid.UUID) (*Summary, error) {
	doctor, err := s.db.User.Query().
		Where(entuser.ID(doctorID), entuser.RoleEQ(entuser.RoleDoctor)).
		Only(ctx)
	if err != nil {
		if repo.IsNotFound(err) {
			return nil, ErrDoctorNotFound
		}
		return nil, fmt.Errorf("get doctor: %w", err)
	}
	return &Summary{Average: doctor.AverageRating, Count: doctor.RatingCount}, nil
}

func (s *ratingService) Edit(ctx context.Context, actor reqctx.Actor, ratingID uuid.UUID, req EditRequest) (*repo.DoctorRating, error) {
	r, err := s.get(ctx, ratingID)
	if err != nil {
		return nil, err
	}
	if !actor.IsAdmin() && !actor.Is(r.PatientID) {
		return nil, ErrForbidden
	}
	if req.Rating != nil && (*req.Rating < 1 || *req.Rating > 5) {
		return nil, ErrInvalidRating
	}

	var updated *repo.DoctorRating
	err = database.WithTx(ctx, s.db, func(tx *repo.Tx) error {
		upd := tx.DoctorRating.UpdateOne(r)
		if req.Rating != nil {
			upd = upd.SetRating(*req.Rating)
		}
		if req.Review != nil {
			upd = upd.SetReview(*req.Review)
		}
		updated, err = upd.Save(ctx)
		if err != nil {
			return fmt.Errorf("update rating: %w", err)
		}

		if req.Rating != nil && *req.Rating != r.Rating {
			if _, err := tx.ExecContext(ctx, `
				UPDATE users
				SET average_rating = (average_rating * rating_count - $1 + $2) / rating_count
				WHERE id = $3 AND rating_count > 0`,
				float64(r.Rating), float64(*req.Rating), r.DoctorID,
			); err != nil {
				return fmt.Errorf("update doctor aggregate: %w", err)
			}
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return updated, nil
}

func (s *ratingService) Delete(ctx context.Context, actor reqctx.Actor, ratingID uuid.UUID) error {
	r, err := s.get(ctx, ratingID)
	if err != nil {
		return err
	}
	if !actor.IsAdmin() && !actor.Is(r.PatientID) {
		return ErrForbidden
	}

	return database.WithTx(ctx, s.db, func(tx *repo.Tx) error {
		if err := tx.DoctorRating.DeleteOne(r).Exec(ctx); err != nil {
			return fmt.Errorf("delete rating: %w", err)
		}
		if _, err := tx.ExecContext(ctx, `
			UPDATE users
			SET average_rating = CASE
			        WHEN rating_count <= 1 THEN 0
			        ELSE (average_rating * rating_count - $1) / (rating_count - 1)
			    END,
			    rating_count = GREATEST(rating_count - 1, 0)
			WHERE id = $2`,
			float64(r.Rating), r.DoctorID,
		); err != nil {
			return fmt.Errorf("update doctor aggregate: %w", err)
		}
		return nil
	})
}

func (s *ratingService) get(ctx context.Context, ratingID uuid.UUID) (*repo.DoctorRating, error) {
	r, err := s.db.DoctorRating.Get(ctx, ratingID)
	if err != nil {
		if repo.IsNotFound(err) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("get rating: %w", err)
	}
	return r, nil
}

