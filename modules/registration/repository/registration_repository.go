package repository

import (
	"context"
	"database/sql"
	"time"

	"community-events-api/core/database"
	"community-events-api/core/logger"
	"community-events-api/core/params"
	eventEntity "community-events-api/modules/event/entity"
	"community-events-api/modules/event/timing"
	"community-events-api/modules/registration/entity"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"
)

// RegisterOutcome is the result of an atomic registration attempt.
type RegisterOutcome int

const (
	OutcomeRegistered RegisterOutcome = iota
	OutcomeAlreadyRegistered
	OutcomeEventNotFound
	OutcomeEventNotApproved
	OutcomeEventExpired
	OutcomeCapacityFull
)

// RegistrationRepository persists volunteer enrollments.
type RegistrationRepository struct {
	DB database.IDatabase
}

// NewRegistrationRepository creates a new repository instance
func NewRegistrationRepository(db database.IDatabase) *RegistrationRepository {
	return &RegistrationRepository{DB: db}
}

// RegistrationRepositoryInterface defines the repository contract
type RegistrationRepositoryInterface interface {
	Register(ctx context.Context, reg *entity.Registration, now time.Time) (RegisterOutcome, *entity.Registration, error)
	IsRegistered(ctx context.Context, eventID uuid.UUID, volunteerID uuid.UUID) (bool, error)
	GetByEventAndVolunteer(ctx context.Context, eventID uuid.UUID, volunteerID uuid.UUID) (*entity.Registration, error)
	ListByEvent(ctx context.Context, eventID uuid.UUID, p params.QueryParams) (*entity.PaginatedRegistrationEntity, error)
	CountByEvent(ctx context.Context, eventID uuid.UUID) (int, error)
}

type eventGate struct {
	ID        uuid.UUID               `db:"id"`
	Status    eventEntity.EventStatus `db:"status"`
	Capacity  *int                    `db:"capacity"`
	StartDate time.Time               `db:"start_date"`
	EndDate   *time.Time              `db:"end_date"`
}

// Register runs the whole precondition check and insert as one transaction.
// The event row is locked FOR UPDATE, so concurrent attempts against the same
// event serialize: with one slot left exactly one caller gets it. The unique
// index on (event_id, volunteer_id) remains the final duplicate guard.
func (r *RegistrationRepository) Register(ctx context.Context, reg *entity.Registration, now time.Time) (RegisterOutcome, *entity.Registration, error) {
	outcome := OutcomeRegistered
	var result *entity.Registration

	err := r.DB.WithinTx(ctx, func(tx *sqlx.Tx) error {
		var gate eventGate
		err := tx.GetContext(ctx, &gate, `
			SELECT id, status, capacity, start_date, end_date
			FROM events WHERE id = $1
			FOR UPDATE`, reg.EventID)
		if err != nil {
			if err == sql.ErrNoRows {
				outcome = OutcomeEventNotFound
				return nil
			}
			return err
		}

		var existing entity.Registration
		err = tx.GetContext(ctx, &existing, `
			SELECT id, event_id, volunteer_id, sex, skills, age, submitted_at
			FROM registrations WHERE event_id = $1 AND volunteer_id = $2`,
			reg.EventID, reg.VolunteerID)
		if err == nil {
			outcome = OutcomeAlreadyRegistered
			result = &existing
			return nil
		}
		if err != sql.ErrNoRows {
			return err
		}

		if gate.Status != eventEntity.EventStatusApproved {
			outcome = OutcomeEventNotApproved
			return nil
		}
		if timing.ComputeTiming(gate.StartDate, gate.EndDate, now).Expired {
			outcome = OutcomeEventExpired
			return nil
		}

		if gate.Capacity != nil {
			var count int
			if err := tx.GetContext(ctx, &count,
				`SELECT COUNT(*) FROM registrations WHERE event_id = $1`, reg.EventID); err != nil {
				return err
			}
			if count >= *gate.Capacity {
				outcome = OutcomeCapacityFull
				return nil
			}
		}

		var created entity.Registration
		err = tx.GetContext(ctx, &created, `
			INSERT INTO registrations (event_id, volunteer_id, sex, skills, age)
			VALUES ($1, $2, $3, $4, $5)
			ON CONFLICT (event_id, volunteer_id) DO NOTHING
			RETURNING id, event_id, volunteer_id, sex, skills, age, submitted_at`,
			reg.EventID, reg.VolunteerID, reg.Sex, reg.Skills, reg.Age)
		if err != nil {
			if err == sql.ErrNoRows {
				// Lost an insert race on the unique index.
				outcome = OutcomeAlreadyRegistered
				return tx.GetContext(ctx, &existing, `
					SELECT id, event_id, volunteer_id, sex, skills, age, submitted_at
					FROM registrations WHERE event_id = $1 AND volunteer_id = $2`,
					reg.EventID, reg.VolunteerID)
			}
			return err
		}

		result = &created
		return nil
	})
	if err != nil {
		logger.Error("RegistrationRepository:Register", err)
		return outcome, nil, err
	}

	return outcome, result, nil
}

func (r *RegistrationRepository) IsRegistered(ctx context.Context, eventID uuid.UUID, volunteerID uuid.UUID) (bool, error) {
	var exists bool
	query := `SELECT EXISTS (SELECT 1 FROM registrations WHERE event_id = $1 AND volunteer_id = $2)`

	if err := r.DB.GetContext(ctx, &exists, query, eventID, volunteerID); err != nil {
		logger.Error("RegistrationRepository:IsRegistered", err)
		return false, err
	}
	return exists, nil
}

func (r *RegistrationRepository) GetByEventAndVolunteer(ctx context.Context, eventID uuid.UUID, volunteerID uuid.UUID) (*entity.Registration, error) {
	query := `
		SELECT id, event_id, volunteer_id, sex, skills, age, submitted_at
		FROM registrations WHERE event_id = $1 AND volunteer_id = $2`

	var reg entity.Registration
	err := r.DB.GetContext(ctx, &reg, query, eventID, volunteerID)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, nil
		}
		logger.Error("RegistrationRepository:GetByEventAndVolunteer", err)
		return nil, err
	}

	return &reg, nil
}

func (r *RegistrationRepository) ListByEvent(ctx context.Context, eventID uuid.UUID, p params.QueryParams) (*entity.PaginatedRegistrationEntity, error) {
	var totalItems int
	if err := r.DB.GetContext(ctx, &totalItems,
		`SELECT COUNT(*) FROM registrations WHERE event_id = $1`, eventID); err != nil {
		logger.Error("RegistrationRepository:ListByEvent:Count", err)
		return nil, err
	}

	query := `
		SELECT id, event_id, volunteer_id, sex, skills, age, submitted_at
		FROM registrations
		WHERE event_id = $1
		ORDER BY submitted_at ASC
		LIMIT $2 OFFSET $3`

	var regs []entity.Registration
	if err := r.DB.SelectContext(ctx, &regs, query, eventID, p.PageSize, p.Offset()); err != nil {
		logger.Error("RegistrationRepository:ListByEvent:Select", err)
		return nil, err
	}

	return &entity.PaginatedRegistrationEntity{
		Items:      regs,
		TotalItems: totalItems,
		PageNumber: p.PageNumber,
		PageSize:   p.PageSize,
	}, nil
}

func (r *RegistrationRepository) CountByEvent(ctx context.Context, eventID uuid.UUID) (int, error) {
	var count int
	if err := r.DB.GetContext(ctx, &count,
		`SELECT COUNT(*) FROM registrations WHERE event_id = $1`, eventID); err != nil {
		logger.Error("RegistrationRepository:CountByEvent", err)
		return 0, err
	}
	return count, nil
}
