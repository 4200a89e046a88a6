package matchrepo

import (
	"context"
	"errors"
	"time"

	"freightmatch/internal/core/domain/model/kernel"
	"freightmatch/internal/core/domain/model/match"
	"freightmatch/internal/pkg/errs"

	"gorm.io/gorm"
)

// GormMatchRepository implements MatchRepository using GORM.
type GormMatchRepository struct {
	db      *gorm.DB
	tracker aggregateTracker
}

// aggregateTracker defines the interface for tracking aggregates.
type aggregateTracker interface {
	TrackAggregate(id kernel.UUID, aggregate any)
}

// NewGormMatchRepository creates a new GORM match repository.
func NewGormMatchRepository(db *gorm.DB, tracker aggregateTracker) *GormMatchRepository {
	return &GormMatchRepository{
		db:      db,
		tracker: tracker,
	}
}

// Add saves a new match to the database.
func (r *GormMatchRepository) Add(ctx context.Context, aggregate *match.Match) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	dto := fromDomain(aggregate)
	if err := r.db.WithContext(ctx).Create(&dto).Error; err != nil {
		return err
	}

	r.tracker.TrackAggregate(aggregate.ID(), aggregate)
	return nil
}

// Update saves an existing match to the database.
func (r *GormMatchRepository) Update(ctx context.Context, aggregate *match.Match) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	dto := fromDomain(aggregate)
	result := r.db.WithContext(ctx).Model(&MatchDTO{}).Where("id = ?", dto.ID).Updates(&dto)
	if result.Error != nil {
		return result.Error
	}

	if result.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}

	r.tracker.TrackAggregate(aggregate.ID(), aggregate)
	return nil
}

// Get retrieves a match by ID.
func (r *GormMatchRepository) Get(ctx context.Context, id kernel.UUID) (*match.Match, error) {
	if err := id.Validate(); err != nil {
		return nil, err
	}

	var dto MatchDTO
	if err := r.db.WithContext(ctx).First(&dto, "id = ?", id.Bytes()).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NewObjectNotFoundError("match", id.String())
		}
		return nil, err
	}

	return toDomain(dto)
}

// GetActiveByLoad retrieves every match for the load in an active status:
// pending, offered, or accepted. The acceptance cascade cancels these
// siblings; eligibility checks treat their carriers as engaged.
func (r *GormMatchRepository) GetActiveByLoad(ctx context.Context, loadID kernel.UUID) ([]*match.Match, error) {
	if err := loadID.Validate(); err != nil {
		return nil, err
	}

	var dtos []MatchDTO
	if err := r.db.WithContext(ctx).
		Find(&dtos, "load_id = ? AND status IN (?, ?, ?)",
			loadID.Bytes(), match.Pending, match.Offered, match.Accepted).Error; err != nil {
		return nil, err
	}

	return toDomainSlice(dtos)
}

// GetStaleAwaitingResponse retrieves matches still awaiting a carrier
// response (pending or offered) created before the cutoff. Used by the offer
// expiry sweep.
func (r *GormMatchRepository) GetStaleAwaitingResponse(ctx context.Context, cutoff time.Time) ([]*match.Match, error) {
	var dtos []MatchDTO
	if err := r.db.WithContext(ctx).
		Find(&dtos, "status IN (?, ?) AND created_at < ?",
			match.Pending, match.Offered, cutoff).Error; err != nil {
		return nil, err
	}

	return toDomainSlice(dtos)
}

func toDomainSlice(dtos []MatchDTO) ([]*match.Match, error) {
	matches := make([]*match.Match, 0, len(dtos))
	for _, dto := range dtos {
		m, err := toDomain(dto)
		if err != nil {
			return nil, err
		}
		matches = append(matches, m)
	}

	return matches, nil
}
