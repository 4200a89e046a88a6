package carrierdir

import (
	"context"
	"errors"

	"freightmatch/internal/core/domain/model/carrier"
	"freightmatch/internal/core/domain/model/kernel"
	"freightmatch/internal/pkg/errs"

	"gorm.io/gorm"
)

// GormCarrierDirectory implements CarrierDirectory using GORM. Candidate
// search reads the whole pool through it; staleness against the carrier
// context of record is acceptable because scoring is advisory.
type GormCarrierDirectory struct {
	db *gorm.DB
}

// NewGormCarrierDirectory creates a new GORM carrier directory.
func NewGormCarrierDirectory(db *gorm.DB) *GormCarrierDirectory {
	return &GormCarrierDirectory{db: db}
}

// Get retrieves one carrier's capability snapshot by ID.
func (d *GormCarrierDirectory) Get(ctx context.Context, id kernel.UUID) (carrier.Capability, error) {
	if err := id.Validate(); err != nil {
		return carrier.Capability{}, err
	}

	var dto CarrierDTO
	if err := d.db.WithContext(ctx).Preload("Vehicles").First(&dto, "id = ?", id.Bytes()).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return carrier.Capability{}, errs.NewObjectNotFoundError("carrier", id.String())
		}
		return carrier.Capability{}, err
	}

	return toDomain(dto)
}

// GetAll retrieves the full carrier pool, sorted by name for stable output.
func (d *GormCarrierDirectory) GetAll(ctx context.Context) ([]carrier.Capability, error) {
	var dtos []CarrierDTO
	if err := d.db.WithContext(ctx).Preload("Vehicles").Order("name").Find(&dtos).Error; err != nil {
		return nil, err
	}

	capabilities := make([]carrier.Capability, 0, len(dtos))
	for _, dto := range dtos {
		capability, err := toDomain(dto)
		if err != nil {
			return nil, err
		}
		capabilities = append(capabilities, capability)
	}

	return capabilities, nil
}

// Add inserts a capability snapshot into the directory. The matching core
// never writes carriers; this is the sync path for whatever owns carrier
// onboarding, and the seeding path for tests.
func (d *GormCarrierDirectory) Add(ctx context.Context, capability carrier.Capability) error {
	if err := capability.Validate(); err != nil {
		return err
	}

	dto := fromDomain(capability)
	if err := d.db.WithContext(ctx).Create(&dto).Error; err != nil {
		return err
	}

	return nil
}
