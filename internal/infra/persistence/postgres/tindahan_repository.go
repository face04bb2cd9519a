package postgres

import (
	"context"
	"time"

	"bantay/internal/domain/entity"
	"bantay/internal/domain/repository"
	"bantay/internal/infra/persistence/model"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"gorm.io/gorm"
)

// tindahanRepository implements the repository.TindahanRepository interface using GORM.
type tindahanRepository struct {
	db *gorm.DB
}

// NewTindahanRepository is the constructor for tindahanRepository.
func NewTindahanRepository(db *gorm.DB) repository.TindahanRepository {
	return &tindahanRepository{db: db}
}

// Create persists a new tindahan registration.
func (repo *tindahanRepository) Create(ctx context.Context, tindahan *entity.Tindahan) error {
	tindahanM := fromTindahanDomain(tindahan)

	if err := repo.db.WithContext(ctx).Create(tindahanM).Error; err != nil {
		if isUniqueConstraintViolation(err) {
			return repository.ErrDuplicateBusinessName
		}

		return errors.Wrap(err, "failed to create tindahan")
	}

	return nil
}

// FindByID retrieves a single tindahan by its unique ID.
func (repo *tindahanRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.Tindahan, error) {
	var tindahanM model.TindahanModel
	err := repo.db.WithContext(ctx).
		Where("id = ?", id).
		First(&tindahanM).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrTindahanNotFound
		}

		return nil, errors.Wrap(err, "failed to find tindahan by id")
	}

	return toTindahanDomain(&tindahanM), nil
}

// FindByName retrieves a single tindahan by its unique business name.
func (repo *tindahanRepository) FindByName(ctx context.Context, businessName string) (*entity.Tindahan, error) {
	var tindahanM model.TindahanModel
	err := repo.db.WithContext(ctx).
		Where("business_name = ?", businessName).
		First(&tindahanM).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrTindahanNotFound
		}

		return nil, errors.Wrap(err, "failed to find tindahan by name")
	}

	return toTindahanDomain(&tindahanM), nil
}

// List retrieves tindahan ordered by registration time.
func (repo *tindahanRepository) List(ctx context.Context, params repository.ListParams, activeOnly bool) ([]*entity.Tindahan, error) {
	query := repo.db.WithContext(ctx).Model(&model.TindahanModel{})
	if activeOnly {
		query = query.Where("is_active = ?", true)
	}

	var tindahanMs []*model.TindahanModel
	err := query.
		Order("registered_at").
		Offset(params.Skip).
		Limit(params.Limit).
		Find(&tindahanMs).Error
	if err != nil {
		return nil, errors.Wrap(err, "failed to list tindahan")
	}

	tindahanList := make([]*entity.Tindahan, 0, len(tindahanMs))
	for _, tindahanM := range tindahanMs {
		tindahanList = append(tindahanList, toTindahanDomain(tindahanM))
	}

	return tindahanList, nil
}

// Update applies the non-nil fields of changes. The update timestamp is
// refreshed even when the change-set carries no fields.
func (repo *tindahanRepository) Update(ctx context.Context, id uuid.UUID, changes repository.TindahanChanges) (*entity.Tindahan, error) {
	values := map[string]any{"updated_at": time.Now()}
	if changes.BusinessName != nil {
		values["business_name"] = *changes.BusinessName
	}
	if changes.OwnerName != nil {
		values["owner_name"] = *changes.OwnerName
	}
	if changes.BusinessType != nil {
		values["business_type"] = string(*changes.BusinessType)
	}
	if changes.Address != nil {
		values["address"] = *changes.Address
	}
	if changes.ContactNumber != nil {
		values["contact_number"] = *changes.ContactNumber
	}
	if changes.BarangayZone != nil {
		values["barangay_zone"] = *changes.BarangayZone
	}
	if changes.BusinessPermitNumber != nil {
		values["business_permit_number"] = *changes.BusinessPermitNumber
	}
	if changes.PermitIssuedDate != nil {
		values["permit_issued_date"] = *changes.PermitIssuedDate
	}
	if changes.PermitExpiryDate != nil {
		values["permit_expiry_date"] = *changes.PermitExpiryDate
	}
	if changes.ComplianceStatus != nil {
		values["compliance_status"] = string(*changes.ComplianceStatus)
	}
	if changes.LastInspectionDate != nil {
		values["last_inspection_date"] = *changes.LastInspectionDate
	}
	if changes.NextInspectionDue != nil {
		values["next_inspection_due"] = *changes.NextInspectionDue
	}
	if changes.IsActive != nil {
		values["is_active"] = *changes.IsActive
	}

	result := repo.db.WithContext(ctx).
		Model(&model.TindahanModel{}).
		Where("id = ?", id).
		Updates(values)
	if result.Error != nil {
		if isUniqueConstraintViolation(result.Error) {
			return nil, repository.ErrDuplicateBusinessName
		}

		return nil, errors.Wrap(result.Error, "failed to update tindahan")
	}
	if result.RowsAffected == 0 {
		return nil, repository.ErrTindahanNotFound
	}

	return repo.FindByID(ctx, id)
}

// Deactivate flips the active flag to false. Deactivating an already-inactive
// record still matches the row and succeeds.
func (repo *tindahanRepository) Deactivate(ctx context.Context, id uuid.UUID) error {
	result := repo.db.WithContext(ctx).
		Model(&model.TindahanModel{}).
		Where("id = ?", id).
		Updates(map[string]any{
			"is_active":  false,
			"updated_at": time.Now(),
		})
	if result.Error != nil {
		return errors.Wrap(result.Error, "failed to deactivate tindahan")
	}
	if result.RowsAffected == 0 {
		return repository.ErrTindahanNotFound
	}

	return nil
}

// --- Mapper Functions ---

// toTindahanDomain converts a GORM TindahanModel to a domain Tindahan entity.
func toTindahanDomain(data *model.TindahanModel) *entity.Tindahan {
	if data == nil {
		return nil
	}

	return &entity.Tindahan{
		ID:                   data.ID,
		BusinessName:         data.BusinessName,
		OwnerName:            data.OwnerName,
		BusinessType:         entity.BusinessType(data.BusinessType),
		Address:              data.Address,
		ContactNumber:        data.ContactNumber,
		BarangayZone:         data.BarangayZone,
		IsActive:             data.IsActive,
		BusinessPermitNumber: data.BusinessPermitNumber,
		PermitIssuedDate:     data.PermitIssuedDate,
		PermitExpiryDate:     data.PermitExpiryDate,
		ComplianceStatus:     entity.ComplianceStatus(data.ComplianceStatus),
		LastInspectionDate:   data.LastInspectionDate,
		NextInspectionDue:    data.NextInspectionDue,
		RegisteredAt:         data.RegisteredAt,
		UpdatedAt:            data.UpdatedAt,
	}
}

// fromTindahanDomain converts a domain Tindahan entity to a GORM TindahanModel.
func fromTindahanDomain(data *entity.Tindahan) *model.TindahanModel {
	if data == nil {
		return nil
	}

	return &model.TindahanModel{
		ID:                   data.ID,
		BusinessName:         data.BusinessName,
		OwnerName:            data.OwnerName,
		BusinessType:         string(data.BusinessType),
		Address:              data.Address,
		ContactNumber:        data.ContactNumber,
		BarangayZone:         data.BarangayZone,
		IsActive:             data.IsActive,
		BusinessPermitNumber: data.BusinessPermitNumber,
		PermitIssuedDate:     data.PermitIssuedDate,
		PermitExpiryDate:     data.PermitExpiryDate,
		ComplianceStatus:     string(data.ComplianceStatus),
		LastInspectionDate:   data.LastInspectionDate,
		NextInspectionDue:    data.NextInspectionDue,
		RegisteredAt:         data.RegisteredAt,
		UpdatedAt:            data.UpdatedAt,
	}
}
