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

// inspectionRepository implements the repository.InspectionRepository interface using GORM.
type inspectionRepository struct {
	db *gorm.DB
}

// NewInspectionRepository is the constructor for inspectionRepository.
func NewInspectionRepository(db *gorm.DB) repository.InspectionRepository {
	return &inspectionRepository{db: db}
}

// Create persists a new inspection. A dangling tindahan reference surfaces as
// ErrTindahanReference.
func (repo *inspectionRepository) Create(ctx context.Context, inspection *entity.Inspection) error {
	inspectionM := fromInspectionDomain(inspection)

	if err := repo.db.WithContext(ctx).Create(inspectionM).Error; err != nil {
		if isForeignKeyConstraintViolation(err) {
			return repository.ErrTindahanReference
		}

		return errors.Wrap(err, "failed to create inspection")
	}

	return nil
}

// FindByID retrieves an inspection with its violations preloaded.
func (repo *inspectionRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.Inspection, error) {
	var inspectionM model.InspectionModel
	err := repo.db.WithContext(ctx).
		Preload("Violations", func(db *gorm.DB) *gorm.DB {
			return db.Order("created_at")
		}).
		Where("id = ?", id).
		First(&inspectionM).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrInspectionNotFound
		}

		return nil, errors.Wrap(err, "failed to find inspection by id")
	}

	return toInspectionDomain(&inspectionM), nil
}

// List retrieves inspections in creation order, optionally filtered by tindahan.
func (repo *inspectionRepository) List(ctx context.Context, params repository.ListParams, filter repository.InspectionFilter) ([]*entity.Inspection, error) {
	query := repo.db.WithContext(ctx).Model(&model.InspectionModel{})
	if filter.TindahanID != nil {
		query = query.Where("tindahan_id = ?", *filter.TindahanID)
	}

	var inspectionMs []*model.InspectionModel
	err := query.
		Order("created_at").
		Offset(params.Skip).
		Limit(params.Limit).
		Find(&inspectionMs).Error
	if err != nil {
		return nil, errors.Wrap(err, "failed to list inspections")
	}

	inspections := make([]*entity.Inspection, 0, len(inspectionMs))
	for _, inspectionM := range inspectionMs {
		inspections = append(inspections, toInspectionDomain(inspectionM))
	}

	return inspections, nil
}

// Update applies the non-nil fields of changes and refreshes the update
// timestamp.
func (repo *inspectionRepository) Update(ctx context.Context, id uuid.UUID, changes repository.InspectionChanges) (*entity.Inspection, error) {
	values := map[string]any{"updated_at": time.Now()}
	if changes.InspectionType != nil {
		values["inspection_type"] = string(*changes.InspectionType)
	}
	if changes.InspectorName != nil {
		values["inspector_name"] = *changes.InspectorName
	}
	if changes.InspectionDate != nil {
		values["inspection_date"] = *changes.InspectionDate
	}
	if changes.Status != nil {
		values["status"] = string(*changes.Status)
	}
	if changes.Notes != nil {
		values["notes"] = *changes.Notes
	}

	result := repo.db.WithContext(ctx).
		Model(&model.InspectionModel{}).
		Where("id = ?", id).
		Updates(values)
	if result.Error != nil {
		return nil, errors.Wrap(result.Error, "failed to update inspection")
	}
	if result.RowsAffected == 0 {
		return nil, repository.ErrInspectionNotFound
	}

	return repo.FindByID(ctx, id)
}

// --- Mapper Functions ---

// toInspectionDomain converts a GORM InspectionModel to a domain Inspection entity.
func toInspectionDomain(data *model.InspectionModel) *entity.Inspection {
	if data == nil {
		return nil
	}

	violations := make([]*entity.Violation, 0, len(data.Violations))
	for idx := range data.Violations {
		violations = append(violations, toViolationDomain(&data.Violations[idx]))
	}

	return &entity.Inspection{
		ID:             data.ID,
		TindahanID:     data.TindahanID,
		InspectionType: entity.InspectionType(data.InspectionType),
		InspectorName:  data.InspectorName,
		InspectionDate: data.InspectionDate,
		Status:         entity.InspectionStatus(data.Status),
		Notes:          data.Notes,
		Violations:     violations,
		CreatedAt:      data.CreatedAt,
		UpdatedAt:      data.UpdatedAt,
	}
}

// fromInspectionDomain converts a domain Inspection entity to a GORM InspectionModel.
func fromInspectionDomain(data *entity.Inspection) *model.InspectionModel {
	if data == nil {
		return nil
	}

	return &model.InspectionModel{
		ID:             data.ID,
		TindahanID:     data.TindahanID,
		InspectionType: string(data.InspectionType),
		InspectorName:  data.InspectorName,
		InspectionDate: data.InspectionDate,
		Status:         string(data.Status),
		Notes:          data.Notes,
		CreatedAt:      data.CreatedAt,
		UpdatedAt:      data.UpdatedAt,
	}
}
