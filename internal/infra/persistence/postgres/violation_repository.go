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

// violationRepository implements the repository.ViolationRepository interface using GORM.
type violationRepository struct {
	db *gorm.DB
}

// NewViolationRepository is the constructor for violationRepository.
func NewViolationRepository(db *gorm.DB) repository.ViolationRepository {
	return &violationRepository{db: db}
}

// Create persists a new violation. A dangling inspection reference surfaces as
// ErrInspectionReference.
func (repo *violationRepository) Create(ctx context.Context, violation *entity.Violation) error {
	violationM := fromViolationDomain(violation)

	if err := repo.db.WithContext(ctx).Create(violationM).Error; err != nil {
		if isForeignKeyConstraintViolation(err) {
			return repository.ErrInspectionReference
		}
		if isCheckConstraintViolation(err) {
			return errors.Wrap(err, "severity outside allowed range")
		}

		return errors.Wrap(err, "failed to create violation")
	}

	return nil
}

// FindByID retrieves a violation by its unique ID.
func (repo *violationRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.Violation, error) {
	var violationM model.ViolationModel
	err := repo.db.WithContext(ctx).
		Where("id = ?", id).
		First(&violationM).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrViolationNotFound
		}

		return nil, errors.Wrap(err, "failed to find violation by id")
	}

	return toViolationDomain(&violationM), nil
}

// FindByInspection retrieves the violations recorded under an inspection.
func (repo *violationRepository) FindByInspection(ctx context.Context, inspectionID uuid.UUID) ([]*entity.Violation, error) {
	var violationMs []*model.ViolationModel
	err := repo.db.WithContext(ctx).
		Where("inspection_id = ?", inspectionID).
		Order("created_at").
		Find(&violationMs).Error
	if err != nil {
		return nil, errors.Wrap(err, "failed to find violations by inspection")
	}

	violations := make([]*entity.Violation, 0, len(violationMs))
	for _, violationM := range violationMs {
		violations = append(violations, toViolationDomain(violationM))
	}

	return violations, nil
}

// Resolve marks a violation resolved. The resolved flag, notes and date are
// written in one statement.
func (repo *violationRepository) Resolve(ctx context.Context, id uuid.UUID, notes string, resolvedAt time.Time) (*entity.Violation, error) {
	result := repo.db.WithContext(ctx).
		Model(&model.ViolationModel{}).
		Where("id = ?", id).
		Updates(map[string]any{
			"is_resolved":      true,
			"resolution_notes": notes,
			"resolution_date":  resolvedAt,
			"updated_at":       time.Now(),
		})
	if result.Error != nil {
		return nil, errors.Wrap(result.Error, "failed to resolve violation")
	}
	if result.RowsAffected == 0 {
		return nil, repository.ErrViolationNotFound
	}

	return repo.FindByID(ctx, id)
}

// --- Mapper Functions ---

// toViolationDomain converts a GORM ViolationModel to a domain Violation entity.
func toViolationDomain(data *model.ViolationModel) *entity.Violation {
	if data == nil {
		return nil
	}

	return &entity.Violation{
		ID:              data.ID,
		InspectionID:    data.InspectionID,
		ViolationType:   entity.ViolationType(data.ViolationType),
		Description:     data.Description,
		Severity:        data.Severity,
		IsResolved:      data.IsResolved,
		ResolutionNotes: data.ResolutionNotes,
		ResolutionDate:  data.ResolutionDate,
		CreatedAt:       data.CreatedAt,
		UpdatedAt:       data.UpdatedAt,
	}
}

// fromViolationDomain converts a domain Violation entity to a GORM ViolationModel.
func fromViolationDomain(data *entity.Violation) *model.ViolationModel {
	if data == nil {
		return nil
	}

	return &model.ViolationModel{
		ID:              data.ID,
		InspectionID:    data.InspectionID,
		ViolationType:   string(data.ViolationType),
		Description:     data.Description,
		Severity:        data.Severity,
		IsResolved:      data.IsResolved,
		ResolutionNotes: data.ResolutionNotes,
		ResolutionDate:  data.ResolutionDate,
		CreatedAt:       data.CreatedAt,
		UpdatedAt:       data.UpdatedAt,
	}
}
