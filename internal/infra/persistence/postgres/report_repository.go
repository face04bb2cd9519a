package postgres

import (
	"context"
	"encoding/json"

	"bantay/internal/domain/entity"
	"bantay/internal/domain/repository"
	"bantay/internal/infra/persistence/model"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"gorm.io/gorm"
)

// reportRepository implements the repository.ReportRepository interface using GORM.
type reportRepository struct {
	db *gorm.DB
}

// NewReportRepository is the constructor for reportRepository.
func NewReportRepository(db *gorm.DB) repository.ReportRepository {
	return &reportRepository{db: db}
}

// Create persists a new compliance report with its metrics snapshot.
func (repo *reportRepository) Create(ctx context.Context, report *entity.ComplianceReport) error {
	reportM, err := fromReportDomain(report)
	if err != nil {
		return err
	}

	if err := repo.db.WithContext(ctx).Create(reportM).Error; err != nil {
		return errors.Wrap(err, "failed to create compliance report")
	}

	return nil
}

// FindByID retrieves a report by its unique ID.
func (repo *reportRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.ComplianceReport, error) {
	var reportM model.ComplianceReportModel
	err := repo.db.WithContext(ctx).
		Where("id = ?", id).
		First(&reportM).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrReportNotFound
		}

		return nil, errors.Wrap(err, "failed to find report by id")
	}

	return toReportDomain(&reportM)
}

// List retrieves reports in creation order.
func (repo *reportRepository) List(ctx context.Context, params repository.ListParams) ([]*entity.ComplianceReport, error) {
	var reportMs []*model.ComplianceReportModel
	err := repo.db.WithContext(ctx).
		Order("created_at").
		Offset(params.Skip).
		Limit(params.Limit).
		Find(&reportMs).Error
	if err != nil {
		return nil, errors.Wrap(err, "failed to list reports")
	}

	reports := make([]*entity.ComplianceReport, 0, len(reportMs))
	for _, reportM := range reportMs {
		report, err := toReportDomain(reportM)
		if err != nil {
			return nil, err
		}
		reports = append(reports, report)
	}

	return reports, nil
}

// --- Mapper Functions ---

// toReportDomain converts a GORM ComplianceReportModel to a domain
// ComplianceReport entity, decoding the jsonb metrics snapshot.
func toReportDomain(data *model.ComplianceReportModel) (*entity.ComplianceReport, error) {
	if data == nil {
		return nil, nil
	}

	var metrics *entity.ComplianceMetrics
	if len(data.Metrics) > 0 {
		metrics = &entity.ComplianceMetrics{}
		if err := json.Unmarshal(data.Metrics, metrics); err != nil {
			return nil, errors.Wrap(err, "failed to decode report metrics")
		}
	}

	return &entity.ComplianceReport{
		ID:                data.ID,
		ReferenceNumber:   data.ReferenceNumber,
		ReportType:        entity.ReportType(data.ReportType),
		ReportPeriodStart: data.ReportPeriodStart,
		ReportPeriodEnd:   data.ReportPeriodEnd,
		BarangayZone:      data.BarangayZone,
		GeneratedBy:       data.GeneratedBy,
		Summary:           data.Summary,
		Recommendations:   data.Recommendations,
		Metrics:           metrics,
		CreatedAt:         data.CreatedAt,
		UpdatedAt:         data.UpdatedAt,
	}, nil
}

// fromReportDomain converts a domain ComplianceReport entity to a GORM
// ComplianceReportModel, encoding the metrics snapshot as jsonb.
func fromReportDomain(data *entity.ComplianceReport) (*model.ComplianceReportModel, error) {
	if data == nil {
		return nil, nil
	}

	reportM := &model.ComplianceReportModel{
		ID:                data.ID,
		ReferenceNumber:   data.ReferenceNumber,
		ReportType:        string(data.ReportType),
		ReportPeriodStart: data.ReportPeriodStart,
		ReportPeriodEnd:   data.ReportPeriodEnd,
		BarangayZone:      data.BarangayZone,
		GeneratedBy:       data.GeneratedBy,
		Summary:           data.Summary,
		Recommendations:   data.Recommendations,
		CreatedAt:         data.CreatedAt,
		UpdatedAt:         data.UpdatedAt,
	}

	if data.Metrics != nil {
		encoded, err := json.Marshal(data.Metrics)
		if err != nil {
			return nil, errors.Wrap(err, "failed to encode report metrics")
		}
		reportM.Metrics = encoded
	}

	return reportM, nil
}
