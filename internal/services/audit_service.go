package services

import (
	"encoding/json"

	"gorm.io/datatypes"
	"gorm.io/gorm"

	apperrors "github.com/juninatt/trader-journal/internal/errors"
	"github.com/juninatt/trader-journal/internal/logger"
	"github.com/juninatt/trader-journal/internal/models"
)

const (
	// auditActor is stamped on every record; the journal has a single owner.
	auditActor = "owner"

	defaultHistoryLimit = 50
)

// auditService keeps the change history of journal data.
type auditService struct {
	db *gorm.DB
}

// NewAuditService creates a new AuditServicer.
func NewAuditService(db *gorm.DB) AuditServicer {
	return &auditService{db: db}
}

// Log records one change with the figures involved. A failed write is logged
// and swallowed so it never fails the journal operation itself.
func (s *auditService) Log(action, resourceType, resourceID string, changes map[string]any) {
	var figures datatypes.JSON
	if changes != nil {
		data, err := json.Marshal(changes)
		if err != nil {
			logger.Named("audit").Errorw("failed to encode audit figures", "error", err, "action", action)
			data = []byte("{}")
		}
		figures = datatypes.JSON(data)
	}

	record := &models.AuditLog{
		Actor:        auditActor,
		Action:       action,
		ResourceType: resourceType,
		ResourceID:   resourceID,
		Changes:      figures,
	}
	if err := s.db.Create(record).Error; err != nil {
		logger.Named("audit").Errorw("failed to write audit record",
			"error", err,
			"action", action,
			"resource_type", resourceType,
			"resource_id", resourceID,
		)
	}
}

// History returns matching audit records, newest first.
func (s *auditService) History(filter AuditFilter) ([]models.AuditLog, error) {
	limit := filter.Limit
	if limit <= 0 {
		limit = defaultHistoryLimit
	}

	q := s.db.Model(&models.AuditLog{})
	if filter.ResourceType != "" {
		q = q.Where("resource_type = ?", filter.ResourceType)
	}
	if filter.ResourceID != "" {
		q = q.Where("resource_id = ?", filter.ResourceID)
	}

	var records []models.AuditLog
	if err := q.Order("created_at DESC").Order("id DESC").Limit(limit).Find(&records).Error; err != nil {
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}
	return records, nil
}
