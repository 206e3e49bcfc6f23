package service

import (
	"context"
	"encoding/json"
	"fmt"

	"contracting-cms/internal/model"
	"contracting-cms/internal/permission"
	"contracting-cms/internal/repository"

	"gorm.io/datatypes"
)

// AuditRecorder writes an audit entry in whatever transaction ctx carries.
type AuditRecorder interface {
	Record(ctx context.Context, action, entity, entityID string, details any) error
}

type AuditLogResponse struct {
	ID          string         `json:"id"`
	AccountID   string         `json:"account_id"`
	AccountName string         `json:"account_name"`
	Action      string         `json:"action"`
	Entity      string         `json:"entity"`
	EntityID    string         `json:"entity_id"`
	Details     datatypes.JSON `json:"details,omitempty"`
	CreatedAt   string         `json:"created_at"`
}

type AuditService interface {
	AuditRecorder
	GetAuditLogs(ctx context.Context, entity string, offset, limit int) ([]AuditLogResponse, int64, error)
}

type auditService struct {
	repo repository.AuditRepository
}

func NewAuditService(repo repository.AuditRepository) AuditService {
	return &auditService{repo: repo}
}

// Record attributes the entry to the session's account, or to the system
// when there is none (seeding, first-login provisioning).
func (s *auditService) Record(ctx context.Context, action, entity, entityID string, details any) error {
	entry := &model.AuditLog{Action: action, Entity: entity, EntityID: entityID}
	if accountID := permission.SessionFrom(ctx).AccountID; accountID != "" {
		entry.AccountID = &accountID
	}
	if details != nil {
		raw, err := json.Marshal(details)
		if err != nil {
			return fmt.Errorf("encode audit details: %w", err)
		}
		entry.Details = datatypes.JSON(raw)
	}
	return s.repo.Log(ctx, entry)
}

func (s *auditService) GetAuditLogs(ctx context.Context, entity string, offset, limit int) ([]AuditLogResponse, int64, error) {
	logs, total, err := s.repo.List(ctx, entity, offset, limit)
	if err != nil {
		return nil, 0, fmt.Errorf("failed to fetch audit logs: %w", err)
	}

	res := make([]AuditLogResponse, 0, len(logs))
	for _, l := range logs {
		name := "System"
		accountID := ""
		if l.AccountID != nil {
			accountID = *l.AccountID
		}
		if l.Account != nil {
			name = l.Account.DisplayNameEn
		}
		res = append(res, AuditLogResponse{
			ID:          l.ID,
			AccountID:   accountID,
			AccountName: name,
			Action:      l.Action,
			Entity:      l.Entity,
			EntityID:    l.EntityID,
			Details:     l.Details,
			CreatedAt:   l.CreatedAt.Format("2006-01-02 15:04:05"),
		})
	}
	return res, total, nil
}
